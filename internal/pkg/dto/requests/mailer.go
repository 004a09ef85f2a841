package requests

type EmailPayload struct {
	Subject   string   `json:"subject"`
	From      string   `json:"from"`
	FromName  string   `json:"from_name,omitempty"`
	To        []string `json:"to"`
	Cc        []string `json:"cc,omitempty"`
	Bcc       []string `json:"bcc,omitempty"`
	HTMLCode  string   `json:"html_code"`
	PlainText string   `json:"plain_text,omitempty"`
}
