package responses

type TreatmentName struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}

type Treatment struct {
	ID    string   `json:"_id,omitempty"`
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
	Price int64    `json:"price,omitempty"`
}

// Availability is a treatment with only the slots still open on a date.
type Availability struct {
	ID    string   `json:"_id,omitempty"`
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
	Price int64    `json:"price,omitempty"`
}
