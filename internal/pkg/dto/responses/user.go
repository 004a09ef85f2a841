package responses

type User struct {
	ID    string `json:"_id,omitempty"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

type UserToken struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type AdminStatus struct {
	Admin bool `json:"admin"`
}

type Doctor struct {
	ID        string `json:"_id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
	Img       string `json:"img,omitempty"`
}
