package requests

type UpsertUser struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type CreateDoctor struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Specialty string `json:"specialty" validate:"required"`
	Img       string `json:"img"`
}
