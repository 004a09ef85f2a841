package requests

type UpsertTreatment struct {
	Name  string   `json:"name" validate:"required"`
	Slots []string `json:"slots" validate:"required,min=1,unique_slots,dive,required"`
	Price int64    `json:"price" validate:"gte=0"`
}
