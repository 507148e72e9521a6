package models

// Address follows the record store's postal address shape for Brazilian
// addresses. Number stays a string so "s/n" (no number) survives.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
}

type Patient struct {
	ID            string  `json:"id"`
	FullName      string  `json:"full_name"`
	CPF           string  `json:"cpf"`
	BirthDate     string  `json:"birth_date"`
	PhoneNumber   string  `json:"phone_number"`
	Email         string  `json:"email"`
	Address       Address `json:"address"`
	InstitutionID string  `json:"institution_id"`
}
