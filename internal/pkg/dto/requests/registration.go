package requests

type RegisterPatientRequest struct {
	LinkToken string `json:"link_token" validate:"required"`

	FullName    string `json:"full_name" validate:"required,min=3,max=120"`
	CPF         string `json:"cpf" validate:"required,cpf"`
	BirthDate   string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	PhoneNumber string `json:"phone_number" validate:"required,min=8,max=20"`
	Email       string `json:"email" validate:"required,email"`

	AddressStreet       string `json:"address_street" validate:"required"`
	AddressNumber       string `json:"address_number" validate:"required,max=10"`
	AddressComplement   string `json:"address_complement" validate:"omitempty,max=120"`
	AddressNeighborhood string `json:"address_neighborhood" validate:"required"`
	AddressCity         string `json:"address_city" validate:"required"`
	AddressState        string `json:"address_state" validate:"required,len=2"`
	AddressZip          string `json:"address_zip" validate:"required,min=8,max=9"`

	DoctorID string `json:"doctor_id" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02,not_past_date"`
	Time     string `json:"time" validate:"required,slot_time"`
}

// RetrySchedulingRequest re-runs only the scheduling step against a patient
// that is already committed.
type RetrySchedulingRequest struct {
	PatientID string `json:"patient_id" validate:"required"`
	DoctorID  string `json:"doctor_id" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02,not_past_date"`
	Time      string `json:"time" validate:"required,slot_time"`
}
