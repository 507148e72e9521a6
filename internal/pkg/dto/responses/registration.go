package responses

type RegisteredPatient struct {
	ID            string `json:"id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	InstitutionID string `json:"institution_id"`
}

// Registration reports both commits separately: the patient commit is durable
// even when the scheduling commit fails, and Stage tells the caller which of
// the two outcomes happened.
type Registration struct {
	Stage           string             `json:"stage"`
	Patient         *RegisteredPatient `json:"patient,omitempty"`
	Appointment     *Appointment       `json:"appointment,omitempty"`
	SchedulingError string             `json:"scheduling_error,omitempty"`
}
