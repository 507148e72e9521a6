package requests

type CreateAppointmentRequest struct {
	PatientID string `json:"patient_id" validate:"required"`
	DoctorID  string `json:"doctor_id" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02,not_past_date"`
	Time      string `json:"time" validate:"required,slot_time"`
	Type      string `json:"type" validate:"required,appointment_type"`
	Notes     string `json:"notes,omitempty" validate:"omitempty,max=500"`
}
