package models

type AppointmentType string

const (
	AppointmentTypeConsultation AppointmentType = "consultation"
	AppointmentTypeFollowUp     AppointmentType = "follow-up"
	AppointmentTypeEmergency    AppointmentType = "emergency"
)

type AppointmentStatus string

// Every appointment created through this service starts out pending; status
// transitions happen downstream in the record store, never here.
const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// CanonicalSlotTimes are the only bookable half-hour starts: a morning shift
// from 09:00 and an afternoon shift from 14:00, six slots each.
var CanonicalSlotTimes = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
}

func IsCanonicalSlot(slotTime string) bool {
	for _, slot := range CanonicalSlotTimes {
		if slot == slotTime {
			return true
		}
	}
	return false
}

func IsValidAppointmentType(appointmentType string) bool {
	switch AppointmentType(appointmentType) {
	case AppointmentTypeConsultation, AppointmentTypeFollowUp, AppointmentTypeEmergency:
		return true
	}
	return false
}

type Appointment struct {
	ID        string            `json:"id"`
	PatientID string            `json:"patient_id"`
	DoctorID  string            `json:"doctor_id"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Type      AppointmentType   `json:"type"`
	Status    AppointmentStatus `json:"status"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt string            `json:"created_at,omitempty"`
}
