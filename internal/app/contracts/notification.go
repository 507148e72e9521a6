package contracts

import "context"

type OrderConfirmedEvent struct {
	SessionID      string `json:"session_id"`
	ConfirmationID string `json:"confirmation_id"`
	TotalCents     int64  `json:"total_cents"`
}

type RegistrationCompletedEvent struct {
	PatientID     string `json:"patient_id"`
	AppointmentID string `json:"appointment_id,omitempty"`
	InstitutionID string `json:"institution_id"`
	Stage         string `json:"stage"`
}

type NotificationQueueService interface {
	PublishOrderConfirmed(ctx context.Context, event *OrderConfirmedEvent) error
	PublishRegistrationCompleted(ctx context.Context, event *RegistrationCompletedEvent) error
}
