package contracts

import (
	"context"
	"mediplant-service/internal/app/models"
)

// PatientStoreClient talks to the external record store that owns Patient
// resources.
type PatientStoreClient interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
}
