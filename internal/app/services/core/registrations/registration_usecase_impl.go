package registrations

import (
	"context"
	"fmt"
	"mediplant-service/internal/app/config"
	"mediplant-service/internal/app/contracts"
	"mediplant-service/internal/app/models"
	"mediplant-service/internal/pkg/constvars"
	"mediplant-service/internal/pkg/dto/requests"
	"mediplant-service/internal/pkg/dto/responses"
	"mediplant-service/internal/pkg/exceptions"
	"mediplant-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type registrationUsecase struct {
	PatientStoreClient     contracts.PatientStoreClient
	AppointmentStoreClient contracts.AppointmentStoreClient
	DoctorRepository       contracts.DoctorRepository
	NotificationQueue      contracts.NotificationQueueService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	registrationUsecaseInstance contracts.RegistrationUsecase
	onceRegistrationUsecase     sync.Once
)

func NewRegistrationUsecase(
	patientStoreClient contracts.PatientStoreClient,
	appointmentStoreClient contracts.AppointmentStoreClient,
	doctorRepository contracts.DoctorRepository,
	notificationQueue contracts.NotificationQueueService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.RegistrationUsecase {
	onceRegistrationUsecase.Do(func() {
		instance := &registrationUsecase{
			PatientStoreClient:     patientStoreClient,
			AppointmentStoreClient: appointmentStoreClient,
			DoctorRepository:       doctorRepository,
			NotificationQueue:      notificationQueue,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
		registrationUsecaseInstance = instance
	})
	return registrationUsecaseInstance
}

// RegisterPatient runs the two-commit onboarding flow: commit the patient to
// the record store, then schedule the initial consultation. The patient commit
// is durable on its own. A scheduling failure is reported alongside the
// committed patient instead of rolling anything back; the caller retries the
// scheduling step separately.
func (uc *registrationUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatientRequest) (*responses.Registration, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("registrationUsecase.RegisterPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	institutionID, err := utils.ParseRegistrationLinkJWT(request.LinkToken, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, exceptions.ErrRegistrationLinkInvalid(err)
	}

	patient := &models.Patient{
		FullName:    request.FullName,
		CPF:         request.CPF,
		BirthDate:   request.BirthDate,
		PhoneNumber: request.PhoneNumber,
		Email:       request.Email,
		Address: models.Address{
			Street:       request.AddressStreet,
			Number:       request.AddressNumber,
			Complement:   request.AddressComplement,
			Neighborhood: request.AddressNeighborhood,
			City:         request.AddressCity,
			State:        request.AddressState,
			Zip:          request.AddressZip,
		},
		InstitutionID: institutionID,
	}

	committed, err := uc.PatientStoreClient.CreatePatient(ctx, patient)
	if err != nil {
		uc.Log.Error("registrationUsecase.RegisterPatient patient commit failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingInstitutionIDKey, institutionID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("registrationUsecase.RegisterPatient patient committed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, committed.ID),
		zap.String(constvars.LoggingInstitutionIDKey, institutionID),
	)

	return uc.scheduleInitialConsultation(ctx, committed, request.DoctorID, request.Date, request.Time)
}

// RetryScheduling re-runs only the scheduling step for a patient whose
// registration ended in the scheduling_failed stage.
func (uc *registrationUsecase) RetryScheduling(ctx context.Context, request *requests.RetrySchedulingRequest) (*responses.Registration, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("registrationUsecase.RetryScheduling called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	patient, err := uc.PatientStoreClient.FindPatientByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrClientCustomMessage(fmt.Errorf("patient %s does not exist", request.PatientID))
	}

	return uc.scheduleInitialConsultation(ctx, patient, request.DoctorID, request.Date, request.Time)
}

func (uc *registrationUsecase) scheduleInitialConsultation(ctx context.Context, patient *models.Patient, doctorID, date, slotTime string) (*responses.Registration, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	registered := &responses.RegisteredPatient{
		ID:            patient.ID,
		FullName:      patient.FullName,
		Email:         patient.Email,
		InstitutionID: patient.InstitutionID,
	}

	// The same doctor check the booking workflow runs; a doctor the booking
	// endpoint would reject must not slip in through registration.
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return uc.reportSchedulingFailure(requestID, registered, doctorID, err), nil
	}
	if doctor == nil {
		return uc.reportSchedulingFailure(requestID, registered, doctorID, fmt.Errorf("doctor %s does not exist", doctorID)), nil
	}

	appointment := &models.Appointment{
		PatientID: patient.ID,
		DoctorID:  doctorID,
		Date:      date,
		Time:      slotTime,
		Type:      models.AppointmentTypeConsultation,
		Status:    models.AppointmentStatusPending,
		Notes:     constvars.RegistrationDefaultNote,
	}

	scheduled, err := uc.AppointmentStoreClient.CreateAppointment(ctx, appointment)
	if err != nil {
		return uc.reportSchedulingFailure(requestID, registered, doctorID, err), nil
	}

	publishErr := uc.NotificationQueue.PublishRegistrationCompleted(ctx, &contracts.RegistrationCompletedEvent{
		PatientID:     patient.ID,
		AppointmentID: scheduled.ID,
		InstitutionID: patient.InstitutionID,
		Stage:         constvars.RegistrationStageCompleted,
	})
	if publishErr != nil {
		uc.Log.Warn("registrationUsecase failed to publish completion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patient.ID),
			zap.Error(publishErr),
		)
	}

	uc.Log.Info("registrationUsecase registration completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
		zap.String(constvars.LoggingAppointmentIDKey, scheduled.ID),
	)
	return &responses.Registration{
		Stage:   constvars.RegistrationStageCompleted,
		Patient: registered,
		Appointment: &responses.Appointment{
			ID:        scheduled.ID,
			PatientID: scheduled.PatientID,
			DoctorID:  scheduled.DoctorID,
			Date:      scheduled.Date,
			Time:      scheduled.Time,
			Type:      string(scheduled.Type),
			Status:    string(scheduled.Status),
			Notes:     scheduled.Notes,
			CreatedAt: scheduled.CreatedAt,
		},
	}, nil
}

// reportSchedulingFailure turns a failed scheduling step into an outcome. The
// patient commit stays; the caller retries the scheduling step against the
// same patient.
func (uc *registrationUsecase) reportSchedulingFailure(requestID string, registered *responses.RegisteredPatient, doctorID string, cause error) *responses.Registration {
	uc.Log.Error("registrationUsecase scheduling step failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, registered.ID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.Error(cause),
	)
	return &responses.Registration{
		Stage:           constvars.RegistrationStageSchedulingFailed,
		Patient:         registered,
		SchedulingError: exceptions.ErrSchedulingStepFailed(cause).ClientMessage,
	}
}
