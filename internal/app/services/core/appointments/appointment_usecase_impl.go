package appointments

import (
	"context"
	"fmt"
	"mediplant-service/internal/app/contracts"
	"mediplant-service/internal/app/models"
	"mediplant-service/internal/pkg/constvars"
	"mediplant-service/internal/pkg/dto/requests"
	"mediplant-service/internal/pkg/dto/responses"
	"mediplant-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentStoreClient contracts.AppointmentStoreClient
	DoctorRepository       contracts.DoctorRepository
	Log                    *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentStoreClient contracts.AppointmentStoreClient,
	doctorRepository contracts.DoctorRepository,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			AppointmentStoreClient: appointmentStoreClient,
			DoctorRepository:       doctorRepository,
			Log:                    logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

// ListSlots returns the canonical half-hour grid split into morning and
// afternoon shifts. The grid is fixed; availability per doctor is owned by the
// record store.
func (uc *appointmentUsecase) ListSlots(ctx context.Context) (*responses.SlotList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ListSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	slots := &responses.SlotList{
		MorningShift:   make([]string, 0, len(models.CanonicalSlotTimes)/2),
		AfternoonShift: make([]string, 0, len(models.CanonicalSlotTimes)/2),
	}
	for _, slot := range models.CanonicalSlotTimes {
		if slot < "12:00" {
			slots.MorningShift = append(slots.MorningShift, slot)
		} else {
			slots.AfternoonShift = append(slots.AfternoonShift, slot)
		}
	}
	return slots, nil
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	// Revalidated here even though the request struct already carries the
	// validation tags: the usecase is also called by internal orchestration
	// paths that never pass through the HTTP decoder.
	if request.PatientID == "" || request.DoctorID == "" || request.Date == "" || request.Time == "" {
		return nil, exceptions.ErrBookingFieldsMissing(fmt.Errorf("patient, doctor, date and time are all required"))
	}
	if !models.IsCanonicalSlot(request.Time) {
		return nil, exceptions.ErrSlotNotBookable(fmt.Errorf("time %s is not a bookable slot", request.Time))
	}
	if !models.IsValidAppointmentType(request.Type) {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("unknown appointment type %s", request.Type))
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrClientCustomMessage(fmt.Errorf("doctor %s does not exist", request.DoctorID))
	}

	appointment := &models.Appointment{
		PatientID: request.PatientID,
		DoctorID:  request.DoctorID,
		Date:      request.Date,
		Time:      request.Time,
		Type:      models.AppointmentType(request.Type),
		Status:    models.AppointmentStatusPending,
		Notes:     request.Notes,
	}

	created, err := uc.AppointmentStoreClient.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, created.ID),
	)
	return buildAppointmentResponse(created), nil
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:        appointment.ID,
		PatientID: appointment.PatientID,
		DoctorID:  appointment.DoctorID,
		Date:      appointment.Date,
		Time:      appointment.Time,
		Type:      string(appointment.Type),
		Status:    string(appointment.Status),
		Notes:     appointment.Notes,
		CreatedAt: appointment.CreatedAt,
	}
}
