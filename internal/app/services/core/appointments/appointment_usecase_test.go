package appointments

import (
	"context"
	"errors"
	"mediplant-service/internal/app/models"
	"mediplant-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockAppointmentStoreClient struct {
	mock.Mock
}

func (m *mockAppointmentStoreClient) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointment)
	if created := args.Get(0); created != nil {
		return created.(*models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentStoreClient) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if appointment := args.Get(0); appointment != nil {
		return appointment.(*models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockDoctorRepository struct {
	mock.Mock
}

func (m *mockDoctorRepository) FindAll(ctx context.Context, institutionID string) ([]models.Doctor, error) {
	args := m.Called(ctx, institutionID)
	if doctors := args.Get(0); doctors != nil {
		return doctors.([]models.Doctor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if doctor := args.Get(0); doctor != nil {
		return doctor.(*models.Doctor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDoctorRepository) Insert(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	args := m.Called(ctx, doctor)
	if inserted := args.Get(0); inserted != nil {
		return inserted.(*models.Doctor), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestAppointmentUsecase(store *mockAppointmentStoreClient, doctors *mockDoctorRepository) *appointmentUsecase {
	return &appointmentUsecase{
		AppointmentStoreClient: store,
		DoctorRepository:       doctors,
		Log:                    zap.NewNop(),
	}
}

func drSilva() *models.Doctor {
	return &models.Doctor{ID: "doctor-001", Name: "Dra. Ana Silva", Specialization: "Fitoterapia", InstitutionID: "institution-001"}
}

func validBooking() *requests.CreateAppointmentRequest {
	return &requests.CreateAppointmentRequest{
		PatientID: "patient-001",
		DoctorID:  "doctor-001",
		Date:      "2027-03-15",
		Time:      "09:30",
		Type:      "consultation",
	}
}

func TestListSlots(t *testing.T) {
	uc := newTestAppointmentUsecase(new(mockAppointmentStoreClient), new(mockDoctorRepository))

	slots, err := uc.ListSlots(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slots.MorningShift)
	assert.Equal(t, []string{"14:00", "14:30", "15:00", "15:30", "16:00", "16:30"}, slots.AfternoonShift)
}

func TestCreateAppointment(t *testing.T) {
	t.Run("Booking Is Created Pending", func(t *testing.T) {
		store := new(mockAppointmentStoreClient)
		doctors := new(mockDoctorRepository)

		doctors.On("FindByID", mock.Anything, "doctor-001").Return(drSilva(), nil)
		store.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(appointment *models.Appointment) bool {
			return appointment.Status == models.AppointmentStatusPending
		})).Return(&models.Appointment{
			ID:        "appointment-001",
			PatientID: "patient-001",
			DoctorID:  "doctor-001",
			Date:      "2027-03-15",
			Time:      "09:30",
			Type:      models.AppointmentTypeConsultation,
			Status:    models.AppointmentStatusPending,
		}, nil)

		uc := newTestAppointmentUsecase(store, doctors)
		response, err := uc.CreateAppointment(context.Background(), validBooking())

		assert.NoError(t, err)
		assert.Equal(t, "appointment-001", response.ID)
		assert.Equal(t, "pending", response.Status)
	})

	t.Run("Missing Booking Field Is Rejected", func(t *testing.T) {
		store := new(mockAppointmentStoreClient)
		doctors := new(mockDoctorRepository)

		request := validBooking()
		request.DoctorID = ""

		uc := newTestAppointmentUsecase(store, doctors)
		_, err := uc.CreateAppointment(context.Background(), request)

		assert.Error(t, err)
		store.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("Off Grid Slot Is Rejected", func(t *testing.T) {
		store := new(mockAppointmentStoreClient)
		doctors := new(mockDoctorRepository)

		request := validBooking()
		request.Time = "12:00"

		uc := newTestAppointmentUsecase(store, doctors)
		_, err := uc.CreateAppointment(context.Background(), request)

		assert.Error(t, err)
		store.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Doctor Is Rejected", func(t *testing.T) {
		store := new(mockAppointmentStoreClient)
		doctors := new(mockDoctorRepository)

		doctors.On("FindByID", mock.Anything, "doctor-001").Return(nil, nil)

		uc := newTestAppointmentUsecase(store, doctors)
		_, err := uc.CreateAppointment(context.Background(), validBooking())

		assert.Error(t, err)
		store.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("Store Failure Is Propagated", func(t *testing.T) {
		store := new(mockAppointmentStoreClient)
		doctors := new(mockDoctorRepository)

		doctors.On("FindByID", mock.Anything, "doctor-001").Return(drSilva(), nil)
		store.On("CreateAppointment", mock.Anything, mock.Anything).Return(nil, errors.New("record store unavailable"))

		uc := newTestAppointmentUsecase(store, doctors)
		_, err := uc.CreateAppointment(context.Background(), validBooking())

		assert.Error(t, err)
	})
}
