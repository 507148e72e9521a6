package catalog

import (
	"context"
	"mediplant-service/internal/app/config"
	"mediplant-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

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

func newTestCatalogUsecase(doctors *mockDoctorRepository) *catalogUsecase {
	return &catalogUsecase{
		DoctorRepository: doctors,
		InternalConfig:   &config.InternalConfig{},
		Log:              zap.NewNop(),
	}
}

func TestListDoctors(t *testing.T) {
	t.Run("Institution Filter Reaches The Repository", func(t *testing.T) {
		doctors := new(mockDoctorRepository)

		doctors.On("FindAll", mock.Anything, "institution-001").Return([]models.Doctor{
			{ID: "doctor-001", Name: "Dr. Ana Silva", Specialization: "Fitoterapia", InstitutionID: "institution-001"},
		}, nil)

		uc := newTestCatalogUsecase(doctors)
		result, err := uc.ListDoctors(context.Background(), "institution-001")

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "institution-001", result[0].InstitutionID)
		doctors.AssertCalled(t, "FindAll", mock.Anything, "institution-001")
	})

	t.Run("No Filter Lists Every Doctor", func(t *testing.T) {
		doctors := new(mockDoctorRepository)

		doctors.On("FindAll", mock.Anything, "").Return([]models.Doctor{
			{ID: "doctor-001", InstitutionID: "institution-001"},
			{ID: "doctor-002", InstitutionID: "institution-002"},
		}, nil)

		uc := newTestCatalogUsecase(doctors)
		result, err := uc.ListDoctors(context.Background(), "")

		assert.NoError(t, err)
		assert.Len(t, result, 2)
	})
}
