package utils

import (
	"testing"
	"time"

	"mediplant-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateAppointmentRequest(t *testing.T) {
	futureDate := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	validRequest := func() *requests.CreateAppointmentRequest {
		return &requests.CreateAppointmentRequest{
			PatientID: "patient-001",
			DoctorID:  "doctor-001",
			Date:      futureDate,
			Time:      "09:30",
			Type:      "consultation",
		}
	}

	t.Run("Valid Request", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validRequest()))
	})

	t.Run("All Canonical Slots Accepted", func(t *testing.T) {
		slots := []string{
			"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
			"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
		}
		for _, slot := range slots {
			request := validRequest()
			request.Time = slot
			assert.NoError(t, ValidateStruct(request), "slot %s should be bookable", slot)
		}
	})

	t.Run("Off Grid Slot Rejected", func(t *testing.T) {
		request := validRequest()
		request.Time = "12:00"

		assert.Error(t, ValidateStruct(request), "lunch break is not a bookable slot")
	})

	t.Run("Non Half Hour Slot Rejected", func(t *testing.T) {
		request := validRequest()
		request.Time = "09:15"

		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Unknown Type Rejected", func(t *testing.T) {
		request := validRequest()
		request.Type = "surgery"

		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Past Date Rejected", func(t *testing.T) {
		request := validRequest()
		request.Date = "2020-01-01"

		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Missing Doctor Rejected", func(t *testing.T) {
		request := validRequest()
		request.DoctorID = ""

		assert.Error(t, ValidateStruct(request))
	})
}

func TestValidateCPF(t *testing.T) {
	futureDate := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	validRequest := func(cpf string) *requests.RegisterPatientRequest {
		return &requests.RegisterPatientRequest{
			LinkToken:         "token",
			FullName:          "Maria da Silva",
			CPF:               cpf,
			BirthDate:         "1990-04-12",
			PhoneNumber:       "+5511999990000",
			Email:             "maria@example.com",
			AddressStreet:       "Rua das Flores",
			AddressNumber:       "100",
			AddressNeighborhood: "Bela Vista",
			AddressCity:         "São Paulo",
			AddressState:        "SP",
			AddressZip:          "01310-100",
			DoctorID:            "doctor-001",
			Date:                futureDate,
			Time:                "14:00",
		}
	}

	t.Run("Valid CPF", func(t *testing.T) {
		// 529.982.247-25 is a well-known valid test CPF.
		assert.NoError(t, ValidateStruct(validRequest("52998224725")))
	})

	t.Run("Wrong Check Digits", func(t *testing.T) {
		assert.Error(t, ValidateStruct(validRequest("52998224726")))
	})

	t.Run("All Same Digits", func(t *testing.T) {
		assert.Error(t, ValidateStruct(validRequest("11111111111")))
	})

	t.Run("Too Short", func(t *testing.T) {
		assert.Error(t, ValidateStruct(validRequest("5299822472")))
	})
}
