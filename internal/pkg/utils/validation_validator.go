package utils

import (
	"time"

	"mediplant-service/internal/app/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("cpf", validateCPF)
	validate.RegisterValidation("slot_time", validateSlotTime)
	validate.RegisterValidation("appointment_type", validateAppointmentType)
	validate.RegisterValidation("not_past_date", validateNotPastDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateCPF checks the two verification digits of a Brazilian CPF. The
// input is expected to be pre-normalized to bare digits.
func validateCPF(fl validator.FieldLevel) bool {
	cpf := fl.Field().String()
	if len(cpf) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < 11; i++ {
		if cpf[i] != cpf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	digit := func(i int) int { return int(cpf[i] - '0') }

	sum := 0
	for i := 0; i < 9; i++ {
		sum += digit(i) * (10 - i)
	}
	check := (sum * 10) % 11 % 10
	if check != digit(9) {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += digit(i) * (11 - i)
	}
	check = (sum * 10) % 11 % 10
	return check == digit(10)
}

func validateSlotTime(fl validator.FieldLevel) bool {
	return models.IsCanonicalSlot(fl.Field().String())
}

func validateAppointmentType(fl validator.FieldLevel) bool {
	return models.IsValidAppointmentType(fl.Field().String())
}

func validateNotPastDate(fl validator.FieldLevel) bool {
	parsed, err := time.Parse("2006-01-02", fl.Field().String())
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !parsed.Before(today)
}
