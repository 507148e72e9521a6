package utils

import (
	"mediplant-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeAddCartItemRequest(input *requests.AddCartItemRequest) {
	input.ProductID = strings.TrimSpace(input.ProductID)
	if input.Quantity == 0 {
		input.Quantity = 1
	}
}

func SanitizeUpdateCartQuantityRequest(input *requests.UpdateCartQuantityRequest) {
	input.ProductID = strings.TrimSpace(input.ProductID)
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointmentRequest) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.Type = strings.TrimSpace(strings.ToLower(input.Type))
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeRegisterPatientRequest(input *requests.RegisterPatientRequest) {
	input.LinkToken = strings.TrimSpace(input.LinkToken)
	input.FullName = strings.TrimSpace(input.FullName)
	input.CPF = normalizeCPF(input.CPF)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.AddressStreet = strings.TrimSpace(input.AddressStreet)
	input.AddressNumber = strings.TrimSpace(input.AddressNumber)
	input.AddressComplement = strings.TrimSpace(input.AddressComplement)
	input.AddressNeighborhood = strings.TrimSpace(input.AddressNeighborhood)
	input.AddressCity = strings.TrimSpace(input.AddressCity)
	input.AddressState = strings.TrimSpace(strings.ToUpper(input.AddressState))
	input.AddressZip = strings.TrimSpace(input.AddressZip)
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
}

func SanitizeCreateProductRequest(input *requests.CreateProductRequest) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	input.DisplayPrice = strings.TrimSpace(input.DisplayPrice)
	input.ImageExtension = strings.TrimSpace(strings.ToLower(input.ImageExtension))
}

func SanitizeCreateDoctorRequest(input *requests.CreateDoctorRequest) {
	input.Name = strings.TrimSpace(input.Name)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.InstitutionID = strings.TrimSpace(input.InstitutionID)
}

// normalizeCPF strips the usual "000.000.000-00" punctuation so validation
// and storage always see eleven digits.
func normalizeCPF(cpf string) string {
	var digits strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}
