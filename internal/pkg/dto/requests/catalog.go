package requests

type CreateProductRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=120"`
	Category       string `json:"category" validate:"required,min=2,max=60"`
	DisplayPrice   string `json:"display_price" validate:"required"`
	ImageBase64    string `json:"image_base64,omitempty"`
	ImageExtension string `json:"image_extension,omitempty" validate:"omitempty,oneof=png jpg jpeg webp"`
}

type CreateDoctorRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=120"`
	Specialization string `json:"specialization" validate:"required,min=2,max=80"`
	InstitutionID  string `json:"institution_id" validate:"required"`
}
