package responses

type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	DisplayPrice string `json:"display_price"`
	ImageURL     string `json:"image_url,omitempty"`
}

type Doctor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	InstitutionID  string `json:"institution_id,omitempty"`
}
