package models

type Doctor struct {
	ID             string `json:"id" bson:"_id,omitempty"`
	Name           string `json:"name" bson:"name"`
	Specialization string `json:"specialization" bson:"specialization"`
	InstitutionID  string `json:"institution_id" bson:"institution_id"`
}
