package requests

// CreateRegistration is the public submission payload. Date fields are
// checked as YYYY-MM-DD patterns only, calendar validity is not enforced.
type CreateRegistration struct {
	FullName      string `json:"full_name" validate:"required,min=3"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=8,max=20"`
	BirthDate     string `json:"birth_date,omitempty" validate:"omitempty,date_format"`
	Gender        string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Address       string `json:"address,omitempty"`
	Department    string `json:"department" validate:"required"`
	PreferredDate string `json:"preferred_date,omitempty" validate:"omitempty,date_format"`
	Symptoms      string `json:"symptoms,omitempty"`
}

type UpdateRegistrationStatus struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type ListRegistrations struct {
	Limit int
}
