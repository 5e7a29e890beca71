package responses

import "time"

// RegistrationPublic is the only shape a registration ever leaves the API in.
// Contact and medical details (email, phone, address, symptoms, birth date,
// gender) are masked out of every listing, admin views included.
type RegistrationPublic struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	Department    string    `json:"department"`
	PreferredDate *string   `json:"preferred_date"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateRegistration struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type UpdateRegistrationStatus struct {
	Message string `json:"message"`
}
