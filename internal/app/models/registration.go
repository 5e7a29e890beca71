package models

import "time"

type TimeModel struct {
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Registration is a stored patient registration. The identifier is assigned
// by the store at insert time and never changes; only Status mutates after
// creation.
type Registration struct {
	ID            string `bson:"_id,omitempty"`
	FullName      string `bson:"full_name"`
	Email         string `bson:"email"`
	Phone         string `bson:"phone"`
	BirthDate     string `bson:"birth_date,omitempty"`
	Gender        string `bson:"gender,omitempty"`
	Address       string `bson:"address,omitempty"`
	Department    string `bson:"department"`
	PreferredDate string `bson:"preferred_date,omitempty"`
	Symptoms      string `bson:"symptoms,omitempty"`
	Status        string `bson:"status"`
	TimeModel     `bson:",inline"`
}
