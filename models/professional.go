package models

import (
	"time"
)

// Professional is a service-providing staff member, distinct from the
// authentication User. Document holds the CPF-style national id and is
// unique across professionals.
type Professional struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Document  string    `json:"document"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProfessionalPatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Document *string `json:"document"`
	Active   *bool   `json:"active"`
}
