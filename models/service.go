package models

import (
	"time"
)

type Service struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"` // minutes
	Price       float64   `json:"price"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ServicePatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Duration    *int     `json:"duration"`
	Price       *float64 `json:"price"`
	Active      *bool    `json:"active"`
}

// ProfessionalService links a professional to a service it is qualified
// to perform. The (ProfessionalID, ServiceID) pair is unique.
type ProfessionalService struct {
	ID             uint `json:"id"`
	ProfessionalID uint `json:"professional_id"`
	ServiceID      uint `json:"service_id"`
}
