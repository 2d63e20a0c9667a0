package models

import (
	"time"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no-show"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// CanTransition reports whether the state machine allows moving from s to
// next. The only defined edges are scheduled -> completed|cancelled|no-show.
func (s AppointmentStatus) CanTransition(next AppointmentStatus) bool {
	if s != StatusScheduled {
		return false
	}
	return next == StatusCompleted || next == StatusCancelled || next == StatusNoShow
}

// Appointment is a booked slot. Date uses "YYYY-MM-DD", StartTime and
// EndTime use "HH:MM"; both formats are zero-padded so lexicographic
// order matches chronological order.
type Appointment struct {
	ID             uint              `json:"id"`
	UserID         uint              `json:"user_id"`
	ProfessionalID uint              `json:"professional_id"`
	ServiceID      uint              `json:"service_id"`
	Date           string            `json:"date"`
	StartTime      string            `json:"start_time"`
	EndTime        string            `json:"end_time"`
	Status         AppointmentStatus `json:"status"`
	Notes          string            `json:"notes"`
	CreatedAt      time.Time         `json:"created_at"`
}

// Blocking reports whether the appointment occupies its time slot.
// Cancelled and no-show appointments free the slot for rebooking.
func (a *Appointment) Blocking() bool {
	return a.Status == StatusScheduled || a.Status == StatusCompleted
}

type AppointmentPatch struct {
	Notes *string `json:"notes"`
}
