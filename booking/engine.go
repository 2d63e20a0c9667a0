package booking

import (
	"salonbook/apperrors"
	"salonbook/models"
	"salonbook/utils"
)

// BookingRequest carries everything needed to create an appointment. End
// time is derived from the service duration, never supplied by the caller.
type BookingRequest struct {
	UserID         uint   `json:"user_id"`
	ProfessionalID uint   `json:"professional_id"`
	ServiceID      uint   `json:"service_id"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	Notes          string `json:"notes"`
}

// Book validates the request against schedules and qualifications, then
// hands the store an atomic conditional insert. A booking for a taken
// slot, sequential or racing, loses with a ConflictError.
func (e *Engine) Book(req BookingRequest) (models.Appointment, error) {
	if _, ok := e.store.GetUser(req.UserID); !ok {
		return models.Appointment{}, apperrors.NewValidationError("user %d does not resolve", req.UserID)
	}
	professional, ok := e.store.GetProfessional(req.ProfessionalID)
	if !ok {
		return models.Appointment{}, apperrors.NewValidationError("professional %d does not resolve", req.ProfessionalID)
	}
	if !professional.Active {
		return models.Appointment{}, apperrors.NewValidationError("professional %d is not active", req.ProfessionalID)
	}
	svc, ok := e.store.GetService(req.ServiceID)
	if !ok {
		return models.Appointment{}, apperrors.NewValidationError("service %d does not resolve", req.ServiceID)
	}
	if !svc.Active {
		return models.Appointment{}, apperrors.NewValidationError("service %d is not active", req.ServiceID)
	}
	if !e.store.ProfessionalOffersService(req.ProfessionalID, req.ServiceID) {
		return models.Appointment{}, apperrors.NewValidationError(
			"professional %d does not offer service %d", req.ProfessionalID, req.ServiceID)
	}

	weekday, err := utils.DateWeekday(req.Date)
	if err != nil {
		return models.Appointment{}, apperrors.NewValidationError("%v", err)
	}
	schedule, ok := e.store.ScheduleFor(req.ProfessionalID, models.DayOfWeek(weekday))
	if !ok {
		return models.Appointment{}, apperrors.NewValidationError(
			"professional %d does not work on %s", req.ProfessionalID, req.Date)
	}

	start, err := utils.ParseClock(req.StartTime)
	if err != nil {
		return models.Appointment{}, apperrors.NewValidationError("%v", err)
	}
	open, err := utils.ParseClock(schedule.StartTime)
	if err != nil {
		return models.Appointment{}, apperrors.NewInternalError("corrupt schedule start time", err)
	}
	closing, err := utils.ParseClock(schedule.EndTime)
	if err != nil {
		return models.Appointment{}, apperrors.NewInternalError("corrupt schedule end time", err)
	}

	// Only slot geometry is validated here. Whether the slot is taken
	// is decided by the store's locked overlap re-check, so a race on
	// the same slot loses with a ConflictError, never a ValidationError.
	if start < open || (start-open)%SlotStep != 0 {
		return models.Appointment{}, apperrors.NewValidationError(
			"start time %s is not on the %d minute grid from %s", req.StartTime, SlotStep, schedule.StartTime)
	}
	if start+svc.Duration > closing {
		return models.Appointment{}, apperrors.NewValidationError(
			"service of %d minutes starting at %s does not fit before closing at %s",
			svc.Duration, req.StartTime, schedule.EndTime)
	}

	return e.store.CreateAppointment(models.Appointment{
		UserID:         req.UserID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        utils.FormatClock(start + svc.Duration),
		Status:         models.StatusScheduled,
		Notes:          req.Notes,
	})
}

// UpdateStatus moves an appointment along the state machine. Terminal
// states reject every transition.
func (e *Engine) UpdateStatus(id uint, status models.AppointmentStatus) (models.Appointment, error) {
	return e.store.UpdateAppointmentStatus(id, status)
}

// Cancel marks the appointment cancelled, freeing its slot. Any ledger
// entry already recorded for it is left untouched.
func (e *Engine) Cancel(id uint) (models.Appointment, error) {
	return e.store.UpdateAppointmentStatus(id, models.StatusCancelled)
}

// Delete removes the appointment record entirely.
func (e *Engine) Delete(id uint) error {
	return e.store.DeleteAppointment(id)
}
