package store

import (
	"sort"
	"time"

	"salonbook/apperrors"
	"salonbook/models"
)

// CreateAppointment is the atomic conditional insert guarding against
// double booking: the overlap re-check and the write happen under the same
// lock, so two racing bookings for one slot cannot both succeed. Callers
// validate schedules and qualifications beforehand; this is the last line.
func (s *Store) CreateAppointment(a models.Appointment) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.Status == "" {
		a.Status = models.StatusScheduled
	}
	if !a.Status.Valid() {
		return models.Appointment{}, apperrors.NewValidationError("unknown status %q", a.Status)
	}

	for _, existing := range s.appointments {
		if existing.ProfessionalID != a.ProfessionalID || existing.Date != a.Date || !existing.Blocking() {
			continue
		}
		if overlaps(a.StartTime, a.EndTime, existing.StartTime, existing.EndTime) {
			return models.Appointment{}, apperrors.NewConflictError(
				"professional %d already booked on %s from %s to %s",
				a.ProfessionalID, existing.Date, existing.StartTime, existing.EndTime)
		}
	}

	a.ID = next(&s.appointmentSeq)
	a.CreatedAt = time.Now()
	s.appointments[a.ID] = a
	return a, nil
}

func (s *Store) GetAppointment(id uint) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.appointments[id]
	return a, ok
}

// UpdateAppointmentStatus applies a state-machine transition atomically.
// The only edges are scheduled -> completed | cancelled | no-show.
func (s *Store) UpdateAppointmentStatus(id uint, status models.AppointmentStatus) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return models.Appointment{}, apperrors.NewNotFoundError("appointment %d", id)
	}
	if !status.Valid() {
		return models.Appointment{}, apperrors.NewValidationError("unknown status %q", status)
	}
	if !a.Status.CanTransition(status) {
		return models.Appointment{}, apperrors.NewInvalidTransitionError(string(a.Status), string(status))
	}

	a.Status = status
	s.appointments[id] = a
	return a, nil
}

func (s *Store) UpdateAppointmentNotes(id uint, patch models.AppointmentPatch) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return models.Appointment{}, apperrors.NewNotFoundError("appointment %d", id)
	}
	if patch.Notes != nil {
		a.Notes = *patch.Notes
	}
	s.appointments[id] = a
	return a, nil
}

func (s *Store) DeleteAppointment(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.appointments[id]; !ok {
		return apperrors.NewNotFoundError("appointment %d", id)
	}
	delete(s.appointments, id)
	return nil
}

// AppointmentsWhere returns all appointments matching the predicate,
// ordered by date then start time.
func (s *Store) AppointmentsWhere(match func(models.Appointment) bool) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Appointment
	for _, a := range s.appointments {
		if match(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Store) AppointmentsByUser(userID uint) []models.Appointment {
	return s.AppointmentsWhere(func(a models.Appointment) bool { return a.UserID == userID })
}

func (s *Store) AppointmentsByProfessional(professionalID uint) []models.Appointment {
	return s.AppointmentsWhere(func(a models.Appointment) bool { return a.ProfessionalID == professionalID })
}

func (s *Store) AppointmentsByDate(date string) []models.Appointment {
	return s.AppointmentsWhere(func(a models.Appointment) bool { return a.Date == date })
}

func (s *Store) AppointmentsByStatus(status models.AppointmentStatus) []models.Appointment {
	return s.AppointmentsWhere(func(a models.Appointment) bool { return a.Status == status })
}

// AppointmentsForSlotCheck returns the blocking appointments for one
// professional on one date, the set the availability calculator runs
// against.
func (s *Store) AppointmentsForSlotCheck(professionalID uint, date string) []models.Appointment {
	return s.AppointmentsWhere(func(a models.Appointment) bool {
		return a.ProfessionalID == professionalID && a.Date == date && a.Blocking()
	})
}

// overlaps reports whether [aStart,aEnd) intersects [bStart,bEnd). The
// comparison is lexicographic, valid because HH:MM is zero-padded and
// fixed width.
func overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}
