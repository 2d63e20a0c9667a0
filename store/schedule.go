package store

import (
	"sort"

	"salonbook/apperrors"
	"salonbook/models"
)

// CreateSchedule stores one recurring weekly window. A professional may
// hold only one schedule per day of week, so which window is authoritative
// is never ambiguous.
func (s *Store) CreateSchedule(ws models.WorkSchedule) (models.WorkSchedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.professionals[ws.ProfessionalID]; !ok {
		return models.WorkSchedule{}, apperrors.NewNotFoundError("professional %d", ws.ProfessionalID)
	}
	if err := validateWindow(ws.DayOfWeek, ws.StartTime, ws.EndTime); err != nil {
		return models.WorkSchedule{}, err
	}
	for _, existing := range s.schedules {
		if existing.ProfessionalID == ws.ProfessionalID && existing.DayOfWeek == ws.DayOfWeek {
			return models.WorkSchedule{}, apperrors.NewValidationError(
				"professional %d already has a schedule for day %d", ws.ProfessionalID, ws.DayOfWeek)
		}
	}

	ws.ID = next(&s.scheduleSeq)
	s.schedules[ws.ID] = ws
	return ws, nil
}

func (s *Store) GetSchedule(id uint) (models.WorkSchedule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ws, ok := s.schedules[id]
	return ws, ok
}

// ScheduleFor returns the professional's schedule for a weekday, if any.
// No schedule simply means the professional does not work that day.
func (s *Store) ScheduleFor(professionalID uint, day models.DayOfWeek) (models.WorkSchedule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ws := range s.schedules {
		if ws.ProfessionalID == professionalID && ws.DayOfWeek == day {
			return ws, true
		}
	}
	return models.WorkSchedule{}, false
}

func (s *Store) UpdateSchedule(id uint, patch models.WorkSchedulePatch) (models.WorkSchedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws, ok := s.schedules[id]
	if !ok {
		return models.WorkSchedule{}, apperrors.NewNotFoundError("work schedule %d", id)
	}

	if patch.DayOfWeek != nil {
		ws.DayOfWeek = *patch.DayOfWeek
	}
	if patch.StartTime != nil {
		ws.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		ws.EndTime = *patch.EndTime
	}
	if err := validateWindow(ws.DayOfWeek, ws.StartTime, ws.EndTime); err != nil {
		return models.WorkSchedule{}, err
	}
	for _, existing := range s.schedules {
		if existing.ID != id && existing.ProfessionalID == ws.ProfessionalID && existing.DayOfWeek == ws.DayOfWeek {
			return models.WorkSchedule{}, apperrors.NewValidationError(
				"professional %d already has a schedule for day %d", ws.ProfessionalID, ws.DayOfWeek)
		}
	}

	s.schedules[id] = ws
	return ws, nil
}

func (s *Store) DeleteSchedule(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.schedules[id]; !ok {
		return apperrors.NewNotFoundError("work schedule %d", id)
	}
	delete(s.schedules, id)
	return nil
}

func (s *Store) ListSchedules(professionalID uint) []models.WorkSchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.WorkSchedule
	for _, ws := range s.schedules {
		if ws.ProfessionalID == professionalID {
			out = append(out, ws)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayOfWeek < out[j].DayOfWeek })
	return out
}

func validateWindow(day models.DayOfWeek, start, end string) error {
	if !day.Valid() {
		return apperrors.NewValidationError("day of week must be 0..6, got %d", day)
	}
	if !validClock(start) || !validClock(end) {
		return apperrors.NewValidationError("times must use HH:MM, got %q..%q", start, end)
	}
	// Zero-padded HH:MM compares lexicographically in chronological order.
	if start >= end {
		return apperrors.NewValidationError("start time %s must be before end time %s", start, end)
	}
	return nil
}

func validClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	return hh < 24 && mm < 60
}
