// Package booking derives bookable slots from recurring work schedules
// and coordinates the appointment lifecycle against the store.
package booking

import (
	"salonbook/apperrors"
	"salonbook/models"
	"salonbook/store"
	"salonbook/utils"
)

// SlotStep is the fixed stepping between candidate start times, in
// minutes, regardless of service duration.
const SlotStep = 30

type Engine struct {
	store *store.Store
}

func NewEngine(st *store.Store) *Engine {
	return &Engine{store: st}
}

// AvailableSlots returns the ordered "HH:MM" start times still open for a
// (professional, service, date) triple. A day without a work schedule
// yields an empty list, not an error. Results are recomputed fresh on
// every call.
func (e *Engine) AvailableSlots(professionalID, serviceID uint, date string) ([]string, error) {
	if _, ok := e.store.GetProfessional(professionalID); !ok {
		return nil, apperrors.NewNotFoundError("professional %d", professionalID)
	}
	svc, ok := e.store.GetService(serviceID)
	if !ok {
		return nil, apperrors.NewNotFoundError("service %d", serviceID)
	}

	weekday, err := utils.DateWeekday(date)
	if err != nil {
		return nil, apperrors.NewValidationError("%v", err)
	}

	schedule, ok := e.store.ScheduleFor(professionalID, models.DayOfWeek(weekday))
	if !ok {
		return []string{}, nil
	}

	open, err := utils.ParseClock(schedule.StartTime)
	if err != nil {
		return nil, apperrors.NewInternalError("corrupt schedule start time", err)
	}
	closing, err := utils.ParseClock(schedule.EndTime)
	if err != nil {
		return nil, apperrors.NewInternalError("corrupt schedule end time", err)
	}

	booked, err := blockingIntervals(e.store.AppointmentsForSlotCheck(professionalID, date))
	if err != nil {
		return nil, err
	}

	slots := []string{}
	for start := open; start+svc.Duration <= closing; start += SlotStep {
		if conflicts(start, start+svc.Duration, booked) {
			continue
		}
		slots = append(slots, utils.FormatClock(start))
	}
	return slots, nil
}

type interval struct {
	start int
	end   int
}

func blockingIntervals(appointments []models.Appointment) ([]interval, error) {
	out := make([]interval, 0, len(appointments))
	for _, a := range appointments {
		start, err := utils.ParseClock(a.StartTime)
		if err != nil {
			return nil, apperrors.NewInternalError("corrupt appointment start time", err)
		}
		end, err := utils.ParseClock(a.EndTime)
		if err != nil {
			return nil, apperrors.NewInternalError("corrupt appointment end time", err)
		}
		out = append(out, interval{start: start, end: end})
	}
	return out, nil
}

// conflicts checks full interval overlap, not just equal start times, so
// bookings of different durations cannot slip past each other.
func conflicts(start, end int, booked []interval) bool {
	for _, b := range booked {
		if start < b.end && b.start < end {
			return true
		}
	}
	return false
}
