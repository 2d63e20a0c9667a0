package models

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

func (d DayOfWeek) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// WorkSchedule is one recurring weekly working window for a professional.
// StartTime and EndTime use the "HH:MM" 24h format. A professional has at
// most one schedule per day of week; duplicates are rejected at write time.
type WorkSchedule struct {
	ID             uint      `json:"id"`
	ProfessionalID uint      `json:"professional_id"`
	DayOfWeek      DayOfWeek `json:"day_of_week"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
}

type WorkSchedulePatch struct {
	DayOfWeek *DayOfWeek `json:"day_of_week"`
	StartTime *string    `json:"start_time"`
	EndTime   *string    `json:"end_time"`
}
