package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/apperrors"
	"salonbook/booking"
	"salonbook/models"
	"salonbook/store"
)

// 2025-06-02 is a Monday, 2025-06-03 a Tuesday.
const (
	monday  = "2025-06-02"
	tuesday = "2025-06-03"
)

type fixture struct {
	store        *store.Store
	engine       *booking.Engine
	user         models.User
	professional models.Professional
	service      models.Service
}

// newFixture builds a store with one client, one professional working
// Monday 09:00-12:00 and one linked 60 minute service.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := store.New()

	user, err := st.CreateUser(models.User{
		Name: "Alice", UserName: "alice", Email: "alice@example.com",
		Password: "secret", Role: models.RoleClient,
	})
	require.NoError(t, err)

	professional, err := st.CreateProfessional(models.Professional{
		Name: "Bruno", Email: "bruno@example.com", Document: "123.456.789-00", Active: true,
	})
	require.NoError(t, err)

	service, err := st.CreateService(models.Service{
		Name: "Haircut", Duration: 60, Price: 50, Active: true,
	})
	require.NoError(t, err)

	_, err = st.LinkProfessionalService(professional.ID, service.ID)
	require.NoError(t, err)

	_, err = st.CreateSchedule(models.WorkSchedule{
		ProfessionalID: professional.ID,
		DayOfWeek:      models.Monday,
		StartTime:      "09:00",
		EndTime:        "12:00",
	})
	require.NoError(t, err)

	return &fixture{
		store:        st,
		engine:       booking.NewEngine(st),
		user:         user,
		professional: professional,
		service:      service,
	}
}

func TestAvailableSlots_FullDay(t *testing.T) {
	f := newFixture(t)

	slots, err := f.engine.AvailableSlots(f.professional.ID, f.service.ID, monday)
	require.NoError(t, err)

	// 11:00 + 60min closes exactly at 12:00 and still fits; 11:30 would not.
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, slots)
}

func TestAvailableSlots_NoScheduleThatDay(t *testing.T) {
	f := newFixture(t)

	slots, err := f.engine.AvailableSlots(f.professional.ID, f.service.ID, tuesday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlots_DurationLongerThanWindow(t *testing.T) {
	f := newFixture(t)

	long, err := f.store.CreateService(models.Service{Name: "Full makeover", Duration: 240, Price: 200, Active: true})
	require.NoError(t, err)

	slots, err := f.engine.AvailableSlots(f.professional.ID, long.ID, monday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlots_Idempotent(t *testing.T) {
	f := newFixture(t)

	first, err := f.engine.AvailableSlots(f.professional.ID, f.service.ID, monday)
	require.NoError(t, err)
	second, err := f.engine.AvailableSlots(f.professional.ID, f.service.ID, monday)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAvailableSlots_BookedSlotBlocksOverlaps(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.Book(booking.BookingRequest{
		UserID:         f.user.ID,
		ProfessionalID: f.professional.ID,
		ServiceID:      f.service.ID,
		Date:           monday,
		StartTime:      "10:00",
	})
	require.NoError(t, err)

	slots, err := f.engine.AvailableSlots(f.professional.ID, f.service.ID, monday)
	require.NoError(t, err)

	// Interval overlap, not just equal start times: a 60 minute booking at
	// 10:00 also removes 09:30 and 10:30, whose hours would run into it.
	assert.Equal(t, []string{"09:00", "11:00"}, slots)
	assert.NotContains(t, slots, "10:00")
}

func TestAvailableSlots_CancelledAppointmentFreesSlot(t *testing.T) {
	f := newFixture(t)

	appointment, err := f.engine.Book(booking.BookingRequest{
		UserID:         f.user.ID,
		ProfessionalID: f.professional.ID,
		ServiceID:      f.service.ID,
		Date:           monday,
		StartTime:      "10:00",
	})
	require.NoError(t, err)

	_, err = f.engine.Cancel(appointment.ID)
	require.NoError(t, err)

	slots, err := f.engine.AvailableSlots(f.professional.ID, f.service.ID, monday)
	require.NoError(t, err)
	assert.Contains(t, slots, "10:00")
}

func TestAvailableSlots_UnknownIDs(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.AvailableSlots(99, f.service.ID, monday)
	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = f.engine.AvailableSlots(f.professional.ID, 99, monday)
	assert.ErrorAs(t, err, &notFound)
}

func TestAvailableSlots_BadDate(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.AvailableSlots(f.professional.ID, f.service.ID, "02/06/2025")
	var validation *apperrors.ValidationError
	assert.ErrorAs(t, err, &validation)
}
