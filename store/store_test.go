package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/apperrors"
	"salonbook/models"
	"salonbook/store"
)

func newUser(username, email string) models.User {
	return models.User{
		Name: "User " + username, UserName: username, Email: email,
		Password: "hash", Role: models.RoleClient,
	}
}

func TestCreateUser_AssignsMonotonicIDs(t *testing.T) {
	st := store.New()

	first, err := st.CreateUser(newUser("a", "a@example.com"))
	require.NoError(t, err)
	second, err := st.CreateUser(newUser("b", "b@example.com"))
	require.NoError(t, err)

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)

	// Ids are never reused, even after a delete.
	require.True(t, st.DeleteUser(second.ID))
	third, err := st.CreateUser(newUser("c", "c@example.com"))
	require.NoError(t, err)
	assert.Equal(t, uint(3), third.ID)
}

func TestCreateUser_UniqueEmailAndUsername(t *testing.T) {
	st := store.New()

	_, err := st.CreateUser(newUser("a", "a@example.com"))
	require.NoError(t, err)

	var validation *apperrors.ValidationError
	_, err = st.CreateUser(newUser("b", "a@example.com"))
	assert.ErrorAs(t, err, &validation)
	_, err = st.CreateUser(newUser("a", "b@example.com"))
	assert.ErrorAs(t, err, &validation)
}

func TestUpdateUser_MergesPartialFields(t *testing.T) {
	st := store.New()

	user, err := st.CreateUser(newUser("a", "a@example.com"))
	require.NoError(t, err)

	phone := "555-0100"
	updated, err := st.UpdateUser(user.ID, models.UserPatch{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, phone, updated.Phone)
	// Unspecified fields keep their prior value.
	assert.Equal(t, user.Name, updated.Name)
	assert.Equal(t, user.Email, updated.Email)
	assert.Equal(t, user.Role, updated.Role)
}

func TestUpdateUser_NotFound(t *testing.T) {
	st := store.New()
	name := "x"
	_, err := st.UpdateUser(42, models.UserPatch{Name: &name})
	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestGetUser_AbsenceIsNotAnError(t *testing.T) {
	st := store.New()
	_, ok := st.GetUser(1)
	assert.False(t, ok)
}

func TestCreateProfessional_UniqueDocument(t *testing.T) {
	st := store.New()

	_, err := st.CreateProfessional(models.Professional{Name: "A", Document: "111", Active: true})
	require.NoError(t, err)

	var validation *apperrors.ValidationError
	_, err = st.CreateProfessional(models.Professional{Name: "B", Document: "111", Active: true})
	assert.ErrorAs(t, err, &validation)
}

func TestCreateService_RejectsBadDurationAndPrice(t *testing.T) {
	st := store.New()
	var validation *apperrors.ValidationError

	_, err := st.CreateService(models.Service{Name: "Cut", Duration: 0, Price: 10})
	assert.ErrorAs(t, err, &validation)
	_, err = st.CreateService(models.Service{Name: "Cut", Duration: -30, Price: 10})
	assert.ErrorAs(t, err, &validation)
	_, err = st.CreateService(models.Service{Name: "Cut", Duration: 30, Price: -1})
	assert.ErrorAs(t, err, &validation)
}

func TestLinkProfessionalService_NoDuplicatePairs(t *testing.T) {
	st := store.New()

	professional, err := st.CreateProfessional(models.Professional{Name: "A", Document: "111", Active: true})
	require.NoError(t, err)
	service, err := st.CreateService(models.Service{Name: "Cut", Duration: 30, Price: 10, Active: true})
	require.NoError(t, err)

	_, err = st.LinkProfessionalService(professional.ID, service.ID)
	require.NoError(t, err)

	var validation *apperrors.ValidationError
	_, err = st.LinkProfessionalService(professional.ID, service.ID)
	assert.ErrorAs(t, err, &validation)

	assert.True(t, st.ProfessionalOffersService(professional.ID, service.ID))
	require.NoError(t, st.UnlinkProfessionalService(professional.ID, service.ID))
	assert.False(t, st.ProfessionalOffersService(professional.ID, service.ID))
}

func TestDeleteService_RejectedWhileLinked(t *testing.T) {
	st := store.New()

	professional, err := st.CreateProfessional(models.Professional{Name: "A", Document: "111", Active: true})
	require.NoError(t, err)
	service, err := st.CreateService(models.Service{Name: "Cut", Duration: 30, Price: 10, Active: true})
	require.NoError(t, err)
	_, err = st.LinkProfessionalService(professional.ID, service.ID)
	require.NoError(t, err)

	var conflict *apperrors.ConflictError
	assert.ErrorAs(t, st.DeleteService(service.ID), &conflict)

	require.NoError(t, st.UnlinkProfessionalService(professional.ID, service.ID))
	assert.NoError(t, st.DeleteService(service.ID))
}

func TestDeleteProfessional_RejectedWhileReferenced(t *testing.T) {
	st := store.New()

	professional, err := st.CreateProfessional(models.Professional{Name: "A", Document: "111", Active: true})
	require.NoError(t, err)
	_, err = st.CreateSchedule(models.WorkSchedule{
		ProfessionalID: professional.ID, DayOfWeek: models.Monday,
		StartTime: "09:00", EndTime: "12:00",
	})
	require.NoError(t, err)

	var conflict *apperrors.ConflictError
	assert.ErrorAs(t, st.DeleteProfessional(professional.ID), &conflict)
}

func TestCreateSchedule_Validation(t *testing.T) {
	st := store.New()

	professional, err := st.CreateProfessional(models.Professional{Name: "A", Document: "111", Active: true})
	require.NoError(t, err)

	var validation *apperrors.ValidationError

	// start must precede end; zero-length windows are rejected too.
	_, err = st.CreateSchedule(models.WorkSchedule{
		ProfessionalID: professional.ID, DayOfWeek: models.Monday,
		StartTime: "12:00", EndTime: "09:00",
	})
	assert.ErrorAs(t, err, &validation)
	_, err = st.CreateSchedule(models.WorkSchedule{
		ProfessionalID: professional.ID, DayOfWeek: models.Monday,
		StartTime: "09:00", EndTime: "09:00",
	})
	assert.ErrorAs(t, err, &validation)
	_, err = st.CreateSchedule(models.WorkSchedule{
		ProfessionalID: professional.ID, DayOfWeek: models.DayOfWeek(7),
		StartTime: "09:00", EndTime: "12:00",
	})
	assert.ErrorAs(t, err, &validation)
	_, err = st.CreateSchedule(models.WorkSchedule{
		ProfessionalID: professional.ID, DayOfWeek: models.Monday,
		StartTime: "9:00", EndTime: "12:00",
	})
	assert.ErrorAs(t, err, &validation)
}

func TestCreateSchedule_OnePerWeekday(t *testing.T) {
	st := store.New()

	professional, err := st.CreateProfessional(models.Professional{Name: "A", Document: "111", Active: true})
	require.NoError(t, err)

	_, err = st.CreateSchedule(models.WorkSchedule{
		ProfessionalID: professional.ID, DayOfWeek: models.Monday,
		StartTime: "09:00", EndTime: "12:00",
	})
	require.NoError(t, err)

	var validation *apperrors.ValidationError
	_, err = st.CreateSchedule(models.WorkSchedule{
		ProfessionalID: professional.ID, DayOfWeek: models.Monday,
		StartTime: "13:00", EndTime: "18:00",
	})
	assert.ErrorAs(t, err, &validation)

	// A different weekday is fine.
	_, err = st.CreateSchedule(models.WorkSchedule{
		ProfessionalID: professional.ID, DayOfWeek: models.Tuesday,
		StartTime: "13:00", EndTime: "18:00",
	})
	assert.NoError(t, err)
}

func TestCreateAppointment_OverlapRejected(t *testing.T) {
	st := store.New()

	base := models.Appointment{
		UserID: 1, ProfessionalID: 1, ServiceID: 1,
		Date: "2025-06-02", StartTime: "10:00", EndTime: "11:00",
		Status: models.StatusScheduled,
	}
	_, err := st.CreateAppointment(base)
	require.NoError(t, err)

	var conflict *apperrors.ConflictError

	// Exact duplicate and partial overlaps on either side all collide.
	for _, window := range []struct{ start, end string }{
		{"10:00", "11:00"},
		{"10:30", "11:30"},
		{"09:30", "10:30"},
		{"09:00", "12:00"},
	} {
		a := base
		a.StartTime, a.EndTime = window.start, window.end
		_, err := st.CreateAppointment(a)
		assert.ErrorAs(t, err, &conflict, "window %s-%s must collide", window.start, window.end)
	}

	// Back to back is not an overlap.
	a := base
	a.StartTime, a.EndTime = "11:00", "12:00"
	_, err = st.CreateAppointment(a)
	assert.NoError(t, err)

	// A different professional shares the clock freely.
	b := base
	b.ProfessionalID = 2
	_, err = st.CreateAppointment(b)
	assert.NoError(t, err)
}

func TestCreateAppointment_NonBlockingStatusesDoNotCollide(t *testing.T) {
	st := store.New()

	cancelled := models.Appointment{
		UserID: 1, ProfessionalID: 1, ServiceID: 1,
		Date: "2025-06-02", StartTime: "10:00", EndTime: "11:00",
		Status: models.StatusCancelled,
	}
	_, err := st.CreateAppointment(cancelled)
	require.NoError(t, err)

	replacement := cancelled
	replacement.Status = models.StatusScheduled
	_, err = st.CreateAppointment(replacement)
	assert.NoError(t, err)
}

func TestAppointmentQueries(t *testing.T) {
	st := store.New()

	mk := func(user, professional uint, date, start, end string, status models.AppointmentStatus) models.Appointment {
		a, err := st.CreateAppointment(models.Appointment{
			UserID: user, ProfessionalID: professional, ServiceID: 1,
			Date: date, StartTime: start, EndTime: end, Status: status,
		})
		require.NoError(t, err)
		return a
	}

	mk(1, 1, "2025-06-02", "10:00", "11:00", models.StatusScheduled)
	mk(2, 1, "2025-06-02", "09:00", "10:00", models.StatusCompleted)
	mk(1, 2, "2025-06-03", "10:00", "11:00", models.StatusCancelled)

	assert.Len(t, st.AppointmentsByUser(1), 2)
	assert.Len(t, st.AppointmentsByProfessional(1), 2)
	assert.Len(t, st.AppointmentsByDate("2025-06-02"), 2)
	assert.Len(t, st.AppointmentsByStatus(models.StatusCancelled), 1)

	// Blocking set excludes the cancelled appointment and is time ordered.
	blocking := st.AppointmentsForSlotCheck(1, "2025-06-02")
	require.Len(t, blocking, 2)
	assert.Equal(t, "09:00", blocking[0].StartTime)
	assert.Equal(t, "10:00", blocking[1].StartTime)
}

func TestTransactionValidation(t *testing.T) {
	st := store.New()
	var validation *apperrors.ValidationError
	var notFound *apperrors.NotFoundError

	_, err := st.CreateTransaction(models.Transaction{Type: "transfer", Amount: 10, Date: "2025-06-02"})
	assert.ErrorAs(t, err, &validation)

	_, err = st.CreateTransaction(models.Transaction{Type: models.TransactionIncome, Amount: 0, Date: "2025-06-02"})
	assert.ErrorAs(t, err, &validation)

	missing := uint(42)
	_, err = st.CreateTransaction(models.Transaction{
		Type: models.TransactionIncome, Amount: 10, Date: "2025-06-02", AppointmentID: &missing,
	})
	assert.ErrorAs(t, err, &notFound)
}

func TestTransactionsByRange(t *testing.T) {
	st := store.New()

	for _, e := range []struct {
		date   string
		typ    models.TransactionType
		amount float64
	}{
		{"2025-06-01", models.TransactionIncome, 100},
		{"2025-06-02", models.TransactionExpense, 40},
		{"2025-06-03", models.TransactionIncome, 60},
		{"2025-07-01", models.TransactionIncome, 999},
	} {
		_, err := st.CreateTransaction(models.Transaction{Type: e.typ, Amount: e.amount, Date: e.date})
		require.NoError(t, err)
	}

	all := st.TransactionsByRange("2025-06-01", "2025-06-30", nil)
	require.Len(t, all, 3)
	assert.Equal(t, "2025-06-01", all[0].Date)

	income := models.TransactionIncome
	onlyIncome := st.TransactionsByRange("2025-06-01", "2025-06-30", &income)
	assert.Len(t, onlyIncome, 2)
}
