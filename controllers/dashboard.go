package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"salonbook/ledger"
	"salonbook/models"
	"salonbook/store"
)

type DashboardController struct {
	Store  *store.Store
	Ledger *ledger.Ledger
}

func NewDashboardController(st *store.Store, l *ledger.Ledger) *DashboardController {
	return &DashboardController{Store: st, Ledger: l}
}

// GetOverview returns appointment counts by status, service revenue from
// completed appointments and the ledger net for the requested range.
func (dc *DashboardController) GetOverview(c *fiber.Ctx) error {
	from := c.Query("from", "0000-01-01")
	to := c.Query("to", "9999-12-31")

	var statistics struct {
		TotalAppointments int            `json:"total_appointments"`
		ScheduledCount    int            `json:"scheduled_count"`
		CompletedCount    int            `json:"completed_count"`
		CancelledCount    int            `json:"cancelled_count"`
		NoShowCount       int            `json:"no_show_count"`
		ServiceRevenue    float64        `json:"service_revenue"`
		Ledger            ledger.Summary `json:"ledger"`
		LastUpdated       time.Time      `json:"last_updated"`
	}

	appointments := dc.Store.AppointmentsWhere(func(a models.Appointment) bool {
		return a.Date >= from && a.Date <= to
	})
	statistics.TotalAppointments = len(appointments)
	for _, a := range appointments {
		switch a.Status {
		case models.StatusScheduled:
			statistics.ScheduledCount++
		case models.StatusCompleted:
			statistics.CompletedCount++
			if svc, ok := dc.Store.GetService(a.ServiceID); ok {
				statistics.ServiceRevenue += svc.Price
			}
		case models.StatusCancelled:
			statistics.CancelledCount++
		case models.StatusNoShow:
			statistics.NoShowCount++
		}
	}

	statistics.Ledger = dc.Ledger.Summarize(from, to)
	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}
