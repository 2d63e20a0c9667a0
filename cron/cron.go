package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"salonbook/models"
	"salonbook/store"
	"salonbook/utils"
)

// Reminder emails clients about appointments starting in roughly one
// hour. With no mailer configured it only logs, which keeps development
// environments quiet.
type Reminder struct {
	store  *store.Store
	mailer *utils.Mailer
}

// StartReminderJob schedules the reminder scan every minute and returns
// the running scheduler so the caller can stop it.
func StartReminderJob(st *store.Store, mailer *utils.Mailer) *cron.Cron {
	r := &Reminder{store: st, mailer: mailer}
	c := cron.New()
	if _, err := c.AddFunc("* * * * *", r.sendAppointmentReminders); err != nil {
		log.Fatalf("Failed to add reminder cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
	return c
}

func (r *Reminder) sendAppointmentReminders() {
	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)
	today := now.Format(utils.DateLayout)

	appointments := r.store.AppointmentsWhere(func(a models.Appointment) bool {
		return a.Status == models.StatusScheduled && a.Date == today
	})

	for _, appointment := range appointments {
		startAt, err := time.ParseInLocation(
			utils.DateLayout+" "+utils.ClockLayout,
			appointment.Date+" "+appointment.StartTime, time.Local)
		if err != nil {
			log.Printf("Skipping appointment %d with bad start time: %v", appointment.ID, err)
			continue
		}
		if startAt.Before(startWindow) || startAt.After(endWindow) {
			continue
		}
		if err := r.sendReminder(appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
		}
	}
}

func (r *Reminder) sendReminder(appointment models.Appointment) error {
	user, ok := r.store.GetUser(appointment.UserID)
	if !ok {
		return fmt.Errorf("user %d not found", appointment.UserID)
	}
	service, ok := r.store.GetService(appointment.ServiceID)
	if !ok {
		return fmt.Errorf("service %d not found", appointment.ServiceID)
	}
	professional, ok := r.store.GetProfessional(appointment.ProfessionalID)
	if !ok {
		return fmt.Errorf("professional %d not found", appointment.ProfessionalID)
	}

	if r.mailer == nil {
		log.Printf("Reminder: appointment %d for %s at %s", appointment.ID, user.Email, appointment.StartTime)
		return nil
	}

	subject := fmt.Sprintf("Reminder: Upcoming Appointment - %s", service.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Professional:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Salon Team</p>
	`, user.Name, service.Name, professional.Name,
		appointment.Date, appointment.StartTime, appointment.EndTime)

	if err := r.mailer.Send(user.Email, subject, body); err != nil {
		return err
	}
	log.Printf("Sent reminder for appointment %d to %s", appointment.ID, user.Email)
	return nil
}
