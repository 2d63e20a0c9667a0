package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"golang.org/x/crypto/bcrypt"

	"salonbook/booking"
	"salonbook/config"
	"salonbook/controllers"
	"salonbook/cron"
	"salonbook/ledger"
	"salonbook/models"
	"salonbook/routes"
	"salonbook/store"
	"salonbook/utils"
)

func main() {
	cfg := config.Load()

	st := store.New()
	engine := booking.NewEngine(st)
	book := ledger.New(st)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		seedAdmin(st, cfg.AdminEmail, cfg.AdminPassword)
	}

	var mailer *utils.Mailer
	if cfg.SMTPHost != "" {
		mailer = &utils.Mailer{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
		}
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("salonbook is running")
	})

	routes.SetupAuthRoutes(app, controllers.NewAuthController(st, cfg), cfg)
	routes.SetupUserRoutes(app, controllers.NewUserController(st), cfg)
	routes.SetupServiceRoutes(app, controllers.NewServiceController(st), cfg)
	routes.SetupScheduleRoutes(app, controllers.NewScheduleController(st), cfg)

	appointmentController := controllers.NewAppointmentController(st, engine)
	routes.SetupProfessionalRoutes(app,
		controllers.NewProfessionalController(st),
		controllers.NewScheduleController(st),
		appointmentController, cfg)
	routes.SetupAppointmentRoutes(app, appointmentController, cfg)
	routes.SetupTransactionRoutes(app,
		controllers.NewTransactionController(book),
		controllers.NewDashboardController(st, book), cfg)

	if cfg.RemindersEnabled {
		cron.StartReminderJob(st, mailer)
	}

	log.Println("Server starting on port " + cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// seedAdmin creates the bootstrap admin account so a fresh process has at
// least one user able to reach the management routes.
func seedAdmin(st *store.Store, email, password string) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}
	if _, err := st.CreateUser(models.User{
		Name:     "Administrator",
		UserName: "admin",
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}); err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Println("Seeded admin user " + email)
}
