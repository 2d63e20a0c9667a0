package routes

import (
	"github.com/gofiber/fiber/v2"

	"salonbook/config"
	"salonbook/controllers"
	"salonbook/middleware"
	"salonbook/models"
)

// SetupTransactionRoutes configures the ledger and dashboard routes, all
// admin only.
func SetupTransactionRoutes(app *fiber.App, tc *controllers.TransactionController,
	dc *controllers.DashboardController, cfg *config.Config) {

	transaction := app.Group("/transactions", middleware.Protected(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin))
	transaction.Get("/", tc.GetTransactions)
	transaction.Get("/summary", tc.GetSummary)
	transaction.Get("/:id", tc.GetTransaction)
	transaction.Post("/", tc.CreateTransaction)
	transaction.Patch("/:id", tc.UpdateTransaction)
	transaction.Delete("/:id", tc.DeleteTransaction)

	app.Get("/dashboard/overview", middleware.Protected(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin), dc.GetOverview)
}
