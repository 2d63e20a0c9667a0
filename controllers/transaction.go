package controllers

import (
	"github.com/gofiber/fiber/v2"

	"salonbook/ledger"
	"salonbook/models"
)

type TransactionController struct {
	Ledger *ledger.Ledger
}

func NewTransactionController(l *ledger.Ledger) *TransactionController {
	return &TransactionController{Ledger: l}
}

// GetTransactions lists ledger entries for a date range, optionally
// filtered by type.
func (tc *TransactionController) GetTransactions(c *fiber.Ctx) error {
	from := c.Query("from", "0000-01-01")
	to := c.Query("to", "9999-12-31")

	var typ *models.TransactionType
	if raw := c.Query("type"); raw != "" {
		t := models.TransactionType(raw)
		if !t.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Type must be income or expense",
			})
		}
		typ = &t
	}

	return c.JSON(tc.Ledger.Entries(from, to, typ))
}

func (tc *TransactionController) GetTransaction(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	transaction, found := tc.Ledger.Get(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Transaction not found",
		})
	}
	return c.JSON(transaction)
}

// CreateTransaction records an income or expense entry
func (tc *TransactionController) CreateTransaction(c *fiber.Ctx) error {
	transaction := new(models.Transaction)
	if err := c.BodyParser(transaction); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	created, err := tc.Ledger.Record(*transaction)
	if err != nil {
		return fail(c, "Failed to record transaction", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (tc *TransactionController) UpdateTransaction(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	patch := new(models.TransactionPatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	updated, err := tc.Ledger.Update(id, *patch)
	if err != nil {
		return fail(c, "Failed to update transaction", err)
	}
	return c.JSON(updated)
}

func (tc *TransactionController) DeleteTransaction(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := tc.Ledger.Delete(id); err != nil {
		return fail(c, "Failed to delete transaction", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetSummary aggregates income, expense and net over a date range.
func (tc *TransactionController) GetSummary(c *fiber.Ctx) error {
	from := c.Query("from", "0000-01-01")
	to := c.Query("to", "9999-12-31")
	return c.JSON(tc.Ledger.Summarize(from, to))
}
