package models

import (
	"time"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction is one ledger entry, optionally linked to an appointment.
// Amount is always positive; the type says which way the money moved.
type Transaction struct {
	ID            uint            `json:"id"`
	AppointmentID *uint           `json:"appointment_id,omitempty"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	Description   string          `json:"description"`
	Date          string          `json:"date"`
	CreatedAt     time.Time       `json:"created_at"`
}

type TransactionPatch struct {
	Type        *TransactionType `json:"type"`
	Amount      *float64         `json:"amount"`
	Description *string          `json:"description"`
	Date        *string          `json:"date"`
}
