// Package ledger records income and expense entries and aggregates them
// over date ranges. No running balance is kept; every figure is computed
// by scanning the entries the range selects.
package ledger

import (
	"salonbook/models"
	"salonbook/store"
)

type Ledger struct {
	store *store.Store
}

func New(st *store.Store) *Ledger {
	return &Ledger{store: st}
}

// Record appends an entry. Validation (positive amount, known type,
// resolvable appointment link) happens in the store's single write path.
func (l *Ledger) Record(t models.Transaction) (models.Transaction, error) {
	return l.store.CreateTransaction(t)
}

func (l *Ledger) Update(id uint, patch models.TransactionPatch) (models.Transaction, error) {
	return l.store.UpdateTransaction(id, patch)
}

func (l *Ledger) Delete(id uint) error {
	return l.store.DeleteTransaction(id)
}

func (l *Ledger) Get(id uint) (models.Transaction, bool) {
	return l.store.GetTransaction(id)
}

// Entries returns the entries with from <= date <= to, optionally filtered
// by type.
func (l *Ledger) Entries(from, to string, typ *models.TransactionType) []models.Transaction {
	return l.store.TransactionsByRange(from, to, typ)
}

// Summary is the aggregate of a date range: total income, total expense
// and the net of the two.
type Summary struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// Summarize aggregates all entries in the range. Entries outside the
// range are simply not counted, so the result is only meaningful for the
// window asked about.
func (l *Ledger) Summarize(from, to string) Summary {
	s := Summary{From: from, To: to}
	for _, t := range l.store.TransactionsByRange(from, to, nil) {
		switch t.Type {
		case models.TransactionIncome:
			s.Income += t.Amount
		case models.TransactionExpense:
			s.Expense += t.Amount
		}
	}
	s.Net = s.Income - s.Expense
	return s
}
