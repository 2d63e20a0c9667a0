package store

import (
	"sort"
	"time"

	"salonbook/apperrors"
	"salonbook/models"
)

// CreateTransaction appends a ledger entry. Amount must be positive and an
// appointment link, when present, must resolve.
func (s *Store) CreateTransaction(t models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !t.Type.Valid() {
		return models.Transaction{}, apperrors.NewValidationError("transaction type must be income or expense, got %q", t.Type)
	}
	if t.Amount <= 0 {
		return models.Transaction{}, apperrors.NewValidationError("transaction amount must be positive, got %.2f", t.Amount)
	}
	if t.AppointmentID != nil {
		if _, ok := s.appointments[*t.AppointmentID]; !ok {
			return models.Transaction{}, apperrors.NewNotFoundError("appointment %d", *t.AppointmentID)
		}
	}

	t.ID = next(&s.transactionSeq)
	t.CreatedAt = time.Now()
	s.transactions[t.ID] = t
	return t, nil
}

func (s *Store) GetTransaction(id uint) (models.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transactions[id]
	return t, ok
}

func (s *Store) UpdateTransaction(id uint, patch models.TransactionPatch) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.transactions[id]
	if !ok {
		return models.Transaction{}, apperrors.NewNotFoundError("transaction %d", id)
	}

	if patch.Type != nil {
		if !patch.Type.Valid() {
			return models.Transaction{}, apperrors.NewValidationError("transaction type must be income or expense, got %q", *patch.Type)
		}
		t.Type = *patch.Type
	}
	if patch.Amount != nil {
		if *patch.Amount <= 0 {
			return models.Transaction{}, apperrors.NewValidationError("transaction amount must be positive, got %.2f", *patch.Amount)
		}
		t.Amount = *patch.Amount
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Date != nil {
		t.Date = *patch.Date
	}

	s.transactions[id] = t
	return t, nil
}

func (s *Store) DeleteTransaction(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return apperrors.NewNotFoundError("transaction %d", id)
	}
	delete(s.transactions, id)
	return nil
}

// TransactionsByRange returns entries with from <= date <= to, optionally
// filtered by type, ordered by date then id. Dates compare
// lexicographically; YYYY-MM-DD keeps that chronological.
func (s *Store) TransactionsByRange(from, to string, typ *models.TransactionType) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Transaction
	for _, t := range s.transactions {
		if t.Date < from || t.Date > to {
			continue
		}
		if typ != nil && t.Type != *typ {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out
}
