package store

import (
	"sort"
	"time"

	"salonbook/apperrors"
	"salonbook/models"
)

// CreateProfessional stores a new professional. The national id document
// is unique across professionals.
func (s *Store) CreateProfessional(p models.Professional) (models.Professional, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.professionals {
		if existing.Document == p.Document {
			return models.Professional{}, apperrors.NewValidationError("document %s already registered", p.Document)
		}
	}

	p.ID = next(&s.professionalSeq)
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	s.professionals[p.ID] = p
	return p, nil
}

func (s *Store) GetProfessional(id uint) (models.Professional, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.professionals[id]
	return p, ok
}

func (s *Store) UpdateProfessional(id uint, patch models.ProfessionalPatch) (models.Professional, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.professionals[id]
	if !ok {
		return models.Professional{}, apperrors.NewNotFoundError("professional %d", id)
	}

	if patch.Document != nil && *patch.Document != p.Document {
		for _, existing := range s.professionals {
			if existing.ID != id && existing.Document == *patch.Document {
				return models.Professional{}, apperrors.NewValidationError("document %s already registered", *patch.Document)
			}
		}
		p.Document = *patch.Document
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Active != nil {
		p.Active = *patch.Active
	}

	p.UpdatedAt = time.Now()
	s.professionals[id] = p
	return p, nil
}

// DeleteProfessional removes a professional. The delete is rejected while
// service links, schedules or blocking appointments still reference it, so
// no dangling reference can be created through this path.
func (s *Store) DeleteProfessional(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.professionals[id]; !ok {
		return apperrors.NewNotFoundError("professional %d", id)
	}
	for _, link := range s.professionalServices {
		if link.ProfessionalID == id {
			return apperrors.NewConflictError("professional %d still linked to services", id)
		}
	}
	for _, ws := range s.schedules {
		if ws.ProfessionalID == id {
			return apperrors.NewConflictError("professional %d still has work schedules", id)
		}
	}
	for _, a := range s.appointments {
		if a.ProfessionalID == id && a.Status == models.StatusScheduled {
			return apperrors.NewConflictError("professional %d still has scheduled appointments", id)
		}
	}

	delete(s.professionals, id)
	return nil
}

func (s *Store) ListProfessionals() []models.Professional {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Professional, 0, len(s.professionals))
	for _, p := range s.professionals {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
