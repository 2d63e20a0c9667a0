package store

import (
	"sort"
	"time"

	"salonbook/apperrors"
	"salonbook/models"
)

func (s *Store) CreateService(svc models.Service) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if svc.Name == "" {
		return models.Service{}, apperrors.NewValidationError("service name is required")
	}
	if svc.Duration <= 0 {
		return models.Service{}, apperrors.NewValidationError("service duration must be positive, got %d", svc.Duration)
	}
	if svc.Price < 0 {
		return models.Service{}, apperrors.NewValidationError("service price cannot be negative")
	}

	svc.ID = next(&s.serviceSeq)
	svc.CreatedAt = time.Now()
	svc.UpdatedAt = svc.CreatedAt
	s.services[svc.ID] = svc
	return svc, nil
}

func (s *Store) GetService(id uint) (models.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	svc, ok := s.services[id]
	return svc, ok
}

func (s *Store) UpdateService(id uint, patch models.ServicePatch) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, ok := s.services[id]
	if !ok {
		return models.Service{}, apperrors.NewNotFoundError("service %d", id)
	}

	if patch.Duration != nil {
		if *patch.Duration <= 0 {
			return models.Service{}, apperrors.NewValidationError("service duration must be positive, got %d", *patch.Duration)
		}
		svc.Duration = *patch.Duration
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return models.Service{}, apperrors.NewValidationError("service price cannot be negative")
		}
		svc.Price = *patch.Price
	}
	if patch.Name != nil {
		svc.Name = *patch.Name
	}
	if patch.Description != nil {
		svc.Description = *patch.Description
	}
	if patch.Active != nil {
		svc.Active = *patch.Active
	}

	svc.UpdatedAt = time.Now()
	s.services[id] = svc
	return svc, nil
}

// DeleteService removes a service, rejecting while links or blocking
// appointments still reference it.
func (s *Store) DeleteService(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[id]; !ok {
		return apperrors.NewNotFoundError("service %d", id)
	}
	for _, link := range s.professionalServices {
		if link.ServiceID == id {
			return apperrors.NewConflictError("service %d still linked to professionals", id)
		}
	}
	for _, a := range s.appointments {
		if a.ServiceID == id && a.Status == models.StatusScheduled {
			return apperrors.NewConflictError("service %d still has scheduled appointments", id)
		}
	}

	delete(s.services, id)
	return nil
}

func (s *Store) ListServices() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LinkProfessionalService records that a professional is qualified to
// perform a service. The pair is unique.
func (s *Store) LinkProfessionalService(professionalID, serviceID uint) (models.ProfessionalService, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.professionals[professionalID]; !ok {
		return models.ProfessionalService{}, apperrors.NewNotFoundError("professional %d", professionalID)
	}
	if _, ok := s.services[serviceID]; !ok {
		return models.ProfessionalService{}, apperrors.NewNotFoundError("service %d", serviceID)
	}
	for _, link := range s.professionalServices {
		if link.ProfessionalID == professionalID && link.ServiceID == serviceID {
			return models.ProfessionalService{}, apperrors.NewValidationError(
				"professional %d already linked to service %d", professionalID, serviceID)
		}
	}

	link := models.ProfessionalService{
		ID:             next(&s.linkSeq),
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
	}
	s.professionalServices[link.ID] = link
	return link, nil
}

func (s *Store) UnlinkProfessionalService(professionalID, serviceID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, link := range s.professionalServices {
		if link.ProfessionalID == professionalID && link.ServiceID == serviceID {
			delete(s.professionalServices, id)
			return nil
		}
	}
	return apperrors.NewNotFoundError("link between professional %d and service %d", professionalID, serviceID)
}

// ProfessionalOffersService reports whether a qualifying link exists.
func (s *Store) ProfessionalOffersService(professionalID, serviceID uint) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, link := range s.professionalServices {
		if link.ProfessionalID == professionalID && link.ServiceID == serviceID {
			return true
		}
	}
	return false
}

// ServicesForProfessional resolves the join table and fetches each linked
// service. A link pointing at a deleted service is data corruption and is
// surfaced, not skipped.
func (s *Store) ServicesForProfessional(professionalID uint) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.professionals[professionalID]; !ok {
		return nil, apperrors.NewNotFoundError("professional %d", professionalID)
	}

	var out []models.Service
	for _, link := range s.professionalServices {
		if link.ProfessionalID != professionalID {
			continue
		}
		svc, ok := s.services[link.ServiceID]
		if !ok {
			return nil, apperrors.NewReferentialIntegrityError(
				"link %d references deleted service %d", link.ID, link.ServiceID)
		}
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
