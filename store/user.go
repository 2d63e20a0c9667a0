package store

import (
	"sort"
	"time"

	"salonbook/apperrors"
	"salonbook/models"
)

// CreateUser stores a new user. Email and username are unique across all
// users; duplicates fail with a validation error.
func (s *Store) CreateUser(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return models.User{}, apperrors.NewValidationError("email %s already in use", u.Email)
		}
		if existing.UserName == u.UserName {
			return models.User{}, apperrors.NewValidationError("username %s already in use", u.UserName)
		}
	}

	u.ID = next(&s.userSeq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = u
	return u, nil
}

// GetUser returns the user and whether it exists. Absence is a normal
// outcome, not an error.
func (s *Store) GetUser(id uint) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *Store) GetUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) GetUserByUserName(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.UserName == username {
			return u, true
		}
	}
	return models.User{}, false
}

// UpdateUser merges the patch into the stored user; nil patch fields keep
// their prior value.
func (s *Store) UpdateUser(id uint, p models.UserPatch) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, apperrors.NewNotFoundError("user %d", id)
	}

	if p.Email != nil && *p.Email != u.Email {
		for _, existing := range s.users {
			if existing.ID != id && existing.Email == *p.Email {
				return models.User{}, apperrors.NewValidationError("email %s already in use", *p.Email)
			}
		}
		u.Email = *p.Email
	}
	if p.UserName != nil && *p.UserName != u.UserName {
		for _, existing := range s.users {
			if existing.ID != id && existing.UserName == *p.UserName {
				return models.User{}, apperrors.NewValidationError("username %s already in use", *p.UserName)
			}
		}
		u.UserName = *p.UserName
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Role != nil {
		if !p.Role.Valid() {
			return models.User{}, apperrors.NewValidationError("unknown role %q", *p.Role)
		}
		u.Role = *p.Role
	}

	u.UpdatedAt = time.Now()
	s.users[id] = u
	return u, nil
}

func (s *Store) DeleteUser(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	return true
}

func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}
