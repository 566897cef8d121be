package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ozguragaoglu95/pastayapp-api/models"
)

// UserStore holds registered actors in memory. Registration is mocked: there
// are no credentials, login is an email lookup.
type UserStore struct {
	mu      sync.Mutex
	byID    map[string]models.User
	byEmail map[string]string // lowercased email -> user id
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

func (s *UserStore) Register(name, email, phone string, role models.Role) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	if _, exists := s.byEmail[key]; exists {
		return models.User{}, ErrEmailTaken
	}

	user := models.User{
		ID:        uuid.NewString(),
		Role:      role,
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now(),
	}
	s.byID[user.ID] = user
	s.byEmail[key] = user.ID
	return user, nil
}

func (s *UserStore) GetByID(id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (s *UserStore) GetByEmail(email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return s.byID[id], nil
}

// SwitchRole replaces the user's role wholesale and returns the updated user.
func (s *UserStore) SwitchRole(id string, role models.Role) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	user.Role = role
	s.byID[id] = user
	return user, nil
}

// UpdateProfile replaces the user's name and phone.
func (s *UserStore) UpdateProfile(id, name, phone string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	user.Name = name
	user.Phone = phone
	s.byID[id] = user
	return user, nil
}

func (s *UserStore) UpdateAddress(id string, addr models.Address) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	user.Address = addr
	s.byID[id] = user
	return user, nil
}

func (s *UserStore) List() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, 0, len(s.byID))
	for _, u := range s.byID {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users
}
