package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"edilians-parkinfo/internal/adapters/persistence/models"
	"edilians-parkinfo/internal/adapters/persistence/repositories"
	"edilians-parkinfo/internal/core/domain"

	"gorm.io/gorm"
)

// UserService is the sole mutation entry point for the personnel
// directory, with the same mirror contract as AssetService.
type UserService struct {
	store repositories.UserStore

	mu    sync.RWMutex
	users []models.User
}

// NewUserService creates a new user service
func NewUserService(store repositories.UserStore) *UserService {
	return &UserService{store: store}
}

// Load fills the in-memory mirror from the store
func (s *UserService) Load(ctx context.Context) error {
	users, err := s.store.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	return nil
}

// List returns a snapshot of every user
func (s *UserService) List() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// FilterByRole returns the users holding the given role, or every
// user when the role is empty. Recomputed on every call.
func (s *UserService) FilterByRole(role string) []models.User {
	if role == "" {
		return s.List()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// Get returns one user by id
func (s *UserService) Get(id string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		u := s.users[i]
		return &u, true
	}
	return nil, false
}

// NextID derives the next free account id from the whole
// collection, soft-deleted accounts included. Reserves nothing.
func (s *UserService) NextID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return NextUserID(s.users)
}

// Create persists a new user whose id has already been assigned.
// Duplicate ids are rejected without mutating the collection.
func (s *UserService) Create(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(user.ID) >= 0 {
		return domain.ErrDuplicateID
	}

	if err := s.store.Add(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateID
		}
		return err
	}

	s.users = append(s.users, user)
	return nil
}

// Update replaces every field except Deleted, carried over from
// the stored record. An unknown id is a no-op.
func (s *UserService) Update(ctx context.Context, id string, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	user.ID = id
	user.Deleted = s.users[i].Deleted

	if err := s.store.Put(ctx, &user); err != nil {
		return err
	}

	s.users[i] = user
	return nil
}

// ToggleDeleted flips the soft-delete flag. An unknown id is a
// no-op returning nil, nil.
func (s *UserService) ToggleDeleted(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	user := s.users[i]
	user.Deleted = !user.Deleted

	if err := s.store.Put(ctx, &user); err != nil {
		return nil, err
	}

	s.users[i] = user
	return &user, nil
}

// Remove hard-deletes a user; reserved for administrative cleanup
func (s *UserService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	if i := s.indexOf(id); i >= 0 {
		s.users = append(s.users[:i], s.users[i+1:]...)
	}
	return nil
}

// indexOf finds a user position by id; callers hold the lock
func (s *UserService) indexOf(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}
