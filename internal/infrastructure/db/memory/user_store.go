// Package memory provides in-process implementations of the repository
// ports with the same semantics as the MongoDB backend (uniqueness checks,
// id assignment, conditional stock mutation). State is scoped to the
// process lifetime and guarded by a mutex, so the store is safe under
// concurrent requests. It is a pluggable backend selected at startup, not
// a cache: nothing is reconciled with the primary store.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

// UserStore implements ports.UserRepository in memory.
type UserStore struct {
	mu     sync.RWMutex
	users  map[string]domain.User // keyed by email
	nextID int
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]domain.User)}
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (s *UserStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *user
	created.ID = fmt.Sprintf("user_%d", s.nextID)
	s.nextID++
	s.users[created.Email] = created
	return &created, nil
}
