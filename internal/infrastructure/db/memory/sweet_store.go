package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
)

// SweetStore implements ports.SweetRepository in memory. Records are kept
// in insertion order so FindAll iteration is stable.
type SweetStore struct {
	mu     sync.RWMutex
	sweets []domain.Sweet
	nextID int
}

func NewSweetStore() *SweetStore {
	return &SweetStore{nextID: 1}
}

func (s *SweetStore) Insert(_ context.Context, sweet *domain.Sweet) (*domain.Sweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *sweet
	created.ID = strconv.Itoa(s.nextID)
	s.nextID++
	s.sweets = append(s.sweets, created)
	return &created, nil
}

func (s *SweetStore) FindByName(_ context.Context, name string) (*domain.Sweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sw := range s.sweets {
		if sw.Name == name {
			found := sw
			return &found, nil
		}
	}
	return nil, domain.ErrSweetNotFound
}

func (s *SweetStore) FindByID(_ context.Context, id string) (*domain.Sweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		found := s.sweets[i]
		return &found, nil
	}
	return nil, domain.ErrSweetNotFound
}

func (s *SweetStore) FindAll(_ context.Context) ([]domain.Sweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]domain.Sweet, len(s.sweets))
	copy(all, s.sweets)
	return all, nil
}

func (s *SweetStore) Search(_ context.Context, filter ports.SearchFilter) ([]domain.Sweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []domain.Sweet
	for _, sw := range s.sweets {
		if filter.Name != "" && !strings.Contains(strings.ToLower(sw.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Category != "" && sw.Category != filter.Category {
			continue
		}
		if filter.MinPrice != nil && sw.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && sw.Price > *filter.MaxPrice {
			continue
		}
		results = append(results, sw)
	}
	return results, nil
}

func (s *SweetStore) Update(_ context.Context, id string, sweet *domain.Sweet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrSweetNotFound
	}
	updated := *sweet
	updated.ID = id
	s.sweets[i] = updated
	return nil
}

func (s *SweetStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrSweetNotFound
	}
	s.sweets = append(s.sweets[:i], s.sweets[i+1:]...)
	return nil
}

func (s *SweetStore) DecrementQuantity(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrSweetNotFound
	}
	if s.sweets[i].Quantity <= 0 {
		return domain.ErrOutOfStock
	}
	s.sweets[i].Quantity--
	return nil
}

func (s *SweetStore) IncrementQuantity(_ context.Context, id string, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrSweetNotFound
	}
	s.sweets[i].Quantity += amount
	return nil
}

// indexOf must be called with the lock held.
func (s *SweetStore) indexOf(id string) int {
	for i := range s.sweets {
		if s.sweets[i].ID == id {
			return i
		}
	}
	return -1
}
