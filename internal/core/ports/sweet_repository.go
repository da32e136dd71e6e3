package ports

import (
	"context"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

// SearchFilter carries the optional, conjunctive query parameters for
// searching sweets. Nil price bounds mean "no bound"; both bounds are
// inclusive when set.
type SearchFilter struct {
	Name     string   // case-insensitive substring match
	Category string   // exact match
	MinPrice *float64 // price >= MinPrice
	MaxPrice *float64 // price <= MaxPrice
}

// SweetRepository defines persistence operations for the sweet catalog.
// Implementations assign the record ID on Insert and always expose it as a
// plain string.
type SweetRepository interface {
	Insert(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error)
	FindByName(ctx context.Context, name string) (*domain.Sweet, error)
	FindByID(ctx context.Context, id string) (*domain.Sweet, error)
	FindAll(ctx context.Context) ([]domain.Sweet, error)
	Search(ctx context.Context, filter SearchFilter) ([]domain.Sweet, error)
	// Update replaces the stored document's fields for the given id.
	Update(ctx context.Context, id string, s *domain.Sweet) error
	Delete(ctx context.Context, id string) error
	// DecrementQuantity atomically decreases quantity by 1, but only when
	// the current quantity is positive. Returns domain.ErrOutOfStock when
	// the sweet exists with quantity <= 0.
	DecrementQuantity(ctx context.Context, id string) error
	// IncrementQuantity adds amount to the stored quantity. The id must
	// match an existing record; a missing id is reported as
	// domain.ErrSweetNotFound rather than silently succeeding.
	IncrementQuantity(ctx context.Context, id string, amount int) error
}
