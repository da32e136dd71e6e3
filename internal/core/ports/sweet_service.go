package ports

import (
	"context"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

// SweetInput carries the caller-supplied fields of a sweet. The ID is never
// part of the input; it is assigned by the store on creation.
type SweetInput struct {
	Name     string
	Category string
	Price    float64
	Quantity int
	ImageURL string
}

// SweetService defines use-case operations for the sweet catalog.
type SweetService interface {
	Add(ctx context.Context, input SweetInput) (*domain.Sweet, error)
	List(ctx context.Context) ([]domain.Sweet, error)
	Search(ctx context.Context, filter SearchFilter) ([]domain.Sweet, error)
	Update(ctx context.Context, id string, input SweetInput) error
	Delete(ctx context.Context, id string) error
	Purchase(ctx context.Context, id string) error
	Restock(ctx context.Context, id string, amount int) error
}
