package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-api/internal/api/metrics"
	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
)

// SweetService implements catalog CRUD, search, and stock mutations.
type SweetService struct {
	repo   ports.SweetRepository
	logger zerolog.Logger
}

func NewSweetService(repo ports.SweetRepository, logger zerolog.Logger) *SweetService {
	return &SweetService{repo: repo, logger: logger}
}

// Add creates a new sweet. Names act as a uniqueness key: the create is
// rejected when a sweet with the same name (case-sensitive) already exists.
func (s *SweetService) Add(ctx context.Context, input ports.SweetInput) (*domain.Sweet, error) {
	existing, err := s.repo.FindByName(ctx, input.Name)
	if err != nil && !errors.Is(err, domain.ErrSweetNotFound) {
		return nil, fmt.Errorf("add sweet: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrSweetExists
	}

	imageURL := input.ImageURL
	if imageURL == "" {
		imageURL = domain.DefaultImageURL
	}

	created, err := s.repo.Insert(ctx, &domain.Sweet{
		Name:     input.Name,
		Category: input.Category,
		Price:    input.Price,
		Quantity: input.Quantity,
		ImageURL: imageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("add sweet: %w", err)
	}

	metrics.SweetsCreatedTotal.WithLabelValues(created.Category).Inc()
	s.logger.Info().Str("id", created.ID).Str("name", created.Name).Msg("sweet added")

	return created, nil
}

// List returns every sweet in the catalog, in store iteration order.
func (s *SweetService) List(ctx context.Context) ([]domain.Sweet, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sweets: %w", err)
	}
	return all, nil
}

// Search applies the optional filters conjunctively. With no filters set it
// returns the whole catalog, same as List.
func (s *SweetService) Search(ctx context.Context, filter ports.SearchFilter) ([]domain.Sweet, error) {
	results, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search sweets: %w", err)
	}
	return results, nil
}

// Update replaces the stored fields of the sweet identified by id.
func (s *SweetService) Update(ctx context.Context, id string, input ports.SweetInput) error {
	imageURL := input.ImageURL
	if imageURL == "" {
		imageURL = domain.DefaultImageURL
	}

	err := s.repo.Update(ctx, id, &domain.Sweet{
		Name:     input.Name,
		Category: input.Category,
		Price:    input.Price,
		Quantity: input.Quantity,
		ImageURL: imageURL,
	})
	if err != nil {
		return fmt.Errorf("update sweet: %w", err)
	}

	s.logger.Info().Str("id", id).Msg("sweet updated")
	return nil
}

// Delete removes the sweet identified by id.
func (s *SweetService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete sweet: %w", err)
	}

	s.logger.Info().Str("id", id).Msg("sweet deleted")
	return nil
}

// Purchase decrements the sweet's quantity by exactly one. The decrement is
// conditional on a positive quantity, so stock never goes negative.
func (s *SweetService) Purchase(ctx context.Context, id string) error {
	if err := s.repo.DecrementQuantity(ctx, id); err != nil {
		if errors.Is(err, domain.ErrOutOfStock) {
			metrics.PurchasesTotal.WithLabelValues("out_of_stock").Inc()
		}
		return fmt.Errorf("purchase sweet: %w", err)
	}

	metrics.PurchasesTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("id", id).Msg("sweet purchased")
	return nil
}

// Restock increases the sweet's quantity by amount, which must be positive.
func (s *SweetService) Restock(ctx context.Context, id string, amount int) error {
	if amount <= 0 {
		return domain.ErrInvalidQuantity
	}

	if err := s.repo.IncrementQuantity(ctx, id, amount); err != nil {
		return fmt.Errorf("restock sweet: %w", err)
	}

	metrics.RestocksTotal.Inc()
	s.logger.Info().Str("id", id).Int("amount", amount).Msg("sweet restocked")
	return nil
}
