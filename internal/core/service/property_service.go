package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/priyanaka6261/property-portal-backend/internal/core/domain"
	"github.com/priyanaka6261/property-portal-backend/internal/core/ports"
)

// StatsCache abstracts the short-lived status-count cache (Redis).
type StatsCache interface {
	Get(ctx context.Context) (map[domain.PropertyStatus]int64, error)
	Set(ctx context.Context, counts map[domain.PropertyStatus]int64) error
}

// PropertyService implements listing CRUD, search, and stats. All role and
// ownership decisions for mutations live here.
type PropertyService struct {
	repo   ports.PropertyRepository
	cache  StatsCache
	logger zerolog.Logger
}

// NewPropertyService builds a PropertyService. cache may be nil, in which case
// every Stats call hits storage.
func NewPropertyService(repo ports.PropertyRepository, cache StatsCache, logger zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, cache: cache, logger: logger}
}

func (s *PropertyService) Create(ctx context.Context, input ports.CreatePropertyInput, claims domain.Claims) (*domain.Property, error) {
	if !claims.Role.CanCreateProperty() {
		return nil, domain.ErrForbidden
	}
	if input.Title == "" || input.Location == "" || input.Price < 0 {
		return nil, domain.ErrInvalidInput
	}

	status, err := domain.ParseStatus(input.Status)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	property := &domain.Property{
		Title:     input.Title,
		Location:  input.Location,
		Price:     input.Price,
		Status:    status,
		OwnerID:   claims.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, property)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create property")
		return nil, err
	}

	s.logger.Info().
		Int64("property_id", created.ID).
		Int64("owner_id", claims.UserID).
		Str("status", string(created.Status)).
		Msg("property created")

	return created, nil
}

func (s *PropertyService) Get(ctx context.Context, id int64) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) Update(ctx context.Context, id int64, input ports.UpdatePropertyInput, claims domain.Claims) (*domain.Property, error) {
	existing, err := s.authorizeMutation(ctx, id, claims)
	if err != nil {
		return nil, err
	}
	if input.Title == "" || input.Location == "" || input.Price < 0 {
		return nil, domain.ErrInvalidInput
	}

	status, err := domain.ParseStatus(input.Status)
	if err != nil {
		return nil, err
	}

	existing.Title = input.Title
	existing.Location = input.Location
	existing.Price = input.Price
	existing.Status = status
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update property %d: %w", id, err)
	}

	s.logger.Info().Int64("property_id", id).Int64("user_id", claims.UserID).Msg("property updated")
	return updated, nil
}

func (s *PropertyService) Delete(ctx context.Context, id int64, claims domain.Claims) (*domain.Property, error) {
	existing, err := s.authorizeMutation(ctx, id, claims)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete property %d: %w", id, err)
	}

	s.logger.Info().Int64("property_id", id).Int64("user_id", claims.UserID).Msg("property deleted")
	return existing, nil
}

// authorizeMutation loads the listing and applies the shared ownership gate.
// Update and Delete must never diverge in how they authorize.
func (s *PropertyService) authorizeMutation(ctx context.Context, id int64, claims domain.Claims) (*domain.Property, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !claims.IsOwnerOrAdmin(existing.OwnerID) {
		return nil, domain.ErrForbidden
	}
	return existing, nil
}

func (s *PropertyService) List(ctx context.Context) ([]*domain.Property, error) {
	return s.repo.FindAll(ctx)
}

func (s *PropertyService) ListByOwner(ctx context.Context, claims domain.Claims) ([]*domain.Property, error) {
	return s.repo.FindByOwner(ctx, claims.UserID)
}

func (s *PropertyService) Search(ctx context.Context, filter ports.SearchFilter) ([]*domain.Property, error) {
	return s.repo.Search(ctx, filter)
}

// Stats returns listing counts per status. The cache is best effort: a broken
// cache degrades to the aggregation query, never to an error.
func (s *PropertyService) Stats(ctx context.Context) (map[domain.PropertyStatus]int64, error) {
	if s.cache != nil {
		counts, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed, falling back to storage")
		} else if counts != nil {
			return counts, nil
		}
	}

	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, counts); err != nil {
			s.logger.Warn().Err(err).Msg("failed to populate stats cache")
		}
	}

	return counts, nil
}
