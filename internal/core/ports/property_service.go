package ports

import (
	"context"

	"github.com/priyanaka6261/property-portal-backend/internal/core/domain"
)

// CreatePropertyInput carries all data needed to create a new listing.
// Status is optional and defaults to "available".
type CreatePropertyInput struct {
	Title    string
	Location string
	Price    float64
	Status   string
}

// UpdatePropertyInput overwrites every mutable field of a listing.
type UpdatePropertyInput struct {
	Title    string
	Location string
	Price    float64
	Status   string
}

// PropertyService defines use-case operations for property listings.
// Ownership and role checks happen here, not in the repository.
type PropertyService interface {
	Create(ctx context.Context, input CreatePropertyInput, claims domain.Claims) (*domain.Property, error)
	Get(ctx context.Context, id int64) (*domain.Property, error)
	Update(ctx context.Context, id int64, input UpdatePropertyInput, claims domain.Claims) (*domain.Property, error)
	// Delete removes a listing and returns the removed record.
	Delete(ctx context.Context, id int64, claims domain.Claims) (*domain.Property, error)
	List(ctx context.Context) ([]*domain.Property, error)
	ListByOwner(ctx context.Context, claims domain.Claims) ([]*domain.Property, error)
	Search(ctx context.Context, filter SearchFilter) ([]*domain.Property, error)
	Stats(ctx context.Context) (map[domain.PropertyStatus]int64, error)
}
