package ports

import (
	"context"

	"github.com/priyanaka6261/property-portal-backend/internal/core/domain"
)

// SearchFilter carries the optional query parameters for the search endpoint.
// A nil pointer means "no constraint"; filters compose with logical AND.
type SearchFilter struct {
	Location string   // case-insensitive substring match on location
	MinPrice *float64 // inclusive lower bound
	MaxPrice *float64 // inclusive upper bound
}

// PropertyRepository defines persistence operations for property listings.
type PropertyRepository interface {
	// Create persists a new property and returns it with its generated id.
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	FindByID(ctx context.Context, id int64) (*domain.Property, error)
	// Update overwrites the mutable fields of an existing property.
	// Returns domain.ErrPropertyNotFound when the id is absent.
	Update(ctx context.Context, p *domain.Property) (*domain.Property, error)
	Delete(ctx context.Context, id int64) error
	FindAll(ctx context.Context) ([]*domain.Property, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]*domain.Property, error)
	Search(ctx context.Context, filter SearchFilter) ([]*domain.Property, error)
	// CountByStatus returns the number of properties per status, omitting
	// statuses with no listings.
	CountByStatus(ctx context.Context) (map[domain.PropertyStatus]int64, error)
}
