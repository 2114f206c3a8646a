package domain

import "time"

// PropertyStatus represents the market state of a listing.
type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "available"
	StatusSold      PropertyStatus = "sold"
	StatusRented    PropertyStatus = "rented"
)

// ParseStatus maps a raw string to a PropertyStatus. The empty string resolves
// to StatusAvailable, the default for new listings.
func ParseStatus(s string) (PropertyStatus, error) {
	if s == "" {
		return StatusAvailable, nil
	}
	switch PropertyStatus(s) {
	case StatusAvailable, StatusSold, StatusRented:
		return PropertyStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// Property is the core aggregate: a listing owned by a single user.
type Property struct {
	ID        int64          `json:"id" bson:"_id"`
	Title     string         `json:"title" bson:"title"`
	Location  string         `json:"location" bson:"location"`
	Price     float64        `json:"price" bson:"price"`
	Status    PropertyStatus `json:"status" bson:"status"`
	OwnerID   int64          `json:"owner_id" bson:"owner_id"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}
