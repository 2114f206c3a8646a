package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createPropertyRequest struct {
	Title    string  `json:"title"    validate:"required"`
	Location string  `json:"location" validate:"required"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Status   string  `json:"status"   validate:"omitempty,oneof=available sold rented"`
}

type updatePropertyRequest struct {
	Title    string  `json:"title"    validate:"required"`
	Location string  `json:"location" validate:"required"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Status   string  `json:"status"   validate:"required,oneof=available sold rented"`
}

// searchPropertiesRequest binds the public search query string.
// Numeric filters arrive as optional pointers so "absent" and "zero" stay
// distinguishable.
type searchPropertiesRequest struct {
	Location string   `query:"location"`
	MinPrice *float64 `query:"min_price"`
	MaxPrice *float64 `query:"max_price"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal domain changes.

type propertyResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type propertyListResponse struct {
	Data  []propertyResponse `json:"data"`
	Count int                `json:"count"`
}
