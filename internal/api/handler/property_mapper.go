package handler

import (
	"github.com/priyanaka6261/property-portal-backend/internal/core/domain"
	"github.com/priyanaka6261/property-portal-backend/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createPropertyRequest) ports.CreatePropertyInput {
	return ports.CreatePropertyInput{
		Title:    req.Title,
		Location: req.Location,
		Price:    req.Price,
		Status:   req.Status,
	}
}

func toUpdateInput(req updatePropertyRequest) ports.UpdatePropertyInput {
	return ports.UpdatePropertyInput{
		Title:    req.Title,
		Location: req.Location,
		Price:    req.Price,
		Status:   req.Status,
	}
}

func toSearchFilter(req searchPropertiesRequest) ports.SearchFilter {
	return ports.SearchFilter{
		Location: req.Location,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	}
}

// --- Domain → HTTP response ---

func toPropertyResponse(p *domain.Property) propertyResponse {
	return propertyResponse{
		ID:        p.ID,
		Title:     p.Title,
		Location:  p.Location,
		Price:     p.Price,
		Status:    string(p.Status),
		OwnerID:   p.OwnerID,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
}

func toPropertyListResponse(properties []*domain.Property) propertyListResponse {
	items := make([]propertyResponse, len(properties))
	for i, p := range properties {
		items[i] = toPropertyResponse(p)
	}
	return propertyListResponse{Data: items, Count: len(items)}
}

func toStatsResponse(counts map[domain.PropertyStatus]int64) map[string]int64 {
	out := make(map[string]int64, len(counts))
	for status, count := range counts {
		out[string(status)] = count
	}
	return out
}
