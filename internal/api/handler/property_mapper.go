package handler

import (
	"github.com/havenly/havenly-api/internal/core/domain"
	"github.com/havenly/havenly-api/internal/core/ports"
)

// --- Domain → HTTP response ---

func toPropertyResponse(p *domain.Property) propertyResponse {
	return propertyResponse{
		ID:          p.ID,
		Code:        p.Code,
		LandlordID:  p.LandlordID,
		Name:        p.Name,
		Address:     p.Address,
		City:        p.City,
		Description: p.Description,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}

func toRoomResponse(r *domain.Room) roomResponse {
	return roomResponse{
		ID:          r.ID,
		PropertyID:  r.PropertyID,
		Number:      r.Number,
		Type:        r.Type,
		RentMonthly: r.RentMonthly,
		Capacity:    r.Capacity,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

// toPageResponse converts a service page into the wire envelope, mapping each
// item through fn. Data is always a non-nil array in JSON.
func toPageResponse[S, T any](page *ports.Page[S], fn func(S) T) pageResponse[T] {
	data := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		data = append(data, fn(item))
	}
	return pageResponse[T]{
		Data:        data,
		CurrentPage: page.Page,
		PerPage:     page.Limit,
		Total:       page.Total,
		TotalPages:  page.TotalPages,
	}
}
