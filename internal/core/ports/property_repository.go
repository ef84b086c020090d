package ports

import (
	"context"

	"github.com/havenly/havenly-api/internal/core/domain"
)

// ListPropertiesFilter carries all query parameters for listing properties.
// LandlordID is always enforced by the service layer for landlord callers.
type ListPropertiesFilter struct {
	LandlordID string // empty = no filter (admin); non-empty = scoped to landlord
	Status     string // optional: filter by property status
	Search     string // optional: partial match on name, code or city
	Page       int    // 1-based
	Limit      int    // capped at 100 by the service
}

// PropertyRepository defines persistence operations for properties.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	// FindByID retrieves a property. When landlordID is non-empty the query is
	// additionally scoped to that owner.
	FindByID(ctx context.Context, id string, landlordID string) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id string, landlordID string) error
	// List returns a page of properties matching filter and the total count.
	List(ctx context.Context, filter ListPropertiesFilter) ([]*domain.Property, int64, error)
	// IDsByLandlord returns every property id owned by a landlord, unpaginated.
	IDsByLandlord(ctx context.Context, landlordID string) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

// ListRoomsFilter carries all query parameters for listing rooms.
type ListRoomsFilter struct {
	PropertyID  string   // scope to a single property
	PropertyIDs []string // scope to a set of properties (landlord's portfolio)
	Status      string   // optional: filter by room status
	// PropertyStatus restricts the listing to rooms whose parent property has
	// this status. The service sets it to active for tenant browse.
	PropertyStatus string
	City           string  // optional: property city (tenant browse)
	MaxRent        float64 // optional: rent_monthly <= MaxRent (0 = no cap)
	Search         string  // optional: partial match on number or type
	Page           int     // 1-based
	Limit          int
}

// RoomRepository defines persistence operations for rooms.
type RoomRepository interface {
	Create(ctx context.Context, r *domain.Room) (*domain.Room, error)
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	Update(ctx context.Context, r *domain.Room) error
	List(ctx context.Context, filter ListRoomsFilter) ([]*domain.Room, int64, error)
	// DeleteByProperty removes every room of a property and reports how many
	// documents went away. Used by the property delete cascade.
	DeleteByProperty(ctx context.Context, propertyID string) (int64, error)
	CountByStatus(ctx context.Context, status domain.RoomStatus) (int64, error)
}
