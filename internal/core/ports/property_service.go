package ports

import (
	"context"

	"github.com/havenly/havenly-api/internal/core/domain"
)

// Page is the uniform pagination result shared by all list operations.
type Page[T any] struct {
	Items      []T
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CreatePropertyInput carries all data needed to create a property.
type CreatePropertyInput struct {
	LandlordID  string
	Name        string
	Address     string
	City        string
	Description string
}

// UpdatePropertyInput carries a property update. Zero-value fields are left
// unchanged, except Status which is applied when non-empty.
type UpdatePropertyInput struct {
	PropertyID  string
	LandlordID  string
	Name        string
	Address     string
	City        string
	Description string
	Status      string
}

// ListPropertiesInput carries parameters for the property list endpoint.
type ListPropertiesInput struct {
	// Caller identity, used for ownership scoping: landlords only see their
	// own portfolio, admins see everything.
	Role       domain.Role
	LandlordID string
	Status     string
	Search     string
	Page       int
	Limit      int
}

// PropertyService defines use-case operations for properties.
type PropertyService interface {
	Create(ctx context.Context, in CreatePropertyInput) (*domain.Property, error)
	Get(ctx context.Context, propertyID string, role domain.Role, landlordID string) (*domain.Property, error)
	Update(ctx context.Context, in UpdatePropertyInput) (*domain.Property, error)
	// Delete removes a property together with all of its rooms.
	Delete(ctx context.Context, propertyID string, role domain.Role, landlordID string) error
	List(ctx context.Context, in ListPropertiesInput) (*Page[*domain.Property], error)
}
