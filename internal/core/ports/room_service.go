package ports

import (
	"context"

	"github.com/havenly/havenly-api/internal/core/domain"
)

// CreateRoomInput carries all data needed to create a room.
type CreateRoomInput struct {
	PropertyID  string
	LandlordID  string
	Number      string
	Type        string
	RentMonthly float64
	Capacity    int
}

// UpdateRoomInput carries a room update. Status changes are validated against
// the occupancy transition rules.
type UpdateRoomInput struct {
	RoomID      string
	PropertyID  string
	LandlordID  string
	Number      string
	Type        string
	RentMonthly float64
	Capacity    int
	Status      string
}

// ListRoomsInput carries parameters for room list endpoints.
type ListRoomsInput struct {
	Role       domain.Role
	LandlordID string
	// PropertyID limits the listing to one property. Empty means the whole
	// portfolio for landlords, or every available room for tenants.
	PropertyID string
	Status     string
	City       string
	MaxRent    float64
	Search     string
	Page       int
	Limit      int
}

// RoomDetail pairs a room with its parent property for single-room views.
type RoomDetail struct {
	Room     *domain.Room
	Property *domain.Property
}

// RoomService defines use-case operations for rooms.
type RoomService interface {
	Create(ctx context.Context, in CreateRoomInput) (*domain.Room, error)
	// Get retrieves one room. Landlords must own the parent property; tenants
	// only see available rooms of active properties.
	Get(ctx context.Context, roomID string, role domain.Role, landlordID string) (*RoomDetail, error)
	Update(ctx context.Context, in UpdateRoomInput) (*domain.Room, error)
	List(ctx context.Context, in ListRoomsInput) (*Page[*domain.Room], error)
}
