package havenly

import (
	"strings"
	"time"
)

// Role is the closed set of account roles known to the API.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleLandlord Role = "landlord"
	RoleTenant   Role = "tenant"
)

// ParseRole normalises a raw role string into the closed Role set. Matching is
// case-insensitive because historical server responses were not consistent
// about casing.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleLandlord:
		return RoleLandlord, true
	case RoleTenant:
		return RoleTenant, true
	}
	return "", false
}

// User is the authenticated account as reported by the server.
type User struct {
	ID    string `json:"user_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Property is a landlord-owned building.
type Property struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	LandlordID  string    `json:"landlord_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Room is a rentable unit inside a property.
type Room struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"property_id"`
	Number      string    `json:"number"`
	Type        string    `json:"type"`
	RentMonthly float64   `json:"rent_monthly"`
	Capacity    int       `json:"capacity"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoomDetail is a room together with its parent property.
type RoomDetail struct {
	Room     Room     `json:"room"`
	Property Property `json:"property"`
}

// Page is the pagination envelope every list endpoint returns.
type Page[T any] struct {
	Data        []T   `json:"data"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
}

// AuthPayload is the body of successful login and register responses.
type AuthPayload struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// ListOptions carries the common pagination and filter query parameters.
type ListOptions struct {
	CurrentPage int
	Limit       int
	Status      string
	Search      string
	City        string
	MaxRent     float64
}
