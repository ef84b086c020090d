package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createPropertyRequest struct {
	Name        string `json:"name"        validate:"required"`
	Address     string `json:"address"     validate:"required"`
	City        string `json:"city"        validate:"required"`
	Description string `json:"description"`
}

type updatePropertyRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// listQuery is the common pagination/filter query for list endpoints.
// current_page keeps the name the web client has always sent.
type listQuery struct {
	CurrentPage int     `query:"current_page"`
	Limit       int     `query:"limit"`
	Status      string  `query:"status"`
	Search      string  `query:"search"`
	City        string  `query:"city"`
	MaxRent     float64 `query:"max_rent"`
	Role        string  `query:"role"`
}

// --- Response types ---
// Response-only types owned by the transport layer, kept separate from
// ports/domain types so the JSON contract is not coupled to internal changes.

type propertyResponse struct {
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

type roomResponse struct {
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

type roomDetailResponse struct {
	Room     roomResponse     `json:"room"`
	Property propertyResponse `json:"property"`
}

// pageResponse is the single pagination envelope used by every list endpoint.
type pageResponse[T any] struct {
	Data        []T   `json:"data"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
}
