package havenly

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Resource callers. Every method reads the token from the store, attaches it
// as a bearer header and resolves to a Result; with no token present they
// short-circuit without a network call.

func (o ListOptions) query() string {
	q := url.Values{}
	if o.CurrentPage > 0 {
		q.Set("current_page", strconv.Itoa(o.CurrentPage))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.City != "" {
		q.Set("city", o.City)
	}
	if o.MaxRent > 0 {
		q.Set("max_rent", strconv.FormatFloat(o.MaxRent, 'f', -1, 64))
	}
	if encoded := q.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

// Properties lists the caller's property portfolio.
func (c *Client) Properties(ctx context.Context, opts ListOptions) Result[Page[Property]] {
	return callAuth[Page[Property]](ctx, c, http.MethodGet, "/landlord/properties/"+opts.query(), nil)
}

// CreatePropertyInput is the payload for creating a property.
type CreatePropertyInput struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Description string `json:"description,omitempty"`
}

// CreateProperty registers a new property under the caller's account.
func (c *Client) CreateProperty(ctx context.Context, in CreatePropertyInput) Result[Property] {
	return callAuth[Property](ctx, c, http.MethodPost, "/landlord/properties", in)
}

// Property fetches a single property by id.
func (c *Client) Property(ctx context.Context, propertyID string) Result[Property] {
	path := fmt.Sprintf("/landlord/properties/%s", url.PathEscape(propertyID))
	return callAuth[Property](ctx, c, http.MethodGet, path, nil)
}

// DeleteProperty removes a property and its rooms.
func (c *Client) DeleteProperty(ctx context.Context, propertyID string) Result[struct{}] {
	path := fmt.Sprintf("/landlord/properties/%s", url.PathEscape(propertyID))
	return callAuth[struct{}](ctx, c, http.MethodDelete, path, nil)
}

// AllRooms lists every room across the caller's portfolio.
func (c *Client) AllRooms(ctx context.Context, opts ListOptions) Result[Page[Room]] {
	return callAuth[Page[Room]](ctx, c, http.MethodGet, "/landlord/properties/rooms"+opts.query(), nil)
}

// PropertyRooms lists the rooms of one property.
func (c *Client) PropertyRooms(ctx context.Context, propertyID string, opts ListOptions) Result[Page[Room]] {
	path := fmt.Sprintf("/landlord/properties/%s/rooms%s", url.PathEscape(propertyID), opts.query())
	return callAuth[Page[Room]](ctx, c, http.MethodGet, path, nil)
}

// Room fetches one room with its parent property.
func (c *Client) Room(ctx context.Context, propertyID, roomID string) Result[RoomDetail] {
	path := fmt.Sprintf("/landlord/properties/%s/rooms/%s", url.PathEscape(propertyID), url.PathEscape(roomID))
	return callAuth[RoomDetail](ctx, c, http.MethodGet, path, nil)
}

// CreateRoomInput is the payload for adding a room to a property.
type CreateRoomInput struct {
	Number      string  `json:"number"`
	Type        string  `json:"type"`
	RentMonthly float64 `json:"rent_monthly"`
	Capacity    int     `json:"capacity"`
}

// CreateRoom adds a room to a property.
func (c *Client) CreateRoom(ctx context.Context, propertyID string, in CreateRoomInput) Result[Room] {
	path := fmt.Sprintf("/landlord/properties/%s/rooms", url.PathEscape(propertyID))
	return callAuth[Room](ctx, c, http.MethodPost, path, in)
}

// BrowseRooms lists available rooms for tenants.
func (c *Client) BrowseRooms(ctx context.Context, opts ListOptions) Result[Page[Room]] {
	return callAuth[Page[Room]](ctx, c, http.MethodGet, "/tenant/rooms"+opts.query(), nil)
}

// BrowseRoom fetches one available room with its property, tenant view.
func (c *Client) BrowseRoom(ctx context.Context, roomID string) Result[RoomDetail] {
	path := fmt.Sprintf("/tenant/rooms/%s", url.PathEscape(roomID))
	return callAuth[RoomDetail](ctx, c, http.MethodGet, path, nil)
}
