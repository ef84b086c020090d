package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/havenly/havenly-api/internal/api/metrics"
	"github.com/havenly/havenly-api/internal/core/ports"
)

// RoomHandler handles HTTP requests for room operations across landlord and
// tenant route groups; role scoping happens in the service layer.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

type createRoomRequest struct {
	Number      string  `json:"number"       validate:"required"`
	Type        string  `json:"type"         validate:"required"`
	RentMonthly float64 `json:"rent_monthly" validate:"required,gt=0"`
	Capacity    int     `json:"capacity"     validate:"required,gt=0"`
}

type updateRoomRequest struct {
	Number      string  `json:"number"`
	Type        string  `json:"type"`
	RentMonthly float64 `json:"rent_monthly" validate:"omitempty,gt=0"`
	Capacity    int     `json:"capacity"     validate:"omitempty,gt=0"`
	Status      string  `json:"status"       validate:"omitempty,oneof=available occupied maintenance"`
}

// List handles both GET /landlord/properties/rooms (whole portfolio) and
// GET /landlord/properties/:property_id/rooms (single property).
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        property_id   path      string  false  "Property id (omit for whole portfolio)"
// @Param        current_page  query     int     false  "Page number (1-based)"
// @Param        limit         query     int     false  "Page size (max 100)"
// @Param        status        query     string  false  "Filter by room status"
// @Param        search        query     string  false  "Partial match on number or type"
// @Success      200           {object}  pageResponse[roomResponse]
// @Failure      401           {object}  errorResponse
// @Failure      404           {object}  errorResponse
// @Router       /landlord/properties/{property_id}/rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	role, userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var q listQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	page, err := h.service.List(c.Request().Context(), ports.ListRoomsInput{
		Role:       role,
		LandlordID: userID,
		PropertyID: c.Param("property_id"),
		Status:     q.Status,
		City:       q.City,
		MaxRent:    q.MaxRent,
		Search:     q.Search,
		Page:       q.CurrentPage,
		Limit:      q.Limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPageResponse(page, toRoomResponse))
}

// Get handles GET /landlord/properties/:property_id/rooms/:room_id and
// GET /tenant/rooms/:room_id.
//
// @Summary      Get one room with its property
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        room_id  path      string  true  "Room id"
// @Success      200      {object}  roomDetailResponse
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /landlord/properties/{property_id}/rooms/{room_id} [get]
func (h *RoomHandler) Get(c echo.Context) error {
	role, userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), c.Param("room_id"), role, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, roomDetailResponse{
		Room:     toRoomResponse(detail.Room),
		Property: toPropertyResponse(detail.Property),
	})
}

// Create handles POST /landlord/properties/:property_id/rooms.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        property_id  path      string             true  "Property id"
// @Param        body         body      createRoomRequest  true  "Room details"
// @Success      201          {object}  roomResponse
// @Failure      404          {object}  errorResponse
// @Failure      422          {object}  errorResponse
// @Router       /landlord/properties/{property_id}/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	_, userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateRoomInput{
		PropertyID:  c.Param("property_id"),
		LandlordID:  userID,
		Number:      req.Number,
		Type:        req.Type,
		RentMonthly: req.RentMonthly,
		Capacity:    req.Capacity,
	})
	if err != nil {
		return err
	}

	metrics.RoomsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toRoomResponse(created))
}

// Update handles PUT /landlord/properties/:property_id/rooms/:room_id.
//
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        property_id  path      string             true  "Property id"
// @Param        room_id      path      string             true  "Room id"
// @Param        body         body      updateRoomRequest  true  "Fields to update"
// @Success      200          {object}  roomResponse
// @Failure      404          {object}  errorResponse
// @Failure      422          {object}  errorResponse
// @Router       /landlord/properties/{property_id}/rooms/{room_id} [put]
func (h *RoomHandler) Update(c echo.Context) error {
	_, userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), ports.UpdateRoomInput{
		RoomID:      c.Param("room_id"),
		PropertyID:  c.Param("property_id"),
		LandlordID:  userID,
		Number:      req.Number,
		Type:        req.Type,
		RentMonthly: req.RentMonthly,
		Capacity:    req.Capacity,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRoomResponse(updated))
}
