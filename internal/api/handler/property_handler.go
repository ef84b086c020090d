package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/havenly/havenly-api/internal/api/metrics"
	"github.com/havenly/havenly-api/internal/core/ports"
)

// PropertyHandler handles HTTP requests for landlord property operations.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// List handles GET /landlord/properties/.
//
// @Summary      List the caller's properties
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        current_page  query     int     false  "Page number (1-based)"
// @Param        limit         query     int     false  "Page size (max 100)"
// @Param        status        query     string  false  "Filter by property status"
// @Param        search        query     string  false  "Partial match on name, code or city"
// @Success      200           {object}  pageResponse[propertyResponse]
// @Failure      401           {object}  errorResponse
// @Failure      403           {object}  errorResponse
// @Router       /landlord/properties/ [get]
func (h *PropertyHandler) List(c echo.Context) error {
	role, userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var q listQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	page, err := h.service.List(c.Request().Context(), ports.ListPropertiesInput{
		Role:       role,
		LandlordID: userID,
		Status:     q.Status,
		Search:     q.Search,
		Page:       q.CurrentPage,
		Limit:      q.Limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPageResponse(page, toPropertyResponse))
}

// Create handles POST /landlord/properties.
//
// @Summary      Create a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Property details"
// @Success      201   {object}  propertyResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /landlord/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	_, userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreatePropertyInput{
		LandlordID:  userID,
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.PropertiesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toPropertyResponse(created))
}

// Get handles GET /landlord/properties/:property_id.
//
// @Summary      Get one property
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        property_id  path      string  true  "Property id"
// @Success      200          {object}  propertyResponse
// @Failure      404          {object}  errorResponse
// @Router       /landlord/properties/{property_id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	role, userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	property, err := h.service.Get(c.Request().Context(), c.Param("property_id"), role, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPropertyResponse(property))
}

// Update handles PUT /landlord/properties/:property_id.
//
// @Summary      Update a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        property_id  path      string                 true  "Property id"
// @Param        body         body      updatePropertyRequest  true  "Fields to update"
// @Success      200          {object}  propertyResponse
// @Failure      404          {object}  errorResponse
// @Failure      422          {object}  errorResponse
// @Router       /landlord/properties/{property_id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	_, userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), ports.UpdatePropertyInput{
		PropertyID:  c.Param("property_id"),
		LandlordID:  userID,
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPropertyResponse(updated))
}

// Delete handles DELETE /landlord/properties/:property_id.
//
// @Summary      Delete a property
// @Tags         properties
// @Security     BearerAuth
// @Param        property_id  path  string  true  "Property id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /landlord/properties/{property_id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	role, userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("property_id"), role, userID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
