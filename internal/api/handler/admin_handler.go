package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/havenly/havenly-api/internal/core/domain"
	"github.com/havenly/havenly-api/internal/core/ports"
)

// AdminHandler handles the admin dashboard endpoints.
type AdminHandler struct {
	admin      ports.AdminService
	properties ports.PropertyService
}

func NewAdminHandler(admin ports.AdminService, properties ports.PropertyService) *AdminHandler {
	return &AdminHandler{admin: admin, properties: properties}
}

type userResponse struct {
	ID        string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type statsResponse struct {
	UsersByRole   map[string]int64 `json:"users_by_role"`
	Properties    int64            `json:"properties"`
	RoomsByStatus map[string]int64 `json:"rooms_by_status"`
	GeneratedAt   time.Time        `json:"generated_at"`
}

type activityResponse struct {
	ActorID   string    `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ListUsers handles GET /admin/users.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        current_page  query     int     false  "Page number (1-based)"
// @Param        limit         query     int     false  "Page size (max 100)"
// @Param        role          query     string  false  "Filter by role"
// @Param        search        query     string  false  "Partial match on name or email"
// @Success      200           {object}  pageResponse[userResponse]
// @Failure      403           {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	var q listQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	filter := ports.ListUsersFilter{
		Search: q.Search,
		Page:   q.CurrentPage,
		Limit:  q.Limit,
	}
	if q.Role != "" {
		role, err := domain.ParseRole(q.Role)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown role filter")
		}
		filter.Role = role
	}

	page, err := h.admin.ListUsers(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPageResponse(page, toUserResponse))
}

// ListProperties handles GET /admin/properties — the unscoped listing.
//
// @Summary      List all properties
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        current_page  query     int     false  "Page number (1-based)"
// @Param        limit         query     int     false  "Page size (max 100)"
// @Param        status        query     string  false  "Filter by property status"
// @Param        search        query     string  false  "Partial match on name, code or city"
// @Success      200           {object}  pageResponse[propertyResponse]
// @Failure      403           {object}  errorResponse
// @Router       /admin/properties [get]
func (h *AdminHandler) ListProperties(c echo.Context) error {
	var q listQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	page, err := h.properties.List(c.Request().Context(), ports.ListPropertiesInput{
		Role:   domain.RoleAdmin,
		Status: q.Status,
		Search: q.Search,
		Page:   q.CurrentPage,
		Limit:  q.Limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPageResponse(page, toPropertyResponse))
}

// Stats handles GET /admin/stats.
//
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.admin.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	resp := statsResponse{
		UsersByRole:   make(map[string]int64, len(stats.UsersByRole)),
		Properties:    stats.Properties,
		RoomsByStatus: make(map[string]int64, len(stats.RoomsByStatus)),
		GeneratedAt:   stats.GeneratedAt,
	}
	for role, n := range stats.UsersByRole {
		resp.UsersByRole[role.String()] = n
	}
	for status, n := range stats.RoomsByStatus {
		resp.RoomsByStatus[string(status)] = n
	}

	return c.JSON(http.StatusOK, resp)
}

// Activity handles GET /admin/activity.
//
// @Summary      Recent activity
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        current_page  query     int  false  "Page number (1-based)"
// @Param        limit         query     int  false  "Page size (max 100)"
// @Success      200           {object}  pageResponse[activityResponse]
// @Failure      403           {object}  errorResponse
// @Router       /admin/activity [get]
func (h *AdminHandler) Activity(c echo.Context) error {
	var q listQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	page, err := h.admin.RecentActivity(c.Request().Context(), q.CurrentPage, q.Limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPageResponse(page, func(e *domain.ActivityEvent) activityResponse {
		return activityResponse{
			ActorID:   e.ActorID,
			ActorRole: e.ActorRole.String(),
			Action:    e.Action,
			Subject:   e.Subject,
			Timestamp: e.Timestamp.UTC(),
		}
	}))
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt.UTC(),
	}
}
