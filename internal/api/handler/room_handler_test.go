package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/havenly/havenly-api/internal/core/domain"
	"github.com/havenly/havenly-api/internal/core/ports"
)

type stubRoomService struct {
	listFn func(ctx context.Context, in ports.ListRoomsInput) (*ports.Page[*domain.Room], error)
	getFn  func(ctx context.Context, roomID string, role domain.Role, landlordID string) (*ports.RoomDetail, error)
}

func (s *stubRoomService) Create(context.Context, ports.CreateRoomInput) (*domain.Room, error) {
	return nil, domain.ErrPropertyNotFound
}

func (s *stubRoomService) Get(ctx context.Context, roomID string, role domain.Role, landlordID string) (*ports.RoomDetail, error) {
	return s.getFn(ctx, roomID, role, landlordID)
}

func (s *stubRoomService) Update(context.Context, ports.UpdateRoomInput) (*domain.Room, error) {
	return nil, domain.ErrRoomNotFound
}

func (s *stubRoomService) List(ctx context.Context, in ports.ListRoomsInput) (*ports.Page[*domain.Room], error) {
	return s.listFn(ctx, in)
}

func TestRoomHandler_List_PortfolioHasNoPropertyScope(t *testing.T) {
	e := newTestEcho()
	stub := &stubRoomService{
		listFn: func(ctx context.Context, in ports.ListRoomsInput) (*ports.Page[*domain.Room], error) {
			if in.PropertyID != "" {
				t.Fatalf("portfolio listing must not carry a property id, got %q", in.PropertyID)
			}
			if in.Role != domain.RoleLandlord || in.LandlordID != "u_5" {
				t.Fatalf("identity not forwarded: %+v", in)
			}
			return &ports.Page[*domain.Room]{Page: 1, Limit: 10}, nil
		},
	}
	handler := NewRoomHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/landlord/properties/rooms", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.RoleLandlord, "u_5")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRoomHandler_List_PropertyScoped(t *testing.T) {
	e := newTestEcho()
	stub := &stubRoomService{
		listFn: func(ctx context.Context, in ports.ListRoomsInput) (*ports.Page[*domain.Room], error) {
			if in.PropertyID != "p_1" {
				t.Fatalf("expected property scope p_1, got %q", in.PropertyID)
			}
			return &ports.Page[*domain.Room]{Page: 1, Limit: 10}, nil
		},
	}
	handler := NewRoomHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.RoleLandlord, "u_5")
	c.SetParamNames("property_id")
	c.SetParamValues("p_1")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestRoomHandler_Get_ReturnsRoomWithProperty(t *testing.T) {
	e := newTestEcho()
	stub := &stubRoomService{
		getFn: func(ctx context.Context, roomID string, role domain.Role, landlordID string) (*ports.RoomDetail, error) {
			if roomID != "r_9" || role != domain.RoleTenant {
				t.Fatalf("unexpected lookup: %s as %s", roomID, role)
			}
			return &ports.RoomDetail{
				Room:     &domain.Room{ID: "r_9", PropertyID: "p_1", Status: domain.RoomAvailable},
				Property: &domain.Property{ID: "p_1", Status: domain.PropertyActive},
			}, nil
		},
	}
	handler := NewRoomHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.RoleTenant, "u_8")
	c.SetParamNames("room_id")
	c.SetParamValues("r_9")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRoomHandler_Get_PropagatesNotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubRoomService{
		getFn: func(ctx context.Context, roomID string, role domain.Role, landlordID string) (*ports.RoomDetail, error) {
			return nil, domain.ErrRoomNotFound
		},
	}
	handler := NewRoomHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.RoleTenant, "u_8")
	c.SetParamNames("room_id")
	c.SetParamValues("gone")

	if err := handler.Get(c); err != domain.ErrRoomNotFound {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}
