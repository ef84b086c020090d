package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/havenly/havenly-api/internal/core/domain"
	"github.com/havenly/havenly-api/internal/core/ports"
)

// RoomService implements room use cases. Ownership of the parent property is
// checked here, never in handlers.
type RoomService struct {
	rooms      ports.RoomRepository
	properties ports.PropertyRepository
	activity   ports.ActivityRecorder
	log        zerolog.Logger
}

func NewRoomService(rooms ports.RoomRepository, properties ports.PropertyRepository, activity ports.ActivityRecorder, log zerolog.Logger) *RoomService {
	return &RoomService{rooms: rooms, properties: properties, activity: activity, log: log}
}

func (s *RoomService) Create(ctx context.Context, in ports.CreateRoomInput) (*domain.Room, error) {
	// Landlord must own the parent property.
	if _, err := s.properties.FindByID(ctx, in.PropertyID, in.LandlordID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	room := &domain.Room{
		PropertyID:  in.PropertyID,
		Number:      in.Number,
		Type:        in.Type,
		RentMonthly: in.RentMonthly,
		Capacity:    in.Capacity,
		Status:      domain.RoomAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.rooms.Create(ctx, room)
	if err != nil {
		s.log.Error().Err(err).Str("property_id", in.PropertyID).Msg("failed to create room")
		return nil, err
	}

	s.recordActivity(in.LandlordID, domain.ActionRoomCreated, created.Number)
	return created, nil
}

func (s *RoomService) Get(ctx context.Context, roomID string, role domain.Role, landlordID string) (*ports.RoomDetail, error) {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	property, err := s.properties.FindByID(ctx, room.PropertyID, "")
	if err != nil {
		return nil, err
	}

	switch role {
	case domain.RoleAdmin:
		// unrestricted
	case domain.RoleLandlord:
		if property.LandlordID != landlordID {
			return nil, domain.ErrForbidden
		}
	case domain.RoleTenant:
		if room.Status != domain.RoomAvailable || property.Status != domain.PropertyActive {
			return nil, domain.ErrRoomNotFound
		}
	default:
		return nil, domain.ErrForbidden
	}

	return &ports.RoomDetail{Room: room, Property: property}, nil
}

func (s *RoomService) Update(ctx context.Context, in ports.UpdateRoomInput) (*domain.Room, error) {
	room, err := s.rooms.FindByID(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}
	if in.PropertyID != "" && room.PropertyID != in.PropertyID {
		return nil, domain.ErrRoomNotFound
	}

	if _, err := s.properties.FindByID(ctx, room.PropertyID, in.LandlordID); err != nil {
		return nil, err
	}

	if in.Number != "" {
		room.Number = in.Number
	}
	if in.Type != "" {
		room.Type = in.Type
	}
	if in.RentMonthly > 0 {
		room.RentMonthly = in.RentMonthly
	}
	if in.Capacity > 0 {
		room.Capacity = in.Capacity
	}
	if in.Status != "" {
		next := domain.RoomStatus(in.Status)
		if !room.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, room.Status, next)
		}
		room.Status = next
	}
	room.UpdatedAt = time.Now().UTC()

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}

	s.recordActivity(in.LandlordID, domain.ActionRoomUpdated, room.Number)
	return room, nil
}

func (s *RoomService) List(ctx context.Context, in ports.ListRoomsInput) (*ports.Page[*domain.Room], error) {
	page, limit := normalisePage(in.Page, in.Limit)

	filter := ports.ListRoomsFilter{
		PropertyID: in.PropertyID,
		Status:     in.Status,
		City:       in.City,
		MaxRent:    in.MaxRent,
		Search:     in.Search,
		Page:       page,
		Limit:      limit,
	}

	switch in.Role {
	case domain.RoleLandlord:
		if in.PropertyID != "" {
			// Single property: verify ownership up front.
			if _, err := s.properties.FindByID(ctx, in.PropertyID, in.LandlordID); err != nil {
				return nil, err
			}
		} else {
			// Whole portfolio: scope by the landlord's property ids.
			ids, err := s.properties.IDsByLandlord(ctx, in.LandlordID)
			if err != nil {
				return nil, err
			}
			if len(ids) == 0 {
				return newPage[*domain.Room](nil, 0, page, limit), nil
			}
			filter.PropertyIDs = ids
		}
	case domain.RoleTenant:
		// Tenants only browse available rooms of active properties. A room
		// left over in a deactivated property must not surface here, the
		// detail view would reject it anyway.
		filter.Status = string(domain.RoomAvailable)
		filter.PropertyStatus = string(domain.PropertyActive)
	case domain.RoleAdmin:
		// unrestricted
	default:
		return nil, domain.ErrForbidden
	}

	items, total, err := s.rooms.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return newPage(items, total, page, limit), nil
}

func (s *RoomService) recordActivity(actorID, action, subject string) {
	if s.activity == nil {
		return
	}
	s.activity.Record(domain.ActivityEvent{
		ActorID:   actorID,
		ActorRole: domain.RoleLandlord,
		Action:    action,
		Subject:   subject,
		Timestamp: time.Now().UTC(),
	})
}
