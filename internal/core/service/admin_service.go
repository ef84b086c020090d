package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/havenly/havenly-api/internal/core/domain"
	"github.com/havenly/havenly-api/internal/core/ports"
)

// AdminService implements the admin dashboard use cases.
type AdminService struct {
	users      ports.UserRepository
	properties ports.PropertyRepository
	rooms      ports.RoomRepository
	activity   ports.ActivityRepository
	log        zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	properties ports.PropertyRepository,
	rooms ports.RoomRepository,
	activity ports.ActivityRepository,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		users:      users,
		properties: properties,
		rooms:      rooms,
		activity:   activity,
		log:        log,
	}
}

func (s *AdminService) ListUsers(ctx context.Context, filter ports.ListUsersFilter) (*ports.Page[*domain.User], error) {
	filter.Page, filter.Limit = normalisePage(filter.Page, filter.Limit)

	items, total, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return newPage(items, total, filter.Page, filter.Limit), nil
}

func (s *AdminService) Stats(ctx context.Context) (*ports.StatsResult, error) {
	result := &ports.StatsResult{
		UsersByRole:   make(map[domain.Role]int64, 3),
		RoomsByStatus: make(map[domain.RoomStatus]int64, 3),
		GeneratedAt:   time.Now().UTC(),
	}

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleLandlord, domain.RoleTenant} {
		n, err := s.users.CountByRole(ctx, role)
		if err != nil {
			return nil, err
		}
		result.UsersByRole[role] = n
	}

	properties, err := s.properties.Count(ctx)
	if err != nil {
		return nil, err
	}
	result.Properties = properties

	for _, status := range []domain.RoomStatus{domain.RoomAvailable, domain.RoomOccupied, domain.RoomMaintenance} {
		n, err := s.rooms.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		result.RoomsByStatus[status] = n
	}

	return result, nil
}

func (s *AdminService) RecentActivity(ctx context.Context, page, limit int) (*ports.Page[*domain.ActivityEvent], error) {
	page, limit = normalisePage(page, limit)

	items, total, err := s.activity.Recent(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return newPage(items, total, page, limit), nil
}
