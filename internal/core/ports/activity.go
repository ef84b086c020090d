package ports

import (
	"context"
	"time"

	"github.com/havenly/havenly-api/internal/core/domain"
)

// ActivityRepository persists audit events.
type ActivityRepository interface {
	Insert(ctx context.Context, e *domain.ActivityEvent) error
	// Recent returns a page of events, newest first.
	Recent(ctx context.Context, page, limit int) ([]*domain.ActivityEvent, int64, error)
}

// ActivityRecorder accepts events for asynchronous persistence. Implemented
// by the queue dispatcher; handlers and services must never block on it.
type ActivityRecorder interface {
	Record(e domain.ActivityEvent)
}

// ActivityService processes a single audit event.
type ActivityService interface {
	Process(ctx context.Context, e domain.ActivityEvent) error
}

// StatsResult is the admin dashboard summary.
type StatsResult struct {
	UsersByRole   map[domain.Role]int64
	Properties    int64
	RoomsByStatus map[domain.RoomStatus]int64
	GeneratedAt   time.Time
}

// AdminService defines admin dashboard use cases.
type AdminService interface {
	ListUsers(ctx context.Context, filter ListUsersFilter) (*Page[*domain.User], error)
	Stats(ctx context.Context) (*StatsResult, error)
	RecentActivity(ctx context.Context, page, limit int) (*Page[*domain.ActivityEvent], error)
}
