package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/havenly/havenly-api/internal/core/domain"
	"github.com/havenly/havenly-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists events.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists a single audit event.
func (s *activityService) Process(ctx context.Context, e domain.ActivityEvent) error {
	if e.Action == "" || e.ActorID == "" {
		s.log.Debug().Str("action", e.Action).Msg("dropping incomplete activity event")
		return nil
	}
	if err := s.repo.Insert(ctx, &e); err != nil {
		return fmt.Errorf("persist activity: %w", err)
	}
	return nil
}
