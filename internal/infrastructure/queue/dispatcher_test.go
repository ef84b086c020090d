package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/havenly/havenly-api/internal/core/domain"
)

type captureService struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
}

func (s *captureService) Process(_ context.Context, e domain.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *captureService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	svc := &captureService{}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Record(domain.ActivityEvent{
			ActorID:   "user_1",
			ActorRole: domain.RoleLandlord,
			Action:    domain.ActionPropertyCreated,
			Timestamp: time.Now(),
		})
	}

	deadline := time.After(2 * time.Second)
	for svc.count() < 10 {
		select {
		case <-deadline:
			t.Fatalf("expected 10 events, got %d", svc.count())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDispatcher_ShardIsStablePerActor(t *testing.T) {
	d := NewDispatcher(4, &captureService{}, zerolog.Nop())

	first := d.shardIndex("user_42")
	for i := 0; i < 100; i++ {
		if d.shardIndex("user_42") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}
