package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/havenly/havenly-api/internal/core/domain"
	"github.com/havenly/havenly-api/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// PropertyService implements property use cases with ownership scoping.
type PropertyService struct {
	repo     ports.PropertyRepository
	rooms    ports.RoomRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, rooms ports.RoomRepository, activity ports.ActivityRecorder, log zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, rooms: rooms, activity: activity, log: log}
}

func (s *PropertyService) Create(ctx context.Context, in ports.CreatePropertyInput) (*domain.Property, error) {
	now := time.Now().UTC()
	property := &domain.Property{
		Code:        generatePropertyCode(),
		LandlordID:  in.LandlordID,
		Name:        in.Name,
		Address:     in.Address,
		City:        in.City,
		Description: in.Description,
		Status:      domain.PropertyActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, property)
	if err != nil {
		s.log.Error().Err(err).Str("landlord_id", in.LandlordID).Msg("failed to create property")
		return nil, err
	}

	s.log.Info().Str("code", created.Code).Str("landlord_id", in.LandlordID).Msg("property created")
	s.recordActivity(in.LandlordID, domain.RoleLandlord, domain.ActionPropertyCreated, created.Code)

	return created, nil
}

func (s *PropertyService) Get(ctx context.Context, propertyID string, role domain.Role, landlordID string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, propertyID, ownerScope(role, landlordID))
}

func (s *PropertyService) Update(ctx context.Context, in ports.UpdatePropertyInput) (*domain.Property, error) {
	property, err := s.repo.FindByID(ctx, in.PropertyID, in.LandlordID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		property.Name = in.Name
	}
	if in.Address != "" {
		property.Address = in.Address
	}
	if in.City != "" {
		property.City = in.City
	}
	if in.Description != "" {
		property.Description = in.Description
	}
	if in.Status != "" {
		switch domain.PropertyStatus(in.Status) {
		case domain.PropertyActive, domain.PropertyInactive:
			property.Status = domain.PropertyStatus(in.Status)
		default:
			return nil, fmt.Errorf("unknown property status %q", in.Status)
		}
	}
	property.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, property); err != nil {
		return nil, err
	}

	s.recordActivity(in.LandlordID, domain.RoleLandlord, domain.ActionPropertyUpdated, property.Code)
	return property, nil
}

func (s *PropertyService) Delete(ctx context.Context, propertyID string, role domain.Role, landlordID string) error {
	scope := ownerScope(role, landlordID)
	property, err := s.repo.FindByID(ctx, propertyID, scope)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, propertyID, scope); err != nil {
		return err
	}

	// Cascade: a deleted property must not leave rooms behind feeding tenant
	// browse and the admin stats.
	removed, err := s.rooms.DeleteByProperty(ctx, propertyID)
	if err != nil {
		s.log.Error().Err(err).Str("property_id", propertyID).Msg("failed to delete rooms of removed property")
		return fmt.Errorf("delete rooms of property %s: %w", property.Code, err)
	}
	if removed > 0 {
		s.log.Info().Str("code", property.Code).Int64("rooms", removed).Msg("property rooms removed")
	}

	s.recordActivity(landlordID, role, domain.ActionPropertyRemoved, property.Code)
	return nil
}

func (s *PropertyService) List(ctx context.Context, in ports.ListPropertiesInput) (*ports.Page[*domain.Property], error) {
	page, limit := normalisePage(in.Page, in.Limit)

	items, total, err := s.repo.List(ctx, ports.ListPropertiesFilter{
		LandlordID: ownerScope(in.Role, in.LandlordID),
		Status:     in.Status,
		Search:     in.Search,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	return newPage(items, total, page, limit), nil
}

// ownerScope returns the landlord filter to apply: admins see everything,
// landlords only their own portfolio.
func ownerScope(role domain.Role, landlordID string) string {
	if role == domain.RoleAdmin {
		return ""
	}
	return landlordID
}

// normalisePage applies the 1-based page default and the hard limit cap.
func normalisePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func newPage[T any](items []T, total int64, page, limit int) *ports.Page[T] {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// generatePropertyCode returns a unique property code in the format HVN-XXXXXXXX.
func generatePropertyCode() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("HVN-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("HVN-%08X", b)
}

func (s *PropertyService) recordActivity(actorID string, role domain.Role, action, subject string) {
	if s.activity == nil {
		return
	}
	s.activity.Record(domain.ActivityEvent{
		ActorID:   actorID,
		ActorRole: role,
		Action:    action,
		Subject:   subject,
		Timestamp: time.Now().UTC(),
	})
}
