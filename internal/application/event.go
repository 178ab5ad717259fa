package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tzcal/internal/domain"
	"tzcal/internal/domain/entities"
	"tzcal/internal/ports/input"
	"tzcal/internal/ports/output"
	"tzcal/pkg/tz"
)

var _ input.EventUseCase = (*EventService)(nil)

// EventService owns the event collection: it validates every mutation before
// it reaches the repository.
type EventService struct {
	eventRepo output.EventRepository
	newID     func() string
}

func NewEventService(eventRepo output.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		newID:     uuid.NewString,
	}
}

func validateSpan(wallStart, wallEnd tz.WallTime, zone string) error {
	if wallEnd.Before(wallStart) {
		return domain.ErrInvertedRange
	}
	if !tz.IsValid(zone) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownZone, zone)
	}
	return nil
}

func (s *EventService) CreateEvent(ctx context.Context, title string, wallStart, wallEnd tz.WallTime, anchorZone string, allDay bool) (*entities.Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if err := validateSpan(wallStart, wallEnd, anchorZone); err != nil {
		return nil, err
	}
	event := &entities.Event{
		ID:         s.newID(),
		Title:      title,
		AnchorZone: anchorZone,
		WallStart:  wallStart,
		WallEnd:    wallEnd,
		AllDay:     allDay,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	return s.eventRepo.Delete(ctx, id)
}

// ReanchorEvent stores the given civil times as-is and makes observedInZone
// the event's anchor. The times already come from that zone's reading, so no
// conversion back to the previous anchor takes place.
func (s *EventService) ReanchorEvent(ctx context.Context, id string, wallStart, wallEnd tz.WallTime, observedInZone string) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateSpan(wallStart, wallEnd, observedInZone); err != nil {
		return nil, err
	}
	event.AnchorZone = observedInZone
	event.WallStart = wallStart
	event.WallEnd = wallEnd
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

func (s *EventService) ListEvents(ctx context.Context) ([]entities.Event, error) {
	return s.eventRepo.FindAll(ctx)
}
