package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"wedding-site-go/internal/validation"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// ListEvents returns events ordered by display order, then event time.
func (s *Service) ListEvents(ctx context.Context) ([]Event, error) {
	return s.repo.ListEvents(ctx)
}

func (s *Service) GetEvent(ctx context.Context, id string) (*Event, error) {
	return s.repo.GetEventByID(ctx, id)
}

func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (*Event, error) {
	now := s.now()
	event := Event{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		EventTime:    input.EventTime.UTC(),
		Location:     strings.TrimSpace(input.Location),
		Icon:         strings.TrimSpace(input.Icon),
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := validation.Struct(event); err != nil {
		return nil, err
	}

	if err := s.repo.CreateEvent(ctx, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *Service) UpdateEvent(ctx context.Context, input UpdateEventInput) (*Event, error) {
	event, err := s.repo.GetEventByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		event.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.EventTime != nil {
		event.EventTime = input.EventTime.UTC()
	}
	if input.Location != nil {
		event.Location = strings.TrimSpace(*input.Location)
	}
	if input.Icon != nil {
		event.Icon = strings.TrimSpace(*input.Icon)
	}
	if input.DisplayOrder != nil {
		event.DisplayOrder = *input.DisplayOrder
	}

	if err := validation.Struct(event); err != nil {
		return nil, err
	}

	event.UpdatedAt = s.now()
	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteEvent(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEventNotFound
	}
	return nil
}

func (s *Service) CountEvents(ctx context.Context) (int64, error) {
	return s.repo.CountEvents(ctx)
}
