package rsvp

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

func (s *Service) ListRsvps(ctx context.Context, filter ListFilter) ([]Rsvp, error) {
	return s.repo.ListRsvps(ctx, filter)
}

func (s *Service) GetRsvp(ctx context.Context, id string) (*Rsvp, error) {
	return s.repo.GetRsvpByID(ctx, id)
}

func (s *Service) CreateRsvp(ctx context.Context, input CreateInput) (*Rsvp, error) {
	guestCount := DefaultGuestCount
	if input.GuestCount != nil {
		guestCount = *input.GuestCount
	}

	now := s.now()
	rsvp := Rsvp{
		ID:                  uuid.NewString(),
		GuestName:           strings.TrimSpace(input.GuestName),
		Email:               strings.TrimSpace(input.Email),
		Phone:               strings.TrimSpace(input.Phone),
		GuestCount:          guestCount,
		MealPreference:      strings.TrimSpace(input.MealPreference),
		SpecialRequirements: strings.TrimSpace(input.SpecialRequirements),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if input.Attending != nil {
		rsvp.Attending = *input.Attending
	}

	err := validation.Struct(rsvp)
	if input.Attending == nil {
		err = validation.Merge(err, validation.Field("attending", "is required"))
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateRsvp(ctx, &rsvp); err != nil {
		return nil, err
	}
	return &rsvp, nil
}

func (s *Service) UpdateRsvp(ctx context.Context, input UpdateInput) (*Rsvp, error) {
	rsvp, err := s.repo.GetRsvpByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.GuestName != nil {
		rsvp.GuestName = strings.TrimSpace(*input.GuestName)
	}
	if input.Email != nil {
		rsvp.Email = strings.TrimSpace(*input.Email)
	}
	if input.Phone != nil {
		rsvp.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Attending != nil {
		rsvp.Attending = *input.Attending
	}
	if input.GuestCount != nil {
		rsvp.GuestCount = *input.GuestCount
	}
	if input.MealPreference != nil {
		rsvp.MealPreference = strings.TrimSpace(*input.MealPreference)
	}
	if input.SpecialRequirements != nil {
		rsvp.SpecialRequirements = strings.TrimSpace(*input.SpecialRequirements)
	}

	if err := validation.Struct(rsvp); err != nil {
		return nil, err
	}

	rsvp.UpdatedAt = s.now()
	if err := s.repo.UpdateRsvp(ctx, rsvp); err != nil {
		return nil, err
	}
	return rsvp, nil
}

func (s *Service) DeleteRsvp(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteRsvp(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRsvpNotFound
	}
	return nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	rsvps, err := s.repo.ListRsvps(ctx, ListFilter{})
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(rsvps), nil
}

func ComputeStats(rsvps []Rsvp) Stats {
	var stats Stats
	for _, r := range rsvps {
		stats.TotalResponses++
		if r.Attending {
			stats.AttendingResponses++
			stats.AttendingGuests += int64(r.GuestCount)
		} else {
			stats.DeclinedResponses++
		}
	}
	return stats
}
