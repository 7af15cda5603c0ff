package music

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

// ListTracks returns tracks ordered by display order, then creation time.
func (s *Service) ListTracks(ctx context.Context, filter ListFilter) ([]Track, error) {
	return s.repo.ListTracks(ctx, filter)
}

func (s *Service) GetTrack(ctx context.Context, id string) (*Track, error) {
	return s.repo.GetTrackByID(ctx, id)
}

func (s *Service) CreateTrack(ctx context.Context, input CreateTrackInput) (*Track, error) {
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	now := s.now()
	track := Track{
		ID:              uuid.NewString(),
		Title:           strings.TrimSpace(input.Title),
		Filename:        strings.TrimSpace(input.Filename),
		Artist:          strings.TrimSpace(input.Artist),
		DurationSeconds: input.DurationSeconds,
		DisplayOrder:    input.DisplayOrder,
		Active:          active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := validation.Struct(track); err != nil {
		return nil, err
	}

	if err := s.repo.CreateTrack(ctx, &track); err != nil {
		return nil, err
	}
	return &track, nil
}

func (s *Service) UpdateTrack(ctx context.Context, input UpdateTrackInput) (*Track, error) {
	track, err := s.repo.GetTrackByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		track.Title = strings.TrimSpace(*input.Title)
	}
	if input.Filename != nil {
		track.Filename = strings.TrimSpace(*input.Filename)
	}
	if input.Artist != nil {
		track.Artist = strings.TrimSpace(*input.Artist)
	}
	if input.DurationSeconds != nil {
		track.DurationSeconds = *input.DurationSeconds
	}
	if input.DisplayOrder != nil {
		track.DisplayOrder = *input.DisplayOrder
	}
	if input.Active != nil {
		track.Active = *input.Active
	}

	if err := validation.Struct(track); err != nil {
		return nil, err
	}

	track.UpdatedAt = s.now()
	if err := s.repo.UpdateTrack(ctx, track); err != nil {
		return nil, err
	}
	return track, nil
}

func (s *Service) DeleteTrack(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteTrack(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTrackNotFound
	}
	return nil
}

func (s *Service) CountTracks(ctx context.Context) (int64, error) {
	return s.repo.CountTracks(ctx)
}
