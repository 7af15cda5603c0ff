package dashboard

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	src Sources
	now func() time.Time
}

func NewService(src Sources) *Service {
	return &Service{src: src, now: func() time.Time { return time.Now().UTC() }}
}

// Overview collects the admin home counters. The first failing source aborts
// the whole overview.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	var (
		result Overview
		err    error
	)

	if result.Rsvps, err = s.src.Rsvps.Stats(ctx); err != nil {
		return Overview{}, fmt.Errorf("rsvp stats: %w", err)
	}

	messages, err := s.src.Messages.CountMessages(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("count messages: %w", err)
	}
	result.Messages = ModerationCounts{Pending: messages.Pending, Approved: messages.Approved}

	guestPhotos, err := s.src.Gallery.CountGuestPhotos(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("count guest photos: %w", err)
	}
	result.GuestPhotos = ModerationCounts{Pending: guestPhotos.Pending, Approved: guestPhotos.Approved}

	if result.Photos, err = s.src.Gallery.CountPhotos(ctx); err != nil {
		return Overview{}, fmt.Errorf("count photos: %w", err)
	}
	if result.ScheduleEvents, err = s.src.Schedule.CountEvents(ctx); err != nil {
		return Overview{}, fmt.Errorf("count schedule events: %w", err)
	}
	if result.PartyMembers, err = s.src.Party.CountMembers(ctx); err != nil {
		return Overview{}, fmt.Errorf("count party members: %w", err)
	}
	if result.MusicTracks, err = s.src.Music.CountTracks(ctx); err != nil {
		return Overview{}, fmt.Errorf("count music tracks: %w", err)
	}
	if result.Gifts, err = s.src.Gifts.Summary(ctx); err != nil {
		return Overview{}, fmt.Errorf("gift summary: %w", err)
	}

	result.GeneratedAt = s.now()
	return result, nil
}
