package guestbook

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

// ListApproved is the public guest book, newest first.
func (s *Service) ListApproved(ctx context.Context) ([]Message, error) {
	approved := true
	return s.repo.ListMessages(ctx, ListFilter{Approved: &approved})
}

func (s *Service) ListMessages(ctx context.Context, filter ListFilter) ([]Message, error) {
	return s.repo.ListMessages(ctx, filter)
}

func (s *Service) GetMessage(ctx context.Context, id string) (*Message, error) {
	return s.repo.GetMessageByID(ctx, id)
}

// Submit stores a guest's message pending moderation.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*Message, error) {
	now := s.now()
	message := Message{
		ID:        uuid.NewString(),
		GuestName: strings.TrimSpace(input.GuestName),
		Message:   strings.TrimSpace(input.Message),
		Approved:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := validation.Struct(message); err != nil {
		return nil, err
	}

	if err := s.repo.CreateMessage(ctx, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (s *Service) SetApproval(ctx context.Context, id string, approved bool) (*Message, error) {
	updated, err := s.repo.SetApproval(ctx, id, approved, s.now())
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrMessageNotFound
	}
	return s.repo.GetMessageByID(ctx, id)
}

func (s *Service) DeleteMessage(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteMessage(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMessageNotFound
	}
	return nil
}

func (s *Service) CountMessages(ctx context.Context) (Counts, error) {
	return s.repo.CountMessages(ctx)
}
