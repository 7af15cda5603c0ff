package party

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"wedding-site-go/internal/media"
	"wedding-site-go/internal/validation"
)

type Service struct {
	repo   Repository
	images media.Checker
	now    func() time.Time
}

func NewService(repo Repository, images media.Checker) *Service {
	return &Service{repo: repo, images: images, now: func() time.Time { return time.Now().UTC() }}
}

func (s *Service) ListMembers(ctx context.Context) ([]Member, error) {
	return s.repo.ListMembers(ctx)
}

func (s *Service) GetMember(ctx context.Context, id string) (*Member, error) {
	return s.repo.GetMemberByID(ctx, id)
}

func (s *Service) CreateMember(ctx context.Context, input CreateMemberInput) (*Member, error) {
	now := s.now()
	member := Member{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Role:         strings.TrimSpace(input.Role),
		Description:  input.Description,
		Photo:        strings.TrimSpace(input.Photo),
		Side:         strings.ToLower(strings.TrimSpace(input.Side)),
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.validate(&member); err != nil {
		return nil, err
	}

	if err := s.repo.CreateMember(ctx, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *Service) UpdateMember(ctx context.Context, input UpdateMemberInput) (*Member, error) {
	member, err := s.repo.GetMemberByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		member.Name = strings.TrimSpace(*input.Name)
	}
	if input.Role != nil {
		member.Role = strings.TrimSpace(*input.Role)
	}
	if input.Description != nil {
		member.Description = *input.Description
	}
	if input.Photo != nil {
		member.Photo = strings.TrimSpace(*input.Photo)
	}
	if input.Side != nil {
		member.Side = strings.ToLower(strings.TrimSpace(*input.Side))
	}
	if input.DisplayOrder != nil {
		member.DisplayOrder = *input.DisplayOrder
	}

	if err := s.validate(member); err != nil {
		return nil, err
	}

	member.UpdatedAt = s.now()
	if err := s.repo.UpdateMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *Service) DeleteMember(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteMember(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMemberNotFound
	}
	return nil
}

func (s *Service) CountMembers(ctx context.Context) (int64, error) {
	return s.repo.CountMembers(ctx)
}

func (s *Service) validate(member *Member) error {
	return validation.Merge(validation.Struct(member), s.images.Validate("photo", member.Photo))
}
