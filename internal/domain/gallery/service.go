package gallery

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

// ListPhotos returns gallery photos ordered by display order, optionally
// limited to one category.
func (s *Service) ListPhotos(ctx context.Context, filter PhotoFilter) ([]Photo, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	return s.repo.ListPhotos(ctx, filter)
}

func (s *Service) GetPhoto(ctx context.Context, id string) (*Photo, error) {
	return s.repo.GetPhotoByID(ctx, id)
}

func (s *Service) CreatePhoto(ctx context.Context, input CreatePhotoInput) (*Photo, error) {
	now := s.now()
	photo := Photo{
		ID:           uuid.NewString(),
		URL:          strings.TrimSpace(input.URL),
		Caption:      strings.TrimSpace(input.Caption),
		Category:     strings.TrimSpace(input.Category),
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := validation.Merge(validation.Struct(photo), s.images.Validate("url", photo.URL)); err != nil {
		return nil, err
	}

	if err := s.repo.CreatePhoto(ctx, &photo); err != nil {
		return nil, err
	}
	return &photo, nil
}

func (s *Service) UpdatePhoto(ctx context.Context, input UpdatePhotoInput) (*Photo, error) {
	photo, err := s.repo.GetPhotoByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.URL != nil {
		photo.URL = strings.TrimSpace(*input.URL)
	}
	if input.Caption != nil {
		photo.Caption = strings.TrimSpace(*input.Caption)
	}
	if input.Category != nil {
		photo.Category = strings.TrimSpace(*input.Category)
	}
	if input.DisplayOrder != nil {
		photo.DisplayOrder = *input.DisplayOrder
	}

	if err := validation.Merge(validation.Struct(photo), s.images.Validate("url", photo.URL)); err != nil {
		return nil, err
	}

	photo.UpdatedAt = s.now()
	if err := s.repo.UpdatePhoto(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *Service) DeletePhoto(ctx context.Context, id string) error {
	deleted, err := s.repo.DeletePhoto(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPhotoNotFound
	}
	return nil
}

func (s *Service) CountPhotos(ctx context.Context) (int64, error) {
	return s.repo.CountPhotos(ctx)
}

// ListApprovedGuestPhotos is the public guest gallery, newest first.
func (s *Service) ListApprovedGuestPhotos(ctx context.Context) ([]GuestPhoto, error) {
	approved := true
	return s.repo.ListGuestPhotos(ctx, GuestPhotoFilter{Approved: &approved})
}

func (s *Service) ListGuestPhotos(ctx context.Context, filter GuestPhotoFilter) ([]GuestPhoto, error) {
	return s.repo.ListGuestPhotos(ctx, filter)
}

// SubmitGuestPhoto stores a guest upload pending moderation.
func (s *Service) SubmitGuestPhoto(ctx context.Context, input SubmitGuestPhotoInput) (*GuestPhoto, error) {
	now := s.now()
	photo := GuestPhoto{
		ID:        uuid.NewString(),
		URL:       strings.TrimSpace(input.URL),
		Caption:   strings.TrimSpace(input.Caption),
		GuestName: strings.TrimSpace(input.GuestName),
		Approved:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := validation.Merge(validation.Struct(photo), s.images.Validate("url", photo.URL)); err != nil {
		return nil, err
	}

	if err := s.repo.CreateGuestPhoto(ctx, &photo); err != nil {
		return nil, err
	}
	return &photo, nil
}

func (s *Service) SetGuestPhotoApproval(ctx context.Context, id string, approved bool) (*GuestPhoto, error) {
	updated, err := s.repo.SetGuestPhotoApproval(ctx, id, approved, s.now())
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrGuestPhotoNotFound
	}
	return s.repo.GetGuestPhotoByID(ctx, id)
}

func (s *Service) DeleteGuestPhoto(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteGuestPhoto(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGuestPhotoNotFound
	}
	return nil
}

func (s *Service) CountGuestPhotos(ctx context.Context) (GuestPhotoCounts, error) {
	return s.repo.CountGuestPhotos(ctx)
}
