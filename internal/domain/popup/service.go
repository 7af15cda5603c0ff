package popup

import (
	"context"
	"errors"
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

func (s *Service) ListPopups(ctx context.Context, filter ListFilter) ([]Popup, error) {
	return s.repo.ListPopups(ctx, filter)
}

func (s *Service) GetPopup(ctx context.Context, id string) (*Popup, error) {
	return s.repo.GetPopupByID(ctx, id)
}

func (s *Service) CreatePopup(ctx context.Context, input CreatePopupInput) (*Popup, error) {
	now := s.now()
	popup := Popup{
		ID:          uuid.NewString(),
		Type:        normalizeType(input.Type),
		Image:       strings.TrimSpace(input.Image),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Active:      input.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.validate(&popup); err != nil {
		return nil, err
	}
	if err := s.ensureTypeFree(ctx, popup.Type, popup.ID); err != nil {
		return nil, err
	}

	if err := s.repo.CreatePopup(ctx, &popup); err != nil {
		return nil, typeTaken(err)
	}
	return &popup, nil
}

func (s *Service) UpdatePopup(ctx context.Context, input UpdatePopupInput) (*Popup, error) {
	popup, err := s.repo.GetPopupByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	typeChanged := false
	if input.Type != nil {
		next := normalizeType(*input.Type)
		typeChanged = next != popup.Type
		popup.Type = next
	}
	if input.Image != nil {
		popup.Image = strings.TrimSpace(*input.Image)
	}
	if input.Title != nil {
		popup.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		popup.Description = *input.Description
	}
	if input.Active != nil {
		popup.Active = *input.Active
	}

	if err := s.validate(popup); err != nil {
		return nil, err
	}
	if typeChanged {
		if err := s.ensureTypeFree(ctx, popup.Type, popup.ID); err != nil {
			return nil, err
		}
	}

	popup.UpdatedAt = s.now()
	if err := s.repo.UpdatePopup(ctx, popup); err != nil {
		return nil, typeTaken(err)
	}
	return popup, nil
}

func (s *Service) DeletePopup(ctx context.Context, id string) error {
	deleted, err := s.repo.DeletePopup(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPopupNotFound
	}
	return nil
}

func (s *Service) validate(popup *Popup) error {
	return validation.Merge(validation.Struct(popup), s.images.Validate("image", popup.Image))
}

// ensureTypeFree gives a friendly error up front; the unique index still
// decides races between concurrent writers.
func (s *Service) ensureTypeFree(ctx context.Context, popupType, selfID string) error {
	existing, err := s.repo.GetPopupByType(ctx, popupType)
	switch {
	case err == nil && existing.ID != selfID:
		return validation.Wrap(ErrPopupTypeTaken, "type", "a popup of this type already exists")
	case err != nil && !errors.Is(err, ErrPopupNotFound):
		return err
	}
	return nil
}

func typeTaken(err error) error {
	if errors.Is(err, ErrPopupTypeTaken) {
		return validation.Wrap(err, "type", "a popup of this type already exists")
	}
	return err
}

func normalizeType(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
