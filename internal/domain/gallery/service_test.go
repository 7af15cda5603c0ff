package gallery

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"wedding-site-go/internal/media"
	"wedding-site-go/internal/validation"
)

type fakeRepo struct {
	photos      map[string]Photo
	guestPhotos map[string]GuestPhoto
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{photos: make(map[string]Photo), guestPhotos: make(map[string]GuestPhoto)}
}

func (r *fakeRepo) ListPhotos(ctx context.Context, filter PhotoFilter) ([]Photo, error) {
	result := make([]Photo, 0, len(r.photos))
	for _, photo := range r.photos {
		if filter.Category != "" && photo.Category != filter.Category {
			continue
		}
		result = append(result, photo)
	}
	return result, nil
}

func (r *fakeRepo) GetPhotoByID(ctx context.Context, id string) (*Photo, error) {
	photo, ok := r.photos[id]
	if !ok {
		return nil, ErrPhotoNotFound
	}
	return &photo, nil
}

func (r *fakeRepo) CreatePhoto(ctx context.Context, photo *Photo) error {
	r.photos[photo.ID] = *photo
	return nil
}

func (r *fakeRepo) UpdatePhoto(ctx context.Context, photo *Photo) error {
	r.photos[photo.ID] = *photo
	return nil
}

func (r *fakeRepo) DeletePhoto(ctx context.Context, id string) (bool, error) {
	if _, ok := r.photos[id]; !ok {
		return false, nil
	}
	delete(r.photos, id)
	return true, nil
}

func (r *fakeRepo) CountPhotos(ctx context.Context) (int64, error) {
	return int64(len(r.photos)), nil
}

func (r *fakeRepo) ListGuestPhotos(ctx context.Context, filter GuestPhotoFilter) ([]GuestPhoto, error) {
	result := make([]GuestPhoto, 0, len(r.guestPhotos))
	for _, photo := range r.guestPhotos {
		if filter.Approved != nil && photo.Approved != *filter.Approved {
			continue
		}
		result = append(result, photo)
	}
	return result, nil
}

func (r *fakeRepo) GetGuestPhotoByID(ctx context.Context, id string) (*GuestPhoto, error) {
	photo, ok := r.guestPhotos[id]
	if !ok {
		return nil, ErrGuestPhotoNotFound
	}
	return &photo, nil
}

func (r *fakeRepo) CreateGuestPhoto(ctx context.Context, photo *GuestPhoto) error {
	r.guestPhotos[photo.ID] = *photo
	return nil
}

func (r *fakeRepo) SetGuestPhotoApproval(ctx context.Context, id string, approved bool, updatedAt time.Time) (bool, error) {
	photo, ok := r.guestPhotos[id]
	if !ok {
		return false, nil
	}
	photo.Approved = approved
	photo.UpdatedAt = updatedAt
	r.guestPhotos[id] = photo
	return true, nil
}

func (r *fakeRepo) DeleteGuestPhoto(ctx context.Context, id string) (bool, error) {
	if _, ok := r.guestPhotos[id]; !ok {
		return false, nil
	}
	delete(r.guestPhotos, id)
	return true, nil
}

func (r *fakeRepo) CountGuestPhotos(ctx context.Context) (GuestPhotoCounts, error) {
	var counts GuestPhotoCounts
	for _, photo := range r.guestPhotos {
		if photo.Approved {
			counts.Approved++
		} else {
			counts.Pending++
		}
	}
	return counts, nil
}

// 1x1 transparent PNG.
const pngBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

func TestCreatePhotoAcceptsImageDataURL(t *testing.T) {
	svc := NewService(newFakeRepo(), media.NewChecker(0))

	photo, err := svc.CreatePhoto(context.Background(), CreatePhotoInput{
		URL:      "data:image/png;base64," + pngBase64,
		Category: "prewedding",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if photo.Category != "prewedding" {
		t.Fatalf("unexpected photo: %+v", photo)
	}
}

func TestCreatePhotoRejectsNonImage(t *testing.T) {
	svc := NewService(newFakeRepo(), media.NewChecker(0))

	payload := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 not a picture"))
	_, err := svc.CreatePhoto(context.Background(), CreatePhotoInput{URL: "data:image/png;base64," + payload})

	var verr *validation.Error
	if !errors.As(err, &verr) || verr.Fields["url"] == "" {
		t.Fatalf("expected url validation error, got %v", err)
	}
	if !errors.Is(err, media.ErrNotImage) {
		t.Fatalf("expected ErrNotImage cause, got %v", err)
	}
}

func TestListPhotosByCategory(t *testing.T) {
	svc := NewService(newFakeRepo(), media.NewChecker(0))
	ctx := context.Background()

	_, _ = svc.CreatePhoto(ctx, CreatePhotoInput{URL: "https://cdn.example.com/1.jpg", Category: "ceremony"})
	_, _ = svc.CreatePhoto(ctx, CreatePhotoInput{URL: "https://cdn.example.com/2.jpg", Category: "party"})

	photos, err := svc.ListPhotos(ctx, PhotoFilter{Category: " ceremony "})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(photos) != 1 || photos[0].Category != "ceremony" {
		t.Fatalf("expected one ceremony photo, got %+v", photos)
	}
}

func TestGuestPhotoModeration(t *testing.T) {
	svc := NewService(newFakeRepo(), media.NewChecker(0))
	ctx := context.Background()

	photo, err := svc.SubmitGuestPhoto(ctx, SubmitGuestPhotoInput{URL: "https://cdn.example.com/g.jpg", GuestName: "Bao"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if photo.Approved {
		t.Fatalf("expected pending guest photo")
	}

	public, _ := svc.ListApprovedGuestPhotos(ctx)
	if len(public) != 0 {
		t.Fatalf("expected no public guest photos, got %d", len(public))
	}

	if _, err := svc.SetGuestPhotoApproval(ctx, photo.ID, true); err != nil {
		t.Fatalf("approve: %v", err)
	}
	public, _ = svc.ListApprovedGuestPhotos(ctx)
	if len(public) != 1 {
		t.Fatalf("expected approved guest photo to be public, got %d", len(public))
	}

	if _, err := svc.SetGuestPhotoApproval(ctx, "missing", true); !errors.Is(err, ErrGuestPhotoNotFound) {
		t.Fatalf("expected ErrGuestPhotoNotFound, got %v", err)
	}
}

func TestSubmitGuestPhotoRequiresName(t *testing.T) {
	svc := NewService(newFakeRepo(), media.NewChecker(0))

	_, err := svc.SubmitGuestPhoto(context.Background(), SubmitGuestPhotoInput{})
	var verr *validation.Error
	if !errors.As(err, &verr) || verr.Fields["guest_name"] == "" || verr.Fields["url"] == "" {
		t.Fatalf("expected guest_name and url errors, got %v", err)
	}
}
