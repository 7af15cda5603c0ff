package gallery

import (
	"context"
	"time"
)

type Repository interface {
	ListPhotos(ctx context.Context, filter PhotoFilter) ([]Photo, error)
	GetPhotoByID(ctx context.Context, id string) (*Photo, error)
	CreatePhoto(ctx context.Context, photo *Photo) error
	UpdatePhoto(ctx context.Context, photo *Photo) error
	DeletePhoto(ctx context.Context, id string) (bool, error)
	CountPhotos(ctx context.Context) (int64, error)

	ListGuestPhotos(ctx context.Context, filter GuestPhotoFilter) ([]GuestPhoto, error)
	GetGuestPhotoByID(ctx context.Context, id string) (*GuestPhoto, error)
	CreateGuestPhoto(ctx context.Context, photo *GuestPhoto) error
	SetGuestPhotoApproval(ctx context.Context, id string, approved bool, updatedAt time.Time) (bool, error)
	DeleteGuestPhoto(ctx context.Context, id string) (bool, error)
	CountGuestPhotos(ctx context.Context) (GuestPhotoCounts, error)
}
