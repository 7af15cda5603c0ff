package music

import "context"

type Repository interface {
	ListTracks(ctx context.Context, filter ListFilter) ([]Track, error)
	GetTrackByID(ctx context.Context, id string) (*Track, error)
	CreateTrack(ctx context.Context, track *Track) error
	UpdateTrack(ctx context.Context, track *Track) error
	DeleteTrack(ctx context.Context, id string) (bool, error)
	CountTracks(ctx context.Context) (int64, error)
}
