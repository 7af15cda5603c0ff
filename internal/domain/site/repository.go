package site

import "context"

type Repository interface {
	GetCouple(ctx context.Context) (*CoupleInfo, error)
	CreateCouple(ctx context.Context, info *CoupleInfo) error
	UpdateCouple(ctx context.Context, info *CoupleInfo) error

	GetSettings(ctx context.Context) (*Settings, error)
	CreateSettings(ctx context.Context, settings *Settings) error
	UpdateSettings(ctx context.Context, settings *Settings) error

	GetLivestream(ctx context.Context) (*Livestream, error)
	CreateLivestream(ctx context.Context, live *Livestream) error
	UpdateLivestream(ctx context.Context, live *Livestream) error
}
