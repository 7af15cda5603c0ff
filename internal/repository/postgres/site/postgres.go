package site

import (
	"context"
	"errors"

	"gorm.io/gorm"

	sitedomain "wedding-site-go/internal/domain/site"
)

// PostgresRepository reads the oldest row of each singleton table; extra rows
// written outside the service are ignored.
type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) first(ctx context.Context, dst interface{}) error {
	if err := r.db.WithContext(ctx).Order("created_at asc").First(dst).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sitedomain.ErrNotConfigured
		}
		return err
	}
	return nil
}

// save writes every column, zero values included.
func (r *PostgresRepository) save(ctx context.Context, model interface{}, id string) error {
	if id == "" {
		return sitedomain.ErrNotConfigured
	}
	result := r.db.WithContext(ctx).Model(model).Select("*").Omit("id", "created_at").Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return sitedomain.ErrNotConfigured
	}
	return nil
}

func (r *PostgresRepository) GetCouple(ctx context.Context) (*sitedomain.CoupleInfo, error) {
	var info sitedomain.CoupleInfo
	if err := r.first(ctx, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *PostgresRepository) CreateCouple(ctx context.Context, info *sitedomain.CoupleInfo) error {
	return r.db.WithContext(ctx).Create(info).Error
}

func (r *PostgresRepository) UpdateCouple(ctx context.Context, info *sitedomain.CoupleInfo) error {
	return r.save(ctx, info, info.ID)
}

func (r *PostgresRepository) GetSettings(ctx context.Context) (*sitedomain.Settings, error) {
	var settings sitedomain.Settings
	if err := r.first(ctx, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *PostgresRepository) CreateSettings(ctx context.Context, settings *sitedomain.Settings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

func (r *PostgresRepository) UpdateSettings(ctx context.Context, settings *sitedomain.Settings) error {
	return r.save(ctx, settings, settings.ID)
}

func (r *PostgresRepository) GetLivestream(ctx context.Context) (*sitedomain.Livestream, error) {
	var live sitedomain.Livestream
	if err := r.first(ctx, &live); err != nil {
		return nil, err
	}
	return &live, nil
}

func (r *PostgresRepository) CreateLivestream(ctx context.Context, live *sitedomain.Livestream) error {
	return r.db.WithContext(ctx).Create(live).Error
}

func (r *PostgresRepository) UpdateLivestream(ctx context.Context, live *sitedomain.Livestream) error {
	return r.save(ctx, live, live.ID)
}
