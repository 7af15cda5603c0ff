package music

import (
	"context"
	"errors"

	"gorm.io/gorm"

	musicdomain "wedding-site-go/internal/domain/music"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListTracks(ctx context.Context, filter musicdomain.ListFilter) ([]musicdomain.Track, error) {
	query := r.db.WithContext(ctx).Model(&musicdomain.Track{})
	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}

	var tracks []musicdomain.Track
	if err := query.Order("display_order asc, created_at asc").Find(&tracks).Error; err != nil {
		return nil, err
	}
	return tracks, nil
}

func (r *PostgresRepository) GetTrackByID(ctx context.Context, id string) (*musicdomain.Track, error) {
	var track musicdomain.Track
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&track).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, musicdomain.ErrTrackNotFound
		}
		return nil, err
	}
	return &track, nil
}

func (r *PostgresRepository) CreateTrack(ctx context.Context, track *musicdomain.Track) error {
	return r.db.WithContext(ctx).Create(track).Error
}

func (r *PostgresRepository) UpdateTrack(ctx context.Context, track *musicdomain.Track) error {
	result := r.db.WithContext(ctx).
		Model(&musicdomain.Track{}).
		Where("id = ?", track.ID).
		Updates(map[string]interface{}{
			"title":            track.Title,
			"filename":         track.Filename,
			"artist":           track.Artist,
			"duration_seconds": track.DurationSeconds,
			"display_order":    track.DisplayOrder,
			"active":           track.Active,
			"updated_at":       track.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return musicdomain.ErrTrackNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteTrack(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&musicdomain.Track{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountTracks(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&musicdomain.Track{}).Count(&count).Error
	return count, err
}
