package gallery

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	gallerydomain "wedding-site-go/internal/domain/gallery"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPhotos(ctx context.Context, filter gallerydomain.PhotoFilter) ([]gallerydomain.Photo, error) {
	query := r.db.WithContext(ctx).Model(&gallerydomain.Photo{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var photos []gallerydomain.Photo
	if err := query.Order("display_order asc, created_at asc").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *PostgresRepository) GetPhotoByID(ctx context.Context, id string) (*gallerydomain.Photo, error) {
	var photo gallerydomain.Photo
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&photo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gallerydomain.ErrPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

func (r *PostgresRepository) CreatePhoto(ctx context.Context, photo *gallerydomain.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *PostgresRepository) UpdatePhoto(ctx context.Context, photo *gallerydomain.Photo) error {
	result := r.db.WithContext(ctx).
		Model(&gallerydomain.Photo{}).
		Where("id = ?", photo.ID).
		Updates(map[string]interface{}{
			"url":           photo.URL,
			"caption":       photo.Caption,
			"category":      photo.Category,
			"display_order": photo.DisplayOrder,
			"updated_at":    photo.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gallerydomain.ErrPhotoNotFound
	}
	return nil
}

func (r *PostgresRepository) DeletePhoto(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&gallerydomain.Photo{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountPhotos(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gallerydomain.Photo{}).Count(&count).Error
	return count, err
}

func (r *PostgresRepository) ListGuestPhotos(ctx context.Context, filter gallerydomain.GuestPhotoFilter) ([]gallerydomain.GuestPhoto, error) {
	query := r.db.WithContext(ctx).Model(&gallerydomain.GuestPhoto{})
	if filter.Approved != nil {
		query = query.Where("approved = ?", *filter.Approved)
	}

	var photos []gallerydomain.GuestPhoto
	if err := query.Order("created_at desc").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *PostgresRepository) GetGuestPhotoByID(ctx context.Context, id string) (*gallerydomain.GuestPhoto, error) {
	var photo gallerydomain.GuestPhoto
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&photo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gallerydomain.ErrGuestPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

func (r *PostgresRepository) CreateGuestPhoto(ctx context.Context, photo *gallerydomain.GuestPhoto) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *PostgresRepository) SetGuestPhotoApproval(ctx context.Context, id string, approved bool, updatedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&gallerydomain.GuestPhoto{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"approved":   approved,
			"updated_at": updatedAt,
		})
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) DeleteGuestPhoto(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&gallerydomain.GuestPhoto{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountGuestPhotos(ctx context.Context) (gallerydomain.GuestPhotoCounts, error) {
	var row struct {
		Pending  int64 `gorm:"column:pending"`
		Approved int64 `gorm:"column:approved"`
	}
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FILTER (WHERE NOT approved) AS pending, COUNT(*) FILTER (WHERE approved) AS approved FROM guest_photos").
		Scan(&row).Error
	if err != nil {
		return gallerydomain.GuestPhotoCounts{}, err
	}
	return gallerydomain.GuestPhotoCounts{Pending: row.Pending, Approved: row.Approved}, nil
}
