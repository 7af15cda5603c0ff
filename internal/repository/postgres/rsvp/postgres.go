package rsvp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	rsvpdomain "wedding-site-go/internal/domain/rsvp"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListRsvps(ctx context.Context, filter rsvpdomain.ListFilter) ([]rsvpdomain.Rsvp, error) {
	query := r.db.WithContext(ctx).Model(&rsvpdomain.Rsvp{})
	if filter.Attending != nil {
		query = query.Where("attending = ?", *filter.Attending)
	}

	var rsvps []rsvpdomain.Rsvp
	if err := query.Order("created_at desc").Find(&rsvps).Error; err != nil {
		return nil, err
	}
	return rsvps, nil
}

func (r *PostgresRepository) GetRsvpByID(ctx context.Context, id string) (*rsvpdomain.Rsvp, error) {
	var rsvp rsvpdomain.Rsvp
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rsvp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rsvpdomain.ErrRsvpNotFound
		}
		return nil, err
	}
	return &rsvp, nil
}

func (r *PostgresRepository) CreateRsvp(ctx context.Context, rsvp *rsvpdomain.Rsvp) error {
	return r.db.WithContext(ctx).Create(rsvp).Error
}

func (r *PostgresRepository) UpdateRsvp(ctx context.Context, rsvp *rsvpdomain.Rsvp) error {
	result := r.db.WithContext(ctx).
		Model(&rsvpdomain.Rsvp{}).
		Where("id = ?", rsvp.ID).
		Updates(map[string]interface{}{
			"guest_name":           rsvp.GuestName,
			"email":                rsvp.Email,
			"phone":                rsvp.Phone,
			"attending":            rsvp.Attending,
			"guest_count":          rsvp.GuestCount,
			"meal_preference":      rsvp.MealPreference,
			"special_requirements": rsvp.SpecialRequirements,
			"updated_at":           rsvp.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return rsvpdomain.ErrRsvpNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteRsvp(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&rsvpdomain.Rsvp{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
