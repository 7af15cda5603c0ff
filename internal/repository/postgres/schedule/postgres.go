package schedule

import (
	"context"
	"errors"

	"gorm.io/gorm"

	scheduledomain "wedding-site-go/internal/domain/schedule"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListEvents(ctx context.Context) ([]scheduledomain.Event, error) {
	var events []scheduledomain.Event
	if err := r.db.WithContext(ctx).
		Order("display_order asc, event_time asc, created_at asc").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *PostgresRepository) GetEventByID(ctx context.Context, id string) (*scheduledomain.Event, error) {
	var event scheduledomain.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduledomain.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *PostgresRepository) CreateEvent(ctx context.Context, event *scheduledomain.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *PostgresRepository) UpdateEvent(ctx context.Context, event *scheduledomain.Event) error {
	result := r.db.WithContext(ctx).
		Model(&scheduledomain.Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]interface{}{
			"title":         event.Title,
			"description":   event.Description,
			"event_time":    event.EventTime,
			"location":      event.Location,
			"icon":          event.Icon,
			"display_order": event.DisplayOrder,
			"updated_at":    event.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return scheduledomain.ErrEventNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteEvent(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&scheduledomain.Event{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountEvents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&scheduledomain.Event{}).Count(&count).Error
	return count, err
}
