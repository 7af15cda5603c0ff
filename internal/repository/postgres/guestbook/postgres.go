package guestbook

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	guestbookdomain "wedding-site-go/internal/domain/guestbook"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListMessages(ctx context.Context, filter guestbookdomain.ListFilter) ([]guestbookdomain.Message, error) {
	query := r.db.WithContext(ctx).Model(&guestbookdomain.Message{})
	if filter.Approved != nil {
		query = query.Where("approved = ?", *filter.Approved)
	}

	var messages []guestbookdomain.Message
	if err := query.Order("created_at desc").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *PostgresRepository) GetMessageByID(ctx context.Context, id string) (*guestbookdomain.Message, error) {
	var message guestbookdomain.Message
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&message).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, guestbookdomain.ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *PostgresRepository) CreateMessage(ctx context.Context, message *guestbookdomain.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *PostgresRepository) SetApproval(ctx context.Context, id string, approved bool, updatedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&guestbookdomain.Message{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"approved":   approved,
			"updated_at": updatedAt,
		})
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) DeleteMessage(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&guestbookdomain.Message{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountMessages(ctx context.Context) (guestbookdomain.Counts, error) {
	var row struct {
		Pending  int64 `gorm:"column:pending"`
		Approved int64 `gorm:"column:approved"`
	}
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FILTER (WHERE NOT approved) AS pending, COUNT(*) FILTER (WHERE approved) AS approved FROM guest_messages").
		Scan(&row).Error
	if err != nil {
		return guestbookdomain.Counts{}, err
	}
	return guestbookdomain.Counts{Pending: row.Pending, Approved: row.Approved}, nil
}
