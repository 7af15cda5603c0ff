package gifts

import (
	"context"
	"errors"

	"gorm.io/gorm"

	giftsdomain "wedding-site-go/internal/domain/gifts"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListEntries(ctx context.Context, filter giftsdomain.ListFilter) ([]giftsdomain.Entry, error) {
	query := r.db.WithContext(ctx).Model(&giftsdomain.Entry{})
	if filter.Side != "" {
		query = query.Where("side = ?", filter.Side)
	}
	if filter.Method != "" {
		query = query.Where("method = ?", filter.Method)
	}

	var entries []giftsdomain.Entry
	if err := query.Order("received_at desc, created_at desc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresRepository) GetEntryByID(ctx context.Context, id string) (*giftsdomain.Entry, error) {
	var entry giftsdomain.Entry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, giftsdomain.ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *PostgresRepository) CreateEntry(ctx context.Context, entry *giftsdomain.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *PostgresRepository) UpdateEntry(ctx context.Context, entry *giftsdomain.Entry) error {
	result := r.db.WithContext(ctx).
		Model(&giftsdomain.Entry{}).
		Where("id = ?", entry.ID).
		Updates(map[string]interface{}{
			"guest_name":   entry.GuestName,
			"amount_minor": entry.Amount,
			"currency":     entry.Currency,
			"method":       entry.Method,
			"side":         entry.Side,
			"note":         entry.Note,
			"received_at":  entry.ReceivedAt,
			"updated_at":   entry.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return giftsdomain.ErrEntryNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteEntry(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&giftsdomain.Entry{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) SummaryRows(ctx context.Context) ([]giftsdomain.SummaryRow, error) {
	query := "SELECT g.currency AS currency, g.side AS side, COALESCE(SUM(g.amount_minor), 0)::BIGINT AS total, COUNT(*) AS count FROM gift_entries g GROUP BY g.currency, g.side ORDER BY g.currency, g.side"

	var rows []giftsdomain.SummaryRow
	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
