package popup

import (
	"context"
	"errors"

	"gorm.io/gorm"

	popupdomain "wedding-site-go/internal/domain/popup"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPopups(ctx context.Context, filter popupdomain.ListFilter) ([]popupdomain.Popup, error) {
	query := r.db.WithContext(ctx).Model(&popupdomain.Popup{})
	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}

	var popups []popupdomain.Popup
	if err := query.Order("created_at asc").Find(&popups).Error; err != nil {
		return nil, err
	}
	return popups, nil
}

func (r *PostgresRepository) GetPopupByID(ctx context.Context, id string) (*popupdomain.Popup, error) {
	return r.getBy(ctx, "id = ?", id)
}

func (r *PostgresRepository) GetPopupByType(ctx context.Context, popupType string) (*popupdomain.Popup, error) {
	return r.getBy(ctx, "type = ?", popupType)
}

func (r *PostgresRepository) getBy(ctx context.Context, where string, arg string) (*popupdomain.Popup, error) {
	var popup popupdomain.Popup
	if err := r.db.WithContext(ctx).Where(where, arg).First(&popup).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, popupdomain.ErrPopupNotFound
		}
		return nil, err
	}
	return &popup, nil
}

func (r *PostgresRepository) CreatePopup(ctx context.Context, popup *popupdomain.Popup) error {
	if err := r.db.WithContext(ctx).Create(popup).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return popupdomain.ErrPopupTypeTaken
		}
		return err
	}
	return nil
}

func (r *PostgresRepository) UpdatePopup(ctx context.Context, popup *popupdomain.Popup) error {
	result := r.db.WithContext(ctx).
		Model(&popupdomain.Popup{}).
		Where("id = ?", popup.ID).
		Updates(map[string]interface{}{
			"type":        popup.Type,
			"image":       popup.Image,
			"title":       popup.Title,
			"description": popup.Description,
			"active":      popup.Active,
			"updated_at":  popup.UpdatedAt,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return popupdomain.ErrPopupTypeTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return popupdomain.ErrPopupNotFound
	}
	return nil
}

func (r *PostgresRepository) DeletePopup(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&popupdomain.Popup{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
