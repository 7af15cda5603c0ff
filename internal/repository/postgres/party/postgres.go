package party

import (
	"context"
	"errors"

	"gorm.io/gorm"

	partydomain "wedding-site-go/internal/domain/party"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListMembers(ctx context.Context) ([]partydomain.Member, error) {
	var members []partydomain.Member
	if err := r.db.WithContext(ctx).
		Order("display_order asc, created_at asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *PostgresRepository) GetMemberByID(ctx context.Context, id string) (*partydomain.Member, error) {
	var member partydomain.Member
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, partydomain.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *PostgresRepository) CreateMember(ctx context.Context, member *partydomain.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *PostgresRepository) UpdateMember(ctx context.Context, member *partydomain.Member) error {
	result := r.db.WithContext(ctx).
		Model(&partydomain.Member{}).
		Where("id = ?", member.ID).
		Updates(map[string]interface{}{
			"name":          member.Name,
			"role":          member.Role,
			"description":   member.Description,
			"photo":         member.Photo,
			"side":          member.Side,
			"display_order": member.DisplayOrder,
			"updated_at":    member.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return partydomain.ErrMemberNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteMember(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&partydomain.Member{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountMembers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&partydomain.Member{}).Count(&count).Error
	return count, err
}
