package popup

import "time"

const (
	TypeWelcome   = "welcome"
	TypeScrollEnd = "scroll_end"
)

type Popup struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Type        string    `gorm:"not null;uniqueIndex" validate:"required,oneof=welcome scroll_end"`
	Image       string    `gorm:"not null"`
	Title       string    `gorm:"not null" validate:"max=200"`
	Description string    `gorm:"not null" validate:"max=2000"`
	Active      bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
}

type ListFilter struct {
	ActiveOnly bool
}

type CreatePopupInput struct {
	Type        string
	Image       string
	Title       string
	Description string
	Active      bool
}

type UpdatePopupInput struct {
	ID          string
	Type        *string
	Image       *string
	Title       *string
	Description *string
	Active      *bool
}
