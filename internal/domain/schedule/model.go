package schedule

import "time"

type Event struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Title        string    `gorm:"not null" validate:"required,max=200"`
	Description  string    `gorm:"not null" validate:"max=2000"`
	EventTime    time.Time `gorm:"not null" validate:"required"`
	Location     string    `gorm:"not null" validate:"max=300"`
	Icon         string    `gorm:"not null" validate:"max=64"`
	DisplayOrder int       `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (Event) TableName() string { return "schedule_events" }

type CreateEventInput struct {
	Title        string
	Description  string
	EventTime    time.Time
	Location     string
	Icon         string
	DisplayOrder int
}

type UpdateEventInput struct {
	ID           string
	Title        *string
	Description  *string
	EventTime    *time.Time
	Location     *string
	Icon         *string
	DisplayOrder *int
}
