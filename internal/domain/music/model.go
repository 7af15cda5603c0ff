package music

import "time"

type Track struct {
	ID              string    `gorm:"type:uuid;primaryKey"`
	Title           string    `gorm:"not null" validate:"required,max=200"`
	Filename        string    `gorm:"not null" validate:"required,max=500"`
	Artist          string    `gorm:"not null" validate:"max=200"`
	DurationSeconds int       `gorm:"not null" validate:"gte=0"`
	DisplayOrder    int       `gorm:"not null"`
	Active          bool      `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (Track) TableName() string { return "music_tracks" }

type ListFilter struct {
	ActiveOnly bool
}

type CreateTrackInput struct {
	Title           string
	Filename        string
	Artist          string
	DurationSeconds int
	DisplayOrder    int
	// Active defaults to true.
	Active *bool
}

type UpdateTrackInput struct {
	ID              string
	Title           *string
	Filename        *string
	Artist          *string
	DurationSeconds *int
	DisplayOrder    *int
	Active          *bool
}
