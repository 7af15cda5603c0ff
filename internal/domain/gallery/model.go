package gallery

import "time"

type Photo struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	URL          string    `gorm:"column:url;not null" validate:"required"`
	Caption      string    `gorm:"not null" validate:"max=500"`
	Category     string    `gorm:"not null" validate:"max=64"`
	DisplayOrder int       `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (Photo) TableName() string { return "photos" }

type GuestPhoto struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	URL       string    `gorm:"column:url;not null" validate:"required"`
	Caption   string    `gorm:"not null" validate:"max=500"`
	GuestName string    `gorm:"not null" validate:"required,max=100"`
	Approved  bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (GuestPhoto) TableName() string { return "guest_photos" }

type PhotoFilter struct {
	Category string
}

type GuestPhotoFilter struct {
	Approved *bool
}

type CreatePhotoInput struct {
	URL          string
	Caption      string
	Category     string
	DisplayOrder int
}

type UpdatePhotoInput struct {
	ID           string
	URL          *string
	Caption      *string
	Category     *string
	DisplayOrder *int
}

type SubmitGuestPhotoInput struct {
	URL       string
	Caption   string
	GuestName string
}

type GuestPhotoCounts struct {
	Pending  int64
	Approved int64
}
