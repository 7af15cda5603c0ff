package rsvp

import "time"

const (
	DefaultGuestCount = 1
	MaxGuestCount     = 20
)

type Rsvp struct {
	ID                  string    `gorm:"type:uuid;primaryKey"`
	GuestName           string    `gorm:"not null" validate:"required,max=100"`
	Email               string    `gorm:"not null" validate:"required,email,max=255"`
	Phone               string    `gorm:"not null" validate:"max=32"`
	Attending           bool      `gorm:"not null"`
	GuestCount          int       `gorm:"not null" validate:"gte=1,lte=20"`
	MealPreference      string    `gorm:"not null" validate:"max=200"`
	SpecialRequirements string    `gorm:"not null" validate:"max=2000"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (Rsvp) TableName() string { return "rsvps" }

type ListFilter struct {
	Attending *bool
}

type CreateInput struct {
	GuestName string
	Email     string
	Phone     string
	// Attending must be answered explicitly.
	Attending *bool
	// GuestCount defaults to DefaultGuestCount.
	GuestCount          *int
	MealPreference      string
	SpecialRequirements string
}

type UpdateInput struct {
	ID                  string
	GuestName           *string
	Email               *string
	Phone               *string
	Attending           *bool
	GuestCount          *int
	MealPreference      *string
	SpecialRequirements *string
}

// Stats aggregates responses. Declined responses never add to
// AttendingGuests.
type Stats struct {
	TotalResponses     int64
	AttendingResponses int64
	DeclinedResponses  int64
	AttendingGuests    int64
}
