package guestbook

import "time"

type Message struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	GuestName string    `gorm:"not null" validate:"required,max=100"`
	Message   string    `gorm:"not null" validate:"required,max=2000"`
	Approved  bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (Message) TableName() string { return "guest_messages" }

// ListFilter narrows by moderation state; nil Approved lists everything.
type ListFilter struct {
	Approved *bool
}

type SubmitInput struct {
	GuestName string
	Message   string
}

type Counts struct {
	Pending  int64
	Approved int64
}
