package party

import "time"

const (
	SideBride = "bride"
	SideGroom = "groom"
)

type Member struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null" validate:"required,max=100"`
	Role         string    `gorm:"not null" validate:"required,max=100"`
	Description  string    `gorm:"not null" validate:"max=2000"`
	Photo        string    `gorm:"not null"`
	Side         string    `gorm:"not null" validate:"omitempty,oneof=bride groom"`
	DisplayOrder int       `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (Member) TableName() string { return "wedding_party_members" }

type CreateMemberInput struct {
	Name         string
	Role         string
	Description  string
	Photo        string
	Side         string
	DisplayOrder int
}

type UpdateMemberInput struct {
	ID           string
	Name         *string
	Role         *string
	Description  *string
	Photo        *string
	Side         *string
	DisplayOrder *int
}
