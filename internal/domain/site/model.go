package site

import "time"

type CoupleInfo struct {
	ID               string    `gorm:"type:uuid;primaryKey"`
	BrideName        string    `gorm:"not null" validate:"required,max=100"`
	GroomName        string    `gorm:"not null" validate:"required,max=100"`
	BridePhoto       string    `gorm:"not null"`
	GroomPhoto       string    `gorm:"not null"`
	BrideDescription string    `gorm:"not null" validate:"max=2000"`
	GroomDescription string    `gorm:"not null" validate:"max=2000"`
	Story            string    `gorm:"not null" validate:"max=10000"`
	WeddingDate      time.Time `gorm:"not null" validate:"required"`
	HeroImage        string    `gorm:"not null"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (CoupleInfo) TableName() string { return "couple_info" }

type Settings struct {
	ID               string    `gorm:"type:uuid;primaryKey"`
	VenueName        string    `gorm:"not null" validate:"max=200"`
	VenueAddress     string    `gorm:"not null" validate:"max=500"`
	VenueMapURL      string    `gorm:"column:venue_map_url;not null" validate:"omitempty,url"`
	BrideBankName    string    `gorm:"not null"`
	BrideBankAccount string    `gorm:"not null" validate:"max=64"`
	BrideBankHolder  string    `gorm:"not null"`
	BrideQRImage     string    `gorm:"column:bride_qr_image;not null"`
	GroomBankName    string    `gorm:"not null"`
	GroomBankAccount string    `gorm:"not null" validate:"max=64"`
	GroomBankHolder  string    `gorm:"not null"`
	GroomQRImage     string    `gorm:"column:groom_qr_image;not null"`
	FooterText       string    `gorm:"not null" validate:"max=1000"`
	FacebookURL      string    `gorm:"column:facebook_url;not null" validate:"omitempty,url"`
	InstagramURL     string    `gorm:"column:instagram_url;not null" validate:"omitempty,url"`
	YoutubeURL       string    `gorm:"column:youtube_url;not null" validate:"omitempty,url"`
	HeadingFont      string    `gorm:"not null" validate:"max=100"`
	BodyFont         string    `gorm:"not null" validate:"max=100"`
	MusicEnabled     bool      `gorm:"not null"`
	MusicAutoplay    bool      `gorm:"not null"`
	MusicVolume      int       `gorm:"not null" validate:"gte=0,lte=100"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (Settings) TableName() string { return "site_settings" }

const DefaultMusicVolume = 50

const (
	PlatformYouTube  = "youtube"
	PlatformFacebook = "facebook"
	PlatformTikTok   = "tiktok"
	PlatformOther    = "other"
)

type Livestream struct {
	ID          string     `gorm:"type:uuid;primaryKey"`
	Active      bool       `gorm:"not null"`
	Platform    string     `gorm:"not null" validate:"omitempty,oneof=youtube facebook tiktok other"`
	StreamURL   string     `gorm:"column:stream_url;not null" validate:"omitempty,url"`
	Title       string     `gorm:"not null" validate:"max=200"`
	Description string     `gorm:"not null" validate:"max=2000"`
	StartTime   *time.Time `gorm:"column:start_time"`
	EndTime     *time.Time `gorm:"column:end_time"`
	Thumbnail   string     `gorm:"not null"`
	ChatEnabled bool       `gorm:"not null"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null;autoUpdateTime:false"`
}

func (Livestream) TableName() string { return "livestream_info" }

// Upsert inputs are patches: nil keeps the stored value.

type CoupleInput struct {
	BrideName        *string
	GroomName        *string
	BridePhoto       *string
	GroomPhoto       *string
	BrideDescription *string
	GroomDescription *string
	Story            *string
	WeddingDate      *time.Time
	HeroImage        *string
}

type SettingsInput struct {
	VenueName        *string
	VenueAddress     *string
	VenueMapURL      *string
	BrideBankName    *string
	BrideBankAccount *string
	BrideBankHolder  *string
	BrideQRImage     *string
	GroomBankName    *string
	GroomBankAccount *string
	GroomBankHolder  *string
	GroomQRImage     *string
	FooterText       *string
	FacebookURL      *string
	InstagramURL     *string
	YoutubeURL       *string
	HeadingFont      *string
	BodyFont         *string
	MusicEnabled     *bool
	MusicAutoplay    *bool
	MusicVolume      *int
}

type LivestreamInput struct {
	Active         *bool
	Platform       *string
	StreamURL      *string
	Title          *string
	Description    *string
	StartTime      *time.Time
	ClearStartTime bool
	EndTime        *time.Time
	ClearEndTime   bool
	Thumbnail      *string
	ChatEnabled    *bool
}
