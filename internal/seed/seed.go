// Package seed loads a YAML description of a wedding site and writes it
// through the domain services, so the usual validation applies.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	musicdomain "wedding-site-go/internal/domain/music"
	partydomain "wedding-site-go/internal/domain/party"
	scheduledomain "wedding-site-go/internal/domain/schedule"
	sitedomain "wedding-site-go/internal/domain/site"
	"wedding-site-go/pkg/logger"
)

type Document struct {
	Admin        *Admin      `yaml:"admin"`
	Couple       *Couple     `yaml:"couple"`
	Settings     *Settings   `yaml:"settings"`
	Livestream   *Livestream `yaml:"livestream"`
	Schedule     []Event     `yaml:"schedule"`
	WeddingParty []Member    `yaml:"wedding_party"`
	Music        []Track     `yaml:"music"`
}

type Admin struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Email    string `yaml:"email"`
}

type Couple struct {
	BrideName        *string `yaml:"bride_name"`
	GroomName        *string `yaml:"groom_name"`
	BridePhoto       *string `yaml:"bride_photo"`
	GroomPhoto       *string `yaml:"groom_photo"`
	BrideDescription *string `yaml:"bride_description"`
	GroomDescription *string `yaml:"groom_description"`
	Story            *string `yaml:"story"`
	WeddingDate      *string `yaml:"wedding_date"`
	HeroImage        *string `yaml:"hero_image"`
}

type Settings struct {
	VenueName        *string `yaml:"venue_name"`
	VenueAddress     *string `yaml:"venue_address"`
	VenueMapURL      *string `yaml:"venue_map_url"`
	BrideBankName    *string `yaml:"bride_bank_name"`
	BrideBankAccount *string `yaml:"bride_bank_account"`
	BrideBankHolder  *string `yaml:"bride_bank_holder"`
	BrideQRImage     *string `yaml:"bride_qr_image"`
	GroomBankName    *string `yaml:"groom_bank_name"`
	GroomBankAccount *string `yaml:"groom_bank_account"`
	GroomBankHolder  *string `yaml:"groom_bank_holder"`
	GroomQRImage     *string `yaml:"groom_qr_image"`
	FooterText       *string `yaml:"footer_text"`
	FacebookURL      *string `yaml:"facebook_url"`
	InstagramURL     *string `yaml:"instagram_url"`
	YoutubeURL       *string `yaml:"youtube_url"`
	HeadingFont      *string `yaml:"heading_font"`
	BodyFont         *string `yaml:"body_font"`
	MusicEnabled     *bool   `yaml:"music_enabled"`
	MusicAutoplay    *bool   `yaml:"music_autoplay"`
	MusicVolume      *int    `yaml:"music_volume"`
}

type Livestream struct {
	Active      *bool   `yaml:"active"`
	Platform    *string `yaml:"platform"`
	StreamURL   *string `yaml:"stream_url"`
	Title       *string `yaml:"title"`
	Description *string `yaml:"description"`
	StartTime   *string `yaml:"start_time"`
	EndTime     *string `yaml:"end_time"`
	Thumbnail   *string `yaml:"thumbnail"`
	ChatEnabled *bool   `yaml:"chat_enabled"`
}

type Event struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	EventTime    string `yaml:"event_time"`
	Location     string `yaml:"location"`
	Icon         string `yaml:"icon"`
	DisplayOrder int    `yaml:"display_order"`
}

type Member struct {
	Name         string `yaml:"name"`
	Role         string `yaml:"role"`
	Description  string `yaml:"description"`
	Photo        string `yaml:"photo"`
	Side         string `yaml:"side"`
	DisplayOrder int    `yaml:"display_order"`
}

type Track struct {
	Title           string `yaml:"title"`
	Filename        string `yaml:"filename"`
	Artist          string `yaml:"artist"`
	DurationSeconds int    `yaml:"duration_seconds"`
	DisplayOrder    int    `yaml:"display_order"`
	Active          *bool  `yaml:"active"`
}

func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &doc, nil
}

func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

type AccountWriter interface {
	EnsureAdmin(ctx context.Context, username, password, email string) (bool, error)
}

type SiteWriter interface {
	UpsertCouple(ctx context.Context, input sitedomain.CoupleInput) (*sitedomain.CoupleInfo, error)
	UpsertSettings(ctx context.Context, input sitedomain.SettingsInput) (*sitedomain.Settings, error)
	UpsertLivestream(ctx context.Context, input sitedomain.LivestreamInput) (*sitedomain.Livestream, error)
}

type ScheduleWriter interface {
	CreateEvent(ctx context.Context, input scheduledomain.CreateEventInput) (*scheduledomain.Event, error)
}

type PartyWriter interface {
	CreateMember(ctx context.Context, input partydomain.CreateMemberInput) (*partydomain.Member, error)
}

type MusicWriter interface {
	CreateTrack(ctx context.Context, input musicdomain.CreateTrackInput) (*musicdomain.Track, error)
}

// Targets are usually the domain services.
type Targets struct {
	Accounts AccountWriter
	Site     SiteWriter
	Schedule ScheduleWriter
	Party    PartyWriter
	Music    MusicWriter
}

type Result struct {
	AdminCreated bool
	Couple       bool
	Settings     bool
	Livestream   bool
	Events       int
	Members      int
	Tracks       int
}

// Apply writes every section present in doc. It stops at the first
// failure; earlier sections stay written.
func Apply(ctx context.Context, doc *Document, targets Targets, log logger.Logger) (Result, error) {
	var result Result

	if doc.Admin != nil {
		created, err := targets.Accounts.EnsureAdmin(ctx, doc.Admin.Username, doc.Admin.Password, doc.Admin.Email)
		if err != nil {
			return result, fmt.Errorf("admin: %w", err)
		}
		result.AdminCreated = created
		if !created {
			log.Info("seed: admin already exists", "username", doc.Admin.Username)
		}
	}

	if doc.Couple != nil {
		input, err := doc.Couple.input()
		if err != nil {
			return result, err
		}
		if _, err := targets.Site.UpsertCouple(ctx, input); err != nil {
			return result, fmt.Errorf("couple: %w", err)
		}
		result.Couple = true
	}

	if doc.Settings != nil {
		if _, err := targets.Site.UpsertSettings(ctx, doc.Settings.input()); err != nil {
			return result, fmt.Errorf("settings: %w", err)
		}
		result.Settings = true
	}

	if doc.Livestream != nil {
		input, err := doc.Livestream.input()
		if err != nil {
			return result, err
		}
		if _, err := targets.Site.UpsertLivestream(ctx, input); err != nil {
			return result, fmt.Errorf("livestream: %w", err)
		}
		result.Livestream = true
	}

	for i, event := range doc.Schedule {
		eventTime, err := parseTime(fmt.Sprintf("schedule[%d].event_time", i), event.EventTime)
		if err != nil {
			return result, err
		}
		_, err = targets.Schedule.CreateEvent(ctx, scheduledomain.CreateEventInput{
			Title:        event.Title,
			Description:  event.Description,
			EventTime:    eventTime,
			Location:     event.Location,
			Icon:         event.Icon,
			DisplayOrder: event.DisplayOrder,
		})
		if err != nil {
			return result, fmt.Errorf("schedule[%d]: %w", i, err)
		}
		result.Events++
	}

	for i, member := range doc.WeddingParty {
		_, err := targets.Party.CreateMember(ctx, partydomain.CreateMemberInput{
			Name:         member.Name,
			Role:         member.Role,
			Description:  member.Description,
			Photo:        member.Photo,
			Side:         member.Side,
			DisplayOrder: member.DisplayOrder,
		})
		if err != nil {
			return result, fmt.Errorf("wedding_party[%d]: %w", i, err)
		}
		result.Members++
	}

	for i, track := range doc.Music {
		_, err := targets.Music.CreateTrack(ctx, musicdomain.CreateTrackInput{
			Title:           track.Title,
			Filename:        track.Filename,
			Artist:          track.Artist,
			DurationSeconds: track.DurationSeconds,
			DisplayOrder:    track.DisplayOrder,
			Active:          track.Active,
		})
		if err != nil {
			return result, fmt.Errorf("music[%d]: %w", i, err)
		}
		result.Tracks++
	}

	return result, nil
}

func (c Couple) input() (sitedomain.CoupleInput, error) {
	input := sitedomain.CoupleInput{
		BrideName:        c.BrideName,
		GroomName:        c.GroomName,
		BridePhoto:       c.BridePhoto,
		GroomPhoto:       c.GroomPhoto,
		BrideDescription: c.BrideDescription,
		GroomDescription: c.GroomDescription,
		Story:            c.Story,
		HeroImage:        c.HeroImage,
	}
	if c.WeddingDate != nil {
		date, err := parseTime("couple.wedding_date", *c.WeddingDate)
		if err != nil {
			return input, err
		}
		input.WeddingDate = &date
	}
	return input, nil
}

func (s Settings) input() sitedomain.SettingsInput {
	return sitedomain.SettingsInput{
		VenueName:        s.VenueName,
		VenueAddress:     s.VenueAddress,
		VenueMapURL:      s.VenueMapURL,
		BrideBankName:    s.BrideBankName,
		BrideBankAccount: s.BrideBankAccount,
		BrideBankHolder:  s.BrideBankHolder,
		BrideQRImage:     s.BrideQRImage,
		GroomBankName:    s.GroomBankName,
		GroomBankAccount: s.GroomBankAccount,
		GroomBankHolder:  s.GroomBankHolder,
		GroomQRImage:     s.GroomQRImage,
		FooterText:       s.FooterText,
		FacebookURL:      s.FacebookURL,
		InstagramURL:     s.InstagramURL,
		YoutubeURL:       s.YoutubeURL,
		HeadingFont:      s.HeadingFont,
		BodyFont:         s.BodyFont,
		MusicEnabled:     s.MusicEnabled,
		MusicAutoplay:    s.MusicAutoplay,
		MusicVolume:      s.MusicVolume,
	}
}

func (l Livestream) input() (sitedomain.LivestreamInput, error) {
	input := sitedomain.LivestreamInput{
		Active:      l.Active,
		Platform:    l.Platform,
		StreamURL:   l.StreamURL,
		Title:       l.Title,
		Description: l.Description,
		Thumbnail:   l.Thumbnail,
		ChatEnabled: l.ChatEnabled,
	}
	if l.StartTime != nil {
		start, err := parseTime("livestream.start_time", *l.StartTime)
		if err != nil {
			return input, err
		}
		input.StartTime = &start
	}
	if l.EndTime != nil {
		end, err := parseTime("livestream.end_time", *l.EndTime)
		if err != nil {
			return input, err
		}
		input.EndTime = &end
	}
	return input, nil
}

func parseTime(field, value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: must be an RFC3339 timestamp", field)
	}
	return parsed, nil
}
