package site

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"wedding-site-go/internal/media"
	"wedding-site-go/internal/validation"
)

// Service manages the three singleton configuration rows. Concurrent upserts
// are not reconciled; the last write wins.
type Service struct {
	repo     Repository
	images   media.Checker
	couple   Cache[CoupleInfo]
	settings Cache[Settings]
	live     Cache[Livestream]
	cacheTTL time.Duration
	now      func() time.Time
}

func NewService(repo Repository, images media.Checker) *Service {
	return &Service{
		repo:     repo,
		images:   images,
		couple:   noopCache[CoupleInfo]{},
		settings: noopCache[Settings]{},
		live:     noopCache[Livestream]{},
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithCaches puts read caches in front of the Get methods. Upserts always
// read the stored row and refresh the cache after a successful write.
func (s *Service) WithCaches(caches Caches) *Service {
	if caches.TTL <= 0 {
		return s
	}
	s.cacheTTL = caches.TTL
	if caches.Couple != nil {
		s.couple = caches.Couple
	}
	if caches.Settings != nil {
		s.settings = caches.Settings
	}
	if caches.Livestream != nil {
		s.live = caches.Livestream
	}
	return s
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func (s *Service) GetCouple(ctx context.Context) (*CoupleInfo, error) {
	return cachedGet(s.couple, s.cacheTTL, func() (*CoupleInfo, error) { return s.repo.GetCouple(ctx) })
}

func (s *Service) UpsertCouple(ctx context.Context, input CoupleInput) (*CoupleInfo, error) {
	info, err := s.repo.GetCouple(ctx)
	created := false
	if err != nil {
		if !errors.Is(err, ErrNotConfigured) {
			return nil, err
		}
		info = &CoupleInfo{}
		created = true
	}

	setTrimmed(&info.BrideName, input.BrideName)
	setTrimmed(&info.GroomName, input.GroomName)
	setTrimmed(&info.BridePhoto, input.BridePhoto)
	setTrimmed(&info.GroomPhoto, input.GroomPhoto)
	set(&info.BrideDescription, input.BrideDescription)
	set(&info.GroomDescription, input.GroomDescription)
	set(&info.Story, input.Story)
	if input.WeddingDate != nil {
		info.WeddingDate = input.WeddingDate.UTC()
	}
	setTrimmed(&info.HeroImage, input.HeroImage)

	err = validation.Merge(validation.Struct(info), s.images.ValidateAll(map[string]string{
		"bride_photo": info.BridePhoto,
		"groom_photo": info.GroomPhoto,
		"hero_image":  info.HeroImage,
	}))
	if err != nil {
		return nil, err
	}

	now := s.now()
	info.UpdatedAt = now
	if created {
		info.ID = uuid.NewString()
		info.CreatedAt = now
		if err := s.repo.CreateCouple(ctx, info); err != nil {
			return nil, err
		}
	} else if err := s.repo.UpdateCouple(ctx, info); err != nil {
		s.couple.Delete(cacheKey)
		return nil, err
	}

	s.couple.Set(cacheKey, info, s.cacheTTL)
	return info, nil
}

func (s *Service) GetSettings(ctx context.Context) (*Settings, error) {
	return cachedGet(s.settings, s.cacheTTL, func() (*Settings, error) { return s.repo.GetSettings(ctx) })
}

func (s *Service) UpsertSettings(ctx context.Context, input SettingsInput) (*Settings, error) {
	settings, err := s.repo.GetSettings(ctx)
	created := false
	if err != nil {
		if !errors.Is(err, ErrNotConfigured) {
			return nil, err
		}
		settings = &Settings{MusicVolume: DefaultMusicVolume}
		created = true
	}

	setTrimmed(&settings.VenueName, input.VenueName)
	setTrimmed(&settings.VenueAddress, input.VenueAddress)
	setTrimmed(&settings.VenueMapURL, input.VenueMapURL)
	setTrimmed(&settings.BrideBankName, input.BrideBankName)
	setTrimmed(&settings.BrideBankAccount, input.BrideBankAccount)
	setTrimmed(&settings.BrideBankHolder, input.BrideBankHolder)
	setTrimmed(&settings.BrideQRImage, input.BrideQRImage)
	setTrimmed(&settings.GroomBankName, input.GroomBankName)
	setTrimmed(&settings.GroomBankAccount, input.GroomBankAccount)
	setTrimmed(&settings.GroomBankHolder, input.GroomBankHolder)
	setTrimmed(&settings.GroomQRImage, input.GroomQRImage)
	set(&settings.FooterText, input.FooterText)
	setTrimmed(&settings.FacebookURL, input.FacebookURL)
	setTrimmed(&settings.InstagramURL, input.InstagramURL)
	setTrimmed(&settings.YoutubeURL, input.YoutubeURL)
	setTrimmed(&settings.HeadingFont, input.HeadingFont)
	setTrimmed(&settings.BodyFont, input.BodyFont)
	set(&settings.MusicEnabled, input.MusicEnabled)
	set(&settings.MusicAutoplay, input.MusicAutoplay)
	set(&settings.MusicVolume, input.MusicVolume)

	err = validation.Merge(validation.Struct(settings), s.images.ValidateAll(map[string]string{
		"bride_qr_image": settings.BrideQRImage,
		"groom_qr_image": settings.GroomQRImage,
	}))
	if err != nil {
		return nil, err
	}

	now := s.now()
	settings.UpdatedAt = now
	if created {
		settings.ID = uuid.NewString()
		settings.CreatedAt = now
		if err := s.repo.CreateSettings(ctx, settings); err != nil {
			return nil, err
		}
	} else if err := s.repo.UpdateSettings(ctx, settings); err != nil {
		s.settings.Delete(cacheKey)
		return nil, err
	}

	s.settings.Set(cacheKey, settings, s.cacheTTL)
	return settings, nil
}

func (s *Service) GetLivestream(ctx context.Context) (*Livestream, error) {
	return cachedGet(s.live, s.cacheTTL, func() (*Livestream, error) { return s.repo.GetLivestream(ctx) })
}

func (s *Service) UpsertLivestream(ctx context.Context, input LivestreamInput) (*Livestream, error) {
	live, err := s.repo.GetLivestream(ctx)
	created := false
	if err != nil {
		if !errors.Is(err, ErrNotConfigured) {
			return nil, err
		}
		live = &Livestream{}
		created = true
	}

	set(&live.Active, input.Active)
	if input.Platform != nil {
		live.Platform = strings.ToLower(strings.TrimSpace(*input.Platform))
	}
	setTrimmed(&live.StreamURL, input.StreamURL)
	setTrimmed(&live.Title, input.Title)
	set(&live.Description, input.Description)
	switch {
	case input.ClearStartTime:
		live.StartTime = nil
	case input.StartTime != nil:
		start := input.StartTime.UTC()
		live.StartTime = &start
	}
	switch {
	case input.ClearEndTime:
		live.EndTime = nil
	case input.EndTime != nil:
		end := input.EndTime.UTC()
		live.EndTime = &end
	}
	setTrimmed(&live.Thumbnail, input.Thumbnail)
	set(&live.ChatEnabled, input.ChatEnabled)

	if err := s.validateLivestream(live); err != nil {
		return nil, err
	}

	now := s.now()
	live.UpdatedAt = now
	if created {
		live.ID = uuid.NewString()
		live.CreatedAt = now
		if err := s.repo.CreateLivestream(ctx, live); err != nil {
			return nil, err
		}
	} else if err := s.repo.UpdateLivestream(ctx, live); err != nil {
		s.live.Delete(cacheKey)
		return nil, err
	}

	s.live.Set(cacheKey, live, s.cacheTTL)
	return live, nil
}

func (s *Service) validateLivestream(live *Livestream) error {
	err := validation.Merge(validation.Struct(live), s.images.Validate("thumbnail", live.Thumbnail))
	if live.Active && live.StreamURL == "" {
		err = validation.Merge(err, validation.Field("stream_url", "is required when the livestream is active"))
	}
	if live.StartTime != nil && live.EndTime != nil && live.EndTime.Before(*live.StartTime) {
		err = validation.Merge(err, validation.Field("end_time", "must not be before start_time"))
	}
	return err
}
