package site

import (
	"context"
	"errors"
	"testing"
	"time"

	"wedding-site-go/internal/media"
	"wedding-site-go/internal/validation"
)

type fakeRepo struct {
	couple     *CoupleInfo
	settings   *Settings
	livestream *Livestream
	creates    int
	updates    int
	reads      int
}

func (r *fakeRepo) GetCouple(ctx context.Context) (*CoupleInfo, error) {
	if r.couple == nil {
		return nil, ErrNotConfigured
	}
	copied := *r.couple
	return &copied, nil
}

func (r *fakeRepo) CreateCouple(ctx context.Context, info *CoupleInfo) error {
	copied := *info
	r.couple = &copied
	r.creates++
	return nil
}

func (r *fakeRepo) UpdateCouple(ctx context.Context, info *CoupleInfo) error {
	copied := *info
	r.couple = &copied
	r.updates++
	return nil
}

func (r *fakeRepo) GetSettings(ctx context.Context) (*Settings, error) {
	r.reads++
	if r.settings == nil {
		return nil, ErrNotConfigured
	}
	copied := *r.settings
	return &copied, nil
}

func (r *fakeRepo) CreateSettings(ctx context.Context, settings *Settings) error {
	copied := *settings
	r.settings = &copied
	r.creates++
	return nil
}

func (r *fakeRepo) UpdateSettings(ctx context.Context, settings *Settings) error {
	copied := *settings
	r.settings = &copied
	r.updates++
	return nil
}

func (r *fakeRepo) GetLivestream(ctx context.Context) (*Livestream, error) {
	if r.livestream == nil {
		return nil, ErrNotConfigured
	}
	copied := *r.livestream
	return &copied, nil
}

func (r *fakeRepo) CreateLivestream(ctx context.Context, live *Livestream) error {
	copied := *live
	r.livestream = &copied
	r.creates++
	return nil
}

func (r *fakeRepo) UpdateLivestream(ctx context.Context, live *Livestream) error {
	copied := *live
	r.livestream = &copied
	r.updates++
	return nil
}

func ptr[T any](v T) *T { return &v }

func newTestService() (*Service, *fakeRepo) {
	repo := &fakeRepo{}
	svc := NewService(repo, media.NewChecker(0))
	return svc, repo
}

func TestGetBeforeUpsertIsNotConfigured(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.GetSettings(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := svc.GetCouple(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := svc.GetLivestream(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestUpsertSettingsLastWriteWins(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	first, err := svc.UpsertSettings(ctx, SettingsInput{VenueName: ptr("Rose Garden"), FooterText: ptr("See you")})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.MusicVolume != DefaultMusicVolume {
		t.Fatalf("expected default volume %d, got %d", DefaultMusicVolume, first.MusicVolume)
	}

	second, err := svc.UpsertSettings(ctx, SettingsInput{VenueName: ptr("Lotus Hall")})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected the same row, got %s and %s", first.ID, second.ID)
	}
	if repo.creates != 1 || repo.updates != 1 {
		t.Fatalf("expected 1 create and 1 update, got %d and %d", repo.creates, repo.updates)
	}

	got, err := svc.GetSettings(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.VenueName != "Lotus Hall" {
		t.Fatalf("expected latest venue, got %q", got.VenueName)
	}
	if got.FooterText != "See you" {
		t.Fatalf("expected omitted field to be kept, got %q", got.FooterText)
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("expected created_at to be immutable")
	}
}

func TestUpsertSettingsValidation(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.UpsertSettings(context.Background(), SettingsInput{
		MusicVolume:  ptr(150),
		FacebookURL:  ptr("not a url"),
		BrideQRImage: ptr("data:text/plain;base64,aGVsbG8="),
	})

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"music_volume", "facebook_url", "bride_qr_image"} {
		if verr.Fields[field] == "" {
			t.Fatalf("expected %s in %v", field, verr.Fields)
		}
	}
	if repo.settings != nil {
		t.Fatalf("expected nothing to be stored")
	}
}

func TestUpsertCoupleRequiresNamesAndDate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.UpsertCouple(ctx, CoupleInput{BrideName: ptr("Mai")})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Fields["groom_name"] == "" || verr.Fields["wedding_date"] == "" {
		t.Fatalf("expected groom_name and wedding_date errors, got %v", verr.Fields)
	}

	date := time.Date(2026, 12, 20, 10, 0, 0, 0, time.FixedZone("ICT", 7*3600))
	info, err := svc.UpsertCouple(ctx, CoupleInput{BrideName: ptr(" Mai "), GroomName: ptr("Nam"), WeddingDate: &date})
	if err != nil {
		t.Fatalf("upsert couple: %v", err)
	}
	if info.BrideName != "Mai" {
		t.Fatalf("expected trimmed name, got %q", info.BrideName)
	}
	if info.WeddingDate.Location() != time.UTC || !info.WeddingDate.Equal(date) {
		t.Fatalf("expected wedding date stored in UTC, got %v", info.WeddingDate)
	}
}

func TestUpsertLivestreamRules(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.UpsertLivestream(ctx, LivestreamInput{Active: ptr(true)})
	var verr *validation.Error
	if !errors.As(err, &verr) || verr.Fields["stream_url"] == "" {
		t.Fatalf("expected stream_url error, got %v", err)
	}

	start := time.Date(2026, 12, 20, 10, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	_, err = svc.UpsertLivestream(ctx, LivestreamInput{StartTime: &start, EndTime: &end})
	if !errors.As(err, &verr) || verr.Fields["end_time"] == "" {
		t.Fatalf("expected end_time error, got %v", err)
	}

	_, err = svc.UpsertLivestream(ctx, LivestreamInput{Platform: ptr("myspace")})
	if !errors.As(err, &verr) || verr.Fields["platform"] == "" {
		t.Fatalf("expected platform error, got %v", err)
	}

	live, err := svc.UpsertLivestream(ctx, LivestreamInput{
		Active:    ptr(true),
		Platform:  ptr("YouTube"),
		StreamURL: ptr("https://youtube.com/live/abc"),
		StartTime: &start,
	})
	if err != nil {
		t.Fatalf("upsert livestream: %v", err)
	}
	if live.Platform != PlatformYouTube {
		t.Fatalf("expected normalized platform, got %q", live.Platform)
	}

	live, err = svc.UpsertLivestream(ctx, LivestreamInput{ClearStartTime: true, Active: ptr(false)})
	if err != nil {
		t.Fatalf("clear start time: %v", err)
	}
	if live.StartTime != nil {
		t.Fatalf("expected start time to be cleared")
	}
	if live.StreamURL != "https://youtube.com/live/abc" {
		t.Fatalf("expected stream url to be kept, got %q", live.StreamURL)
	}
}

type mapCache[T any] struct {
	items map[string]T
}

func (c *mapCache[T]) Get(key string) (*T, bool) {
	v, ok := c.items[key]
	if !ok {
		return nil, false
	}
	return &v, true
}

func (c *mapCache[T]) Set(key string, value *T, ttl time.Duration) {
	c.items[key] = *value
}

func (c *mapCache[T]) Delete(key string) {
	delete(c.items, key)
}

func TestCachedSettingsReads(t *testing.T) {
	svc, repo := newTestService()
	cache := &mapCache[Settings]{items: make(map[string]Settings)}
	svc.WithCaches(Caches{Settings: cache, TTL: time.Minute})
	ctx := context.Background()

	if _, err := svc.GetSettings(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if len(cache.items) != 0 {
		t.Fatalf("expected a missing row not to be cached")
	}

	if _, err := svc.UpsertSettings(ctx, SettingsInput{VenueName: ptr("Rose Garden")}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	readsAfterUpsert := repo.reads

	for i := 0; i < 3; i++ {
		got, err := svc.GetSettings(ctx)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.VenueName != "Rose Garden" {
			t.Fatalf("expected cached venue, got %q", got.VenueName)
		}
	}
	if repo.reads != readsAfterUpsert {
		t.Fatalf("expected reads to be served from cache, got %d extra", repo.reads-readsAfterUpsert)
	}

	if _, err := svc.UpsertSettings(ctx, SettingsInput{VenueName: ptr("Lotus Hall")}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	got, _ := svc.GetSettings(ctx)
	if got.VenueName != "Lotus Hall" {
		t.Fatalf("expected upsert to refresh the cache, got %q", got.VenueName)
	}
}
