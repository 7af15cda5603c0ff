//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"wedding-site-go/internal/config"
	"wedding-site-go/internal/db"
	accountdomain "wedding-site-go/internal/domain/account"
	dashboarddomain "wedding-site-go/internal/domain/dashboard"
	gallerydomain "wedding-site-go/internal/domain/gallery"
	giftsdomain "wedding-site-go/internal/domain/gifts"
	guestbookdomain "wedding-site-go/internal/domain/guestbook"
	musicdomain "wedding-site-go/internal/domain/music"
	partydomain "wedding-site-go/internal/domain/party"
	popupdomain "wedding-site-go/internal/domain/popup"
	rsvpdomain "wedding-site-go/internal/domain/rsvp"
	scheduledomain "wedding-site-go/internal/domain/schedule"
	sitedomain "wedding-site-go/internal/domain/site"
	"wedding-site-go/internal/media"
	"wedding-site-go/internal/metrics"
	accountrepo "wedding-site-go/internal/repository/postgres/account"
	galleryrepo "wedding-site-go/internal/repository/postgres/gallery"
	giftsrepo "wedding-site-go/internal/repository/postgres/gifts"
	guestbookrepo "wedding-site-go/internal/repository/postgres/guestbook"
	musicrepo "wedding-site-go/internal/repository/postgres/music"
	partyrepo "wedding-site-go/internal/repository/postgres/party"
	popuprepo "wedding-site-go/internal/repository/postgres/popup"
	rsvprepo "wedding-site-go/internal/repository/postgres/rsvp"
	schedulerepo "wedding-site-go/internal/repository/postgres/schedule"
	siterepo "wedding-site-go/internal/repository/postgres/site"
	"wedding-site-go/internal/transport/httpserver"
	"wedding-site-go/internal/transport/httpserver/handler"
	"wedding-site-go/pkg/logger"
)

const (
	adminUsername = "admin"
	adminPassword = "e2e-password"
)

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	log := logger.Nop()
	cfg := config.Config{
		DB:      config.DBConfig{DSN: dsn},
		HTTP:    config.HTTPConfig{AllowedOrigins: "http://localhost:5173", RequestTimeout: 10 * time.Second},
		Session: config.SessionConfig{CookieName: "wedding_session", TTL: time.Hour},
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}
	if err := db.Migrate(dbConn, log); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	images := media.NewChecker(int64(cfg.Uploads.MaxImageBytes))
	accounts := accountdomain.NewService(accountrepo.NewPostgres(dbConn), accountrepo.NewSessionPostgres(dbConn), cfg.Session.TTL)
	if _, err := accounts.EnsureAdmin(context.Background(), adminUsername, adminPassword, ""); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}

	services := handler.Services{
		Accounts:  accounts,
		Site:      sitedomain.NewService(siterepo.NewPostgres(dbConn), images),
		Schedule:  scheduledomain.NewService(schedulerepo.NewPostgres(dbConn)),
		Gallery:   gallerydomain.NewService(galleryrepo.NewPostgres(dbConn), images),
		Guestbook: guestbookdomain.NewService(guestbookrepo.NewPostgres(dbConn)),
		Rsvps:     rsvpdomain.NewService(rsvprepo.NewPostgres(dbConn)),
		Party:     partydomain.NewService(partyrepo.NewPostgres(dbConn), images),
		Popups:    popupdomain.NewService(popuprepo.NewPostgres(dbConn), images),
		Music:     musicdomain.NewService(musicrepo.NewPostgres(dbConn)),
		Gifts:     giftsdomain.NewService(giftsrepo.NewPostgres(dbConn)),
	}
	services.Dashboard = dashboarddomain.NewService(dashboarddomain.Sources{
		Rsvps:    services.Rsvps,
		Messages: services.Guestbook,
		Gallery:  services.Gallery,
		Schedule: services.Schedule,
		Party:    services.Party,
		Music:    services.Music,
		Gifts:    services.Gifts,
	})

	m := metrics.New()
	handlers := handler.New(services, handler.CookieConfig{Name: cfg.Session.CookieName}, m, log)
	router := httpserver.NewRouter(cfg, handlers, httpserver.Deps{Auth: accounts, Metrics: m}, log)

	return &testEnv{server: httptest.NewServer(router), db: dbConn}
}

func (e *testEnv) Close() {
	e.server.Close()
	sqlDB, err := e.db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

// client keeps the session cookie between requests.
func (e *testEnv) client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{Jar: jar, Timeout: 10 * time.Second}
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.WithContext(context.Background()).Exec(
		"TRUNCATE TABLE sessions, users, couple_info, site_settings, livestream_info, schedule_events, photos, " +
			"guest_photos, guest_messages, rsvps, wedding_party_members, popups, music_tracks, gift_entries CASCADE",
	).Error
}

func requestJSON(t *testing.T, client *http.Client, method, url string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp, respBody
}

func decode(t *testing.T, body []byte, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(body, dst); err != nil {
		t.Fatalf("decode %s: %v", string(body), err)
	}
}

func expectStatus(t *testing.T, resp *http.Response, body []byte, status int) {
	t.Helper()
	if resp.StatusCode != status {
		t.Fatalf("%s %s: expected %d, got %d: %s", resp.Request.Method, resp.Request.URL.Path, status, resp.StatusCode, string(body))
	}
}

type errorEnvelope struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func login(t *testing.T, env *testEnv, client *http.Client) {
	t.Helper()
	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/auth/login", map[string]string{
		"username": adminUsername,
		"password": adminPassword,
	})
	expectStatus(t, resp, body, http.StatusOK)
}

func TestE2EPublicSiteBeforeConfiguration(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()
	client := env.client(t)

	for _, path := range []string{"/api/couple", "/api/settings", "/api/livestream"} {
		resp, body := requestJSON(t, client, http.MethodGet, env.server.URL+path, nil)
		expectStatus(t, resp, body, http.StatusNotFound)
		var envelope errorEnvelope
		decode(t, body, &envelope)
		if envelope.Error.Code != "not_configured" {
			t.Fatalf("%s: expected not_configured, got %q", path, envelope.Error.Code)
		}
	}

	resp, body := requestJSON(t, client, http.MethodGet, env.server.URL+"/api/schedule", nil)
	expectStatus(t, resp, body, http.StatusOK)
	if strings.TrimSpace(string(body)) != `{"items":[]}` {
		t.Fatalf("expected empty list, got %s", string(body))
	}
}

func TestE2EAdminConfiguresSite(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()
	client := env.client(t)

	resp, body := requestJSON(t, client, http.MethodPut, env.server.URL+"/api/admin/settings", map[string]interface{}{"venue_name": "Rose Garden"})
	expectStatus(t, resp, body, http.StatusUnauthorized)

	login(t, env, client)

	resp, body = requestJSON(t, client, http.MethodPut, env.server.URL+"/api/admin/settings", map[string]interface{}{
		"venue_name":   "Rose Garden",
		"music_volume": 40,
	})
	expectStatus(t, resp, body, http.StatusOK)

	resp, body = requestJSON(t, client, http.MethodPut, env.server.URL+"/api/admin/settings", map[string]interface{}{"venue_address": "1 Lotus St"})
	expectStatus(t, resp, body, http.StatusOK)

	var settings struct {
		VenueName    string `json:"venue_name"`
		VenueAddress string `json:"venue_address"`
		MusicVolume  int    `json:"music_volume"`
	}
	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/settings", nil)
	expectStatus(t, resp, body, http.StatusOK)
	decode(t, body, &settings)
	if settings.VenueName != "Rose Garden" || settings.VenueAddress != "1 Lotus St" || settings.MusicVolume != 40 {
		t.Fatalf("unexpected settings: %+v", settings)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/admin/schedule", map[string]interface{}{
		"title":         "Reception",
		"event_time":    "2026-12-20T18:00:00+07:00",
		"display_order": 2,
	})
	expectStatus(t, resp, body, http.StatusCreated)
	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/admin/schedule", map[string]interface{}{
		"title":         "Ceremony",
		"event_time":    "2026-12-20T10:00:00+07:00",
		"display_order": 1,
	})
	expectStatus(t, resp, body, http.StatusCreated)

	var events struct {
		Items []struct {
			Title string `json:"title"`
		} `json:"items"`
	}
	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/schedule", nil)
	expectStatus(t, resp, body, http.StatusOK)
	decode(t, body, &events)
	if len(events.Items) != 2 || events.Items[0].Title != "Ceremony" {
		t.Fatalf("expected events ordered by display_order, got %+v", events.Items)
	}
}

func TestE2EGuestFlows(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()
	guest := env.client(t)
	admin := env.client(t)
	login(t, env, admin)

	resp, body := requestJSON(t, guest, http.MethodPost, env.server.URL+"/api/rsvps", map[string]interface{}{
		"guest_name":  "Tran Thi B",
		"email":       "B@Example.com",
		"attending":   true,
		"guest_count": 2,
	})
	expectStatus(t, resp, body, http.StatusCreated)
	resp, body = requestJSON(t, guest, http.MethodPost, env.server.URL+"/api/rsvps", map[string]interface{}{
		"guest_name": "Le Van C",
		"email":      "c@example.com",
		"attending":  false,
	})
	expectStatus(t, resp, body, http.StatusCreated)

	var stats struct {
		TotalResponses  int64 `json:"total_responses"`
		AttendingGuests int64 `json:"attending_guests"`
	}
	resp, body = requestJSON(t, guest, http.MethodGet, env.server.URL+"/api/rsvps/stats", nil)
	expectStatus(t, resp, body, http.StatusOK)
	decode(t, body, &stats)
	if stats.TotalResponses != 2 || stats.AttendingGuests != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	resp, body = requestJSON(t, admin, http.MethodGet, env.server.URL+"/api/admin/rsvps/export.csv", nil)
	expectStatus(t, resp, body, http.StatusOK)
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv") {
		t.Fatalf("expected csv content type, got %q", resp.Header.Get("Content-Type"))
	}
	if !strings.Contains(string(body), "B@Example.com") {
		t.Fatalf("expected email as submitted in export, got %s", string(body))
	}

	resp, body = requestJSON(t, guest, http.MethodPost, env.server.URL+"/api/messages", map[string]string{
		"guest_name": "Tran Thi B",
		"message":    "Trăm năm hạnh phúc!",
	})
	expectStatus(t, resp, body, http.StatusCreated)
	var message struct {
		ID string `json:"id"`
	}
	decode(t, body, &message)

	resp, body = requestJSON(t, guest, http.MethodGet, env.server.URL+"/api/messages", nil)
	expectStatus(t, resp, body, http.StatusOK)
	if strings.Contains(string(body), message.ID) {
		t.Fatalf("expected pending message to be hidden")
	}

	resp, body = requestJSON(t, admin, http.MethodPut, env.server.URL+"/api/admin/messages/"+message.ID+"/approval", map[string]bool{"approved": true})
	expectStatus(t, resp, body, http.StatusOK)

	resp, body = requestJSON(t, guest, http.MethodGet, env.server.URL+"/api/messages", nil)
	expectStatus(t, resp, body, http.StatusOK)
	if !strings.Contains(string(body), message.ID) {
		t.Fatalf("expected approved message to be listed, got %s", string(body))
	}

	resp, body = requestJSON(t, admin, http.MethodPost, env.server.URL+"/api/admin/gifts", map[string]interface{}{
		"guest_name": "Tran Thi B",
		"amount":     500000,
		"method":     "cash",
		"side":       "bride",
	})
	expectStatus(t, resp, body, http.StatusCreated)

	var overview struct {
		Rsvps struct {
			TotalResponses int64 `json:"total_responses"`
		} `json:"rsvps"`
		Messages struct {
			Approved int64 `json:"approved"`
		} `json:"messages"`
		Gifts struct {
			Count int64 `json:"count"`
		} `json:"gifts"`
	}
	resp, body = requestJSON(t, admin, http.MethodGet, env.server.URL+"/api/admin/dashboard", nil)
	expectStatus(t, resp, body, http.StatusOK)
	decode(t, body, &overview)
	if overview.Rsvps.TotalResponses != 2 || overview.Messages.Approved != 1 || overview.Gifts.Count != 1 {
		t.Fatalf("unexpected overview: %+v", overview)
	}
}

func TestE2ELogoutRevokesSession(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()
	client := env.client(t)
	login(t, env, client)

	resp, body := requestJSON(t, client, http.MethodGet, env.server.URL+"/api/admin/auth/me", nil)
	expectStatus(t, resp, body, http.StatusOK)

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/auth/logout", nil)
	expectStatus(t, resp, body, http.StatusNoContent)

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/admin/auth/me", nil)
	expectStatus(t, resp, body, http.StatusUnauthorized)
}
