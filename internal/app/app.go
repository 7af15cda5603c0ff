package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
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
	"wedding-site-go/internal/repository/inmemory"
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
	redissession "wedding-site-go/internal/repository/redis/session"
	"wedding-site-go/internal/transport/httpserver"
	"wedding-site-go/internal/transport/httpserver/handler"
	"wedding-site-go/internal/transport/httpserver/middleware"
	"wedding-site-go/pkg/logger"
)

const (
	cleanupTimeout         = 30 * time.Second
	defaultShutdownTimeout = 5 * time.Second
)

type App struct {
	cfg        config.Config
	log        logger.Logger
	httpServer *http.Server
	db         *gorm.DB
	redis      *redis.Client
	cron       *cron.Cron
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	a := &App{cfg: cfg, log: log, db: dbConn}

	if cfg.DB.AutoMigrate {
		if err := db.Migrate(dbConn, log); err != nil {
			a.Close()
			return nil, err
		}
	}

	sessions, err := a.sessionStore()
	if err != nil {
		a.Close()
		return nil, err
	}

	images := media.NewChecker(int64(cfg.Uploads.MaxImageBytes))
	accounts := accountdomain.NewService(accountrepo.NewPostgres(dbConn), sessions, cfg.Session.TTL)
	site := sitedomain.NewService(siterepo.NewPostgres(dbConn), images).WithCaches(sitedomain.Caches{
		Couple:     inmemory.NewTTLCache[sitedomain.CoupleInfo](),
		Settings:   inmemory.NewTTLCache[sitedomain.Settings](),
		Livestream: inmemory.NewTTLCache[sitedomain.Livestream](),
		TTL:        cfg.Cache.SiteTTL,
	})
	services := handler.Services{
		Accounts:  accounts,
		Site:      site,
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

	if cfg.Admin.Username != "" && cfg.Admin.Password != "" {
		created, err := accounts.EnsureAdmin(context.Background(), cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Email)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("bootstrap admin: %w", err)
		}
		if created {
			log.Info("app: admin account created", "username", cfg.Admin.Username)
		}
	}

	m := metrics.New()
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
	}

	if err := a.startCleanup(accounts, m, limiter); err != nil {
		a.Close()
		return nil, err
	}

	log.Info("app: initializing router")
	handlers := handler.New(services, handler.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.SecureCookie,
	}, m, log)
	router := httpserver.NewRouter(cfg, handlers, httpserver.Deps{
		Auth:        accounts,
		Metrics:     m,
		RateLimiter: limiter,
	}, log)

	log.Info("app: initializing http server")
	a.httpServer = httpserver.New(cfg, router)

	log.Info("app: ready",
		"env", cfg.Env,
		"session_store", sessionStoreName(cfg.Session.Store),
		"auto_migrate", cfg.DB.AutoMigrate,
		"rate_limit", cfg.RateLimit.Enabled,
		"site_cache_ttl", cfg.Cache.SiteTTL.String(),
	)
	return a, nil
}

// Migrate applies pending migrations and closes the connection. It backs
// the server's -migrate mode.
func Migrate(log logger.Logger) error {
	cfg, err := config.Load(log)
	if err != nil {
		return err
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return err
	}
	a := &App{cfg: cfg, log: log, db: dbConn}

	if err := db.Migrate(dbConn, log); err != nil {
		_ = a.Close()
		return err
	}
	return a.Close()
}

func sessionStoreName(store string) string {
	switch store {
	case config.SessionStoreRedis, config.SessionStoreMemory:
		return store
	default:
		return config.SessionStorePostgres
	}
}

func (a *App) sessionStore() (accountdomain.SessionStore, error) {
	switch a.cfg.Session.Store {
	case config.SessionStoreRedis:
		a.log.Info("app: using redis session store")
		client, err := redissession.NewClient(context.Background(), a.cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		a.redis = client
		return redissession.NewRedis(client), nil
	case config.SessionStoreMemory:
		a.log.Warn("app: using in-memory session store, sessions are lost on restart")
		return inmemory.NewSessionStore(), nil
	default:
		return accountrepo.NewSessionPostgres(a.db), nil
	}
}

// startCleanup schedules the periodic purge of expired sessions and idle
// rate limiter entries.
func (a *App) startCleanup(accounts *accountdomain.Service, m *metrics.Metrics, limiter *middleware.RateLimiter) error {
	c := cron.New()
	_, err := c.AddFunc(a.cfg.Session.PurgeSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
		defer cancel()

		removed, err := accounts.PurgeExpiredSessions(ctx)
		if err != nil {
			a.log.InternalError("cleanup: purge sessions failed", err)
		} else {
			m.RecordPurged(removed)
			if removed > 0 {
				a.log.Info("cleanup: expired sessions purged", "count", removed)
			}
		}

		if limiter != nil {
			if n := limiter.Cleanup(); n > 0 {
				a.log.Debug("cleanup: idle rate limit entries dropped", "count", n)
			}
		}
	})
	if err != nil {
		return fmt.Errorf("schedule session purge %q: %w", a.cfg.Session.PurgeSchedule, err)
	}
	c.Start()
	a.cron = c
	return nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) ShutdownTimeout() time.Duration {
	if a.cfg.HTTP.ShutdownTimeout <= 0 {
		return defaultShutdownTimeout
	}
	return a.cfg.HTTP.ShutdownTimeout
}

func (a *App) Close() error {
	if a.cron != nil {
		<-a.cron.Stop().Done()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("app: redis close failed", "err", err)
		}
	}
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
