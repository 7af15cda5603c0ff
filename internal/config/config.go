package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"

	"wedding-site-go/pkg/logger"
)

const (
	SessionStorePostgres = "postgres"
	SessionStoreRedis    = "redis"
	SessionStoreMemory   = "memory"
)

type Config struct {
	Env       string `env:"ENV,default=development"`
	HTTP      HTTPConfig
	DB        DBConfig
	Session   SessionConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Uploads   UploadsConfig
	Cache     CacheConfig
	Admin     AdminConfig
}

type HTTPConfig struct {
	Port            string        `env:"HTTP_PORT,default=8080"`
	AllowedOrigins  string        `env:"CORS_ALLOWED_ORIGINS,default=http://localhost:5173"`
	RequestTimeout  time.Duration `env:"HTTP_REQUEST_TIMEOUT,default=30s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT,default=10s"`
}

type DBConfig struct {
	DSN             string        `env:"DB_DSN"`
	Host            string        `env:"DB_HOST,default=localhost"`
	Port            string        `env:"DB_PORT,default=5432"`
	User            string        `env:"DB_USER,default=postgres"`
	Password        string        `env:"DB_PASSWORD,default=postgres"`
	Name            string        `env:"DB_NAME,default=wedding_site"`
	SSLMode         string        `env:"DB_SSLMODE,default=disable"`
	TimeZone        string        `env:"DB_TIMEZONE,default=UTC"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,default=10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME,default=30m"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE,default=true"`
}

type SessionConfig struct {
	CookieName    string        `env:"SESSION_COOKIE_NAME,default=wedding_session"`
	TTL           time.Duration `env:"SESSION_TTL,default=168h"`
	SecureCookie  bool          `env:"SESSION_SECURE_COOKIE,default=false"`
	Store         string        `env:"SESSION_STORE,default=postgres"`
	PurgeSchedule string        `env:"SESSION_PURGE_SCHEDULE,default=@every 1h"`
}

type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

type RateLimitConfig struct {
	Enabled           bool    `env:"RATE_LIMIT_ENABLED,default=true"`
	RequestsPerSecond float64 `env:"RATE_LIMIT_RPS,default=0.5"`
	Burst             int     `env:"RATE_LIMIT_BURST,default=5"`
}

type UploadsConfig struct {
	MaxImageBytes int `env:"UPLOAD_MAX_IMAGE_BYTES,default=5242880"`
}

// CacheConfig controls the in-process read cache for the site singletons.
// A zero TTL disables it.
type CacheConfig struct {
	SiteTTL time.Duration `env:"SITE_CACHE_TTL,default=30s"`
}

// AdminConfig bootstraps the first admin account on startup when both
// username and password are set.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`
	Email    string `env:"ADMIN_EMAIL"`
}

func Load(log logger.Logger) (Config, error) {
	if err := loadDotEnv(log); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Session.Store {
	case SessionStorePostgres, SessionStoreMemory:
	case SessionStoreRedis:
		if strings.TrimSpace(c.Redis.URL) == "" {
			return fmt.Errorf("SESSION_STORE=redis requires REDIS_URL")
		}
	default:
		return fmt.Errorf("unknown SESSION_STORE %q", c.Session.Store)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}

func (c HTTPConfig) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
