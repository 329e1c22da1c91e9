package config

import (
	"slices"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Site     SiteConfig     `yaml:"site"`
	Thanks   ThanksConfig   `yaml:"thanks"`
	Session  SessionConfig  `yaml:"session"`
	Notify   NotifyConfig   `yaml:"notify"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"thanksmetoo"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// SiteConfig describes how pages and user profiles are addressed.
type SiteConfig struct {
	BaseURL          string `yaml:"base_url"          env:"SITE_BASE_URL"          env-default:"http://localhost:8080"`
	ArticlePath      string `yaml:"article_path"      env:"SITE_ARTICLE_PATH"      env-default:"/wiki/"`
	ProfileNamespace string `yaml:"profile_namespace" env:"SITE_PROFILE_NAMESPACE" env-default:"UserProfile"`
	ThanksPath       string `yaml:"thanks_path"       env:"SITE_THANKS_PATH"       env-default:"/thanks/"`
}

// ThanksConfig holds the thanks policy.
type ThanksConfig struct {
	// LogTypesRaw is a comma-separated allow-list of log types that can be
	// thanked. Empty means no action can be thanked.
	LogTypesRaw        string `yaml:"log_types"             env:"THANKS_LOG_TYPES"`
	SendToBots         bool   `yaml:"send_to_bots"          env:"THANKS_SEND_TO_BOTS"          env-default:"false"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute" env:"THANKS_RATE_LIMIT_PER_MINUTE" env-default:"10"`

	// Both switches default to off so that an explicit false in YAML is
	// never overwritten by an env default.
	DisableLogging   bool `yaml:"disable_logging"   env:"THANKS_DISABLE_LOGGING"`
	SkipConfirmation bool `yaml:"skip_confirmation" env:"THANKS_SKIP_CONFIRMATION"`

	// LogTypes is parsed from LogTypesRaw during validation.
	LogTypes []string `yaml:"-" env:"-"`
}

// LoggingEnabled reports whether thanks are recorded durably.
func (c ThanksConfig) LoggingEnabled() bool { return !c.DisableLogging }

// ConfirmationRequired reports whether the UI must confirm before sending.
func (c ThanksConfig) ConfirmationRequired() bool { return !c.SkipConfirmation }

// IsLogTypeAllowed reports whether actions of the given type can be thanked.
func (c ThanksConfig) IsLogTypeAllowed(logType string) bool {
	return slices.Contains(c.LogTypes, logType)
}

// SessionConfig holds browser session settings.
type SessionConfig struct {
	CookieName      string        `yaml:"cookie_name"      env:"SESSION_COOKIE_NAME"      env-default:"thanks_session"`
	TTL             time.Duration `yaml:"ttl"              env:"SESSION_TTL"              env-default:"24h"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"SESSION_CLEANUP_INTERVAL" env-default:"10m"`
	Secure          bool          `yaml:"secure"           env:"SESSION_SECURE"           env-default:"false"`
}

// NotifyConfig holds transmission channel settings. An empty WebhookURL
// logs notifications instead of posting them.
type NotifyConfig struct {
	WebhookURL string        `yaml:"webhook_url" env:"NOTIFY_WEBHOOK_URL"`
	Workers    int           `yaml:"workers"     env:"NOTIFY_WORKERS"     env-default:"4"`
	QueueSize  int           `yaml:"queue_size"  env:"NOTIFY_QUEUE_SIZE"  env-default:"256"`
	Timeout    time.Duration `yaml:"timeout"     env:"NOTIFY_TIMEOUT"     env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
