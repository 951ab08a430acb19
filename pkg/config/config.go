package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable consumed by the backend.
const EnvPrefix = "CATERSTOCK"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Line         LineConfig
	Alerts       AlertsConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CATERSTOCK_APP_ENV" required:"true"`
	Port         string `envconfig:"CATERSTOCK_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"CATERSTOCK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CATERSTOCK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"CATERSTOCK_DB_DSN"`

	Host     string `envconfig:"CATERSTOCK_DB_HOST"`
	Port     int    `envconfig:"CATERSTOCK_DB_PORT" default:"5432"`
	User     string `envconfig:"CATERSTOCK_DB_USER"`
	Password string `envconfig:"CATERSTOCK_DB_PASSWORD"`
	Name     string `envconfig:"CATERSTOCK_DB_NAME"`
	SSLMode  string `envconfig:"CATERSTOCK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CATERSTOCK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CATERSTOCK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CATERSTOCK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CATERSTOCK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("either CATERSTOCK_DB_DSN or host/user/name parts are required")
	}
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	query := dsn.Query()
	query.Set("sslmode", d.SSLMode)
	dsn.RawQuery = query.Encode()
	d.DSN = dsn.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"CATERSTOCK_REDIS_URL" required:"true"`
	PoolSize     int           `envconfig:"CATERSTOCK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CATERSTOCK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CATERSTOCK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CATERSTOCK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CATERSTOCK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"CATERSTOCK_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"CATERSTOCK_JWT_ISSUER" default:"caterstock"`
	ExpirationMinutes int    `envconfig:"CATERSTOCK_JWT_EXPIRATION_MINUTES" default:"11520"`
}

// AccessTokenTTL returns the access token lifetime configured in minutes.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type LineConfig struct {
	ChannelID     string `envconfig:"CATERSTOCK_LINE_CHANNEL_ID"`
	ChannelSecret string `envconfig:"CATERSTOCK_LINE_CHANNEL_SECRET"`
	RedirectURI   string `envconfig:"CATERSTOCK_LINE_REDIRECT_URI"`
	NotifyToken   string `envconfig:"CATERSTOCK_LINE_NOTIFY_TOKEN"`
}

// NotifyConfigured reports whether the push channel has credentials. Absence
// downgrades alert dispatch to a logged no-op, never an error.
func (l LineConfig) NotifyConfigured() bool {
	return strings.TrimSpace(l.NotifyToken) != ""
}

type AlertsConfig struct {
	QueueSize int `envconfig:"CATERSTOCK_ALERTS_QUEUE_SIZE" default:"64"`
	Workers   int `envconfig:"CATERSTOCK_ALERTS_WORKERS" default:"2"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"CATERSTOCK_AUTO_MIGRATE" default:"false"`
}
