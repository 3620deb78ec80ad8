// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // messages.timezone must resolve without host zoneinfo

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Redis         RedisConfig         `yaml:"redis"`
	Catalog       CatalogConfig       `yaml:"catalog"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Messages      MessagesConfig      `yaml:"messages"`
	Tracing       TracingConfig       `yaml:"tracing"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the operations HTTP server (health and metrics).
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// RedisConfig defines the optional brand list cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	BrandTTL time.Duration `yaml:"brand_ttl"`
}

// Enabled reports whether a Redis address is configured.
func (r *RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// CatalogConfig defines the external catalog service settings.
type CatalogConfig struct {
	BaseURL        string          `yaml:"base_url"`
	ServiceID      string          `yaml:"service_id"`
	Login          string          `yaml:"login"`
	Password       string          `yaml:"password"`
	AppAccess      string          `yaml:"app_access"`
	UserAgent      string          `yaml:"user_agent"`
	RequestTimeout time.Duration   `yaml:"request_timeout"`
	LoginTimeout   time.Duration   `yaml:"login_timeout"`
	TokenTTL       time.Duration   `yaml:"token_ttl"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines the catalog request rate limit.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// ScheduleConfig defines the poll interval and the backpressure delays.
type ScheduleConfig struct {
	Interval       time.Duration `yaml:"interval"`
	BrandDelay     time.Duration `yaml:"brand_delay"`
	MessageDelay   time.Duration `yaml:"message_delay"`
	BootstrapDelay time.Duration `yaml:"bootstrap_delay"`
	RunOnStart     *bool         `yaml:"run_on_start"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig defines Telegram Bot API settings.
type TelegramConfig struct {
	Enabled  bool          `yaml:"enabled"`
	BotToken string        `yaml:"bot_token"`
	APIURL   string        `yaml:"api_url"`
	Timeout  time.Duration `yaml:"timeout"`
}

// MessagesConfig defines how change notifications are rendered.
type MessagesConfig struct {
	MaxLength int    `yaml:"max_length"`
	Currency  string `yaml:"currency"`
	Timezone  string `yaml:"timezone"`
}

// Location resolves Timezone. Validation guarantees it loads.
func (m *MessagesConfig) Location() *time.Location {
	loc, err := time.LoadLocation(m.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TracingConfig defines the OpenTelemetry exporter. An empty Endpoint keeps
// the no-op tracer.
type TracingConfig struct {
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyRedisDefaults(&cfg.Redis)
	applyCatalogDefaults(&cfg.Catalog)
	applyScheduleDefaults(&cfg.Schedule)
	applyTelegramDefaults(&cfg.Notifications.Telegram)
	applyMessagesDefaults(&cfg.Messages)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 9090
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 10 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 10 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 5
	}
}

func applyRedisDefaults(r *RedisConfig) {
	if r.BrandTTL == 0 {
		r.BrandTTL = 10 * time.Minute
	}
}

func applyCatalogDefaults(c *CatalogConfig) {
	if c.BaseURL == "" {
		c.BaseURL = "https://fimex.ae"
	}
	if c.ServiceID == "" {
		c.ServiceID = "fimex_ae"
	}
	if c.UserAgent == "" {
		c.UserAgent = "pricelist-monitor/1.0"
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 15 * time.Second
	}
	if c.LoginTimeout == 0 {
		c.LoginTimeout = 15 * time.Second
	}
	if c.TokenTTL == 0 {
		c.TokenTTL = 24 * time.Hour
	}
	if c.RateLimit.PerSecond == 0 {
		c.RateLimit.PerSecond = 5
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 1
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.Interval == 0 {
		s.Interval = 3 * time.Minute
	}
	if s.BrandDelay == 0 {
		s.BrandDelay = 200 * time.Millisecond
	}
	if s.MessageDelay == 0 {
		s.MessageDelay = 500 * time.Millisecond
	}
	if s.BootstrapDelay == 0 {
		s.BootstrapDelay = time.Second
	}
	if s.RunOnStart == nil {
		on := true
		s.RunOnStart = &on
	}
}

func applyTelegramDefaults(t *TelegramConfig) {
	if t.APIURL == "" {
		t.APIURL = "https://api.telegram.org"
	}
	if t.Timeout == 0 {
		t.Timeout = 10 * time.Second
	}
}

func applyMessagesDefaults(m *MessagesConfig) {
	if m.MaxLength == 0 {
		m.MaxLength = 3800
	}
	if m.Currency == "" {
		m.Currency = "RUB"
	}
	if m.Timezone == "" {
		m.Timezone = "UTC"
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "pricelist-monitor"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

// minMessageLength leaves room for the headers and at least one change line.
const minMessageLength = 200

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Catalog.Login == "" {
		errs = append(errs, fmt.Errorf("catalog.login is required"))
	}
	if cfg.Catalog.Password == "" {
		errs = append(errs, fmt.Errorf("catalog.password is required"))
	}
	if cfg.Catalog.RateLimit.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("catalog.rate_limit.per_second must not be negative"))
	}

	if cfg.Schedule.Interval < time.Second {
		errs = append(errs, fmt.Errorf(
			"schedule.interval must be at least 1s (got %s)", cfg.Schedule.Interval,
		))
	}

	if cfg.Notifications.Telegram.Enabled && cfg.Notifications.Telegram.BotToken == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.telegram.bot_token is required when telegram is enabled"),
		)
	}

	if cfg.Messages.MaxLength < minMessageLength {
		errs = append(errs, fmt.Errorf(
			"messages.max_length must be at least %d (got %d)",
			minMessageLength, cfg.Messages.MaxLength,
		))
	}
	if _, err := time.LoadLocation(cfg.Messages.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("messages.timezone: %w", err))
	}

	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf(
			"tracing.sample_ratio must be within [0, 1] (got %g)", cfg.Tracing.SampleRatio,
		))
	}

	return errors.Join(errs...)
}
