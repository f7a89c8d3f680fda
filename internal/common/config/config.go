// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Server        ServerConfig       `mapstructure:"server"`
	Relay         RelayConfig        `mapstructure:"relay"`
	Club          ClubConfig         `mapstructure:"club"`
	Database      DatabaseConfig     `mapstructure:"database"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	RateLimit     RateLimitConfig    `mapstructure:"rate_limit"`
	Export        ExportConfig       `mapstructure:"export"`
	Recorder      RecorderConfig     `mapstructure:"recorder"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RelayConfig holds settings for the intake relay.
type RelayConfig struct {
	RecorderURL string `mapstructure:"recorder_url"`
	Timeout     int    `mapstructure:"timeout"` // milliseconds
}

// ClubConfig re-expresses the recorder's embedded brand constants as
// injectable configuration.
type ClubConfig struct {
	Name         string `mapstructure:"name"`
	Tagline      string `mapstructure:"tagline"`
	AdminEmail   string `mapstructure:"admin_email"`
	AdminPhone   string `mapstructure:"admin_phone"`
	MaxMembers   int    `mapstructure:"max_members"`
	ResponseTime string `mapstructure:"response_time"`
	IDPrefix     string `mapstructure:"id_prefix"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// NotificationConfig holds settings for applicant and admin notifications.
type NotificationConfig struct {
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
	} `mapstructure:"email"`
	SMS struct {
		Enabled  bool   `mapstructure:"enabled"`
		SenderID string `mapstructure:"sender_id"`
	} `mapstructure:"sms"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// RateLimitConfig holds settings for the per-IP relay rate limiter.
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Limit   int  `mapstructure:"limit"`
	Window  int  `mapstructure:"window"` // seconds
}

// ExportConfig gates the bulk export endpoint behind basic auth.
// Empty credentials disable the endpoint entirely.
type ExportConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

func (e ExportConfig) Enabled() bool {
	return e.Username != "" && e.Password != ""
}

// RecorderConfig holds settings for the application recorder.
type RecorderConfig struct {
	StrictSchema bool `mapstructure:"strict_schema"`
	Timeout      int  `mapstructure:"timeout"` // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
