// internal/intake/notifier/config.go
package notifier

import "time"

type Config struct {
	EmailEnabled bool
	SMSEnabled   bool
	FromEmail    string
	AdminEmail   string
	AdminPhone   string
	ClubName     string
	Tagline      string
	MaxMembers   int
	ResponseTime string
	Timeout      time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
