// internal/intake/recorder/config.go
package recorder

import "time"

type Config struct {
	// StrictSchema rejects bodies failing the submission schema before any
	// side effect. Off by default: the historical behavior is parse-only.
	StrictSchema bool
	Timeout      time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		StrictSchema: false,
		Timeout:      30 * time.Second,
	}
}
