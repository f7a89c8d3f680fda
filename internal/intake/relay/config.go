// internal/intake/relay/config.go
package relay

import "time"

type Config struct {
	RecorderURL string
	Timeout     time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
