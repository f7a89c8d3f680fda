// internal/collector/collector.go

// Package collector is the client side of the intake pipeline: it gathers the
// nine application fields, enforces the form-level constraints before any
// network call, stamps the capture time, and submits once to the relay.
package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	httpclient "waitlist-service/internal/common/http"
	"waitlist-service/internal/common/logger"
	"waitlist-service/internal/models"
)

const (
	MinAge = 16
	MaxAge = 31
)

type Config struct {
	RelayURL string
	Timeout  time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		RelayURL: "http://localhost:8080/api/waitlist",
		Timeout:  30 * time.Second,
	}
}

type Client struct {
	config *Config
	client *httpclient.Client
	logger logger.Logger
	now    func() time.Time
}

func New(config *Config, log logger.Logger) *Client {
	return &Client{
		config: config,
		client: httpclient.NewClient(config.Timeout),
		logger: log.WithFields(map[string]interface{}{"component": "collector"}),
		now:    time.Now,
	}
}

// Validate enforces the form-level constraints: all six core fields present
// and age within the admitted range. Narrative fields stay optional.
func Validate(sub models.ApplicationSubmission) error {
	required := []struct {
		name  string
		value string
	}{
		{"fullName", sub.FullName},
		{"email", sub.Email},
		{"phone", sub.Phone},
		{"city", sub.City},
		{"familyBusiness", sub.FamilyBusiness},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("missing required field: %s", field.name)
		}
	}
	if sub.Age < MinAge || sub.Age > MaxAge {
		return fmt.Errorf("age must be between %d and %d", MinAge, MaxAge)
	}
	return nil
}

// Submit validates, stamps the capture time, and issues exactly one POST to
// the relay. The outcome is boolean: nil on acceptance, an error otherwise.
// No structured detail survives a relay rejection.
func (c *Client) Submit(ctx context.Context, sub models.ApplicationSubmission) error {
	if err := Validate(sub); err != nil {
		return err
	}

	if sub.Timestamp == "" {
		sub.Timestamp = c.now().UTC().Format(time.RFC3339)
	}

	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.config.RelayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build submission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.DoWithContext(ctx, req)
	if err != nil {
		c.logger.Error("submission failed", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("submission failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("submission rejected", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return fmt.Errorf("submission failed")
	}

	c.logger.Info("submission accepted", nil)
	return nil
}
