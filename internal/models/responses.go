// internal/models/responses.go
package models

import "encoding/json"

// RelayResponse is returned by POST /api/waitlist.
type RelayResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// RecorderResponse is returned by POST /api/applications on success.
type RecorderResponse struct {
	Success       bool   `json:"success"`
	ApplicationID string `json:"applicationId"`
	Message       string `json:"message"`
}

// ExportResponse is returned by GET /api/applications.
type ExportResponse struct {
	Success           bool                `json:"success"`
	TotalApplications int                 `json:"totalApplications"`
	Applications      []ApplicationRecord `json:"applications"`
}

// Error is the flat error payload surfaced by the relay.
type Error struct {
	Error string `json:"error"`
}
