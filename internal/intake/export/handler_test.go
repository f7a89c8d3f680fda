// internal/intake/export/handler_test.go
package export

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"waitlist-service/internal/common/config"
	"waitlist-service/internal/common/logger"
	"waitlist-service/internal/intake/recorder"
	"waitlist-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, records ...models.ApplicationRecord) *Handler {
	t.Helper()
	surface := recorder.NewMemorySurface()
	require.NoError(t, surface.EnsureHeader(context.Background()))
	for _, rec := range records {
		require.NoError(t, surface.Append(context.Background(), rec))
	}
	cfg := &config.ExportConfig{Username: "admin", Password: "s3cret"}
	return NewHandler(cfg, surface, logger.NewNoOpLogger())
}

func doGet(h *Handler, user, pass string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	if user != "" {
		req.SetBasicAuth(user, pass)
	}
	w := httptest.NewRecorder()
	h.Handle(w, req, nil)
	return w
}

func sampleRecord(id, name string) models.ApplicationRecord {
	return models.ApplicationRecord{
		ApplicationID:     id,
		Timestamp:         "2024-06-01T12:00:00Z",
		Status:            models.StatusUnderReview,
		FullName:          name,
		Age:               24,
		Email:             "asha@example.com",
		Phone:             "+911234567890",
		City:              "Mumbai",
		FamilyBusiness:    "Textiles",
		PersonalInterests: models.PlaceholderNotProvided,
		NetworkingGoals:   models.PlaceholderNotProvided,
		ReferralSource:    models.PlaceholderDirectApplication,
	}
}

func TestHandle_ReturnsAllRecords(t *testing.T) {
	h := newTestHandler(t,
		sampleRecord("EBC-A-00001", "Asha Rao"),
		sampleRecord("EBC-B-00002", "Dev Mehta"),
	)

	w := doGet(h, "admin", "s3cret")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ExportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.TotalApplications)
	require.Len(t, resp.Applications, 2)
	assert.Equal(t, "Asha Rao", resp.Applications[0].FullName)
	assert.Equal(t, "Dev Mehta", resp.Applications[1].FullName)
}

func TestHandle_EmptySurface(t *testing.T) {
	h := newTestHandler(t)

	w := doGet(h, "admin", "s3cret")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ExportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.TotalApplications)
	assert.NotNil(t, resp.Applications)
}

func TestHandle_MissingCredentials(t *testing.T) {
	h := newTestHandler(t, sampleRecord("EBC-A-00001", "Asha Rao"))

	w := doGet(h, "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, `Basic realm="applications"`, w.Header().Get("WWW-Authenticate"))
}

func TestHandle_WrongPassword(t *testing.T) {
	h := newTestHandler(t, sampleRecord("EBC-A-00001", "Asha Rao"))

	w := doGet(h, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandle_DisabledWithoutConfiguredCredentials(t *testing.T) {
	h := newTestHandler(t, sampleRecord("EBC-A-00001", "Asha Rao"))
	h.config = &config.ExportConfig{}

	w := doGet(h, "admin", "s3cret")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
