// internal/collector/collector_test.go
package collector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"waitlist-service/internal/common/logger"
	"waitlist-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() models.ApplicationSubmission {
	return models.ApplicationSubmission{
		FullName:       "Asha Rao",
		Age:            24,
		Email:          "asha@example.com",
		Phone:          "+911234567890",
		City:           "Mumbai",
		FamilyBusiness: "Textiles",
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(validSubmission()))
}

func TestValidate_MissingRequiredField(t *testing.T) {
	sub := validSubmission()
	sub.Email = ""

	err := Validate(sub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestValidate_AgeRange(t *testing.T) {
	for _, age := range []int{16, 31} {
		sub := validSubmission()
		sub.Age = age
		assert.NoError(t, Validate(sub))
	}
	for _, age := range []int{0, 15, 32, 99} {
		sub := validSubmission()
		sub.Age = age
		assert.Error(t, Validate(sub))
	}
}

func TestSubmit_AttachesTimestamp(t *testing.T) {
	var received models.ApplicationSubmission
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":null}`))
	}))
	defer server.Close()

	c := New(&Config{RelayURL: server.URL, Timeout: 5 * time.Second}, logger.NewNoOpLogger())
	c.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	require.NoError(t, c.Submit(context.Background(), validSubmission()))
	assert.Equal(t, "2024-06-01T12:00:00Z", received.Timestamp)
	assert.Equal(t, "Asha Rao", received.FullName)
}

func TestSubmit_ValidationBlocksNetworkCall(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	c := New(&Config{RelayURL: server.URL, Timeout: 5 * time.Second}, logger.NewNoOpLogger())

	sub := validSubmission()
	sub.Age = 45
	assert.Error(t, c.Submit(context.Background(), sub))
	assert.False(t, called)
}

func TestSubmit_RelayRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to submit application"}`))
	}))
	defer server.Close()

	c := New(&Config{RelayURL: server.URL, Timeout: 5 * time.Second}, logger.NewNoOpLogger())

	err := c.Submit(context.Background(), validSubmission())
	require.Error(t, err)
	// Generic failure only; upstream detail never surfaces.
	assert.Equal(t, "submission failed", err.Error())
}

func TestSubmit_RelayUnreachable(t *testing.T) {
	c := New(&Config{RelayURL: "http://127.0.0.1:1/api/waitlist", Timeout: time.Second}, logger.NewNoOpLogger())

	err := c.Submit(context.Background(), validSubmission())
	require.Error(t, err)
	assert.Equal(t, "submission failed", err.Error())
}
