// internal/intake/recorder/handler.go
package recorder

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	stderrors "waitlist-service/internal/common/errors"
	"waitlist-service/internal/common/logger"
	"waitlist-service/internal/common/metrics"
	"waitlist-service/internal/intake/appid"
	"waitlist-service/internal/intake/notifier"
	"waitlist-service/internal/models"

	"github.com/julienschmidt/httprouter"
)

const msgSubmitted = "Application submitted successfully"

// Notifier dispatches the applicant confirmation and the admin alert,
// returning both outcomes without failing the caller.
type Notifier interface {
	NotifySubmission(ctx context.Context, rec models.ApplicationRecord) (notifier.Result, notifier.Result)
}

// Handler processes one forwarded submission as a single linear sequence:
// parse, ensure surface, enrich, append, notify, respond. Only the row append
// gates the reported outcome; notification failures are logged and swallowed.
type Handler struct {
	config   *Config
	surface  Surface
	ids      *appid.Generator
	notifier Notifier
	errors   *stderrors.ErrorHandler
	logger   logger.Logger
	now      func() time.Time
}

func NewHandler(config *Config, surface Surface, ids *appid.Generator, n Notifier, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		surface:  surface,
		ids:      ids,
		notifier: n,
		errors:   stderrors.NewErrorHandler(log),
		logger:   log.WithFields(map[string]interface{}{"component": "recorder"}),
		now:      time.Now,
	}
}

// Handle implements POST /api/applications.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), h.config.Timeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.errors.WriteError(w, http.StatusBadRequest, stderrors.NewParseError(err))
		return
	}

	var sub models.ApplicationSubmission
	if err := json.Unmarshal(body, &sub); err != nil {
		// No side effects on parse failure: no row, no emails.
		h.errors.WriteError(w, http.StatusBadRequest, stderrors.NewParseError(err))
		return
	}

	if h.config.StrictSchema {
		if err := validateSubmission(body); err != nil {
			h.errors.WriteError(w, http.StatusBadRequest, stderrors.NewApplicationValidationFailedError(err.Error()))
			return
		}
	}

	if err := h.surface.EnsureHeader(ctx); err != nil {
		h.errors.WriteError(w, http.StatusInternalServerError, stderrors.NewDatabaseConnectionFailedError(err))
		return
	}

	rec := h.enrich(sub)
	if err := h.surface.Append(ctx, rec); err != nil {
		h.errors.WriteError(w, http.StatusInternalServerError, stderrors.NewDatabaseInsertFailedError(err))
		return
	}
	metrics.RowsAppended.Inc()

	applicant, admin := h.notifier.NotifySubmission(ctx, rec)
	h.logger.Info("application recorded", map[string]interface{}{
		"applicationId":   rec.ApplicationID,
		"applicantNotify": applicant.Status,
		"adminNotify":     admin.Status,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.RecorderResponse{
		Success:       true,
		ApplicationID: rec.ApplicationID,
		Message:       msgSubmitted,
	})
}

// enrich turns a submission into the persisted record: generated identifier,
// initial review state, placeholders for absent optional fields, and a
// server-side timestamp when the collector supplied none.
func (h *Handler) enrich(sub models.ApplicationSubmission) models.ApplicationRecord {
	ts := sub.Timestamp
	if ts == "" {
		ts = h.now().UTC().Format(time.RFC3339)
	}

	return models.ApplicationRecord{
		ApplicationID:     h.ids.Generate(),
		Timestamp:         ts,
		Status:            models.StatusUnderReview,
		FullName:          sub.FullName,
		Age:               sub.Age,
		Email:             sub.Email,
		Phone:             sub.Phone,
		City:              sub.City,
		FamilyBusiness:    sub.FamilyBusiness,
		PersonalInterests: orPlaceholder(sub.PersonalInterests, models.PlaceholderNotProvided),
		NetworkingGoals:   orPlaceholder(sub.NetworkingGoals, models.PlaceholderNotProvided),
		ReferralSource:    orPlaceholder(sub.ReferralSource, models.PlaceholderDirectApplication),
		ReviewNotes:       "",
	}
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
