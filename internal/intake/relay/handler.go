// internal/intake/relay/handler.go
package relay

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"waitlist-service/internal/common/logger"
	"waitlist-service/internal/common/metrics"
	"waitlist-service/internal/intake/ratelimit"
	"waitlist-service/internal/models"

	"github.com/julienschmidt/httprouter"

	httpclient "waitlist-service/internal/common/http"
)

// Handler forwards client submissions verbatim to the external recorder.
// It is a transparent pass-through: no schema inspection, no retry, exactly
// one outbound call per request.
type Handler struct {
	config  *Config
	client  *httpclient.Client
	limiter *ratelimit.Limiter
	logger  logger.Logger
}

func NewHandler(config *Config, limiter *ratelimit.Limiter, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		client:  httpclient.NewNoRedirectClient(config.Timeout),
		limiter: limiter,
		logger:  log.WithFields(map[string]interface{}{"component": "relay"}),
	}
}

// Handle implements POST /api/waitlist.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	metrics.SubmissionsReceived.Inc()

	if h.limiter != nil {
		allowed, err := h.limiter.Allow(r.Context(), clientIP(r))
		if err != nil {
			// Fail open: a degraded limiter must not block intake.
			h.logger.Warn("rate limiter unavailable", map[string]interface{}{
				"error": err.Error(),
			})
		} else if !allowed {
			metrics.SubmissionsRateLimited.Inc()
			writeJSON(w, http.StatusTooManyRequests, models.Error{Error: ErrMsgSubmitFailed})
			return
		}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil || !json.Valid(body) {
		h.logger.Error("invalid submission body", map[string]interface{}{
			"error": errString(err),
		})
		metrics.SubmissionsForwarded.WithLabelValues("rejected").Inc()
		writeJSON(w, http.StatusInternalServerError, models.Error{Error: ErrMsgSubmitFailed})
		return
	}

	req, err := http.NewRequest(http.MethodPost, h.config.RecorderURL, bytes.NewReader(body))
	if err != nil {
		h.logger.Error("failed to build recorder request", map[string]interface{}{
			"error": err.Error(),
		})
		metrics.SubmissionsForwarded.WithLabelValues("error").Inc()
		writeJSON(w, http.StatusInternalServerError, models.Error{Error: ErrMsgSubmitFailed})
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.DoWithContext(r.Context(), req)
	if err != nil {
		h.logger.Error("recorder call failed", map[string]interface{}{
			"error": err.Error(),
		})
		metrics.SubmissionsForwarded.WithLabelValues("error").Inc()
		writeJSON(w, http.StatusInternalServerError, models.Error{Error: ErrMsgSubmitFailed})
		return
	}
	defer resp.Body.Close()

	// The recorder answers successful script executions with a redirect, so
	// 302 counts as success alongside 2xx.
	if !(resp.StatusCode >= 200 && resp.StatusCode < 300) && resp.StatusCode != http.StatusFound {
		h.logger.Error("recorder rejected submission", map[string]interface{}{
			"status": resp.StatusCode,
		})
		metrics.SubmissionsForwarded.WithLabelValues("rejected").Inc()
		writeJSON(w, http.StatusInternalServerError, models.Error{Error: ErrMsgSubmitFailed})
		return
	}

	// Redirect pages carry empty or HTML bodies; an unparseable body is not
	// an error because the recorder already accepted the submission.
	var data json.RawMessage
	respBody, err := io.ReadAll(resp.Body)
	if err == nil && len(respBody) > 0 && json.Valid(respBody) {
		data = respBody
	}

	h.logger.Info("submission forwarded", map[string]interface{}{
		"status": resp.StatusCode,
	})
	metrics.SubmissionsForwarded.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, models.RelayResponse{Success: true, Data: data})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	return r.RemoteAddr
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func errString(err error) string {
	if err == nil {
		return "body is not valid JSON"
	}
	return err.Error()
}
