// internal/intake/export/handler.go
package export

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"waitlist-service/internal/common/config"
	"waitlist-service/internal/common/logger"
	"waitlist-service/internal/common/metrics"
	"waitlist-service/internal/intake/recorder"
	"waitlist-service/internal/models"

	"github.com/julienschmidt/httprouter"
)

// Handler serves the administrative bulk export: every recorded application,
// unfiltered and unpaginated, behind HTTP basic auth. With no credentials
// configured the route is withheld entirely rather than left open.
type Handler struct {
	config  *config.ExportConfig
	surface recorder.Surface
	logger  logger.Logger
}

func NewHandler(cfg *config.ExportConfig, surface recorder.Surface, log logger.Logger) *Handler {
	return &Handler{
		config:  cfg,
		surface: surface,
		logger:  log.WithFields(map[string]interface{}{"component": "export"}),
	}
}

// Handle implements GET /api/applications.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !h.config.Enabled() {
		metrics.ExportRequests.WithLabelValues("disabled").Inc()
		http.NotFound(w, r)
		return
	}

	if !h.authorized(r) {
		metrics.ExportRequests.WithLabelValues("unauthorized").Inc()
		w.Header().Set("WWW-Authenticate", `Basic realm="applications"`)
		writeJSON(w, http.StatusUnauthorized, models.Error{Error: "unauthorized"})
		return
	}

	records, err := h.surface.Rows(r.Context())
	if err != nil {
		h.logger.Error("export query failed", map[string]interface{}{
			"error": err.Error(),
		})
		metrics.ExportRequests.WithLabelValues("error").Inc()
		writeJSON(w, http.StatusInternalServerError, models.Error{Error: "export failed"})
		return
	}
	if records == nil {
		records = []models.ApplicationRecord{}
	}

	metrics.ExportRequests.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, models.ExportResponse{
		Success:           true,
		TotalApplications: len(records),
		Applications:      records,
	})
}

func (h *Handler) authorized(r *http.Request) bool {
	user, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(h.config.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(h.config.Password)) == 1
	return userOK && passOK
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
