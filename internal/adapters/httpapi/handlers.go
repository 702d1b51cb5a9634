package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"mesabot/internal/ports/input"
)

type handlers struct {
	translations input.TranslationUseCase
	db           Pinger
	logger       *slog.Logger
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

type keysResponse struct {
	Locale string   `json:"locale"`
	Keys   []string `json:"keys"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// health returns 503 when the database does not answer.
func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	status := http.StatusOK
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			h.logger.Warn("health: database ping failed", slog.Any("error", err))
			resp.Status, resp.Database = "fail", err.Error()
			status = http.StatusServiceUnavailable
		} else {
			resp.Database = "ok"
		}
	}
	writeJSON(w, status, resp)
}

func (h *handlers) locales(w http.ResponseWriter, _ *http.Request) {
	overview, err := h.translations.Overview()
	if err != nil {
		h.logger.Error("i18n overview", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

// keys lists the leaf keys of ?locale=, or of the default locale.
func (h *handlers) keys(w http.ResponseWriter, r *http.Request) {
	locale, keys := h.translations.Keys(r.URL.Query().Get("locale"))
	writeJSON(w, http.StatusOK, keysResponse{Locale: locale, Keys: keys})
}

func (h *handlers) diff(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a, b := q.Get("a"), q.Get("b")
	if a == "" || b == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query parameters a and b are required"})
		return
	}
	writeJSON(w, http.StatusOK, h.translations.Diff(a, b))
}

func (h *handlers) reload(w http.ResponseWriter, _ *http.Request) {
	h.translations.Reload()
	h.logger.Info("i18n reloaded over http")
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
