package theme

import (
	"encoding/json"
	"net/http"

	"github.com/srijaidev/tours-backend/pkg/logging"
)

// Handler serves the public theme endpoint and the admin update.
type Handler struct {
	store  *Store
	logger *logging.Logger
}

// NewHandler creates a theme handler.
func NewHandler(store *Store, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{store: store, logger: logger}
}

type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type themePayload struct {
	*Theme
	CSSVariables string `json:"cssVariables"`
}

// GetTheme returns the active theme. Lookup failures are masked with the
// default so the public site always gets usable branding.
func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	t, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Error("theme lookup failed, serving default", "error", err)
		t = Default()
	}
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data:    themePayload{Theme: t, CSSVariables: t.CSSVariables()},
	})
}

// UpdateTheme saves the theme submitted by an admin.
func (h *Handler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	var t Theme
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: "Invalid request body"})
		return
	}
	t.normalize()
	if err := t.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: err.Error()})
		return
	}
	if err := h.store.Set(r.Context(), &t); err != nil {
		h.logger.Error("failed to save theme", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Error: "Failed to update theme"})
		return
	}
	h.logger.Info("theme updated", "site_name", t.SiteName)
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data:    themePayload{Theme: &t, CSSVariables: t.CSSVariables()},
		Message: "Theme updated successfully",
	})
}

func writeJSON(w http.ResponseWriter, status int, body apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
