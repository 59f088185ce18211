package leads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/srijaidev/tours-backend/internal/observability/metrics"
	"github.com/srijaidev/tours-backend/internal/whatsapp"
	"github.com/srijaidev/tours-backend/pkg/logging"
)

// Notifier sends the best-effort booking notification after a lead is stored.
// Failures never affect the intake response.
type Notifier interface {
	NotifyBookingRequest(ctx context.Context, lead *Lead) error
}

// Handler handles HTTP requests for leads
type Handler struct {
	repo           Repository
	notifier       Notifier
	metrics        *metrics.IntakeMetrics
	whatsappNumber string
	logger         *logging.Logger
}

// NewHandler creates a new leads handler. notifier and m may be nil.
// whatsappNumber, when set, adds a pre-filled wa.me link to the create
// response so the client can open the chat directly.
func NewHandler(repo Repository, notifier Notifier, m *metrics.IntakeMetrics, whatsappNumber string, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:           repo,
		notifier:       notifier,
		metrics:        m,
		whatsappNumber: whatsappNumber,
		logger:         logger,
	}
}

type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CreateLead handles POST /api/leads requests
func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req CreateLeadRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode lead request", "error", err)
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: "Invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		h.metrics.ObserveSubmission("rejected")
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: err.Error()})
		return
	}

	lead, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create lead", "error", err)
		if IsValidationError(err) || isSchemaViolation(err) {
			h.metrics.ObserveSubmission("rejected")
			writeJSON(w, http.StatusBadRequest, apiResponse{
				Success: false,
				Error:   "Please check all required fields are filled correctly",
			})
			return
		}
		h.metrics.ObserveSubmission("failed")
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Error: "Failed to create lead"})
		return
	}

	h.logger.Info("lead created", "id", lead.ID, "name", lead.FullName, "service", lead.ServiceType)
	h.metrics.ObserveSubmission("accepted")

	h.sendNotification(r.Context(), lead)

	writeJSON(w, http.StatusCreated, apiResponse{
		Success: true,
		Data: leadCreatedResponse{
			Lead:        lead,
			WhatsAppURL: h.whatsappLink(lead),
		},
		Message: "Lead created successfully",
	})
}

type leadCreatedResponse struct {
	*Lead
	WhatsAppURL string `json:"whatsappUrl,omitempty"`
}

// whatsappLink builds the wa.me deep link the client opens as the booking
// confirmation channel. Empty when no number is configured.
func (h *Handler) whatsappLink(lead *Lead) string {
	if h.whatsappNumber == "" {
		return ""
	}
	return whatsapp.BuildURL(h.whatsappNumber, whatsapp.BookingMessage{
		Name:       lead.FullName,
		Phone:      lead.Phone,
		Service:    lead.ServiceType,
		Pickup:     lead.PickupLocation,
		Drop:       lead.DropLocation,
		TravelDate: lead.TravelDate,
		TravelTime: lead.TravelTime,
		ReturnDate: lead.ReturnDate,
	})
}

// sendNotification dispatches the admin email. Any error is logged and
// swallowed so the primary result never flips.
func (h *Handler) sendNotification(ctx context.Context, lead *Lead) {
	if h.notifier == nil {
		return
	}
	if err := h.notifier.NotifyBookingRequest(ctx, lead); err != nil {
		h.logger.Error("booking notification failed", "error", err, "lead_id", lead.ID)
		h.metrics.ObserveNotification("failed")
		return
	}
	h.metrics.ObserveNotification("sent")
}

// isSchemaViolation reports whether err is a database integrity-constraint
// failure (class 23), which the API reports as a validation-shaped error.
func isSchemaViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return len(pgErr.Code) >= 2 && pgErr.Code[:2] == "23"
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, body apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
