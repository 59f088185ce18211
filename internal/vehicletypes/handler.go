package vehicletypes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/srijaidev/tours-backend/pkg/logging"
)

// Lister abstracts the repository for handler tests.
type Lister interface {
	List(ctx context.Context) ([]VehicleType, error)
	Create(ctx context.Context, name string) (*VehicleType, error)
	Update(ctx context.Context, id, name string) (*VehicleType, error)
	Delete(ctx context.Context, id string) (*VehicleType, error)
}

// Handler serves the admin vehicle-type endpoints.
type Handler struct {
	repo   Lister
	logger *logging.Logger
}

// NewHandler creates a vehicle type handler.
func NewHandler(repo Lister, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type upsertRequest struct {
	Name string `json:"name"`
}

// List returns all vehicle types, seeding the defaults on first read.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list vehicle types", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Message: "Failed to fetch vehicle types"})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data:    types,
		Message: "Vehicle types fetched successfully",
	})
}

// Create adds a new vehicle type.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	name, ok := h.decodeName(w, r)
	if !ok {
		return
	}

	vt, err := h.repo.Create(r.Context(), name)
	if err != nil {
		h.writeRepoError(w, err, "Failed to create vehicle type")
		return
	}
	writeJSON(w, http.StatusCreated, apiResponse{
		Success: true,
		Data:    vt,
		Message: "Vehicle type created successfully",
	})
}

// Update renames a vehicle type.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	name, ok := h.decodeName(w, r)
	if !ok {
		return
	}

	vt, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), name)
	if err != nil {
		h.writeRepoError(w, err, "Failed to update vehicle type")
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data:    vt,
		Message: "Vehicle type updated successfully",
	})
}

// Delete removes a vehicle type.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vt, err := h.repo.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeRepoError(w, err, "Failed to delete vehicle type")
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data:    vt,
		Message: "Vehicle type deleted successfully",
	})
}

func (h *Handler) decodeName(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Message: "Invalid request body"})
		return "", false
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Message: "Vehicle type name is required and cannot be empty"})
		return "", false
	}
	return name, true
}

func (h *Handler) writeRepoError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrDuplicateName):
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Message: "Vehicle type with this name already exists"})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, apiResponse{Success: false, Message: "Vehicle type not found"})
	default:
		h.logger.Error("vehicle type operation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Message: fallback})
	}
}

func writeJSON(w http.ResponseWriter, status int, body apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
