package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/srijaidev/tours-backend/pkg/logging"
)

// AdminLeadsHandler handles the admin lead-management endpoints.
type AdminLeadsHandler struct {
	db     *sql.DB
	logger *logging.Logger
}

// NewAdminLeadsHandler creates a new admin leads handler.
func NewAdminLeadsHandler(db *sql.DB, logger *logging.Logger) *AdminLeadsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminLeadsHandler{
		db:     db,
		logger: logger,
	}
}

// LeadRow is a lead as returned by the admin list and detail endpoints.
type LeadRow struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone"`
	ServiceType    string `json:"serviceType"`
	PickupLocation string `json:"pickupLocation"`
	DropLocation   string `json:"dropLocation"`
	TravelDate     string `json:"travelDate"`
	TravelTime     string `json:"travelTime,omitempty"`
	ReturnDate     string `json:"returnDate,omitempty"`
	Passengers     int    `json:"passengers"`
	Message        string `json:"message,omitempty"`
	EstimatedCost  string `json:"estimatedCost,omitempty"`
	Notes          string `json:"notes,omitempty"`
	Status         string `json:"status"`
	Priority       string `json:"priority"`
	Source         string `json:"source"`
	SubmittedAt    string `json:"submittedAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// LeadsListResponse is a paginated page of leads.
type LeadsListResponse struct {
	Leads      []LeadRow `json:"leads"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}

const leadColumns = `id, full_name, email, phone, service_type, pickup_location,
	drop_location, travel_date, travel_time, return_date, passengers, message,
	estimated_cost, notes, status, priority, source, submitted_at, updated_at`

func scanLeadRow(scan func(...any) error) (*LeadRow, error) {
	var lead LeadRow
	var email, travelTime, returnDate, message, estimatedCost, notes sql.NullString
	var submittedAt, updatedAt time.Time

	err := scan(
		&lead.ID, &lead.FullName, &email, &lead.Phone, &lead.ServiceType,
		&lead.PickupLocation, &lead.DropLocation, &lead.TravelDate, &travelTime,
		&returnDate, &lead.Passengers, &message, &estimatedCost, &notes,
		&lead.Status, &lead.Priority, &lead.Source, &submittedAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Email = email.String
	lead.TravelTime = travelTime.String
	lead.ReturnDate = returnDate.String
	lead.Message = message.String
	lead.EstimatedCost = estimatedCost.String
	lead.Notes = notes.String
	lead.SubmittedAt = submittedAt.Format(time.RFC3339)
	lead.UpdatedAt = updatedAt.Format(time.RFC3339)
	return &lead, nil
}

// ListLeads returns a paginated, filterable list of leads.
// GET /api/admin/leads
func (h *AdminLeadsHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	status := r.URL.Query().Get("status")
	priority := r.URL.Query().Get("priority")
	service := r.URL.Query().Get("serviceType")
	search := r.URL.Query().Get("search")

	where := []string{}
	args := []any{}
	argNum := 1

	addFilter := func(clause string, value any) {
		where = append(where, clause+" = $"+strconv.Itoa(argNum))
		args = append(args, value)
		argNum++
	}
	if status != "" {
		addFilter("status", status)
	}
	if priority != "" {
		addFilter("priority", priority)
	}
	if service != "" {
		addFilter("service_type", service)
	}
	if search != "" {
		n := strconv.Itoa(argNum)
		where = append(where, "(full_name ILIKE $"+n+" OR phone ILIKE $"+n+" OR email ILIKE $"+n+")")
		args = append(args, "%"+search+"%")
		argNum++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := h.db.QueryRowContext(r.Context(),
		`SELECT COUNT(*) FROM leads`+whereClause, args...,
	).Scan(&total); err != nil {
		h.logger.Error("failed to count leads", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch leads")
		return
	}

	query := `SELECT ` + leadColumns + ` FROM leads` + whereClause +
		` ORDER BY submitted_at DESC LIMIT $` + strconv.Itoa(argNum) +
		` OFFSET $` + strconv.Itoa(argNum+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := h.db.QueryContext(r.Context(), query, args...)
	if err != nil {
		h.logger.Error("failed to query leads", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch leads")
		return
	}
	defer rows.Close()

	leads := []LeadRow{}
	for rows.Next() {
		lead, err := scanLeadRow(rows.Scan)
		if err != nil {
			h.logger.Error("failed to scan lead", "error", err)
			continue
		}
		leads = append(leads, *lead)
	}

	writeData(w, http.StatusOK, LeadsListResponse{
		Leads:      leads,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	})
}

// GetLead returns a single lead.
// GET /api/admin/leads/{id}
func (h *AdminLeadsHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := scanLeadRow(h.db.QueryRowContext(r.Context(),
		`SELECT `+leadColumns+` FROM leads WHERE id = $1`, id,
	).Scan)
	if err == sql.ErrNoRows {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to get lead", "error", err, "lead_id", id)
		writeError(w, http.StatusInternalServerError, "Failed to fetch lead")
		return
	}

	writeData(w, http.StatusOK, lead)
}

// UpdateLeadRequest carries the patchable lead fields.
type UpdateLeadRequest struct {
	Status   *string `json:"status,omitempty"`
	Priority *string `json:"priority,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

var validStatuses = map[string]bool{
	"new": true, "contacted": true, "in-progress": true,
	"completed": true, "cancelled": true,
}

var validPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

// UpdateLead patches a lead's status, priority or notes.
// PATCH /api/admin/leads/{id}
func (h *AdminLeadsHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := []string{}
	args := []any{}
	argNum := 1

	if req.Status != nil {
		if !validStatuses[*req.Status] {
			writeError(w, http.StatusBadRequest, "Invalid status value")
			return
		}
		updates = append(updates, "status = $"+strconv.Itoa(argNum))
		args = append(args, *req.Status)
		argNum++
	}
	if req.Priority != nil {
		if !validPriorities[*req.Priority] {
			writeError(w, http.StatusBadRequest, "Invalid priority value")
			return
		}
		updates = append(updates, "priority = $"+strconv.Itoa(argNum))
		args = append(args, *req.Priority)
		argNum++
	}
	if req.Notes != nil {
		updates = append(updates, "notes = $"+strconv.Itoa(argNum))
		args = append(args, *req.Notes)
		argNum++
	}

	if len(updates) == 0 {
		writeError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	updates = append(updates, "updated_at = $"+strconv.Itoa(argNum))
	args = append(args, time.Now())
	argNum++
	args = append(args, id)

	result, err := h.db.ExecContext(r.Context(),
		"UPDATE leads SET "+strings.Join(updates, ", ")+" WHERE id = $"+strconv.Itoa(argNum),
		args...,
	)
	if err != nil {
		h.logger.Error("failed to update lead", "error", err, "lead_id", id)
		writeError(w, http.StatusInternalServerError, "Failed to update lead")
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}

	lead, err := scanLeadRow(h.db.QueryRowContext(r.Context(),
		`SELECT `+leadColumns+` FROM leads WHERE id = $1`, id,
	).Scan)
	if err != nil {
		h.logger.Error("failed to reload lead", "error", err, "lead_id", id)
		writeError(w, http.StatusInternalServerError, "Failed to update lead")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(envelope{
		Success: true,
		Data:    lead,
		Message: "Lead updated successfully",
	})
}

// LeadStatsResponse contains aggregated lead statistics.
type LeadStatsResponse struct {
	TotalLeads     int            `json:"totalLeads"`
	ByStatus       map[string]int `json:"byStatus"`
	ByPriority     map[string]int `json:"byPriority"`
	NewThisWeek    int            `json:"newThisWeek"`
	NewThisMonth   int            `json:"newThisMonth"`
	CompletionRate float64        `json:"completionRate"`
}

// GetLeadStats returns aggregated lead statistics.
// GET /api/admin/leads/stats
func (h *AdminLeadsHandler) GetLeadStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := LeadStatsResponse{
		ByStatus:   map[string]int{},
		ByPriority: map[string]int{},
	}

	h.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&stats.TotalLeads)
	h.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leads WHERE submitted_at >= $1`, weekAgo,
	).Scan(&stats.NewThisWeek)
	h.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leads WHERE submitted_at >= $1`, monthStart,
	).Scan(&stats.NewThisMonth)

	if err := h.countBuckets(r, `SELECT status, COUNT(*) FROM leads GROUP BY status`, stats.ByStatus); err != nil {
		h.logger.Error("failed to load status stats", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch lead stats")
		return
	}
	if err := h.countBuckets(r, `SELECT priority, COUNT(*) FROM leads GROUP BY priority`, stats.ByPriority); err != nil {
		h.logger.Error("failed to load priority stats", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch lead stats")
		return
	}

	if stats.TotalLeads > 0 {
		stats.CompletionRate = float64(stats.ByStatus["completed"]) / float64(stats.TotalLeads) * 100
	}

	writeData(w, http.StatusOK, stats)
}

func (h *AdminLeadsHandler) countBuckets(r *http.Request, query string, dst map[string]int) error {
	rows, err := h.db.QueryContext(r.Context(), query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return err
		}
		dst[key] = count
	}
	return rows.Err()
}
