// Package handlers contains the admin API handlers that aggregate across
// tables with database/sql rather than going through the repositories.
package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/srijaidev/tours-backend/pkg/logging"
)

// AdminDashboardHandler serves the dashboard overview endpoint.
type AdminDashboardHandler struct {
	db     *sql.DB
	logger *logging.Logger
}

// NewAdminDashboardHandler creates a new admin dashboard handler.
func NewAdminDashboardHandler(db *sql.DB, logger *logging.Logger) *AdminDashboardHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminDashboardHandler{
		db:     db,
		logger: logger,
	}
}

// DashboardResponse contains the admin dashboard metrics.
type DashboardResponse struct {
	TotalLeads        int             `json:"totalLeads"`
	ThisMonthLeads    int             `json:"thisMonthLeads"`
	ThisWeekLeads     int             `json:"thisWeekLeads"`
	LeadsGrowth       float64         `json:"leadsGrowth"`
	CompletedLeads    int             `json:"completedLeads"`
	PendingLeads      int             `json:"pendingLeads"`
	CompletionRate    float64         `json:"completionRate"`
	TotalPackages     int             `json:"totalPackages"`
	TotalTariffs      int             `json:"totalTariffs"`
	TotalBanners      int             `json:"totalBanners"`
	TotalTestimonials int             `json:"totalTestimonials"`
	RecentLeads       []RecentLead    `json:"recentLeads"`
	LeadsByStatus     map[string]int  `json:"leadsByStatus"`
	LeadsByService    []ServiceBucket `json:"leadsByService"`
}

// RecentLead is a trimmed lead row for the dashboard list.
type RecentLead struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submittedAt"`
}

// ServiceBucket is a per-service lead count.
type ServiceBucket struct {
	ServiceType string `json:"serviceType"`
	Count       int    `json:"count"`
}

// GetDashboard returns the dashboard overview.
// GET /api/admin/dashboard
func (h *AdminDashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)
	weekAgo := now.AddDate(0, 0, -7)

	var d DashboardResponse
	d.LeadsByStatus = map[string]int{}

	h.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leads`,
	).Scan(&d.TotalLeads)

	h.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leads WHERE submitted_at >= $1`, monthStart,
	).Scan(&d.ThisMonthLeads)

	h.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leads WHERE submitted_at >= $1`, weekAgo,
	).Scan(&d.ThisWeekLeads)

	var prevMonthLeads int
	h.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leads WHERE submitted_at >= $1 AND submitted_at < $2`,
		prevMonthStart, monthStart,
	).Scan(&prevMonthLeads)
	if prevMonthLeads > 0 {
		d.LeadsGrowth = float64(d.ThisMonthLeads-prevMonthLeads) / float64(prevMonthLeads) * 100
	} else if d.ThisMonthLeads > 0 {
		d.LeadsGrowth = 100
	}

	h.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leads WHERE status = 'completed'`,
	).Scan(&d.CompletedLeads)

	h.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leads WHERE status IN ('new', 'contacted', 'in-progress')`,
	).Scan(&d.PendingLeads)

	if d.TotalLeads > 0 {
		d.CompletionRate = float64(d.CompletedLeads) / float64(d.TotalLeads) * 100
	}

	h.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM packages`).Scan(&d.TotalPackages)
	h.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tariffs`).Scan(&d.TotalTariffs)
	h.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM banners`).Scan(&d.TotalBanners)
	h.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM testimonials`).Scan(&d.TotalTestimonials)

	if err := h.loadRecentLeads(r, &d); err != nil {
		h.logger.Error("failed to load recent leads", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch dashboard data")
		return
	}
	if err := h.loadStatusBuckets(r, &d); err != nil {
		h.logger.Error("failed to load status buckets", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch dashboard data")
		return
	}
	if err := h.loadServiceBuckets(r, &d); err != nil {
		h.logger.Error("failed to load service buckets", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch dashboard data")
		return
	}

	writeData(w, http.StatusOK, d)
}

func (h *AdminDashboardHandler) loadRecentLeads(r *http.Request, d *DashboardResponse) error {
	rows, err := h.db.QueryContext(r.Context(), `
		SELECT id, full_name, phone, service_type, status, submitted_at
		FROM leads
		ORDER BY submitted_at DESC
		LIMIT 5
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	d.RecentLeads = []RecentLead{}
	for rows.Next() {
		var lead RecentLead
		var submittedAt time.Time
		if err := rows.Scan(&lead.ID, &lead.FullName, &lead.Phone,
			&lead.ServiceType, &lead.Status, &submittedAt); err != nil {
			return err
		}
		lead.SubmittedAt = submittedAt.Format(time.RFC3339)
		d.RecentLeads = append(d.RecentLeads, lead)
	}
	return rows.Err()
}

func (h *AdminDashboardHandler) loadStatusBuckets(r *http.Request, d *DashboardResponse) error {
	rows, err := h.db.QueryContext(r.Context(), `
		SELECT status, COUNT(*)
		FROM leads
		GROUP BY status
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return err
		}
		d.LeadsByStatus[status] = count
	}
	return rows.Err()
}

func (h *AdminDashboardHandler) loadServiceBuckets(r *http.Request, d *DashboardResponse) error {
	rows, err := h.db.QueryContext(r.Context(), `
		SELECT service_type, COUNT(*)
		FROM leads
		GROUP BY service_type
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	d.LeadsByService = []ServiceBucket{}
	for rows.Next() {
		var b ServiceBucket
		if err := rows.Scan(&b.ServiceType, &b.Count); err != nil {
			return err
		}
		d.LeadsByService = append(d.LeadsByService, b)
	}
	return rows.Err()
}

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: msg})
}
