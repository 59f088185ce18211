package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srijaidev/tours-backend/pkg/logging"
)

func TestGetDashboard_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	countRow := func(n int) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"count"}).AddRow(n)
	}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM leads`).WillReturnRows(countRow(40))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM leads WHERE submitted_at >=`).WillReturnRows(countRow(12))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM leads WHERE submitted_at >=`).WillReturnRows(countRow(5))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM leads WHERE submitted_at >= .* AND submitted_at <`).WillReturnRows(countRow(10))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM leads WHERE status = 'completed'`).WillReturnRows(countRow(8))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM leads WHERE status IN`).WillReturnRows(countRow(25))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM packages`).WillReturnRows(countRow(6))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tariffs`).WillReturnRows(countRow(4))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM banners`).WillReturnRows(countRow(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM testimonials`).WillReturnRows(countRow(9))

	mock.ExpectQuery(`SELECT id, full_name, phone, service_type, status, submitted_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "phone", "service_type", "status", "submitted_at"}).
			AddRow("l1", "Jane Doe", "9999999999", "One-way Trip", "new", time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)))

	mock.ExpectQuery(`SELECT status, COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("new", 20).AddRow("completed", 8).AddRow("contacted", 12))

	mock.ExpectQuery(`SELECT service_type, COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"service_type", "count"}).
			AddRow("One-way Trip", 25).AddRow("Round Trip", 15))

	handler := NewAdminDashboardHandler(db, logging.New("error"))
	rec := httptest.NewRecorder()
	handler.GetDashboard(rec, httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    DashboardResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Success)

	d := resp.Data
	assert.Equal(t, 40, d.TotalLeads)
	assert.Equal(t, 12, d.ThisMonthLeads)
	assert.Equal(t, 5, d.ThisWeekLeads)
	assert.InDelta(t, 20.0, d.LeadsGrowth, 0.01) // 12 vs 10 last month
	assert.Equal(t, 8, d.CompletedLeads)
	assert.Equal(t, 25, d.PendingLeads)
	assert.InDelta(t, 20.0, d.CompletionRate, 0.01)
	assert.Equal(t, 6, d.TotalPackages)
	assert.Equal(t, 9, d.TotalTestimonials)
	require.Len(t, d.RecentLeads, 1)
	assert.Equal(t, "Jane Doe", d.RecentLeads[0].FullName)
	assert.Equal(t, 20, d.LeadsByStatus["new"])
	require.Len(t, d.LeadsByService, 2)
	assert.Equal(t, "One-way Trip", d.LeadsByService[0].ServiceType)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDashboard_GrowthWithEmptyPreviousMonth(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	countRow := func(n int) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"count"}).AddRow(n)
	}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM leads`).WillReturnRows(countRow(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM leads WHERE submitted_at >=`).WillReturnRows(countRow(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM leads WHERE submitted_at >=`).WillReturnRows(countRow(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM leads WHERE submitted_at >= .* AND submitted_at <`).WillReturnRows(countRow(0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM leads WHERE status = 'completed'`).WillReturnRows(countRow(0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM leads WHERE status IN`).WillReturnRows(countRow(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM packages`).WillReturnRows(countRow(0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tariffs`).WillReturnRows(countRow(0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM banners`).WillReturnRows(countRow(0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM testimonials`).WillReturnRows(countRow(0))
	mock.ExpectQuery(`SELECT id, full_name, phone, service_type, status, submitted_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "phone", "service_type", "status", "submitted_at"}))
	mock.ExpectQuery(`SELECT status, COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("new", 3))
	mock.ExpectQuery(`SELECT service_type, COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"service_type", "count"}))

	handler := NewAdminDashboardHandler(db, logging.New("error"))
	rec := httptest.NewRecorder()
	handler.GetDashboard(rec, httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data DashboardResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.InDelta(t, 100.0, resp.Data.LeadsGrowth, 0.01)
	assert.Empty(t, resp.Data.RecentLeads)
}
