package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srijaidev/tours-backend/internal/leads"
	"github.com/srijaidev/tours-backend/internal/theme"
	"github.com/srijaidev/tours-backend/internal/vehicletypes"
	"github.com/srijaidev/tours-backend/pkg/logging"
)

type noopNotifier struct{}

func (noopNotifier) NotifyBookingRequest(ctx context.Context, lead *leads.Lead) error { return nil }

type staticVehicleTypes struct{}

func (staticVehicleTypes) List(ctx context.Context) ([]vehicletypes.VehicleType, error) {
	return []vehicletypes.VehicleType{{ID: "vt-1", Name: "Sedan"}}, nil
}

func (staticVehicleTypes) Create(ctx context.Context, name string) (*vehicletypes.VehicleType, error) {
	return &vehicletypes.VehicleType{ID: "vt-new", Name: name}, nil
}

func (staticVehicleTypes) Update(ctx context.Context, id, name string) (*vehicletypes.VehicleType, error) {
	return &vehicletypes.VehicleType{ID: id, Name: name}, nil
}

func (staticVehicleTypes) Delete(ctx context.Context, id string) (*vehicletypes.VehicleType, error) {
	return &vehicletypes.VehicleType{ID: id, Name: "Sedan"}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := logging.New("error")

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return New(&Config{
		Logger:              logger,
		LeadsHandler:        leads.NewHandler(leads.NewInMemoryRepository(), noopNotifier{}, nil, "+91 90037 82966", logger),
		ThemeHandler:        theme.NewHandler(theme.NewStore(client), logger),
		VehicleTypesHandler: vehicletypes.NewHandler(staticVehicleTypes{}, logger),
		AdminAuthSecret:     "secret",
		CORSAllowedOrigins:  []string{"*"},
	})
}

func adminToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)
	return signed
}

func TestHealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestPublicLeadSubmission(t *testing.T) {
	body := `{
		"fullName": "Jane Doe",
		"phone": "9999999999",
		"serviceType": "One-way Trip",
		"pickupLocation": "Madurai",
		"dropLocation": "Chennai",
		"travelDate": "2026-09-15"
	}`
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestPublicThemeEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/theme", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "#EF4444")
}

func TestAdminRoutesRequireToken(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/vehicle-types", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized - No token provided")
}

func TestAdminRoutesWithToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/vehicle-types", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sedan")
}
