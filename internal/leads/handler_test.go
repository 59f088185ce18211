package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/srijaidev/tours-backend/pkg/logging"
)

func postLead(t *testing.T, handler *Handler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.CreateLead(w, req)
	return w
}

func validRequest() CreateLeadRequest {
	return CreateLeadRequest{
		FullName:       "Jane Doe",
		Email:          "a@b.com",
		Phone:          "9999999999",
		ServiceType:    "One-way Trip",
		PickupLocation: "Madurai",
		DropLocation:   "Chennai",
		TravelDate:     "2026-09-15",
	}
}

func TestCreateLead_Success(t *testing.T) {
	repo := NewInMemoryRepository()
	handler := NewHandler(repo, nil, nil, "", logging.Default())

	body, _ := json.Marshal(validRequest())
	w := postLead(t, handler, body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Data    Lead   `json:"data"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Data.ID == "" {
		t.Error("expected a generated id")
	}
	if resp.Data.FullName != "Jane Doe" {
		t.Errorf("expected full name Jane Doe, got %s", resp.Data.FullName)
	}
	if resp.Data.Email != "a@b.com" {
		t.Errorf("expected email a@b.com, got %s", resp.Data.Email)
	}
	if resp.Data.Status != StatusNew {
		t.Errorf("expected default status new, got %s", resp.Data.Status)
	}
	if resp.Data.Passengers != 1 {
		t.Errorf("expected default passengers 1, got %d", resp.Data.Passengers)
	}
	if repo.Count() != 1 {
		t.Errorf("expected exactly one store write, got %d", repo.Count())
	}
}

func TestCreateLead_MissingFieldsListedAndNoWrite(t *testing.T) {
	repo := NewInMemoryRepository()
	handler := NewHandler(repo, nil, nil, "", logging.Default())

	body, _ := json.Marshal(CreateLeadRequest{FullName: "Jane Doe", Phone: "9999999999"})
	w := postLead(t, handler, body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
	for _, field := range []string{"serviceType", "pickupLocation", "dropLocation", "travelDate"} {
		if !strings.Contains(resp.Error, field) {
			t.Errorf("error %q should name missing field %s", resp.Error, field)
		}
	}
	if strings.Contains(resp.Error, "fullName") || strings.Contains(resp.Error, "phone") {
		t.Errorf("error %q should not name provided fields", resp.Error)
	}
	if repo.Count() != 0 {
		t.Errorf("expected zero store writes, got %d", repo.Count())
	}
}

func TestCreateLead_InvalidJSON(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), nil, nil, "", logging.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader("{"))
	w := httptest.NewRecorder()
	handler.CreateLead(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

type failingRepository struct{}

func (failingRepository) Create(context.Context, *CreateLeadRequest) (*Lead, error) {
	return nil, errors.New("boom")
}

func (failingRepository) GetByID(context.Context, string) (*Lead, error) {
	return nil, ErrLeadNotFound
}

func TestCreateLead_RepositoryError(t *testing.T) {
	handler := NewHandler(failingRepository{}, nil, nil, "", logging.Default())

	body, _ := json.Marshal(validRequest())
	w := postLead(t, handler, body)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

type failingNotifier struct {
	called bool
}

func (n *failingNotifier) NotifyBookingRequest(context.Context, *Lead) error {
	n.called = true
	return errors.New("smtp unreachable")
}

func TestCreateLead_NotificationFailureDoesNotFlipResult(t *testing.T) {
	notifier := &failingNotifier{}
	handler := NewHandler(NewInMemoryRepository(), notifier, nil, "", logging.Default())

	body, _ := json.Marshal(validRequest())
	w := postLead(t, handler, body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if !notifier.called {
		t.Error("expected notifier to be invoked")
	}

	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("notification failure must not flip success=false")
	}
}

func TestCreateLead_IncludesWhatsAppLink(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), nil, nil, "+91 90037 82966", logging.Default())

	body, _ := json.Marshal(validRequest())
	w := postLead(t, handler, body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}

	var resp struct {
		Data struct {
			WhatsAppURL string `json:"whatsappUrl"`
		} `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !strings.HasPrefix(resp.Data.WhatsAppURL, "https://wa.me/919003782966?") {
		t.Errorf("unexpected link %q", resp.Data.WhatsAppURL)
	}
	decoded, err := url.QueryUnescape(resp.Data.WhatsAppURL)
	if err != nil {
		t.Fatalf("failed to decode link: %v", err)
	}
	for _, want := range []string{"Madurai", "Chennai"} {
		if !strings.Contains(decoded, want) {
			t.Errorf("decoded link should contain %q", want)
		}
	}
}
