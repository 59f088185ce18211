package content

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/srijaidev/tours-backend/pkg/logging"
)

// Catalog is the repository surface the handlers need.
type Catalog interface {
	ListPackages(ctx context.Context, onlyActive bool) ([]Package, error)
	CreatePackage(ctx context.Context, p *Package) (*Package, error)
	UpdatePackage(ctx context.Context, p *Package) (*Package, error)
	DeletePackage(ctx context.Context, id string) error

	ListTariffs(ctx context.Context, onlyActive bool) ([]Tariff, error)
	CreateTariff(ctx context.Context, t *Tariff) (*Tariff, error)
	UpdateTariff(ctx context.Context, t *Tariff) (*Tariff, error)
	DeleteTariff(ctx context.Context, id string) error

	ListBanners(ctx context.Context, onlyActive bool) ([]Banner, error)
	CreateBanner(ctx context.Context, b *Banner) (*Banner, error)
	UpdateBanner(ctx context.Context, b *Banner) (*Banner, error)
	DeleteBanner(ctx context.Context, id string) error

	ListTestimonials(ctx context.Context, publishedOnly bool) ([]Testimonial, error)
	CreateTestimonial(ctx context.Context, tm *Testimonial) (*Testimonial, error)
	UpdateTestimonial(ctx context.Context, tm *Testimonial) (*Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error
}

// ContactGetter abstracts the contact singleton store.
type ContactGetter interface {
	Get(ctx context.Context) (*ContactInfo, error)
	Set(ctx context.Context, info *ContactInfo) error
}

// PublicHandler serves the read-only content endpoints the site's client
// cache fetches. Lookup failures are logged and masked with empty lists or
// defaults so public pages never break on a content hiccup.
type PublicHandler struct {
	catalog Catalog
	contact ContactGetter
	logger  *logging.Logger
}

// NewPublicHandler creates the public content handler.
func NewPublicHandler(catalog Catalog, contact ContactGetter, logger *logging.Logger) *PublicHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &PublicHandler{catalog: catalog, contact: contact, logger: logger}
}

type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// GetContact returns the contact-info singleton, falling back to the default.
func (h *PublicHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	info, err := h.contact.Get(r.Context())
	if err != nil {
		h.logger.Error("contact lookup failed, serving default", "error", err)
		info = DefaultContactInfo()
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: info})
}

// GetPackages returns active tour packages.
func (h *PublicHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListPackages(r.Context(), true)
	if items == nil {
		items = []Package{}
	}
	h.writeList(w, items, err, "packages")
}

// GetTariffs returns active tariff cards.
func (h *PublicHandler) GetTariffs(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListTariffs(r.Context(), true)
	if items == nil {
		items = []Tariff{}
	}
	h.writeList(w, items, err, "tariffs")
}

// GetBanners returns active hero banners in display order.
func (h *PublicHandler) GetBanners(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListBanners(r.Context(), true)
	if items == nil {
		items = []Banner{}
	}
	h.writeList(w, items, err, "banners")
}

// GetTestimonials returns published testimonials.
func (h *PublicHandler) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListTestimonials(r.Context(), true)
	if items == nil {
		items = []Testimonial{}
	}
	h.writeList(w, items, err, "testimonials")
}

func (h *PublicHandler) writeList(w http.ResponseWriter, items any, err error, kind string) {
	if err != nil {
		h.logger.Error("content lookup failed, serving empty list", "kind", kind, "error", err)
		writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: []any{}})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: items})
}

func writeJSON(w http.ResponseWriter, status int, body apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
