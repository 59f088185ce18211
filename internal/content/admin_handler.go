package content

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/srijaidev/tours-backend/pkg/logging"
)

// AdminHandler serves the content CRUD endpoints behind admin auth.
type AdminHandler struct {
	catalog Catalog
	contact ContactGetter
	logger  *logging.Logger
}

// NewAdminHandler creates the admin content handler.
func NewAdminHandler(catalog Catalog, contact ContactGetter, logger *logging.Logger) *AdminHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminHandler{catalog: catalog, contact: contact, logger: logger}
}

// UpdateContact saves the contact-info singleton.
func (h *AdminHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var info ContactInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: "Invalid request body"})
		return
	}
	if strings.TrimSpace(info.PrimaryPhone) == "" {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: "Primary phone is required"})
		return
	}
	if err := h.contact.Set(r.Context(), &info); err != nil {
		h.logger.Error("failed to save contact info", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Error: "Failed to update contact info"})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: info, Message: "Contact info updated successfully"})
}

// ListPackages returns every package, active or not.
func (h *AdminHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListPackages(r.Context(), false)
	h.writeList(w, items, err, "Failed to fetch packages")
}

// CreatePackage adds a package.
func (h *AdminHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var p Package
	if !h.decode(w, r, &p) {
		return
	}
	if strings.TrimSpace(p.Title) == "" {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: "Package title is required"})
		return
	}
	saved, err := h.catalog.CreatePackage(r.Context(), &p)
	h.writeMutation(w, http.StatusCreated, saved, err, "Package created successfully", "Failed to create package")
}

// UpdatePackage rewrites a package.
func (h *AdminHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	var p Package
	if !h.decode(w, r, &p) {
		return
	}
	p.ID = chi.URLParam(r, "id")
	saved, err := h.catalog.UpdatePackage(r.Context(), &p)
	h.writeMutation(w, http.StatusOK, saved, err, "Package updated successfully", "Failed to update package")
}

// DeletePackage removes a package.
func (h *AdminHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	err := h.catalog.DeletePackage(r.Context(), chi.URLParam(r, "id"))
	h.writeDeletion(w, err, "Package deleted successfully", "Failed to delete package")
}

// ListTariffs returns every tariff card.
func (h *AdminHandler) ListTariffs(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListTariffs(r.Context(), false)
	h.writeList(w, items, err, "Failed to fetch tariffs")
}

// CreateTariff adds a tariff card.
func (h *AdminHandler) CreateTariff(w http.ResponseWriter, r *http.Request) {
	var t Tariff
	if !h.decode(w, r, &t) {
		return
	}
	if strings.TrimSpace(t.VehicleName) == "" {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: "Vehicle name is required"})
		return
	}
	saved, err := h.catalog.CreateTariff(r.Context(), &t)
	h.writeMutation(w, http.StatusCreated, saved, err, "Tariff created successfully", "Failed to create tariff")
}

// UpdateTariff rewrites a tariff card.
func (h *AdminHandler) UpdateTariff(w http.ResponseWriter, r *http.Request) {
	var t Tariff
	if !h.decode(w, r, &t) {
		return
	}
	t.ID = chi.URLParam(r, "id")
	saved, err := h.catalog.UpdateTariff(r.Context(), &t)
	h.writeMutation(w, http.StatusOK, saved, err, "Tariff updated successfully", "Failed to update tariff")
}

// DeleteTariff removes a tariff card.
func (h *AdminHandler) DeleteTariff(w http.ResponseWriter, r *http.Request) {
	err := h.catalog.DeleteTariff(r.Context(), chi.URLParam(r, "id"))
	h.writeDeletion(w, err, "Tariff deleted successfully", "Failed to delete tariff")
}

// ListBanners returns every banner.
func (h *AdminHandler) ListBanners(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListBanners(r.Context(), false)
	h.writeList(w, items, err, "Failed to fetch banners")
}

// CreateBanner adds a banner.
func (h *AdminHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var b Banner
	if !h.decode(w, r, &b) {
		return
	}
	if strings.TrimSpace(b.Image) == "" {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: "Banner image is required"})
		return
	}
	saved, err := h.catalog.CreateBanner(r.Context(), &b)
	h.writeMutation(w, http.StatusCreated, saved, err, "Banner created successfully", "Failed to create banner")
}

// UpdateBanner rewrites a banner.
func (h *AdminHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	var b Banner
	if !h.decode(w, r, &b) {
		return
	}
	b.ID = chi.URLParam(r, "id")
	saved, err := h.catalog.UpdateBanner(r.Context(), &b)
	h.writeMutation(w, http.StatusOK, saved, err, "Banner updated successfully", "Failed to update banner")
}

// DeleteBanner removes a banner.
func (h *AdminHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	err := h.catalog.DeleteBanner(r.Context(), chi.URLParam(r, "id"))
	h.writeDeletion(w, err, "Banner deleted successfully", "Failed to delete banner")
}

// ListTestimonials returns every testimonial including pending ones.
func (h *AdminHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListTestimonials(r.Context(), false)
	h.writeList(w, items, err, "Failed to fetch testimonials")
}

// CreateTestimonial adds a testimonial.
func (h *AdminHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var tm Testimonial
	if !h.decode(w, r, &tm) {
		return
	}
	if strings.TrimSpace(tm.Name) == "" || strings.TrimSpace(tm.Content) == "" {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: "Testimonial name and content are required"})
		return
	}
	saved, err := h.catalog.CreateTestimonial(r.Context(), &tm)
	h.writeMutation(w, http.StatusCreated, saved, err, "Testimonial created successfully", "Failed to create testimonial")
}

// UpdateTestimonial rewrites a testimonial.
func (h *AdminHandler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	var tm Testimonial
	if !h.decode(w, r, &tm) {
		return
	}
	tm.ID = chi.URLParam(r, "id")
	saved, err := h.catalog.UpdateTestimonial(r.Context(), &tm)
	h.writeMutation(w, http.StatusOK, saved, err, "Testimonial updated successfully", "Failed to update testimonial")
}

// DeleteTestimonial removes a testimonial.
func (h *AdminHandler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	err := h.catalog.DeleteTestimonial(r.Context(), chi.URLParam(r, "id"))
	h.writeDeletion(w, err, "Testimonial deleted successfully", "Failed to delete testimonial")
}

func (h *AdminHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: "Invalid request body"})
		return false
	}
	return true
}

func (h *AdminHandler) writeList(w http.ResponseWriter, items any, err error, fallback string) {
	if err != nil {
		h.logger.Error("content list failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Error: fallback})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: items})
}

func (h *AdminHandler) writeMutation(w http.ResponseWriter, okStatus int, data any, err error, okMessage, fallback string) {
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeJSON(w, http.StatusNotFound, apiResponse{Success: false, Error: "Not found"})
			return
		}
		h.logger.Error("content mutation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Error: fallback})
		return
	}
	writeJSON(w, okStatus, apiResponse{Success: true, Data: data, Message: okMessage})
}

func (h *AdminHandler) writeDeletion(w http.ResponseWriter, err error, okMessage, fallback string) {
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeJSON(w, http.StatusNotFound, apiResponse{Success: false, Error: "Not found"})
			return
		}
		h.logger.Error("content deletion failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Error: fallback})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: okMessage})
}
