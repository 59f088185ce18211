// Package router wires handlers and middleware into the HTTP surface.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/srijaidev/tours-backend/internal/content"
	"github.com/srijaidev/tours-backend/internal/http/handlers"
	httpmiddleware "github.com/srijaidev/tours-backend/internal/http/middleware"
	"github.com/srijaidev/tours-backend/internal/leads"
	"github.com/srijaidev/tours-backend/internal/theme"
	"github.com/srijaidev/tours-backend/internal/vehicletypes"
	"github.com/srijaidev/tours-backend/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger *logging.Logger

	LeadsHandler        *leads.Handler
	ThemeHandler        *theme.Handler
	ContentHandler      *content.PublicHandler
	AdminContent        *content.AdminHandler
	VehicleTypesHandler *vehicletypes.Handler
	AdminDashboard      *handlers.AdminDashboardHandler
	AdminLeads          *handlers.AdminLeadsHandler

	AdminAuthSecret    string
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints
	r.Group(func(public chi.Router) {
		public.Get("/health", healthCheck)

		if cfg.LeadsHandler != nil {
			public.Post("/api/leads", cfg.LeadsHandler.CreateLead)
		}
		if cfg.ThemeHandler != nil {
			public.Get("/api/theme", cfg.ThemeHandler.GetTheme)
		}
		if cfg.ContentHandler != nil {
			public.Route("/api/content", func(r chi.Router) {
				r.Get("/contact", cfg.ContentHandler.GetContact)
				r.Get("/packages", cfg.ContentHandler.GetPackages)
				r.Get("/tariffs", cfg.ContentHandler.GetTariffs)
				r.Get("/banners", cfg.ContentHandler.GetBanners)
				r.Get("/testimonials", cfg.ContentHandler.GetTestimonials)
			})
		}
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
	})

	// Admin routes, protected by the HMAC JWT
	if cfg.AdminAuthSecret != "" {
		r.Route("/api/admin", func(admin chi.Router) {
			admin.Use(httpmiddleware.AdminJWT(cfg.AdminAuthSecret))

			if cfg.VehicleTypesHandler != nil {
				admin.Get("/vehicle-types", cfg.VehicleTypesHandler.List)
				admin.Post("/vehicle-types", cfg.VehicleTypesHandler.Create)
				admin.Put("/vehicle-types/{id}", cfg.VehicleTypesHandler.Update)
				admin.Delete("/vehicle-types/{id}", cfg.VehicleTypesHandler.Delete)
			}
			if cfg.AdminDashboard != nil {
				admin.Get("/dashboard", cfg.AdminDashboard.GetDashboard)
			}
			if cfg.AdminLeads != nil {
				admin.Get("/leads", cfg.AdminLeads.ListLeads)
				admin.Get("/leads/stats", cfg.AdminLeads.GetLeadStats)
				admin.Get("/leads/{id}", cfg.AdminLeads.GetLead)
				admin.Patch("/leads/{id}", cfg.AdminLeads.UpdateLead)
			}
			if cfg.ThemeHandler != nil {
				admin.Put("/theme", cfg.ThemeHandler.UpdateTheme)
			}
			if cfg.AdminContent != nil {
				admin.Put("/contact", cfg.AdminContent.UpdateContact)

				admin.Get("/packages", cfg.AdminContent.ListPackages)
				admin.Post("/packages", cfg.AdminContent.CreatePackage)
				admin.Put("/packages/{id}", cfg.AdminContent.UpdatePackage)
				admin.Delete("/packages/{id}", cfg.AdminContent.DeletePackage)

				admin.Get("/tariffs", cfg.AdminContent.ListTariffs)
				admin.Post("/tariffs", cfg.AdminContent.CreateTariff)
				admin.Put("/tariffs/{id}", cfg.AdminContent.UpdateTariff)
				admin.Delete("/tariffs/{id}", cfg.AdminContent.DeleteTariff)

				admin.Get("/banners", cfg.AdminContent.ListBanners)
				admin.Post("/banners", cfg.AdminContent.CreateBanner)
				admin.Put("/banners/{id}", cfg.AdminContent.UpdateBanner)
				admin.Delete("/banners/{id}", cfg.AdminContent.DeleteBanner)

				admin.Get("/testimonials", cfg.AdminContent.ListTestimonials)
				admin.Post("/testimonials", cfg.AdminContent.CreateTestimonial)
				admin.Put("/testimonials/{id}", cfg.AdminContent.UpdateTestimonial)
				admin.Delete("/testimonials/{id}", cfg.AdminContent.DeleteTestimonial)
			}
		})
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
