package router

import (
	"net/http"
	"time"

	"commerce-admin/internal/handler"
	custommw "commerce-admin/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	customerHandler *handler.CustomerHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	returnHandler *handler.ReturnHandler,
	dashboardHandler *handler.DashboardHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth
	r.Use(custommw.Recovery(logger))
	r.Use(custommw.RequestID)
	r.Use(custommw.Logging(logger))
	r.Use(custommw.CORS)
	r.Use(custommw.APIKeyAuth(apiKey, logger))
	r.Use(chimw.RealIP)
	r.Use(chimw.Timeout(15 * time.Second))

	// Health check endpoint (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", customerHandler.List)
			r.Post("/", customerHandler.Create)
			r.Get("/{id}", customerHandler.GetByID)
			r.Put("/{id}", customerHandler.Update)
			r.Delete("/{id}", customerHandler.Delete)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Post("/", productHandler.Create)
			r.Get("/{id}", productHandler.GetByID)
			r.Put("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orderHandler.List)
			r.Post("/", orderHandler.Create)
			r.Get("/{id}", orderHandler.GetByID)
			r.Put("/{id}", orderHandler.UpdateStatus)
			r.Delete("/{id}", orderHandler.Delete)
		})

		r.Route("/returns", func(r chi.Router) {
			r.Get("/", returnHandler.List)
			r.Post("/", returnHandler.Create)
			r.Put("/{id}", returnHandler.UpdateStatus)
			r.Delete("/{id}", returnHandler.Delete)
		})

		r.Get("/dashboard/sales-total", dashboardHandler.SalesTotal)
	})

	return r
}
