package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/rogerio-castellano/inventory-app/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-app/internal/http/metrics"
)

// RouterOptions toggles the optional middleware. Both default to off, which
// keeps the plain route contract the browser client expects.
type RouterOptions struct {
	RequireAuth bool
	RateLimit   bool
}

// NewRouter builds the full route table.
func NewRouter(opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(RequestLogger)
	r.Use(metrics.Middleware)
	if opts.RateLimit {
		r.Use(RateLimitMiddleware)
	}

	r.Get("/healthz", handlers.HealthHandler)
	r.Handle("/metrics", metrics.Handler())

	r.Post("/register", handlers.RegisterHandler)
	r.Post("/login", handlers.LoginHandler)

	r.Get("/categories", handlers.GetCategoriesHandler)
	r.Get("/categories/{id}", handlers.GetCategoryByIDHandler)

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/low-stock", handlers.GetLowStockProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)

	r.Get("/inventory-logs", handlers.GetInventoryLogsHandler)
	r.Get("/inventory-logs/product/{productId}", handlers.GetInventoryLogsByProductHandler)
	r.Get("/inventory-logs/product/{productId}/export", handlers.ExportInventoryLogsHandler)

	// mutations, token-gated when auth is enabled
	r.Group(func(g chi.Router) {
		if opts.RequireAuth {
			g.Use(AuthMiddleware)
		}

		g.Post("/categories", handlers.CreateCategoryHandler)
		g.Put("/categories/{id}", handlers.UpdateCategoryHandler)
		g.Delete("/categories/{id}", handlers.DeleteCategoryHandler)

		g.Post("/products", handlers.CreateProductHandler)
		g.Post("/products/import", handlers.ImportProductsHandler)
		g.Put("/products/{id}", handlers.UpdateProductHandler)
		g.Delete("/products/{id}", handlers.DeleteProductHandler)

		g.Post("/inventory-logs", handlers.CreateInventoryLogHandler)
	})

	return r
}
