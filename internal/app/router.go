package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Oleg-Vlasenko/rlwai/internal/auth"
	"github.com/Oleg-Vlasenko/rlwai/internal/catalog"
	"github.com/Oleg-Vlasenko/rlwai/internal/orders"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	AuthHandler    *auth.Handler
	AuthMiddleware auth.Middleware
	CatalogHandler *catalog.Handler
	OrdersHandler  *orders.Handler
}

// NewRouter constructs the chi.Router. Login is the only open route;
// everything else sits behind the bearer-token gate.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/login", params.AuthHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(params.AuthMiddleware.RequireToken)
		params.CatalogHandler.MountRoutes(r)
		params.OrdersHandler.MountRoutes(r)
	})

	return r
}
