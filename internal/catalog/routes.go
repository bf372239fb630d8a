package catalog

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/languages", h.Languages)
	r.Get("/products", h.Products)
}
