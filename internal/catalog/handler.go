package catalog

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Oleg-Vlasenko/rlwai/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// Languages handles GET /languages.
func (h *Handler) Languages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.service.ListLanguages(r.Context())
	if err != nil {
		h.logger.Error("list languages", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if languages == nil {
		languages = []Language{}
	}
	httpx.JSON(w, http.StatusOK, languages)
}

// Products handles GET /products. An empty result is reported with a
// message object rather than an empty array; existing clients branch on
// that shape.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	filter := ProductFilter{
		Currency: r.URL.Query().Get("curr"),
		Lang:     r.URL.Query().Get("lang"),
	}

	if raw := r.URL.Query().Get("ctg_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "ctg_id must be an integer")
			return
		}
		filter.CategoryID = &id
	}

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		h.logger.Error("list products", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	if len(products) == 0 {
		httpx.JSON(w, http.StatusOK, httpx.MessageBody{Message: "No products found"})
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}
