package orders

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Oleg-Vlasenko/rlwai/internal/platform/httpx"
)

// CreateOrderResponse is the POST /orders success body.
type CreateOrderResponse struct {
	Message       string `json:"message"`
	OrderID       int64  `json:"order_id"`
	ItemsInserted int    `json:"items_inserted"`
	ItemsSkipped  int    `json:"items_skipped"`
}

// ListOrdersResponse wraps the GET /orders result.
type ListOrdersResponse struct {
	Orders []Order `json:"orders"`
}

type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Create handles POST /orders.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "customer_id and a non-empty items list are required")
		return
	}

	result, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create order", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreateOrderResponse{
		Message:       "Order created successfully",
		OrderID:       result.OrderID,
		ItemsInserted: result.ItemsInserted,
		ItemsSkipped:  result.ItemsSkipped,
	})
}

// List handles GET /orders. An empty store is a 404 with a message body,
// which existing clients distinguish from the orders shape.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoOrders) {
			httpx.JSON(w, http.StatusNotFound, httpx.MessageBody{Message: "No orders found"})
			return
		}
		h.logger.Error("list orders", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ListOrdersResponse{Orders: result})
}
