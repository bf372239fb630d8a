package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Oleg-Vlasenko/rlwai/internal/platform/httpx"
)

// LoginRequest is the POST /login body.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Handler serves the login endpoint.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Login handles POST /login. Malformed bodies and missing fields fail the
// same way bad credentials do: a 401 with no further detail.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusUnauthorized, ErrInvalidCredentials.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Error(w, http.StatusUnauthorized, ErrInvalidCredentials.Error())
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			h.logger.Error("issue token", slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
		httpx.Error(w, http.StatusUnauthorized, ErrInvalidCredentials.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, LoginResponse{Token: token})
}
