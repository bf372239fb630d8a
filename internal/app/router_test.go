package app_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oleg-Vlasenko/rlwai/internal/app"
	"github.com/Oleg-Vlasenko/rlwai/internal/auth"
	"github.com/Oleg-Vlasenko/rlwai/internal/catalog"
	"github.com/Oleg-Vlasenko/rlwai/internal/orders"
)

type stubCatalogRepo struct{}

func (stubCatalogRepo) ListLanguages(ctx context.Context) ([]catalog.Language, error) {
	return []catalog.Language{{ID: 1, Code: "ua", Title: "Ukrainian"}}, nil
}

func (stubCatalogRepo) ListProducts(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	return nil, nil
}

type stubOrdersRepo struct{}

func (stubOrdersRepo) CreateOrder(ctx context.Context, customerID int64, items []orders.NewOrderItem) (int64, error) {
	return 1, nil
}

func (stubOrdersRepo) ListOrderRows(ctx context.Context) ([]orders.OrderRow, error) {
	return nil, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &app.Config{AppAddr: ":0", AppRequestTimeout: 5 * time.Second}
	store := auth.NewMemoryStore(5 * time.Minute)
	service := auth.NewService(map[string]string{"admin": "1234"}, store)

	return app.NewRouter(app.RouterParams{
		Logger:         app.NewLogger(cfg),
		Config:         cfg,
		AuthHandler:    auth.NewHandler(app.NewLogger(cfg), service),
		AuthMiddleware: auth.NewMiddleware(store),
		CatalogHandler: catalog.NewHandler(app.NewLogger(cfg), catalog.NewService(stubCatalogRepo{})),
		OrdersHandler:  orders.NewHandler(app.NewLogger(cfg), orders.NewService(stubOrdersRepo{})),
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/languages", "/products", "/orders"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)
		assert.Equal(t, http.StatusUnauthorized, res.Code, "GET %s", path)
	}

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{}`))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusUnauthorized, res.Code, "POST /orders")
}

func TestLoginThenAccess(t *testing.T) {
	router := newTestRouter(t)

	loginReq := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"admin","password":"1234"}`))
	loginReq.Header.Set("Content-Type", "application/json")
	loginRes := httptest.NewRecorder()
	router.ServeHTTP(loginRes, loginReq)
	require.Equal(t, http.StatusOK, loginRes.Code)

	var body auth.LoginResponse
	require.NoError(t, json.Unmarshal(loginRes.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	req := httptest.NewRequest(http.MethodGet, "/languages", nil)
	req.Header.Set("Authorization", "Bearer "+body.Token)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "Ukrainian")
}

func TestHealthzIsOpen(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"status":"ok"}`, res.Body.String())
}
