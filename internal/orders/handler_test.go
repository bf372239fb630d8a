package orders

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doCreate(t *testing.T, handler *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	handler.Create(res, req)
	return res
}

func TestCreateOrderEndpoint(t *testing.T) {
	repo := newMockRepository()
	handler := NewHandler(nil, NewService(repo))

	res := doCreate(t, handler, `{"customer_id":10,"items":[{"product_id":1,"quantity":2,"price":9.99}]}`)
	require.Equal(t, http.StatusCreated, res.Code)

	var body CreateOrderResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "Order created successfully", body.Message)
	assert.Equal(t, int64(1), body.OrderID)
	assert.Equal(t, 1, body.ItemsInserted)
	assert.Equal(t, 0, body.ItemsSkipped)
}

func TestCreateOrderEndpointReportsSkips(t *testing.T) {
	repo := newMockRepository()
	handler := NewHandler(nil, NewService(repo))

	res := doCreate(t, handler, `{"customer_id":10,"items":[{"product_id":1,"quantity":0,"price":10}]}`)
	require.Equal(t, http.StatusCreated, res.Code)

	var body CreateOrderResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, 0, body.ItemsInserted)
	assert.Equal(t, 1, body.ItemsSkipped)
}

func TestCreateOrderEndpointValidation(t *testing.T) {
	handler := NewHandler(nil, NewService(newMockRepository()))

	cases := map[string]string{
		"no customer":  `{"items":[{"product_id":1,"quantity":1,"price":1}]}`,
		"no items":     `{"customer_id":10}`,
		"empty items":  `{"customer_id":10,"items":[]}`,
		"items object": `{"customer_id":10,"items":{}}`,
		"not json":     `garbage`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			res := doCreate(t, handler, body)
			assert.Equal(t, http.StatusBadRequest, res.Code)
			assert.Contains(t, res.Body.String(), "error")
		})
	}
}

func TestListOrdersEndpoint(t *testing.T) {
	invoiced := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	repo := newMockRepository()
	repo.rows = []OrderRow{
		{OrderID: 1, CustomerID: 10, InvoiceDate: invoiced, OrderItemID: ptr[int64](1), ProductID: ptr[int64](5), Quantity: ptr(2), Price: ptr(9.99), ProductName: ptr("Стілець")},
	}
	handler := NewHandler(nil, NewService(repo))

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	res := httptest.NewRecorder()
	handler.List(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	var body ListOrdersResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	require.Len(t, body.Orders, 1)
	assert.Equal(t, int64(1), body.Orders[0].OrderID)
	require.Len(t, body.Orders[0].Items, 1)
}

func TestListOrdersEndpointEmpty(t *testing.T) {
	handler := NewHandler(nil, NewService(newMockRepository()))

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	res := httptest.NewRecorder()
	handler.List(res, req)

	require.Equal(t, http.StatusNotFound, res.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "No orders found", body["message"])
}
