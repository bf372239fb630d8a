// Package orders implements order placement and the nested order listing.
package orders

import "time"

// Order is an order with its line items nested.
type Order struct {
	OrderID     int64       `json:"order_id"`
	CustomerID  int64       `json:"customer_id"`
	InvoiceDate time.Time   `json:"invoice_date"`
	Items       []OrderItem `json:"items"`
}

// OrderItem is a line item owned by exactly one order. ProductName comes
// from the localized name join and may be absent.
type OrderItem struct {
	OrderItemID int64   `json:"order_item_id"`
	ProductID   int64   `json:"product_id"`
	ProductName *string `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// NewOrderItem is a complete, insertable line item.
type NewOrderItem struct {
	ProductID int64
	Quantity  int
	Price     float64
}

// OrderRow is one flat row of the denormalized orders listing join. The
// item columns are nil for orders without items (LEFT JOIN placeholder).
type OrderRow struct {
	OrderID     int64
	CustomerID  int64
	InvoiceDate time.Time
	OrderItemID *int64
	ProductID   *int64
	Quantity    *int
	Price       *float64
	ProductName *string
}
