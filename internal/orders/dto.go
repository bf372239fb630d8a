package orders

// CreateOrderRequest is the POST /orders body.
type CreateOrderRequest struct {
	CustomerID int64                    `json:"customer_id" validate:"required,gt=0"`
	Items      []CreateOrderItemRequest `json:"items" validate:"required,min=1"`
}

// CreateOrderItemRequest is one submitted line item. Fields are pointers so
// an absent field can be told apart from an explicit zero; both are treated
// as incomplete, matching the behaviour clients already rely on.
type CreateOrderItemRequest struct {
	ProductID *int64   `json:"product_id"`
	Quantity  *int     `json:"quantity"`
	Price     *float64 `json:"price"`
}

// Complete reports whether all three fields are present and non-zero.
// Incomplete items are skipped, not rejected.
func (i CreateOrderItemRequest) Complete() bool {
	return i.ProductID != nil && *i.ProductID != 0 &&
		i.Quantity != nil && *i.Quantity != 0 &&
		i.Price != nil && *i.Price != 0
}

// CreateOrderResult reports what an order creation actually did.
type CreateOrderResult struct {
	OrderID       int64
	ItemsInserted int
	ItemsSkipped  int
}
