package orders

import (
	"context"
	"errors"
	"sort"
)

// ErrNoOrders is returned by List when the store holds no orders at all.
var ErrNoOrders = errors.New("no orders found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create places an order. Submitted items missing any of product_id,
// quantity or price (zero counts as missing) are skipped rather than
// rejected; the result reports how many went each way. An order may end
// up with zero items and still be created.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (CreateOrderResult, error) {
	var insertable []NewOrderItem
	skipped := 0
	for _, item := range req.Items {
		if !item.Complete() {
			skipped++
			continue
		}
		insertable = append(insertable, NewOrderItem{
			ProductID: *item.ProductID,
			Quantity:  *item.Quantity,
			Price:     *item.Price,
		})
	}

	orderID, err := s.repo.CreateOrder(ctx, req.CustomerID, insertable)
	if err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:       orderID,
		ItemsInserted: len(insertable),
		ItemsSkipped:  skipped,
	}, nil
}

// List returns all orders with their items nested, in ascending order id.
// Rows are grouped by order id explicitly instead of trusting the row
// order the store happened to return. An order without items appears with
// an empty items list; its LEFT JOIN placeholder row is dropped.
func (s *Service) List(ctx context.Context) ([]Order, error) {
	rows, err := s.repo.ListOrderRows(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoOrders
	}

	byID := make(map[int64]*Order)
	for _, row := range rows {
		order, ok := byID[row.OrderID]
		if !ok {
			order = &Order{
				OrderID:     row.OrderID,
				CustomerID:  row.CustomerID,
				InvoiceDate: row.InvoiceDate,
				Items:       []OrderItem{},
			}
			byID[row.OrderID] = order
		}
		if row.OrderItemID == nil {
			continue
		}
		order.Items = append(order.Items, OrderItem{
			OrderItemID: *row.OrderItemID,
			ProductID:   *row.ProductID,
			ProductName: row.ProductName,
			Quantity:    *row.Quantity,
			Price:       *row.Price,
		})
	}

	result := make([]Order, 0, len(byID))
	for _, order := range byID {
		result = append(result, *order)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].OrderID < result[j].OrderID })
	return result, nil
}
