package orders

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Oleg-Vlasenko/rlwai/internal/platform/db"
)

type Repository interface {
	// CreateOrder inserts the order row and its items as one transaction
	// and returns the generated order id.
	CreateOrder(ctx context.Context, customerID int64, items []NewOrderItem) (int64, error)
	// ListOrderRows returns the flat order/item join, ordered by order id
	// and item id.
	ListOrderRows(ctx context.Context) ([]OrderRow, error)
}

// Product names in the orders listing are always resolved in this
// language, independent of any request parameter.
const listingLang = "ua"

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) CreateOrder(ctx context.Context, customerID int64, items []NewOrderItem) (int64, error) {
	var orderID int64
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			`INSERT INTO orders (customer_id, invoice_date) VALUES ($1, CURRENT_TIMESTAMP) RETURNING order_id`,
			customerID,
		)
		if err := row.Scan(&orderID); err != nil {
			return err
		}

		for _, item := range items {
			if _, err := tx.Exec(ctx,
				`INSERT INTO order_items (order_id, product_id, quantity, price) VALUES ($1, $2, $3, $4)`,
				orderID, item.ProductID, item.Quantity, item.Price,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *repository) ListOrderRows(ctx context.Context) ([]OrderRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT
			o.order_id,
			o.customer_id,
			o.invoice_date,
			oi.order_item_id,
			oi.product_id,
			oi.quantity,
			oi.price,
			pn.name AS product_name
		FROM orders o
		LEFT JOIN order_items oi ON o.order_id = oi.order_id
		LEFT JOIN product_names pn ON oi.product_id = pn.product_id AND pn.lang_id = $1
		ORDER BY o.order_id, oi.order_item_id`,
		listingLang,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []OrderRow
	for rows.Next() {
		var row OrderRow
		if err := rows.Scan(
			&row.OrderID,
			&row.CustomerID,
			&row.InvoiceDate,
			&row.OrderItemID,
			&row.ProductID,
			&row.Quantity,
			&row.Price,
			&row.ProductName,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
