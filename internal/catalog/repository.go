package catalog

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	ListLanguages(ctx context.Context) ([]Language, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) ListLanguages(ctx context.Context) ([]Language, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, code, title FROM languages ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var languages []Language
	for rows.Next() {
		var l Language
		if err := rows.Scan(&l.ID, &l.Code, &l.Title); err != nil {
			return nil, err
		}
		// The code column is fixed-width, so strip the padding.
		l.Code = strings.TrimSpace(l.Code)
		languages = append(languages, l)
	}
	return languages, rows.Err()
}

func (r *repository) ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error) {
	query := `
		SELECT
			p.id,
			pn.name,
			c.name,
			pl.price,
			pl.stock_quantity,
			pl.currency_id
		FROM products p
		INNER JOIN product_names pn ON p.id = pn.product_id
		INNER JOIN categories c ON p.category_id = c.id
		INNER JOIN price_list pl ON p.id = pl.product_id AND pl.currency_id = $1
		WHERE pn.lang_id = $2`
	args := []any{filter.Currency, filter.Lang}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		query += ` AND c.id = $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY c.name, p.id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.CategoryName, &p.Price, &p.StockQuantity, &p.CurrencyID); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
