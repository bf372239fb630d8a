// Package catalog exposes read-only views of languages and priced products.
package catalog

// Language is a row from the languages reference table.
type Language struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
}

// Product is the catalog view of a product: identity joined with its
// localized name, category and price-list entry for one currency.
type Product struct {
	ProductID     int64   `json:"product_id"`
	ProductName   string  `json:"product_name"`
	CategoryName  string  `json:"category_name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	CurrencyID    string  `json:"currency_id"`
}

// ProductFilter narrows the product listing.
type ProductFilter struct {
	CategoryID *int64
	Currency   string
	Lang       string
}
