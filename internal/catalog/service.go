package catalog

import "context"

// DefaultCurrency is used when the request names no currency.
const DefaultCurrency = "EUR"

// Catalog language ids. The first entry is the fallback.
var langIDs = []string{"ua", "en"}

// NormalizeLang maps a requested language parameter onto a supported
// catalog language id. Membership is exact: anything that is not
// literally "ua" or "en" (including variants like "en-GB" or "EN")
// falls back to "ua".
func NormalizeLang(requested string) string {
	for _, id := range langIDs {
		if requested == id {
			return id
		}
	}
	return langIDs[0]
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListLanguages(ctx context.Context) ([]Language, error) {
	return s.repo.ListLanguages(ctx)
}

// ListProducts applies the currency default and language fallback before
// querying.
func (s *Service) ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error) {
	if filter.Currency == "" {
		filter.Currency = DefaultCurrency
	}
	filter.Lang = NormalizeLang(filter.Lang)
	return s.repo.ListProducts(ctx, filter)
}
