package repo

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/rogerio-castellano/rental-tracker/internal/models"
)

type SortKey string

const (
	SortByID    SortKey = "id"
	SortByName  SortKey = "name"
	SortByPrice SortKey = "price"
)

// ParseSortKey accepts the key names case-insensitively.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortByID, SortByName, SortByPrice:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
}

// SortBy reorders the catalog ascending on key. Products with equal keys keep
// their relative order.
func (r *InMemoryProductRepository) SortBy(key SortKey) error {
	var compare func(a, b models.Product) int
	switch key {
	case SortByID:
		compare = func(a, b models.Product) int { return cmp.Compare(a.ID, b.ID) }
	case SortByName:
		compare = func(a, b models.Product) int { return strings.Compare(a.Name, b.Name) }
	case SortByPrice:
		compare = func(a, b models.Product) int { return a.Price.Cmp(b.Price) }
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSortKey, key)
	}
	slices.SortStableFunc(r.products, compare)
	return nil
}
