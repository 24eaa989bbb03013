// utils/catalog_utils.go
package utils

import (
	"sort"
	"strings"
	"time"
)

// Catalog sort keys.
const (
	SortLatest    = "latest"
	SortPriceLow  = "priceLow"
	SortPriceHigh = "priceHigh"
	SortName      = "name"
)

// MatchesQuery reports whether any field contains the query,
// case-insensitively. An empty query matches everything.
func MatchesQuery(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// WithinMaxPrice applies a price ceiling. A ceiling of zero disables the
// filter, and an unpriced item (price 0) is never excluded.
func WithinMaxPrice(price, max float64) bool {
	if max <= 0 || price <= 0 {
		return true
	}
	return price <= max
}

// SortListings orders a catalog snapshot in place. One missing-price
// convention for every domain: an unpriced item (price 0) sorts as +inf
// ascending and as 0 descending, so it sinks to the bottom either way.
// Listings without createdAt count as oldest under "latest".
func SortListings[T any](items []T, key string, price func(T) float64, name func(T) string, createdAt func(T) time.Time) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(items, func(i, j int) bool {
			pi, pj := price(items[i]), price(items[j])
			if pi <= 0 {
				return false
			}
			if pj <= 0 {
				return true
			}
			return pi < pj
		})
	case SortPriceHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return price(items[i]) > price(items[j])
		})
	case SortName:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(name(items[i])) < strings.ToLower(name(items[j]))
		})
	default: // latest
		sort.SliceStable(items, func(i, j int) bool {
			return createdAt(items[i]).After(createdAt(items[j]))
		})
	}
}
