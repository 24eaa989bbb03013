package utils

import (
	"testing"
	"time"
)

func TestMatchesQuery(t *testing.T) {
	cases := []struct {
		query  string
		fields []string
		want   bool
	}{
		{"", []string{"anything"}, true},
		{"  ", []string{"anything"}, true},
		{"lake", []string{"Lakeview Hotel", "Shimla"}, true},
		{"SHIMLA", []string{"Lakeview Hotel", "Shimla"}, true},
		{"beach", []string{"Lakeview Hotel", "Shimla"}, false},
		{"view h", []string{"Lakeview Hotel"}, true},
	}

	for _, c := range cases {
		if got := MatchesQuery(c.query, c.fields...); got != c.want {
			t.Errorf("MatchesQuery(%q, %v) = %v, want %v", c.query, c.fields, got, c.want)
		}
	}
}

func TestWithinMaxPrice(t *testing.T) {
	cases := []struct {
		price, max float64
		want       bool
	}{
		{100, 0, true},   // no ceiling
		{100, 150, true},
		{100, 100, true},
		{100, 99, false},
		{0, 50, true}, // unpriced is never excluded
		{0, 0, true},
	}

	for _, c := range cases {
		if got := WithinMaxPrice(c.price, c.max); got != c.want {
			t.Errorf("WithinMaxPrice(%v, %v) = %v, want %v", c.price, c.max, got, c.want)
		}
	}
}

type fakeListing struct {
	name    string
	price   float64
	created time.Time
}

func sortFakes(items []fakeListing, key string) {
	SortListings(items, key,
		func(l fakeListing) float64 { return l.price },
		func(l fakeListing) string { return l.name },
		func(l fakeListing) time.Time { return l.created },
	)
}

func names(items []fakeListing) []string {
	out := make([]string, len(items))
	for i, l := range items {
		out[i] = l.name
	}
	return out
}

func TestSortListingsPriceLow(t *testing.T) {
	items := []fakeListing{
		{name: "unpriced", price: 0},
		{name: "cheap", price: 100},
		{name: "mid", price: 500},
	}
	sortFakes(items, SortPriceLow)

	got := names(items)
	want := []string{"cheap", "mid", "unpriced"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("priceLow order = %v, want %v", got, want)
		}
	}
}

func TestSortListingsPriceHigh(t *testing.T) {
	items := []fakeListing{
		{name: "unpriced", price: 0},
		{name: "mid", price: 500},
		{name: "cheap", price: 100},
	}
	sortFakes(items, SortPriceHigh)

	got := names(items)
	want := []string{"mid", "cheap", "unpriced"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("priceHigh order = %v, want %v", got, want)
		}
	}
}

func TestSortListingsName(t *testing.T) {
	items := []fakeListing{
		{name: "zeta"},
		{name: "Alpha"},
		{name: "beta"},
	}
	sortFakes(items, SortName)

	got := names(items)
	want := []string{"Alpha", "beta", "zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("name order = %v, want %v", got, want)
		}
	}
}

func TestSortListingsLatestDefault(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []fakeListing{
		{name: "old", created: base},
		{name: "new", created: base.Add(48 * time.Hour)},
		{name: "undated"}, // zero time sorts last
	}
	sortFakes(items, "")

	got := names(items)
	want := []string{"new", "old", "undated"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("latest order = %v, want %v", got, want)
		}
	}
}
