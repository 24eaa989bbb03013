package models

import (
	"reflect"
	"testing"
)

func TestToggle(t *testing.T) {
	ids := []string{"a", "b"}

	added, present := Toggle(ids, "c")
	if !present {
		t.Error("adding a new id should report present=true")
	}
	if !reflect.DeepEqual(added, []string{"a", "b", "c"}) {
		t.Errorf("after add: %v", added)
	}

	removed, present := Toggle(added, "c")
	if present {
		t.Error("toggling the same id again should report present=false")
	}
	if !reflect.DeepEqual(removed, []string{"a", "b"}) {
		t.Errorf("after remove: %v", removed)
	}

	// Original slice is never mutated
	if !reflect.DeepEqual(ids, []string{"a", "b"}) {
		t.Errorf("input mutated: %v", ids)
	}
}

func TestToggleDeduplicates(t *testing.T) {
	// A corrupt set with duplicates collapses on removal
	out, present := Toggle([]string{"x", "x", "y"}, "x")
	if present {
		t.Error("removal should report present=false")
	}
	if !reflect.DeepEqual(out, []string{"y"}) {
		t.Errorf("after removing duplicated id: %v", out)
	}
}

func TestDomainIDs(t *testing.T) {
	f := Favorites{
		Hotels:   []string{"h1"},
		Cars:     []string{"c1"},
		Cuisine:  []string{"k1"},
		Shopping: []string{"s1"},
	}

	cases := []struct {
		domain string
		want   string
	}{
		{FavoriteDomainHotels, "h1"},
		{FavoriteDomainCars, "c1"},
		{FavoriteDomainCuisine, "k1"},
		{FavoriteDomainShopping, "s1"},
	}
	for _, c := range cases {
		ids, ok := f.DomainIDs(c.domain)
		if !ok || len(ids) != 1 || ids[0] != c.want {
			t.Errorf("DomainIDs(%q) = %v, %v", c.domain, ids, ok)
		}
	}

	if _, ok := f.DomainIDs("boats"); ok {
		t.Error("unknown domain should not resolve")
	}
}
