package controllers

import (
	"testing"

	"github.com/ssamratd571/localexplorer/models"
)

func TestListingCollectionFor(t *testing.T) {
	cases := []struct {
		domain string
		coll   string
		ok     bool
	}{
		{models.ChatDomainHotel, "hotels", true},
		{models.ChatDomainCar, "cars", true},
		{models.ChatDomainCuisine, "cuisine", true},
		{models.ChatDomainShopping, "shopping", true},
		{"boats", "", false},
	}

	for _, c := range cases {
		coll, ok := listingCollectionFor(c.domain)
		if coll != c.coll || ok != c.ok {
			t.Errorf("listingCollectionFor(%q) = %q, %v", c.domain, coll, ok)
		}
	}
}
