// models/favorite.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorites is one document per user holding the per-domain id sets.
type Favorites struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserUID   string             `json:"userUid" bson:"userUid"`
	Hotels    []string           `json:"hotels" bson:"hotels"`
	Cars      []string           `json:"cars" bson:"cars"`
	Cuisine   []string           `json:"cuisine" bson:"cuisine"`
	Shopping  []string           `json:"shopping" bson:"shopping"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Favorite domains map one-to-one onto the document fields above.
const (
	FavoriteDomainHotels   = "hotels"
	FavoriteDomainCars     = "cars"
	FavoriteDomainCuisine  = "cuisine"
	FavoriteDomainShopping = "shopping"
)

// DomainIDs returns the id set for one domain.
func (f Favorites) DomainIDs(domain string) ([]string, bool) {
	switch domain {
	case FavoriteDomainHotels:
		return f.Hotels, true
	case FavoriteDomainCars:
		return f.Cars, true
	case FavoriteDomainCuisine:
		return f.Cuisine, true
	case FavoriteDomainShopping:
		return f.Shopping, true
	}
	return nil, false
}

// Toggle flips membership of id in the domain set and returns the new set
// plus whether the id is now present. The original slice is not mutated.
func Toggle(ids []string, id string) ([]string, bool) {
	out := make([]string, 0, len(ids)+1)
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if found {
		return out, false
	}
	return append(out, id), true
}
