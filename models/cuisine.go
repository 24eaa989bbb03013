// models/cuisine.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is one dish with optional veg and non-veg variants.
type MenuItem struct {
	Name        string   `json:"name" bson:"name"`
	VegPrice    *float64 `json:"vegPrice,omitempty" bson:"vegPrice,omitempty"`
	NonVegPrice *float64 `json:"nonVegPrice,omitempty" bson:"nonVegPrice,omitempty"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
}

type Cuisine struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	RestaurantName string             `json:"restaurantName,omitempty" bson:"restaurantName,omitempty"`
	Name           string             `json:"name,omitempty" bson:"name,omitempty"` // legacy alias of restaurantName
	Owner          string             `json:"owner,omitempty" bson:"owner,omitempty"`
	OwnerUID       string             `json:"ownerUid" bson:"ownerUid"`
	OwnerPhone     string             `json:"ownerPhone,omitempty" bson:"ownerPhone,omitempty"`
	City           string             `json:"city,omitempty" bson:"city,omitempty"`
	Category       string             `json:"category,omitempty" bson:"category,omitempty"`
	Address        string             `json:"address,omitempty" bson:"address,omitempty"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	MenuItems      []MenuItem         `json:"menuItems,omitempty" bson:"menuItems,omitempty"`
	Price          *float64           `json:"price,omitempty" bson:"price,omitempty"` // legacy flat price
	Media          []MediaRef         `json:"media,omitempty" bson:"media,omitempty"`
	LegacyMedia    `json:"-" bson:",inline"`
	ImageUrls      []string  `json:"imageUrls" bson:"-"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// DisplayName prefers restaurantName over the legacy name field.
func (c Cuisine) DisplayName() string {
	if c.RestaurantName != "" {
		return c.RestaurantName
	}
	return c.Name
}

// BasePrice is the cheapest priced variant across the menu, falling back to
// the legacy flat price. 0 when nothing is priced.
func (c Cuisine) BasePrice() float64 {
	min := 0.0
	take := func(p *float64) {
		if p != nil && *p > 0 && (min == 0 || *p < min) {
			min = *p
		}
	}
	for _, item := range c.MenuItems {
		take(item.VegPrice)
		take(item.NonVegPrice)
	}
	if min == 0 {
		take(c.Price)
	}
	return min
}

// SupportsVeg reports whether any dish has a veg variant.
func (c Cuisine) SupportsVeg() bool {
	for _, item := range c.MenuItems {
		if item.VegPrice != nil && *item.VegPrice > 0 {
			return true
		}
	}
	return false
}

func (c Cuisine) SupportsNonVeg() bool {
	for _, item := range c.MenuItems {
		if item.NonVegPrice != nil && *item.NonVegPrice > 0 {
			return true
		}
	}
	return false
}

// MenuItemByName finds a dish by exact name.
func (c Cuisine) MenuItemByName(name string) (MenuItem, bool) {
	for _, item := range c.MenuItems {
		if item.Name == name {
			return item, true
		}
	}
	return MenuItem{}, false
}

// VariantPrice returns the price of one dish variant ("veg" or anything
// else meaning non-veg), 0 when that variant is unpriced.
func (m MenuItem) VariantPrice(variant string) float64 {
	p := m.NonVegPrice
	if variant == "veg" {
		p = m.VegPrice
	}
	if p == nil || *p <= 0 {
		return 0
	}
	return *p
}
