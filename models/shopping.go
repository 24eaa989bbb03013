// models/shopping.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShoppingProduct is a flat product listing.
type ShoppingProduct struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Price       *float64           `json:"price,omitempty" bson:"price,omitempty"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	Stock       int                `json:"stock" bson:"stock"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	OwnerUID    string             `json:"ownerUid" bson:"ownerUid"`
	OwnerName   string             `json:"ownerName,omitempty" bson:"ownerName,omitempty"`
	OwnerPhone  string             `json:"ownerPhone,omitempty" bson:"ownerPhone,omitempty"`
	City        string             `json:"city,omitempty" bson:"city,omitempty"`
	Media       []MediaRef         `json:"media,omitempty" bson:"media,omitempty"`
	LegacyMedia `json:"-" bson:",inline"`
	ImageUrls   []string  `json:"imageUrls" bson:"-"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// UnitPrice is the product price, 0 when unpriced.
func (p ShoppingProduct) UnitPrice() float64 {
	if p.Price == nil || *p.Price <= 0 {
		return 0
	}
	return *p.Price
}
