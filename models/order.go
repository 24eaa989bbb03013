// models/order.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order types stored on the orderType discriminator.
const (
	OrderTypeCuisine  = "cuisine"
	OrderTypeShopping = "shopping"
)

// Order covers cuisine and shopping purchases. Cuisine orders live in the
// orders collection, shopping orders in shoppingOrders; legacy shopping
// documents in orders carry orderType "shopping" and are still read.
type Order struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderType   string             `json:"orderType" bson:"orderType"`
	ListingID   string             `json:"listingId" bson:"listingId"`
	ListingName string             `json:"listingName,omitempty" bson:"listingName,omitempty"`
	OwnerUID    string             `json:"ownerUid" bson:"ownerUid"`
	UserUID     string             `json:"userUid" bson:"userUid"`
	UserName    string             `json:"userName,omitempty" bson:"userName,omitempty"`
	Phone       string             `json:"phone,omitempty" bson:"phone,omitempty"`
	ItemName    string             `json:"itemName" bson:"itemName"`
	Variant     string             `json:"variant,omitempty" bson:"variant,omitempty"` // cuisine: "veg" or "nonVeg"
	Quantity    int                `json:"quantity" bson:"quantity"`
	UnitPrice   float64            `json:"unitPrice" bson:"unitPrice"`
	TotalPrice  float64            `json:"totalPrice" bson:"totalPrice"`
	Address     string             `json:"address,omitempty" bson:"address,omitempty"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// CuisineOrderRequest is the customer dish-order payload.
type CuisineOrderRequest struct {
	CuisineID string `json:"cuisineId" validate:"required"`
	ItemName  string `json:"itemName" validate:"required"`
	Variant   string `json:"variant" validate:"required"` // "veg" or "nonVeg"
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

// ShoppingOrderRequest is the customer product-order payload.
type ShoppingOrderRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

// OrderSummary is one row of the merged my-orders / owner-orders feed.
// Kind tells the client which collection the row came from.
type OrderSummary struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"` // "hotel", "car", "cuisine", "shopping"
	ListingID   string    `json:"listingId"`
	ListingName string    `json:"listingName,omitempty"`
	OwnerUID    string    `json:"ownerUid"`
	UserUID     string    `json:"userUid"`
	UserName    string    `json:"userName,omitempty"`
	Detail      string    `json:"detail,omitempty"`
	TotalPrice  float64   `json:"totalPrice"`
	Status      string    `json:"status"`
	CheckInQR   string    `json:"checkInQR,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
