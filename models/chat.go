// models/chat.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sender types on chat messages.
const (
	SenderUser  = "user"
	SenderOwner = "owner"
)

// Chat domains. Shopping threads live in the cuisine chat collection with
// Context set to "shopping" and a "shopping_"-prefixed conversation key.
const (
	ChatDomainHotel    = "hotel"
	ChatDomainCar      = "car"
	ChatDomainCuisine  = "cuisine"
	ChatDomainShopping = "shopping"
)

// ChatMessage is one message in a (listing, customer) conversation.
type ChatMessage struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ConversationKey string             `json:"conversationKey" bson:"conversationKey"`
	ListingID       string             `json:"listingId" bson:"listingId"`
	ListingName     string             `json:"listingName,omitempty" bson:"listingName,omitempty"`
	OwnerUID        string             `json:"ownerUid" bson:"ownerUid"`
	UserUID         string             `json:"userUid" bson:"userUid"`
	UserName        string             `json:"userName,omitempty" bson:"userName,omitempty"`
	SenderUID       string             `json:"senderUid" bson:"senderUid"`
	SenderType      string             `json:"senderType" bson:"senderType"` // "user" or "owner"
	Text            string             `json:"text" bson:"text"`
	Context         string             `json:"context,omitempty" bson:"context,omitempty"` // "shopping" for shopping threads
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}

// SendMessageRequest is the customer/owner send payload. The thread's owner
// is resolved from the listing document, never taken from the client.
type SendMessageRequest struct {
	ListingID   string `json:"listingId" validate:"required"`
	ListingName string `json:"listingName,omitempty"`
	UserUID     string `json:"userUid,omitempty"` // set by owners replying to a thread
	Text        string `json:"text" validate:"required"`
}

// ChatThread is one owner-inbox row: the latest state of a (listing,
// customer) conversation.
type ChatThread struct {
	ConversationKey string    `json:"conversationKey"`
	ListingID       string    `json:"listingId"`
	ListingName     string    `json:"listingName,omitempty"`
	UserUID         string    `json:"userUid"`
	UserName        string    `json:"userName,omitempty"`
	LastMessage     string    `json:"lastMessage"`
	LastSenderType  string    `json:"lastSenderType"`
	LastActivityAt  time.Time `json:"lastActivityAt"`
	MessageCount    int       `json:"messageCount"`
}
