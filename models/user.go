// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User model
type User struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email          string             `json:"email" bson:"email"`
	Password       string             `json:"-" bson:"password"`
	DisplayName    string             `json:"displayName" bson:"displayName"`
	Role           string             `json:"role" bson:"role"` // "user" or "admin"
	Phone          string             `json:"phone,omitempty" bson:"phone,omitempty"`
	ProfilePic     string             `json:"profilePic,omitempty" bson:"profilePic,omitempty"`
	GoogleUID      string             `json:"googleUID,omitempty" bson:"googleUID,omitempty"`
	FCMToken       string             `json:"-" bson:"fcmToken,omitempty"`
	IsActive       bool               `json:"isActive" bson:"isActive"`
	LastActivityAt time.Time          `json:"lastActivityAt" bson:"lastActivityAt"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Response is the standard API envelope.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// LoginResponse is the payload returned by login/signup/google endpoints.
type LoginResponse struct {
	User         User   `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}
