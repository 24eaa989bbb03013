// utils/auth.go
package utils

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssamratd571/localexplorer/config"
	"github.com/ssamratd571/localexplorer/middleware"
	"github.com/ssamratd571/localexplorer/models"
)

// ValidateTokenResponse represents the response for token validation
type ValidateTokenResponse struct {
	Valid     bool         `json:"valid"`
	User      *models.User `json:"user,omitempty"`
	Message   string       `json:"message,omitempty"`
	ExpiresAt *time.Time   `json:"expiresAt,omitempty"`
}

// ValidateToken validates a JWT token and returns user information if valid
func ValidateToken(tokenString string, db *mongo.Client) (*ValidateTokenResponse, error) {
	if tokenString == "" {
		return &ValidateTokenResponse{
			Valid:   false,
			Message: "No token provided",
		}, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, &middleware.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(middleware.GetJWTSecret()), nil
	})

	if err != nil {
		return &ValidateTokenResponse{
			Valid:   false,
			Message: "Invalid token: " + err.Error(),
		}, nil
	}

	if !token.Valid {
		return &ValidateTokenResponse{
			Valid:   false,
			Message: "Token is not valid",
		}, nil
	}

	claims, ok := token.Claims.(*middleware.JwtCustomClaims)
	if !ok {
		return &ValidateTokenResponse{
			Valid:   false,
			Message: "Invalid token claims",
		}, nil
	}

	if claims.ExpiresAt > 0 && time.Now().Unix() > claims.ExpiresAt {
		return &ValidateTokenResponse{
			Valid:   false,
			Message: "Token has expired",
		}, nil
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return &ValidateTokenResponse{
			Valid:   false,
			Message: "Invalid user ID format",
		}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	usersCollection := config.GetCollection(db, "users")
	var user models.User
	err = usersCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &ValidateTokenResponse{
				Valid:   false,
				Message: "User not found",
			}, nil
		}
		return &ValidateTokenResponse{
			Valid:   false,
			Message: "Error retrieving user: " + err.Error(),
		}, nil
	}

	if !user.IsActive {
		return &ValidateTokenResponse{
			Valid:   false,
			Message: "User account is inactive",
		}, nil
	}

	user.Password = ""

	var expiresAt *time.Time
	if claims.ExpiresAt > 0 {
		expTime := time.Unix(claims.ExpiresAt, 0)
		expiresAt = &expTime
	}

	return &ValidateTokenResponse{
		Valid:     true,
		User:      &user,
		Message:   "Token is valid",
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateTokenFromHeader extracts token from Authorization header and validates it
func ValidateTokenFromHeader(authHeader string, db *mongo.Client) (*ValidateTokenResponse, error) {
	if authHeader == "" {
		return &ValidateTokenResponse{
			Valid:   false,
			Message: "No authorization header provided",
		}, nil
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return &ValidateTokenResponse{
			Valid:   false,
			Message: "Invalid authorization header format",
		}, nil
	}

	tokenString := authHeader[7:]
	return ValidateToken(tokenString, db)
}

// GetUserFromToken extracts the user from the JWT token and retrieves the full user object from the database
func GetUserFromToken(c echo.Context, db *mongo.Client) (*models.User, error) {
	userToken := c.Get("user")
	if userToken == nil {
		return nil, errors.New("no token found")
	}

	token, ok := userToken.(*jwt.Token)
	if !ok {
		return nil, errors.New("invalid token type")
	}

	claims, ok := token.Claims.(*middleware.JwtCustomClaims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, errors.New("invalid user ID format")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	usersCollection := config.GetCollection(db, "users")
	var user models.User
	err = usersCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("user not found")
		}
		return nil, errors.New("error retrieving user")
	}

	user.Password = ""

	return &user, nil
}
