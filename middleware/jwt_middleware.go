// middleware/jwt_middleware.go
package middleware

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssamratd571/localexplorer/config"
)

// JwtCustomClaims for JWT token
type JwtCustomClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// Valid implements the Claims interface for backward compatibility with Echo's JWT middleware
func (c JwtCustomClaims) Valid() error {
	// Check if token is expired (skip check if ExpiresAt is 0)
	if c.ExpiresAt > 0 && time.Now().Unix() > c.ExpiresAt {
		return errors.New("token is expired")
	}

	// Check if token is used before valid time
	if c.NotBefore > 0 && time.Now().Unix() < c.NotBefore {
		return errors.New("token used before valid")
	}

	return nil
}

const blacklistKeyPrefix = "token:blacklist:"

// In-memory fallback when Redis is unavailable. Guarded by blacklistMu:
// request goroutines write on logout while the cleanup loop range-deletes.
var (
	blacklistMu    sync.Mutex
	tokenBlacklist = make(map[string]time.Time)
)

// CleanupBlacklist periodically removes expired tokens from the in-memory
// fallback blacklist. Redis entries expire on their own.
func CleanupBlacklist() {
	for {
		time.Sleep(1 * time.Hour)
		purgeExpiredTokens(time.Now())
	}
}

func purgeExpiredTokens(now time.Time) {
	blacklistMu.Lock()
	defer blacklistMu.Unlock()
	for token, expiry := range tokenBlacklist {
		if now.After(expiry) {
			delete(tokenBlacklist, token)
		}
	}
}

// BlacklistToken adds a token to the blacklist until expiry. Tokens without
// an expiry are blacklisted for 30 days.
func BlacklistToken(token string, expiry time.Time) {
	ttl := time.Until(expiry)
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
		expiry = time.Now().Add(ttl)
	}

	if rdb := config.GetRedisClient(); rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Set(ctx, blacklistKeyPrefix+token, "1", ttl).Err(); err == nil {
			return
		}
	}

	blacklistMu.Lock()
	tokenBlacklist[token] = expiry
	blacklistMu.Unlock()
}

// IsTokenBlacklisted checks if a token is blacklisted
func IsTokenBlacklisted(token string) bool {
	if rdb := config.GetRedisClient(); rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if n, err := rdb.Exists(ctx, blacklistKeyPrefix+token).Result(); err == nil && n > 0 {
			return true
		}
	}

	blacklistMu.Lock()
	_, exists := tokenBlacklist[token]
	blacklistMu.Unlock()
	return exists
}

// GetJWTSecret returns the JWT secret from environment variables
func GetJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		panic("JWT_SECRET environment variable is required")
	}
	return secret
}

// JWTMiddleware returns a configured JWT middleware
func JWTMiddleware() echo.MiddlewareFunc {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Printf("Warning: JWT_SECRET environment variable is not set")
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return echo.NewHTTPError(echo.ErrUnauthorized.Code, "JWT configuration error")
			}
		}
	}

	return middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(secret),
		Claims:     &JwtCustomClaims{},
		SuccessHandler: func(c echo.Context) {
			user := c.Get("user").(*jwt.Token)

			if IsTokenBlacklisted(user.Raw) {
				c.Error(echo.NewHTTPError(echo.ErrUnauthorized.Code, "Token has been invalidated"))
				return
			}

			claims := user.Claims.(*JwtCustomClaims)

			// Store claims in context for easy access
			c.Set("userId", claims.UserID)
			c.Set("role", claims.Role)
			c.Set("email", claims.Email)
		},
		ErrorHandler: func(err error) error {
			log.Printf("JWT middleware error: %v", err)
			return echo.NewHTTPError(echo.ErrUnauthorized.Code, "Please provide valid credentials")
		},
	})
}

// GenerateJWT generates new JWT token with refresh token
func GenerateJWT(userID, email, role string) (string, string, error) {
	claims := &JwtCustomClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Refresh token lives longer than the access token
	refreshClaims := &JwtCustomClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(30 * 24 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", "", errors.New("JWT_SECRET environment variable is required")
	}

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	refreshTokenString, err := refreshToken.SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	return tokenString, refreshTokenString, nil
}

// GetUserFromToken extracts user information from JWT token
func GetUserFromToken(c echo.Context) *JwtCustomClaims {
	user := c.Get("user")
	if user == nil {
		return nil
	}

	token, ok := user.(*jwt.Token)
	if !ok {
		return nil
	}

	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok {
		return nil
	}

	return claims
}

// ExtractRole safely extracts the user role from the context
func ExtractRole(c echo.Context) string {
	if role, ok := c.Get("role").(string); ok && role != "" {
		return role
	}

	claims := GetUserFromToken(c)
	if claims != nil {
		return claims.Role
	}

	return ""
}

func GetUserIDFromToken(c echo.Context) string {
	// First try to get from context keys if already extracted
	if userID, ok := c.Get("userId").(string); ok && userID != "" {
		return userID
	}

	// If not found in context, try extracting from token claims
	claims := GetUserFromToken(c)
	if claims != nil {
		return claims.UserID
	}

	// If token doesn't exist or is invalid, return empty string
	return ""
}

// ActivityTracker middleware updates user's last activity timestamp
func ActivityTracker(db *mongo.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Skip for unauthenticated routes
			userID := GetUserIDFromToken(c)
			if userID == "" {
				return next(c)
			}

			objID, err := primitive.ObjectIDFromHex(userID)
			if err != nil {
				return next(c)
			}

			// Update lastActivityAt and isActive in background
			go func() {
				collection := config.GetCollection(db, "users")
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				now := time.Now()
				filter := bson.M{"_id": objID}
				update := bson.M{"$set": bson.M{
					"lastActivityAt": now,
					"isActive":       true,
					"updatedAt":      now,
				}}

				if _, err := collection.UpdateOne(ctx, filter, update); err != nil {
					log.Printf("Failed to update activity for %s: %v", userID, err)
				}
			}()

			return next(c)
		}
	}
}

// MarkInactiveUsers marks users without recent activity as inactive.
func MarkInactiveUsers(db *mongo.Client, inactiveThreshold time.Duration) {
	collection := config.GetCollection(db, "users")
	ctx := context.Background()

	cutoffTime := time.Now().Add(-inactiveThreshold)
	filter := bson.M{
		"isActive":       true,
		"lastActivityAt": bson.M{"$lt": cutoffTime},
	}

	update := bson.M{"$set": bson.M{"isActive": false}}

	if _, err := collection.UpdateMany(ctx, filter, update); err != nil {
		log.Printf("Failed to mark inactive users: %v", err)
	}
}
