package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/ssamratd571/localexplorer/config"
	"github.com/ssamratd571/localexplorer/middleware"
	"github.com/ssamratd571/localexplorer/models"
	"github.com/ssamratd571/localexplorer/services"
	"github.com/ssamratd571/localexplorer/utils"
)

// AuthController handles registration, login and session endpoints
type AuthController struct {
	db     *mongo.Client
	google *services.GoogleAuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(db *mongo.Client) *AuthController {
	return &AuthController{
		db:     db,
		google: services.NewGoogleAuthService(db),
	}
}

// adminRegistrationCode is matched against the optional adminCode field on
// signup; a match grants the admin role.
func adminRegistrationCode() string {
	return os.Getenv("ADMIN_REGISTRATION_CODE")
}

// Register creates a new account. The role is decided server-side from the
// admin registration code.
func (ac *AuthController) Register(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Validation failed: " + err.Error(),
		})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid email format",
		})
	}
	phone, err := utils.SanitizePhone(req.Phone)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid phone number",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(ac.db, "users")

	count, err := collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Database error: " + err.Error(),
		})
	}
	if count > 0 {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Email already registered",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to hash password",
		})
	}

	role := models.RoleUser
	if code := adminRegistrationCode(); code != "" && req.AdminCode == code {
		role = models.RoleAdmin
	}

	now := time.Now()
	user := models.User{
		ID:             primitive.NewObjectID(),
		Email:          email,
		Password:       string(hashed),
		DisplayName:    utils.SanitizeInput(req.DisplayName),
		Role:           role,
		Phone:          phone,
		IsActive:       true,
		LastActivityAt: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := collection.InsertOne(ctx, user); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create user: " + err.Error(),
		})
	}

	token, refreshToken, err := middleware.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate token",
		})
	}

	user.Password = ""
	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Registration successful",
		Data: models.LoginResponse{
			User:         user,
			Token:        token,
			RefreshToken: refreshToken,
		},
	})
}

// Login authenticates with email/password.
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Validation failed: " + err.Error(),
		})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid email or password",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(ac.db, "users")

	var user models.User
	err = collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusUnauthorized, models.Response{
				Status:  http.StatusUnauthorized,
				Message: "Invalid email or password",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Database error: " + err.Error(),
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid email or password",
		})
	}

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"isActive":       true,
		"lastActivityAt": now,
		"updatedAt":      now,
	}}
	if req.FCMToken != "" {
		update["$set"].(bson.M)["fcmToken"] = req.FCMToken
	}
	if _, err := collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update); err != nil {
		log.Printf("Failed to update login state for %s: %v", user.ID.Hex(), err)
	}

	token, refreshToken, err := middleware.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate token",
		})
	}

	user.Password = ""
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Login successful",
		Data: models.LoginResponse{
			User:         user,
			Token:        token,
			RefreshToken: refreshToken,
		},
	})
}

// GoogleSignIn verifies a Google ID token and signs the user in.
func (ac *AuthController) GoogleSignIn(c echo.Context) error {
	var req models.GoogleSignInRequest
	if err := c.Bind(&req); err != nil || req.IDToken == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Missing idToken",
		})
	}

	result, err := ac.google.AuthenticateUser(req.IDToken, req.FCMToken)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Authentication failed: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Google sign-in successful",
		Data:    result,
	})
}

// Logout blacklists the current token.
func (ac *AuthController) Logout(c echo.Context) error {
	userToken, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	expiry := time.Now().Add(24 * time.Hour)
	if claims, ok := userToken.Claims.(*middleware.JwtCustomClaims); ok && claims.ExpiresAt > 0 {
		expiry = time.Unix(claims.ExpiresAt, 0)
	}
	middleware.BlacklistToken(userToken.Raw, expiry)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Logged out",
	})
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (ac *AuthController) RefreshToken(c echo.Context) error {
	var req models.RefreshRequest
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Missing refresh token",
		})
	}

	claims, err := parseRefreshToken(req.RefreshToken)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid refresh token",
		})
	}

	if middleware.IsTokenBlacklisted(req.RefreshToken) {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Refresh token has been invalidated",
		})
	}

	token, refreshToken, err := middleware.GenerateJWT(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate token",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Token refreshed",
		Data: map[string]string{
			"token":        token,
			"refreshToken": refreshToken,
		},
	})
}

func parseRefreshToken(tokenString string) (*middleware.JwtCustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &middleware.JwtCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(middleware.GetJWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*middleware.JwtCustomClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// Me returns the authenticated user's profile.
func (ac *AuthController) Me(c echo.Context) error {
	user, err := utils.GetUserFromToken(c, ac.db)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "User profile retrieved",
		Data:    user,
	})
}

// ValidateSession checks a bearer token without requiring middleware.
func (ac *AuthController) ValidateSession(c echo.Context) error {
	result, err := utils.ValidateTokenFromHeader(c.Request().Header.Get("Authorization"), ac.db)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Validation error: " + err.Error(),
		})
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Token validated",
		Data:    result,
	})
}
