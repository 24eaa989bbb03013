package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/lestrrat-go/jwx/jwk"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssamratd571/localexplorer/config"
	"github.com/ssamratd571/localexplorer/middleware"
	"github.com/ssamratd571/localexplorer/models"
)

const googleCertsURL = "https://www.googleapis.com/oauth2/v3/certs"

// GoogleAuthService handles Google sign-in: ID-token verification against
// Google's JWKS, then user upsert and JWT issuance.
type GoogleAuthService struct {
	DB *mongo.Client
}

// NewGoogleAuthService creates a new Google auth service
func NewGoogleAuthService(db *mongo.Client) *GoogleAuthService {
	return &GoogleAuthService{
		DB: db,
	}
}

// googleClaims is the subset of the verified ID token we consume.
type googleClaims struct {
	Email   string
	Subject string
	Name    string
	Picture string
}

// AuthenticateUser verifies the ID token, upserts the user and returns the
// login payload.
func (s *GoogleAuthService) AuthenticateUser(idToken, fcmToken string) (*models.LoginResponse, error) {
	claims, err := s.verifyIDToken(idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify Google token: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(s.DB, "users")

	var user models.User
	err = collection.FindOne(ctx, bson.M{"googleUID": claims.Subject}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		err = collection.FindOne(ctx, bson.M{"email": claims.Email}).Decode(&user)
	}

	now := time.Now()
	switch {
	case err == mongo.ErrNoDocuments:
		user = models.User{
			ID:             primitive.NewObjectID(),
			Email:          claims.Email,
			DisplayName:    claims.Name,
			Role:           models.RoleUser,
			GoogleUID:      claims.Subject,
			ProfilePic:     claims.Picture,
			FCMToken:       fcmToken,
			IsActive:       true,
			LastActivityAt: now,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if _, err := collection.InsertOne(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("database error: %w", err)
	default:
		update := bson.M{"$set": bson.M{
			"googleUID": claims.Subject,
			"updatedAt": now,
		}}
		if claims.Picture != "" {
			update["$set"].(bson.M)["profilePic"] = claims.Picture
		}
		if fcmToken != "" {
			update["$set"].(bson.M)["fcmToken"] = fcmToken
		}
		if _, err := collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	token, refreshToken, err := middleware.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	user.Password = ""
	return &models.LoginResponse{
		User:         user,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

// verifyIDToken checks the token signature against Google's published keys
// and extracts the identity claims.
func (s *GoogleAuthService) verifyIDToken(idToken string) (*googleClaims, error) {
	parts := strings.Split(idToken, ".")
	if len(parts) < 2 {
		return nil, errors.New("invalid token format")
	}

	headerBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, errors.New("invalid JWT header")
	}

	var header struct {
		Kid string `json:"kid"`
		Alg string `json:"alg"`
	}
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, errors.New("invalid JWT header JSON")
	}

	jwkSet, err := jwk.Fetch(context.Background(), googleCertsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google public keys: %w", err)
	}

	key, found := jwkSet.LookupKeyID(header.Kid)
	if !found {
		return nil, errors.New("Google public key not found")
	}

	var pubkey interface{}
	if err := key.Raw(&pubkey); err != nil {
		return nil, fmt.Errorf("failed to parse Google public key: %w", err)
	}

	parsedToken, err := jwt.Parse(idToken, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != header.Alg {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return pubkey, nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, errors.New("invalid or expired Google token")
	}

	mapClaims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse token claims")
	}

	email, _ := mapClaims["email"].(string)
	sub, _ := mapClaims["sub"].(string)
	name, _ := mapClaims["name"].(string)
	picture, _ := mapClaims["picture"].(string)
	if email == "" || sub == "" {
		return nil, errors.New("missing email or sub in token")
	}

	return &googleClaims{
		Email:   email,
		Subject: sub,
		Name:    name,
		Picture: picture,
	}, nil
}
