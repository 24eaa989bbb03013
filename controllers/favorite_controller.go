package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ssamratd571/localexplorer/config"
	"github.com/ssamratd571/localexplorer/middleware"
	"github.com/ssamratd571/localexplorer/models"
)

// FavoriteController handles per-user favorite sets
type FavoriteController struct {
	db *mongo.Client
}

// NewFavoriteController creates a new favorite controller
func NewFavoriteController(db *mongo.Client) *FavoriteController {
	return &FavoriteController{db: db}
}

// loadFavorites returns the user's favorites document, or an empty one when
// none exists yet.
func loadFavorites(ctx context.Context, db *mongo.Client, userUID string) (models.Favorites, error) {
	var fav models.Favorites
	err := config.GetCollection(db, "favorites").FindOne(ctx, bson.M{"userUid": userUID}).Decode(&fav)
	if err == mongo.ErrNoDocuments {
		return models.Favorites{
			UserUID:  userUID,
			Hotels:   []string{},
			Cars:     []string{},
			Cuisine:  []string{},
			Shopping: []string{},
		}, nil
	}
	if err != nil {
		return fav, err
	}
	// Normalize nil sets so clients always see arrays
	if fav.Hotels == nil {
		fav.Hotels = []string{}
	}
	if fav.Cars == nil {
		fav.Cars = []string{}
	}
	if fav.Cuisine == nil {
		fav.Cuisine = []string{}
	}
	if fav.Shopping == nil {
		fav.Shopping = []string{}
	}
	return fav, nil
}

// GetFavorites returns all four domain sets for the caller.
func (fc *FavoriteController) GetFavorites(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fav, err := loadFavorites(ctx, fc.db, claims.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch favorites: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Favorites retrieved",
		Data:    fav,
	})
}

// Toggle flips one listing id in the named domain set. Toggling twice is a
// no-op; the response reports the resulting membership.
func (fc *FavoriteController) Toggle(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	domain := c.Param("domain")
	listingID := c.Param("id")
	if listingID == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Missing listing ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fav, err := loadFavorites(ctx, fc.db, claims.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch favorites: " + err.Error(),
		})
	}

	ids, ok := fav.DomainIDs(domain)
	if !ok {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Unknown favorite domain: " + domain,
		})
	}

	updated, nowFavorite := models.Toggle(ids, listingID)

	update := bson.M{"$set": bson.M{
		domain:      updated,
		"userUid":   claims.UserID,
		"updatedAt": time.Now(),
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := config.GetCollection(fc.db, "favorites").UpdateOne(ctx, bson.M{"userUid": claims.UserID}, update, opts); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update favorites: " + err.Error(),
		})
	}

	message := "Removed from favorites"
	if nowFavorite {
		message = "Added to favorites"
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: message,
		Data: map[string]interface{}{
			"domain":     domain,
			"listingId":  listingID,
			"isFavorite": nowFavorite,
			"ids":        updated,
		},
	})
}
