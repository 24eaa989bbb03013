package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssamratd571/localexplorer/config"
	"github.com/ssamratd571/localexplorer/middleware"
	"github.com/ssamratd571/localexplorer/models"
	"github.com/ssamratd571/localexplorer/services"
	"github.com/ssamratd571/localexplorer/utils"
)

// CuisineController handles the restaurant catalog
type CuisineController struct {
	db    *mongo.Client
	cloud *services.CloudinaryService
}

// NewCuisineController creates a new cuisine controller
func NewCuisineController(db *mongo.Client, cloud *services.CloudinaryService) *CuisineController {
	return &CuisineController{db: db, cloud: cloud}
}

// GetCuisine returns the filtered, sorted restaurant catalog.
func (cc *CuisineController) GetCuisine(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.GetCollection(cc.db, "cuisine").Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch cuisine listings: " + err.Error(),
		})
	}
	defer cursor.Close(ctx)

	var listings []models.Cuisine
	if err := cursor.All(ctx, &listings); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode cuisine listings: " + err.Error(),
		})
	}

	query := c.QueryParam("q")
	category := c.QueryParam("category")
	wantVeg := c.QueryParam("veg") == "true"
	wantNonVeg := c.QueryParam("nonVeg") == "true"
	maxPrice, _ := utils.ParseFloat(c.QueryParam("maxPrice"))

	filtered := make([]models.Cuisine, 0, len(listings))
	for _, cu := range listings {
		if !cuisineMatchesQuery(cu, query) {
			continue
		}
		if category != "" && !strings.EqualFold(cu.Category, category) {
			continue
		}
		if wantVeg && !cu.SupportsVeg() {
			continue
		}
		if wantNonVeg && !cu.SupportsNonVeg() {
			continue
		}
		if !utils.WithinMaxPrice(cu.BasePrice(), maxPrice) {
			continue
		}
		cu.ImageUrls = utils.ExtractListingImages(cu.Media, cu.LegacyMedia)
		filtered = append(filtered, cu)
	}

	utils.SortListings(filtered, c.QueryParam("sort"),
		func(cu models.Cuisine) float64 { return cu.BasePrice() },
		func(cu models.Cuisine) string { return cu.DisplayName() },
		func(cu models.Cuisine) time.Time { return cu.CreatedAt },
	)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Cuisine listings retrieved",
		Data:    filtered,
	})
}

// cuisineMatchesQuery searches restaurant name, owner and dish names.
func cuisineMatchesQuery(cu models.Cuisine, query string) bool {
	fields := []string{cu.RestaurantName, cu.Name, cu.Owner}
	for _, item := range cu.MenuItems {
		fields = append(fields, item.Name)
	}
	return utils.MatchesQuery(query, fields...)
}

// GetCuisineListing returns one restaurant by id.
func (cc *CuisineController) GetCuisineListing(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid cuisine ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cu models.Cuisine
	err = config.GetCollection(cc.db, "cuisine").FindOne(ctx, bson.M{"_id": id}).Decode(&cu)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Cuisine listing not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch cuisine listing: " + err.Error(),
		})
	}

	cu.ImageUrls = utils.ExtractListingImages(cu.Media, cu.LegacyMedia)
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Cuisine listing retrieved",
		Data:    cu,
	})
}

// CreateCuisine creates a restaurant listing owned by the caller.
func (cc *CuisineController) CreateCuisine(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	user, err := utils.GetUserFromToken(c, cc.db)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "User not found",
		})
	}

	restaurantName := strings.TrimSpace(c.FormValue("restaurantName"))
	if restaurantName == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "restaurantName is required",
		})
	}

	var menuItems []models.MenuItem
	if raw := c.FormValue("menuItems"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &menuItems); err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid menuItems payload: " + err.Error(),
			})
		}
	}

	media, err := uploadFormImages(cc.cloud, c, "images")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Image upload failed: " + err.Error(),
		})
	}

	now := time.Now()
	cu := models.Cuisine{
		ID:             primitive.NewObjectID(),
		RestaurantName: restaurantName,
		Owner:          user.DisplayName,
		OwnerUID:       claims.UserID,
		OwnerPhone:     c.FormValue("ownerPhone"),
		City:           c.FormValue("city"),
		Category:       c.FormValue("category"),
		Address:        c.FormValue("address"),
		Description:    c.FormValue("description"),
		MenuItems:      menuItems,
		Media:          media,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := config.GetCollection(cc.db, "cuisine").InsertOne(ctx, cu); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create cuisine listing: " + err.Error(),
		})
	}

	cu.ImageUrls = utils.ExtractListingImages(cu.Media, cu.LegacyMedia)
	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Cuisine listing created",
		Data:    cu,
	})
}

// DeleteCuisine removes a listing (owner or admin).
func (cc *CuisineController) DeleteCuisine(c echo.Context) error {
	return deleteListing(cc.db, c, "cuisine", "Cuisine listing")
}
