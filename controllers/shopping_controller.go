package controllers

import (
	"context"
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

// ShoppingController handles the product catalog
type ShoppingController struct {
	db    *mongo.Client
	cloud *services.CloudinaryService
}

// NewShoppingController creates a new shopping controller
func NewShoppingController(db *mongo.Client, cloud *services.CloudinaryService) *ShoppingController {
	return &ShoppingController{db: db, cloud: cloud}
}

// GetProducts returns the filtered, sorted product catalog.
func (sc *ShoppingController) GetProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.GetCollection(sc.db, "shopping").Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch products: " + err.Error(),
		})
	}
	defer cursor.Close(ctx)

	var products []models.ShoppingProduct
	if err := cursor.All(ctx, &products); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode products: " + err.Error(),
		})
	}

	query := c.QueryParam("q")
	category := c.QueryParam("category")
	maxPrice, _ := utils.ParseFloat(c.QueryParam("maxPrice"))

	filtered := make([]models.ShoppingProduct, 0, len(products))
	for _, p := range products {
		if !utils.MatchesQuery(query, p.Name, p.OwnerName) {
			continue
		}
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if !utils.WithinMaxPrice(p.UnitPrice(), maxPrice) {
			continue
		}
		p.ImageUrls = utils.ExtractListingImages(p.Media, p.LegacyMedia)
		filtered = append(filtered, p)
	}

	utils.SortListings(filtered, c.QueryParam("sort"),
		func(p models.ShoppingProduct) float64 { return p.UnitPrice() },
		func(p models.ShoppingProduct) string { return p.Name },
		func(p models.ShoppingProduct) time.Time { return p.CreatedAt },
	)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Products retrieved",
		Data:    filtered,
	})
}

// GetProduct returns one product by id.
func (sc *ShoppingController) GetProduct(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid product ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.ShoppingProduct
	err = config.GetCollection(sc.db, "shopping").FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Product not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch product: " + err.Error(),
		})
	}

	product.ImageUrls = utils.ExtractListingImages(product.Media, product.LegacyMedia)
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Product retrieved",
		Data:    product,
	})
}

// CreateProduct creates a product listing owned by the caller.
func (sc *ShoppingController) CreateProduct(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	user, err := utils.GetUserFromToken(c, sc.db)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "User not found",
		})
	}

	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "name is required",
		})
	}

	var price *float64
	if v, err := utils.ParseFloat(c.FormValue("price")); err == nil && v > 0 {
		price = &v
	}
	stock := 0
	if v, err := utils.ParseFloat(c.FormValue("stock")); err == nil && v > 0 {
		stock = int(v)
	}

	media, err := uploadFormImages(sc.cloud, c, "images")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Image upload failed: " + err.Error(),
		})
	}

	now := time.Now()
	product := models.ShoppingProduct{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Price:       price,
		Category:    c.FormValue("category"),
		Stock:       stock,
		Description: c.FormValue("description"),
		OwnerUID:    claims.UserID,
		OwnerName:   user.DisplayName,
		OwnerPhone:  c.FormValue("ownerPhone"),
		City:        c.FormValue("city"),
		Media:       media,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := config.GetCollection(sc.db, "shopping").InsertOne(ctx, product); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create product: " + err.Error(),
		})
	}

	product.ImageUrls = utils.ExtractListingImages(product.Media, product.LegacyMedia)
	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Product created",
		Data:    product,
	})
}

// DeleteProduct removes a listing (owner or admin).
func (sc *ShoppingController) DeleteProduct(c echo.Context) error {
	return deleteListing(sc.db, c, "shopping", "Product")
}
