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

// CarController handles the transport catalog
type CarController struct {
	db    *mongo.Client
	cloud *services.CloudinaryService
}

// NewCarController creates a new car controller
func NewCarController(db *mongo.Client, cloud *services.CloudinaryService) *CarController {
	return &CarController{db: db, cloud: cloud}
}

// GetCars returns the filtered, sorted transport catalog.
func (cc *CarController) GetCars(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.GetCollection(cc.db, "cars").Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch cars: " + err.Error(),
		})
	}
	defer cursor.Close(ctx)

	var cars []models.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode cars: " + err.Error(),
		})
	}

	vehicleType := c.QueryParam("type") // "2-Wheeler" or "4-Wheeler"
	query := c.QueryParam("q")
	maxPrice, _ := utils.ParseFloat(c.QueryParam("maxPrice"))
	wantAC := c.QueryParam("ac") == "true"
	wantFreeCancel := c.QueryParam("freeCancellation") == "true"

	filtered := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		switch vehicleType {
		case "2-Wheeler":
			if !car.OffersTwoWheelers() {
				continue
			}
		case "4-Wheeler":
			if !car.OffersFourWheelers() {
				continue
			}
		}
		if !utils.MatchesQuery(query, car.CarName, car.Brand, car.Model, car.OrgName, car.City) {
			continue
		}
		// A missing base price never excludes a listing
		if !utils.WithinMaxPrice(car.BasePrice(), maxPrice) {
			continue
		}
		if wantAC && !car.HasAC {
			continue
		}
		if wantFreeCancel && !car.FreeCancellation {
			continue
		}
		car.ImageUrls = utils.ExtractListingImages(car.Media, car.LegacyMedia)
		filtered = append(filtered, car)
	}

	utils.SortListings(filtered, c.QueryParam("sort"),
		func(car models.Car) float64 { return car.BasePrice() },
		func(car models.Car) string { return car.CarName },
		func(car models.Car) time.Time { return car.CreatedAt },
	)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Cars retrieved",
		Data:    filtered,
	})
}

// GetCar returns one listing by id.
func (cc *CarController) GetCar(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid car ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var car models.Car
	err = config.GetCollection(cc.db, "cars").FindOne(ctx, bson.M{"_id": id}).Decode(&car)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Car not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch car: " + err.Error(),
		})
	}

	car.ImageUrls = utils.ExtractListingImages(car.Media, car.LegacyMedia)
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Car retrieved",
		Data:    car,
	})
}

// CreateCar creates a transport listing owned by the caller.
func (cc *CarController) CreateCar(c echo.Context) error {
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

	carName := strings.TrimSpace(c.FormValue("carName"))
	if carName == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "carName is required",
		})
	}

	var twoWheelerTariffs []models.TwoWheelerTariff
	if raw := c.FormValue("twoWheelerTariffs"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &twoWheelerTariffs); err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid twoWheelerTariffs payload: " + err.Error(),
			})
		}
	}
	var fourWheelerTariffs []models.FourWheelerTariff
	if raw := c.FormValue("fourWheelerTariffs"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &fourWheelerTariffs); err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid fourWheelerTariffs payload: " + err.Error(),
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
	if video, err := uploadFormVideo(cc.cloud, c, "video"); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Video upload failed: " + err.Error(),
		})
	} else if video != nil {
		media = append(media, *video)
	}

	now := time.Now()
	car := models.Car{
		ID:                  primitive.NewObjectID(),
		CarName:             carName,
		Brand:               c.FormValue("brand"),
		Model:               c.FormValue("model"),
		OrgName:             c.FormValue("orgName"),
		City:                c.FormValue("city"),
		SupportsTwoWheeler:  len(twoWheelerTariffs) > 0,
		SupportsFourWheeler: len(fourWheelerTariffs) > 0,
		TwoWheelerTariffs:   twoWheelerTariffs,
		FourWheelerTariffs:  fourWheelerTariffs,
		HasAC:               c.FormValue("hasAC") == "true",
		FreeCancellation:    c.FormValue("freeCancellation") == "true",
		OwnerUID:            claims.UserID,
		OwnerName:           user.DisplayName,
		OwnerPhone:          c.FormValue("ownerPhone"),
		Description:         c.FormValue("description"),
		Media:               media,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := config.GetCollection(cc.db, "cars").InsertOne(ctx, car); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create car: " + err.Error(),
		})
	}

	car.ImageUrls = utils.ExtractListingImages(car.Media, car.LegacyMedia)
	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Car created",
		Data:    car,
	})
}

// DeleteCar removes a listing (owner or admin).
func (cc *CarController) DeleteCar(c echo.Context) error {
	return deleteListing(cc.db, c, "cars", "Car")
}
