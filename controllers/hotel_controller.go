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

// HotelController handles the hotel catalog
type HotelController struct {
	db    *mongo.Client
	cloud *services.CloudinaryService
}

// NewHotelController creates a new hotel controller
func NewHotelController(db *mongo.Client, cloud *services.CloudinaryService) *HotelController {
	return &HotelController{db: db, cloud: cloud}
}

// GetHotels returns the filtered, sorted hotel catalog. The whole
// collection is loaded and filtered in memory; catalogs are small and the
// filter surface is too irregular for server-side queries.
func (hc *HotelController) GetHotels(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.GetCollection(hc.db, "hotels").Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch hotels: " + err.Error(),
		})
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode hotels: " + err.Error(),
		})
	}

	city := c.QueryParam("city")
	room := c.QueryParam("room")
	maxPrice, _ := utils.ParseFloat(c.QueryParam("maxPrice"))
	wantAC := c.QueryParam("ac") == "true"
	wantPower := c.QueryParam("powerBackup") == "true"
	wantFreeCancel := c.QueryParam("freeCancellation") == "true"

	filtered := make([]models.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if !utils.MatchesQuery(city, h.City) {
			continue
		}
		if room != "" && !hotelHasRoom(h, room) {
			continue
		}
		if !utils.WithinMaxPrice(h.MinRoomPrice(), maxPrice) {
			continue
		}
		if wantAC && !h.HasAC {
			continue
		}
		if wantPower && !h.PowerBackup {
			continue
		}
		if wantFreeCancel && !h.FreeCancellation {
			continue
		}
		h.ImageUrls = utils.HotelImageURLs(h)
		filtered = append(filtered, h)
	}

	utils.SortListings(filtered, c.QueryParam("sort"),
		func(h models.Hotel) float64 { return h.MinRoomPrice() },
		func(h models.Hotel) string { return h.HotelName },
		func(h models.Hotel) time.Time { return h.CreatedAt },
	)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Hotels retrieved",
		Data:    filtered,
	})
}

func hotelHasRoom(h models.Hotel, query string) bool {
	for _, r := range h.Rooms {
		if strings.Contains(strings.ToLower(r.Name), strings.ToLower(query)) {
			return true
		}
	}
	return false
}

// GetHotel returns one hotel by id.
func (hc *HotelController) GetHotel(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid hotel ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var hotel models.Hotel
	err = config.GetCollection(hc.db, "hotels").FindOne(ctx, bson.M{"_id": id}).Decode(&hotel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Hotel not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch hotel: " + err.Error(),
		})
	}

	hotel.ImageUrls = utils.HotelImageURLs(hotel)
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Hotel retrieved",
		Data:    hotel,
	})
}

// CreateHotel creates a hotel listing owned by the caller. Multipart form:
// text fields plus an images[] gallery and a rooms JSON array.
func (hc *HotelController) CreateHotel(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	user, err := utils.GetUserFromToken(c, hc.db)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "User not found",
		})
	}

	hotelName := strings.TrimSpace(c.FormValue("hotelName"))
	if hotelName == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "hotelName is required",
		})
	}

	var rooms []models.HotelRoom
	if roomsJSON := c.FormValue("rooms"); roomsJSON != "" {
		if err := json.Unmarshal([]byte(roomsJSON), &rooms); err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid rooms payload: " + err.Error(),
			})
		}
	}

	// Upload failure aborts the create; no listing with a partial gallery
	media, err := uploadFormImages(hc.cloud, c, "images")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Image upload failed: " + err.Error(),
		})
	}
	if video, err := uploadFormVideo(hc.cloud, c, "video"); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Video upload failed: " + err.Error(),
		})
	} else if video != nil {
		media = append(media, *video)
	}

	now := time.Now()
	hotel := models.Hotel{
		ID:               primitive.NewObjectID(),
		HotelName:        hotelName,
		City:             c.FormValue("city"),
		Address:          c.FormValue("address"),
		Description:      c.FormValue("description"),
		Phone:            c.FormValue("phone"),
		OwnerUID:         claims.UserID,
		OwnerName:        user.DisplayName,
		HasAC:            c.FormValue("hasAC") == "true",
		PowerBackup:      c.FormValue("powerBackup") == "true",
		FreeCancellation: c.FormValue("freeCancellation") == "true",
		Rooms:            rooms,
		Media:            media,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := config.GetCollection(hc.db, "hotels").InsertOne(ctx, hotel); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create hotel: " + err.Error(),
		})
	}

	hotel.ImageUrls = utils.HotelImageURLs(hotel)
	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Hotel created",
		Data:    hotel,
	})
}

// DeleteHotel removes a listing. Owner or admin only; chats and bookings
// referencing the listing are left in place.
func (hc *HotelController) DeleteHotel(c echo.Context) error {
	return deleteListing(hc.db, c, "hotels", "Hotel")
}

// deleteListing is the shared owner-or-admin delete across all four
// catalog collections.
func deleteListing(db *mongo.Client, c echo.Context, collection, label string) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid " + label + " ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := config.GetCollection(db, collection)

	var listing struct {
		OwnerUID string `bson:"ownerUid"`
	}
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&listing); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: label + " not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch " + label + ": " + err.Error(),
		})
	}

	if listing.OwnerUID != claims.UserID && claims.Role != models.RoleAdmin {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Only the owner or an admin can delete this listing",
		})
	}

	if _, err := coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete " + label + ": " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: label + " deleted",
	})
}
