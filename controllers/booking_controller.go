package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssamratd571/localexplorer/config"
	"github.com/ssamratd571/localexplorer/middleware"
	"github.com/ssamratd571/localexplorer/models"
	"github.com/ssamratd571/localexplorer/utils"
	"github.com/ssamratd571/localexplorer/websocket"
)

// BookingController handles hotel and car booking requests
type BookingController struct {
	db  *mongo.Client
	hub *websocket.Hub
}

// NewBookingController creates a new booking controller
func NewBookingController(db *mongo.Client, hub *websocket.Hub) *BookingController {
	return &BookingController{db: db, hub: hub}
}

// notifyOwnerNewOrder pushes a pending order/booking to its owner over the
// websocket and notification channels. Best-effort.
func notifyOwnerNewOrder(db *mongo.Client, hub *websocket.Hub, ownerUID, title, body string, data interface{}) {
	if ownerUID == "" {
		return
	}
	if id, err := primitive.ObjectIDFromHex(ownerUID); err == nil {
		if err := hub.NotifyNewOrder(id, data); err != nil {
			log.Printf("Websocket order push to %s skipped: %v", ownerUID, err)
		}
	}
	utils.NotifyUserByUID(db, ownerUID, title, body, models.NotificationNewOrder, nil)
}

// resolveCarTariff finds the day rate and seat limit for a rental request.
// An available tariff can still have an unpriced cell (a 4-wheeler with no
// Non-AC rate, say); it cannot be booked at rate 0.
func resolveCarTariff(car models.Car, category, tariffName string, ac bool) (float64, int, error) {
	var dayRate float64
	var maxSeats int

	switch category {
	case "2-Wheeler":
		tariff, ok := car.TwoWheelerTariffByName(tariffName)
		if !ok {
			return 0, 0, fmt.Errorf("Tariff not available: %s", tariffName)
		}
		dayRate = tariff.DayRate()
		maxSeats = tariff.MaxSeats
	case "4-Wheeler":
		tariff, ok := car.FourWheelerTariffByName(tariffName)
		if !ok {
			return 0, 0, fmt.Errorf("Tariff not available: %s", tariffName)
		}
		dayRate = tariff.DayRate(ac)
		maxSeats = tariff.MaxSeats
	default:
		return 0, 0, fmt.Errorf("vehicleCategory must be 2-Wheeler or 4-Wheeler")
	}

	if dayRate <= 0 {
		return 0, 0, fmt.Errorf("This tariff variant is not available")
	}
	return dayRate, maxSeats, nil
}

// CreateHotelBooking creates a pending hotel booking. The nightly rate and
// total are recomputed from the stored hotel; client-sent prices are
// ignored.
func (bc *BookingController) CreateHotelBooking(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	var req models.HotelBookingRequest
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

	nights := models.NightsBetween(req.CheckIn, req.CheckOut)
	if nights <= 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Check-out must be after check-in",
		})
	}

	hotelID, err := primitive.ObjectIDFromHex(req.HotelID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid hotel ID",
		})
	}

	user, err := utils.GetUserFromToken(c, bc.db)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "User not found",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var hotel models.Hotel
	err = config.GetCollection(bc.db, "hotels").FindOne(ctx, bson.M{"_id": hotelID}).Decode(&hotel)
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

	if _, ok := hotel.RoomByName(req.RoomCategory); !ok {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Unknown room category: " + req.RoomCategory,
		})
	}

	rate := hotel.NightlyRate(req.RoomCategory, req.WantsAC(), req.Guests)

	acType := "Non-AC"
	if req.WantsAC() {
		acType = "AC"
	}

	now := time.Now()
	booking := models.HotelBooking{
		ID:            primitive.NewObjectID(),
		HotelID:       req.HotelID,
		HotelName:     hotel.HotelName,
		OwnerUID:      hotel.OwnerUID,
		UserID:        claims.UserID,
		UserName:      user.DisplayName,
		UserEmail:     user.Email,
		Phone:         req.Phone,
		RoomCategory:  req.RoomCategory,
		ACType:        acType,
		Guests:        req.Guests,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Nights:        nights,
		PricePerNight: rate,
		TotalPrice:    rate * float64(nights),
		Status:        models.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := config.GetCollection(bc.db, "hotelBookings").InsertOne(ctx, booking); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create booking: " + err.Error(),
		})
	}

	notifyOwnerNewOrder(bc.db, bc.hub, hotel.OwnerUID,
		"New hotel booking",
		fmt.Sprintf("%s requested %s (%s, %d guests) %s to %s",
			user.DisplayName, req.RoomCategory, acType, req.Guests, req.CheckIn, req.CheckOut),
		booking)

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Booking request sent",
		Data:    booking,
	})
}

// CreateCarBooking creates a pending rental booking. The day rate comes from
// the named tariff; passenger count is capped by the tariff's seat limit.
func (bc *BookingController) CreateCarBooking(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	var req models.CarBookingRequest
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

	tripDays := models.TripDaysBetween(req.PickupDate, req.ReturnDate)
	if tripDays <= 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Return date must not be before the pickup date",
		})
	}

	carID, err := primitive.ObjectIDFromHex(req.CarID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid car ID",
		})
	}

	user, err := utils.GetUserFromToken(c, bc.db)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "User not found",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var car models.Car
	err = config.GetCollection(bc.db, "cars").FindOne(ctx, bson.M{"_id": carID}).Decode(&car)
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

	dayRate, maxSeats, err := resolveCarTariff(car, req.VehicleCategory, req.TariffName, req.WantsAC())
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if maxSeats > 0 && req.Passengers > maxSeats {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("This tariff seats at most %d passengers", maxSeats),
		})
	}

	now := time.Now()
	booking := models.CarBooking{
		ID:              primitive.NewObjectID(),
		CarID:           req.CarID,
		CarName:         car.CarName,
		OwnerUID:        car.OwnerUID,
		UserUID:         claims.UserID,
		UserName:        user.DisplayName,
		Phone:           req.Phone,
		VehicleCategory: req.VehicleCategory,
		TariffName:      req.TariffName,
		ACType:          req.ACType,
		Passengers:      req.Passengers,
		PickupDate:      req.PickupDate,
		ReturnDate:      req.ReturnDate,
		TripDays:        tripDays,
		PricePerDay:     dayRate,
		EstimatedRent:   dayRate * float64(tripDays),
		Status:          models.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := config.GetCollection(bc.db, "bookings").InsertOne(ctx, booking); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create booking: " + err.Error(),
		})
	}

	notifyOwnerNewOrder(bc.db, bc.hub, car.OwnerUID,
		"New rental request",
		fmt.Sprintf("%s requested %s (%s) %s to %s",
			user.DisplayName, car.CarName, req.TariffName, req.PickupDate, req.ReturnDate),
		booking)

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Booking request sent",
		Data:    booking,
	})
}
