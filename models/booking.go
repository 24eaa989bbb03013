// models/booking.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order/booking statuses. Pending is the only non-terminal status: owners
// move it to approved/rejected, customers to cancelled, and terminal
// statuses are never overwritten.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

// IsTerminalStatus reports whether a status can no longer change.
func IsTerminalStatus(status string) bool {
	switch status {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether from → to is a legal status change.
func CanTransition(from, to string) bool {
	if from != StatusPending && from != "" {
		return false
	}
	return IsTerminalStatus(to)
}

// HotelBooking lives in the hotelBookings collection. The customer id is
// stored under the legacy userId field name.
type HotelBooking struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	HotelID       string             `json:"hotelId" bson:"hotelId"`
	HotelName     string             `json:"hotelName,omitempty" bson:"hotelName,omitempty"`
	OwnerUID      string             `json:"ownerUid" bson:"ownerUid"`
	UserID        string             `json:"userId" bson:"userId"`
	UserName      string             `json:"userName,omitempty" bson:"userName,omitempty"`
	UserEmail     string             `json:"userEmail,omitempty" bson:"userEmail,omitempty"`
	Phone         string             `json:"phone,omitempty" bson:"phone,omitempty"`
	RoomCategory  string             `json:"roomCategory" bson:"roomCategory"`
	ACType        string             `json:"acType" bson:"acType"` // "AC" or "Non-AC"
	Guests        int                `json:"guests" bson:"guests"`
	CheckIn       string             `json:"checkIn" bson:"checkIn"`   // YYYY-MM-DD
	CheckOut      string             `json:"checkOut" bson:"checkOut"` // YYYY-MM-DD
	Nights        int                `json:"nights" bson:"nights"`
	PricePerNight float64            `json:"pricePerNight" bson:"pricePerNight"`
	TotalPrice    float64            `json:"totalPrice" bson:"totalPrice"`
	Status        string             `json:"status" bson:"status"`
	CheckInQR     string             `json:"checkInQR,omitempty" bson:"checkInQR,omitempty"` // data URL, set on approval
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// HotelBookingRequest is the customer booking payload. Price fields are
// recomputed from the stored hotel and never taken from the client.
type HotelBookingRequest struct {
	HotelID      string `json:"hotelId" validate:"required"`
	RoomCategory string `json:"roomCategory" validate:"required"`
	ACType       string `json:"acType"`
	Guests       int    `json:"guests" validate:"required,min=1"`
	CheckIn      string `json:"checkIn" validate:"required"`
	CheckOut     string `json:"checkOut" validate:"required"`
	Phone        string `json:"phone,omitempty"`
}

func (r HotelBookingRequest) WantsAC() bool {
	return r.ACType == "AC"
}

// CarBooking lives in the bookings collection.
type CarBooking struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CarID           string             `json:"carId" bson:"carId"`
	CarName         string             `json:"carName,omitempty" bson:"carName,omitempty"`
	OwnerUID        string             `json:"ownerUid" bson:"ownerUid"`
	UserUID         string             `json:"userUid" bson:"userUid"`
	UserName        string             `json:"userName,omitempty" bson:"userName,omitempty"`
	Phone           string             `json:"phone,omitempty" bson:"phone,omitempty"`
	VehicleCategory string             `json:"vehicleCategory" bson:"vehicleCategory"` // "2-Wheeler" or "4-Wheeler"
	TariffName      string             `json:"tariffName" bson:"tariffName"`
	ACType          string             `json:"acType,omitempty" bson:"acType,omitempty"`
	Passengers      int                `json:"passengers" bson:"passengers"`
	PickupDate      string             `json:"pickupDate" bson:"pickupDate"` // YYYY-MM-DD
	ReturnDate      string             `json:"returnDate" bson:"returnDate"` // YYYY-MM-DD
	TripDays        int                `json:"tripDays" bson:"tripDays"`
	PricePerDay     float64            `json:"pricePerDay" bson:"pricePerDay"`
	EstimatedRent   float64            `json:"estimatedRent" bson:"estimatedRent"`
	Status          string             `json:"status" bson:"status"`
	CheckInQR       string             `json:"checkInQR,omitempty" bson:"checkInQR,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// CarBookingRequest is the customer rental payload.
type CarBookingRequest struct {
	CarID           string `json:"carId" validate:"required"`
	VehicleCategory string `json:"vehicleCategory" validate:"required"`
	TariffName      string `json:"tariffName" validate:"required"`
	ACType          string `json:"acType,omitempty"`
	Passengers      int    `json:"passengers" validate:"required,min=1"`
	PickupDate      string `json:"pickupDate" validate:"required"`
	ReturnDate      string `json:"returnDate" validate:"required"`
	Phone           string `json:"phone,omitempty"`
}

func (r CarBookingRequest) WantsAC() bool {
	return r.ACType == "AC"
}

// BookingDateLayout is the wire format for all booking dates.
const BookingDateLayout = "2006-01-02"

// NightsBetween counts whole nights between two YYYY-MM-DD dates. Returns
// 0 when the range is empty, inverted or unparseable.
func NightsBetween(checkIn, checkOut string) int {
	in, err1 := time.Parse(BookingDateLayout, checkIn)
	out, err2 := time.Parse(BookingDateLayout, checkOut)
	if err1 != nil || err2 != nil {
		return 0
	}
	n := int(out.Sub(in).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// TripDaysBetween counts rental days inclusive of both endpoints, with a
// floor of one day. Returns 0 on unparseable or inverted input.
func TripDaysBetween(pickup, ret string) int {
	from, err1 := time.Parse(BookingDateLayout, pickup)
	to, err2 := time.Parse(BookingDateLayout, ret)
	if err1 != nil || err2 != nil || to.Before(from) {
		return 0
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// StatusUpdateRequest is the owner approve/reject payload.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note,omitempty"`
}
