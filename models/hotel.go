// models/hotel.go
package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HotelRoom holds the per-room price matrix: one price per (AC|Non-AC,
// guest count 1..4) cell. Missing cells are nil.
type HotelRoom struct {
	Name        string      `json:"name" bson:"name"`
	ACPrice1    *float64    `json:"acPrice1,omitempty" bson:"acPrice1,omitempty"`
	ACPrice2    *float64    `json:"acPrice2,omitempty" bson:"acPrice2,omitempty"`
	ACPrice3    *float64    `json:"acPrice3,omitempty" bson:"acPrice3,omitempty"`
	ACPrice4    *float64    `json:"acPrice4,omitempty" bson:"acPrice4,omitempty"`
	NonACPrice1 *float64    `json:"nonAcPrice1,omitempty" bson:"nonAcPrice1,omitempty"`
	NonACPrice2 *float64    `json:"nonAcPrice2,omitempty" bson:"nonAcPrice2,omitempty"`
	NonACPrice3 *float64    `json:"nonAcPrice3,omitempty" bson:"nonAcPrice3,omitempty"`
	NonACPrice4 *float64    `json:"nonAcPrice4,omitempty" bson:"nonAcPrice4,omitempty"`
	ImageURLs   interface{} `json:"-" bson:"imageURLs,omitempty"` // legacy room gallery
	Media       []MediaRef  `json:"media,omitempty" bson:"media,omitempty"`
}

type Hotel struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	HotelName        string             `json:"hotelName" bson:"hotelName"`
	City             string             `json:"city" bson:"city"`
	Address          string             `json:"address,omitempty" bson:"address,omitempty"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	Phone            string             `json:"phone,omitempty" bson:"phone,omitempty"`
	OwnerUID         string             `json:"ownerUid" bson:"ownerUid"`
	OwnerName        string             `json:"ownerName,omitempty" bson:"ownerName,omitempty"`
	HasAC            bool               `json:"hasAC" bson:"hasAC"`
	PowerBackup      bool               `json:"powerBackup" bson:"powerBackup"`
	FreeCancellation bool               `json:"freeCancellation" bson:"freeCancellation"`
	Rooms            []HotelRoom        `json:"rooms" bson:"rooms"`
	CategoryImages   interface{}        `json:"-" bson:"categoryImages,omitempty"` // legacy
	Media            []MediaRef         `json:"media,omitempty" bson:"media,omitempty"`
	LegacyMedia      `json:"-" bson:",inline"`
	ImageUrls        []string  `json:"imageUrls" bson:"-"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// matrix returns the price cells for one AC mode, indexed by guests-1.
func (r HotelRoom) matrix(ac bool) [4]*float64 {
	if ac {
		return [4]*float64{r.ACPrice1, r.ACPrice2, r.ACPrice3, r.ACPrice4}
	}
	return [4]*float64{r.NonACPrice1, r.NonACPrice2, r.NonACPrice3, r.NonACPrice4}
}

// PriceForGuests returns the matrix cell for (ac, guests), clamping guests
// to 1..4. Returns 0 when the cell is missing or non-positive.
func (r HotelRoom) PriceForGuests(ac bool, guests int) float64 {
	if guests < 1 {
		guests = 1
	}
	if guests > 4 {
		guests = 4
	}
	p := r.matrix(ac)[guests-1]
	if p == nil || *p <= 0 {
		return 0
	}
	return *p
}

// MinPrice is the lowest positive price anywhere in the room's matrix.
func (r HotelRoom) MinPrice() float64 {
	min := 0.0
	for _, ac := range []bool{true, false} {
		for _, p := range r.matrix(ac) {
			if p != nil && *p > 0 && (min == 0 || *p < min) {
				min = *p
			}
		}
	}
	return min
}

// RoomByName finds a room by name, case-insensitively.
func (h Hotel) RoomByName(name string) (HotelRoom, bool) {
	for _, r := range h.Rooms {
		if strings.EqualFold(strings.TrimSpace(r.Name), strings.TrimSpace(name)) {
			return r, true
		}
	}
	return HotelRoom{}, false
}

// MinRoomPrice is the lowest positive price across all rooms, 0 when the
// hotel has no priced room at all.
func (h Hotel) MinRoomPrice() float64 {
	min := 0.0
	for _, r := range h.Rooms {
		if p := r.MinPrice(); p > 0 && (min == 0 || p < min) {
			min = p
		}
	}
	return min
}

// NightlyRate resolves the per-night price for a booking request. Falls back
// to the cheapest cell in the hotel when the exact (room, AC, guests) cell is
// missing.
func (h Hotel) NightlyRate(roomCategory string, ac bool, guests int) float64 {
	if room, ok := h.RoomByName(roomCategory); ok {
		if p := room.PriceForGuests(ac, guests); p > 0 {
			return p
		}
	}
	return h.MinRoomPrice()
}
