// models/car.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TwoWheelerTariff is a rentable two-wheeler class with one flat day rate.
type TwoWheelerTariff struct {
	Name        string   `json:"name" bson:"name"`
	Available   bool     `json:"available" bson:"available"`
	PricePerDay *float64 `json:"pricePerDay,omitempty" bson:"pricePerDay,omitempty"`
	MaxSeats    int      `json:"maxSeats,omitempty" bson:"maxSeats,omitempty"`
}

// FourWheelerTariff is a rentable four-wheeler class with AC and Non-AC
// day rates.
type FourWheelerTariff struct {
	Name             string   `json:"name" bson:"name"`
	Available        bool     `json:"available" bson:"available"`
	ACPricePerDay    *float64 `json:"acPricePerDay,omitempty" bson:"acPricePerDay,omitempty"`
	NonACPricePerDay *float64 `json:"nonAcPricePerDay,omitempty" bson:"nonAcPricePerDay,omitempty"`
	MaxSeats         int      `json:"maxSeats,omitempty" bson:"maxSeats,omitempty"`
}

type Car struct {
	ID                  primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	CarName             string              `json:"carName" bson:"carName"`
	Brand               string              `json:"brand,omitempty" bson:"brand,omitempty"`
	Model               string              `json:"model,omitempty" bson:"model,omitempty"`
	OrgName             string              `json:"orgName,omitempty" bson:"orgName,omitempty"`
	City                string              `json:"city,omitempty" bson:"city,omitempty"`
	VehicleType         string              `json:"vehicleType,omitempty" bson:"vehicleType,omitempty"` // legacy: "2-Wheeler" / "4-Wheeler"
	SupportsTwoWheeler  bool                `json:"supportsTwoWheeler" bson:"supportsTwoWheeler"`
	SupportsFourWheeler bool                `json:"supportsFourWheeler" bson:"supportsFourWheeler"`
	TwoWheelerTariffs   []TwoWheelerTariff  `json:"twoWheelerTariffs,omitempty" bson:"twoWheelerTariffs,omitempty"`
	FourWheelerTariffs  []FourWheelerTariff `json:"fourWheelerTariffs,omitempty" bson:"fourWheelerTariffs,omitempty"`
	HasAC               bool                `json:"hasAC" bson:"hasAC"`
	FreeCancellation    bool                `json:"freeCancellation" bson:"freeCancellation"`
	OwnerUID            string              `json:"ownerUid" bson:"ownerUid"`
	OwnerName           string              `json:"ownerName,omitempty" bson:"ownerName,omitempty"`
	OwnerPhone          string              `json:"ownerPhone,omitempty" bson:"ownerPhone,omitempty"`
	Description         string              `json:"description,omitempty" bson:"description,omitempty"`
	Media               []MediaRef          `json:"media,omitempty" bson:"media,omitempty"`
	LegacyMedia         `json:"-" bson:",inline"`
	ImageUrls           []string  `json:"imageUrls" bson:"-"`
	CreatedAt           time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// OffersTwoWheelers reports 2-wheeler availability, falling back to the
// legacy vehicleType field for documents that predate the supports* flags.
func (c Car) OffersTwoWheelers() bool {
	return c.SupportsTwoWheeler || c.VehicleType == "2-Wheeler"
}

func (c Car) OffersFourWheelers() bool {
	return c.SupportsFourWheeler || c.VehicleType == "4-Wheeler"
}

// BasePrice is the lowest positive day rate across all available tariffs,
// 0 when nothing is priced.
func (c Car) BasePrice() float64 {
	min := 0.0
	take := func(p *float64) {
		if p != nil && *p > 0 && (min == 0 || *p < min) {
			min = *p
		}
	}
	for _, t := range c.TwoWheelerTariffs {
		if t.Available {
			take(t.PricePerDay)
		}
	}
	for _, t := range c.FourWheelerTariffs {
		if t.Available {
			take(t.ACPricePerDay)
			take(t.NonACPricePerDay)
		}
	}
	return min
}

// TwoWheelerTariffByName finds an available 2-wheeler tariff.
func (c Car) TwoWheelerTariffByName(name string) (TwoWheelerTariff, bool) {
	for _, t := range c.TwoWheelerTariffs {
		if t.Name == name && t.Available {
			return t, true
		}
	}
	return TwoWheelerTariff{}, false
}

// FourWheelerTariffByName finds an available 4-wheeler tariff.
func (c Car) FourWheelerTariffByName(name string) (FourWheelerTariff, bool) {
	for _, t := range c.FourWheelerTariffs {
		if t.Name == name && t.Available {
			return t, true
		}
	}
	return FourWheelerTariff{}, false
}

// DayRate returns the per-day rate for one tariff cell.
func (t FourWheelerTariff) DayRate(ac bool) float64 {
	p := t.NonACPricePerDay
	if ac {
		p = t.ACPricePerDay
	}
	if p == nil || *p <= 0 {
		return 0
	}
	return *p
}

func (t TwoWheelerTariff) DayRate() float64 {
	if t.PricePerDay == nil || *t.PricePerDay <= 0 {
		return 0
	}
	return *t.PricePerDay
}
