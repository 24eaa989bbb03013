package controllers

import (
	"testing"

	"github.com/ssamratd571/localexplorer/models"
)

func fp(v float64) *float64 { return &v }

func rentalCar() models.Car {
	return models.Car{
		CarName: "City Rides",
		TwoWheelerTariffs: []models.TwoWheelerTariff{
			{Name: "Scooter", Available: true, PricePerDay: fp(400), MaxSeats: 2},
			{Name: "Cruiser", Available: false, PricePerDay: fp(800)},
		},
		FourWheelerTariffs: []models.FourWheelerTariff{
			{Name: "Sedan", Available: true, ACPricePerDay: fp(2000), NonACPricePerDay: fp(1600), MaxSeats: 4},
			{Name: "SUV", Available: true, ACPricePerDay: fp(2800), MaxSeats: 7},
		},
	}
}

func TestResolveCarTariff(t *testing.T) {
	car := rentalCar()

	cases := []struct {
		name     string
		category string
		tariff   string
		ac       bool
		wantRate float64
		wantErr  bool
	}{
		{"two wheeler", "2-Wheeler", "Scooter", false, 400, false},
		{"four wheeler AC", "4-Wheeler", "Sedan", true, 2000, false},
		{"four wheeler non-AC", "4-Wheeler", "Sedan", false, 1600, false},
		{"unavailable tariff", "2-Wheeler", "Cruiser", false, 0, true},
		{"unknown tariff", "4-Wheeler", "Limo", true, 0, true},
		{"bad category", "Boat", "Scooter", false, 0, true},
	}

	for _, c := range cases {
		rate, _, err := resolveCarTariff(car, c.category, c.tariff, c.ac)
		if (err != nil) != c.wantErr || rate != c.wantRate {
			t.Errorf("%s: rate=%v err=%v, want rate=%v wantErr=%v", c.name, rate, err, c.wantRate, c.wantErr)
		}
	}
}

func TestResolveCarTariffRejectsUnpricedVariant(t *testing.T) {
	// The SUV is available but has no Non-AC rate; booking it Non-AC must
	// fail rather than proceed at a zero rent.
	car := rentalCar()

	if _, _, err := resolveCarTariff(car, "4-Wheeler", "SUV", false); err == nil {
		t.Error("unpriced Non-AC variant was accepted")
	}
	if rate, _, err := resolveCarTariff(car, "4-Wheeler", "SUV", true); err != nil || rate != 2800 {
		t.Errorf("priced AC variant: rate=%v err=%v", rate, err)
	}
}

func TestResolveCarTariffSeatLimit(t *testing.T) {
	_, seats, err := resolveCarTariff(rentalCar(), "4-Wheeler", "Sedan", true)
	if err != nil || seats != 4 {
		t.Errorf("seats=%d err=%v, want 4", seats, err)
	}
}
