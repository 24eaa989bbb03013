package models

import "testing"

func testCar() Car {
	return Car{
		CarName:             "City Rides",
		SupportsTwoWheeler:  true,
		SupportsFourWheeler: true,
		TwoWheelerTariffs: []TwoWheelerTariff{
			{Name: "Scooter", Available: true, PricePerDay: fp(400), MaxSeats: 2},
			{Name: "Cruiser", Available: false, PricePerDay: fp(800), MaxSeats: 2},
		},
		FourWheelerTariffs: []FourWheelerTariff{
			{Name: "Sedan", Available: true, ACPricePerDay: fp(2000), NonACPricePerDay: fp(1600), MaxSeats: 4},
			{Name: "SUV", Available: true, ACPricePerDay: fp(2800), MaxSeats: 7},
		},
	}
}

func TestCarOffers(t *testing.T) {
	car := testCar()
	if !car.OffersTwoWheelers() || !car.OffersFourWheelers() {
		t.Error("supports* flags should enable both categories")
	}

	legacy := Car{VehicleType: "2-Wheeler"}
	if !legacy.OffersTwoWheelers() {
		t.Error("legacy vehicleType should enable 2-wheelers")
	}
	if legacy.OffersFourWheelers() {
		t.Error("legacy 2-Wheeler doc should not offer 4-wheelers")
	}
}

func TestCarBasePrice(t *testing.T) {
	car := testCar()
	// The unavailable Cruiser (800) must not count; the cheapest
	// available rate is the Scooter at 400.
	if got := car.BasePrice(); got != 400 {
		t.Errorf("BasePrice() = %v, want 400", got)
	}

	if got := (Car{}).BasePrice(); got != 0 {
		t.Errorf("BasePrice() on unpriced car = %v, want 0", got)
	}
}

func TestTariffLookupSkipsUnavailable(t *testing.T) {
	car := testCar()

	if _, ok := car.TwoWheelerTariffByName("Scooter"); !ok {
		t.Error("available tariff not found")
	}
	if _, ok := car.TwoWheelerTariffByName("Cruiser"); ok {
		t.Error("unavailable tariff should not be bookable")
	}
	if _, ok := car.FourWheelerTariffByName("Hatchback"); ok {
		t.Error("unknown tariff should not be found")
	}
}

func TestFourWheelerDayRate(t *testing.T) {
	car := testCar()
	sedan, _ := car.FourWheelerTariffByName("Sedan")

	if got := sedan.DayRate(true); got != 2000 {
		t.Errorf("Sedan AC rate = %v, want 2000", got)
	}
	if got := sedan.DayRate(false); got != 1600 {
		t.Errorf("Sedan Non-AC rate = %v, want 1600", got)
	}

	suv, _ := car.FourWheelerTariffByName("SUV")
	if got := suv.DayRate(false); got != 0 {
		t.Errorf("SUV without a Non-AC rate = %v, want 0", got)
	}
}
