package models

import "testing"

func testCuisine() Cuisine {
	return Cuisine{
		RestaurantName: "Spice Garden",
		MenuItems: []MenuItem{
			{Name: "Biryani", VegPrice: fp(180), NonVegPrice: fp(240)},
			{Name: "Thali", VegPrice: fp(150)},
			{Name: "Grill Platter", NonVegPrice: fp(320)},
		},
	}
}

func TestCuisineDisplayName(t *testing.T) {
	if got := testCuisine().DisplayName(); got != "Spice Garden" {
		t.Errorf("DisplayName() = %q, want Spice Garden", got)
	}
	legacy := Cuisine{Name: "Old Diner"}
	if got := legacy.DisplayName(); got != "Old Diner" {
		t.Errorf("DisplayName() legacy = %q, want Old Diner", got)
	}
}

func TestCuisineBasePrice(t *testing.T) {
	if got := testCuisine().BasePrice(); got != 150 {
		t.Errorf("BasePrice() = %v, want 150", got)
	}

	// Legacy flat price only counts when no menu item is priced
	legacy := Cuisine{Price: fp(99)}
	if got := legacy.BasePrice(); got != 99 {
		t.Errorf("BasePrice() legacy = %v, want 99", got)
	}

	if got := (Cuisine{}).BasePrice(); got != 0 {
		t.Errorf("BasePrice() unpriced = %v, want 0", got)
	}
}

func TestCuisineDietFlags(t *testing.T) {
	cu := testCuisine()
	if !cu.SupportsVeg() || !cu.SupportsNonVeg() {
		t.Error("mixed menu should support both diets")
	}

	vegOnly := Cuisine{MenuItems: []MenuItem{{Name: "Salad", VegPrice: fp(90)}}}
	if !vegOnly.SupportsVeg() || vegOnly.SupportsNonVeg() {
		t.Error("veg-only menu flags wrong")
	}
}

func TestVariantPrice(t *testing.T) {
	cu := testCuisine()

	item, ok := cu.MenuItemByName("Biryani")
	if !ok {
		t.Fatal("Biryani not found")
	}
	if got := item.VariantPrice("veg"); got != 180 {
		t.Errorf("veg variant = %v, want 180", got)
	}
	if got := item.VariantPrice("nonVeg"); got != 240 {
		t.Errorf("nonVeg variant = %v, want 240", got)
	}

	thali, _ := cu.MenuItemByName("Thali")
	if got := thali.VariantPrice("nonVeg"); got != 0 {
		t.Errorf("missing variant = %v, want 0", got)
	}

	if _, ok := cu.MenuItemByName("Pizza"); ok {
		t.Error("MenuItemByName found a dish that does not exist")
	}
}
