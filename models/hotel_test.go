package models

import "testing"

func fp(v float64) *float64 { return &v }

func testRoom() HotelRoom {
	return HotelRoom{
		Name:        "Deluxe",
		ACPrice1:    fp(1200),
		ACPrice2:    fp(1500),
		ACPrice4:    fp(2200),
		NonACPrice1: fp(900),
		NonACPrice2: fp(1100),
	}
}

func TestPriceForGuests(t *testing.T) {
	room := testRoom()

	cases := []struct {
		ac     bool
		guests int
		want   float64
	}{
		{true, 1, 1200},
		{true, 2, 1500},
		{true, 3, 0}, // missing cell
		{true, 4, 2200},
		{false, 1, 900},
		{false, 2, 1100},
		{false, 4, 0},
		{true, 0, 1200},  // clamped up to 1
		{true, 9, 2200},  // clamped down to 4
		{false, -3, 900}, // clamped up to 1
	}

	for _, c := range cases {
		if got := room.PriceForGuests(c.ac, c.guests); got != c.want {
			t.Errorf("PriceForGuests(ac=%v, guests=%d) = %v, want %v", c.ac, c.guests, got, c.want)
		}
	}
}

func TestRoomMinPrice(t *testing.T) {
	room := testRoom()
	if got := room.MinPrice(); got != 900 {
		t.Errorf("MinPrice() = %v, want 900", got)
	}
	if got := (HotelRoom{Name: "Empty"}).MinPrice(); got != 0 {
		t.Errorf("MinPrice() on unpriced room = %v, want 0", got)
	}
}

func TestRoomByName(t *testing.T) {
	h := Hotel{Rooms: []HotelRoom{testRoom(), {Name: "Suite"}}}

	if _, ok := h.RoomByName("deluxe"); !ok {
		t.Error("RoomByName should match case-insensitively")
	}
	if _, ok := h.RoomByName("  Suite "); !ok {
		t.Error("RoomByName should trim whitespace")
	}
	if _, ok := h.RoomByName("Penthouse"); ok {
		t.Error("RoomByName matched a room that does not exist")
	}
}

func TestNightlyRate(t *testing.T) {
	h := Hotel{Rooms: []HotelRoom{
		testRoom(),
		{Name: "Suite", ACPrice2: fp(3000)},
	}}

	if got := h.NightlyRate("Deluxe", true, 2); got != 1500 {
		t.Errorf("NightlyRate exact cell = %v, want 1500", got)
	}
	// Missing cell falls back to the cheapest cell in the hotel
	if got := h.NightlyRate("Deluxe", true, 3); got != 900 {
		t.Errorf("NightlyRate missing cell = %v, want 900 fallback", got)
	}
	// Unknown room also falls back
	if got := h.NightlyRate("Penthouse", false, 1); got != 900 {
		t.Errorf("NightlyRate unknown room = %v, want 900 fallback", got)
	}
}

func TestMinRoomPrice(t *testing.T) {
	h := Hotel{Rooms: []HotelRoom{
		{Name: "A", ACPrice1: fp(2000)},
		{Name: "B", NonACPrice1: fp(700)},
		{Name: "C"}, // unpriced, must not drag the min to 0
	}}
	if got := h.MinRoomPrice(); got != 700 {
		t.Errorf("MinRoomPrice() = %v, want 700", got)
	}

	if got := (Hotel{}).MinRoomPrice(); got != 0 {
		t.Errorf("MinRoomPrice() on empty hotel = %v, want 0", got)
	}
}
