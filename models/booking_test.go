package models

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCancelled, true},
		{"", StatusApproved, true}, // legacy docs without a status
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusCancelled, false},
		{StatusRejected, StatusApproved, false},
		{StatusCancelled, StatusApproved, false},
		{StatusPending, StatusPending, false},
		{StatusPending, "shipped", false},
	}

	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestIsTerminalStatus(t *testing.T) {
	for _, s := range []string{StatusApproved, StatusRejected, StatusCancelled} {
		if !IsTerminalStatus(s) {
			t.Errorf("IsTerminalStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{StatusPending, "", "unknown"} {
		if IsTerminalStatus(s) {
			t.Errorf("IsTerminalStatus(%q) = true, want false", s)
		}
	}
}

func TestNightsBetween(t *testing.T) {
	cases := []struct {
		in, out string
		want    int
	}{
		{"2025-01-10", "2025-01-12", 2},
		{"2025-01-10", "2025-01-11", 1},
		{"2025-01-10", "2025-01-10", 0},
		{"2025-01-12", "2025-01-10", 0}, // inverted
		{"2025-02-28", "2025-03-01", 1},
		{"garbage", "2025-01-10", 0},
		{"2025-01-10", "", 0},
	}

	for _, c := range cases {
		if got := NightsBetween(c.in, c.out); got != c.want {
			t.Errorf("NightsBetween(%q, %q) = %d, want %d", c.in, c.out, got, c.want)
		}
	}
}

func TestTripDaysBetween(t *testing.T) {
	cases := []struct {
		pickup, ret string
		want        int
	}{
		{"2025-01-10", "2025-01-10", 1}, // same-day rental still costs a day
		{"2025-01-10", "2025-01-11", 2}, // inclusive of both endpoints
		{"2025-01-10", "2025-01-14", 5},
		{"2025-01-14", "2025-01-10", 0}, // inverted
		{"bad", "2025-01-10", 0},
	}

	for _, c := range cases {
		if got := TripDaysBetween(c.pickup, c.ret); got != c.want {
			t.Errorf("TripDaysBetween(%q, %q) = %d, want %d", c.pickup, c.ret, got, c.want)
		}
	}
}
