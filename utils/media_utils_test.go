package utils

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ssamratd571/localexplorer/models"
)

func TestExtractImageURLsPriorityOrder(t *testing.T) {
	// images wins over imageUrls even when both are set
	m := models.LegacyMedia{
		Images:    []interface{}{"https://cdn.example.com/a.jpg"},
		ImageUrls: []interface{}{"https://cdn.example.com/b.jpg"},
	}
	got := ExtractImageURLs(m)
	if !reflect.DeepEqual(got, []string{"https://cdn.example.com/a.jpg"}) {
		t.Errorf("priority order broken: %v", got)
	}

	// An empty higher-priority field falls through to the next one
	m = models.LegacyMedia{
		Images:    []interface{}{},
		ImageUrls: "https://cdn.example.com/b.jpg",
	}
	got = ExtractImageURLs(m)
	if !reflect.DeepEqual(got, []string{"https://cdn.example.com/b.jpg"}) {
		t.Errorf("fallthrough broken: %v", got)
	}
}

func TestExtractImageURLsWrapperShapes(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  []string
	}{
		{"plain string", "https://x/1.jpg", []string{"https://x/1.jpg"}},
		{"string list", []interface{}{"https://x/1.jpg", "https://x/2.jpg"}, []string{"https://x/1.jpg", "https://x/2.jpg"}},
		{"secure_url wrapper", []interface{}{map[string]interface{}{"secure_url": "https://x/s.jpg", "url": "http://x/s.jpg"}}, []string{"https://x/s.jpg"}},
		{"url wrapper", map[string]interface{}{"url": "https://x/u.jpg"}, []string{"https://x/u.jpg"}},
		{"downloadURL wrapper", map[string]interface{}{"downloadURL": "https://x/d.jpg"}, []string{"https://x/d.jpg"}},
		{"bson array", primitive.A{"https://x/1.jpg"}, []string{"https://x/1.jpg"}},
		{"empty strings skipped", []interface{}{"", "https://x/1.jpg"}, []string{"https://x/1.jpg"}},
	}

	for _, c := range cases {
		got := ExtractImageURLs(models.LegacyMedia{Images: c.value})
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestExtractImageURLsNeverNil(t *testing.T) {
	got := ExtractImageURLs(models.LegacyMedia{})
	if got == nil || len(got) != 0 {
		t.Errorf("empty media should resolve to an empty slice, got %v", got)
	}
}

func TestExtractListingImagesCanonicalWins(t *testing.T) {
	media := []models.MediaRef{
		{URL: "http://x/a.jpg", SecureURL: "https://x/a.jpg"},
		{URL: "http://x/b.jpg"},
	}
	legacy := models.LegacyMedia{Images: "https://x/legacy.jpg"}

	got := ExtractListingImages(media, legacy)
	want := []string{"https://x/a.jpg", "http://x/b.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("canonical refs should win: got %v, want %v", got, want)
	}

	// Without canonical refs the legacy chain applies
	got = ExtractListingImages(nil, legacy)
	if !reflect.DeepEqual(got, []string{"https://x/legacy.jpg"}) {
		t.Errorf("legacy fallback broken: %v", got)
	}
}

func TestHotelImageURLs(t *testing.T) {
	h := models.Hotel{
		Media: []models.MediaRef{{SecureURL: "https://x/top.jpg"}},
		Rooms: []models.HotelRoom{
			{
				Name:      "Deluxe",
				Media:     []models.MediaRef{{SecureURL: "https://x/room.jpg"}},
				ImageURLs: []interface{}{"https://x/room-legacy.jpg", "https://x/top.jpg"},
			},
		},
	}

	got := HotelImageURLs(h)
	want := []string{"https://x/top.jpg", "https://x/room.jpg", "https://x/room-legacy.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HotelImageURLs = %v, want %v (deduped)", got, want)
	}
}
