// utils/media_utils.go
package utils

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ssamratd571/localexplorer/models"
)

// wrapper keys tried, in order, when a media entry is an object instead of
// a plain URL string.
var mediaWrapperKeys = []string{"secure_url", "url", "downloadURL", "imageUrl", "src"}

// ExtractImageURLs resolves a legacy media value set to a flat URL list.
// It walks the candidate fields in priority order and returns the URLs of
// the first field that yields any. Never returns nil.
func ExtractImageURLs(m models.LegacyMedia) []string {
	for _, candidate := range m.Candidates() {
		if urls := flattenMediaValue(candidate); len(urls) > 0 {
			return urls
		}
	}
	return []string{}
}

// ExtractListingImages merges the canonical media refs with the legacy
// chain, canonical refs first.
func ExtractListingImages(media []models.MediaRef, legacy models.LegacyMedia) []string {
	urls := make([]string, 0, len(media))
	for _, ref := range media {
		if u := ref.SecureURL; u != "" {
			urls = append(urls, u)
		} else if ref.URL != "" {
			urls = append(urls, ref.URL)
		}
	}
	if len(urls) > 0 {
		return urls
	}
	return ExtractImageURLs(legacy)
}

// flattenMediaValue normalizes one legacy field value: a string, a list of
// strings, a wrapper object, or a list of wrapper objects.
func flattenMediaValue(v interface{}) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	case []string:
		out := make([]string, 0, len(val))
		for _, s := range val {
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if u := unwrapMediaItem(item); u != "" {
				out = append(out, u)
			}
		}
		return out
	case primitive.A:
		return flattenMediaValue([]interface{}(val))
	default:
		if u := unwrapMediaItem(v); u != "" {
			return []string{u}
		}
		return nil
	}
}

// unwrapMediaItem pulls a URL out of one entry, whatever its shape.
func unwrapMediaItem(item interface{}) string {
	switch val := item.(type) {
	case string:
		return val
	case map[string]interface{}:
		for _, key := range mediaWrapperKeys {
			if s, ok := val[key].(string); ok && s != "" {
				return s
			}
		}
	case bson.M:
		return unwrapMediaItem(map[string]interface{}(val))
	case bson.D:
		return unwrapMediaItem(val.Map())
	}
	return ""
}

// HotelImageURLs resolves a hotel's gallery: top-level media/legacy fields
// plus the legacy categoryImages and per-room galleries.
func HotelImageURLs(h models.Hotel) []string {
	urls := ExtractListingImages(h.Media, h.LegacyMedia)
	urls = append(urls, flattenMediaValue(h.CategoryImages)...)
	for _, room := range h.Rooms {
		for _, ref := range room.Media {
			if ref.SecureURL != "" {
				urls = append(urls, ref.SecureURL)
			} else if ref.URL != "" {
				urls = append(urls, ref.URL)
			}
		}
		urls = append(urls, flattenMediaValue(room.ImageURLs)...)
	}
	return dedupeURLs(urls)
}

func dedupeURLs(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}
