// models/media.go
package models

// MediaRef is the canonical stored shape for an uploaded image or video.
// Every write path emits this shape; the legacy fields below exist only so
// documents written by older clients can still be read.
type MediaRef struct {
	URL          string `json:"url" bson:"url"`
	SecureURL    string `json:"secureUrl,omitempty" bson:"secureUrl,omitempty"`
	PublicID     string `json:"publicId,omitempty" bson:"publicId,omitempty"`
	ResourceType string `json:"resourceType,omitempty" bson:"resourceType,omitempty"` // "image" or "video"
}

// LegacyMedia carries every image field name the old client ever wrote.
// Order matters: resolution walks these fields top to bottom and takes the
// first non-empty one.
type LegacyMedia struct {
	Images    interface{} `json:"-" bson:"images,omitempty"`
	ImageUrls interface{} `json:"-" bson:"imageUrls,omitempty"`
	ImageURLs interface{} `json:"-" bson:"imageURLs,omitempty"`
	ImageUrl  interface{} `json:"-" bson:"imageUrl,omitempty"`
	Image     interface{} `json:"-" bson:"image,omitempty"`
	Photos    interface{} `json:"-" bson:"photos,omitempty"`
	PhotoUrls interface{} `json:"-" bson:"photoUrls,omitempty"`
	PhotoURL  interface{} `json:"-" bson:"photoURL,omitempty"`
}

// Candidates returns the legacy fields in resolution priority order.
func (m LegacyMedia) Candidates() []interface{} {
	return []interface{}{
		m.Images,
		m.ImageUrls,
		m.ImageURLs,
		m.ImageUrl,
		m.Image,
		m.Photos,
		m.PhotoUrls,
		m.PhotoURL,
	}
}
