package model

import (
	"math"
	"strconv"
	"time"
)

// File size formatting constants
const (
	FileSizeUnit = 1024
	ZeroFileSize = "0 Bytes"
)

// FileSizeUnits are the display units, indexed by the integer log1024 of the size
var FileSizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// ImageRecord is an optimized image as returned by the backend.
// Records are never mutated locally; optional URLs are empty when absent.
type ImageRecord struct {
	ID              int64     `json:"id"`
	OriginalName    string    `json:"original_name"`
	OriginalURL     string    `json:"original_url,omitempty"`
	WebPURL         string    `json:"webp_url,omitempty"`
	ThumbnailURL    string    `json:"thumbnail_url,omitempty"`
	BlurPlaceholder string    `json:"blur_placeholder,omitempty"`
	Width           int       `json:"width"`
	Height          int       `json:"height"`
	OriginalSize    int64     `json:"original_size"`
	OptimizedSize   int64     `json:"optimized_size,omitempty"`
	SizeReduction   float64   `json:"size_reduction"`
	Format          string    `json:"format"`
	CreatedAt       time.Time `json:"created_at"`
}

// PrimarySource returns the URL the gallery loads lazily: the optimized
// image, then the original, then the thumbnail.
func (r *ImageRecord) PrimarySource() string {
	if src := r.ViewURL(); src != "" {
		return src
	}
	return r.ThumbnailURL
}

// ViewURL returns the resource opened by the "view" action
func (r *ImageRecord) ViewURL() string {
	if r.WebPURL != "" {
		return r.WebPURL
	}
	return r.OriginalURL
}

// HasReduction reports whether the reduction stat should be displayed
func (r *ImageRecord) HasReduction() bool {
	return r.SizeReduction > 0
}

// FormatFileSize formats a byte count with base-1024 units (Bytes, KB, MB, GB),
// rounded to at most two decimals. Zero is "0 Bytes".
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return ZeroFileSize
	}
	if bytes < 0 {
		return "-" + FormatFileSize(-bytes)
	}

	exp := 0
	for n := bytes; n >= FileSizeUnit && exp < len(FileSizeUnits)-1; n /= FileSizeUnit {
		exp++
	}

	value := float64(bytes) / math.Pow(FileSizeUnit, float64(exp))
	value = math.Round(value*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + FileSizeUnits[exp]
}
