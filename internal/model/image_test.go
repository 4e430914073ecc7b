package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, "0 Bytes"},
		{1, "1 Bytes"},
		{1023, "1023 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1234567, "1.18 MB"},
		{1048576, "1 MB"},
		{5 * 1024 * 1024 * 1024, "5 GB"},
		{5 * 1024 * 1024 * 1024 * 1024, "5120 GB"},
	}

	for _, test := range tests {
		result := FormatFileSize(test.bytes)
		if result != test.expected {
			t.Errorf("FormatFileSize(%d) = %s, expected %s", test.bytes, result, test.expected)
		}
	}
}

func TestFormatFileSize_UnitsAndDecimals(t *testing.T) {
	for _, bytes := range []int64{1, 7, 999, 1025, 4097, 65535, 1 << 20, 3<<20 + 12345, 1 << 30, 1<<31 + 1} {
		result := FormatFileSize(bytes)
		if result == ZeroFileSize {
			t.Errorf("FormatFileSize(%d) returned zero marker for a non-zero size", bytes)
			continue
		}

		parts := strings.Split(result, " ")
		if len(parts) != 2 {
			t.Fatalf("FormatFileSize(%d) = %q, expected '<value> <unit>'", bytes, result)
		}

		known := false
		for _, unit := range FileSizeUnits {
			if parts[1] == unit {
				known = true
			}
		}
		if !known {
			t.Errorf("FormatFileSize(%d) unit = %s, not in %v", bytes, parts[1], FileSizeUnits)
		}

		if dot := strings.Index(parts[0], "."); dot >= 0 && len(parts[0])-dot-1 > 2 {
			t.Errorf("FormatFileSize(%d) = %s, expected at most two decimals", bytes, result)
		}
	}
}

func TestImageRecord_Sources(t *testing.T) {
	tests := []struct {
		name        string
		record      ImageRecord
		wantPrimary string
		wantView    string
	}{
		{
			name:        "optimized preferred",
			record:      ImageRecord{WebPURL: "http://h/a.webp", OriginalURL: "http://h/a.jpg", ThumbnailURL: "http://h/t.jpg"},
			wantPrimary: "http://h/a.webp",
			wantView:    "http://h/a.webp",
		},
		{
			name:        "original when no optimized",
			record:      ImageRecord{OriginalURL: "http://h/a.jpg", ThumbnailURL: "http://h/t.jpg"},
			wantPrimary: "http://h/a.jpg",
			wantView:    "http://h/a.jpg",
		},
		{
			name:        "thumbnail fallback",
			record:      ImageRecord{ThumbnailURL: "http://h/t.jpg"},
			wantPrimary: "http://h/t.jpg",
			wantView:    "",
		},
		{
			name: "nothing available",
		},
	}

	for _, test := range tests {
		if got := test.record.PrimarySource(); got != test.wantPrimary {
			t.Errorf("%s: PrimarySource() = %q, expected %q", test.name, got, test.wantPrimary)
		}
		if got := test.record.ViewURL(); got != test.wantView {
			t.Errorf("%s: ViewURL() = %q, expected %q", test.name, got, test.wantView)
		}
	}
}

func TestImageRecord_DecodeBackendPayload(t *testing.T) {
	payload := `{
		"id": 7,
		"original_name": "cat.png",
		"original_size": 204800,
		"width": 640,
		"height": 480,
		"format": "PNG",
		"created_at": "2025-01-02T03:04:05Z",
		"original_url": "http://localhost:8000/media/originals/x.png",
		"webp_url": null,
		"thumbnail_url": "http://localhost:8000/media/thumbnails/x.jpg",
		"blur_placeholder": "data:image/jpeg;base64,AAAA",
		"size_reduction": 65.5
	}`

	var record ImageRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if record.ID != 7 || record.OriginalName != "cat.png" {
		t.Errorf("unexpected identity: %+v", record)
	}
	if record.WebPURL != "" {
		t.Errorf("WebPURL = %q, expected empty for null", record.WebPURL)
	}
	if !record.HasReduction() {
		t.Error("HasReduction() = false, expected true")
	}
	if record.CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}
}

func TestImageRecord_HasReduction(t *testing.T) {
	if (&ImageRecord{SizeReduction: 0}).HasReduction() {
		t.Error("HasReduction() with 0 = true, expected false")
	}
	if (&ImageRecord{SizeReduction: -3}).HasReduction() {
		t.Error("HasReduction() with negative = true, expected false")
	}
}
