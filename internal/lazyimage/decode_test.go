package lazyimage

import (
	"testing"
)

func TestDecodePlaceholder(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"landscape", 20, 10, PlaceholderDimension, PlaceholderDimension / 2},
		{"portrait", 10, 20, PlaceholderDimension / 2, PlaceholderDimension},
		{"already large", 300, 200, 300, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodePlaceholder(jpegDataURI(t, tt.width, tt.height))
			if err != nil {
				t.Fatalf("DecodePlaceholder() error = %v", err)
			}
			if bounds := img.Bounds(); bounds.Dx() != tt.wantW || bounds.Dy() != tt.wantH {
				t.Errorf("size = %dx%d, expected %dx%d", bounds.Dx(), bounds.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestDecodePlaceholderInvalid(t *testing.T) {
	inputs := []string{
		"",
		"http://x/a.jpg",
		"data:image/jpeg;base64",
		"data:image/jpeg;base64,%%%",
		"data:text/plain,hello",
	}

	for _, input := range inputs {
		if _, err := DecodePlaceholder(input); err == nil {
			t.Errorf("DecodePlaceholder(%q) expected error", input)
		}
	}
}

func TestParseDataURI(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"data:text/plain;base64,aGVsbG8=", "hello"},
		{"data:text/plain;base64,aGVsbG8", "hello"},
		{"data:,hello%20world", "hello world"},
	}

	for _, tt := range tests {
		got, err := parseDataURI(tt.input)
		if err != nil {
			t.Errorf("parseDataURI(%q) error = %v", tt.input, err)
			continue
		}
		if string(got) != tt.expected {
			t.Errorf("parseDataURI(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
