package model

import "testing"

func TestLocalFile_IsImage(t *testing.T) {
	tests := []struct {
		contentType string
		expected    bool
	}{
		{"image/png", true},
		{"image/jpeg", true},
		{"image/webp", true},
		{"text/plain", false},
		{"application/octet-stream", false},
		{"", false},
		{"IMAGE/PNG", false},
	}

	for _, test := range tests {
		file := LocalFile{Name: "f", ContentType: test.contentType}
		if result := file.IsImage(); result != test.expected {
			t.Errorf("IsImage() with %q = %v, expected %v", test.contentType, result, test.expected)
		}
	}
}

func TestPendingUpload_GetSizeString(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0.00 MB"},
		{1024 * 1024, "1.00 MB"},
		{1572864, "1.50 MB"},
	}

	for _, test := range tests {
		upload := &PendingUpload{File: LocalFile{Size: test.size}}
		if result := upload.GetSizeString(); result != test.expected {
			t.Errorf("GetSizeString() with size=%d = %s, expected %s", test.size, result, test.expected)
		}
	}
}
