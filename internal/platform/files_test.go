package platform

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2/storage"
)

// pngHeader is enough of a PNG for content sniffing
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		data     []byte
		expected string
	}{
		{"extension png", "a.png", []byte("anything"), "image/png"},
		{"extension upper case", "b.JPG", []byte("anything"), "image/jpeg"},
		{"sniffed png", "no_extension", pngHeader, "image/png"},
		{"sniffed text", "notes", []byte("hello world"), "text/plain"},
		{"empty file", "empty", nil, "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.data)
			got, err := DetectContentType(path)
			if err != nil {
				t.Fatalf("DetectContentType() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("DetectContentType() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestLocalFileFromPath(t *testing.T) {
	path := writeFile(t, "photo.png", pngHeader)

	file, err := LocalFileFromPath(path)
	if err != nil {
		t.Fatalf("LocalFileFromPath() error = %v", err)
	}
	if file.Name != "photo.png" {
		t.Errorf("Name = %q, expected %q", file.Name, "photo.png")
	}
	if file.Size != int64(len(pngHeader)) {
		t.Errorf("Size = %d, expected %d", file.Size, len(pngHeader))
	}
	if !file.IsImage() {
		t.Errorf("IsImage() = false for %q", file.ContentType)
	}

	rc, err := file.Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != string(pngHeader) {
		t.Error("Open() returned different content")
	}
}

func TestLocalFileFromPathErrors(t *testing.T) {
	if _, err := LocalFileFromPath(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LocalFileFromPath(t.TempDir()); err == nil {
		t.Error("expected error for directory")
	}
}

func TestLocalFilesFromPaths(t *testing.T) {
	good := writeFile(t, "good.gif", []byte("GIF89a"))
	missing := filepath.Join(t.TempDir(), "missing.gif")

	files, err := LocalFilesFromPaths([]string{good, missing})
	if len(files) != 1 || files[0].Name != "good.gif" {
		t.Errorf("files = %+v, expected only good.gif", files)
	}
	if err == nil || !strings.Contains(err.Error(), "missing.gif") {
		t.Errorf("error = %v, expected mention of missing.gif", err)
	}
}

func TestLocalFileFromURI(t *testing.T) {
	path := writeFile(t, "drop.webp", []byte("RIFF0000WEBP"))

	file, err := LocalFileFromURI(storage.NewFileURI(path))
	if err != nil {
		t.Fatalf("LocalFileFromURI() error = %v", err)
	}
	if file.Name != "drop.webp" || file.ContentType != "image/webp" {
		t.Errorf("LocalFileFromURI() = %s (%s), expected drop.webp (image/webp)", file.Name, file.ContentType)
	}

	if _, err := LocalFileFromURI(nil); err == nil {
		t.Error("expected error for nil URI")
	}
}

func TestOpenURLRejectsNonWeb(t *testing.T) {
	for _, target := range []string{"file:///etc/passwd", "javascript:alert(1)", ""} {
		if err := OpenURL(target); err == nil {
			t.Errorf("OpenURL(%q) expected error", target)
		}
	}
}

func TestGetPicturesDir(t *testing.T) {
	dir, err := GetPicturesDir()
	if err != nil {
		t.Fatalf("GetPicturesDir() error = %v", err)
	}
	if dir == "" {
		t.Fatal("GetPicturesDir() returned empty path")
	}
}
