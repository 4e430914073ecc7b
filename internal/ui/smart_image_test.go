package ui

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/alitto/pond/v2"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/imageboost/internal/api/apitest"
	"github.com/ytget/imageboost/internal/lazyimage"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestSmartImageStates(t *testing.T) {
	const source = "http://backend/media/1.webp"

	tests := []struct {
		name       string
		resources  map[string][]byte
		wantImage  bool
		wantError  bool
		wantLoaded bool
	}{
		{"loaded", map[string][]byte{source: pngBytes(t)}, true, false, true},
		{"missing resource", nil, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.NewTempApp(t)
			pool := pond.NewPool(1)
			defer pool.StopAndWait()

			fake := &apitest.Fake{Resources: tt.resources}
			loader := lazyimage.NewLoader(lazyimage.Options{Source: source}, fake, pool, zaptest.NewLogger(t))
			si := NewSmartImage(loader, fyne.NewSize(CardWidth, CardImageHeight), NewLocalization())

			if si.image.Visible() || si.spinner.Visible() {
				t.Fatalf("image or spinner visible before the element was seen")
			}

			loader.MarkVisible()
			loader.Wait()

			if got := si.image.Image != nil; got != tt.wantImage {
				t.Errorf("image set = %v, expected %v", got, tt.wantImage)
			}
			if got := si.errorBox.Visible(); got != tt.wantError {
				t.Errorf("error visible = %v, expected %v", got, tt.wantError)
			}
			if si.spinner.Visible() {
				t.Errorf("spinner visible after the load settled")
			}
			if got := loader.Display().Opaque; got != tt.wantLoaded {
				t.Errorf("Display().Opaque = %v, expected %v", got, tt.wantLoaded)
			}
		})
	}
}

func TestSmartImageMinSize(t *testing.T) {
	test.NewTempApp(t)
	pool := pond.NewPool(1)
	defer pool.StopAndWait()

	size := fyne.NewSize(120, 80)
	loader := lazyimage.NewLoader(lazyimage.Options{}, &apitest.Fake{}, pool, zaptest.NewLogger(t))
	si := NewSmartImage(loader, size, NewLocalization())

	if got := si.MinSize(); got != size {
		t.Errorf("MinSize() = %v, expected %v", got, size)
	}
}
