package lazyimage

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/url"
	"strings"

	// Decoders for the formats the backend serves
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"
)

// PlaceholderDimension is the longer side placeholders are upscaled to
const PlaceholderDimension = 200

var errNotDataURI = errors.New("not a data URI")

// DecodePlaceholder decodes an inline "data:image/...;base64,..." placeholder
// and upscales it with bilinear filtering for a soft, blurred look.
func DecodePlaceholder(dataURI string) (image.Image, error) {
	data, err := parseDataURI(dataURI)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode placeholder: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() >= PlaceholderDimension || bounds.Dy() >= PlaceholderDimension {
		return img, nil
	}
	if bounds.Dx() >= bounds.Dy() {
		return resize.Resize(PlaceholderDimension, 0, img, resize.Bilinear), nil
	}
	return resize.Resize(0, PlaceholderDimension, img, resize.Bilinear), nil
}

// decodeImage decodes a fetched image and shrinks it to fit maxDimension.
// A zero maxDimension keeps the original size.
func decodeImage(data []byte, maxDimension uint) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if maxDimension == 0 || (uint(bounds.Dx()) <= maxDimension && uint(bounds.Dy()) <= maxDimension) {
		return img, nil
	}

	return resize.Thumbnail(maxDimension, maxDimension, img, resize.Lanczos3), nil
}

// parseDataURI returns the payload of an RFC 2397 data URI
func parseDataURI(dataURI string) ([]byte, error) {
	rest, ok := strings.CutPrefix(dataURI, "data:")
	if !ok {
		return nil, errNotDataURI
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("malformed data URI: missing payload")
	}

	if strings.HasSuffix(meta, ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		}
		if err != nil {
			return nil, fmt.Errorf("malformed base64 payload: %w", err)
		}
		return data, nil
	}

	data, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("malformed data URI payload: %w", err)
	}
	return []byte(data), nil
}
