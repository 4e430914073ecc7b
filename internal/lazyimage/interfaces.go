package lazyimage

import "context"

// Fetcher downloads the bytes behind an image URL
type Fetcher interface {
	FetchResource(ctx context.Context, resourceURL string) ([]byte, error)
}
