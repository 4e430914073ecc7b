package api

import (
	"context"

	"github.com/ytget/imageboost/internal/model"
)

// ProgressFunc receives the number of request body bytes sent so far
type ProgressFunc func(sent, total int64)

// ImageAPI defines the interface for the backend client.
type ImageAPI interface {
	ListImages(ctx context.Context) ([]model.ImageRecord, error)
	GetImage(ctx context.Context, id int64) (*model.ImageRecord, error)
	UploadImage(ctx context.Context, file model.LocalFile, progress ProgressFunc) (*model.ImageRecord, error)
	DeleteImage(ctx context.Context, id int64) error

	// FetchResource downloads an absolute resource URL (image bytes)
	FetchResource(ctx context.Context, resourceURL string) ([]byte, error)
}
