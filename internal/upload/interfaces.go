package upload

import (
	"context"

	"github.com/ytget/imageboost/internal/model"
)

// Uploader defines the interface for the upload service.
type Uploader interface {
	SetUpdateCallback(func(Event))
	SetUploadedCallback(func(*model.ImageRecord))
	SetFailedCallback(func(fileName, message string))

	Select(files []model.LocalFile) (int, error)
	Add(files []model.LocalFile) (int, error)
	Remove(id string) error
	Selection() []model.PendingUpload
	Progress(fileName string) (int, bool)
	IsUploading() bool

	// Start uploads the current selection sequentially and blocks until the
	// batch has been processed.
	Start(ctx context.Context) error
}
