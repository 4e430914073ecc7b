// Package apitest provides an in-memory ImageAPI for service tests.
package apitest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ytget/imageboost/internal/api"
	"github.com/ytget/imageboost/internal/model"
)

// Fake is an in-memory backend. Zero value is ready to use.
type Fake struct {
	Images []model.ImageRecord

	ListErr    error
	UploadErrs map[string]error // keyed by file name
	DeleteErrs map[int64]error
	Resources  map[string][]byte

	// BeforeUpload runs at the start of every upload, e.g. to block it
	BeforeUpload func(file model.LocalFile)

	uploads []string
	deletes []int64
	fetches []string
	nextID  int64
	mu      sync.Mutex
}

var _ api.ImageAPI = (*Fake)(nil)

// ListImages returns a copy of Images
func (f *Fake) ListImages(ctx context.Context) ([]model.ImageRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ListErr != nil {
		return nil, f.ListErr
	}
	images := make([]model.ImageRecord, len(f.Images))
	copy(images, f.Images)
	return images, nil
}

// GetImage returns a record or a 404 status error
func (f *Fake) GetImage(ctx context.Context, id int64) (*model.ImageRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.Images {
		if f.Images[i].ID == id {
			image := f.Images[i]
			return &image, nil
		}
	}
	return nil, &api.StatusError{StatusCode: http.StatusNotFound, Message: "Image not found"}
}

// UploadImage reads the file, reports progress in two steps, then either
// fails with UploadErrs[name] or creates a record.
func (f *Fake) UploadImage(ctx context.Context, file model.LocalFile, progress api.ProgressFunc) (*model.ImageRecord, error) {
	if f.BeforeUpload != nil {
		f.BeforeUpload(file)
	}

	f.mu.Lock()
	f.uploads = append(f.uploads, file.Name)
	uploadErr := f.UploadErrs[file.Name]
	f.mu.Unlock()

	var size int64
	if file.Open != nil {
		src, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", file.Name, err)
		}
		size, _ = io.Copy(io.Discard, src)
		src.Close()
	}

	total := size + 1
	if progress != nil {
		progress(total/2, total)
	}
	if uploadErr != nil {
		return nil, uploadErr
	}
	if progress != nil {
		progress(total, total)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	record := model.ImageRecord{
		ID:           1000 + f.nextID,
		OriginalName: file.Name,
		OriginalSize: size,
		Format:       "WEBP",
		CreatedAt:    time.Now(),
	}
	f.Images = append([]model.ImageRecord{record}, f.Images...)
	return &record, nil
}

// DeleteImage removes a record; unknown ids yield a 404 status error
func (f *Fake) DeleteImage(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deletes = append(f.deletes, id)
	if err := f.DeleteErrs[id]; err != nil {
		return err
	}
	for i := range f.Images {
		if f.Images[i].ID == id {
			f.Images = append(f.Images[:i], f.Images[i+1:]...)
			return nil
		}
	}
	return &api.StatusError{StatusCode: http.StatusNotFound, Message: "Image not found"}
}

// FetchResource serves Resources
func (f *Fake) FetchResource(ctx context.Context, resourceURL string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fetches = append(f.fetches, resourceURL)
	data, ok := f.Resources[resourceURL]
	if !ok {
		return nil, &api.StatusError{StatusCode: http.StatusNotFound}
	}
	return data, nil
}

// Uploads returns the uploaded file names in call order
func (f *Fake) Uploads() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.uploads...)
}

// Deletes returns the deleted ids in call order
func (f *Fake) Deletes() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.deletes...)
}

// Fetches returns the fetched URLs in call order
func (f *Fake) Fetches() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.fetches...)
}

// File builds an in-memory LocalFile
func File(name, contentType, data string) model.LocalFile {
	return model.LocalFile{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(data)), nil
		},
	}
}
