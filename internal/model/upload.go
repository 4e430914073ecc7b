package model

import (
	"fmt"
	"io"
	"strings"
)

// ImageContentTypePrefix is the declared content type prefix accepted for upload
const ImageContentTypePrefix = "image/"

// LocalFile is a candidate file picked from a dialog, dropped on the window,
// or passed on the command line.
type LocalFile struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// IsImage reports whether the declared content type is an image type
func (f LocalFile) IsImage() bool {
	return strings.HasPrefix(f.ContentType, ImageContentTypePrefix)
}

// PendingUpload is a selected file waiting for, or going through, upload.
// It exists only while a batch is active.
type PendingUpload struct {
	ID        string
	File      LocalFile
	Status    UploadStatus
	Percent   int    // 0 to 100
	LastError string // last error message if any
}

// GetSizeString returns the file size in megabytes with two decimals
func (pu *PendingUpload) GetSizeString() string {
	return fmt.Sprintf("%.2f MB", float64(pu.File.Size)/1024/1024)
}
