package gallery

import (
	"context"

	"github.com/ytget/imageboost/internal/model"
)

// Confirmer asks the user to approve deleting a record. onResult may be
// called on any goroutine.
type Confirmer interface {
	ConfirmDelete(record model.ImageRecord, onResult func(approved bool))
}

// ConfirmFunc adapts a function to the Confirmer interface
type ConfirmFunc func(record model.ImageRecord, onResult func(approved bool))

// ConfirmDelete calls f
func (f ConfirmFunc) ConfirmDelete(record model.ImageRecord, onResult func(approved bool)) {
	f(record, onResult)
}

// Deleter defines the interface for the gallery service.
type Deleter interface {
	SetDeletedCallback(func(id int64))
	SetFailedCallback(func(id int64, message string))
	RequestDelete(ctx context.Context, record model.ImageRecord, confirmer Confirmer)
	Delete(ctx context.Context, id int64) error
}
