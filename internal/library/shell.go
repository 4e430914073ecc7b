package library

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/imageboost/internal/api"
	"github.com/ytget/imageboost/internal/model"
)

// Shell coordinates the record list with the backend and the child views
type Shell struct {
	client api.ImageAPI
	store  *Store
	log    *zap.Logger

	loading   bool
	onLoading func(bool)
	mu        sync.RWMutex
}

// NewShell creates a shell over an empty store
func NewShell(client api.ImageAPI, log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Shell{
		client: client,
		store:  NewStore(),
		log:    log,
	}
}

// Store returns the record store for read access and change subscription
func (s *Shell) Store() *Store {
	return s.store
}

// SetLoadingCallback sets the function told when a list fetch starts and ends
func (s *Shell) SetLoadingCallback(callback func(loading bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLoading = callback
}

// IsLoading reports whether a list fetch is pending
func (s *Shell) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Load fetches the full list and replaces the store on success. A failed
// fetch is only logged and leaves the list as it was.
func (s *Shell) Load(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	images, err := s.client.ListImages(ctx)
	if err != nil {
		s.log.Error("failed to fetch images", zap.Error(err))
		return
	}

	s.log.Info("images loaded", zap.Int("count", len(images)))
	s.store.ReplaceAll(images)
}

// Reload refetches the list on demand
func (s *Shell) Reload(ctx context.Context) {
	s.Load(ctx)
}

// HandleUploaded puts a newly stored record at the front of the list
func (s *Shell) HandleUploaded(image *model.ImageRecord) {
	if image == nil {
		return
	}
	s.store.Prepend(*image)
}

// HandleDeleted removes a deleted record; a stale id is a no-op
func (s *Shell) HandleDeleted(id int64) {
	if !s.store.RemoveByID(id) {
		s.log.Debug("deleted id not in list", zap.Int64("id", id))
	}
}

func (s *Shell) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	callback := s.onLoading
	s.mu.Unlock()

	if callback != nil {
		callback(loading)
	}
}
