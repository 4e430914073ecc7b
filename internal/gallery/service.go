package gallery

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/imageboost/internal/api"
	"github.com/ytget/imageboost/internal/model"
)

// Service issues confirmed delete requests
type Service struct {
	client api.ImageAPI
	log    *zap.Logger

	onDeleted func(id int64)
	onFailed  func(id int64, message string)
	mu        sync.RWMutex
}

// NewService creates a new gallery service
func NewService(client api.ImageAPI, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{client: client, log: log}
}

// SetDeletedCallback sets the function told about each confirmed deletion
func (s *Service) SetDeletedCallback(callback func(id int64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onDeleted = callback
}

// SetFailedCallback sets the function told about each failed deletion
func (s *Service) SetFailedCallback(callback func(id int64, message string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onFailed = callback
}

// RequestDelete asks for confirmation and deletes the record only if approved
func (s *Service) RequestDelete(ctx context.Context, record model.ImageRecord, confirmer Confirmer) {
	confirmer.ConfirmDelete(record, func(approved bool) {
		if !approved {
			s.log.Debug("delete declined", zap.Int64("id", record.ID))
			return
		}
		_ = s.Delete(ctx, record.ID)
	})
}

// Delete removes a record on the backend. Only a 204 answer reaches the
// deleted callback; every other outcome reaches the failed callback.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.client.DeleteImage(ctx, id)

	s.mu.RLock()
	onDeleted, onFailed := s.onDeleted, s.onFailed
	s.mu.RUnlock()

	if err != nil {
		s.log.Error("failed to delete image", zap.Int64("id", id), zap.Error(err))
		if onFailed != nil {
			onFailed(id, api.UserMessage(err))
		}
		return err
	}

	s.log.Info("image deleted", zap.Int64("id", id))
	if onDeleted != nil {
		onDeleted(id)
	}
	return nil
}
