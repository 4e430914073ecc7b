package upload

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/imageboost/internal/api"
	"github.com/ytget/imageboost/internal/model"
)

// ErrUploadInProgress is returned for operations disabled while a batch runs
var ErrUploadInProgress = errors.New("upload already in progress")

// Service handles the pending selection and sequential uploads
type Service struct {
	client api.ImageAPI
	log    *zap.Logger

	selection []*model.PendingUpload
	progress  map[string]int // keyed by file name
	uploading bool
	mu        sync.RWMutex

	onUpdate   func(Event)
	onUploaded func(*model.ImageRecord)
	onFailed   func(fileName, message string)
}

// NewService creates a new upload service
func NewService(client api.ImageAPI, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		client:   client,
		log:      log,
		progress: make(map[string]int),
	}
}

// SetUpdateCallback sets the callback function for selection and progress updates
func (s *Service) SetUpdateCallback(callback func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetUploadedCallback sets the function receiving each stored record
func (s *Service) SetUploadedCallback(callback func(*model.ImageRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUploaded = callback
}

// SetFailedCallback sets the function receiving each per-file failure
func (s *Service) SetFailedCallback(callback func(fileName, message string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onFailed = callback
}

// Select replaces the selection with the image files among files and
// returns how many were accepted.
func (s *Service) Select(files []model.LocalFile) (int, error) {
	return s.setSelection(files, true)
}

// Add appends the image files among files to the selection
func (s *Service) Add(files []model.LocalFile) (int, error) {
	return s.setSelection(files, false)
}

func (s *Service) setSelection(files []model.LocalFile, replace bool) (int, error) {
	accepted := filterImages(files)

	s.mu.Lock()
	if s.uploading {
		s.mu.Unlock()
		return 0, ErrUploadInProgress
	}
	if replace {
		s.selection = nil
	}
	for _, file := range accepted {
		s.selection = append(s.selection, &model.PendingUpload{
			ID:     newUploadID(),
			File:   file,
			Status: model.UploadStatusPending,
		})
	}
	s.mu.Unlock()

	if skipped := len(files) - len(accepted); skipped > 0 {
		s.log.Debug("ignored non-image files", zap.Int("count", skipped))
	}
	s.notifyUpdate(Event{Kind: EventSelected})
	return len(accepted), nil
}

// Remove drops one pending file from the selection
func (s *Service) Remove(id string) error {
	s.mu.Lock()
	if s.uploading {
		s.mu.Unlock()
		return ErrUploadInProgress
	}

	index := -1
	for i, pu := range s.selection {
		if pu.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return fmt.Errorf("pending upload not found: %s", id)
	}
	s.selection = append(s.selection[:index], s.selection[index+1:]...)
	s.mu.Unlock()

	s.notifyUpdate(Event{Kind: EventSelected})
	return nil
}

// Selection returns a snapshot of the pending files in selection order
func (s *Service) Selection() []model.PendingUpload {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]model.PendingUpload, len(s.selection))
	for i, pu := range s.selection {
		snapshot[i] = *pu
	}
	return snapshot
}

// Progress returns the percentage recorded for a file name during a batch.
// Files sharing a name share an entry.
func (s *Service) Progress(fileName string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	percent, ok := s.progress[fileName]
	return percent, ok
}

// IsUploading reports whether a batch is running
func (s *Service) IsUploading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uploading
}

// Start uploads the selection in order. Every file is attempted regardless
// of earlier failures; afterwards the selection and progress are cleared.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.uploading {
		s.mu.Unlock()
		return ErrUploadInProgress
	}
	if len(s.selection) == 0 {
		s.mu.Unlock()
		return nil
	}
	s.uploading = true
	batch := make([]*model.PendingUpload, len(s.selection))
	copy(batch, s.selection)
	s.mu.Unlock()

	s.log.Info("starting upload batch", zap.Int("files", len(batch)))

	for _, pu := range batch {
		s.uploadOne(ctx, pu)
	}

	s.mu.Lock()
	s.selection = nil
	s.progress = make(map[string]int)
	s.uploading = false
	s.mu.Unlock()

	s.notifyUpdate(Event{Kind: EventFinished})
	return nil
}

// uploadOne uploads a single file and reports its outcome
func (s *Service) uploadOne(ctx context.Context, pu *model.PendingUpload) {
	name := pu.File.Name

	s.mu.Lock()
	pu.Status = model.UploadStatusUploading
	pu.Percent = 0
	s.progress[name] = 0
	snapshot := *pu
	s.mu.Unlock()
	s.notifyUpdate(Event{Kind: EventStarted, Upload: snapshot})

	record, err := s.client.UploadImage(ctx, pu.File, func(sent, total int64) {
		s.updateProgress(pu, sent, total)
	})

	if err != nil {
		message := api.UserMessage(err)
		s.log.Error("upload failed", zap.String("file", name), zap.Error(err))

		s.mu.Lock()
		pu.Status = model.UploadStatusError
		pu.LastError = message
		snapshot = *pu
		onFailed := s.onFailed
		s.mu.Unlock()

		s.notifyUpdate(Event{Kind: EventFailed, Upload: snapshot, Message: message})
		if onFailed != nil {
			onFailed(name, message)
		}
		return
	}

	s.log.Info("upload completed", zap.String("file", name), zap.Int64("id", record.ID))

	s.mu.Lock()
	pu.Status = model.UploadStatusCompleted
	pu.Percent = 100
	s.progress[name] = 100
	snapshot = *pu
	onUploaded := s.onUploaded
	s.mu.Unlock()

	s.notifyUpdate(Event{Kind: EventSucceeded, Upload: snapshot, Record: record})
	if onUploaded != nil {
		onUploaded(record)
	}
}

// updateProgress records the rounded percentage of bytes sent
func (s *Service) updateProgress(pu *model.PendingUpload, sent, total int64) {
	if total <= 0 {
		return
	}
	percent := int(math.Round(float64(sent) * 100 / float64(total)))
	percent = max(0, min(percent, 100))

	s.mu.Lock()
	if percent == pu.Percent {
		s.mu.Unlock()
		return
	}
	pu.Percent = percent
	s.progress[pu.File.Name] = percent
	snapshot := *pu
	s.mu.Unlock()

	s.notifyUpdate(Event{Kind: EventProgress, Upload: snapshot})
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(event Event) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()

	if callback != nil {
		callback(event)
	}
}

func filterImages(files []model.LocalFile) []model.LocalFile {
	accepted := make([]model.LocalFile, 0, len(files))
	for _, file := range files {
		if file.IsImage() {
			accepted = append(accepted, file)
		}
	}
	return accepted
}

func newUploadID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
