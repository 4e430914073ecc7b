package library

import (
	"sync"

	"github.com/ytget/imageboost/internal/model"
)

// Store is the single in-memory list of records, newest first
type Store struct {
	images   []model.ImageRecord
	onChange func([]model.ImageRecord)
	mu       sync.RWMutex
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{images: []model.ImageRecord{}}
}

// SetChangeCallback sets the function receiving a snapshot after each mutation
func (s *Store) SetChangeCallback(callback func([]model.ImageRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = callback
}

// ReplaceAll swaps the whole list
func (s *Store) ReplaceAll(images []model.ImageRecord) {
	s.mu.Lock()
	s.images = make([]model.ImageRecord, len(images))
	copy(s.images, images)
	s.mu.Unlock()

	s.notifyChange()
}

// Prepend inserts a record at index 0
func (s *Store) Prepend(image model.ImageRecord) {
	s.mu.Lock()
	images := make([]model.ImageRecord, 0, len(s.images)+1)
	images = append(images, image)
	s.images = append(images, s.images...)
	s.mu.Unlock()

	s.notifyChange()
}

// RemoveByID drops every record with the id and reports whether any matched.
// An unknown id leaves the list untouched.
func (s *Store) RemoveByID(id int64) bool {
	s.mu.Lock()
	kept := make([]model.ImageRecord, 0, len(s.images))
	for _, image := range s.images {
		if image.ID != id {
			kept = append(kept, image)
		}
	}
	removed := len(kept) != len(s.images)
	if removed {
		s.images = kept
	}
	s.mu.Unlock()

	if removed {
		s.notifyChange()
	}
	return removed
}

// Snapshot returns a copy of the list
func (s *Store) Snapshot() []model.ImageRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	images := make([]model.ImageRecord, len(s.images))
	copy(images, s.images)
	return images
}

// Len returns the number of records
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}

func (s *Store) notifyChange() {
	s.mu.RLock()
	callback := s.onChange
	s.mu.RUnlock()

	if callback != nil {
		callback(s.Snapshot())
	}
}
