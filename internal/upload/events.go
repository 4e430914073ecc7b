package upload

import "github.com/ytget/imageboost/internal/model"

// EventKind identifies an upload service notification
type EventKind int

const (
	// EventSelected: the selection changed
	EventSelected EventKind = iota
	// EventStarted: a file began uploading
	EventStarted
	// EventProgress: a file's percentage changed
	EventProgress
	// EventSucceeded: a file was stored by the backend
	EventSucceeded
	// EventFailed: a file was rejected or the transport failed
	EventFailed
	// EventFinished: the batch ended and the selection was cleared
	EventFinished
)

// String returns the string representation of EventKind
func (k EventKind) String() string {
	switch k {
	case EventSelected:
		return "Selected"
	case EventStarted:
		return "Started"
	case EventProgress:
		return "Progress"
	case EventSucceeded:
		return "Succeeded"
	case EventFailed:
		return "Failed"
	case EventFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Event is delivered to the update callback on every change
type Event struct {
	Kind    EventKind
	Upload  model.PendingUpload // snapshot of the affected file, zero for Selected/Finished
	Record  *model.ImageRecord  // set for EventSucceeded
	Message string              // user-facing error text for EventFailed
}
