package model

// UploadStatus represents the status of a single pending upload
type UploadStatus string

const (
	// UploadStatusPending means the file is selected but not sent yet
	UploadStatusPending UploadStatus = "Pending"

	// UploadStatusUploading means the request body is being transferred
	UploadStatusUploading UploadStatus = "Uploading"

	// UploadStatusCompleted means the backend accepted the file
	UploadStatusCompleted UploadStatus = "Completed"

	// UploadStatusError means the request failed or was rejected
	UploadStatusError UploadStatus = "Error"
)

// String returns the string representation of UploadStatus
func (us UploadStatus) String() string {
	return string(us)
}

// IsActive returns true while the file is being transferred
func (us UploadStatus) IsActive() bool {
	return us == UploadStatusUploading
}

// IsFinished returns true if the upload settled (completed or error)
func (us UploadStatus) IsFinished() bool {
	return us == UploadStatusCompleted || us == UploadStatusError
}

// LoadState is the state of a progressively loaded image
type LoadState int

const (
	// LoadStateIdle: not visible yet, nothing requested
	LoadStateIdle LoadState = iota
	// LoadStateVisible: entered the viewport proximity, primary image requested
	LoadStateVisible
	// LoadStateLoaded: primary image decoded
	LoadStateLoaded
	// LoadStateErrored: primary image failed to load or decode
	LoadStateErrored
)

// String returns a readable name for the state
func (ls LoadState) String() string {
	switch ls {
	case LoadStateIdle:
		return "Idle"
	case LoadStateVisible:
		return "Visible"
	case LoadStateLoaded:
		return "Loaded"
	case LoadStateErrored:
		return "Errored"
	default:
		return "Unknown"
	}
}

// IsTerminal returns true for Loaded and Errored
func (ls LoadState) IsTerminal() bool {
	return ls == LoadStateLoaded || ls == LoadStateErrored
}
