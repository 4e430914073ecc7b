package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconUpload   = "📤"
	IconFolder   = "📁"
	IconImage    = "🖼️"
	IconView     = "👁️"
	IconDelete   = "🗑️"
	IconRemove   = "×"
	IconError    = "❌"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	ProgressLabelFormat = "%d%%"
)

// Layout sizing (upload rows)
const (
	PercentLabelWidth float32 = 48
	SizeLabelWidth    float32 = 84
	ProgressBarWidth  float32 = 160
)

// Gallery sizing
const (
	CardWidth       float32 = 280
	CardHeight      float32 = 400
	CardImageHeight float32 = 200
)

// Window sizing
const (
	WindowWidth  float32 = 1000
	WindowHeight float32 = 760
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 320
)

// Animations
const (
	ImageFadeDuration = 300 * time.Millisecond
)
