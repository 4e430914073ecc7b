package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/imageboost/internal/model"
)

// Progress display constants
const (
	MaxProgressPercent = 100
)

// UploadRow represents a compact row for one pending upload
type UploadRow struct {
	widget.BaseWidget

	upload       model.PendingUpload
	percent      int
	started      bool
	locked       bool
	localization *Localization

	// UI components
	nameLabel    *widget.Label
	sizeLabel    *widget.Label
	percentLabel *widget.Label
	progressBar  *widget.ProgressBar
	removeBtn    *widget.Button
	onRemove     func(id string)
}

// NewUploadRow creates a new upload row widget
func NewUploadRow(upload model.PendingUpload, localization *Localization, onRemove func(id string)) *UploadRow {
	ur := &UploadRow{
		upload:       upload,
		localization: localization,
		onRemove:     onRemove,
	}
	ur.ExtendBaseWidget(ur)
	ur.createUI()
	ur.updateFromUpload()
	return ur
}

// Update sets the row's data. percent comes from the name-keyed progress map;
// started is true once the batch has reached this row; locked disables removal.
func (ur *UploadRow) Update(upload model.PendingUpload, percent int, started, locked bool) {
	ur.upload = upload
	ur.percent = percent
	ur.started = started
	ur.locked = locked
	ur.updateFromUpload()
	ur.Refresh()
}

// createUI creates the UI components
func (ur *UploadRow) createUI() {
	ur.nameLabel = widget.NewLabel("")
	ur.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	ur.nameLabel.Truncation = fyne.TextTruncateEllipsis

	ur.sizeLabel = widget.NewLabel("")
	ur.sizeLabel.Alignment = fyne.TextAlignTrailing
	ur.sizeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	ur.percentLabel = widget.NewLabel("")
	ur.percentLabel.Alignment = fyne.TextAlignTrailing

	ur.progressBar = widget.NewProgressBar()
	ur.progressBar.Max = MaxProgressPercent
	ur.progressBar.TextFormatter = func() string { return "" }

	ur.removeBtn = widget.NewButton(IconRemove, func() {
		if ur.onRemove != nil {
			ur.onRemove(ur.upload.ID)
		}
	})
	ur.removeBtn.Importance = widget.DangerImportance
}

// updateFromUpload refreshes component state from the current data
func (ur *UploadRow) updateFromUpload() {
	ur.nameLabel.SetText(ur.upload.File.Name)
	ur.sizeLabel.SetText(ur.upload.GetSizeString())

	percent := max(0, min(ur.percent, MaxProgressPercent))
	if ur.started {
		ur.progressBar.SetValue(float64(percent))
		ur.progressBar.Show()
		ur.percentLabel.SetText(fmt.Sprintf(ProgressLabelFormat, percent))
		ur.percentLabel.Show()
	} else {
		ur.progressBar.Hide()
		ur.percentLabel.Hide()
	}

	if ur.upload.Status == model.UploadStatusError {
		ur.nameLabel.Importance = widget.DangerImportance
	} else {
		ur.nameLabel.Importance = widget.MediumImportance
	}

	if ur.locked {
		ur.removeBtn.Hide()
	} else {
		ur.removeBtn.Show()
	}
}

// CreateRenderer creates the widget renderer
func (ur *UploadRow) CreateRenderer() fyne.WidgetRenderer {
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	rightSide := container.NewHBox(
		fixedWidth(SizeLabelWidth, ur.sizeLabel),
		fixedWidth(ProgressBarWidth, ur.progressBar),
		fixedWidth(PercentLabelWidth, ur.percentLabel),
		ur.removeBtn,
	)

	return widget.NewSimpleRenderer(container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel(IconImage), rightSide, ur.nameLabel),
		widget.NewSeparator(),
	))
}
