package ui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/imageboost/internal/model"
	"github.com/ytget/imageboost/internal/platform"
	"github.com/ytget/imageboost/internal/upload"
)

// UploadPanel collects files from the picker or window drops and uploads them
type UploadPanel struct {
	ctx          context.Context
	window       fyne.Window
	service      upload.Uploader
	localization *Localization
	log          *zap.Logger

	titleLabel    *widget.Label
	dropLabel     *widget.Label
	formatsLabel  *widget.Label
	selectBtn     *widget.Button
	uploadBtn     *widget.Button
	selectedLabel *widget.Label
	rowsBox       *fyne.Container
	selectionBox  *fyne.Container
	content       *fyne.Container

	rows map[string]*UploadRow
}

// NewUploadPanel creates the panel and subscribes to the upload service
func NewUploadPanel(ctx context.Context, window fyne.Window, service upload.Uploader, localization *Localization, log *zap.Logger) *UploadPanel {
	p := &UploadPanel{
		ctx:          ctx,
		window:       window,
		service:      service,
		localization: localization,
		log:          log,
		rows:         make(map[string]*UploadRow),
	}

	p.createUI()
	service.SetUpdateCallback(func(upload.Event) {
		fyne.Do(p.refresh)
	})
	window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		p.HandleDrop(uris)
	})

	p.refresh()
	return p
}

// Container returns the panel's root object
func (p *UploadPanel) Container() fyne.CanvasObject {
	return p.content
}

// createUI creates the UI components
func (p *UploadPanel) createUI() {
	p.titleLabel = widget.NewLabel("")
	p.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	p.dropLabel = widget.NewLabel("")
	p.dropLabel.Alignment = fyne.TextAlignCenter
	p.formatsLabel = widget.NewLabel("")
	p.formatsLabel.Alignment = fyne.TextAlignCenter
	p.formatsLabel.Importance = widget.LowImportance

	p.selectBtn = widget.NewButton("", p.onSelectClick)
	p.uploadBtn = widget.NewButton("", p.onUploadClick)
	p.uploadBtn.Importance = widget.HighImportance

	p.selectedLabel = widget.NewLabel("")
	p.rowsBox = container.NewVBox()
	p.selectionBox = container.NewVBox(p.selectedLabel, p.rowsBox, p.uploadBtn)

	dropZone := container.NewVBox(
		widget.NewLabel(IconFolder),
		p.dropLabel,
		p.formatsLabel,
		container.NewCenter(p.selectBtn),
	)

	p.content = container.NewVBox(
		p.titleLabel,
		widget.NewCard("", "", dropZone),
		p.selectionBox,
	)
	p.RefreshTexts()
}

// RefreshTexts applies the current language to static texts
func (p *UploadPanel) RefreshTexts() {
	p.titleLabel.SetText(IconUpload + " " + p.localization.GetText(KeyUploadTitle))
	p.dropLabel.SetText(p.localization.GetText(KeyDropHint))
	p.formatsLabel.SetText(p.localization.GetText(KeyFormatsHint))
	p.selectBtn.SetText(p.localization.GetText(KeySelectImage))
}

// HandleDrop replaces the selection with the dropped files
func (p *UploadPanel) HandleDrop(uris []fyne.URI) {
	files := make([]model.LocalFile, 0, len(uris))
	for _, uri := range uris {
		file, err := platform.LocalFileFromURI(uri)
		if err != nil {
			p.log.Warn("skipping dropped item", zap.String("uri", uri.String()), zap.Error(err))
			continue
		}
		files = append(files, file)
	}

	if _, err := p.service.Select(files); err != nil {
		p.log.Info("drop ignored", zap.Error(err))
	}
}

// onSelectClick opens the file picker; picked files are appended
func (p *UploadPanel) onSelectClick() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, p.window)
			return
		}
		if reader == nil {
			return
		}
		uri := reader.URI()
		reader.Close()

		file, err := platform.LocalFileFromURI(uri)
		if err != nil {
			dialog.ShowError(err, p.window)
			return
		}
		if _, err := p.service.Add([]model.LocalFile{file}); err != nil && !errors.Is(err, upload.ErrUploadInProgress) {
			dialog.ShowError(err, p.window)
		}
	}, p.window)

	fd.SetFilter(storage.NewExtensionFileFilter(platform.ImageExtensions))
	if dir, err := platform.GetPicturesDir(); err == nil {
		if location, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fd.SetLocation(location)
		}
	}
	fd.Show()
}

// onUploadClick starts the batch off the UI goroutine
func (p *UploadPanel) onUploadClick() {
	p.uploadBtn.Disable()
	go func() {
		if err := p.service.Start(p.ctx); err != nil {
			p.log.Warn("upload not started", zap.Error(err))
		}
	}()
}

// onRemove drops a pending file
func (p *UploadPanel) onRemove(id string) {
	if err := p.service.Remove(id); err != nil {
		p.log.Warn("failed to remove pending upload", zap.String("id", id), zap.Error(err))
	}
}

// refresh rebuilds the pending list from the service. Must run on the UI
// goroutine.
func (p *UploadPanel) refresh() {
	selection := p.service.Selection()
	uploading := p.service.IsUploading()

	objects := make([]fyne.CanvasObject, 0, len(selection))
	seen := make(map[string]bool, len(selection))
	for _, pu := range selection {
		percent, started := p.service.Progress(pu.File.Name)

		row, exists := p.rows[pu.ID]
		if !exists {
			row = NewUploadRow(pu, p.localization, p.onRemove)
			p.rows[pu.ID] = row
		}
		row.Update(pu, percent, started, uploading)

		seen[pu.ID] = true
		objects = append(objects, row)
	}
	for id := range p.rows {
		if !seen[id] {
			delete(p.rows, id)
		}
	}
	p.rowsBox.Objects = objects
	p.rowsBox.Refresh()

	p.selectedLabel.SetText(p.localization.Format(KeySelectedFiles, len(selection)))
	if uploading {
		p.uploadBtn.SetText(p.localization.GetText(KeyUploading))
		p.uploadBtn.Disable()
		p.selectBtn.Disable()
	} else {
		p.uploadBtn.SetText(p.localization.Format(KeyUploadButton, len(selection)))
		p.uploadBtn.Enable()
		p.selectBtn.Enable()
	}

	setVisible(p.selectionBox, len(selection) > 0)
}
