package ui

import (
	"context"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/ytget/imageboost/internal/api"
	"github.com/ytget/imageboost/internal/config"
	"github.com/ytget/imageboost/internal/gallery"
	"github.com/ytget/imageboost/internal/library"
	"github.com/ytget/imageboost/internal/model"
	"github.com/ytget/imageboost/internal/upload"
)

// Services groups the collaborators the window is wired to
type Services struct {
	Shell    *library.Shell
	Uploader upload.Uploader
	Deleter  gallery.Deleter
	Fetcher  api.ImageAPI
	Pool     pond.Pool

	// MaxImageDimension bounds decoded gallery images; 0 keeps source size
	MaxImageDimension uint
}

// RootUI represents the main UI structure
type RootUI struct {
	ctx          context.Context
	app          fyne.App
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	services     Services
	confirmer    gallery.Confirmer
	log          *zap.Logger

	titleLabel    *widget.Label
	subtitleLabel *widget.Label
	uploadPanel   *UploadPanel
	galleryView   *GalleryView
}

// NewRootUI creates and initializes the main UI
func NewRootUI(ctx context.Context, app fyne.App, window fyne.Window, settings *config.Settings, services Services, log *zap.Logger) *RootUI {
	if log == nil {
		log = zap.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		ctx:          ctx,
		app:          app,
		window:       window,
		settings:     settings,
		localization: localization,
		services:     services,
		confirmer:    NewDeleteConfirmer(window, localization),
		log:          log,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	ui.wireServices()
	return ui
}

// Start triggers the initial list fetch
func (ui *RootUI) Start() {
	go ui.services.Shell.Load(ui.ctx)
}

// Gallery returns the gallery view
func (ui *RootUI) Gallery() *GalleryView {
	return ui.galleryView
}

// Uploads returns the upload panel
func (ui *RootUI) Uploads() *UploadPanel {
	return ui.uploadPanel
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.subtitleLabel = widget.NewLabel("")
	ui.subtitleLabel.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	titles := container.NewVBox(ui.titleLabel, ui.subtitleLabel)
	var header *fyne.Container
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, logoImage, settingsBtn, titles)
	} else {
		header = container.NewBorder(nil, nil, nil, settingsBtn, titles)
	}

	ui.uploadPanel = NewUploadPanel(ui.ctx, ui.window, ui.services.Uploader, ui.localization, ui.log.Named("upload"))

	ui.galleryView = NewGalleryView(ui.localization, ui.services.Fetcher, ui.services.Pool,
		ui.services.MaxImageDimension, ui.log.Named("gallery"))
	ui.galleryView.SetCallbacks(ui.onView, ui.onDelete)

	content := container.NewBorder(
		container.NewVBox(header, ui.uploadPanel.Container()), // top
		nil,                        // bottom
		nil,                        // left
		nil,                        // right
		ui.galleryView.Container(), // center
	)

	ui.refreshUITexts()
	ui.window.SetContent(content)
}

// wireServices connects service callbacks to the views
func (ui *RootUI) wireServices() {
	shell := ui.services.Shell

	shell.Store().SetChangeCallback(func(images []model.ImageRecord) {
		fyne.Do(func() { ui.galleryView.SetImages(images) })
	})
	shell.SetLoadingCallback(func(loading bool) {
		fyne.Do(func() { ui.galleryView.SetLoading(loading) })
	})

	ui.services.Uploader.SetUploadedCallback(shell.HandleUploaded)
	ui.services.Uploader.SetFailedCallback(func(fileName, message string) {
		showAlert(ui.window, ui.localization.GetText(KeyError),
			ui.localization.Format(KeyUploadFailed, fileName, message))
	})

	ui.services.Deleter.SetDeletedCallback(shell.HandleDeleted)
	ui.services.Deleter.SetFailedCallback(func(id int64, message string) {
		showAlert(ui.window, ui.localization.GetText(KeyError),
			ui.localization.GetText(KeyDeleteFailed)+": "+message)
	})
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	refreshItem := fyne.NewMenuItem(ui.localization.GetText(KeyRefresh), ui.onRefresh)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	quitItem := fyne.NewMenuItem(ui.localization.GetText(KeyQuit), ui.app.Quit)
	quitItem.IsQuit = true

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), refreshItem, settingsItem, fyne.NewMenuItemSeparator(), quitItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.SetText(IconImage + " " + ui.localization.GetText(KeyAppTitle))
	ui.subtitleLabel.SetText(ui.localization.GetText(KeyAppSubtitle))
	ui.uploadPanel.RefreshTexts()
	ui.galleryView.RefreshTexts()
}

func (ui *RootUI) onRefresh() {
	if ui.services.Shell.IsLoading() {
		return
	}
	go ui.services.Shell.Reload(ui.ctx)
}

func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.onLanguageChange(ui.settings.GetLanguage())
		showAlert(ui.window, ui.localization.GetText(KeySettings),
			ui.localization.GetText(KeySettingsSaved)+"\n"+ui.localization.GetText(KeyRestartRequired))
	})
}

// onView opens the record's best resource in the system browser
func (ui *RootUI) onView(record model.ImageRecord) {
	u, err := url.Parse(record.ViewURL())
	if err == nil {
		err = ui.app.OpenURL(u)
	}
	if err != nil {
		ui.log.Error("failed to open image", zap.Int64("image_id", record.ID), zap.Error(err))
		showAlert(ui.window, ui.localization.GetText(KeyError), ui.localization.GetText(KeyErrorOpeningURL))
	}
}

// onDelete asks for confirmation, then deletes in the background
func (ui *RootUI) onDelete(record model.ImageRecord) {
	ui.services.Deleter.RequestDelete(ui.ctx, record, ui.confirmer)
}
