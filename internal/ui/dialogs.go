package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytget/imageboost/internal/gallery"
	"github.com/ytget/imageboost/internal/model"
)

// NewDeleteConfirmer returns a confirmer backed by a modal dialog on window
func NewDeleteConfirmer(window fyne.Window, localization *Localization) gallery.Confirmer {
	return gallery.ConfirmFunc(func(record model.ImageRecord, onResult func(bool)) {
		fyne.Do(func() {
			dialog.ShowConfirm(
				localization.GetText(KeyConfirmDeleteTitle),
				localization.GetText(KeyConfirmDelete),
				func(approved bool) {
					// the deletion request blocks on the network
					go onResult(approved)
				},
				window,
			)
		})
	})
}

// showAlert shows a blocking informational message; safe from any goroutine
func showAlert(window fyne.Window, title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, window)
	})
}
