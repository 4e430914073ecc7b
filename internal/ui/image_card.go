package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/imageboost/internal/gallery"
	"github.com/ytget/imageboost/internal/lazyimage"
	"github.com/ytget/imageboost/internal/model"
	"github.com/ytget/imageboost/internal/visibility"
)

// imageCard is one gallery item: the lazily loaded image, its stats and actions
type imageCard struct {
	record       model.ImageRecord
	image        *SmartImage
	subscription visibility.Subscription
	object       fyne.CanvasObject
}

// newImageCard builds the card's widgets for a record
func newImageCard(record model.ImageRecord, loader *lazyimage.Loader, localization *Localization,
	onView, onDelete func(model.ImageRecord)) *imageCard {

	card := gallery.NewCard(record)
	ic := &imageCard{
		record: record,
		image:  NewSmartImage(loader, fyne.NewSize(CardWidth, CardImageHeight), localization),
	}

	title := widget.NewLabel(card.Title)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Truncation = fyne.TextTruncateEllipsis

	stats := widget.NewForm(
		widget.NewFormItem(localization.GetText(KeyDimensions), widget.NewLabel(card.Dimensions)),
		widget.NewFormItem(localization.GetText(KeyOriginalSize), widget.NewLabel(card.OriginalSize)),
	)
	if card.ShowReduction {
		reduction := widget.NewLabel(card.Reduction)
		reduction.Importance = widget.SuccessImportance
		stats.Append(localization.GetText(KeyReduction), reduction)
	}
	stats.Append(localization.GetText(KeyFormat), widget.NewLabel(card.Format))

	viewBtn := widget.NewButton(IconView+" "+localization.GetText(KeyView), func() {
		if onView != nil {
			onView(ic.record)
		}
	})
	if card.ViewURL == "" {
		viewBtn.Disable()
	}

	deleteBtn := widget.NewButton(IconDelete+" "+localization.GetText(KeyDelete), func() {
		if onDelete != nil {
			onDelete(ic.record)
		}
	})
	deleteBtn.Importance = widget.DangerImportance

	ic.object = widget.NewCard("", "", container.NewVBox(
		ic.image,
		title,
		stats,
		container.NewGridWithColumns(2, viewBtn, deleteBtn),
	))
	return ic
}

// bounds reports the card's rectangle inside the gallery grid
func (ic *imageCard) bounds() (visibility.Rect, bool) {
	if !ic.object.Visible() {
		return visibility.Rect{}, false
	}
	pos := ic.object.Position()
	size := ic.object.Size()
	return visibility.Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}, true
}

// release stops watching visibility and cancels a pending load
func (ic *imageCard) release() {
	if ic.subscription != nil {
		ic.subscription.Cancel()
	}
	ic.image.Loader().Close()
}
