package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/imageboost/internal/lazyimage"
	"github.com/ytget/imageboost/internal/model"
)

// SmartImage renders a lazyimage.Loader: blurred placeholder, spinner,
// error indicator, and the final image faded in.
type SmartImage struct {
	widget.BaseWidget

	loader *lazyimage.Loader
	size   fyne.Size

	background  *canvas.Rectangle
	placeholder *canvas.Image
	image       *canvas.Image
	spinner     *widget.Activity
	errorBox    *fyne.Container
	fade        *fyne.Animation
}

// NewSmartImage creates the widget and subscribes to the loader's transitions
func NewSmartImage(loader *lazyimage.Loader, size fyne.Size, localization *Localization) *SmartImage {
	si := &SmartImage{loader: loader, size: size}
	si.ExtendBaseWidget(si)

	si.background = canvas.NewRectangle(color.NRGBA{R: 128, G: 128, B: 128, A: 40})
	si.background.SetMinSize(size)

	si.placeholder = canvas.NewImageFromImage(loader.Placeholder())
	si.placeholder.FillMode = canvas.ImageFillContain
	si.placeholder.ScaleMode = canvas.ImageScaleSmooth
	si.placeholder.Hide()

	si.image = &canvas.Image{FillMode: canvas.ImageFillContain, ScaleMode: canvas.ImageScaleSmooth}
	si.image.Translucency = 1
	si.image.Hide()

	si.spinner = widget.NewActivity()
	si.spinner.Hide()

	errorLabel := widget.NewLabel(IconError + " " + localization.GetText(KeyImageError))
	errorLabel.Importance = widget.DangerImportance
	si.errorBox = container.NewCenter(errorLabel)
	si.errorBox.Hide()

	loader.SetChangeCallback(func(model.LoadState) {
		fyne.Do(si.applyState)
	})
	si.applyState()
	return si
}

// Loader returns the underlying loader
func (si *SmartImage) Loader() *lazyimage.Loader {
	return si.loader
}

// applyState shows the elements the loader's display calls for. Must run on
// the UI goroutine.
func (si *SmartImage) applyState() {
	display := si.loader.Display()

	setVisible(si.placeholder, display.Placeholder)
	setVisible(si.errorBox, display.Error)

	if display.Spinner {
		si.spinner.Show()
		si.spinner.Start()
	} else {
		si.spinner.Stop()
		si.spinner.Hide()
	}

	if display.Image {
		si.image.Show()
	}
	if display.Opaque && si.image.Image == nil {
		si.image.Image = si.loader.Image()
		si.startFade()
	}

	si.Refresh()
}

// startFade animates the image from transparent to opaque
func (si *SmartImage) startFade() {
	si.fade = fyne.NewAnimation(ImageFadeDuration, func(progress float32) {
		si.image.Translucency = 1 - float64(progress)
		si.image.Refresh()
	})
	si.fade.Curve = fyne.AnimationEaseOut
	si.fade.Start()
}

// MinSize returns the configured display size
func (si *SmartImage) MinSize() fyne.Size {
	return si.size
}

// CreateRenderer creates the widget renderer
func (si *SmartImage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(
		si.background,
		si.placeholder,
		si.image,
		container.NewCenter(si.spinner),
		si.errorBox,
	))
}

func setVisible(obj fyne.CanvasObject, visible bool) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}
