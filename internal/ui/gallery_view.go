package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/ytget/imageboost/internal/lazyimage"
	"github.com/ytget/imageboost/internal/model"
	"github.com/ytget/imageboost/internal/visibility"
)

// GalleryView renders the record list as a scrollable grid of cards
type GalleryView struct {
	localization *Localization
	log          *zap.Logger

	fetcher      lazyimage.Fetcher
	pool         pond.Pool
	maxDimension uint
	tracker      *visibility.Tracker

	onView   func(model.ImageRecord)
	onDelete func(model.ImageRecord)

	header       *widget.Label
	emptyLabel   *widget.Label
	loadingLabel *widget.Label
	loadingBox   *fyne.Container
	grid         *fyne.Container
	scroll       *container.Scroll
	galleryBox   *fyne.Container
	content      *fyne.Container
	loading      bool
	cards        map[int64]*imageCard
	recordCount  int
}

// NewGalleryView creates the gallery. Image fetches run on pool.
func NewGalleryView(localization *Localization, fetcher lazyimage.Fetcher, pool pond.Pool, maxDimension uint, log *zap.Logger) *GalleryView {
	if log == nil {
		log = zap.NewNop()
	}
	gv := &GalleryView{
		localization: localization,
		log:          log,
		fetcher:      fetcher,
		pool:         pool,
		maxDimension: maxDimension,
		tracker:      visibility.NewTracker(visibility.DefaultMargin),
		cards:        make(map[int64]*imageCard),
	}
	gv.createUI()
	return gv
}

// SetCallbacks sets the card action handlers
func (gv *GalleryView) SetCallbacks(onView, onDelete func(model.ImageRecord)) {
	gv.onView = onView
	gv.onDelete = onDelete
}

// Container returns the view's root object
func (gv *GalleryView) Container() fyne.CanvasObject {
	return gv.content
}

// createUI creates the UI components
func (gv *GalleryView) createUI() {
	gv.header = widget.NewLabel("")
	gv.header.TextStyle = fyne.TextStyle{Bold: true}
	gv.header.SizeName = theme.SizeNameSubHeadingText

	gv.emptyLabel = widget.NewLabel("")
	gv.emptyLabel.Alignment = fyne.TextAlignCenter
	gv.emptyLabel.Importance = widget.LowImportance

	gv.loadingLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	gv.loadingBox = container.NewVBox(widget.NewProgressBarInfinite(), gv.loadingLabel)
	gv.loadingBox.Hide()

	gv.grid = container.NewGridWrap(fyne.NewSize(CardWidth, CardHeight))
	gv.scroll = container.NewVScroll(gv.grid)
	gv.scroll.OnScrolled = func(fyne.Position) { gv.updateVisibility() }

	gv.galleryBox = container.NewBorder(gv.header, nil, nil, nil, gv.scroll)

	gv.content = container.New(&resizeNotifier{
		inner:    layout.NewStackLayout(),
		onResize: func(fyne.Size) { gv.updateVisibility() },
	}, gv.galleryBox, container.NewCenter(gv.emptyLabel), container.NewCenter(gv.loadingBox))

	gv.SetImages(nil)
}

// SetLoading swaps the gallery for a loading indicator while a fetch is pending
func (gv *GalleryView) SetLoading(loading bool) {
	gv.loading = loading
	gv.applyVisibility()
	gv.updateVisibility()
}

// IsLoading reports whether the loading indicator is shown
func (gv *GalleryView) IsLoading() bool {
	return gv.loading
}

// SetImages renders a snapshot of the record list. Cards are reused by id;
// cards for removed records release their subscription and loader.
func (gv *GalleryView) SetImages(images []model.ImageRecord) {
	objects := make([]fyne.CanvasObject, 0, len(images))
	seen := make(map[int64]bool, len(images))

	for _, record := range images {
		if seen[record.ID] {
			continue
		}
		seen[record.ID] = true

		card, exists := gv.cards[record.ID]
		if !exists {
			card = gv.newCard(record)
			gv.cards[record.ID] = card
		}
		objects = append(objects, card.object)
	}

	for id, card := range gv.cards {
		if !seen[id] {
			card.release()
			delete(gv.cards, id)
		}
	}

	gv.recordCount = len(images)
	gv.RefreshTexts()

	gv.grid.Objects = objects
	gv.grid.Refresh()
	gv.applyVisibility()
	gv.updateVisibility()
}

// RefreshTexts applies the current language to the view's labels
func (gv *GalleryView) RefreshTexts() {
	gv.header.SetText(gv.localization.Format(KeyGalleryTitle, gv.recordCount))
	gv.emptyLabel.SetText(gv.localization.GetText(KeyGalleryEmpty))
	gv.loadingLabel.SetText(gv.localization.GetText(KeyLoadingImages))
}

// newCard creates a card whose loader starts when it nears the viewport
func (gv *GalleryView) newCard(record model.ImageRecord) *imageCard {
	loader := lazyimage.NewLoader(lazyimage.Options{
		Source:       record.PrimarySource(),
		Placeholder:  record.BlurPlaceholder,
		MaxDimension: gv.maxDimension,
	}, gv.fetcher, gv.pool, gv.log.With(zap.Int64("image_id", record.ID)))

	card := newImageCard(record, loader, gv.localization, gv.handleView, gv.handleDelete)
	card.subscription = gv.tracker.Observe(card.bounds, loader.MarkVisible)
	return card
}

func (gv *GalleryView) handleView(record model.ImageRecord) {
	if gv.onView != nil {
		gv.onView(record)
	}
}

func (gv *GalleryView) handleDelete(record model.ImageRecord) {
	if gv.onDelete != nil {
		gv.onDelete(record)
	}
}

// applyVisibility shows exactly one of loading, empty state, or gallery
func (gv *GalleryView) applyVisibility() {
	setVisible(gv.loadingBox, gv.loading)
	setVisible(gv.emptyLabel, !gv.loading && gv.recordCount == 0)
	setVisible(gv.galleryBox, !gv.loading && gv.recordCount > 0)
	gv.content.Refresh()
}

// updateVisibility reports the scroll viewport to the tracker
func (gv *GalleryView) updateVisibility() {
	if !gv.galleryBox.Visible() {
		return
	}
	size := gv.scroll.Size()
	gv.tracker.Update(visibility.Rect{
		X:      gv.scroll.Offset.X,
		Y:      gv.scroll.Offset.Y,
		Width:  size.Width,
		Height: size.Height,
	})
}

// resizeNotifier wraps a layout and reports every new size
type resizeNotifier struct {
	inner    fyne.Layout
	onResize func(fyne.Size)
}

// Layout lays out objects, then reports the size
func (r *resizeNotifier) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	r.inner.Layout(objects, size)
	if r.onResize != nil {
		r.onResize(size)
	}
}

// MinSize returns the wrapped layout's minimum size
func (r *resizeNotifier) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return r.inner.MinSize(objects)
}
