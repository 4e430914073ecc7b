package ui

import (
	"fmt"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/alitto/pond/v2"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/imageboost/internal/api/apitest"
	"github.com/ytget/imageboost/internal/model"
)

func testRecords(n int) []model.ImageRecord {
	records := make([]model.ImageRecord, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, model.ImageRecord{
			ID:           int64(i),
			OriginalName: fmt.Sprintf("image-%d.png", i),
			WebPURL:      fmt.Sprintf("http://backend/media/%d.webp", i),
			Width:        640,
			Height:       480,
			OriginalSize: 2048,
			Format:       "WEBP",
		})
	}
	return records
}

func newTestGallery(t *testing.T, fetcher *apitest.Fake) *GalleryView {
	t.Helper()
	test.NewTempApp(t)
	pool := pond.NewPool(2)
	t.Cleanup(pool.StopAndWait)
	return NewGalleryView(NewLocalization(), fetcher, pool, 0, zaptest.NewLogger(t))
}

func TestGalleryViewStates(t *testing.T) {
	gv := newTestGallery(t, &apitest.Fake{})

	tests := []struct {
		name        string
		loading     bool
		records     int
		wantLoading bool
		wantEmpty   bool
		wantGallery bool
	}{
		{"empty", false, 0, false, true, false},
		{"with records", false, 2, false, false, true},
		{"loading hides records", true, 2, true, false, false},
		{"loading hides empty state", true, 0, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gv.SetImages(testRecords(tt.records))
			gv.SetLoading(tt.loading)

			if got := gv.loadingBox.Visible(); got != tt.wantLoading {
				t.Errorf("loading visible = %v, expected %v", got, tt.wantLoading)
			}
			if got := gv.emptyLabel.Visible(); got != tt.wantEmpty {
				t.Errorf("empty visible = %v, expected %v", got, tt.wantEmpty)
			}
			if got := gv.galleryBox.Visible(); got != tt.wantGallery {
				t.Errorf("gallery visible = %v, expected %v", got, tt.wantGallery)
			}
			if got := gv.IsLoading(); got != tt.loading {
				t.Errorf("IsLoading() = %v, expected %v", got, tt.loading)
			}
		})
	}
}

func TestGalleryViewHeader(t *testing.T) {
	gv := newTestGallery(t, &apitest.Fake{})

	gv.SetImages(testRecords(1))
	if gv.header.Text != "Optimized Image Gallery (1)" {
		t.Errorf("header = %q, expected %q", gv.header.Text, "Optimized Image Gallery (1)")
	}
	if gv.emptyLabel.Text != "No images yet. Upload your first image!" {
		t.Errorf("empty text = %q", gv.emptyLabel.Text)
	}

	gv.localization.SetLanguage("fr")
	gv.RefreshTexts()
	if gv.header.Text != "Galerie d'Images Optimisées (1)" {
		t.Errorf("header = %q after language change", gv.header.Text)
	}
}

func TestGalleryViewReusesAndReleasesCards(t *testing.T) {
	gv := newTestGallery(t, &apitest.Fake{})

	records := testRecords(3)
	gv.SetImages(records)
	first := gv.cards[1]

	if len(gv.grid.Objects) != 3 {
		t.Fatalf("grid objects = %d, expected 3", len(gv.grid.Objects))
	}

	// newest first, as after an upload
	added := model.ImageRecord{ID: 10, OriginalName: "new.png", WebPURL: "http://backend/media/10.webp"}
	gv.SetImages(append([]model.ImageRecord{added}, records[:1]...))

	if gv.cards[1] != first {
		t.Errorf("card for record 1 was recreated")
	}
	if _, ok := gv.cards[2]; ok {
		t.Errorf("card for removed record 2 still present")
	}
	if gv.grid.Objects[0] != gv.cards[10].object {
		t.Errorf("new record is not rendered first")
	}
	if len(gv.cards) != 2 {
		t.Errorf("cards = %d, expected 2", len(gv.cards))
	}

	gv.SetImages(nil)
	if gv.tracker.Len() != 0 {
		t.Errorf("tracker.Len() = %d, expected 0 after clearing", gv.tracker.Len())
	}
}

func TestGalleryViewDuplicateIDs(t *testing.T) {
	gv := newTestGallery(t, &apitest.Fake{})

	records := testRecords(2)
	gv.SetImages(append(records, records[0]))

	if len(gv.grid.Objects) != 2 {
		t.Errorf("grid objects = %d, expected 2", len(gv.grid.Objects))
	}
}

func TestGalleryViewLoadsOnlyNearViewport(t *testing.T) {
	fake := &apitest.Fake{}
	gv := newTestGallery(t, fake)

	w := test.NewWindow(gv.Container())
	defer w.Close()
	w.Resize(fyne.NewSize(CardWidth+40, CardHeight))

	const total = 12
	gv.SetImages(testRecords(total))
	for _, card := range gv.cards {
		card.image.Loader().Wait()
	}

	fetched := len(fake.Fetches())
	if fetched == 0 {
		t.Fatalf("no image requested for the first visible card")
	}
	if fetched == total {
		t.Errorf("all %d images requested, expected only those near the viewport", total)
	}
	if pending := gv.tracker.Len(); fetched+pending != total {
		t.Errorf("fetched %d + pending %d, expected %d", fetched, pending, total)
	}
}

func TestGalleryViewCallbacks(t *testing.T) {
	gv := newTestGallery(t, &apitest.Fake{})

	var viewed, deleted []int64
	gv.SetCallbacks(
		func(r model.ImageRecord) { viewed = append(viewed, r.ID) },
		func(r model.ImageRecord) { deleted = append(deleted, r.ID) },
	)

	records := testRecords(2)
	gv.handleView(records[0])
	gv.handleDelete(records[1])

	if len(viewed) != 1 || viewed[0] != 1 {
		t.Errorf("viewed = %v, expected [1]", viewed)
	}
	if len(deleted) != 1 || deleted[0] != 2 {
		t.Errorf("deleted = %v, expected [2]", deleted)
	}
}
