package gallery

import (
	"fmt"
	"strconv"

	"github.com/ytget/imageboost/internal/model"
)

// Card is the display text for one gallery item
type Card struct {
	ID            int64
	Title         string
	Dimensions    string
	OriginalSize  string
	Reduction     string // empty when there is no reduction to show
	Format        string
	ViewURL       string
	ImageSource   string
	Placeholder   string
	ShowReduction bool
}

// NewCard describes a record for display
func NewCard(record model.ImageRecord) Card {
	card := Card{
		ID:           record.ID,
		Title:        record.OriginalName,
		Dimensions:   fmt.Sprintf("%d × %dpx", record.Width, record.Height),
		OriginalSize: model.FormatFileSize(record.OriginalSize),
		Format:       record.Format,
		ViewURL:      record.ViewURL(),
		ImageSource:  record.PrimarySource(),
		Placeholder:  record.BlurPlaceholder,
	}

	if record.HasReduction() {
		card.ShowReduction = true
		card.Reduction = "-" + strconv.FormatFloat(record.SizeReduction, 'f', -1, 64) + "%"
	}
	return card
}
