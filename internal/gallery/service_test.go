package gallery

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/ytget/imageboost/internal/api"
	"github.com/ytget/imageboost/internal/api/apitest"
	"github.com/ytget/imageboost/internal/model"
)

type outcome struct {
	deleted []int64
	failed  []string
}

func newTestService(t *testing.T, fake *apitest.Fake) (*Service, *outcome) {
	t.Helper()
	out := &outcome{}
	service := NewService(fake, zaptest.NewLogger(t))
	service.SetDeletedCallback(func(id int64) { out.deleted = append(out.deleted, id) })
	service.SetFailedCallback(func(id int64, message string) { out.failed = append(out.failed, message) })
	return service, out
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name        string
		deleteErr   error
		wantDeleted bool
		wantMessage string
	}{
		{"no content", nil, true, ""},
		{"not found", &api.StatusError{StatusCode: http.StatusNotFound}, false, "request failed with status code 404"},
		{"server text", &api.StatusError{StatusCode: http.StatusInternalServerError, Message: "Storage unavailable"}, false, "Storage unavailable"},
		{"unexpected ok", &api.StatusError{StatusCode: http.StatusOK}, false, "request failed with status code 200"},
		{"transport", errors.New("connection reset"), false, "connection reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &apitest.Fake{Images: []model.ImageRecord{{ID: 1}}}
			if tt.deleteErr != nil {
				fake.DeleteErrs = map[int64]error{1: tt.deleteErr}
			}
			service, out := newTestService(t, fake)

			err := service.Delete(context.Background(), 1)
			if (err == nil) != tt.wantDeleted {
				t.Fatalf("Delete() error = %v, wantDeleted %v", err, tt.wantDeleted)
			}

			if tt.wantDeleted {
				if len(out.deleted) != 1 || out.deleted[0] != 1 || len(out.failed) != 0 {
					t.Errorf("callbacks deleted=%v failed=%v, expected deleted=[1]", out.deleted, out.failed)
				}
				return
			}
			if len(out.deleted) != 0 {
				t.Errorf("deleted callback called with %v on failure", out.deleted)
			}
			if len(out.failed) != 1 || out.failed[0] != tt.wantMessage {
				t.Errorf("failed = %v, expected [%q]", out.failed, tt.wantMessage)
			}
		})
	}
}

func TestRequestDelete(t *testing.T) {
	tests := []struct {
		name        string
		approve     bool
		wantRequest bool
	}{
		{"approved", true, true},
		{"declined", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &apitest.Fake{Images: []model.ImageRecord{{ID: 7, OriginalName: "seven.png"}}}
			service, out := newTestService(t, fake)

			var asked []string
			confirmer := ConfirmFunc(func(record model.ImageRecord, onResult func(bool)) {
				asked = append(asked, record.OriginalName)
				onResult(tt.approve)
			})

			service.RequestDelete(context.Background(), fake.Images[0], confirmer)

			if len(asked) != 1 || asked[0] != "seven.png" {
				t.Errorf("confirmation asked for %v, expected [seven.png]", asked)
			}
			if got := len(fake.Deletes()) > 0; got != tt.wantRequest {
				t.Errorf("delete request issued = %v, expected %v", got, tt.wantRequest)
			}
			if got := len(out.deleted) > 0; got != tt.wantRequest {
				t.Errorf("deleted callback = %v, expected %v", got, tt.wantRequest)
			}
		})
	}
}
