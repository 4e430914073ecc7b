package library

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/ytget/imageboost/internal/api/apitest"
	"github.com/ytget/imageboost/internal/model"
)

func TestShellLoad(t *testing.T) {
	fake := &apitest.Fake{Images: []model.ImageRecord{{ID: 1, OriginalName: "a.png"}}}
	shell := NewShell(fake, zaptest.NewLogger(t))

	var loading []bool
	shell.SetLoadingCallback(func(l bool) { loading = append(loading, l) })

	shell.Load(context.Background())

	if shell.Store().Len() != 1 {
		t.Errorf("Len() = %d, expected 1", shell.Store().Len())
	}
	if len(loading) != 2 || !loading[0] || loading[1] {
		t.Errorf("loading transitions = %v, expected [true false]", loading)
	}
	if shell.IsLoading() {
		t.Error("IsLoading() = true after Load")
	}
}

func TestShellLoadEmpty(t *testing.T) {
	shell := NewShell(&apitest.Fake{}, zaptest.NewLogger(t))
	shell.Load(context.Background())

	if shell.Store().Len() != 0 {
		t.Errorf("Len() = %d, expected 0", shell.Store().Len())
	}
}

func TestShellLoadFailureKeepsList(t *testing.T) {
	fake := &apitest.Fake{Images: []model.ImageRecord{{ID: 1}, {ID: 2}}}
	shell := NewShell(fake, zaptest.NewLogger(t))
	shell.Load(context.Background())

	fake.ListErr = errors.New("connection refused")
	shell.Reload(context.Background())

	if got := ids(shell.Store().Snapshot()); !equalIDs(got, []int64{1, 2}) {
		t.Errorf("Snapshot() ids = %v, expected [1 2] after failed reload", got)
	}
	if shell.IsLoading() {
		t.Error("IsLoading() = true after failed Load")
	}
}

func TestShellUploadAndDelete(t *testing.T) {
	shell := NewShell(&apitest.Fake{Images: []model.ImageRecord{{ID: 1}}}, zaptest.NewLogger(t))
	shell.Load(context.Background())

	shell.HandleUploaded(&model.ImageRecord{ID: 2})
	shell.HandleUploaded(nil)
	if got := ids(shell.Store().Snapshot()); !equalIDs(got, []int64{2, 1}) {
		t.Errorf("after upload ids = %v, expected [2 1]", got)
	}

	shell.HandleDeleted(1)
	shell.HandleDeleted(1)
	if got := ids(shell.Store().Snapshot()); !equalIDs(got, []int64{2}) {
		t.Errorf("after delete ids = %v, expected [2]", got)
	}
}
