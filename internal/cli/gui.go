package cli

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/ytget/imageboost/internal/api"
	"github.com/ytget/imageboost/internal/config"
	"github.com/ytget/imageboost/internal/gallery"
	"github.com/ytget/imageboost/internal/library"
	"github.com/ytget/imageboost/internal/ui"
	"github.com/ytget/imageboost/internal/upload"
)

// runGUI opens the main window and blocks until it is closed
func runGUI(ctx context.Context, env *environment, version string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(fyneApp, env.config)
	client, err := api.NewClient(settings.GetAPIURL(), env.config.HTTPTimeout, env.log.Named("api"))
	if err != nil {
		return err
	}

	pool := pond.NewPool(settings.GetImageWorkers(), pond.WithContext(ctx))
	defer func() {
		cancel()
		pool.StopAndWait()
	}()

	env.log.Info("starting",
		zap.String("version", version),
		zap.String("api_url", client.BaseURL()),
		zap.Int("image_workers", settings.GetImageWorkers()))

	window := fyneApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	root := ui.NewRootUI(ctx, fyneApp, window, settings, ui.Services{
		Shell:             library.NewShell(client, env.log.Named("library")),
		Uploader:          upload.NewService(client, env.log.Named("upload")),
		Deleter:           gallery.NewService(client, env.log.Named("gallery")),
		Fetcher:           client,
		Pool:              pool,
		MaxImageDimension: uint(env.config.ImageMaxDimension),
	}, env.log.Named("ui"))
	root.Start()

	window.ShowAndRun()
	return nil
}
