package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/imageboost/internal/platform"
	"github.com/ytget/imageboost/internal/upload"
)

func newUploadCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "upload FILE...",
		Short: "Upload image files one after another",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := platform.LocalFilesFromPaths(args)
			if err != nil {
				// unreadable paths are reported but do not stop the others
				env.log.Warn("skipping files", zap.Error(err))
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}

			client, err := env.client()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()
			failed := 0

			service := upload.NewService(client, env.log.Named("upload"))
			service.SetUpdateCallback(func(event upload.Event) {
				switch event.Kind {
				case upload.EventProgress:
					fmt.Fprintf(out, "%s: %d%%\n", event.Upload.File.Name, event.Upload.Percent)
				case upload.EventSucceeded:
					fmt.Fprintf(out, "%s: uploaded as image %d\n", event.Upload.File.Name, event.Record.ID)
				case upload.EventFailed:
					failed++
					fmt.Fprintf(errOut, "Failed to upload %s: %s\n", event.Upload.File.Name, event.Message)
				}
			})

			accepted, err := service.Select(files)
			if err != nil {
				return err
			}
			if accepted == 0 {
				return fmt.Errorf("no image files to upload")
			}
			if skipped := len(files) - accepted; skipped > 0 {
				fmt.Fprintf(errOut, "Skipped %d non-image file(s)\n", skipped)
			}

			if err := service.Start(cmd.Context()); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d uploads failed", failed, accepted)
			}
			return nil
		},
	}
}
