package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/imageboost/internal/gallery"
	"github.com/ytget/imageboost/internal/model"
)

// ErrDeleteDeclined is returned when the confirmation prompt is answered no
var ErrDeleteDeclined = errors.New("delete cancelled")

func newDeleteCommand(env *environment) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an image from the backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := env.client()
			if err != nil {
				return err
			}

			service := gallery.NewService(client, env.log.Named("gallery"))
			service.SetDeletedCallback(func(id int64) {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted image %d\n", id)
			})

			if yes {
				if err := service.Delete(cmd.Context(), id); err != nil {
					return fmt.Errorf("failed to delete image %d: %w", id, err)
				}
				return nil
			}

			var result error
			approved := false
			confirmer := gallery.ConfirmFunc(func(record model.ImageRecord, onResult func(bool)) {
				fmt.Fprintf(cmd.OutOrStdout(), "Delete image %d? [y/N] ", record.ID)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				approved = isYes(answer)
				onResult(approved)
			})
			service.SetFailedCallback(func(id int64, message string) {
				result = fmt.Errorf("failed to delete image %d: %s", id, message)
			})

			service.RequestDelete(cmd.Context(), model.ImageRecord{ID: id}, confirmer)
			if !approved {
				return ErrDeleteDeclined
			}
			return result
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")
	return cmd
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
