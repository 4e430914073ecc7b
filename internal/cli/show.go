package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ytget/imageboost/internal/gallery"
	"github.com/ytget/imageboost/internal/platform"
)

func newShowCommand(env *environment) *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one image record",
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

			image, err := client.GetImage(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get image %d: %w", id, err)
			}

			card := gallery.NewCard(*image)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:            %d\n", card.ID)
			fmt.Fprintf(out, "Name:          %s\n", card.Title)
			fmt.Fprintf(out, "Dimensions:    %s\n", card.Dimensions)
			fmt.Fprintf(out, "Original size: %s\n", card.OriginalSize)
			if card.ShowReduction {
				fmt.Fprintf(out, "Reduction:     %s\n", card.Reduction)
			}
			fmt.Fprintf(out, "Format:        %s\n", card.Format)
			if card.ViewURL != "" {
				fmt.Fprintf(out, "URL:           %s\n", card.ViewURL)
			}

			if !open {
				return nil
			}
			if card.ViewURL == "" {
				return fmt.Errorf("image %d has no viewable URL", id)
			}
			return platform.OpenURL(card.ViewURL)
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "open the image in the system browser")
	return cmd
}

// parseID parses a positive record identifier
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid image id %q", arg)
	}
	return id, nil
}
