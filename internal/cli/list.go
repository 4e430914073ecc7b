package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ytget/imageboost/internal/gallery"
)

func newListCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the images stored by the backend, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := env.client()
			if err != nil {
				return err
			}

			images, err := client.ListImages(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list images: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(images) == 0 {
				fmt.Fprintln(out, "No images yet.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDIMENSIONS\tSIZE\tREDUCTION\tFORMAT")
			for _, image := range images {
				card := gallery.NewCard(image)
				reduction := "-"
				if card.ShowReduction {
					reduction = card.Reduction
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					card.ID, card.Title, card.Dimensions, card.OriginalSize, reduction, card.Format)
			}
			return w.Flush()
		},
	}
}
