package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func newCleanCommand(opts *rootOptions, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "clean GRAPH_FILE",
		Short: "Delete the shared output root of the graph",
		Args:  exactlyOneGraph,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(args[0], "", outW, errW)
			if err != nil {
				return err
			}
			return a.Clean(cmd.Context())
		},
	}
}
