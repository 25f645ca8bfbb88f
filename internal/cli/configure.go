package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func newConfigureCommand(opts *rootOptions, outW, errW io.Writer) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "configure GRAPH_FILE",
		Short: "Run the configuration pass and print the resolved graph",
		Example: `  rootpatch configure android/graph.hcl
  rootpatch configure android/graph.yaml --out build/resolved.hcl`,
		Args: exactlyOneGraph,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(args[0], outPath, outW, errW)
			if err != nil {
				return err
			}
			return a.Configure(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the resolved graph to this file instead of stdout.")
	return cmd
}
