package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/rootpatch/internal/app"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel  string
	logFormat string
}

// NewRootCommand builds the rootpatch command tree. Results are written to
// outW, logs and usage to errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "rootpatch",
		Short: "Redirect module outputs and patch platform configuration of a multi-module build",
		Long: `rootpatch configures the modules of a multi-module build before the host
build runs: every module's output moves under <root>/build/../../build, and each
module's platform configuration gets a pinned toolchain version and a
namespace when it declares none.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(outW)
	cmd.SetErr(errW)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	cmd.AddCommand(newConfigureCommand(opts, outW, errW))
	cmd.AddCommand(newCleanCommand(opts, outW, errW))
	return cmd
}

// Execute runs the command tree against args.
func Execute(args []string, outW, errW io.Writer) error {
	cmd := NewRootCommand(outW, errW)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

// exactlyOneGraph is an Args validator that reports usage errors as ExitError.
func exactlyOneGraph(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return usageError(fmt.Errorf("expected exactly one graph file, got %d", len(args)))
	}
	return nil
}

func (o *rootOptions) newApp(graphPath, outPath string, outW, errW io.Writer) (*app.App, error) {
	cfg, err := app.NewConfig(app.Config{
		GraphPath: graphPath,
		OutPath:   outPath,
		LogFormat: o.logFormat,
		LogLevel:  o.logLevel,
	})
	if err != nil {
		return nil, usageError(err)
	}
	return app.NewApp(outW, errW, cfg)
}
