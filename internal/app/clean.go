package app

import (
	"context"

	"github.com/specialistvlad/rootpatch/internal/ctxlog"
	"github.com/specialistvlad/rootpatch/internal/orchestrator"
	"github.com/specialistvlad/rootpatch/internal/outdir"
)

// Clean removes the shared output root of the graph.
func (a *App) Clean(ctx context.Context) error {
	inv := orchestrator.NewInvocation()
	logger := a.logger.With("invocation_id", inv.ID)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Clean started.")

	graph, err := a.loadGraph(ctx)
	if err != nil {
		return err
	}
	return outdir.Clean(ctx, inv.SharedRoot(graph.RootDir))
}
