package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/rootpatch/internal/ctxlog"
	"github.com/specialistvlad/rootpatch/internal/hcl_adapter"
	"github.com/specialistvlad/rootpatch/internal/lifecycle"
	"github.com/specialistvlad/rootpatch/internal/orchestrator"
	"github.com/specialistvlad/rootpatch/internal/patcher"
	"github.com/specialistvlad/rootpatch/internal/project"
)

// Configure runs one build invocation: load the graph, run the
// configuration pass, let the host evaluate every module, then write the
// resolved graph.
func (a *App) Configure(ctx context.Context) error {
	inv := orchestrator.NewInvocation()
	logger := a.logger.With("invocation_id", inv.ID)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Configure started.")

	graph, err := a.loadGraph(ctx)
	if err != nil {
		return err
	}

	p := patcher.New(graph.ToolchainVersion, graph.NamespacePrefix)
	gate := lifecycle.NewGate(p)
	root := orchestrator.New(inv, gate).Run(ctx, graph)

	if err := graph.Evaluate(ctx); err != nil {
		return fmt.Errorf("failed to evaluate project graph: %w", err)
	}
	a.logSummary(ctx, graph, gate)

	if err := a.writeGraph(graph); err != nil {
		return err
	}
	logger.Info("🏁 Configuration finished.", "shared_root", root.Path(), "toolchain_version", p.ToolchainVersion())
	return nil
}

func (a *App) logSummary(ctx context.Context, graph *project.Graph, gate *lifecycle.Gate) {
	logger := ctxlog.FromContext(ctx)
	patched := 0
	for _, m := range graph.Modules() {
		state, _ := gate.State(m)
		if state == lifecycle.Patched {
			patched++
		}
		logger.Debug("Module state.", "module", m.Path(), "state", state, "has_platform", m.Platform != nil)
	}
	logger.Info("Modules processed.", "total", len(graph.Modules()), "patched", patched)
}

func (a *App) writeGraph(graph *project.Graph) error {
	if a.config.OutPath == "" {
		return hcl_adapter.WriteGraph(a.outW, graph)
	}

	if err := os.MkdirAll(filepath.Dir(a.config.OutPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(a.config.OutPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", a.config.OutPath, err)
	}
	defer f.Close()

	if err := hcl_adapter.WriteGraph(f, graph); err != nil {
		return err
	}
	return f.Close()
}
