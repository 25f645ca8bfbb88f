// Package orchestrator runs the configuration pass over a project graph:
// redirect every module's output, schedule its platform patch and declare
// that it is evaluated after the primary module.
package orchestrator

import (
	"context"

	"github.com/specialistvlad/rootpatch/internal/ctxlog"
	"github.com/specialistvlad/rootpatch/internal/outdir"
	"github.com/specialistvlad/rootpatch/internal/project"
)

// DefaultRepositories are added to the root and every module.
var DefaultRepositories = []string{"google", "mavenCentral"}

// Scheduler decides when a module gets patched.
type Scheduler interface {
	Schedule(ctx context.Context, m *project.Module)
}

// Orchestrator walks a graph within one invocation.
type Orchestrator struct {
	inv       *Invocation
	scheduler Scheduler
}

// New creates an Orchestrator for inv.
func New(inv *Invocation, scheduler Scheduler) *Orchestrator {
	return &Orchestrator{inv: inv, scheduler: scheduler}
}

// Run configures every module of g. It never fails: a missing primary module
// only means no ordering constraints are declared.
func (o *Orchestrator) Run(ctx context.Context, g *project.Graph) outdir.Root {
	logger := ctxlog.FromContext(ctx).With("invocation_id", o.inv.ID)

	root := o.inv.SharedRoot(g.RootDir)
	g.OutputPath = root.Path()
	g.AddRepositories(DefaultRepositories...)
	logger.Info("Shared output root resolved.", "path", root.Path(), "graph_root", g.RootDir)

	_, hasPrimary := g.Module(g.Primary)
	if !hasPrimary {
		logger.Warn("Primary module not found, no evaluation order declared.", "primary", g.Primary)
	}

	for _, m := range g.Modules() {
		m.AddRepositories(DefaultRepositories...)
		outdir.Redirect(m, root)
		o.scheduler.Schedule(ctx, m)

		if hasPrimary && m.Name != g.Primary {
			if err := g.EvaluationDependsOn(m.Name, g.Primary); err != nil {
				logger.Warn("Could not declare evaluation order.", "module", m.Path(), "error", err)
			}
		}
		logger.Debug("Module configured.", "module", m.Path(), "output_path", m.OutputPath, "evaluated", m.Evaluated())
	}

	logger.Info("Configuration pass finished.", "modules", len(g.Modules()))
	return root
}
