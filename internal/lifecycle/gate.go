// Package lifecycle decides when a module's platform configuration is
// patched: immediately when the host has already evaluated the module, or
// from a one-shot callback fired when the host evaluates it later.
package lifecycle

import (
	"context"

	"github.com/specialistvlad/rootpatch/internal/ctxlog"
	"github.com/specialistvlad/rootpatch/internal/project"
)

// State is the patch state of one module.
type State int

const (
	// Pending means the module has not been patched yet.
	Pending State = iota
	// Patched means the patcher ran, or the module had nothing to patch.
	Patched
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Patched:
		return "patched"
	default:
		return "unknown"
	}
}

// Patcher mutates a module's platform configuration in place.
type Patcher interface {
	Patch(ctx context.Context, m *project.Module)
}

// Gate runs the Patcher exactly once per module. Modules are tracked by
// identity, so one Gate can serve several graphs whose module names overlap.
type Gate struct {
	patcher Patcher
	states  map[*project.Module]State
}

// NewGate creates a Gate around p.
func NewGate(p Patcher) *Gate {
	return &Gate{
		patcher: p,
		states:  make(map[*project.Module]State),
	}
}

// State returns the patch state of m. The second result is false when m was
// never scheduled on this Gate.
func (g *Gate) State(m *project.Module) (State, bool) {
	s, ok := g.states[m]
	return s, ok
}

// Schedule patches m now if it is already evaluated, otherwise defers the
// patch to m's evaluation. The evaluated flag is read once, here.
func (g *Gate) Schedule(ctx context.Context, m *project.Module) {
	logger := ctxlog.FromContext(ctx).With("module", m.Path())

	if state, ok := g.states[m]; ok {
		logger.Debug("Module already scheduled.", "state", state)
		return
	}
	g.states[m] = Pending

	if m.Evaluated() {
		logger.Debug("Module already evaluated, patching now.")
		g.transition(ctx, m)
		return
	}

	err := m.AfterEvaluate(func() {
		logger.Debug("Module evaluated, running deferred patch.")
		g.transition(ctx, m)
	})
	if err != nil {
		// Only reachable if the host evaluates m concurrently with Schedule.
		logger.Warn("Could not defer patch.", "error", err)
		return
	}
	logger.Debug("Module not evaluated yet, patch deferred.")
}

func (g *Gate) transition(ctx context.Context, m *project.Module) {
	if g.states[m] == Patched {
		return
	}
	g.states[m] = Patched
	if m.Platform != nil {
		g.patcher.Patch(ctx, m)
	}
}
