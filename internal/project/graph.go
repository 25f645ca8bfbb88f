package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/rootpatch/internal/ctxlog"
	"github.com/specialistvlad/rootpatch/internal/dag"
)

// DefaultPrimary is the module every other module is evaluated after unless
// the graph names another one.
const DefaultPrimary = "app"

var (
	ErrDuplicateModule = errors.New("duplicate module")
	ErrUnknownModule   = errors.New("unknown module")
	ErrCycle           = errors.New("evaluation order has a cycle")
)

// Graph is the host's view of a multi-module project.
type Graph struct {
	// RootDir is the directory of the root project; the shared output root
	// is derived from it.
	RootDir string
	// Primary names the module the others are evaluated after.
	Primary string
	// OutputPath is the root project's own build directory.
	OutputPath   string
	Repositories []string
	// ToolchainVersion and NamespacePrefix are the graph's patch overrides.
	// Empty means the patcher defaults apply.
	ToolchainVersion string
	NamespacePrefix  string

	modules []*Module
	index   map[string]*Module
	order   *dag.Graph
}

// NewGraph creates an empty graph rooted at rootDir. An empty primary falls
// back to DefaultPrimary.
func NewGraph(rootDir, primary string) *Graph {
	if primary == "" {
		primary = DefaultPrimary
	}
	return &Graph{
		RootDir: rootDir,
		Primary: primary,
		index:   make(map[string]*Module),
		order:   dag.New(),
	}
}

// Add appends a module. Names are unique within a graph.
func (g *Graph) Add(m *Module) error {
	if m == nil || m.Name == "" {
		return errors.New("module must have a name")
	}
	if _, exists := g.index[m.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateModule, m.Name)
	}
	g.modules = append(g.modules, m)
	g.index[m.Name] = m
	g.order.AddNode(m.Name)
	return nil
}

// Module looks a module up by name.
func (g *Graph) Module(name string) (*Module, bool) {
	m, ok := g.index[name]
	return m, ok
}

// Modules returns the modules in declaration order.
func (g *Graph) Modules() []*Module {
	out := make([]*Module, len(g.modules))
	copy(out, g.modules)
	return out
}

// AddRepositories appends every repository not already present on the root.
func (g *Graph) AddRepositories(repos ...string) {
	g.Repositories = appendMissing(g.Repositories, repos...)
}

// EvaluationDependsOn declares that module must be evaluated after target.
func (g *Graph) EvaluationDependsOn(module, target string) error {
	if !g.order.Has(module) {
		return fmt.Errorf("%w: %s", ErrUnknownModule, module)
	}
	if !g.order.Has(target) {
		return fmt.Errorf("%w: %s", ErrUnknownModule, target)
	}
	if module == target {
		return fmt.Errorf("%w: %s depends on itself", ErrCycle, module)
	}
	return g.order.AddEdge(target, module)
}

// EvaluationDependencies returns the names module is evaluated after.
func (g *Graph) EvaluationDependencies(module string) ([]string, error) {
	deps, err := g.order.Dependencies(module)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModule, module)
	}
	return deps, nil
}

// EvaluationOrder returns the modules in an order that honours every
// declared constraint, falling back to declaration order.
func (g *Graph) EvaluationOrder() ([]*Module, error) {
	names, err := g.order.Sort()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCycle, err)
	}
	ordered := make([]*Module, 0, len(names))
	for _, name := range names {
		ordered = append(ordered, g.index[name])
	}
	return ordered, nil
}

// Evaluate plays the host's part: it evaluates every module in evaluation
// order, firing any deferred callbacks registered on it.
func (g *Graph) Evaluate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	ordered, err := g.EvaluationOrder()
	if err != nil {
		return err
	}
	for _, m := range ordered {
		if m.Evaluated() {
			continue
		}
		logger.Debug("Evaluating module.", "module", m.Path(), "pending_callbacks", m.PendingCallbacks())
		m.MarkEvaluated()
	}
	logger.Debug("Graph evaluated.", "modules", len(ordered))
	return nil
}
