package project

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/rootpatch/internal/platform"
)

// ErrAlreadyEvaluated is returned by AfterEvaluate when the module has
// already been evaluated; the callback would never run.
var ErrAlreadyEvaluated = errors.New("module already evaluated")

// Module is a named unit of the build graph.
type Module struct {
	Name         string
	Group        string
	OutputPath   string
	Repositories []string
	// Platform is nil when the module has no platform configuration.
	Platform platform.Config

	evaluated     bool
	drained       bool
	afterEvaluate []func()
}

// NewModule creates an unevaluated module with no platform configuration.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// Path is the module's host path, e.g. ":payments".
func (m *Module) Path() string {
	return ":" + m.Name
}

// Evaluated reports whether the host has finished evaluating the module.
func (m *Module) Evaluated() bool {
	return m.evaluated
}

// AfterEvaluate registers fn to run once, when the host marks the module
// evaluated.
func (m *Module) AfterEvaluate(fn func()) error {
	if m.evaluated {
		return fmt.Errorf("%s: %w", m.Path(), ErrAlreadyEvaluated)
	}
	m.afterEvaluate = append(m.afterEvaluate, fn)
	return nil
}

// MarkEvaluated sets the evaluated flag and drains the registered callbacks
// in registration order. Only the first call has any effect.
func (m *Module) MarkEvaluated() {
	m.evaluated = true
	if m.drained {
		return
	}
	m.drained = true

	callbacks := m.afterEvaluate
	m.afterEvaluate = nil
	for _, fn := range callbacks {
		fn()
	}
}

// PendingCallbacks returns the number of callbacks waiting for evaluation.
func (m *Module) PendingCallbacks() int {
	return len(m.afterEvaluate)
}

// AddRepositories appends every repository not already present.
func (m *Module) AddRepositories(repos ...string) {
	m.Repositories = appendMissing(m.Repositories, repos...)
}

func appendMissing(list []string, items ...string) []string {
	for _, item := range items {
		found := false
		for _, existing := range list {
			if existing == item {
				found = true
				break
			}
		}
		if !found {
			list = append(list, item)
		}
	}
	return list
}
