package lifecycle

import (
	"context"
	"testing"

	"github.com/specialistvlad/rootpatch/internal/patcher"
	"github.com/specialistvlad/rootpatch/internal/platform"
	"github.com/specialistvlad/rootpatch/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// countingPatcher records every Patch call.
type countingPatcher struct {
	calls map[string]int
}

func (c *countingPatcher) Patch(_ context.Context, m *project.Module) {
	if c.calls == nil {
		c.calls = make(map[string]int)
	}
	c.calls[m.Name]++
}

// stateOf returns m's state and fails the test if m was never scheduled.
func stateOf(t *testing.T, gate *Gate, m *project.Module) State {
	t.Helper()
	state, ok := gate.State(m)
	require.True(t, ok, "module %s was not scheduled", m.Path())
	return state
}

func androidModule(name, group string) *project.Module {
	m := project.NewModule(name)
	m.Group = group
	m.Platform = &platform.AndroidExtension{}
	return m
}

func TestSchedule_EvaluatedModulePatchesSynchronously(t *testing.T) {
	// --- Arrange ---
	p := &countingPatcher{}
	gate := NewGate(p)
	m := androidModule("payments", "")
	m.MarkEvaluated()

	// --- Act ---
	gate.Schedule(context.Background(), m)

	// --- Assert ---
	assert.Equal(t, 1, p.calls["payments"])
	assert.Equal(t, Patched, stateOf(t, gate, m))
	assert.Zero(t, m.PendingCallbacks())
}

func TestSchedule_UnevaluatedModuleWaitsForEvaluation(t *testing.T) {
	// --- Arrange ---
	p := &countingPatcher{}
	gate := NewGate(p)
	m := androidModule("shared-ui", "com.acme.ui")

	// --- Act ---
	gate.Schedule(context.Background(), m)

	// --- Assert ---
	assert.Zero(t, p.calls["shared-ui"], "patch must wait for evaluation")
	assert.Equal(t, Pending, stateOf(t, gate, m))
	assert.Equal(t, 1, m.PendingCallbacks())

	m.MarkEvaluated()
	m.MarkEvaluated()
	assert.Equal(t, 1, p.calls["shared-ui"])
	assert.Equal(t, Patched, stateOf(t, gate, m))
}

func TestSchedule_TwiceRegistersOnce(t *testing.T) {
	p := &countingPatcher{}
	gate := NewGate(p)
	deferred := androidModule("shared-ui", "")
	immediate := androidModule("payments", "")
	immediate.MarkEvaluated()

	gate.Schedule(context.Background(), deferred)
	gate.Schedule(context.Background(), deferred)
	gate.Schedule(context.Background(), immediate)
	gate.Schedule(context.Background(), immediate)

	assert.Equal(t, 1, deferred.PendingCallbacks())
	deferred.MarkEvaluated()
	assert.Equal(t, 1, p.calls["shared-ui"])
	assert.Equal(t, 1, p.calls["payments"])
}

func TestSchedule_MissingPlatformIsNotAnError(t *testing.T) {
	p := &countingPatcher{}
	gate := NewGate(p)
	now := project.NewModule("core")
	now.MarkEvaluated()
	later := project.NewModule("utils")

	gate.Schedule(context.Background(), now)
	gate.Schedule(context.Background(), later)
	later.MarkEvaluated()

	assert.Empty(t, p.calls)
	assert.Equal(t, Patched, stateOf(t, gate, now))
	assert.Equal(t, Patched, stateOf(t, gate, later))
}

func TestSchedule_NeverEvaluatedStaysPending(t *testing.T) {
	p := &countingPatcher{}
	gate := NewGate(p)
	m := androidModule("orphan", "")

	gate.Schedule(context.Background(), m)

	assert.Equal(t, Pending, stateOf(t, gate, m))
	assert.Zero(t, p.calls["orphan"])
}

func TestSchedule_DeferredNamespaceExample(t *testing.T) {
	// --- Arrange ---
	gate := NewGate(patcher.New("", ""))
	m := androidModule("shared-ui", "com.acme.ui")
	ext := m.Platform.(*platform.AndroidExtension)

	// --- Act ---
	gate.Schedule(context.Background(), m)

	// --- Assert ---
	_, present := ext.Namespace()
	require.False(t, present, "namespace stays absent until evaluation")

	m.MarkEvaluated()
	ns, present := ext.Namespace()
	require.True(t, present)
	assert.Equal(t, "com.acme.ui", ns)
	assert.Equal(t, patcher.DefaultToolchainVersion, ext.ToolchainVersion())
}

func TestSchedule_SameNameInAnotherGraphIsPatched(t *testing.T) {
	// --- Arrange ---
	gate := NewGate(patcher.New("", ""))
	first := androidModule("lib", "")
	first.MarkEvaluated()
	second := androidModule("lib", "")
	second.MarkEvaluated()

	// --- Act ---
	gate.Schedule(context.Background(), first)
	gate.Schedule(context.Background(), second)

	// --- Assert ---
	for _, m := range []*project.Module{first, second} {
		ns, present := m.Platform.(*platform.AndroidExtension).Namespace()
		require.True(t, present)
		assert.Equal(t, "com.example.ominious.lib", ns)
		assert.Equal(t, Patched, stateOf(t, gate, m))
	}
}

func TestState_UnscheduledModule(t *testing.T) {
	gate := NewGate(&countingPatcher{})
	m := androidModule("stranger", "")

	state, ok := gate.State(m)

	assert.False(t, ok)
	assert.Equal(t, Pending, state)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "patched", Patched.String())
	assert.Equal(t, "unknown", State(9).String())
}
