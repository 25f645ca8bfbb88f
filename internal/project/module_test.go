package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule_MarkEvaluatedDrainsOnce(t *testing.T) {
	// --- Arrange ---
	m := NewModule("shared-ui")
	var calls []string
	require.NoError(t, m.AfterEvaluate(func() { calls = append(calls, "first") }))
	require.NoError(t, m.AfterEvaluate(func() { calls = append(calls, "second") }))
	require.Equal(t, 2, m.PendingCallbacks())

	// --- Act ---
	m.MarkEvaluated()
	m.MarkEvaluated()

	// --- Assert ---
	assert.True(t, m.Evaluated())
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Zero(t, m.PendingCallbacks())
}

func TestModule_AfterEvaluateOnEvaluatedModule(t *testing.T) {
	m := NewModule("payments")
	m.MarkEvaluated()

	err := m.AfterEvaluate(func() { t.Fatal("callback must not run") })
	require.ErrorIs(t, err, ErrAlreadyEvaluated)
	assert.Contains(t, err.Error(), ":payments")
}

func TestModule_AddRepositoriesSkipsDuplicates(t *testing.T) {
	m := NewModule("payments")
	m.Repositories = []string{"mavenCentral"}

	m.AddRepositories("google", "mavenCentral")

	assert.Equal(t, []string{"mavenCentral", "google"}, m.Repositories)
}
