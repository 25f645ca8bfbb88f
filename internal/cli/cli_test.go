package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/rootpatch/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireExitCode(t *testing.T, err error, code int) *ExitError {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %T: %v", err, err)
	assert.Equal(t, code, exitErr.Code)
	return exitErr
}

func TestExecute_Help(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := Execute([]string{"--help"}, out, errOut)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "configure")
	assert.Contains(t, out.String(), "clean")
}

func TestExecute_UsageErrors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"configure", "--nope", "g.hcl"}, wantMsg: "unknown flag: --nope"},
		{name: "missing graph", args: []string{"configure"}, wantMsg: "expected exactly one graph file, got 0"},
		{name: "too many graphs", args: []string{"clean", "a.hcl", "b.hcl"}, wantMsg: "got 2"},
		{name: "bad log level", args: []string{"configure", "--log-level", "trace", "g.hcl"}, wantMsg: "invalid log-level"},
		{name: "bad log format", args: []string{"clean", "--log-format", "xml", "g.hcl"}, wantMsg: "invalid log-format"},
		{name: "bad extension", args: []string{"configure", "build.gradle.kts"}, wantMsg: "unsupported graph file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Execute(tc.args, &bytes.Buffer{}, &bytes.Buffer{})
			exitErr := requireExitCode(t, err, 2)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestExecute_Configure(t *testing.T) {
	// --- Arrange ---
	graphPath := app.WriteGraphFile(t, "graph.hcl", `
module "app" {
	evaluated = true
}
module "payments" {
	platform "android" {}
}
`)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := Execute([]string{"configure", "--log-format", "json", graphPath}, out, errOut)

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out.String(), `namespace         = "com.example.ominious.payments"`)
	assert.Contains(t, errOut.String(), `"msg":"🏁 Configuration finished."`)
}

func TestExecute_ConfigureMissingFileIsRuntimeError(t *testing.T) {
	err := Execute([]string{"configure", filepath.Join(t.TempDir(), "missing.hcl")}, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr), "load failures are not usage errors")
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestExecute_Clean(t *testing.T) {
	graphPath := app.WriteGraphFile(t, "graph.yml", "modules:\n  - name: app\n")
	projectDir := filepath.Dir(filepath.Dir(graphPath))
	sharedRoot := filepath.Join(projectDir, "build")
	outside := filepath.Join(filepath.Dir(projectDir), "build")
	require.NoError(t, os.MkdirAll(filepath.Join(sharedRoot, "app"), 0o755))
	require.NoError(t, os.MkdirAll(outside, 0o755))

	err := Execute([]string{"clean", graphPath}, &bytes.Buffer{}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.NoDirExists(t, sharedRoot)
	assert.DirExists(t, outside)
}
