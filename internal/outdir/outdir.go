// Package outdir owns the shared output root: where it lives relative to the
// graph root, how module output paths are redirected under it, and how it is
// cleaned.
package outdir

import (
	"path/filepath"

	"github.com/specialistvlad/rootpatch/internal/project"
)

// RelativeBase is the shared root's offset from the root project's own
// build directory.
const RelativeBase = "../../build"

// BuildDirName is the root project's build directory under the graph root.
const BuildDirName = "build"

// Root is the shared output root of one build invocation.
type Root struct {
	path string
}

// ResolveRoot derives the shared root from the graph root directory. The
// offset is applied to <graphRoot>/build, so the root lands beside the graph
// root and never above its parent.
func ResolveRoot(graphRoot string) Root {
	return Root{path: filepath.Join(graphRoot, BuildDirName, RelativeBase)}
}

// Path returns the root directory.
func (r Root) Path() string {
	return r.path
}

// ModuleDir returns the output directory of the named module.
func (r Root) ModuleDir(name string) string {
	return filepath.Join(r.path, name)
}

// IsZero reports whether the root was never resolved.
func (r Root) IsZero() bool {
	return r.path == ""
}

// Redirect moves the module's output under the shared root.
func Redirect(m *project.Module, root Root) {
	m.OutputPath = root.ModuleDir(m.Name)
}
