// Package patcher applies the compatibility patches to a module's platform
// configuration: a forced toolchain version and a namespace fallback.
//
// Every step probes for the sub-capability it needs and skips silently when
// it is missing. Patch never fails.
package patcher

import (
	"context"
	"strings"

	"github.com/specialistvlad/rootpatch/internal/ctxlog"
	"github.com/specialistvlad/rootpatch/internal/platform"
	"github.com/specialistvlad/rootpatch/internal/project"
)

const (
	// DefaultToolchainVersion is the NDK version every module is pinned to.
	DefaultToolchainVersion = "26.1.10909125"
	// DefaultNamespacePrefix is the organisation prefix of fallback namespaces.
	DefaultNamespacePrefix = "com.example.ominious"
)

// Patcher holds the values the patches write.
type Patcher struct {
	toolchainVersion string
	namespacePrefix  string
}

// New creates a Patcher. Empty arguments select the defaults.
func New(toolchainVersion, namespacePrefix string) *Patcher {
	if toolchainVersion == "" {
		toolchainVersion = DefaultToolchainVersion
	}
	if namespacePrefix == "" {
		namespacePrefix = DefaultNamespacePrefix
	}
	return &Patcher{
		toolchainVersion: toolchainVersion,
		namespacePrefix:  strings.TrimSuffix(namespacePrefix, "."),
	}
}

// ToolchainVersion is the version Patch forces.
func (p *Patcher) ToolchainVersion() string {
	return p.toolchainVersion
}

// FallbackNamespace is the namespace given to a module that declares none:
// its group when set, otherwise the prefixed module name with dashes turned
// into underscores.
func (p *Patcher) FallbackNamespace(m *project.Module) string {
	if m.Group != "" {
		return m.Group
	}
	return p.namespacePrefix + "." + strings.ReplaceAll(m.Name, "-", "_")
}

// Patch applies both patches to the module's platform configuration. A
// module without one is left alone.
func (p *Patcher) Patch(ctx context.Context, m *project.Module) {
	logger := ctxlog.FromContext(ctx).With("module", m.Path())

	if m.Platform == nil {
		logger.Debug("Module has no platform configuration, nothing to patch.")
		return
	}

	if setter, ok := m.Platform.(platform.ToolchainVersionSetter); ok {
		setter.SetToolchainVersion(p.toolchainVersion)
		logger.Debug("Toolchain version forced.", "version", p.toolchainVersion)
	} else {
		logger.Debug("Platform configuration cannot set a toolchain version, skipping.", "kind", m.Platform.Kind())
	}

	accessor, ok := m.Platform.(platform.NamespaceAccessor)
	if !ok {
		logger.Debug("Platform configuration has no namespace, skipping.", "kind", m.Platform.Kind())
		return
	}
	if current, present := accessor.Namespace(); present {
		logger.Debug("Namespace already declared, keeping it.", "namespace", current)
		return
	}
	namespace := p.FallbackNamespace(m)
	accessor.SetNamespace(namespace)
	logger.Debug("Namespace injected.", "namespace", namespace)
}
