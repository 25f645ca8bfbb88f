// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl_adapter

import (
	"path/filepath"

	"github.com/specialistvlad/rootpatch/internal/config"
)

// translateGraph converts the optional `graph` block. A missing block yields
// the defaults rooted at configDir.
func (l *Loader) translateGraph(g *graphBlock, configDir string) *config.GraphSettings {
	settings := &config.GraphSettings{RootDir: configDir}
	if g == nil {
		return settings
	}
	if g.Root != "" {
		settings.RootDir = resolvePath(configDir, g.Root)
	}
	settings.Primary = g.Primary
	settings.Repositories = g.Repositories
	settings.ToolchainVersion = g.ToolchainVersion
	settings.NamespacePrefix = g.NamespacePrefix
	return settings
}

// translateModule converts a `module` block into the agnostic model.
func (l *Loader) translateModule(m *moduleBlock) *config.ModuleDefinition {
	def := &config.ModuleDefinition{
		Name:                m.Name,
		Group:               m.Group,
		OutputPath:          m.OutputPath,
		Evaluated:           m.Evaluated,
		Repositories:        m.Repositories,
		EvaluationDependsOn: m.EvaluationDependsOn,
	}
	if m.Platform != nil {
		def.Platform = &config.PlatformDefinition{
			Kind:             m.Platform.Kind,
			ToolchainVersion: m.Platform.ToolchainVersion,
			Namespace:        m.Platform.Namespace,
			CompileSDK:       m.Platform.CompileSDK,
		}
	}
	return def
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
