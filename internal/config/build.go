package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/rootpatch/internal/platform"
	"github.com/specialistvlad/rootpatch/internal/project"
	"golang.org/x/mod/semver"
)

// Validate checks the settings that the host itself would reject.
func (m *Model) Validate() error {
	if m.Graph == nil {
		return errors.New("graph settings are missing")
	}
	if m.Graph.RootDir == "" {
		return errors.New("graph root directory is empty")
	}
	if v := m.Graph.ToolchainVersion; v != "" && !IsValidToolchainVersion(v) {
		return fmt.Errorf("invalid toolchain_version %q: expected MAJOR.MINOR.PATCH", v)
	}
	seen := make(map[string]struct{}, len(m.Modules))
	for _, def := range m.Modules {
		if def.Name == "" {
			return errors.New("module with empty name")
		}
		if _, dup := seen[def.Name]; dup {
			return fmt.Errorf("module %q declared more than once", def.Name)
		}
		seen[def.Name] = struct{}{}
	}
	return nil
}

// IsValidToolchainVersion reports whether v is a plain dotted version such
// as 26.1.10909125.
func IsValidToolchainVersion(v string) bool {
	if strings.HasPrefix(v, "v") {
		return false
	}
	canonical := "v" + v
	return semver.IsValid(canonical) &&
		semver.Canonical(canonical) == canonical &&
		semver.Prerelease(canonical) == ""
}

// Build validates the model and turns it into a host graph. Modules marked
// evaluated are evaluated before anything else sees them. Declared
// evaluation dependencies accept both "lib" and ":lib".
func (m *Model) Build() (*project.Graph, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	g := project.NewGraph(m.Graph.RootDir, m.Graph.Primary)
	g.Repositories = append([]string(nil), m.Graph.Repositories...)
	g.ToolchainVersion = m.Graph.ToolchainVersion
	g.NamespacePrefix = m.Graph.NamespacePrefix

	for _, def := range m.Modules {
		mod := project.NewModule(def.Name)
		mod.Group = def.Group
		mod.Repositories = append([]string(nil), def.Repositories...)
		mod.OutputPath = def.OutputPath
		if mod.OutputPath == "" {
			mod.OutputPath = filepath.Join(g.RootDir, def.Name, "build")
		}

		if def.Platform != nil {
			cfg, err := platform.New(def.Platform.Kind, platform.Settings{
				ToolchainVersion: def.Platform.ToolchainVersion,
				Namespace:        def.Platform.Namespace,
				CompileSDK:       def.Platform.CompileSDK,
			})
			if err != nil {
				return nil, fmt.Errorf("module %q: %w", def.Name, err)
			}
			mod.Platform = cfg
		}
		if def.Evaluated {
			mod.MarkEvaluated()
		}
		if err := g.Add(mod); err != nil {
			return nil, err
		}
	}

	for _, def := range m.Modules {
		for _, target := range def.EvaluationDependsOn {
			if err := g.EvaluationDependsOn(def.Name, strings.TrimPrefix(target, ":")); err != nil {
				return nil, fmt.Errorf("module %q: %w", def.Name, err)
			}
		}
	}
	return g, nil
}
