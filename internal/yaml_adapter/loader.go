// Package yaml_adapter reads a project graph description written in YAML
// into the format-agnostic config model. It accepts the same settings as
// the HCL adapter, without expression evaluation.
package yaml_adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/specialistvlad/rootpatch/internal/config"
	"github.com/specialistvlad/rootpatch/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

type fileDTO struct {
	Graph   *graphDTO    `yaml:"graph"`
	Modules []*moduleDTO `yaml:"modules"`
}

type graphDTO struct {
	Root             string   `yaml:"root"`
	Primary          string   `yaml:"primary"`
	Repositories     []string `yaml:"repositories"`
	ToolchainVersion string   `yaml:"toolchain_version"`
	NamespacePrefix  string   `yaml:"namespace_prefix"`
	// OutputPath mirrors the HCL graph block; it is recomputed on every run.
	OutputPath string `yaml:"output_path"`
}

type moduleDTO struct {
	Name                string       `yaml:"name"`
	Group               string       `yaml:"group"`
	OutputPath          string       `yaml:"output_path"`
	Evaluated           bool         `yaml:"evaluated"`
	Repositories        []string     `yaml:"repositories"`
	EvaluationDependsOn []string     `yaml:"evaluation_depends_on"`
	Platform            *platformDTO `yaml:"platform"`
}

type platformDTO struct {
	Kind             string  `yaml:"kind"`
	ToolchainVersion string  `yaml:"toolchain_version"`
	Namespace        *string `yaml:"namespace"`
	CompileSDK       int     `yaml:"compile_sdk"`
}

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the YAML graph description at path. Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx).With("path", path)
	logger.Debug("YAML loader started.")

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	raw, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var dto fileDTO
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	model := toModel(&dto, filepath.Dir(absPath))
	logger.Debug("YAML loading complete.", "modules", len(model.Modules))
	return model, nil
}

func toModel(dto *fileDTO, configDir string) *config.Model {
	settings := &config.GraphSettings{RootDir: configDir}
	if g := dto.Graph; g != nil {
		if g.Root != "" {
			if filepath.IsAbs(g.Root) {
				settings.RootDir = filepath.Clean(g.Root)
			} else {
				settings.RootDir = filepath.Join(configDir, g.Root)
			}
		}
		settings.Primary = g.Primary
		settings.Repositories = g.Repositories
		settings.ToolchainVersion = g.ToolchainVersion
		settings.NamespacePrefix = g.NamespacePrefix
	}

	model := &config.Model{Graph: settings}
	for _, m := range dto.Modules {
		if m == nil {
			continue
		}
		def := &config.ModuleDefinition{
			Name:                m.Name,
			Group:               m.Group,
			OutputPath:          m.OutputPath,
			Evaluated:           m.Evaluated,
			Repositories:        m.Repositories,
			EvaluationDependsOn: m.EvaluationDependsOn,
		}
		if p := m.Platform; p != nil {
			def.Platform = &config.PlatformDefinition{
				Kind:             p.Kind,
				ToolchainVersion: p.ToolchainVersion,
				Namespace:        p.Namespace,
				CompileSDK:       p.CompileSDK,
			}
		}
		model.Modules = append(model.Modules, def)
	}
	return model
}
