package hcl_adapter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/rootpatch/internal/config"
	"github.com/specialistvlad/rootpatch/internal/ctxlog"
	"github.com/specialistvlad/rootpatch/internal/patcher"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the graph description at path. Relative roots resolve against
// the directory holding the file.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx).With("path", path)
	logger.Debug("HCL loader started.")

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	configDir := filepath.Dir(absPath)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(absPath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var header headerRoot
	diags = gohcl.DecodeBody(file.Body, newEvalContext(configDir, patcher.DefaultNamespacePrefix), &header)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode graph block in %s: %w", path, diags)
	}

	settings := l.translateGraph(header.Graph, configDir)
	logger.Debug("Graph settings decoded.", "root", settings.RootDir, "primary", settings.Primary)

	org := settings.NamespacePrefix
	if org == "" {
		org = patcher.DefaultNamespacePrefix
	}
	var body moduleRoot
	diags = gohcl.DecodeBody(header.Remain, newEvalContext(settings.RootDir, org), &body)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode modules in %s: %w", path, diags)
	}

	model := &config.Model{Graph: settings}
	for _, m := range body.Modules {
		model.Modules = append(model.Modules, l.translateModule(m))
	}

	logger.Debug("HCL loading complete.", "modules", len(model.Modules))
	return model, nil
}
