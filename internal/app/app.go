package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/rootpatch/internal/config"
	"github.com/specialistvlad/rootpatch/internal/ctxlog"
	"github.com/specialistvlad/rootpatch/internal/hcl_adapter"
	"github.com/specialistvlad/rootpatch/internal/project"
	"github.com/specialistvlad/rootpatch/internal/yaml_adapter"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the main application. Results go to outW and
// logs to logW, each App with its own isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg, logW)

	loader, err := loaderFor(cfg.GraphPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("App configured.", "graph", cfg.GraphPath, "loader", fmt.Sprintf("%T", loader))

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}, nil
}

// loaderFor picks the config.Loader matching the file extension.
func loaderFor(path string) (config.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl_adapter.NewLoader(), nil
	case ".yaml", ".yml":
		return yaml_adapter.NewLoader(), nil
	default:
		return nil, fmt.Errorf("no loader for %q", path)
	}
}

// loadGraph loads and builds the host graph.
func (a *App) loadGraph(ctx context.Context) (*project.Graph, error) {
	logger := ctxlog.FromContext(ctx)

	model, err := a.loader.Load(ctx, a.config.GraphPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	graph, err := model.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid project graph: %w", err)
	}
	logger.Debug("Project graph built.", "root", graph.RootDir, "modules", len(graph.Modules()), "primary", graph.Primary)
	return graph, nil
}
