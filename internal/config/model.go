package config

// Model is the unified, format-agnostic representation of a project graph
// description.
type Model struct {
	Graph   *GraphSettings
	Modules []*ModuleDefinition
}

// GraphSettings holds the root project settings.
type GraphSettings struct {
	// RootDir is the graph root directory, already resolved against the
	// directory of the configuration file.
	RootDir          string
	Primary          string
	Repositories     []string
	ToolchainVersion string
	NamespacePrefix  string
}

// ModuleDefinition is the format-agnostic representation of a `module` block.
type ModuleDefinition struct {
	Name  string
	Group string
	// OutputPath is the module's private build directory before redirection.
	// Empty means <root>/<name>/build.
	OutputPath          string
	Evaluated           bool
	Repositories        []string
	EvaluationDependsOn []string
	Platform            *PlatformDefinition
}

// PlatformDefinition describes a module's platform configuration. A nil
// definition means the module has none.
type PlatformDefinition struct {
	Kind             string
	ToolchainVersion string
	// Namespace is nil when the module declares none.
	Namespace  *string
	CompileSDK int
}
