package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// headerRoot decodes the `graph` block first so that its settings can feed
// the evaluation context used for the rest of the file.
type headerRoot struct {
	Graph  *graphBlock `hcl:"graph,block"`
	Remain hcl.Body    `hcl:",remain"`
}

// moduleRoot decodes everything left after the `graph` block.
type moduleRoot struct {
	Modules []*moduleBlock `hcl:"module,block"`
}

type graphBlock struct {
	Root             string   `hcl:"root,optional"`
	Primary          string   `hcl:"primary,optional"`
	Repositories     []string `hcl:"repositories,optional"`
	ToolchainVersion string   `hcl:"toolchain_version,optional"`
	NamespacePrefix  string   `hcl:"namespace_prefix,optional"`
	// OutputPath is written by WriteGraph and recomputed on every run.
	OutputPath string `hcl:"output_path,optional"`
}

type moduleBlock struct {
	Name                string         `hcl:"name,label"`
	Group               string         `hcl:"group,optional"`
	OutputPath          string         `hcl:"output_path,optional"`
	Evaluated           bool           `hcl:"evaluated,optional"`
	Repositories        []string       `hcl:"repositories,optional"`
	EvaluationDependsOn []string       `hcl:"evaluation_depends_on,optional"`
	Platform            *platformBlock `hcl:"platform,block"`
}

type platformBlock struct {
	Kind             string  `hcl:"kind,label"`
	ToolchainVersion string  `hcl:"toolchain_version,optional"`
	Namespace        *string `hcl:"namespace,optional"`
	CompileSDK       int     `hcl:"compile_sdk,optional"`
}
