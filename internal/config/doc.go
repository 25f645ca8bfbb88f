// Package config defines the format-agnostic description of a project graph
// and the Loader interface that format-specific adapters implement.
//
// The `config.Model` is the single source of truth for building the host
// graph. Concrete loaders for HCL and YAML live in the hcl_adapter and
// yaml_adapter packages.
package config
