package hcl_adapter

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/rootpatch/internal/platform"
	"github.com/specialistvlad/rootpatch/internal/project"
	"github.com/zclconf/go-cty/cty"
)

// WriteGraph renders the configured graph as HCL in the same shape the
// Loader reads, with every module's redirected output path and patched
// platform values.
func WriteGraph(w io.Writer, g *project.Graph) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	graph := root.AppendNewBlock("graph", nil).Body()
	graph.SetAttributeValue("root", cty.StringVal(g.RootDir))
	graph.SetAttributeValue("primary", cty.StringVal(g.Primary))
	graph.SetAttributeValue("output_path", cty.StringVal(g.OutputPath))
	graph.SetAttributeValue("repositories", stringList(g.Repositories))
	if g.ToolchainVersion != "" {
		graph.SetAttributeValue("toolchain_version", cty.StringVal(g.ToolchainVersion))
	}
	if g.NamespacePrefix != "" {
		graph.SetAttributeValue("namespace_prefix", cty.StringVal(g.NamespacePrefix))
	}

	for _, m := range g.Modules() {
		root.AppendNewline()
		body := root.AppendNewBlock("module", []string{m.Name}).Body()
		if m.Group != "" {
			body.SetAttributeValue("group", cty.StringVal(m.Group))
		}
		body.SetAttributeValue("output_path", cty.StringVal(m.OutputPath))
		body.SetAttributeValue("evaluated", cty.BoolVal(m.Evaluated()))
		body.SetAttributeValue("repositories", stringList(m.Repositories))

		deps, err := g.EvaluationDependencies(m.Name)
		if err != nil {
			return err
		}
		if len(deps) > 0 {
			body.SetAttributeValue("evaluation_depends_on", stringList(deps))
		}

		if m.Platform != nil {
			body.AppendNewline()
			writePlatform(body.AppendNewBlock("platform", []string{m.Platform.Kind()}).Body(), m.Platform)
		}
	}

	if _, err := w.Write(hclwrite.Format(f.Bytes())); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	return nil
}

func writePlatform(body *hclwrite.Body, cfg platform.Config) {
	if reader, ok := cfg.(platform.ToolchainVersionReader); ok && reader.ToolchainVersion() != "" {
		body.SetAttributeValue("toolchain_version", cty.StringVal(reader.ToolchainVersion()))
	}
	if accessor, ok := cfg.(platform.NamespaceAccessor); ok {
		if ns, present := accessor.Namespace(); present {
			body.SetAttributeValue("namespace", cty.StringVal(ns))
		}
	}

	var compileSDK int
	switch ext := cfg.(type) {
	case *platform.AndroidExtension:
		compileSDK = ext.CompileSDK
	case *platform.LegacyExtension:
		compileSDK = ext.CompileSDK
	}
	if compileSDK > 0 {
		body.SetAttributeValue("compile_sdk", cty.NumberIntVal(int64(compileSDK)))
	}
}
