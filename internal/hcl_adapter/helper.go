package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext exposes `var.root` and `var.org` plus a few string
// functions to attribute expressions.
func newEvalContext(root, org string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(map[string]cty.Value{
				"root": cty.StringVal(root),
				"org":  cty.StringVal(org),
			}),
		},
		Functions: map[string]function.Function{
			"lower":   stdlib.LowerFunc,
			"upper":   stdlib.UpperFunc,
			"replace": stdlib.ReplaceFunc,
			"join":    stdlib.JoinFunc,
		},
	}
}

// stringList converts a Go slice into an HCL list value. Empty and nil
// slices become an empty list of strings.
func stringList(items []string) cty.Value {
	if len(items) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, 0, len(items))
	for _, item := range items {
		vals = append(vals, cty.StringVal(item))
	}
	return cty.ListVal(vals)
}
