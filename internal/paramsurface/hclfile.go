package paramsurface

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/SkanUJkod/SkanUJkod/internal/paramvalue"
)

// LoadFile reads a params file: a flat HCL body of attributes, one per
// parameter key, with literal values only (no variables or functions are in
// scope). Attribute names become parameter keys; attribute values become
// parameter values of the narrowest matching kind.
//
//	project_path = "./my/project"
//	verbose      = true
//	threshold    = 10
func LoadFile(path string) (map[string]paramvalue.Value, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing params file %q: %w", path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("reading params file %q: %w", path, diags)
	}

	values := make(map[string]paramvalue.Value, len(attrs))
	for name, attr := range attrs {
		v, err := evalLiteral(attr)
		if err != nil {
			return nil, fmt.Errorf("params file %q: %w", path, err)
		}
		values[name] = v
	}
	return values, nil
}

// evalLiteral evaluates one attribute with an empty evaluation context and
// converts the resulting cty.Value into a parameter value.
func evalLiteral(attr *hcl.Attribute) (paramvalue.Value, error) {
	ctyVal, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return paramvalue.Value{}, fmt.Errorf("attribute %q: %w", attr.Name, diags)
	}
	return fromCty(attr.Name, ctyVal)
}

func fromCty(name string, v cty.Value) (paramvalue.Value, error) {
	if v.IsNull() || !v.IsKnown() {
		return paramvalue.Value{}, fmt.Errorf("attribute %q has no usable value", name)
	}

	switch v.Type() {
	case cty.Bool:
		return paramvalue.Bool(v.True()), nil
	case cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return paramvalue.Value{}, fmt.Errorf("attribute %q: %w", name, err)
		}
		return paramvalue.Number(f), nil
	case cty.String:
		return paramvalue.Text(v.AsString()), nil
	}

	// Anything else (tuples, objects) is squeezed through cty's own string
	// conversion if possible, and rejected otherwise.
	converted, err := convert.Convert(v, cty.String)
	if err != nil {
		return paramvalue.Value{}, fmt.Errorf("attribute %q has unsupported type %s", name, v.Type().FriendlyName())
	}
	return paramvalue.Text(converted.AsString()), nil
}
