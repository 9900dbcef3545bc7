package paramvalue

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Kind tags which of the value's minimum-required kinds it carries. The
// kernel never branches on Kind itself (spec §3: "the kernel does not
// interpret values"); it exists purely so plugin functions and diagnostics
// can describe a value without reaching into the cty.Value directly.
type Kind string

const (
	KindText   Kind = "text"
	KindBool   Kind = "bool"
	KindNumber Kind = "number"
	KindPath   Kind = "path"
)

// Value is an opaque, immutable parameter value. Two minimum kinds are
// always constructible (Text, Bool); Number and Path are the additional
// kinds spec.md §3 allows a kernel to add without breaking the contract.
type Value struct {
	kind Kind
	v    cty.Value
}

// Text constructs a text value.
func Text(s string) Value { return Value{kind: KindText, v: cty.StringVal(s)} }

// Bool constructs a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, v: cty.BoolVal(b)} }

// Number constructs a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, v: cty.NumberFloatVal(n)} }

// Path constructs a filesystem-path value. It is carried as text; Kind
// distinguishes it for display and for plugin functions that want to treat
// it differently (e.g. resolving relative to a working directory).
func Path(p string) Value { return Value{kind: KindPath, v: cty.StringVal(p)} }

// Kind reports which kind the value was constructed with.
func (val Value) Kind() Kind { return val.kind }

// CtyValue exposes the underlying cty.Value for plugin functions that want
// to use go-cty's own conversion machinery directly.
func (val Value) CtyValue() cty.Value { return val.v }

// AsString converts the value to its string representation, regardless of
// kind, via cty's conversion rules.
func (val Value) AsString() (string, error) {
	converted, err := convert.Convert(val.v, cty.String)
	if err != nil {
		return "", fmt.Errorf("paramvalue: cannot read %s value as string: %w", val.kind, err)
	}
	return converted.AsString(), nil
}

// AsBool converts the value to a bool, returning an error if the
// underlying value cannot be interpreted as one.
func (val Value) AsBool() (bool, error) {
	converted, err := convert.Convert(val.v, cty.Bool)
	if err != nil {
		return false, fmt.Errorf("paramvalue: cannot read %s value as bool: %w", val.kind, err)
	}
	return converted.True(), nil
}

// AsFloat64 converts the value to a float64.
func (val Value) AsFloat64() (float64, error) {
	converted, err := convert.Convert(val.v, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("paramvalue: cannot read %s value as number: %w", val.kind, err)
	}
	var out float64
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return 0, fmt.Errorf("paramvalue: cannot read %s value as number: %w", val.kind, err)
	}
	return out, nil
}

// String renders a human-readable form of the value for diagnostics.
func (val Value) String() string {
	switch val.kind {
	case KindBool:
		return fmt.Sprintf("%v", val.v.True())
	default:
		s, err := val.AsString()
		if err != nil {
			return fmt.Sprintf("<%s:unprintable>", val.kind)
		}
		return s
	}
}

// ParseCLI interprets a raw "--key=value" right-hand side, guessing the
// narrowest kind it fits: boolean, then number, then falling back to text.
// This mirrors how the teacher's HCL layer infers cty types from literals,
// but over a flat command-line string instead of an HCL expression.
func ParseCLI(raw string) Value {
	if raw == "true" || raw == "false" {
		return Bool(raw == "true")
	}
	if n, err := cty.ParseNumberVal(raw); err == nil {
		var f float64
		if convErr := gocty.FromCtyValue(n, &f); convErr == nil {
			return Number(f)
		}
	}
	return Text(raw)
}
