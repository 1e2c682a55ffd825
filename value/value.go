package value

import (
	"fmt"
	"math"
	"strconv"
)

type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	KindBuiltin
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBuiltin:
		return "builtin"
	default:
		return "nil"
	}
}

// Value is the runtime datum. Values are plain structs copied on use;
// there is no shared mutable state behind one.
type Value struct {
	Kind    Kind
	Bool    bool
	Number  float64
	Str     string
	Builtin string
}

func NilValue() Value             { return Value{Kind: KindNil} }
func BoolValue(b bool) Value      { return Value{Kind: KindBool, Bool: b} }
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Number: n} }
func StringValue(s string) Value  { return Value{Kind: KindString, Str: s} }
func BuiltinValue(name string) Value {
	return Value{Kind: KindBuiltin, Builtin: name}
}

// String is the general renderer: whole numbers keep a forced ".0" suffix.
// Used for token/AST display and for the final value of an evaluate run.
func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"

	case KindNumber:
		if v.Number == math.Trunc(v.Number) && !math.IsInf(v.Number, 0) {
			return strconv.FormatFloat(v.Number, 'f', 1, 64)
		}
		return strconv.FormatFloat(v.Number, 'g', -1, 64)

	case KindString:
		return v.Str

	case KindBuiltin:
		return fmt.Sprintf("<builtin %s>", v.Builtin)

	default:
		return "nil"
	}
}

// PrintText is the renderer used by the print builtin. It differs from
// String only for numbers, which print bare (10, not 10.0).
func (v Value) PrintText() string {
	if v.Kind == KindNumber {
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	}
	return v.String()
}

// Equal is structural equality. Values of different kinds are unequal,
// never coerced.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindBool:
		return a.Bool == b.Bool
	case KindNumber:
		return a.Number == b.Number
	case KindString:
		return a.Str == b.Str
	case KindBuiltin:
		return a.Builtin == b.Builtin
	default:
		return true
	}
}
