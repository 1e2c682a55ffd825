package interpreter

import (
	"fmt"
	"io"
	"strings"

	"glox/value"
)

// BuiltIn enumerates the fixed operator/keyword computations. Keeping
// the set closed means dispatch is an exhaustive switch rather than a
// string-keyed table consulted at call time.
type BuiltIn int

const (
	BuiltinPlus BuiltIn = iota
	BuiltinMinus
	BuiltinStar
	BuiltinSlash
	BuiltinAnd
	BuiltinOr
	BuiltinBang
	BuiltinLess
	BuiltinLessEqual
	BuiltinGreater
	BuiltinGreaterEqual
	BuiltinEqual
	BuiltinNotEqual
	BuiltinPrint
)

var builtinSpellings = map[string]BuiltIn{
	"+":     BuiltinPlus,
	"-":     BuiltinMinus,
	"*":     BuiltinStar,
	"/":     BuiltinSlash,
	"and":   BuiltinAnd,
	"or":    BuiltinOr,
	"!":     BuiltinBang,
	"<":     BuiltinLess,
	"<=":    BuiltinLessEqual,
	">":     BuiltinGreater,
	">=":    BuiltinGreaterEqual,
	"==":    BuiltinEqual,
	"!=":    BuiltinNotEqual,
	"print": BuiltinPrint,
}

// LookupBuiltIn resolves an operator/keyword spelling.
func LookupBuiltIn(name string) (BuiltIn, bool) {
	b, ok := builtinSpellings[name]
	return b, ok
}

func (b BuiltIn) Spelling() string {
	for spelling, bi := range builtinSpellings {
		if bi == b {
			return spelling
		}
	}
	return "?"
}

// Call dispatches over the already-evaluated argument list. Each
// builtin accepts a fixed set of argument shapes; anything else is an
// arity/type error naming the offending kinds.
func (b BuiltIn) Call(out io.Writer, args []value.Value) (value.Value, error) {
	switch b {
	case BuiltinPlus:
		if a, bv, ok := twoNumbers(args); ok {
			return value.NumberValue(a + bv), nil
		}
		if len(args) == 2 && args[0].Kind == value.KindString && args[1].Kind == value.KindString {
			return value.StringValue(args[0].Str + args[1].Str), nil
		}
		return value.Value{}, b.invalidArgs(args)

	case BuiltinMinus:
		if a, bv, ok := twoNumbers(args); ok {
			return value.NumberValue(a - bv), nil
		}
		if len(args) == 1 && args[0].Kind == value.KindNumber {
			return value.NumberValue(-args[0].Number), nil
		}
		return value.Value{}, b.invalidArgs(args)

	case BuiltinStar:
		if a, bv, ok := twoNumbers(args); ok {
			return value.NumberValue(a * bv), nil
		}
		return value.Value{}, b.invalidArgs(args)

	case BuiltinSlash:
		if a, bv, ok := twoNumbers(args); ok {
			return value.NumberValue(a / bv), nil
		}
		return value.Value{}, b.invalidArgs(args)

	case BuiltinAnd:
		// Strict: both operands were evaluated before dispatch.
		if a, bv, ok := twoBools(args); ok {
			return value.BoolValue(a && bv), nil
		}
		return value.Value{}, b.invalidArgs(args)

	case BuiltinOr:
		if a, bv, ok := twoBools(args); ok {
			return value.BoolValue(a || bv), nil
		}
		return value.Value{}, b.invalidArgs(args)

	case BuiltinBang:
		if len(args) == 1 && args[0].Kind == value.KindBool {
			return value.BoolValue(!args[0].Bool), nil
		}
		return value.Value{}, b.invalidArgs(args)

	case BuiltinLess:
		if a, bv, ok := twoNumbers(args); ok {
			return value.BoolValue(a < bv), nil
		}
		return value.Value{}, b.invalidArgs(args)

	case BuiltinLessEqual:
		if a, bv, ok := twoNumbers(args); ok {
			return value.BoolValue(a <= bv), nil
		}
		return value.Value{}, b.invalidArgs(args)

	case BuiltinGreater:
		if a, bv, ok := twoNumbers(args); ok {
			return value.BoolValue(a > bv), nil
		}
		return value.Value{}, b.invalidArgs(args)

	case BuiltinGreaterEqual:
		if a, bv, ok := twoNumbers(args); ok {
			return value.BoolValue(a >= bv), nil
		}
		return value.Value{}, b.invalidArgs(args)

	case BuiltinEqual:
		// Defined for any pair of values; differing kinds compare unequal.
		if len(args) == 2 {
			return value.BoolValue(value.Equal(args[0], args[1])), nil
		}
		return value.Value{}, b.invalidArgs(args)

	case BuiltinNotEqual:
		if len(args) == 2 {
			return value.BoolValue(!value.Equal(args[0], args[1])), nil
		}
		return value.Value{}, b.invalidArgs(args)

	case BuiltinPrint:
		if len(args) == 1 {
			fmt.Fprintln(out, args[0].PrintText())
			return value.NilValue(), nil
		}
		return value.Value{}, b.invalidArgs(args)

	default:
		return value.Value{}, fmt.Errorf("unknown builtin %d", int(b))
	}
}

func twoNumbers(args []value.Value) (float64, float64, bool) {
	if len(args) == 2 && args[0].Kind == value.KindNumber && args[1].Kind == value.KindNumber {
		return args[0].Number, args[1].Number, true
	}
	return 0, 0, false
}

func twoBools(args []value.Value) (bool, bool, bool) {
	if len(args) == 2 && args[0].Kind == value.KindBool && args[1].Kind == value.KindBool {
		return args[0].Bool, args[1].Bool, true
	}
	return false, false, false
}

func (b BuiltIn) invalidArgs(args []value.Value) error {
	kinds := make([]string, 0, len(args))
	for _, a := range args {
		kinds = append(kinds, a.Kind.String())
	}
	return fmt.Errorf("Invalid arguments (%s) for builtin '%s'.", strings.Join(kinds, ", "), b.Spelling())
}
