package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{NilValue(), "nil"},
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
		{NumberValue(10), "10.0"},
		{NumberValue(0), "0.0"},
		{NumberValue(-3), "-3.0"},
		{NumberValue(2.5), "2.5"},
		{NumberValue(0.1), "0.1"},
		{StringValue("hello"), "hello"},
		{StringValue(""), ""},
		{BuiltinValue("print"), "<builtin print>"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.value.String())
	}
}

// print renders numbers bare; the general renderer forces a trailing
// ".0" on whole numbers. Everything else renders identically.
func TestPrintText(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{NumberValue(10), "10"},
		{NumberValue(2.5), "2.5"},
		{NumberValue(-3), "-3"},
		{NilValue(), "nil"},
		{BoolValue(true), "true"},
		{StringValue("a b"), "a b"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.value.PrintText())
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b     Value
		expected bool
	}{
		{NilValue(), NilValue(), true},
		{BoolValue(true), BoolValue(true), true},
		{BoolValue(true), BoolValue(false), false},
		{NumberValue(1), NumberValue(1), true},
		{NumberValue(1), NumberValue(2), false},
		{StringValue("a"), StringValue("a"), true},
		{StringValue("a"), StringValue("b"), false},
		{BuiltinValue("+"), BuiltinValue("+"), true},

		// No coercion across kinds.
		{NumberValue(1), StringValue("1"), false},
		{NilValue(), BoolValue(false), false},
		{NumberValue(0), NilValue(), false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Equal(test.a, test.b), "%s == %s", test.a, test.b)
	}
}
