package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"glox/value"
)

func TestSpanMerge(t *testing.T) {
	a := Span{Line: 2, Start: 10, End: 14}
	b := Span{Line: 1, Start: 3, End: 7}

	merged := a.Merge(b)
	assert.Equal(t, Span{Line: 1, Start: 3, End: 14}, merged)
	assert.Equal(t, merged, b.Merge(a))

	assert.Equal(t, a, a.Merge(a))
	assert.Equal(t, Span{Line: 0, Start: 0, End: 14}, ZeroSpan.Merge(a))
}

func TestCanonicalRendering(t *testing.T) {
	num := func(n float64) Node { return &Literal{Value: value.NumberValue(n)} }

	tests := []struct {
		node     Node
		expected string
	}{
		{num(1), "1.0"},
		{&Literal{Value: value.NilValue()}, "nil"},
		{&Symbol{Name: "x"}, "x"},
		{
			&Group{Children: []Node{num(1)}},
			"(group 1.0)",
		},
		{
			&Application{
				Callee: &Symbol{Name: "+"},
				Args:   []Node{num(1), num(2)},
			},
			"(+ 1.0 2.0)",
		},
		{
			&Application{
				Callee: &Symbol{Name: "print"},
				Args:   []Node{&Symbol{Name: "x"}},
			},
			"(print x)",
		},
		{
			&Declaration{Name: "x", Initializer: num(1)},
			"(var x 1.0)",
		},
		{
			&Assignment{Name: "x", Value: num(2)},
			"(= x 2.0)",
		},
		{
			&Block{Children: []Node{
				&Declaration{Name: "x", Initializer: num(1)},
				&Symbol{Name: "x"},
			}},
			"{(var x 1.0) x}",
		},
		{
			&Program{Children: []Node{num(1), num(2)}},
			"1.0\n2.0",
		},
		{&Program{}, ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.node.String())
	}
}
