package interpreter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glox/ast"
	"glox/lexer"
	"glox/parser"
	"glox/value"
)

func evalSource(t *testing.T, src string) (value.Value, string, error) {
	t.Helper()
	lx := lexer.New(src)
	prog, err := parser.New(lx).ParseProgram()
	require.NoError(t, err)
	require.False(t, lx.HasErrors())

	var out bytes.Buffer
	result, err := NewWithOutput(&out).Eval(prog)
	return result, out.String(), err
}

func TestEvalExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected value.Value
	}{
		{"1 + 2 * 3;", value.NumberValue(7)},
		{"(1 + 2) * 3;", value.NumberValue(9)},
		{"10 / 4;", value.NumberValue(2.5)},
		{"-5 + 3;", value.NumberValue(-2)},
		{`"a" + "b";`, value.StringValue("ab")},
		{"!true;", value.BoolValue(false)},
		{"1 < 2 and 2 <= 2;", value.BoolValue(true)},
		{"false or true;", value.BoolValue(true)},
		{`1 == "1";`, value.BoolValue(false)},
		{"nil == nil;", value.BoolValue(true)},
		{"1 != 2;", value.BoolValue(true)},

		// A program's value is its last statement's value.
		{"1; 2; 3;", value.NumberValue(3)},
		{"", value.NilValue()},

		// Declarations and assignments yield the bound value.
		{"var x = 4;", value.NumberValue(4)},
		{"var x; x;", value.NilValue()},
		{"var x = 1; x = x + 1;", value.NumberValue(2)},
		{"var x; var y; x = y = 9; x;", value.NumberValue(9)},
	}

	for _, test := range tests {
		result, _, err := evalSource(t, test.input)
		require.NoError(t, err, "input is: %s", test.input)
		assert.Equal(t, test.expected, result, "input is: %s", test.input)
	}
}

// Inner declarations shadow without touching the outer binding, and
// the outer binding comes back after block exit.
func TestBlockScoping(t *testing.T) {
	_, out, err := evalSource(t, "var x = 1; { var x = 2; print x; } print x;")
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n", out)
}

// Groups are not scopes: an assignment inside parentheses rebinds the
// enclosing binding.
func TestGroupIsNotAScope(t *testing.T) {
	_, out, err := evalSource(t, "var x = 1; (x = 2); print x;")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestRedeclarationShadows(t *testing.T) {
	result, _, err := evalSource(t, "var x = 1; var x = 2; x;")
	require.NoError(t, err)
	assert.Equal(t, value.NumberValue(2), result)
}

func TestAssignmentToUndefined(t *testing.T) {
	_, _, err := evalSource(t, "x = 1;")
	assert.EqualError(t, err, "[line 1] Undefined variable 'x'.")

	// The failed assignment must not create a binding.
	var out bytes.Buffer
	in := NewWithOutput(&out)

	prog, perr := parser.New(lexer.New("x = 1;")).ParseProgram()
	require.NoError(t, perr)
	_, err = in.Eval(prog)
	require.Error(t, err)

	prog, perr = parser.New(lexer.New("x;")).ParseProgram()
	require.NoError(t, perr)
	_, err = in.Eval(prog)
	assert.EqualError(t, err, "[line 1] Undefined variable 'x'.")
}

func TestUndefinedVariable(t *testing.T) {
	_, _, err := evalSource(t, "var x = 1;\nprint y;")
	assert.EqualError(t, err, "[line 2] Undefined variable 'y'.")
}

// print 10 writes "10"; the same value surfacing as the program result
// renders as "10.0" through the general renderer.
func TestPrintFormattingAsymmetry(t *testing.T) {
	result, out, err := evalSource(t, "print 10; 10;")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)
	assert.Equal(t, "10.0", result.String())
}

func TestBuiltinErrorsCarryLine(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`1 + "a";`, "[line 1] Invalid arguments (number, string) for builtin '+'."},
		{"var x = true;\nx + 1;", "[line 2] Invalid arguments (bool, number) for builtin '+'."},
		{"!1;", "[line 1] Invalid arguments (number) for builtin '!'."},
		{"1 and true;", "[line 1] Invalid arguments (number, bool) for builtin 'and'."},
	}

	for _, test := range tests {
		_, _, err := evalSource(t, test.input)
		assert.EqualError(t, err, test.expected, "input is: %s", test.input)
	}
}

// and/or are strict: both operands evaluate before dispatch, so an
// error on the right side surfaces even when the left decides.
func TestStrictBooleanOperators(t *testing.T) {
	_, _, err := evalSource(t, "false and (1 / 0 == 1);")
	require.NoError(t, err) // division yields +Inf, not an error

	_, _, err = evalSource(t, "true or missing;")
	assert.EqualError(t, err, "[line 1] Undefined variable 'missing'.")
}

// A failed evaluation inside a block must still release the frame:
// bindings made inside it stay invisible afterwards, and the session
// remains usable.
func TestBlockFrameReleasedOnError(t *testing.T) {
	var out bytes.Buffer
	in := NewWithOutput(&out)

	prog, err := parser.New(lexer.New("var x = 1; { var y = 2; boom; }")).ParseProgram()
	require.NoError(t, err)
	_, evalErr := in.Eval(prog)
	require.Error(t, evalErr)

	assert.Equal(t, 1, in.env.Depth())

	prog, err = parser.New(lexer.New("y;")).ParseProgram()
	require.NoError(t, err)
	_, evalErr = in.Eval(prog)
	assert.EqualError(t, evalErr, "[line 1] Undefined variable 'y'.")

	prog, err = parser.New(lexer.New("x;")).ParseProgram()
	require.NoError(t, err)
	result, evalErr := in.Eval(prog)
	require.NoError(t, evalErr)
	assert.Equal(t, value.NumberValue(1), result)
}

// Reserved spellings resolve to builtin references before the
// environment is consulted.
func TestReservedResolvesToBuiltin(t *testing.T) {
	in := NewWithOutput(&bytes.Buffer{})

	result, err := in.Eval(&ast.Symbol{S: ast.Span{Line: 1}, Name: "+"})
	require.NoError(t, err)
	assert.Equal(t, value.BuiltinValue("+"), result)

	result, err = in.Eval(&ast.Symbol{S: ast.Span{Line: 1}, Name: "print"})
	require.NoError(t, err)
	assert.Equal(t, value.BuiltinValue("print"), result)
}

func TestNotCallable(t *testing.T) {
	in := NewWithOutput(&bytes.Buffer{})

	app := &ast.Application{
		S:      ast.Span{Line: 3},
		Callee: &ast.Literal{S: ast.Span{Line: 3}, Value: value.NumberValue(1)},
		Args:   []ast.Node{},
	}
	_, err := in.Eval(app)
	assert.EqualError(t, err, "[line 3] Value of kind number is not callable.")
}

// Arguments evaluate left to right before the callee is resolved.
func TestArgumentEvaluationOrder(t *testing.T) {
	_, out, err := evalSource(t, "var a = 1; var b = 2; print a + b;")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	_, _, err = evalSource(t, "missing + alsoMissing;")
	assert.EqualError(t, err, "[line 1] Undefined variable 'missing'.")
}
