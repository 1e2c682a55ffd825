package interpreter

import (
	"fmt"
	"io"
	"os"

	"glox/ast"
	"glox/lexer"
	"glox/value"
)

// RuntimeError is a fatal evaluation error tagged with the source line
// of the symbol or application it arose from.
type RuntimeError struct {
	Line int
	Msg  string
}

func (e RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Msg)
}

// Interpreter walks an AST and computes its value against a lexically
// scoped environment. One interpreter owns its environment for the
// duration of a run; a REPL session keeps reusing the same instance so
// bindings persist across inputs.
type Interpreter struct {
	env *EnvironmentStack
	out io.Writer
}

func New() *Interpreter {
	return NewWithOutput(os.Stdout)
}

// NewWithOutput directs print output to out.
func NewWithOutput(out io.Writer) *Interpreter {
	return &Interpreter{
		env: NewEnvironment(),
		out: out,
	}
}

// Eval computes the value of node. The first fatal error aborts the
// pass; the environment is still left consistent (block frames are
// released on error paths too).
func (i *Interpreter) Eval(node ast.Node) (value.Value, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return n.Value, nil

	case *ast.Symbol:
		return i.evalSymbol(n)

	case *ast.Program:
		return i.evalSequence(n.Children)

	case *ast.Group:
		return i.evalSequence(n.Children)

	case *ast.Block:
		return i.evalBlock(n)

	case *ast.Application:
		return i.evalApplication(n)

	case *ast.Declaration:
		v, err := i.Eval(n.Initializer)
		if err != nil {
			return value.Value{}, err
		}
		i.env.Set(n.Name, v)
		return v, nil

	case *ast.Assignment:
		if _, ok := i.env.Get(n.Name); !ok {
			return value.Value{}, RuntimeError{
				Line: n.S.Line,
				Msg:  fmt.Sprintf("Undefined variable '%s'.", n.Name),
			}
		}
		v, err := i.Eval(n.Value)
		if err != nil {
			return value.Value{}, err
		}
		i.env.Set(n.Name, v)
		return v, nil

	default:
		return value.Value{}, fmt.Errorf("unhandled node kind %s", node.NodeKind())
	}
}

// Reserved spellings resolve to builtin references before the
// environment is consulted, so print and the operators can never be
// shadowed by a variable.
func (i *Interpreter) evalSymbol(sym *ast.Symbol) (value.Value, error) {
	if lexer.Reserved(sym.Name) {
		return value.BuiltinValue(sym.Name), nil
	}
	if v, ok := i.env.Get(sym.Name); ok {
		return v, nil
	}
	return value.Value{}, RuntimeError{
		Line: sym.S.Line,
		Msg:  fmt.Sprintf("Undefined variable '%s'.", sym.Name),
	}
}

func (i *Interpreter) evalSequence(nodes []ast.Node) (value.Value, error) {
	last := value.NilValue()
	for _, n := range nodes {
		v, err := i.Eval(n)
		if err != nil {
			return value.Value{}, err
		}
		last = v
	}
	return last, nil
}

// evalBlock runs the children in a fresh frame. The deferred exit
// keeps the frame from leaking when a child evaluation fails.
func (i *Interpreter) evalBlock(b *ast.Block) (value.Value, error) {
	i.env.Enter()
	defer i.env.Exit()
	return i.evalSequence(b.Children)
}

// evalApplication evaluates every argument left to right, then the
// callee, then dispatches. Argument evaluation preceding dispatch is
// what makes and/or strict.
func (i *Interpreter) evalApplication(app *ast.Application) (value.Value, error) {
	args := make([]value.Value, 0, len(app.Args))
	for _, arg := range app.Args {
		v, err := i.Eval(arg)
		if err != nil {
			return value.Value{}, err
		}
		args = append(args, v)
	}

	callee, err := i.Eval(app.Callee)
	if err != nil {
		return value.Value{}, err
	}
	if callee.Kind != value.KindBuiltin {
		return value.Value{}, RuntimeError{
			Line: app.S.Line,
			Msg:  fmt.Sprintf("Value of kind %s is not callable.", callee.Kind),
		}
	}

	builtin, ok := LookupBuiltIn(callee.Builtin)
	if !ok {
		return value.Value{}, RuntimeError{
			Line: app.S.Line,
			Msg:  fmt.Sprintf("'%s' is not callable.", callee.Builtin),
		}
	}

	result, err := builtin.Call(i.out, args)
	if err != nil {
		return value.Value{}, RuntimeError{Line: app.S.Line, Msg: err.Error()}
	}
	return result, nil
}
