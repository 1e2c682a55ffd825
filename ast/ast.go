package ast

import (
	"fmt"
	"strings"

	"glox/value"
)

// Node is one AST node. String renders the canonical parenthesized
// form used by the parse command.
type Node interface {
	NodeKind() string
	GetSpan() Span
	String() string
}

type Literal struct {
	S     Span
	Value value.Value
}

func (l *Literal) NodeKind() string { return "Literal" }
func (l *Literal) GetSpan() Span    { return l.S }
func (l *Literal) String() string   { return l.Value.String() }

// Symbol is a bare identifier reference, resolved at evaluation time.
type Symbol struct {
	S    Span
	Name string
}

func (s *Symbol) NodeKind() string { return "Symbol" }
func (s *Symbol) GetSpan() Span    { return s.S }
func (s *Symbol) String() string   { return s.Name }

// Group is a parenthesized sub-expression. It does not open a scope.
type Group struct {
	S        Span
	Children []Node
}

func (g *Group) NodeKind() string { return "Group" }
func (g *Group) GetSpan() Span    { return g.S }
func (g *Group) String() string {
	return fmt.Sprintf("(group%s)", joinNodes(g.Children))
}

// Block is a brace-delimited statement sequence. Unlike Group it
// introduces a new scope.
type Block struct {
	S        Span
	Children []Node
}

func (b *Block) NodeKind() string { return "Block" }
func (b *Block) GetSpan() Span    { return b.S }
func (b *Block) String() string {
	parts := make([]string, 0, len(b.Children))
	for _, c := range b.Children {
		parts = append(parts, c.String())
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, " "))
}

// Application applies a callee (an operator or print, uniformly a
// Symbol) to already-parsed arguments.
type Application struct {
	S      Span
	Callee Node
	Args   []Node
}

func (a *Application) NodeKind() string { return "Application" }
func (a *Application) GetSpan() Span    { return a.S }
func (a *Application) String() string {
	return fmt.Sprintf("(%s%s)", a.Callee.String(), joinNodes(a.Args))
}

// Declaration introduces a new binding. A missing initializer is
// filled with a nil literal by the parser.
type Declaration struct {
	S           Span
	Name        string
	Initializer Node
}

func (d *Declaration) NodeKind() string { return "Declaration" }
func (d *Declaration) GetSpan() Span    { return d.S }
func (d *Declaration) String() string {
	return fmt.Sprintf("(var %s %s)", d.Name, d.Initializer.String())
}

// Assignment rebinds an existing name.
type Assignment struct {
	S     Span
	Name  string
	Value Node
}

func (a *Assignment) NodeKind() string { return "Assignment" }
func (a *Assignment) GetSpan() Span    { return a.S }
func (a *Assignment) String() string {
	return fmt.Sprintf("(= %s %s)", a.Name, a.Value.String())
}

// Program is the root statement sequence. Each top-level node renders
// on its own line.
type Program struct {
	S        Span
	Children []Node
}

func (p *Program) NodeKind() string { return "Program" }
func (p *Program) GetSpan() Span    { return p.S }
func (p *Program) String() string {
	parts := make([]string, 0, len(p.Children))
	for _, c := range p.Children {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, "\n")
}

func joinNodes(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(" ")
		b.WriteString(n.String())
	}
	return b.String()
}
