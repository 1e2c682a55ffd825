package parser

import (
	"fmt"

	"glox/ast"
	"glox/lexer"
	"glox/value"
)

// Parser drives the lexer through its peek/next interface and builds
// the AST by precedence climbing. Syntax errors are fatal: the first
// one aborts parsing, there is no resynchronization.
type Parser struct {
	lx       *lexer.Lexer
	lastLine int
}

func New(lx *lexer.Lexer) *Parser {
	return &Parser{lx: lx, lastLine: 1}
}

func (p *Parser) peek() lexer.Token { return p.lx.Peek() }

func (p *Parser) next() lexer.Token {
	tok, _ := p.lx.Next()
	if tok.Type != lexer.EOF {
		p.lastLine = tok.Span.Line
	}
	return tok
}

func (p *Parser) errAt(tok lexer.Token, msg string) error {
	if tok.Type == lexer.EOF {
		return fmt.Errorf("[line %d] Error at end: %s", p.lastLine, msg)
	}
	return fmt.Errorf("[line %d] Error at '%s': %s", tok.Span.Line, tok.Lexeme, msg)
}

// program := declaration* EOF
func (p *Parser) ParseProgram() (*ast.Program, error) {
	children := []ast.Node{}
	for p.peek().Type != lexer.EOF {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		children = append(children, decl)
	}

	span := ast.ZeroSpan
	if len(children) > 0 {
		span = children[0].GetSpan()
		for _, c := range children[1:] {
			span = span.Merge(c.GetSpan())
		}
	}
	return &ast.Program{S: span, Children: children}, nil
}

// declaration := "var" IDENT ("=" expression)? (";"|EOF) | statement
func (p *Parser) parseDeclaration() (ast.Node, error) {
	if p.peek().Type != lexer.VAR {
		return p.parseStatement()
	}
	varTok := p.next()

	if p.peek().Type != lexer.IDENTIFIER {
		return nil, p.errAt(p.peek(), "Expect variable name.")
	}
	nameTok := p.next()

	// A missing initializer defaults to a nil literal.
	var init ast.Node = &ast.Literal{S: nameTok.Span, Value: value.NilValue()}
	if p.peek().Type == lexer.EQUAL {
		p.next()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		init = expr
	}

	if err := p.expectTerminator("variable declaration"); err != nil {
		return nil, err
	}

	return &ast.Declaration{
		S:           varTok.Span.Merge(init.GetSpan()),
		Name:        nameTok.Lexeme,
		Initializer: init,
	}, nil
}

// statement := block | "print" expression (";"|EOF) | expression (";"|EOF)
func (p *Parser) parseStatement() (ast.Node, error) {
	switch p.peek().Type {
	case lexer.LEFT_BRACE:
		return p.parseBlock()

	case lexer.PRINT:
		printTok := p.next()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expectTerminator("value"); err != nil {
			return nil, err
		}
		return &ast.Application{
			S:      printTok.Span.Merge(expr.GetSpan()),
			Callee: &ast.Symbol{S: printTok.Span, Name: printTok.Lexeme},
			Args:   []ast.Node{expr},
		}, nil

	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expectTerminator("expression"); err != nil {
			return nil, err
		}
		return expr, nil
	}
}

// block := "{" declaration* "}"
func (p *Parser) parseBlock() (ast.Node, error) {
	openTok := p.next()

	children := []ast.Node{}
	for p.peek().Type != lexer.RIGHT_BRACE {
		if p.peek().Type == lexer.EOF {
			return nil, p.errAt(p.peek(), "Expect '}' after block.")
		}
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		children = append(children, decl)
	}
	closeTok := p.next()

	return &ast.Block{
		S:        openTok.Span.Merge(closeTok.Span),
		Children: children,
	}, nil
}

// A statement terminator is ';' or end-of-input, which permits
// dropping the final semicolon of a program.
func (p *Parser) expectTerminator(after string) error {
	switch p.peek().Type {
	case lexer.SEMICOLON:
		p.next()
		return nil
	case lexer.EOF:
		return nil
	default:
		return p.errAt(p.peek(), fmt.Sprintf("Expect ';' after %s.", after))
	}
}

// expression := assignment
func (p *Parser) parseExpression() (ast.Node, error) {
	return p.parseAssignment()
}

// assignment := or ( "=" assignment )?   right-associative
func (p *Parser) parseAssignment() (ast.Node, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if p.peek().Type != lexer.EQUAL {
		return left, nil
	}
	eqTok := p.next()

	val, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	// Only a bare name can be assigned to.
	sym, ok := left.(*ast.Symbol)
	if !ok {
		return nil, fmt.Errorf("[line %d] Error at '=': Invalid assignment target.", eqTok.Span.Line)
	}

	return &ast.Assignment{
		S:     left.GetSpan().Merge(val.GetSpan()),
		Name:  sym.Name,
		Value: val,
	}, nil
}

// or := and ( "or" and )*
func (p *Parser) parseOr() (ast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == lexer.OR {
		opTok := p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = binaryApplication(opTok, left, right)
	}
	return left, nil
}

// and := equality ( "and" equality )*
func (p *Parser) parseAnd() (ast.Node, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == lexer.AND {
		opTok := p.next()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = binaryApplication(opTok, left, right)
	}
	return left, nil
}

// equality := comparison ( ("=="|"!=") comparison )*
func (p *Parser) parseEquality() (ast.Node, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == lexer.EQUAL_EQUAL || p.peek().Type == lexer.BANG_EQUAL {
		opTok := p.next()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = binaryApplication(opTok, left, right)
	}
	return left, nil
}

// comparison := term ( ("<"|"<="|">"|">=") term )*
func (p *Parser) parseComparison() (ast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for isComparisonOp(p.peek().Type) {
		opTok := p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryApplication(opTok, left, right)
	}
	return left, nil
}

func isComparisonOp(t lexer.TokenType) bool {
	return t == lexer.LESS || t == lexer.LESS_EQUAL ||
		t == lexer.GREATER || t == lexer.GREATER_EQUAL
}

// term := factor ( ("+"|"-") factor )*
func (p *Parser) parseTerm() (ast.Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == lexer.PLUS || p.peek().Type == lexer.MINUS {
		opTok := p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = binaryApplication(opTok, left, right)
	}
	return left, nil
}

// factor := unary ( ("*"|"/") unary )*
func (p *Parser) parseFactor() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == lexer.STAR || p.peek().Type == lexer.SLASH {
		opTok := p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryApplication(opTok, left, right)
	}
	return left, nil
}

// unary := ("!"|"-") unary | primary
func (p *Parser) parseUnary() (ast.Node, error) {
	if p.peek().Type == lexer.BANG || p.peek().Type == lexer.MINUS {
		opTok := p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Application{
			S:      opTok.Span.Merge(operand.GetSpan()),
			Callee: &ast.Symbol{S: opTok.Span, Name: opTok.Lexeme},
			Args:   []ast.Node{operand},
		}, nil
	}
	return p.parsePrimary()
}

// primary := literal | IDENT | "(" expression ")"
func (p *Parser) parsePrimary() (ast.Node, error) {
	switch p.peek().Type {
	case lexer.NUMBER, lexer.STRING, lexer.NIL, lexer.TRUE, lexer.FALSE:
		tok := p.next()
		return &ast.Literal{S: tok.Span, Value: tok.Literal}, nil

	case lexer.IDENTIFIER:
		tok := p.next()
		return &ast.Symbol{S: tok.Span, Name: tok.Lexeme}, nil

	case lexer.LEFT_PAREN:
		openTok := p.next()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.peek().Type != lexer.RIGHT_PAREN {
			return nil, p.errAt(p.peek(), "Expect ')' after expression.")
		}
		closeTok := p.next()
		return &ast.Group{
			S:        openTok.Span.Merge(closeTok.Span),
			Children: []ast.Node{expr},
		}, nil

	default:
		return nil, p.errAt(p.peek(), "Expect expression.")
	}
}

// Operators desugar uniformly into applying a named symbol, the same
// shape a call would take.
func binaryApplication(opTok lexer.Token, left, right ast.Node) ast.Node {
	return &ast.Application{
		S:      left.GetSpan().Merge(right.GetSpan()),
		Callee: &ast.Symbol{S: opTok.Span, Name: opTok.Lexeme},
		Args:   []ast.Node{left, right},
	}
}
