package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"glox/ast"
	"glox/value"
)

// Error is a non-fatal lexical error. Scanning records it and keeps
// going; callers inspect the accumulated list after consuming tokens.
type Error struct {
	Span ast.Span
	Msg  string
}

func (e Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Span.Line, e.Msg)
}

type Lexer struct {
	input []rune
	pos   int
	line  int

	errors []Error

	peeked *Token
	done   bool
}

func New(input string) *Lexer {
	return &Lexer{
		input: []rune(input),
		line:  1,
	}
}

// Peek returns the upcoming token without consuming it. At most one
// token is memoized.
func (l *Lexer) Peek() Token {
	if l.peeked == nil {
		tok := l.scan()
		l.peeked = &tok
	}
	return *l.peeked
}

// Next consumes and returns the next token. The end-of-input token is
// produced exactly once; afterwards ok is false forever.
func (l *Lexer) Next() (Token, bool) {
	if l.done {
		return Token{Type: EOF, Span: ast.ZeroSpan}, false
	}
	var tok Token
	if l.peeked != nil {
		tok = *l.peeked
		l.peeked = nil
	} else {
		tok = l.scan()
	}
	if tok.Type == EOF {
		l.done = true
	}
	return tok, true
}

// Errors returns the lexical errors recorded so far, in source order.
func (l *Lexer) Errors() []Error { return l.errors }

func (l *Lexer) HasErrors() bool { return len(l.errors) > 0 }

func (l *Lexer) recordError(span ast.Span, msg string) {
	l.errors = append(l.errors, Error{Span: span, Msg: msg})
}

func (l *Lexer) peekChar() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekCharAt(offset int) rune {
	if l.pos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.pos+offset]
}

func (l *Lexer) advance() rune {
	ch := l.peekChar()
	if ch == 0 {
		return 0
	}
	l.pos++
	if ch == '\n' {
		l.line++
	}
	return ch
}

// scan produces the next token. Several patterns share a prefix, so
// the checks run in a fixed priority order: comments, strings,
// numbers, reserved constants, identifiers/keywords, multi-character
// operators before single-character ones.
func (l *Lexer) scan() Token {
	for {
		ch := l.peekChar()

		if ch == 0 {
			return Token{Type: EOF, Span: ast.ZeroSpan}
		}

		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
			continue
		}

		if ch == '/' && l.peekCharAt(1) == '/' {
			for l.peekChar() != 0 && l.peekChar() != '\n' {
				l.advance()
			}
			continue
		}

		if ch == '"' {
			tok, ok := l.scanString()
			if !ok {
				continue
			}
			return tok
		}

		if isDigit(ch) {
			return l.scanNumber()
		}

		if tok, ok := l.scanConstant(); ok {
			return tok
		}

		if isAlpha(ch) || ch == '_' {
			return l.scanIdentifier()
		}

		if tok, ok := l.scanOperator(); ok {
			return tok
		}

		span := ast.Span{Line: l.line, Start: l.pos, End: l.pos + 1}
		l.recordError(span, fmt.Sprintf("Unexpected character: %c", ch))
		l.advance()
	}
}

// scanString consumes a "..." literal. No escape processing; interior
// newlines are legal and bump the line counter. Hitting end-of-input
// first records a non-fatal error and resumes scanning.
func (l *Lexer) scanString() (Token, bool) {
	startLine := l.line
	start := l.pos
	l.advance() // opening quote

	for {
		ch := l.peekChar()
		if ch == 0 {
			span := ast.Span{Line: startLine, Start: start, End: l.pos}
			l.recordError(span, "Unterminated string.")
			return Token{}, false
		}
		if ch == '"' {
			l.advance()
			break
		}
		l.advance()
	}

	lexeme := string(l.input[start:l.pos])
	return Token{
		Type:    STRING,
		Lexeme:  lexeme,
		Literal: value.StringValue(strings.Trim(lexeme, `"`)),
		Span:    ast.Span{Line: startLine, Start: start, End: l.pos},
	}, true
}

// scanNumber consumes digits and at most one decimal point that is
// itself followed by a digit. A trailing "1." backs the cursor up so
// the dot is re-lexed on its own.
func (l *Lexer) scanNumber() Token {
	startLine := l.line
	start := l.pos

	for isDigit(l.peekChar()) {
		l.advance()
	}
	if l.peekChar() == '.' {
		l.advance()
		if isDigit(l.peekChar()) {
			for isDigit(l.peekChar()) {
				l.advance()
			}
		} else {
			l.pos--
		}
	}

	lexeme := string(l.input[start:l.pos])
	n, _ := strconv.ParseFloat(lexeme, 64)
	return Token{
		Type:    NUMBER,
		Lexeme:  lexeme,
		Literal: value.NumberValue(n),
		Span:    ast.Span{Line: startLine, Start: start, End: l.pos},
	}
}

func (l *Lexer) scanConstant() (Token, bool) {
	for _, c := range constants {
		if !l.hasPrefix(c.spelling) {
			continue
		}
		start := l.pos
		l.pos += len(c.spelling)
		return Token{
			Type:    c.ttype,
			Lexeme:  c.spelling,
			Literal: c.value,
			Span:    ast.Span{Line: l.line, Start: start, End: l.pos},
		}, true
	}
	return Token{}, false
}

// scanIdentifier consumes a full identifier, then checks it against
// the keyword table. Only an exact match makes a keyword, so a
// keyword-prefixed name like "andy" stays a single identifier.
func (l *Lexer) scanIdentifier() Token {
	startLine := l.line
	start := l.pos

	for isAlphaNum(l.peekChar()) || l.peekChar() == '_' {
		l.advance()
	}

	lexeme := string(l.input[start:l.pos])
	ttype := IDENTIFIER
	if kw, ok := wordKeywords[lexeme]; ok {
		ttype = kw
	}
	return Token{
		Type:   ttype,
		Lexeme: lexeme,
		Span:   ast.Span{Line: startLine, Start: start, End: l.pos},
	}
}

func (l *Lexer) scanOperator() (Token, bool) {
	for _, op := range twoCharOperators {
		if l.hasPrefix(op.spelling) {
			start := l.pos
			l.pos += len(op.spelling)
			return Token{
				Type:   op.ttype,
				Lexeme: op.spelling,
				Span:   ast.Span{Line: l.line, Start: start, End: l.pos},
			}, true
		}
	}

	ch := l.peekChar()
	if ttype, ok := oneCharOperators[ch]; ok {
		start := l.pos
		l.advance()
		return Token{
			Type:   ttype,
			Lexeme: string(ch),
			Span:   ast.Span{Line: l.line, Start: start, End: l.pos},
		}, true
	}
	return Token{}, false
}

func (l *Lexer) hasPrefix(s string) bool {
	for i, ch := range s {
		if l.peekCharAt(i) != ch {
			return false
		}
	}
	return true
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphaNum(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
