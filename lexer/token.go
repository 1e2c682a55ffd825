package lexer

import (
	"fmt"

	"glox/ast"
	"glox/value"
)

type TokenType string

const (
	EOF TokenType = "EOF"

	IDENTIFIER TokenType = "IDENTIFIER"
	NUMBER     TokenType = "NUMBER"
	STRING     TokenType = "STRING"
	NIL        TokenType = "NIL"
	TRUE       TokenType = "TRUE"
	FALSE      TokenType = "FALSE"

	VAR   TokenType = "VAR"
	PRINT TokenType = "PRINT"
	AND   TokenType = "AND"
	OR    TokenType = "OR"

	EQUAL         TokenType = "EQUAL"
	EQUAL_EQUAL   TokenType = "EQUAL_EQUAL"
	BANG          TokenType = "BANG"
	BANG_EQUAL    TokenType = "BANG_EQUAL"
	LESS          TokenType = "LESS"
	LESS_EQUAL    TokenType = "LESS_EQUAL"
	GREATER       TokenType = "GREATER"
	GREATER_EQUAL TokenType = "GREATER_EQUAL"

	PLUS        TokenType = "PLUS"
	MINUS       TokenType = "MINUS"
	STAR        TokenType = "STAR"
	SLASH       TokenType = "SLASH"
	LEFT_PAREN  TokenType = "LEFT_PAREN"
	RIGHT_PAREN TokenType = "RIGHT_PAREN"
	LEFT_BRACE  TokenType = "LEFT_BRACE"
	RIGHT_BRACE TokenType = "RIGHT_BRACE"
	COMMA       TokenType = "COMMA"
	DOT         TokenType = "DOT"
	SEMICOLON   TokenType = "SEMICOLON"
)

// Token is one classified lexical unit. Literal is only meaningful for
// the literal-bearing types (NUMBER, STRING, NIL, TRUE, FALSE).
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal value.Value
	Span    ast.Span
}

// String renders the canonical "<TYPE> <lexeme> <literal-or-null>" form
// printed by the tokenize command.
func (t Token) String() string {
	switch t.Type {
	case NUMBER:
		return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, t.Literal.String())
	case STRING:
		return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, t.Literal.Str)
	default:
		return fmt.Sprintf("%s %s null", t.Type, t.Lexeme)
	}
}

// wordKeywords are the alphabetic reserved words. Matched only against
// a fully scanned identifier, so "andy" stays one identifier.
var wordKeywords = map[string]TokenType{
	"var":   VAR,
	"print": PRINT,
	"and":   AND,
	"or":    OR,
}

// twoCharOperators must be tried before the single-character table so
// "==" is never lexed as two EQUAL tokens.
var twoCharOperators = []struct {
	spelling string
	ttype    TokenType
}{
	{"==", EQUAL_EQUAL},
	{"!=", BANG_EQUAL},
	{"<=", LESS_EQUAL},
	{">=", GREATER_EQUAL},
}

var oneCharOperators = map[rune]TokenType{
	'=': EQUAL,
	'!': BANG,
	'<': LESS,
	'>': GREATER,
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
	'(': LEFT_PAREN,
	')': RIGHT_PAREN,
	'{': LEFT_BRACE,
	'}': RIGHT_BRACE,
	',': COMMA,
	'.': DOT,
	';': SEMICOLON,
}

// constants are the reserved literal spellings, matched as a source
// prefix ahead of identifier scanning.
var constants = []struct {
	spelling string
	ttype    TokenType
	value    value.Value
}{
	{"nil", NIL, value.NilValue()},
	{"true", TRUE, value.BoolValue(true)},
	{"false", FALSE, value.BoolValue(false)},
}

var reservedSpellings = buildReservedSpellings()

func buildReservedSpellings() map[string]bool {
	r := map[string]bool{}
	for spelling := range wordKeywords {
		r[spelling] = true
	}
	for _, op := range twoCharOperators {
		r[op.spelling] = true
	}
	for ch := range oneCharOperators {
		r[string(ch)] = true
	}
	return r
}

// Reserved reports whether name is a keyword or operator spelling.
// Reserved names resolve to builtins before any variable lookup.
func Reserved(name string) bool {
	return reservedSpellings[name]
}
