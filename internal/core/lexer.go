package core

import "regexp"

// TokenKind identifies which pattern produced a token.
type TokenKind int

const (
	// Text-splitting lexer kinds.
	TokenExpr TokenKind = iota
	TokenLiteral

	// Expression lexer kinds.
	TokenNumber
	TokenSymbol
	TokenOp
	TokenLParen
	TokenRParen

	tokenIgnore
)

type Token struct {
	Kind TokenKind
	Text string
}

type tokenSpec struct {
	kind TokenKind
	re   *regexp.Regexp
}

// Lexer matches a priority-ordered list of anchored patterns against
// the remaining input. Matches of the ignore kind are discarded.
// Input that matches no pattern ends the token stream silently; that
// leniency is part of the engine's contract.
type Lexer struct {
	specs []tokenSpec
	rest  string
	top   *Token
}

func newLexer(specs []tokenSpec, input string) *Lexer {
	l := &Lexer{specs: specs, rest: input}
	l.advance()
	return l
}

// Peek returns the upcoming token without consuming it, or nil when
// the stream is exhausted.
func (l *Lexer) Peek() *Token {
	return l.top
}

// Next consumes and returns the upcoming token, or nil when the
// stream is exhausted.
func (l *Lexer) Next() *Token {
	tok := l.top
	l.advance()
	return tok
}

func (l *Lexer) advance() {
	for {
		l.top = nil
		for _, spec := range l.specs {
			m := spec.re.FindString(l.rest)
			if m == "" {
				continue
			}
			l.rest = l.rest[len(m):]
			l.top = &Token{Kind: spec.kind, Text: m}
			break
		}
		if l.top == nil || l.top.Kind != tokenIgnore {
			return
		}
	}
}

var textSpecs = []tokenSpec{
	{TokenExpr, regexp.MustCompile(`^\$\{[^}]*\}`)},
	{TokenLiteral, regexp.MustCompile(`^([^$]|\$[^{])+`)},
}

var exprSpecs = []tokenSpec{
	{tokenIgnore, regexp.MustCompile(`^\s+`)},
	{TokenNumber, regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?`)},
	{TokenSymbol, regexp.MustCompile(`^[a-zA-Z_]\w*`)},
	{TokenOp, regexp.MustCompile(`^[+\-*/]`)},
	{TokenLParen, regexp.MustCompile(`^\(`)},
	{TokenRParen, regexp.MustCompile(`^\)`)},
}

// NewTextLexer splits a string into alternating literal and ${...}
// expression spans.
func NewTextLexer(input string) *Lexer {
	return newLexer(textSpecs, input)
}

// NewExprLexer tokenizes the inside of a ${...} span.
func NewExprLexer(input string) *Lexer {
	return newLexer(exprSpecs, input)
}
