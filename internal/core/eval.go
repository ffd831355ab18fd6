package core

import (
	"strconv"
	"strings"

	"xacro-convert/internal/types"
	"xacro-convert/internal/xmltree"
)

// EvalText expands every ${...} span in s against the symbol table and
// rejoins the literal spans in original order.
func EvalText(s string, symbols *SymbolTable) (string, error) {
	lex := NewTextLexer(s)
	var b strings.Builder
	for lex.Peek() != nil {
		tok := lex.Next()
		if tok.Kind == TokenExpr {
			inner := tok.Text[2 : len(tok.Text)-1]
			value, err := evalExpr(NewExprLexer(inner), symbols)
			if err != nil {
				return "", err
			}
			b.WriteString(value.String())
		} else {
			b.WriteString(tok.Text)
		}
	}
	return b.String(), nil
}

// evalExpr consumes exactly one token. A number literal becomes a
// float; a symbol is looked up and becomes a float when its value
// parses as one, its string form otherwise. Anything else, including
// empty input, evaluates to zero. Operators and parentheses are
// recognized lexically but never combined: ${1 + 2} yields 1 and the
// tail is ignored. That narrow behavior is contractual, not a defect
// to correct.
func evalExpr(lex *Lexer, symbols *SymbolTable) (types.Value, error) {
	tok := lex.Peek()
	if tok == nil {
		return types.NumberValue(0), nil
	}
	switch tok.Kind {
	case TokenNumber:
		f, err := strconv.ParseFloat(lex.Next().Text, 64)
		if err != nil {
			return types.NumberValue(0), nil
		}
		return types.NumberValue(f), nil
	case TokenSymbol:
		sym, err := symbols.Lookup(lex.Next().Text)
		if err != nil {
			return types.Value{}, err
		}
		return symbolValue(sym), nil
	default:
		return types.NumberValue(0), nil
	}
}

func symbolValue(sym Symbol) types.Value {
	if sym.IsComplex() {
		return types.TextValue(xmltree.SerializeElement(sym.Subtree))
	}
	if f, err := strconv.ParseFloat(sym.Literal, 64); err == nil {
		return types.NumberValue(f)
	}
	return types.TextValue(sym.Literal)
}
