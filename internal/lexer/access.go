package lexer

import "fmt"

// TokenKind classifies a token into the five categories named in the
// language reference: keyword, symbol, integer literal, string literal, or
// identifier.
type TokenKind int

const (
	KindIllegal TokenKind = iota
	KindKeyword
	KindSymbol
	KindIntLiteral
	KindStringLiteral
	KindIdentifier
)

// Kind classifies a TokenType into one of the five token categories.
func (tt TokenType) Kind() TokenKind {
	switch {
	case tt == IDENT:
		return KindIdentifier
	case tt == INT:
		return KindIntLiteral
	case tt == STRING:
		return KindStringLiteral
	case tt.IsKeyword():
		return KindKeyword
	case tt.IsSymbol():
		return KindSymbol
	default:
		return KindIllegal
	}
}

// WrongTokenKind is returned by a typed accessor when the current token is
// not of the kind requested.
type WrongTokenKind struct {
	Requested TokenKind
	Actual    TokenType
	Pos       Position
}

func (e *WrongTokenKind) Error() string {
	return fmt.Sprintf("wrong token kind at %d:%d: requested %v, got %v", e.Pos.Line, e.Pos.Column, e.Requested, e.Actual)
}

// Position exposes the token's location so internal/errors can render a
// source excerpt and caret for it without importing lexer internals beyond
// Position itself.
func (e *WrongTokenKind) Position() Position {
	return e.Pos
}

// KindOfCurrent returns the category of the current token.
func (t *Tokenizer) KindOfCurrent() TokenKind {
	return t.Current().Type.Kind()
}

// KeywordOfCurrent returns the current token's TokenType if it is a
// keyword.
func (t *Tokenizer) KeywordOfCurrent() (TokenType, error) {
	cur := t.Current()
	if cur.Type.Kind() != KindKeyword {
		return ILLEGAL, &WrongTokenKind{Requested: KindKeyword, Actual: cur.Type, Pos: cur.Pos}
	}
	return cur.Type, nil
}

// SymbolOfCurrent returns the current token's character if it is a symbol.
func (t *Tokenizer) SymbolOfCurrent() (rune, error) {
	cur := t.Current()
	if cur.Type.Kind() != KindSymbol {
		return 0, &WrongTokenKind{Requested: KindSymbol, Actual: cur.Type, Pos: cur.Pos}
	}
	return rune(cur.Literal[0]), nil
}

// IdentifierOfCurrent returns the current token's text if it is an
// identifier.
func (t *Tokenizer) IdentifierOfCurrent() (string, error) {
	cur := t.Current()
	if cur.Type.Kind() != KindIdentifier {
		return "", &WrongTokenKind{Requested: KindIdentifier, Actual: cur.Type, Pos: cur.Pos}
	}
	return cur.Literal, nil
}

// IntValueOfCurrent returns the current token's numeric value if it is an
// integer literal. Values outside 0..32767 are not rejected here: range
// validation is a known omission of the reference implementation.
func (t *Tokenizer) IntValueOfCurrent() (int, error) {
	cur := t.Current()
	if cur.Type.Kind() != KindIntLiteral {
		return 0, &WrongTokenKind{Requested: KindIntLiteral, Actual: cur.Type, Pos: cur.Pos}
	}
	n := 0
	for _, r := range cur.Literal {
		n = n*10 + int(r-'0')
	}
	return n, nil
}

// StringValueOfCurrent returns the current token's inter-quote content if
// it is a string literal.
func (t *Tokenizer) StringValueOfCurrent() (string, error) {
	cur := t.Current()
	if cur.Type.Kind() != KindStringLiteral {
		return "", &WrongTokenKind{Requested: KindStringLiteral, Actual: cur.Type, Pos: cur.Pos}
	}
	return StringValue(cur), nil
}
