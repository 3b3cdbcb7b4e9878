// Package compiler implements the fused recursive-descent parser and code
// generator: one procedure per grammar nonterminal, each consuming tokens
// from a lexer.Tokenizer, mutating a symtab.Table, and emitting VM
// instructions through a vmwriter.Writer as it goes. No intermediate parse
// tree is ever built; the engine is the single forward pass from tokens to
// VM text described in the language reference.
package compiler

import (
	"fmt"
	"io"

	cerrors "github.com/ohadswissa/nand2tetris-jack-compiler/internal/errors"
	"github.com/ohadswissa/nand2tetris-jack-compiler/internal/lexer"
	"github.com/ohadswissa/nand2tetris-jack-compiler/internal/symtab"
	"github.com/ohadswissa/nand2tetris-jack-compiler/internal/vmwriter"
)

// Engine drives one class compilation: it owns the tokenizer, the symbol
// table, and the VM writer for exactly one source file, and is discarded
// once that file is done.
type Engine struct {
	tok *lexer.Tokenizer
	st  *symtab.Table
	vm  *vmwriter.Writer

	className      string
	subroutineName string
	labelCounter   int

	source string
	file   string
}

// Compile reads the full Jack class in source, and writes the equivalent VM
// text to out. file is used only to annotate error messages. It returns the
// first structured error encountered; the engine does not attempt recovery.
func Compile(source, file string, out io.Writer) error {
	e := &Engine{
		tok:    lexer.New(source),
		st:     symtab.New(),
		vm:     vmwriter.New(out),
		source: source,
		file:   file,
	}

	if err := e.compileClass(); err != nil {
		return err
	}
	return e.vm.Close()
}

// newLabel returns a fresh, class-unique label of the form LABEL_<n>.
func (e *Engine) newLabel() string {
	label := fmt.Sprintf("LABEL_%d", e.labelCounter)
	e.labelCounter++
	return label
}

// advance consumes and returns the next token.
func (e *Engine) advance() lexer.Token {
	return e.tok.Advance()
}

// unexpected builds an UnexpectedToken error for the current token.
func (e *Engine) unexpected(expected string) error {
	cur := e.tok.Current()
	return &cerrors.UnexpectedToken{Expected: expected, Actual: cur.Literal, Pos: cur.Pos}
}

// expectSymbol advances and fails unless the consumed token is the given
// one-character symbol.
func (e *Engine) expectSymbol(sym rune) error {
	e.advance()
	got, err := e.tok.SymbolOfCurrent()
	if err != nil || got != sym {
		return e.unexpected(string(sym))
	}
	return nil
}

// expectKeyword advances and fails unless the consumed token is the given
// keyword.
func (e *Engine) expectKeyword(kw lexer.TokenType) error {
	e.advance()
	if e.tok.Current().Type != kw {
		return e.unexpected(kw.String())
	}
	return nil
}

// expectIdentifier advances and fails unless the consumed token is an
// identifier, returning its text.
func (e *Engine) expectIdentifier() (string, error) {
	e.advance()
	name, err := e.tok.IdentifierOfCurrent()
	if err != nil {
		return "", e.unexpected("identifier")
	}
	return name, nil
}

// compileType consumes one of int/char/boolean/ID and returns its textual
// name, used as the declared type of fields, statics, parameters and locals
// and as a subroutine's non-void return type.
func (e *Engine) compileType() (string, error) {
	tok := e.advance()
	switch tok.Type {
	case lexer.INT_KW, lexer.CHAR, lexer.BOOLEAN:
		return tok.Literal, nil
	case lexer.IDENT:
		return tok.Literal, nil
	default:
		return "", e.unexpected("type")
	}
}
