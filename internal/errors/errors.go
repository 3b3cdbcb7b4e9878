// Package errors formats compiler diagnostics with source context,
// line/column information, and a caret pointing at the offending token. It
// also defines the fixed error taxonomy the compiler reports: unreadable
// input, unwritable output, an unexpected token, and stray trailing input
// after a class has been fully parsed.
package errors

import (
	"fmt"
	"strings"

	"github.com/ohadswissa/nand2tetris-jack-compiler/internal/lexer"
)

// CompilerError is a single diagnostic with enough context to locate the
// offending token in the original source.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// NewCompilerError creates a CompilerError.
func NewCompilerError(pos lexer.Position, message, source, file string) *CompilerError {
	return &CompilerError{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders the error with a single line of source context and a
// caret under the offending column. If color is true, ANSI codes highlight
// the caret and message for terminal output.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *CompilerError) sourceLine(n int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// FormatErrors renders a batch of errors, one after another.
func FormatErrors(errs []*CompilerError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Compilation failed with %d error(s):\n\n", len(errs))
	for i, err := range errs {
		fmt.Fprintf(&sb, "[Error %d of %d]\n", i+1, len(errs))
		sb.WriteString(err.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// positioned is implemented by every parse-time error that carries a
// location in the source, whether raised from this package or from
// internal/lexer's typed accessors.
type positioned interface {
	error
	Position() lexer.Position
}

func (e *UnexpectedToken) Position() lexer.Position { return e.Pos }
func (e *StrayInput) Position() lexer.Position      { return e.Pos }

// AsCompilerError renders err with source context and a caret if it carries
// a position, falling back to its plain Error() text otherwise (I/O
// failures, for instance, have no source location to point at).
func AsCompilerError(err error, source, file string) string {
	if p, ok := err.(positioned); ok {
		return NewCompilerError(p.Position(), err.Error(), source, file).Format(false)
	}
	return err.Error()
}

// UnreadableInput wraps an I/O failure encountered while reading a source
// file.
type UnreadableInput struct {
	File string
	Err  error
}

func (e *UnreadableInput) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.File, e.Err)
}

func (e *UnreadableInput) Unwrap() error { return e.Err }

// UnwritableOutput wraps an I/O failure encountered while writing VM text.
type UnwritableOutput struct {
	File string
	Err  error
}

func (e *UnwritableOutput) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.File, e.Err)
}

func (e *UnwritableOutput) Unwrap() error { return e.Err }

// UnexpectedToken is raised by the parser when a specific symbol, keyword,
// or identifier was required and a different token was found.
type UnexpectedToken struct {
	Expected string
	Actual   string
	Pos      lexer.Position
}

func (e *UnexpectedToken) Error() string {
	return fmt.Sprintf("expected %s, got %s at %d:%d", e.Expected, e.Actual, e.Pos.Line, e.Pos.Column)
}

// StrayInput is raised when the class grammar has been fully matched but
// the tokenizer still holds unconsumed tokens.
type StrayInput struct {
	Pos lexer.Position
}

func (e *StrayInput) Error() string {
	return fmt.Sprintf("unexpected input after class body at %d:%d", e.Pos.Line, e.Pos.Column)
}
