// Package vmwriter is the thin, stateless sink the compilation engine emits
// VM instructions through. Every call writes one line into a buffer that
// Close flushes; there is no reordering, so output appears in exactly the
// order the engine's depth-first grammar traversal produces it.
package vmwriter

import (
	"bufio"
	"fmt"
	"io"
)

// Command names the nine stack-arithmetic VM instructions.
type Command string

const (
	Add Command = "add"
	Sub Command = "sub"
	Neg Command = "neg"
	Eq  Command = "eq"
	Gt  Command = "gt"
	Lt  Command = "lt"
	And Command = "and"
	Or  Command = "or"
	Not Command = "not"
)

// Writer emits textual VM instructions to an underlying byte stream. It
// owns no source-level state: it is policy-free, the compilation engine
// decides what to emit and when.
type Writer struct {
	out *bufio.Writer
}

// New wraps w in a buffered Writer. Close flushes and must be called once
// emission is complete.
func New(w io.Writer) *Writer {
	return &Writer{out: bufio.NewWriter(w)}
}

func (w *Writer) line(format string, args ...any) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// WritePush emits "push segment index".
func (w *Writer) WritePush(segment string, index int) {
	w.line("push %s %d", segment, index)
}

// WritePop emits "pop segment index".
func (w *Writer) WritePop(segment string, index int) {
	w.line("pop %s %d", segment, index)
}

// WriteArithmetic emits a zero-operand stack command (add, sub, not, ...).
func (w *Writer) WriteArithmetic(cmd Command) {
	w.line("%s", string(cmd))
}

// WriteLabel emits "label name".
func (w *Writer) WriteLabel(name string) {
	w.line("label %s", name)
}

// WriteGoto emits "goto name".
func (w *Writer) WriteGoto(name string) {
	w.line("goto %s", name)
}

// WriteIf emits "if-goto name".
func (w *Writer) WriteIf(name string) {
	w.line("if-goto %s", name)
}

// WriteCall emits "call name nArgs".
func (w *Writer) WriteCall(name string, nArgs int) {
	w.line("call %s %d", name, nArgs)
}

// WriteFunction emits "function name nLocals".
func (w *Writer) WriteFunction(name string, nLocals int) {
	w.line("function %s %d", name, nLocals)
}

// WriteReturn emits "return".
func (w *Writer) WriteReturn() {
	w.line("return")
}

// Close flushes any buffered output. It does not close the underlying
// stream, leaving that to whoever opened it. The rest of the pipeline
// treats the writer as a thin decorator and not a resource owner.
func (w *Writer) Close() error {
	return w.out.Flush()
}
