package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/ohadswissa/nand2tetris-jack-compiler/cmd/jackc/cmd"
)

// run executes the root command against args and returns its error, the way
// a caller driving the binary's entry point would observe it.
func run(t *testing.T, args []string) error {
	t.Helper()
	c := cmd.NewRootCmd()
	c.SetArgs(args)
	c.SilenceUsage = true
	c.SilenceErrors = true
	return c.Execute()
}

func writeJack(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestCompileSingleFileProducesSiblingVM(t *testing.T) {
	dir := t.TempDir()
	path := writeJack(t, dir, "A.jack", `class A { function void f() { return; } }`)

	require.NoError(t, run(t, []string{path}))

	out, err := os.ReadFile(filepath.Join(dir, "A.vm"))
	require.NoError(t, err)
	require.Contains(t, string(out), "function A.f 0")
}

func TestCompileDirectoryCompilesOnlyImmediateJackChildren(t *testing.T) {
	dir := t.TempDir()
	writeJack(t, dir, "A.jack", `class A { function void f() { return; } }`)
	writeJack(t, dir, "B.jack", `class B { function void g() { return; } }`)
	writeJack(t, dir, "notes.txt", "not jack source")

	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeJack(t, sub, "C.jack", `class C { function void h() { return; } }`)

	require.NoError(t, run(t, []string{dir}))

	_, err := os.Stat(filepath.Join(dir, "A.vm"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "B.vm"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(sub, "C.vm"))
	require.True(t, os.IsNotExist(err), "directory mode must not recurse into subdirectories")
}

func TestCompileDirectoryContinuesPastOneFailingFile(t *testing.T) {
	dir := t.TempDir()
	writeJack(t, dir, "Good.jack", `class Good { function void f() { return; } }`)
	writeJack(t, dir, "Bad.jack", `class Bad { this is not jack`)

	err := run(t, []string{dir})
	require.Error(t, err, "a failing file must still fail the overall run")

	_, statErr := os.Stat(filepath.Join(dir, "Good.vm"))
	require.NoError(t, statErr, "other files must still be compiled after one fails")
}

// TestCompileDirectoryContinuesPastFileTruncatedMidConstruct covers a file
// that ends inside an unclosed class body, the case where the tokenizer
// runs out of input entirely rather than hitting a merely unexpected token.
func TestCompileDirectoryContinuesPastFileTruncatedMidConstruct(t *testing.T) {
	dir := t.TempDir()
	writeJack(t, dir, "Good.jack", `class Good { function void f() { return; } }`)
	writeJack(t, dir, "Truncated.jack", `class A {`)

	var err error
	require.NotPanics(t, func() {
		err = run(t, []string{dir})
	})
	require.Error(t, err, "a truncated file must still fail the overall run")

	_, statErr := os.Stat(filepath.Join(dir, "Good.vm"))
	require.NoError(t, statErr, "other files must still be compiled after one is truncated")
}

func TestMissingPathIsReportedAndFails(t *testing.T) {
	err := run(t, []string{filepath.Join(t.TempDir(), "does-not-exist.jack")})
	require.Error(t, err)
}

func TestNonJackFileIsRejected(t *testing.T) {
	dir := t.TempDir()
	path := writeJack(t, dir, "readme.txt", "hello")
	err := run(t, []string{path})
	require.Error(t, err)
}

func TestExactlyOnePositionalArgumentIsRequired(t *testing.T) {
	var c *cobra.Command
	c = cmd.NewRootCmd()
	c.SetArgs([]string{})
	require.Error(t, c.Execute())

	c = cmd.NewRootCmd()
	c.SetArgs([]string{"one", "two"})
	require.Error(t, c.Execute())
}
