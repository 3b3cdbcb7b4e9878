package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ohadswissa/nand2tetris-jack-compiler/internal/compiler"
	cerrors "github.com/ohadswissa/nand2tetris-jack-compiler/internal/errors"
)

const jackExt = ".jack"

// runCompile is the root command's entry point. It resolves the single
// positional argument to either one source file or a directory of source
// files, and compiles each in turn.
func runCompile(_ *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: no such file or directory", path)
	}

	if info.IsDir() {
		return compileDir(path)
	}
	if !strings.HasSuffix(path, jackExt) {
		return fmt.Errorf("%s: not a .jack file", path)
	}
	return compileFile(path)
}

// compileDir compiles every immediate .jack child of dir, in sorted order.
// A failure on one file is reported and counted, but does not stop the
// remaining files from being attempted; the command exits non-zero if any
// file failed.
func compileDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &cerrors.UnreadableInput{File: dir, Err: err}
	}

	var names []string
	for _, ent := range entries {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), jackExt) {
			continue
		}
		names = append(names, ent.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		return fmt.Errorf("%s: no %s files found", dir, jackExt)
	}

	failed := 0
	for _, name := range names {
		if err := compileFile(filepath.Join(dir, name)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed to compile", failed, len(names))
	}
	return nil
}

// compileFile compiles a single .jack file and writes the sibling .vm file,
// reporting progress when verbose output is enabled.
func compileFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return &cerrors.UnreadableInput{File: path, Err: err}
	}

	outPath := strings.TrimSuffix(path, jackExt) + ".vm"
	f, err := os.Create(outPath)
	if err != nil {
		return &cerrors.UnwritableOutput{File: outPath, Err: err}
	}
	defer f.Close()

	if verbose {
		fmt.Fprintf(os.Stderr, "compiling %s -> %s\n", path, outPath)
	}

	if err := compiler.Compile(string(src), path, f); err != nil {
		return fmt.Errorf("%s", cerrors.AsCompilerError(err, string(src), path))
	}
	return nil
}
