package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

// NewRootCmd builds a fresh root command. It is a constructor rather than a
// package-level singleton so tests can drive independent invocations
// (distinct args, distinct flag state) without cross-test interference.
func NewRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "jackc <path>",
		Short: "Compile Jack source to VM code",
		Long: `jackc translates programs written in the Jack language into textual
instructions for the stack-based VM described in the nand2tetris course.

Given a single file, it compiles that file. Given a directory, it compiles
every immediate child file ending in .jack (non-recursively). For each
source file Foo.jack it writes a sibling Foo.vm.`,
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCompile,
	}

	c.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	verbose = false
	c.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	return c
}

// Execute runs the root command, printing any error to stderr itself since
// errors are silenced on the command.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	return nil
}
