// Command jackc compiles Jack source files to VM code.
package main

import (
	"os"

	"github.com/ohadswissa/nand2tetris-jack-compiler/cmd/jackc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
