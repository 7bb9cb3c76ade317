package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/f0rgenet/flowpack/cmd/flowpack"
)

func main() {
	rootCmd := flowpack.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Printfln("%v", err)
		os.Exit(1)
	}
}
