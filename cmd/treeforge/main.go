package main

import (
	"fmt"
	"os"

	"github.com/treeforge/treeforge/internal/cli"
	"github.com/treeforge/treeforge/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Error.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
