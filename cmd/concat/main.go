package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/concat/internal/cli"
	"github.com/arthur-debert/concat/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Error(err))
		os.Exit(1)
	}
}
