package main

import (
	"fmt"
	"os"

	pipstrap "github.com/arthur-debert/pipstrap/cmd/pipstrap"
	"github.com/arthur-debert/pipstrap/pkg/style"
)

func main() {
	rootCmd := pipstrap.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// The failing external command already printed its own
		// diagnostics; add only the step context.
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
