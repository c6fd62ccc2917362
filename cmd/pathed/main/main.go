package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/arthur-debert/pathed/cmd/pathed"
	"github.com/arthur-debert/pathed/pkg/display"
	"github.com/arthur-debert/pathed/pkg/ui"
)

func main() {
	rootCmd := pathed.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// A failed membership test is a status, not a diagnostic
		if stderrors.Is(err, pathed.ErrNotInList) {
			os.Exit(1)
		}

		renderer := display.NewRenderer(ui.FormatAuto.Resolve(os.Stderr))
		fmt.Fprintln(os.Stderr, renderer.Error(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
