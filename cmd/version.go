package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var (
	version = "(devel)"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "edusense\n")
		fmt.Fprintf(w, "  Version: %s\n", version)
		fmt.Fprintf(w, "  Commit:  %s\n", commit)
		fmt.Fprintf(w, "  Built:   %s\n", date)
		fmt.Fprintf(w, "  Runtime: %s\n", runtime.Version())
	},
}
