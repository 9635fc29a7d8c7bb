package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "archivist",
	Short: "Keep a README's archive section in sync with its markdown files",
	Long: `Archivist scans a directory for markdown files and regenerates the
"## Archive" section of the root index file (README.md by default) with a
sorted list of links, deriving a display name for each file from its
filename.

The rewrite is idempotent: the old section is fully replaced, never merged,
so running archivist repeatedly leaves the file unchanged once it is
current.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
