package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	updateDir    string
	updateIndex  string
	updateConfig string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Regenerate the archive section of the index file",
	Long: `Scan the directory for markdown files and rewrite the index file's
archive section with a sorted link list.

The index file itself is never listed. A missing index file is a fatal
error and nothing is written.

Examples:
  # Update README.md in the current directory
  archivist update

  # Update a different directory and index file
  archivist update --dir ~/notes --index INDEX.md

  # Use an explicit config file
  archivist update --config ./archivist.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		upd, cfg, err := newUpdater(updateDir, updateIndex, updateConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		count, err := upd.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s Updated %s with %d files\n", green("✓"), cfg.Index, count)
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateDir, "dir", ".", "Directory to scan for markdown files")
	updateCmd.Flags().StringVar(&updateIndex, "index", "", "Root index filename (default from config, README.md)")
	updateCmd.Flags().StringVar(&updateConfig, "config", "", "Path to config file (default <dir>/.archivist.yaml)")
	rootCmd.AddCommand(updateCmd)
}
