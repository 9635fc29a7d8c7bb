package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/spf13/cobra"
)

var (
	checkDir    string
	checkIndex  string
	checkConfig string
	checkQuiet  bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the archive section is current without writing",
	Long: `Compute the updated index file in memory and compare it to what is on
disk. Exits 0 when the archive section is already current, 1 with a unified
diff when it is stale.

Useful as a CI guard:
  archivist check || echo "README archive section is out of date"`,
	Run: func(cmd *cobra.Command, args []string) {
		upd, cfg, err := newUpdater(checkDir, checkIndex, checkConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		current, updated, count, err := upd.Preview()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if current == updated {
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Printf("%s %s is up to date (%d files)\n", green("✓"), cfg.Index, count)
			return
		}

		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(os.Stderr, "%s %s is out of date, run 'archivist update'\n", red("✗"), cfg.Index)

		if !checkQuiet {
			edits := myers.ComputeEdits(span.URIFromPath(cfg.Index), current, updated)
			fmt.Print(gotextdiff.ToUnified(cfg.Index, cfg.Index+" (updated)", current, edits))
		}
		os.Exit(1)
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkDir, "dir", ".", "Directory to scan for markdown files")
	checkCmd.Flags().StringVar(&checkIndex, "index", "", "Root index filename (default from config, README.md)")
	checkCmd.Flags().StringVar(&checkConfig, "config", "", "Path to config file (default <dir>/.archivist.yaml)")
	checkCmd.Flags().BoolVar(&checkQuiet, "quiet", false, "Suppress the diff output")
	rootCmd.AddCommand(checkCmd)
}
