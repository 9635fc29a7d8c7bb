package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mleone/archivist/internal/config"
)

var (
	initDir   string
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example .archivist.yaml to the target directory",
	Long: `Create a .archivist.yaml in the target directory with the default
settings spelled out, ready to edit. Refuses to overwrite an existing file
unless --force is given.

archivist works fine without a config file; init is only needed to change
the index filename, the heading, the name table, or to enable frontmatter
titles.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := filepath.Join(initDir, config.Filename)

		if _, err := os.Stat(path); err == nil && !initForce {
			fmt.Fprintf(os.Stderr, "Error: %s already exists (use --force to overwrite)\n", path)
			os.Exit(1)
		}

		if err := os.WriteFile(path, []byte(config.ExampleConfigFile()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: writing %s: %v\n", path, err)
			os.Exit(1)
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Printf("%s Wrote %s\n", green("✓"), cyan(path))
	},
}

func init() {
	initCmd.Flags().StringVar(&initDir, "dir", ".", "Directory to place the config file in")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
