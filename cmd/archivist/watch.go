package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mleone/archivist/internal/watch"
)

var (
	watchDir    string
	watchIndex  string
	watchConfig string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the directory and update the archive section on changes",
	Long: `Run an initial update, then watch the directory and regenerate the
archive section whenever markdown files are created, written, renamed, or
removed. Changes to the index file itself are ignored so archivist's own
writes don't retrigger it.

Press Ctrl+C to stop.`,
	Run: func(cmd *cobra.Command, args []string) {
		upd, cfg, err := newUpdater(watchDir, watchIndex, watchConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		green := color.New(color.FgGreen).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		run := func() error {
			count, err := upd.Run()
			if err != nil {
				return err
			}
			fmt.Printf("%s Updated %s with %d files\n", green("✓"), cfg.Index, count)
			return nil
		}

		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s Watching %s for markdown changes (Ctrl+C to stop)\n", gray("→"), watchDir)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w := watch.New(watchDir, cfg.Index, run)
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchDir, "dir", ".", "Directory to scan for markdown files")
	watchCmd.Flags().StringVar(&watchIndex, "index", "", "Root index filename (default from config, README.md)")
	watchCmd.Flags().StringVar(&watchConfig, "config", "", "Path to config file (default <dir>/.archivist.yaml)")
	rootCmd.AddCommand(watchCmd)
}
