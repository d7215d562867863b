package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kiro-hq/steerlint/pkg/cli"
	"kiro-hq/steerlint/pkg/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Continuously validate steering documents",
	Long: `Validate every steering document under a directory, then keep watching
the tree and revalidate whenever a markdown file changes.

Runs until interrupted (SIGINT/SIGTERM). The watch itself never fails a
build; use the plain check for CI exit codes.

Example:
  steerlint watch steering/`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	root := args[0]
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a valid directory", root)
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	v, err := newValidator(logger)
	if err != nil {
		return err
	}

	revalidate := func() error {
		results := v.ValidateDirectory(root)
		total := printResults(os.Stdout, results)
		if total > 0 {
			fmt.Printf("\nTotal: %d validation errors found\n", total)
		} else {
			fmt.Printf("\n✓ All files are valid\n")
		}
		return nil
	}

	// Full pass up front; the watcher only reports deltas after that.
	if err := revalidate(); err != nil {
		return err
	}

	watcher, err := watch.New(watch.DefaultConfig(root), logger)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	ctx := cli.SetupSignalHandler()
	if err := watcher.Watch(ctx, revalidate); err != nil {
		return cli.NewCommandError("watch", err)
	}
	return nil
}
