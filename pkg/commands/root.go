// Package commands provides CLI command implementations.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"Heartbeat/pkg/config"
	"Heartbeat/pkg/probing"
)

type options struct {
	flags  config.Flags
	getenv func(string) string

	// probe overrides the host probe when set.
	probe probing.RuntimeMetrics
}

// NewRootCmd creates the root command with all subcommands.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&options{getenv: os.Getenv})
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "heartbeat",
		Short: "Emit host and runtime metrics as a JSON heartbeat",
		Long: `heartbeat samples CPU load, physical memory, swap, heap, non-heap memory,
committed virtual memory, thread count and loaded module count, and writes
them as one JSON object per invocation.

Metrics are selected with toggles. A toggle's name picks the metric by
keyword (CPU, MEMORY, SWAP, HEAP, STACK, VIRTUAL, THREAD, CLASS; first match
wins, case-insensitive) and becomes the output field name.

Commands:
  snapshot     Run one invocation
  run          Run invocations on an interval until stopped
  categories   List toggle keywords`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.flags.AddLogFlags(root)

	root.AddCommand(
		newSnapshotCmd(opts),
		newRunCmd(opts),
		newCategoriesCmd(),
	)

	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
