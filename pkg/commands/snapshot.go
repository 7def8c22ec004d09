package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"Heartbeat/pkg/heartbeat"
)

// newSnapshotCmd creates the snapshot subcommand.
func newSnapshotCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snapshot",
		Aliases: []string{"ss"},
		Short:   "Run one heartbeat invocation",
		Long: `Sample the toggled metrics once and write one JSON object to the output.

Exits non-zero when the payload is routed to FAILURE.

Example:
  heartbeat snapshot -t cpuLoad -t usedMemory -u GB
  heartbeat snapshot -c heartbeat.yaml -o heartbeat.json
  heartbeat snapshot -t threads -o file:/var/run/heartbeat --failure failed.jsonl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := opts.newHarness(cmd)
			if err != nil {
				return err
			}
			defer h.close()

			res := h.trigger(cmd.Context())
			if res.Outcome == heartbeat.Failure {
				return fmt.Errorf("heartbeat routed to %s: %w", res.Outcome, res.Err)
			}
			return nil
		},
	}

	opts.flags.AddProcessorFlags(cmd)
	opts.flags.AddOutputFlags(cmd)

	return cmd
}
