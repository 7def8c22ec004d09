package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"Heartbeat/pkg/heartbeat"
)

// newRunCmd creates the run subcommand.
func newRunCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run heartbeat invocations on an interval",
		Long: `Trigger the processor every --interval until --count invocations have
run or the process receives SIGINT/SIGTERM. Invocations are sequential.

Example:
  heartbeat run -i 5s -t cpu -t heap -o heartbeat.jsonl
  heartbeat run -i 1s -n 10 -c heartbeat.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := opts.newHarness(cmd)
			if err != nil {
				return err
			}
			defer h.close()

			if h.cfg.Interval <= 0 {
				return fmt.Errorf("interval must be positive, got %v", h.cfg.Interval)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			h.run(ctx)
			return nil
		},
	}

	opts.flags.AddProcessorFlags(cmd)
	opts.flags.AddOutputFlags(cmd)
	opts.flags.AddScheduleFlags(cmd)

	return cmd
}

// run triggers immediately, then on every tick, until the count is
// reached or ctx is done.
func (h *harness) run(ctx context.Context) (total, failed int) {
	ticker := time.NewTicker(h.cfg.Interval)
	defer ticker.Stop()

	h.logger.Info("Heartbeat started",
		zap.Duration("interval", h.cfg.Interval),
		zap.Int("count", h.cfg.Count))

loop:
	for {
		if res := h.trigger(ctx); res.Outcome == heartbeat.Failure {
			failed++
		}
		total++

		if h.cfg.Count > 0 && total >= h.cfg.Count {
			break
		}

		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
		}
	}

	h.logger.Info("Heartbeat stopped",
		zap.Int("invocations", total),
		zap.Int("failed", failed))
	return total, failed
}
