package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"Heartbeat/pkg/config"
	"Heartbeat/pkg/exporting"
	"Heartbeat/pkg/heartbeat"
	"Heartbeat/pkg/logging"
	"Heartbeat/pkg/probing"
)

// harness plays the host runtime around one Processor: it owns the
// configuration, the destinations and FAILURE routing.
type harness struct {
	cfg       *config.Config
	logger    *zap.Logger
	processor *heartbeat.Processor
	output    exporting.Sink
	failure   exporting.Sink
}

func (o *options) newHarness(cmd *cobra.Command) (*harness, error) {
	cfg, err := o.flags.Load(cmd, o.getenv)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	probe, err := o.newProbe(cfg)
	if err != nil {
		return nil, err
	}

	output, err := exporting.Open(cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	var failure exporting.Sink
	if cfg.Failure != "" {
		if failure, err = exporting.Open(cfg.Failure); err != nil {
			return nil, fmt.Errorf("failure: %w", err)
		}
	}

	logger.Debug("Heartbeat configured",
		zap.String("unit", string(cfg.Unit)),
		zap.Int("toggles", len(cfg.Toggles)),
		zap.String("output", cfg.Output),
		zap.String("failure", cfg.Failure),
		zap.Bool("fake", cfg.Fake))

	return &harness{
		cfg:       cfg,
		logger:    logger,
		processor: heartbeat.NewProcessor(probe, logger),
		output:    output,
		failure:   failure,
	}, nil
}

func (o *options) newProbe(cfg *config.Config) (probing.RuntimeMetrics, error) {
	if cfg.Fake {
		return probing.Demo(), nil
	}
	if o.probe != nil {
		return o.probe, nil
	}
	return probing.NewHost()
}

// trigger runs one invocation and routes its flow file.
func (h *harness) trigger(ctx context.Context) *heartbeat.Result {
	res := h.processor.Trigger(ctx, heartbeat.Request{
		Unit:    h.cfg.Unit,
		Toggles: h.cfg.Toggles,
		Sink:    h.output,
	})
	h.route(ctx, res)
	return res
}

func (h *harness) route(ctx context.Context, res *heartbeat.Result) {
	ff := res.FlowFile
	fields := []zap.Field{
		zap.String("flowfile", ff.ID.String()),
		zap.String("relationship", string(res.Outcome)),
		zap.Int("bytes", len(ff.Content)),
	}

	if res.Outcome == heartbeat.Success {
		h.logger.Debug("Transferred flow file", fields...)
		return
	}

	if h.failure == nil || len(ff.Content) == 0 {
		h.logger.Warn("Dropped flow file", fields...)
		return
	}
	if err := exporting.Write(ctx, h.failure, ff.Content); err != nil {
		h.logger.Error("Failed to transfer flow file", append(fields, zap.Error(err))...)
		return
	}
	h.logger.Debug("Transferred flow file", fields...)
}

func (h *harness) close() {
	_ = h.logger.Sync()
}
