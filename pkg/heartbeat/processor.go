// Package heartbeat builds JSON snapshots of host and runtime metrics.
//
// A Processor is triggered by an external scheduler. Each Trigger samples
// the metrics selected by the request toggles, writes one JSON object to
// the request sink and reports SUCCESS or FAILURE. No error or panic
// escapes Trigger.
package heartbeat

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"Heartbeat/pkg/exporting"
	"Heartbeat/pkg/probing"
)

// Request is the input of one invocation.
type Request struct {
	Unit    Unit
	Toggles []Toggle
	Sink    exporting.Sink
}

// Result carries the routed flow file. Content is attached on both
// outcomes once the snapshot has been encoded.
type Result struct {
	Outcome  Outcome
	FlowFile *FlowFile
	Err      error
}

type Processor struct {
	sampler *Sampler
	logger  *zap.Logger
	newID   func() uuid.UUID
}

// Option configures a Processor.
type Option func(*Processor)

// WithClock sets the clock used for the snapshot timestamp.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		p.sampler.now = now
	}
}

// WithIDGenerator sets the flow-file id source.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(p *Processor) {
		p.newID = newID
	}
}

func NewProcessor(probe probing.RuntimeMetrics, logger *zap.Logger, opts ...Option) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Processor{
		sampler: NewSampler(probe, logger),
		logger:  logger,
		newID:   uuid.New,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Trigger runs one invocation: sample, encode, write, route.
func (p *Processor) Trigger(ctx context.Context, req Request) (res *Result) {
	ff := newFlowFile(p.newID(), req.Unit)
	res = &Result{FlowFile: ff}

	defer func() {
		if r := recover(); r != nil {
			p.fail(res, fmt.Errorf("panic: %v", r))
		}
	}()

	snap := p.sampler.Sample(ctx, req.Unit, req.Toggles)
	payload, err := snap.MarshalJSON()
	if err != nil {
		p.fail(res, fmt.Errorf("failed to encode snapshot: %w", err))
		return res
	}
	ff.Content = payload
	ff.Attributes[AttrFields] = strconv.Itoa(snap.Len() - 1)

	if err := exporting.Write(ctx, req.Sink, payload); err != nil {
		p.fail(res, err)
		return res
	}

	res.Outcome = Success
	return res
}

func (p *Processor) fail(res *Result, err error) {
	res.Outcome = Failure
	res.Err = err
	res.FlowFile.Attributes[AttrError] = err.Error()
	p.logger.Error("Error in Object Data",
		zap.String("flowfile", res.FlowFile.ID.String()),
		zap.Error(err))
}
