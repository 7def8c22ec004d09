package heartbeat

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"Heartbeat/pkg/probing"
)

// TimestampField is always the first field of a snapshot.
const TimestampField = "lastTimeDataReceived"

// Sampler builds snapshots from a RuntimeMetrics probe.
type Sampler struct {
	probe  probing.RuntimeMetrics
	logger *zap.Logger
	now    func() time.Time
}

func NewSampler(probe probing.RuntimeMetrics, logger *zap.Logger) *Sampler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sampler{probe: probe, logger: logger, now: time.Now}
}

// Sample reads one value per enabled toggle, in toggle order, under the
// toggle's own name. Unknown names and failed reads are logged and skipped.
func (s *Sampler) Sample(ctx context.Context, unit Unit, toggles []Toggle) *Snapshot {
	snap := NewSnapshot()
	snap.Set(TimestampField, FormatTimestamp(s.now()))

	divisor := unit.Divisor()
	for _, t := range toggles {
		if !t.Enabled() {
			continue
		}

		c := Classify(t.Name)
		if c == CategoryUnknown {
			s.logger.Error("Parameter is not supported",
				zap.String("toggle", t.Name),
				zap.String("value", t.Value))
			continue
		}

		v, err := s.measure(ctx, c, divisor)
		if err != nil {
			s.logger.Error("Failed to read metric",
				zap.String("toggle", t.Name),
				zap.Stringer("category", c),
				zap.Error(err))
			continue
		}
		snap.Set(t.Name, v)
	}

	return snap
}

func (s *Sampler) measure(ctx context.Context, c Category, divisor float64) (any, error) {
	switch c {
	case CategoryCPU:
		load, err := s.probe.SystemCPULoad(ctx)
		if err != nil {
			return nil, err
		}
		return load * 100, nil

	case CategoryMemory:
		if mr, ok := s.probe.(probing.MemoryReader); ok {
			u, err := mr.PhysicalMemory(ctx)
			return usage(u, err, divisor)
		}
		return usedBytes(ctx, divisor, s.probe.TotalPhysicalMemory, s.probe.FreePhysicalMemory)

	case CategorySwap:
		if mr, ok := s.probe.(probing.MemoryReader); ok {
			u, err := mr.SwapMemory(ctx)
			return usage(u, err, divisor)
		}
		return usedBytes(ctx, divisor, s.probe.TotalSwap, s.probe.FreeSwap)

	case CategoryHeap:
		return scaled(ctx, divisor, s.probe.HeapUsed)

	case CategoryStack:
		return scaled(ctx, divisor, s.probe.NonHeapUsed)

	case CategoryVirtual:
		return scaled(ctx, divisor, s.probe.CommittedVirtualMemory)

	case CategoryThread:
		return s.probe.ThreadCount(ctx)

	case CategoryClass:
		return s.probe.LoadedClassCount(ctx)
	}
	return nil, fmt.Errorf("no probe for category %s", c)
}

func usage(u probing.Usage, err error, divisor float64) (any, error) {
	if err != nil {
		return nil, err
	}
	return (float64(u.Total) - float64(u.Free)) / divisor, nil
}

type byteReader func(context.Context) (uint64, error)

func usedBytes(ctx context.Context, divisor float64, total, free byteReader) (any, error) {
	t, err := total(ctx)
	if err != nil {
		return nil, err
	}
	f, err := free(ctx)
	if err != nil {
		return nil, err
	}
	return (float64(t) - float64(f)) / divisor, nil
}

func scaled(ctx context.Context, divisor float64, read byteReader) (any, error) {
	v, err := read(ctx)
	if err != nil {
		return nil, err
	}
	return float64(v) / divisor, nil
}
