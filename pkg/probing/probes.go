// Package probing reads host and runtime resource metrics.
package probing

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when a metric cannot be read on this host.
var ErrUnavailable = errors.New("metric unavailable")

// RuntimeMetrics is the capability the heartbeat sampler reads from.
// Memory values are in bytes. SystemCPULoad is a fraction in [0, 1].
type RuntimeMetrics interface {
	SystemCPULoad(ctx context.Context) (float64, error)
	TotalPhysicalMemory(ctx context.Context) (uint64, error)
	FreePhysicalMemory(ctx context.Context) (uint64, error)
	TotalSwap(ctx context.Context) (uint64, error)
	FreeSwap(ctx context.Context) (uint64, error)
	HeapUsed(ctx context.Context) (uint64, error)
	NonHeapUsed(ctx context.Context) (uint64, error)
	CommittedVirtualMemory(ctx context.Context) (uint64, error)
	ThreadCount(ctx context.Context) (int64, error)
	LoadedClassCount(ctx context.Context) (int64, error)
}

// Usage is total and free bytes taken from one reading.
type Usage struct {
	Total uint64
	Free  uint64
}

// MemoryReader is implemented by probes that read total and free memory
// together. The sampler prefers it so used memory never mixes two readings.
type MemoryReader interface {
	PhysicalMemory(ctx context.Context) (Usage, error)
	SwapMemory(ctx context.Context) (Usage, error)
}

// memory holds one read of physical memory and swap.
type memory struct {
	ramTotal  uint64
	ramFree   uint64
	swapTotal uint64
	swapFree  uint64
}
