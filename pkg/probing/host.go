package probing

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/process"
)

// Host reads metrics from the running host and the current process.
type Host struct {
	proc  *process.Process
	times func(context.Context) (cpu.TimesStat, error)

	mu       sync.Mutex
	prevCPU  *cpu.TimesStat
	lastLoad float64
}

// NewHost creates a Host bound to the current process.
func NewHost() (*Host, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("failed to open current process: %w", err)
	}
	return &Host{proc: p, times: readCPUTimes}, nil
}

func readCPUTimes(ctx context.Context) (cpu.TimesStat, error) {
	ts, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return cpu.TimesStat{}, fmt.Errorf("failed to read cpu times: %w", err)
	}
	if len(ts) == 0 {
		return cpu.TimesStat{}, fmt.Errorf("cpu times: %w", ErrUnavailable)
	}
	return ts[0], nil
}

// SystemCPULoad returns system-wide CPU usage since the previous call.
// The first call reports the average since boot. When no clock tick has
// passed since the previous call, the last value is repeated.
func (h *Host) SystemCPULoad(ctx context.Context) (float64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	cur, err := h.times(ctx)
	if err != nil {
		return 0, err
	}

	prev := cpu.TimesStat{}
	if h.prevCPU != nil {
		prev = *h.prevCPU
	}
	load, ok := cpuLoad(prev, cur)
	if !ok {
		if h.prevCPU == nil {
			h.prevCPU = &cur
		}
		return h.lastLoad, nil
	}
	h.prevCPU = &cur
	h.lastLoad = load
	return load, nil
}

func busyTotal(t cpu.TimesStat) (busy, total float64) {
	total = t.User + t.Nice + t.System + t.Idle + t.Iowait + t.Irq + t.Softirq + t.Steal
	return total - t.Idle - t.Iowait, total
}

// cpuLoad returns the busy fraction between two readings, false when the
// window holds no ticks.
func cpuLoad(prev, cur cpu.TimesStat) (float64, bool) {
	b1, t1 := busyTotal(prev)
	b2, t2 := busyTotal(cur)
	if t2 <= t1 {
		return 0, false
	}
	load := (b2 - b1) / (t2 - t1)
	return min(max(load, 0), 1), true
}

// PhysicalMemory returns total and free RAM from one reading.
func (h *Host) PhysicalMemory(ctx context.Context) (Usage, error) {
	m, err := readMemory(ctx)
	return Usage{Total: m.ramTotal, Free: m.ramFree}, err
}

// SwapMemory returns total and free swap from one reading.
func (h *Host) SwapMemory(ctx context.Context) (Usage, error) {
	m, err := readMemory(ctx)
	return Usage{Total: m.swapTotal, Free: m.swapFree}, err
}

func (h *Host) TotalPhysicalMemory(ctx context.Context) (uint64, error) {
	m, err := readMemory(ctx)
	return m.ramTotal, err
}

func (h *Host) FreePhysicalMemory(ctx context.Context) (uint64, error) {
	m, err := readMemory(ctx)
	return m.ramFree, err
}

func (h *Host) TotalSwap(ctx context.Context) (uint64, error) {
	m, err := readMemory(ctx)
	return m.swapTotal, err
}

func (h *Host) FreeSwap(ctx context.Context) (uint64, error) {
	m, err := readMemory(ctx)
	return m.swapFree, err
}

// HeapUsed returns bytes of allocated heap objects.
func (h *Host) HeapUsed(context.Context) (uint64, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapAlloc, nil
}

// NonHeapUsed returns bytes the runtime holds outside the heap:
// goroutine stacks plus allocator and GC metadata.
func (h *Host) NonHeapUsed(context.Context) (uint64, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.StackInuse + ms.MSpanInuse + ms.MCacheInuse + ms.BuckHashSys + ms.GCSys + ms.OtherSys, nil
}

// CommittedVirtualMemory returns the virtual memory size of this process.
func (h *Host) CommittedVirtualMemory(ctx context.Context) (uint64, error) {
	info, err := h.proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read process memory: %w", err)
	}
	return info.VMS, nil
}

// ThreadCount returns the OS threads owned by this process.
func (h *Host) ThreadCount(ctx context.Context) (int64, error) {
	n, err := h.proc.NumThreadsWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read thread count: %w", err)
	}
	return int64(n), nil
}

// LoadedClassCount returns the number of modules linked into the binary,
// main module included.
func (h *Host) LoadedClassCount(context.Context) (int64, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return 0, fmt.Errorf("build info: %w", ErrUnavailable)
	}
	return int64(len(info.Deps) + 1), nil
}
