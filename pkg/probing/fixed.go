package probing

import "context"

// Fixed returns preset values. Failures maps a method name, such as
// "ThreadCount", to the error that method returns.
type Fixed struct {
	CPULoad       float64
	PhysicalTotal uint64
	PhysicalFree  uint64
	SwapTotal     uint64
	SwapFree      uint64
	Heap          uint64
	NonHeap       uint64
	Virtual       uint64
	Threads       int64
	Classes       int64

	Failures map[string]error
}

// Demo is a Fixed probe with plausible values, used by the --fake flag.
func Demo() *Fixed {
	return &Fixed{
		CPULoad:       0.125,
		PhysicalTotal: 16 << 30,
		PhysicalFree:  6 << 30,
		SwapTotal:     4 << 30,
		SwapFree:      3 << 30,
		Heap:          48 << 20,
		NonHeap:       12 << 20,
		Virtual:       1 << 30,
		Threads:       12,
		Classes:       24,
	}
}

func (f *Fixed) fail(name string) error {
	if f.Failures == nil {
		return nil
	}
	return f.Failures[name]
}

func (f *Fixed) SystemCPULoad(context.Context) (float64, error) {
	return f.CPULoad, f.fail("SystemCPULoad")
}

func (f *Fixed) TotalPhysicalMemory(context.Context) (uint64, error) {
	return f.PhysicalTotal, f.fail("TotalPhysicalMemory")
}

func (f *Fixed) FreePhysicalMemory(context.Context) (uint64, error) {
	return f.PhysicalFree, f.fail("FreePhysicalMemory")
}

func (f *Fixed) TotalSwap(context.Context) (uint64, error) {
	return f.SwapTotal, f.fail("TotalSwap")
}

func (f *Fixed) FreeSwap(context.Context) (uint64, error) {
	return f.SwapFree, f.fail("FreeSwap")
}

func (f *Fixed) HeapUsed(context.Context) (uint64, error) {
	return f.Heap, f.fail("HeapUsed")
}

func (f *Fixed) NonHeapUsed(context.Context) (uint64, error) {
	return f.NonHeap, f.fail("NonHeapUsed")
}

func (f *Fixed) CommittedVirtualMemory(context.Context) (uint64, error) {
	return f.Virtual, f.fail("CommittedVirtualMemory")
}

func (f *Fixed) ThreadCount(context.Context) (int64, error) {
	return f.Threads, f.fail("ThreadCount")
}

func (f *Fixed) LoadedClassCount(context.Context) (int64, error) {
	return f.Classes, f.fail("LoadedClassCount")
}
