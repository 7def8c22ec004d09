//go:build !linux

package probing

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"
)

func readMemory(ctx context.Context) (memory, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return memory{}, fmt.Errorf("failed to read virtual memory: %w", err)
	}
	sw, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return memory{}, fmt.Errorf("failed to read swap memory: %w", err)
	}

	return memory{
		ramTotal:  vm.Total,
		ramFree:   vm.Free,
		swapTotal: sw.Total,
		swapFree:  sw.Free,
	}, nil
}
