//go:build linux

package probing

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"
)

// readMemory uses sysinfo(2) so free memory means MemFree, not MemAvailable.
func readMemory(context.Context) (memory, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return memory{}, fmt.Errorf("failed to read sysinfo: %w", err)
	}

	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}

	return memory{
		ramTotal:  uint64(info.Totalram) * unit,
		ramFree:   uint64(info.Freeram) * unit,
		swapTotal: uint64(info.Totalswap) * unit,
		swapFree:  uint64(info.Freeswap) * unit,
	}, nil
}
