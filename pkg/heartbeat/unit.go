package heartbeat

import (
	"errors"
	"fmt"
)

// Unit selects the divisor applied to byte-valued metrics.
type Unit string

const (
	KB Unit = "KB"
	MB Unit = "MB"
	GB Unit = "GB"

	DefaultUnit = MB
)

const (
	kilobyte = 1024.0
	megabyte = kilobyte * 1024
	gigabyte = megabyte * 1024
)

var ErrInvalidUnit = errors.New("invalid storage unit")

// Units returns the accepted units in display order.
func Units() []Unit { return []Unit{KB, MB, GB} }

// ParseUnit accepts exactly KB, MB or GB.
func ParseUnit(s string) (Unit, error) {
	switch u := Unit(s); u {
	case KB, MB, GB:
		return u, nil
	}
	return "", fmt.Errorf("%w: %q (valid: KB, MB, GB)", ErrInvalidUnit, s)
}

// Resolve returns u, or DefaultUnit when u is not a known unit.
func (u Unit) Resolve() Unit {
	switch u {
	case KB, MB, GB:
		return u
	}
	return DefaultUnit
}

// Divisor returns the number of bytes in one u. Unknown units use MB.
func (u Unit) Divisor() float64 {
	switch u.Resolve() {
	case KB:
		return kilobyte
	case GB:
		return gigabyte
	}
	return megabyte
}
