package heartbeat

import (
	"errors"
	"fmt"
)

const (
	ToggleYes = "YES"
	ToggleNo  = "NO"

	DefaultToggleValue = ToggleYes
)

var ErrInvalidToggle = errors.New("invalid toggle")

// Toggle is a user-named switch. Its name picks the metric and becomes
// the output field.
type Toggle struct {
	Name  string
	Value string
}

// Enabled is true only for the exact value YES.
func (t Toggle) Enabled() bool { return t.Value == ToggleYes }

// Validate checks the name is non-empty and the value is YES or NO.
func (t Toggle) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidToggle)
	}
	if t.Value != ToggleYes && t.Value != ToggleNo {
		return fmt.Errorf("%w: %s=%q (valid: YES, NO)", ErrInvalidToggle, t.Name, t.Value)
	}
	return nil
}
