package gen

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every *ConfigurationError.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports a generation request that cannot be honoured:
// an unusable interface configuration or a type with no unit-checked
// counterpart when quantity variants are requested. Nothing is emitted.
type ConfigurationError struct {
	// Interface is the interface name, if known.
	Interface string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	if e.Interface == "" {
		return "configuration error: " + e.Reason
	}

	return fmt.Sprintf("configuration error for interface %q: %s", e.Interface, e.Reason)
}

// Is makes errors.Is(err, ErrConfiguration) hold.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configErrorf(iface, format string, args ...any) error {
	return &ConfigurationError{Interface: iface, Reason: fmt.Sprintf(format, args...)}
}
