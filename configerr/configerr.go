// Package configerr holds the configuration error shared by every generator.
//
// All invalid-parameter failures wrap ErrConfiguration, so callers can test
// for them with errors.Is regardless of which package raised them.
package configerr

import (
	"errors"
	"fmt"
)

// ErrConfiguration is returned when a generator is called with parameters it
// cannot honour: an empty time grid, incompatible vector lengths, too few
// spline points, a missing amplitude function, and so on.
var ErrConfiguration = errors.New("configuration error")

// Errorf returns an error wrapping ErrConfiguration with a formatted message.
func Errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
