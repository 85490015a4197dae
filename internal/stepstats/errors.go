package stepstats

import (
	"fmt"

	"github.com/blaisecz/step-tracker/internal/domain"
)

// ErrInvalidArgument reports a caller contract violation. It wraps
// domain.ErrInvalidInput.
var ErrInvalidArgument = fmt.Errorf("%w: stepstats argument", domain.ErrInvalidInput)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
