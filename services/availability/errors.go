package availability

import (
	"errors"
	"fmt"
)

// InvalidRangeError reports working hours that do not form a same-day
// interval. It is a provider configuration problem and is returned as-is.
type InvalidRangeError struct {
	Start  string
	End    string
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid working hours %q-%q: %s", e.Start, e.End, e.Reason)
}

var ErrInvalidGranularity = errors.New("slot granularity must be a positive number of minutes")
