package schedule

import "errors"

// ErrInvalidInput marks a request the caller can fix: bad date, clock time,
// weekday code or similar. The wrapped message says which.
var ErrInvalidInput = errors.New("invalid input")
