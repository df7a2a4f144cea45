package plain

import "errors"

// ErrInterrupted is returned when the user presses ctrl-c during a raw key read.
var ErrInterrupted = errors.New("interrupted")
