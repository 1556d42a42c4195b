package stproc

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyWindow reports a window of length zero, for which the
	// frame geometry is undefined.
	ErrEmptyWindow = errors.New("window must not be empty")

	// ErrNonPositiveHop reports a resolved hop size <= 0.
	ErrNonPositiveHop = errors.New("hop size must be > 0")

	// ErrShortFrame reports a synthesis frame shorter than the window.
	ErrShortFrame = errors.New("frame shorter than window")
)

func validateSignalLen(n int) error {
	if n < 0 {
		return fmt.Errorf("signal length must be >= 0: %d", n)
	}
	return nil
}
