package window

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHop reports a hop specification that is neither a
	// fraction in (0,1) nor a positive sample count.
	ErrInvalidHop = errors.New("hop must be a fraction in (0,1) or a positive sample count")

	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}
	return nil
}

func validateTukey(size int, alpha float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	if alpha < 0 || alpha > 1 {
		return fmt.Errorf("tukey alpha must be in [0,1]: %f", alpha)
	}
	return nil
}

func validateGauss(size int, alpha float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	if alpha <= 0 {
		return fmt.Errorf("gauss alpha must be > 0: %f", alpha)
	}
	return nil
}
