package solve

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBracket indicates the supplied interval does not bracket a sign change.
	ErrNoBracket = errors.New("solve: interval does not bracket a root")

	// ErrMaxIterations indicates the iteration bound was reached before the
	// residual norm met the tolerance.
	ErrMaxIterations = errors.New("solve: iteration limit exceeded before convergence")

	// ErrSingularJacobian indicates the numeric Jacobian could not be inverted.
	ErrSingularJacobian = errors.New("solve: singular jacobian")
)

// ConvergenceError carries the diagnostic state of a failed root-find.
type ConvergenceError struct {
	Iterations int
	Residual   float64
	Wrapped    error
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%v (after %d iterations, residual %.3e)", e.Wrapped, e.Iterations, e.Residual)
}

func (e *ConvergenceError) Unwrap() error {
	return e.Wrapped
}
