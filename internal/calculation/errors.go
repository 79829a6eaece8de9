package calculation

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput is returned before any simulation when the request is
	// missing identifiers, has no debts, or carries malformed debt fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoDebtsInScope marks a scope that filtered down to zero debts.
	ErrNoDebtsInScope = errors.New("no debts in scope")
	// ErrNonConvergent marks a variant that hit the month cap.
	ErrNonConvergent = errors.New("simulation did not converge")
	// ErrArithmeticInvariant marks a balance that went negative beyond
	// rounding tolerance. It is logged and clamped, never returned.
	ErrArithmeticInvariant = errors.New("arithmetic invariant violated")
)

// ValidationError collects every problem found in a request.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return ErrInvalidInput.Error() + ": " + strings.Join(e.Problems, "; ")
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func (e *ValidationError) add(problem string) {
	e.Problems = append(e.Problems, problem)
}

func (e *ValidationError) orNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}
