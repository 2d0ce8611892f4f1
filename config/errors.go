// errors.go — sentinel errors for the config package.
//
// Error policy (matching the rest of gridtied):
//   - Only sentinel variables are exposed at package level.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Check wraps a sentinel with ValidationError to attach the
//     offending item index where one exists; errors.Is still resolves
//     through the wrap.
package config

import (
	"errors"
	"fmt"
)

// Validation sentinels, one per distinct way a RunConfig can fail Check.
var (
	// ErrTypeOutOfRange indicates AllocationType is outside its defined values.
	ErrTypeOutOfRange = errors.New("config: allocation type out of range")

	// ErrAlgorithmOutOfRange indicates an algorithm selector is outside its defined values.
	ErrAlgorithmOutOfRange = errors.New("config: algorithm selector out of range")

	// ErrResolutionTooLow indicates AllocationResolution < 1.
	ErrResolutionTooLow = errors.New("config: allocation resolution must be >= 1")

	// ErrBoundsInverted indicates an enabled item has LowerBound >= UpperBound.
	ErrBoundsInverted = errors.New("config: lower bound must be < upper bound")

	// ErrFactorOutOfRange indicates an enabled item's AssignedFactor is outside [0,1].
	ErrFactorOutOfRange = errors.New("config: assigned factor out of [0,1]")

	// ErrResonanceOutOfBand indicates a malformed or out-of-band resonance interval.
	ErrResonanceOutOfBand = errors.New("config: resonance interval out of band")

	// ErrFirstEnabledNotZero indicates the lowest-indexed enabled item is not item 0.
	ErrFirstEnabledNotZero = errors.New("config: lowest-indexed enabled item must be index 0")

	// ErrFactorSumExceeds11 indicates the sum of enabled AssignedFactor exceeds 1.1.
	ErrFactorSumExceeds11 = errors.New("config: sum of assigned factors exceeds 1.1")
)

// ValidationError wraps a sentinel with the offending item's config
// index, when the failure is item-scoped. ItemIndex is -1 for
// run-level failures (type/algorithm/resolution/factor-sum).
type ValidationError struct {
	Err       error
	ItemIndex int
}

func (e *ValidationError) Error() string {
	if e.ItemIndex < 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("%s (item index %d)", e.Err, e.ItemIndex)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func runError(err error) error {
	return &ValidationError{Err: err, ItemIndex: -1}
}

func itemError(err error, index int) error {
	return &ValidationError{Err: err, ItemIndex: index}
}
