// Package config defines the immutable per-run problem description for
// a gridtied allocation: the per-machine ItemConfig (capacity interval,
// forbidden resonance zones, proportional-allocation weight) and the
// RunConfig that selects the allocation policy and tunes the DP/refiner
// stages. Check validates a RunConfig before any solver runs.
//
// Configs are plain values, not a process-wide singleton: every
// component that needs one receives it as an explicit argument. A
// write-once diagnostic accessor (Remember/Last) is kept only so log
// lines can be enriched with the active config's shape; it is never
// read on the allocation hot path.
//
// Errors:
//
//	ErrTypeOutOfRange       - AllocationType outside its defined values.
//	ErrAlgorithmOutOfRange  - an algorithm selector outside its defined values.
//	ErrResolutionTooLow     - AllocationResolution < 1.
//	ErrBoundsInverted       - an enabled item has LowerBound >= UpperBound.
//	ErrFactorOutOfRange     - an enabled item's AssignedFactor is outside [0,1].
//	ErrResonanceOutOfBand   - a resonance interval is malformed or outside [lower,upper].
//	ErrFirstEnabledNotZero  - the lowest-indexed enabled item is not item 0.
//	ErrFactorSumExceeds11   - the sum of enabled AssignedFactor exceeds 1.1.
package config
