package config

// Check validates a RunConfig before any solver runs, in the fixed
// order below:
//
//  1. AllocationType is within its defined values.
//  2. AllocationResolution >= 1.
//  3. For every enabled item, in configuration order:
//     lower < upper; 0 <= assigned_factor <= 1; resonances lie inside
//     [lower, upper], are ordered by A ascending and pairwise
//     non-overlapping.
//  4. The lowest-indexed enabled item is item 0.
//  5. The sum of AssignedFactor over enabled items is <= 1.1.
//
// ErrAlgorithmOutOfRange is reserved: this RunConfig carries a single
// fixed pipeline with no separate algorithm selector to validate, but
// the sentinel is kept so a future selector can reuse the same
// ErrorKind contract without breaking callers that switch on it.
func Check(cfg *RunConfig) error {
	if cfg.AllocationType < Proportional || cfg.AllocationType >= lastAllocationType {
		return runError(ErrTypeOutOfRange)
	}

	if cfg.AllocationResolution < 1 {
		return runError(ErrResolutionTooLow)
	}

	firstEnabled := -1
	var factorSum float32
	for i, item := range cfg.ItemsConfig {
		if !item.Enabled {
			continue
		}

		if firstEnabled < 0 {
			firstEnabled = i
		}

		if item.LowerBound >= item.UpperBound {
			return itemError(ErrBoundsInverted, i)
		}

		if item.AssignedFactor < 0 || item.AssignedFactor > 1 {
			return itemError(ErrFactorOutOfRange, i)
		}

		factorSum += item.AssignedFactor

		if err := checkResonances(item); err != nil {
			return itemError(err, i)
		}
	}

	if firstEnabled > 0 {
		return runError(ErrFirstEnabledNotZero)
	}

	if factorSum > 1.1 {
		return runError(ErrFactorSumExceeds11)
	}

	return nil
}

// checkResonances verifies that item.Resonances lie inside
// [item.LowerBound, item.UpperBound], are sorted by A ascending, and
// are pairwise non-overlapping (B[i] <= A[i+1]).
func checkResonances(item ItemConfig) error {
	prevB := item.LowerBound
	for _, res := range item.Resonances {
		if res.A > res.B || res.A < item.LowerBound || res.B > item.UpperBound {
			return ErrResonanceOutOfBand
		}
		if res.A < prevB {
			return ErrResonanceOutOfBand
		}
		prevB = res.B
	}

	return nil
}
