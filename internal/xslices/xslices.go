package xslices

import "golang.org/x/exp/slices"

// SortByKeyDesc sorts items in place by key(item) descending. The
// order of items with equal keys is not defined: slices.SortFunc is
// not stable, and no secondary key is applied.
func SortByKeyDesc[T any](items []T, key func(T) float64) {
	slices.SortFunc(items, func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka > kb:
			return -1
		case ka < kb:
			return 1
		default:
			return 0
		}
	})
}

// IndexFunc returns the index of the first element satisfying pred, or
// -1 if none does. Thin wrapper kept for symmetry with the package's
// other helpers; used by dpgrid's back-trace to find the first finite
// cell scanning from the high end of the last column.
func IndexFunc[T any](items []T, pred func(T) bool) int {
	return slices.IndexFunc(items, pred)
}
