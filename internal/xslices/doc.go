// Package xslices adapts the handful of golang.org/x/exp/slices calls
// gridtied needs (a stable-enough descending sort over a small slice,
// and an ordered linear scan) so smallload and dpgrid do not each
// import golang.org/x/exp/slices directly.
package xslices
