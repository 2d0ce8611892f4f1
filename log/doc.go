// Package log defines the minimal, injectable logging surface used
// throughout gridtied. No component imports a concrete logging
// backend directly; every component that needs to report a
// diagnostic (a validation failure, a refiner time-out, a fallback to
// the DP guess) accepts a Logger and falls back to NopLogger when the
// caller supplies none.
package log
