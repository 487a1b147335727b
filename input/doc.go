// Package input reads seed sets in the "x, y" per-line text format.
//
// Blank lines are skipped; every other line must hold two integers
// separated by a comma. Failures name the offending line through
// *LineError, which unwraps to ErrMalformedPoint or the strconv error.
package input
