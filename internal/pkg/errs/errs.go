// Package errs narrows the cockroachdb/errors surface to the three
// operations the rest of the codebase needs: creating sentinels,
// wrapping with context, and marking an error with a sentinel so that
// errors.Is matches it across layers.
package errs

import (
	"errors"

	cr "github.com/cockroachdb/errors"
)

// New creates a sentinel error carrying a stack trace.
func New(msg string) error {
	return cr.New(msg)
}

// Wrap annotates err with msg. Returns nil for a nil err so callers
// can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches sentinel to err without losing the original cause.
// The sentinel is joined into the chain so the standard library's
// errors.Is matches it, not only cockroachdb's. A nil err degrades to
// the bare sentinel.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(errors.Join(err, sentinel), sentinel)
}
