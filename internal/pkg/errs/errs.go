// Package errs wraps cockroachdb/errors so the rest of the module never
// imports it directly. Usecases attach a sentinel with Mark and callers
// branch with errors.Is; the wrapped cause keeps its stack for logs.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark ties err to a sentinel without hiding the original cause.
// Both the cause and the sentinel stay reachable through errors.Is.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: err, mark: markErr}
}

type marked struct {
	cause error
	mark  error
}

func (m *marked) Error() string { return m.cause.Error() }

func (m *marked) Unwrap() []error { return []error{m.cause, m.mark} }
