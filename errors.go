package marshalgen

import (
	"errors"
	"fmt"
)

// ErrOutOfMemory is the one recoverable error kind a generation call can
// report: an allocation failure at some fallible emission point. Every
// writer call that exceeds its budget returns it.
var ErrOutOfMemory = errors.New("allocation failure")

// UnsupportedTagError is thrown when the dispatcher or a generator
// encounters a type tag outside the closed set {basic, array, struct,
// dict-entry}. It signals a contract violation by the caller, not a
// recoverable condition -- callers that want to turn it into a process
// abort are expected to do so themselves.
type UnsupportedTagError struct {
	Tag       string
	Signature string
}

// Error returns the human readable representation of an unsupported-tag
// error, in a "<message> @ <location>" form.
func (e *UnsupportedTagError) Error() string {
	return fmt.Sprintf("unsupported type tag %s @ %s", e.Tag, e.Signature)
}

func isUnsupportedTag(err error) bool {
	_, ok := err.(*UnsupportedTagError)
	return ok
}

// EmitError wraps an allocation failure with the name of the emission step
// that surfaced it, so a caller debugging a generation failure knows which
// append/open/close call ran out of budget.
type EmitError struct {
	Step string
	Err  error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("%s: %s", e.Step, e.Err)
}

func (e *EmitError) Unwrap() error {
	return e.Err
}

func wrapEmit(step string, err error) error {
	return &EmitError{Step: step, Err: err}
}
