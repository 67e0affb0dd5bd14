package combine

import (
	"errors"
	"fmt"
)

var (
	// ErrEndOfInput is reported by streams that can't deliver the
	// items a read asked for.  On a partial stream it means "not
	// yet", on a complete stream it is final.
	ErrEndOfInput = errors.New("end of input")

	// ErrCharBoundary is reported by text streams when a range read
	// would split a multi-byte character
	ErrCharBoundary = errors.New("range does not end on a character boundary")

	// ErrRangeMismatch is reported when a literal range doesn't match
	// the input under the cursor
	ErrRangeMismatch = errors.New("range mismatch")

	// ErrUnexpected is reported when an item doesn't satisfy a
	// predicate
	ErrUnexpected = errors.New("unexpected input")

	// ErrTargetNotFound is reported by TakeUntilRange when the input
	// ends before the target shows up
	ErrTargetNotFound = errors.New("target not found")
)

// Error is the error carried by failed results.  Kind is one of the
// sentinel errors declared in this package and Err, when present, is
// the stream error that caused the failure.
type Error struct {
	Kind     error
	Expected string
	Position int
	Err      error
}

// Error returns the human readable representation of a parsing error
func (e *Error) Error() string {
	message := e.Kind.Error()
	if e.Expected != "" {
		message = fmt.Sprintf("%s, expected %s", message, e.Expected)
	}
	if e.Err != nil && !errors.Is(e.Kind, e.Err) {
		message = fmt.Sprintf("%s (%s)", message, e.Err)
	}
	return fmt.Sprintf("%s @ %d", message, e.Position)
}

// Unwrap exposes both the kind and the cause to errors.Is
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ResumeFault is the value a resumed parser panics with when it can't
// replay the prefix it validated on a previous attempt.  It means the
// caller didn't extend the stream with the same prefix, so it is
// never returned through a Result.
type ResumeFault struct {
	Parser   string
	Distance int
	Err      error
}

func (f ResumeFault) Error() string {
	return fmt.Sprintf("%s: can't restore %d units of input: %s", f.Parser, f.Distance, f.Err)
}

// fastForward skips the n units a previous attempt already validated
func fastForward[T any, R Input](input Stream[T, R], n int, parser string) {
	if _, err := input.UnconsRange(n); err != nil {
		panic(ResumeFault{Parser: parser, Distance: n, Err: err})
	}
}

func unexpectedAt(position int, expected string) *Error {
	return &Error{Kind: ErrUnexpected, Expected: expected, Position: position}
}

// streamErrorKind maps a raw stream error to the kind it is reported
// under
func streamErrorKind(err error) error {
	for _, kind := range []error{ErrEndOfInput, ErrCharBoundary} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return ErrUnexpected
}
