package combine

import "errors"

// Input is the set of storage types ranges can borrow from.  Lengths
// and distances are measured in its units (bytes) even when the items
// a stream yields span more than one unit.
type Input interface {
	~string | ~[]byte
}

// Checkpoint is a saved cursor position.  Only the stream that
// produced it knows how to interpret it.
type Checkpoint struct {
	Offset int
}

// Stream is the cursor the range parsers read from.
type Stream[T any, R Input] interface {
	// Uncons returns the item under the cursor and advances past
	// it.
	Uncons() (T, error)

	// UnconsRange returns the next n units as a borrowed range and
	// advances past them.  It doesn't advance at all when fewer
	// than n units are available.
	UnconsRange(n int) (R, error)

	// Checkpoint saves the cursor position
	Checkpoint() Checkpoint

	// Reset rewinds the cursor to a checkpoint taken on this
	// stream
	Reset(cp Checkpoint)

	// Distance returns how many units were consumed since cp
	Distance(cp Checkpoint) int

	// IsPartial tells whether more input may arrive after the
	// current end
	IsPartial() bool

	// Position returns the absolute offset of the cursor, used for
	// error reporting
	Position() int
}

// wrapStreamError turns a raw stream error into a failed result.  On
// a partial stream the failure is tagged as consumed so callers know
// to suspend and try again with more input.
func wrapStreamError[O any, T any, R Input](input Stream[T, R], err error) Result[O] {
	e := &Error{Kind: streamErrorKind(err), Position: input.Position(), Err: err}
	if input.IsPartial() {
		return ConsumedErrOf[O](e)
	}
	return EmptyErrOf[O](e)
}

func endOfInput[T any, R Input](input Stream[T, R]) *Error {
	return &Error{Kind: ErrEndOfInput, Position: input.Position()}
}

// atEOF tells whether the cursor is at the end of the available input
func atEOF[T any, R Input](input Stream[T, R]) bool {
	before := input.Checkpoint()
	_, err := input.Uncons()
	input.Reset(before)
	return errors.Is(err, ErrEndOfInput)
}

// unconsRange reads exactly n units
func unconsRange[T any, R Input](input Stream[T, R], n int) Result[R] {
	r, err := input.UnconsRange(n)
	if err != nil {
		return wrapStreamError[R](input, err)
	}
	return okOf(n > 0, r)
}

// unconsWhile reads the longest prefix whose items satisfy pred.  A
// partial stream that runs out while matching fails with a consumed
// end of input, leaving the cursor after the matched prefix.
func unconsWhile[T any, R Input](input Stream[T, R], pred func(T) bool) Result[R] {
	before := input.Checkpoint()
	for {
		cp := input.Checkpoint()
		item, err := input.Uncons()
		if err != nil && !errors.Is(err, ErrEndOfInput) {
			input.Reset(before)
			return wrapStreamError[R](input, err)
		}
		if err != nil || !pred(item) {
			input.Reset(cp)
			break
		}
	}

	n := input.Distance(before)
	input.Reset(before)
	r, err := input.UnconsRange(n)
	if err != nil {
		return wrapStreamError[R](input, err)
	}
	if input.IsPartial() && atEOF(input) {
		return ConsumedErrOf[R](endOfInput(input))
	}
	return okOf(n > 0, r)
}

// unconsWhile1 is unconsWhile that fails when nothing matched
func unconsWhile1[T any, R Input](input Stream[T, R], pred func(T) bool) Result[R] {
	result := unconsWhile(input, pred)
	if result.Status == EmptyOk {
		return EmptyErrOf[R](unexpectedAt(input.Position(), ""))
	}
	return result
}
