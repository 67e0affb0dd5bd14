package combine

import (
	"errors"
	"fmt"
)

// RangeParser matches a literal range
type RangeParser[T any, R Input] struct {
	literal R
}

// Range reads len(literal) units and succeeds if they are equal to
// literal.  A mismatch leaves the cursor untouched.
func Range[T any, R Input](literal R) RangeParser[T, R] {
	return RangeParser[T, R]{literal: literal}
}

func (p RangeParser[T, R]) ParseMode(_ Mode, input Stream[T, R], _ *NoState) Result[R] {
	before := input.Checkpoint()
	position := input.Position()
	mismatch := &Error{
		Kind:     ErrRangeMismatch,
		Expected: fmt.Sprintf("%q", string(p.literal)),
		Position: position,
	}

	other, err := input.UnconsRange(len(p.literal))
	if errors.Is(err, ErrCharBoundary) {
		// the span under the cursor can't be equal to a literal
		// that ends on a character boundary
		mismatch.Err = err
		return EmptyErrOf[R](mismatch)
	}
	if err != nil {
		return wrapStreamError[R](input, err)
	}
	if string(other) != string(p.literal) {
		input.Reset(before)
		return EmptyErrOf[R](mismatch)
	}
	return okOf(len(other) > 0, other)
}

// TakeParser reads a fixed amount of units
type TakeParser[T any, R Input] struct {
	n int
}

// Take reads exactly n units.  It keeps no resumption state: replaying
// a fixed length read from the same position yields the same range.
func Take[T any, R Input](n int) TakeParser[T, R] {
	return TakeParser[T, R]{n: n}
}

func (p TakeParser[T, R]) ParseMode(_ Mode, input Stream[T, R], _ *NoState) Result[R] {
	return unconsRange(input, p.n)
}

// TakeWhileParser reads zero or more items matching a predicate
type TakeWhileParser[T any, R Input] struct {
	pred func(T) bool
}

// TakeWhile reads the longest, possibly empty, prefix whose items
// satisfy pred.
func TakeWhile[T any, R Input](pred func(T) bool) TakeWhileParser[T, R] {
	return TakeWhileParser[T, R]{pred: pred}
}

func (p TakeWhileParser[T, R]) ParseMode(mode Mode, input Stream[T, R], distance *int) Result[R] {
	scan := func(input Stream[T, R]) Result[R] { return unconsWhile(input, p.pred) }
	return parsePartialRange("take_while", mode, input, distance, scan, scan)
}

// TakeWhile1Parser reads one or more items matching a predicate
type TakeWhile1Parser[T any, R Input] struct {
	pred func(T) bool
}

// TakeWhile1 is TakeWhile that fails without consuming when the very
// first item doesn't satisfy pred.
func TakeWhile1[T any, R Input](pred func(T) bool) TakeWhile1Parser[T, R] {
	return TakeWhile1Parser[T, R]{pred: pred}
}

func (p TakeWhile1Parser[T, R]) ParseMode(mode Mode, input Stream[T, R], distance *int) Result[R] {
	return parsePartialRange(
		"take_while1",
		mode,
		input,
		distance,
		func(input Stream[T, R]) Result[R] { return unconsWhile1(input, p.pred) },
		// the first item matched before the suspension
		func(input Stream[T, R]) Result[R] { return unconsWhile(input, p.pred) },
	)
}
