package combine

import (
	"errors"
	"fmt"
)

// TakeUntilRangeParser scans for a target range
type TakeUntilRangeParser[T any, R Input] struct {
	target R
}

// TakeUntilRange reads everything up to the first occurrence of
// target.  The target itself is not consumed.  It fails if the input
// ends before target is found.
func TakeUntilRange[T any, R Input](target R) TakeUntilRangeParser[T, R] {
	return TakeUntilRangeParser[T, R]{target: target}
}

// ParseMode scans forward one item at a time.  toConsume is the
// distance from the start of the call to the earliest position where
// the target could still begin, as found by a suspended attempt.
func (p TakeUntilRangeParser[T, R]) ParseMode(mode Mode, input Stream[T, R], toConsume *int) Result[R] {
	size := len(p.target)
	before := input.Checkpoint()

	if mode == First {
		*toConsume = 0
	}
	// skip what previous attempts already ruled out
	fastForward(input, *toConsume, "take_until_range")

	var (
		firstErr      error
		firstDistance int
	)
	for {
		lookAhead := input.Checkpoint()

		xs, err := input.UnconsRange(size)
		if err == nil && string(xs) == string(p.target) {
			distance := input.Distance(before) - size
			input.Reset(before)
			consumed, err := input.UnconsRange(distance)
			if err != nil {
				panic(fmt.Sprintf("take_until_range: can't read back %d units: %s", distance, err))
			}
			*toConsume = 0
			return okOf(distance > 0, consumed)
		}

		// Only the first shortfall is remembered.  When a later
		// attempt comes back with more input it has to start
		// matching where the target could have begun the first
		// time we couldn't see all of it, otherwise a target
		// straddling two chunks would be missed.  A span that
		// splits a character can't be the target and doesn't
		// count as a shortfall.
		if err != nil && !errors.Is(err, ErrCharBoundary) && firstErr == nil {
			firstErr = err
			firstDistance = input.Distance(before)
		}

		input.Reset(lookAhead)
		if _, err := input.Uncons(); err != nil {
			if firstErr == nil {
				firstErr = err
				firstDistance = input.Distance(before)
			}
			input.Reset(before)
			*toConsume = firstDistance
			return p.notFound(input, firstErr)
		}
	}
}

func (p TakeUntilRangeParser[T, R]) notFound(input Stream[T, R], err error) Result[R] {
	result := wrapStreamError[R](input, err)
	result.Err.Expected = fmt.Sprintf("%q", string(p.target))
	if !input.IsPartial() {
		result.Err.Kind = ErrTargetNotFound
	}
	return result
}
