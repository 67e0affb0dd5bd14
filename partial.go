package combine

// parsePartialRange drives the predicate parsers across suspensions.
// The scan closures only need to move the cursor to the end of the
// match: once the total length is known the cursor goes back to where
// the call began and the whole span is read again as one range.
// distance holds how far a suspended scan got and name is what a
// failed fast-forward reports.
func parsePartialRange[T any, R Input](
	name string,
	mode Mode,
	input Stream[T, R],
	distance *int,
	first, resume func(Stream[T, R]) Result[R],
) Result[R] {
	before := input.Checkpoint()

	if !input.IsPartial() {
		result := first(input)
		if result.IsOk() {
			*distance = 0
		}
		return result
	}

	if mode == First || *distance == 0 {
		result := first(input)
		switch result.Status {
		case ConsumedErr:
			*distance = input.Distance(before)
			input.Reset(before)
		case EmptyOk, ConsumedOk:
			*distance = 0
		}
		return result
	}

	fastForward(input, *distance, name)

	result := resume(input)
	switch result.Status {
	case EmptyErr:
		input.Reset(before)
		return result
	case ConsumedErr:
		*distance = input.Distance(before)
		input.Reset(before)
		return result
	}

	total := input.Distance(before)
	input.Reset(before)
	result = unconsRange(input, total)
	if result.IsOk() {
		*distance = 0
	}
	return result
}
