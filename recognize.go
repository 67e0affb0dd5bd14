package combine

// RecognizeState is the resumption state of the recognize parsers.
// It owns the state of the wrapped parser.
type RecognizeState[S any] struct {
	// Distance is how much input the wrapped parser consumed before
	// it suspended
	Distance int
	Inner    S
}

// WithValue pairs the range a parser consumed with the value it
// produced
type WithValue[R Input, O any] struct {
	Range R
	Value O
}

// RecognizeWithValueParser captures the input consumed by another
// parser along with its output
type RecognizeWithValueParser[T any, R Input, O, S any] struct {
	inner Parser[T, R, O, S]
}

// RecognizeWithValue runs p and returns the exact range it consumed
// together with the value it produced.  p doesn't need to produce
// ranges itself.
func RecognizeWithValue[T any, R Input, O, S any](p Parser[T, R, O, S]) RecognizeWithValueParser[T, R, O, S] {
	return RecognizeWithValueParser[T, R, O, S]{inner: p}
}

func (p RecognizeWithValueParser[T, R, O, S]) ParseMode(
	mode Mode,
	input Stream[T, R],
	state *RecognizeState[S],
) Result[WithValue[R, O]] {
	before := input.Checkpoint()
	if mode != First {
		fastForward(input, state.Distance, "recognize")
	}

	inner := p.inner.ParseMode(mode, input, &state.Inner)
	switch inner.Status {
	case EmptyErr:
		input.Reset(before)
		return errAs[WithValue[R, O]](inner)
	case ConsumedErr:
		state.Distance = input.Distance(before)
		input.Reset(before)
		return errAs[WithValue[R, O]](inner)
	}

	distance := input.Distance(before)
	input.Reset(before)
	taken := unconsRange(input, distance)
	if !taken.IsOk() {
		return errAs[WithValue[R, O]](taken)
	}
	state.Distance = 0
	return okOf(taken.Status == ConsumedOk, WithValue[R, O]{Range: taken.Value, Value: inner.Value})
}

// RecognizeParser captures the input consumed by another parser
type RecognizeParser[T any, R Input, O, S any] struct {
	inner RecognizeWithValueParser[T, R, O, S]
}

// Recognize runs p and returns the exact range it consumed, throwing
// away whatever value p produced.
func Recognize[T any, R Input, O, S any](p Parser[T, R, O, S]) RecognizeParser[T, R, O, S] {
	return RecognizeParser[T, R, O, S]{inner: RecognizeWithValue[T, R, O, S](p)}
}

func (p RecognizeParser[T, R, O, S]) ParseMode(mode Mode, input Stream[T, R], state *RecognizeState[S]) Result[R] {
	return MapResult(p.inner.ParseMode(mode, input, state), func(v WithValue[R, O]) R {
		return v.Range
	})
}
