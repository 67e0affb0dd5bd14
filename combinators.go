package combine

import "fmt"

// SatisfyParser reads a single item matching a predicate
type SatisfyParser[T any, R Input] struct {
	pred     func(T) bool
	expected string
}

// Satisfy reads one item and succeeds if pred accepts it.  A rejected
// item is left under the cursor.
func Satisfy[T any, R Input](pred func(T) bool) SatisfyParser[T, R] {
	return SatisfyParser[T, R]{pred: pred}
}

// Item reads one item equal to x
func Item[T comparable, R Input](x T) SatisfyParser[T, R] {
	return SatisfyParser[T, R]{
		pred:     func(t T) bool { return t == x },
		expected: describeItem(x),
	}
}

// describeItem quotes characters and strings, anything else is
// printed as is
func describeItem(x any) string {
	switch x.(type) {
	case rune, byte, string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func (p SatisfyParser[T, R]) ParseMode(_ Mode, input Stream[T, R], _ *NoState) Result[T] {
	before := input.Checkpoint()
	item, err := input.Uncons()
	if err != nil {
		return wrapStreamError[T](input, err)
	}
	if !p.pred(item) {
		input.Reset(before)
		return EmptyErrOf[T](unexpectedAt(input.Position(), p.expected))
	}
	return ConsumedOkOf(item)
}

// SkipState is the resumption state of the skip parsers
type SkipState[S any] struct {
	// Matched is set once the wrapped parser succeeded at least
	// once
	Matched bool
	Inner   S
}

// SkipManyParser runs a parser until it fails and drops its output
type SkipManyParser[T any, R Input, O, S any] struct {
	inner Parser[T, R, O, S]
	min1  bool
}

// SkipMany runs p zero or more times.  It backtracks on the Empty
// failure that ends the repetition; a Consumed failure is handed back
// to the caller with the state needed to resume.
func SkipMany[T any, R Input, O, S any](p Parser[T, R, O, S]) SkipManyParser[T, R, O, S] {
	return SkipManyParser[T, R, O, S]{inner: p}
}

// SkipMany1 is SkipMany that requires at least one match
func SkipMany1[T any, R Input, O, S any](p Parser[T, R, O, S]) SkipManyParser[T, R, O, S] {
	return SkipManyParser[T, R, O, S]{inner: p, min1: true}
}

func (p SkipManyParser[T, R, O, S]) ParseMode(mode Mode, input Stream[T, R], state *SkipState[S]) Result[NoState] {
	if mode == First {
		*state = SkipState[S]{}
	}

	var (
		consumed bool
		last     *Error
	)
	for {
		result := p.inner.ParseMode(mode, input, &state.Inner)
		mode = First
		if result.Status == ConsumedErr {
			return ConsumedErrOf[NoState](result.Err)
		}
		if result.Status == EmptyErr {
			last = result.Err
			break
		}

		state.Matched = true
		state.Inner = *new(S)
		if result.Status == EmptyOk {
			// nothing moved, another round would match forever
			break
		}
		consumed = true
	}

	if p.min1 && !state.Matched {
		return EmptyErrOf[NoState](last)
	}
	*state = SkipState[S]{}
	return okOf(consumed, NoState{})
}

// Pair holds the outputs of Seq
type Pair[A, B any] struct {
	Left  A
	Right B
}

// SeqState is the resumption state of Seq
type SeqState[A, SA, SB any] struct {
	// Step is 1 once the left parser is done and Left holds its
	// output
	Step   int
	Left   A
	LeftS  SA
	RightS SB
}

// SeqParser runs two parsers one after the other
type SeqParser[T any, R Input, A, SA, B, SB any] struct {
	left  Parser[T, R, A, SA]
	right Parser[T, R, B, SB]
}

// Seq runs a and then b, failing if either fails.  A failure of b
// after a consumed input is reported as consumed.
func Seq[T any, R Input, A, SA, B, SB any](a Parser[T, R, A, SA], b Parser[T, R, B, SB]) SeqParser[T, R, A, SA, B, SB] {
	return SeqParser[T, R, A, SA, B, SB]{left: a, right: b}
}

func (p SeqParser[T, R, A, SA, B, SB]) ParseMode(
	mode Mode,
	input Stream[T, R],
	state *SeqState[A, SA, SB],
) Result[Pair[A, B]] {
	if mode == First {
		*state = SeqState[A, SA, SB]{}
	}

	consumed := false
	if state.Step == 0 {
		left := p.left.ParseMode(mode, input, &state.LeftS)
		if !left.IsOk() {
			return errAs[Pair[A, B]](left)
		}
		consumed = left.Status == ConsumedOk
		state.Step = 1
		state.Left = left.Value
		mode = First
	}

	right := p.right.ParseMode(mode, input, &state.RightS)
	switch right.Status {
	case EmptyErr:
		if consumed {
			return ConsumedErrOf[Pair[A, B]](right.Err)
		}
		return errAs[Pair[A, B]](right)
	case ConsumedErr:
		return errAs[Pair[A, B]](right)
	}

	out := Pair[A, B]{Left: state.Left, Right: right.Value}
	*state = SeqState[A, SA, SB]{}
	return okOf(consumed || right.Status == ConsumedOk, out)
}

// MapParser transforms the output of another parser
type MapParser[T any, R Input, O, S, P any] struct {
	inner Parser[T, R, O, S]
	fn    func(O) P
}

// Map runs p and passes its output through fn
func Map[T any, R Input, O, S, P any](p Parser[T, R, O, S], fn func(O) P) MapParser[T, R, O, S, P] {
	return MapParser[T, R, O, S, P]{inner: p, fn: fn}
}

func (p MapParser[T, R, O, S, P]) ParseMode(mode Mode, input Stream[T, R], state *S) Result[P] {
	return MapResult(p.inner.ParseMode(mode, input, state), p.fn)
}

// Terminated runs p and then end, keeping the output of p
func Terminated[T any, R Input, O, S, E, SE any](
	p Parser[T, R, O, S],
	end Parser[T, R, E, SE],
) MapParser[T, R, Pair[O, E], SeqState[O, S, SE], O] {
	return Map[T, R, Pair[O, E], SeqState[O, S, SE], O](
		Seq[T, R, O, S, E, SE](p, end),
		func(v Pair[O, E]) O { return v.Left },
	)
}

// Preceded runs skip and then p, keeping the output of p
func Preceded[T any, R Input, K, SK, O, S any](
	skip Parser[T, R, K, SK],
	p Parser[T, R, O, S],
) MapParser[T, R, Pair[K, O], SeqState[K, SK, S], O] {
	return Map[T, R, Pair[K, O], SeqState[K, SK, S], O](
		Seq[T, R, K, SK, O, S](skip, p),
		func(v Pair[K, O]) O { return v.Right },
	)
}
