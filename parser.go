package combine

// Mode tells a parser whether the state it receives belongs to a
// previous, suspended attempt.
type Mode uint8

const (
	// First ignores whatever the state holds and starts over
	First Mode = iota

	// Resume continues from the state left by a suspended attempt
	Resume
)

func (m Mode) String() string {
	if m == First {
		return "first"
	}
	return "resume"
}

// NoState is the resumption state of parsers that always start over
type NoState struct{}

// Parser is implemented by everything that can be run over a Stream.
// O is the output and S the resumption state.  A zero S is what the
// first attempt receives; the parser mutates it in place when it
// suspends so the next call, on the same stream extended with more
// input, picks up where it stopped.
type Parser[T any, R Input, O, S any] interface {
	ParseMode(mode Mode, input Stream[T, R], state *S) Result[O]
}

// ParserFn is the signature of a parser function.  Converting a
// closure to it is the quickest way to build a one-off Parser.
type ParserFn[T any, R Input, O, S any] func(mode Mode, input Stream[T, R], state *S) Result[O]

func (fn ParserFn[T, R, O, S]) ParseMode(mode Mode, input Stream[T, R], state *S) Result[O] {
	return fn(mode, input, state)
}

// Parse runs p from scratch over input
func Parse[T any, R Input, O, S any](p Parser[T, R, O, S], input Stream[T, R]) (O, error) {
	var state S
	return finish(p.ParseMode(First, input, &state))
}

// ParseWithState runs p over input honoring the state left by a
// previous attempt
func ParseWithState[T any, R Input, O, S any](p Parser[T, R, O, S], input Stream[T, R], state *S) (O, error) {
	return finish(p.ParseMode(Resume, input, state))
}

func finish[O any](r Result[O]) (O, error) {
	if r.IsOk() {
		return r.Value, nil
	}
	var zero O
	return zero, r.Err
}
