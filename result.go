package combine

import "fmt"

// Status tells whether a parser succeeded and whether it moved the
// cursor relative to where the call began.  Both halves matter:
// alternatives may only be tried after an Empty failure.
type Status uint8

const (
	EmptyOk Status = iota
	ConsumedOk
	EmptyErr
	ConsumedErr
)

func (s Status) String() string {
	switch s {
	case EmptyOk:
		return "EmptyOk"
	case ConsumedOk:
		return "ConsumedOk"
	case EmptyErr:
		return "EmptyErr"
	case ConsumedErr:
		return "ConsumedErr"
	default:
		panic(fmt.Sprintf("unknown status: %d", s))
	}
}

func (s Status) IsOk() bool { return s == EmptyOk || s == ConsumedOk }

func (s Status) IsConsumed() bool { return s == ConsumedOk || s == ConsumedErr }

// Result is what every parser returns.  Value is only meaningful when
// the status is one of the Ok variants and Err only when it is one of
// the Err variants.
type Result[O any] struct {
	Status Status
	Value  O
	Err    *Error
}

func EmptyOkOf[O any](v O) Result[O] { return Result[O]{Status: EmptyOk, Value: v} }

func ConsumedOkOf[O any](v O) Result[O] { return Result[O]{Status: ConsumedOk, Value: v} }

func EmptyErrOf[O any](err *Error) Result[O] { return Result[O]{Status: EmptyErr, Err: err} }

func ConsumedErrOf[O any](err *Error) Result[O] { return Result[O]{Status: ConsumedErr, Err: err} }

// okOf tags v as consumed when consumed is true
func okOf[O any](consumed bool, v O) Result[O] {
	if consumed {
		return ConsumedOkOf(v)
	}
	return EmptyOkOf(v)
}

func (r Result[O]) IsOk() bool { return r.Status.IsOk() }

func (r Result[O]) IsConsumed() bool { return r.Status.IsConsumed() }

// MapResult applies f to the value of a successful result and keeps
// the status untouched
func MapResult[O, P any](r Result[O], f func(O) P) Result[P] {
	if r.IsOk() {
		return Result[P]{Status: r.Status, Value: f(r.Value)}
	}
	return Result[P]{Status: r.Status, Err: r.Err}
}

// errAs converts a failed result into a result of another type
func errAs[P, O any](r Result[O]) Result[P] {
	if r.IsOk() {
		panic(fmt.Sprintf("errAs called on successful result: %s", r.Status))
	}
	return Result[P]{Status: r.Status, Err: r.Err}
}

func (r Result[O]) String() string {
	if r.IsOk() {
		return fmt.Sprintf("%s(%v)", r.Status, r.Value)
	}
	return fmt.Sprintf("%s(%s)", r.Status, r.Err)
}
