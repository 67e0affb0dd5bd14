package combine

import (
	"errors"
	"strings"
	"unicode"
)

func isDigit(r rune) bool { return unicode.IsDigit(r) }

func isLetter(r rune) bool { return unicode.IsLetter(r) }

// parseText runs p from scratch over a complete text stream and
// returns what's left of the input along with the result
func parseText[O, S any](p Parser[rune, string, O, S], s string) (O, string, error) {
	input := NewTextStream(s)
	v, err := Parse[rune, string, O, S](p, input)
	return v, input.Remaining(), err
}

// parseChunks feeds chunks to p the way an incremental caller would:
// every chunk but the last one is parsed as a partial stream, a
// suspension keeps the state and drops whatever the parser consumed,
// and the last chunk gets a complete stream.
func parseChunks[O, S any](p Parser[rune, string, O, S], chunks ...string) (O, string, error) {
	var (
		state S
		mode  = First
		data  string
	)
	for i, chunk := range chunks {
		data += chunk
		last := i == len(chunks)-1

		input := NewTextStream(data)
		input.SetPartial(!last)

		result := p.ParseMode(mode, input, &state)
		if !last && result.Status == ConsumedErr && errors.Is(result.Err, ErrEndOfInput) {
			data = input.Remaining()
			mode = Resume
			continue
		}

		v, err := finish(result)
		return v, input.Remaining() + strings.Join(chunks[i+1:], ""), err
	}
	panic("parseChunks needs at least one chunk")
}

// splits returns every way of cutting s in two at a rune boundary
func splits(s string) [][2]string {
	var out [][2]string
	for i := range s {
		out = append(out, [2]string{s[:i], s[i:]})
	}
	return append(out, [2]string{s, ""})
}

// catchFault runs fn and returns the ResumeFault it panicked with
func catchFault(fn func()) (fault ResumeFault, ok bool) {
	defer func() {
		fault, ok = recover().(ResumeFault)
	}()
	fn()
	return
}

func letters() SkipManyParser[rune, string, rune, NoState] {
	return SkipMany1[rune, string, rune, NoState](Satisfy[rune, string](isLetter))
}

type lettersState = RecognizeState[SkipState[NoState]]
