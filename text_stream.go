package combine

import (
	"fmt"
	"unicode/utf8"
)

// TextStream reads runes from a string.  Ranges are substrings of the
// data, so they never copy and stay valid for as long as the caller
// keeps them.
type TextStream struct {
	data    string
	pos     int
	partial bool
}

func NewTextStream(data string) *TextStream {
	return &TextStream{data: data}
}

// NewPartialTextStream creates a stream that may still receive more
// data through Extend
func NewPartialTextStream(data string) *TextStream {
	return &TextStream{data: data, partial: true}
}

func (in *TextStream) Uncons() (rune, error) {
	if in.pos >= len(in.data) {
		return 0, ErrEndOfInput
	}
	if r := in.data[in.pos]; r < utf8.RuneSelf {
		in.pos++
		return rune(r), nil
	}
	rest := in.data[in.pos:]
	if in.partial && !utf8.FullRuneInString(rest) {
		return 0, ErrEndOfInput
	}
	r, size := utf8.DecodeRuneInString(rest)
	in.pos += size
	return r, nil
}

func (in *TextStream) UnconsRange(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("invalid range length %d", n)
	}
	end := in.pos + n
	if end > len(in.data) {
		return "", ErrEndOfInput
	}
	if end < len(in.data) && !utf8.RuneStart(in.data[end]) {
		return "", ErrCharBoundary
	}
	if in.partial && end == len(in.data) && endsInPartialRune(in.data[in.pos:end]) {
		return "", ErrEndOfInput
	}
	s := in.data[in.pos:end]
	in.pos = end
	return s, nil
}

func (in *TextStream) Checkpoint() Checkpoint { return Checkpoint{Offset: in.pos} }

func (in *TextStream) Reset(cp Checkpoint) { in.pos = cp.Offset }

func (in *TextStream) Distance(cp Checkpoint) int { return in.pos - cp.Offset }

func (in *TextStream) IsPartial() bool { return in.partial }

func (in *TextStream) Position() int { return in.pos }

// SetPartial marks whether more data may still arrive
func (in *TextStream) SetPartial(partial bool) { in.partial = partial }

// Extend appends more data to the stream without moving the cursor.
// Ranges handed out before the call keep pointing at the old data.
func (in *TextStream) Extend(more string) { in.data += more }

// Remaining returns the data that wasn't consumed yet
func (in *TextStream) Remaining() string { return in.data[in.pos:] }

// Location returns the line and column of the cursor
func (in *TextStream) Location() Location {
	return newPosIndex([]byte(in.data)).LocationAt(in.pos)
}

// endsInPartialRune tells whether s is cut in the middle of its last
// character
func endsInPartialRune(s string) bool {
	for i := len(s) - 1; i >= 0 && i >= len(s)-utf8.UTFMax; i-- {
		if utf8.RuneStart(s[i]) {
			return !utf8.FullRuneInString(s[i:])
		}
	}
	return false
}
