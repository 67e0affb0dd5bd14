package combine

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Location is a cursor position along with the line and column it
// falls on.  Lines and columns are 1-indexed and columns count runes.
type Location struct {
	Line   int
	Column int
	Cursor int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// LocationAt returns the location of cursor within input
func LocationAt[R Input](input R, cursor int) Location {
	return newPosIndex([]byte(input)).LocationAt(cursor)
}

// advance returns the location reached after reading chunk from l.
// Continuation bytes don't move the column, so a character split
// across two chunks is counted once.
func (l Location) advance(chunk []byte) Location {
	for _, b := range chunk {
		switch {
		case b == '\n':
			l.Line++
			l.Column = 1
		case utf8.RuneStart(b):
			l.Column++
		}
	}
	l.Cursor += len(chunk)
	return l
}

// posIndex maps byte offsets to lines and columns
type posIndex struct {
	input []byte

	// lineStart holds byte 0-based offsets of each line start
	lineStart []int
}

func newPosIndex(input []byte) *posIndex {
	// Always include line 1 starting at offset 0.
	lineStart := make([]int, 1, 64)
	lineStart[0] = 0
	for i, b := range input {
		if b == '\n' {
			// next line starts after '\n'
			lineStart = append(lineStart, i+1)
		}
	}
	return &posIndex{input: input, lineStart: lineStart}
}

func (pi *posIndex) LocationAt(cursor int) Location {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(pi.input) {
		cursor = len(pi.input)
	}

	// Find first lineStart > cursor, then step back one.
	lineIdx := sort.Search(len(pi.lineStart), func(i int) bool {
		return pi.lineStart[i] > cursor
	}) - 1
	if lineIdx < 0 {
		lineIdx = 0
	}

	lineStart := pi.lineStart[lineIdx]
	return Location{
		Line:   lineIdx + 1,
		Column: utf8.RuneCount(pi.input[lineStart:cursor]) + 1,
		Cursor: cursor,
	}
}
