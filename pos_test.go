package combine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationAt(t *testing.T) {
	tests := []struct {
		input    string
		cursor   int
		expected Location
	}{
		{"", 0, Location{Line: 1, Column: 1}},
		{"ab\ncd", 1, Location{Line: 1, Column: 2, Cursor: 1}},
		{"ab\ncd", 3, Location{Line: 2, Column: 1, Cursor: 3}},
		{"ab\ncd", 4, Location{Line: 2, Column: 2, Cursor: 4}},
		{"ñandú\nx", 6, Location{Line: 1, Column: 5, Cursor: 6}},
		{"ab", 99, Location{Line: 1, Column: 3, Cursor: 2}},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, LocationAt(test.input, test.cursor), "%q @ %d", test.input, test.cursor)
	}

	assert.Equal(t, "2:2", LocationAt([]byte("ab\ncd"), 4).String())
}

func TestLocationAdvance(t *testing.T) {
	input := []byte("ab\nñandú\nx")
	for cut := 0; cut <= len(input); cut++ {
		start := Location{Line: 1, Column: 1}
		got := start.advance(input[:cut]).advance(input[cut:])
		assert.Equal(t, LocationAt(input, len(input)), got, "cut at %d", cut)
	}
}
