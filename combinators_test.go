package combine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSatisfy(t *testing.T) {
	t.Run("reads a matching item", func(t *testing.T) {
		v, rest, err := parseText[rune, NoState](Satisfy[rune, string](isLetter), "ñ1")
		require.NoError(t, err)
		assert.Equal(t, 'ñ', v)
		assert.Equal(t, "1", rest)
	})

	t.Run("rejected items stay under the cursor", func(t *testing.T) {
		input := NewTextStream("1")
		result := Satisfy[rune, string](isLetter).ParseMode(First, input, &NoState{})
		assert.Equal(t, EmptyErr, result.Status)
		assert.Equal(t, 0, input.Position())
	})

	t.Run("item", func(t *testing.T) {
		_, _, err := parseText[rune, NoState](Item[rune, string](';'), ",")
		require.Error(t, err)
		assert.Equal(t, `unexpected input, expected ';' @ 0`, err.Error())
	})

	t.Run("byte items", func(t *testing.T) {
		input := NewByteStream([]byte(","))
		_, err := Parse[byte, []byte, byte, NoState](Item[byte, []byte](';'), input)
		require.Error(t, err)
		assert.Equal(t, `unexpected input, expected ';' @ 0`, err.Error())
	})

	t.Run("describing items", func(t *testing.T) {
		assert.Equal(t, `'a'`, describeItem('a'))
		assert.Equal(t, `"ab"`, describeItem("ab"))
		assert.Equal(t, `42`, describeItem(42))
		assert.Equal(t, `{1 2}`, describeItem(struct{ A, B int }{1, 2}))
	})
}

func TestSkipMany(t *testing.T) {
	p := SkipMany[rune, string, rune, NoState](Satisfy[rune, string](isDigit))

	t.Run("zero matches is an empty success", func(t *testing.T) {
		input := NewTextStream("abc")
		var state SkipState[NoState]
		result := p.ParseMode(First, input, &state)
		assert.Equal(t, EmptyOk, result.Status)
	})

	t.Run("skips every match", func(t *testing.T) {
		_, rest, err := parseText[NoState, SkipState[NoState]](p, "123abc")
		require.NoError(t, err)
		assert.Equal(t, "abc", rest)
	})

	t.Run("skip many one needs a match", func(t *testing.T) {
		_, rest, err := parseText[NoState, SkipState[NoState]](letters(), "123")
		assert.ErrorIs(t, err, ErrUnexpected)
		assert.Equal(t, "123", rest)
	})

	t.Run("suspends where the input ran out", func(t *testing.T) {
		input := NewPartialTextStream("12")
		var state SkipState[NoState]
		result := p.ParseMode(First, input, &state)
		assert.Equal(t, ConsumedErr, result.Status)
		assert.Equal(t, 2, input.Position())
		assert.True(t, state.Matched)
	})
}

func TestSeq(t *testing.T) {
	type state = SeqState[string, int, NoState]
	p := Seq[rune, string, string, int, string, NoState](
		TakeWhile1[rune, string](isLetter),
		Range[rune, string]("!"),
	)

	t.Run("pairs both outputs", func(t *testing.T) {
		v, rest, err := parseText[Pair[string, string], state](p, "hey!?")
		require.NoError(t, err)
		assert.Equal(t, Pair[string, string]{Left: "hey", Right: "!"}, v)
		assert.Equal(t, "?", rest)
	})

	t.Run("failure after the left side consumed", func(t *testing.T) {
		input := NewTextStream("hey?")
		var s state
		result := p.ParseMode(First, input, &s)
		assert.Equal(t, ConsumedErr, result.Status)
		assert.ErrorIs(t, result.Err, ErrRangeMismatch)
	})

	t.Run("left failure is empty", func(t *testing.T) {
		input := NewTextStream("?")
		var s state
		result := p.ParseMode(First, input, &s)
		assert.Equal(t, EmptyErr, result.Status)
	})

	t.Run("terminated and preceded keep one side", func(t *testing.T) {
		term := Terminated[rune, string, string, int, string, NoState](takeUntil(";"), Range[rune, string](";"))
		v, rest, err := parseText[string, SeqState[string, int, NoState]](term, "a=1;b=2")
		require.NoError(t, err)
		assert.Equal(t, "a=1", v)
		assert.Equal(t, "b=2", rest)

		pre := Preceded[rune, string, string, NoState, string, int](Range[rune, string]("#"), TakeWhile[rune, string](isDigit))
		v, rest, err = parseText[string, SeqState[string, NoState, int]](pre, "#42!")
		require.NoError(t, err)
		assert.Equal(t, "42", v)
		assert.Equal(t, "!", rest)
	})

	t.Run("chunking", func(t *testing.T) {
		checkChunking[Pair[string, string], state](t, p, "hey!?", "hey?", "!")
	})
}

func TestMap(t *testing.T) {
	p := Map[rune, string, string, int, int](TakeWhile[rune, string](isDigit), func(s string) int { return len(s) })
	v, rest, err := parseText[int, int](p, "1234x")
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t, "x", rest)
}
