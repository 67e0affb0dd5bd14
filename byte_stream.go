package combine

import "fmt"

// ByteStream reads bytes from a byte slice.  Ranges are sub-slices of
// the data with their capacity capped, so appending to one can't
// write over the input that follows it.
type ByteStream struct {
	data    []byte
	pos     int
	partial bool
}

func NewByteStream(data []byte) *ByteStream {
	return &ByteStream{data: data}
}

// NewPartialByteStream creates a stream that may still receive more
// data through Extend
func NewPartialByteStream(data []byte) *ByteStream {
	return &ByteStream{data: data, partial: true}
}

func (in *ByteStream) Uncons() (byte, error) {
	if in.pos >= len(in.data) {
		return 0, ErrEndOfInput
	}
	b := in.data[in.pos]
	in.pos++
	return b, nil
}

func (in *ByteStream) UnconsRange(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid range length %d", n)
	}
	end := in.pos + n
	if end > len(in.data) {
		return nil, ErrEndOfInput
	}
	r := in.data[in.pos:end:end]
	in.pos = end
	return r, nil
}

func (in *ByteStream) Checkpoint() Checkpoint { return Checkpoint{Offset: in.pos} }

func (in *ByteStream) Reset(cp Checkpoint) { in.pos = cp.Offset }

func (in *ByteStream) Distance(cp Checkpoint) int { return in.pos - cp.Offset }

func (in *ByteStream) IsPartial() bool { return in.partial }

func (in *ByteStream) Position() int { return in.pos }

// SetPartial marks whether more data may still arrive
func (in *ByteStream) SetPartial(partial bool) { in.partial = partial }

// Extend appends more data to the stream without moving the cursor
func (in *ByteStream) Extend(more []byte) { in.data = append(in.data, more...) }

// Remaining returns the data that wasn't consumed yet
func (in *ByteStream) Remaining() []byte { return in.data[in.pos:] }

// Location returns the line and column of the cursor
func (in *ByteStream) Location() Location {
	return newPosIndex(in.data).LocationAt(in.pos)
}
