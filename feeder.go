package combine

import (
	"errors"
	"fmt"
	"io"

	"github.com/tliron/commonlog"
)

var (
	// ErrNeedMore is returned by Feeder.Next when the parser
	// suspended waiting for more input
	ErrNeedMore = errors.New("need more input")

	// ErrBufferFull is returned by Feeder.Write when the unparsed
	// input would grow past feeder.max_buffer
	ErrBufferFull = errors.New("feeder buffer is full")

	// ErrNoProgress is returned when a parser succeeds without
	// consuming anything, which would make Each loop forever
	ErrNoProgress = errors.New("parser succeeded without consuming input")
)

var feederLog = commonlog.GetLogger("combine.feeder")

// Feeder runs a parser over input that arrives in chunks.  It keeps
// the unparsed input, the resumption state and the mode the next call
// has to run in.  The buffer is only ever re-sliced and appended to,
// so ranges handed out by earlier calls never see their bytes change.
//
// A Feeder is not safe for concurrent use.
type Feeder[O, S any] struct {
	parser Parser[byte, []byte, O, S]
	state  S
	mode   Mode

	buf    []byte
	offset int
	loc    Location
	closed bool

	chunkSize int
	maxBuffer int
}

func NewFeeder[O, S any](p Parser[byte, []byte, O, S], cfg *Config) *Feeder[O, S] {
	return &Feeder[O, S]{
		parser:    p,
		loc:       Location{Line: 1, Column: 1},
		chunkSize: cfg.GetInt("feeder.chunk_size"),
		maxBuffer: cfg.GetInt("feeder.max_buffer"),
	}
}

// Write appends a chunk of input
func (f *Feeder[O, S]) Write(chunk []byte) error {
	if f.closed {
		return fmt.Errorf("write after close")
	}
	if len(f.buf)+len(chunk) > f.maxBuffer {
		return ErrBufferFull
	}
	f.buf = append(f.buf, chunk...)
	return nil
}

// Close tells the feeder no more input will arrive.  Parsers still
// waiting for input get one last attempt on a complete stream.
func (f *Feeder[O, S]) Close() {
	f.closed = true
}

// Rest returns the input that wasn't parsed yet
func (f *Feeder[O, S]) Rest() []byte {
	return f.buf
}

// Offset returns how many bytes were consumed since the feeder was
// created
func (f *Feeder[O, S]) Offset() int {
	return f.offset
}

// Location returns the line and column of position, an absolute
// offset like the ones carried by the errors Next returns.  Positions
// before Offset fall back to the location of Offset since that input is
// gone.
func (f *Feeder[O, S]) Location(position int) Location {
	n := min(max(position-f.offset, 0), len(f.buf))
	return f.loc.advance(f.buf[:n])
}

// Next parses one value out of the buffered input.  It returns
// ErrNeedMore when the parser can't decide before seeing more input
// and io.EOF once the feeder is closed and the buffer is empty.
func (f *Feeder[O, S]) Next() (O, error) {
	var zero O
	if len(f.buf) == 0 {
		if f.closed {
			return zero, io.EOF
		}
		return zero, ErrNeedMore
	}

	input := NewByteStream(f.buf)
	input.SetPartial(!f.closed)
	start := input.Checkpoint()
	base := f.offset

	if f.mode == Resume {
		feederLog.Debugf("resuming at offset %d with %d bytes buffered", base, len(f.buf))
	}
	result := f.parser.ParseMode(f.mode, input, &f.state)
	f.discard(input.Distance(start))

	switch {
	case result.IsOk():
		f.restart()
		if f.offset == base {
			return zero, ErrNoProgress
		}
		return result.Value, nil
	case result.Status == ConsumedErr && !f.closed && errors.Is(result.Err, ErrEndOfInput):
		f.mode = Resume
		feederLog.Debugf("suspended at offset %d with %d bytes buffered", f.offset, len(f.buf))
		return zero, ErrNeedMore
	default:
		f.restart()
		result.Err.Position += base
		return zero, result.Err
	}
}

// Each reads r chunk by chunk and calls fn with every value parsed out
// of it.  It stops at the first error from the parser, the reader or
// fn.
func (f *Feeder[O, S]) Each(r io.Reader, fn func(O) error) error {
	chunk := make([]byte, f.chunkSize)
	for {
		v, err := f.Next()
		switch {
		case err == nil:
			if err := fn(v); err != nil {
				return err
			}
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, ErrNeedMore):
			n, rerr := r.Read(chunk)
			if n > 0 {
				if err := f.Write(chunk[:n]); err != nil {
					return err
				}
			}
			if errors.Is(rerr, io.EOF) {
				f.Close()
			} else if rerr != nil {
				return rerr
			}
		default:
			return err
		}
	}
}

func (f *Feeder[O, S]) discard(n int) {
	f.loc = f.loc.advance(f.buf[:n])
	f.buf = f.buf[n:]
	f.offset += n
}

func (f *Feeder[O, S]) restart() {
	f.mode = First
	f.state = *new(S)
}
