package flatjson

import (
	"io"

	"github.com/google/uuid"
)

// defaultStreamBufferSize is the internal buffer size a stream Context
// allocates for itself, grounded on the teacher's bufio.Writer default
// (ion/reader.go's JSONWriter wraps exactly such a buffer).
const defaultStreamBufferSize = 8192

// sinkKind distinguishes the three sink behaviors of spec.md §4.7.
type sinkKind int

const (
	sinkStream sinkKind = iota
	sinkFixed
	sinkGrowable
)

// sink is the flush strategy bound to a Context. flush is called whenever
// the write cursor reaches pflush (a "partial" flush) or once at the end of
// an emission sequence (a "final" flush, partial=false).
type sink interface {
	kind() sinkKind
	flush(ctx *Context, partial bool) error
}

// Context is the single mutable entity of an emission sequence (spec.md
// §3 "Emitter state"). It owns an output buffer, a write cursor, formatting
// options, recursion level, and a sticky error code. It is not safe for
// concurrent use by more than one goroutine; distinct Contexts are
// independent and may run on separate goroutines simultaneously.
type Context struct {
	buf    []byte
	p      int // write cursor: buf[:p] holds buffered-but-not-yet-flushed bytes
	pflush int // flush threshold; crossing it triggers a partial flush
	size   int // current capacity of buf

	total   int64 // bytes already drained to the sink (excludes the still-buffered tail)
	stopped bool  // set once any error is recorded; later writes are dropped, which also avoids indexing past size

	sink sink
	opts Options
	level int
	err   error

	id     uuid.UUID
	digest *digestState // nil unless WithDigest was requested

	scratch     [32]byte               // number-formatting scratch, avoids one allocation per scalar field
	nameScratch [NameLenMax + 8]byte   // bounded "<name>_type" scratch for UnionField
}

func newContext(s sink, buf []byte, opts Options) *Context {
	ctx := &Context{
		buf:  buf,
		size: cap(buf),
		sink: s,
		opts: opts,
		id:   uuid.New(),
	}
	ctx.pflush = reserveThreshold(ctx.size)
	return ctx
}

// reserveThreshold computes pflush from a buffer's capacity: size - Reserve,
// clamped to zero for buffers smaller than Reserve (spec.md invariant 1;
// property test "buffer safety" exercises the clamp with a too-small fixed
// buffer and expects ErrOverflow on the very first emission).
func reserveThreshold(size int) int {
	if size <= Reserve {
		return 0
	}
	return size - Reserve
}

// NewStreamContext returns a Context that buffers internally and drains to
// w each time the internal buffer nears capacity, and once more when a root
// driver completes. Grounded on ion/reader.go's JSONWriter, which
// wraps a bufio.Writer the same way.
func NewStreamContext(w io.Writer, opts Options) *Context {
	buf := make([]byte, 0, defaultStreamBufferSize)
	ctx := newContext(&streamSink{w: w}, buf, opts)
	return ctx
}

// NewFixedContext returns a Context that writes directly into buf (which
// the caller owns, starting at buf[0] and using its capacity) and reports
// ErrOverflow, instead of growing, once the write cursor reaches
// cap(buf)-Reserve.
func NewFixedContext(buf []byte, opts Options) *Context {
	return newContext(&fixedSink{}, buf[:0], opts)
}

// NewGrowableContext returns a Context backed by a buffer the Context
// itself owns and doubles on demand. initialSize is rounded up to at least
// 2*Reserve so the first flush threshold is meaningful.
func NewGrowableContext(initialSize int, opts Options) *Context {
	if initialSize < 2*Reserve {
		initialSize = 2 * Reserve
	}
	buf := make([]byte, 0, initialSize)
	return newContext(&growableSink{}, buf, opts)
}

// ID returns a per-Context correlation identifier, suitable for threading
// through a hosting service's structured logs to tie an emission sequence's
// log lines together.
func (c *Context) ID() uuid.UUID { return c.id }

// Err returns the sticky error recorded for this Context, or nil.
func (c *Context) Err() error { return c.err }

func (c *Context) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
	if err != nil {
		c.stopped = true
	}
}

// Len returns the number of bytes emitted so far: already-flushed bytes
// plus whatever is still buffered.
func (c *Context) Len() int64 { return c.total + int64(c.p) }

// Clear releases any owned buffer and resets the Context to its zero
// emission state. After Clear, the Context must not be reused.
func (c *Context) Clear() {
	c.buf = nil
	c.p, c.pflush, c.size = 0, 0, 0
	c.total = 0
	c.level = 0
	c.err = nil
	c.stopped = false
}

// FinalizeDynamicBuffer emits a trailing newline, performs a final flush,
// and returns the assembled buffer plus its logical length, transferring
// ownership to the caller and resetting the Context. It is only meaningful
// for a growable-sink Context.
func (c *Context) FinalizeDynamicBuffer() ([]byte, int, error) {
	if c.sink.kind() != sinkGrowable {
		return nil, 0, &Error{Code: CodeBadInput}
	}
	c.writeByte('\n')
	if err := c.flushFinal(); err != nil {
		return nil, 0, err
	}
	out := c.buf[:c.p]
	n := c.p
	c.buf = nil
	c.p, c.pflush, c.size = 0, 0, 0
	c.total = 0
	c.level = 0
	c.err = nil
	return out, n, nil
}

// maybeFlush triggers a partial flush exactly when the write cursor has
// reached pflush, matching spec.md invariant 2/3: bounded emissions never
// need to check free space themselves because the previous emission always
// leaves p <= pflush on return (or triggered the flush already).
func (c *Context) maybeFlush() {
	if c.stopped {
		return
	}
	if c.p >= c.pflush {
		if err := c.sink.flush(c, true); err != nil {
			c.setErr(err)
		}
	}
}

func (c *Context) flushFinal() error {
	if c.stopped && c.err != nil {
		// still attempt a final drain so partial output is visible to
		// the caller, but do not clear the sticky error.
	}
	return c.sink.flush(c, false)
}

// writeByte appends one byte, flushing first if necessary. It is the
// smallest bounded emission and never itself needs a Reserve check beyond
// the implicit one in maybeFlush.
func (c *Context) writeByte(b byte) {
	c.maybeFlush()
	if c.stopped {
		return
	}
	c.ensureCap(1)
	c.buf = c.buf[:c.p+1]
	c.buf[c.p] = b
	c.p++
	if c.digest != nil {
		c.digest.write(c.buf[c.p-1 : c.p])
	}
}

// writeBounded appends data that is guaranteed not to exceed Reserve bytes
// (punctuation runs, formatted numbers, short identifiers).
func (c *Context) writeBounded(data []byte) {
	c.maybeFlush()
	if c.stopped {
		return
	}
	c.ensureCap(len(data))
	c.buf = c.buf[:c.p+len(data)]
	copy(c.buf[c.p:], data)
	c.p += len(data)
	if c.digest != nil {
		c.digest.write(data)
	}
}

// writeUnbounded appends data of arbitrary length (escaped strings, base64
// payloads, deep indentation runs), chunking and flushing between chunks so
// it never needs more than Reserve bytes of headroom at a time.
func (c *Context) writeUnbounded(data []byte) {
	for len(data) > 0 {
		c.maybeFlush()
		if c.stopped {
			return
		}
		room := c.pflush - c.p
		if room <= 0 {
			room = c.size - c.p
		}
		n := len(data)
		if n > room {
			n = room
		}
		if n <= 0 {
			// sink refused to make room; bail to avoid spinning.
			c.setErr(ErrOverflow)
			return
		}
		c.ensureCap(n)
		c.buf = c.buf[:c.p+n]
		copy(c.buf[c.p:], data[:n])
		c.p += n
		if c.digest != nil {
			c.digest.write(data[:n])
		}
		data = data[n:]
	}
}

// ensureCap grows the backing array for the growable sink so that n more
// bytes fit below c.size; fixed/stream sinks never have their backing array
// grown here (their capacity is fixed at construction time).
func (c *Context) ensureCap(n int) {
	if c.p+n <= c.size {
		return
	}
	if c.sink.kind() != sinkGrowable {
		// fixed/stream sinks: truncate the write silently, maybeFlush
		// already set ErrOverflow via the sink's flush implementation
		// on the path that got us here with no room.
		return
	}
	newSize := c.size
	if newSize == 0 {
		newSize = 2 * Reserve
	}
	for newSize < c.p+n {
		newSize *= 2
	}
	nb := make([]byte, c.p, newSize)
	copy(nb, c.buf[:c.p])
	c.buf = nb
	c.size = newSize
	c.pflush = reserveThreshold(c.size)
}
