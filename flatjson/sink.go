package flatjson

import "io"

// streamSink drains to an io.Writer. Grounded on ion/reader.go's JSONWriter,
// which wraps a bufio.Writer and flushes it at the end of each Write call;
// here the flush boundary is pflush instead of "end of Write."
type streamSink struct {
	w io.Writer
}

func (s *streamSink) kind() sinkKind { return sinkStream }

func (s *streamSink) flush(ctx *Context, partial bool) error {
	end := ctx.p
	if partial {
		end = ctx.pflush
		if end > ctx.p {
			end = ctx.p
		}
	}
	if end > 0 {
		n, err := s.w.Write(ctx.buf[:end])
		ctx.total += int64(n)
		if err != nil {
			ctx.setErr(err)
			return err
		}
	}
	if partial {
		tail := copy(ctx.buf, ctx.buf[end:ctx.p])
		ctx.p = tail
		ctx.buf = ctx.buf[:ctx.p]
	} else {
		ctx.p = 0
		ctx.buf = ctx.buf[:0]
	}
	return nil
}

// fixedSink borrows a caller-owned buffer and never grows it. Any attempt to
// flush (partial or final, once the buffer is full) is an overflow: there is
// nowhere further to drain bytes to.
type fixedSink struct{}

func (s *fixedSink) kind() sinkKind { return sinkFixed }

func (s *fixedSink) flush(ctx *Context, partial bool) error {
	if !partial {
		// a final flush of a fixed sink is a no-op: the bytes already
		// live in the caller's buffer in place.
		return nil
	}
	ctx.setErr(ErrOverflow)
	return ErrOverflow
}

// growableSink owns its buffer and doubles capacity instead of failing.
type growableSink struct{}

func (s *growableSink) kind() sinkKind { return sinkGrowable }

func (s *growableSink) flush(ctx *Context, partial bool) error {
	if !partial {
		return nil
	}
	// doubling happens lazily inside ensureCap on the next write that
	// needs the room; a partial-flush "trigger" for a growable sink just
	// means "make sure capacity grows before the next bounded write,"
	// which ensureCap already guarantees whenever c.p+n > c.size.
	if ctx.size-ctx.p >= Reserve {
		// there was already room; nothing to do (this flush call was
		// reached because p >= pflush even though raw capacity is
		// fine right after a grow -- recompute pflush defensively).
		ctx.pflush = reserveThreshold(ctx.size)
		return nil
	}
	newSize := ctx.size * 2
	if newSize == 0 {
		newSize = 2 * Reserve
	}
	nb := make([]byte, ctx.p, newSize)
	copy(nb, ctx.buf[:ctx.p])
	ctx.buf = nb
	ctx.size = newSize
	ctx.pflush = reserveThreshold(ctx.size)
	return nil
}
