package flatjson

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// zstdStreamCloser gives a stream Context a compressed sibling of
// streamSink: output drains through a zstd.Encoder instead of being written
// to w directly, for a hosting service that wants its JSON emission
// persisted or transmitted compressed. It reuses streamSink's flush
// bookkeeping by wrapping the encoder as the io.Writer streamSink writes to.
type zstdStreamCloser struct {
	enc *zstd.Encoder
}

func (z *zstdStreamCloser) Write(p []byte) (int, error) { return z.enc.Write(p) }

// NewZstdStreamContext returns a Context that compresses everything it
// emits with zstd before writing it to w. Close must be called once
// emission is complete (after the root driver returns) to flush the
// encoder's own internal frame state; it is separate from the Context's own
// flush because the encoder may buffer beyond what the Context itself does.
func NewZstdStreamContext(w io.Writer, level zstd.EncoderLevel, opts Options) (*Context, io.Closer, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, nil, err
	}
	closer := &zstdStreamCloser{enc: enc}
	ctx := NewStreamContext(closer, opts)
	return ctx, enc, nil
}
