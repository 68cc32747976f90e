package iterx

import (
	"context"
	"errors"
	"io"
	"iter"
	"slices"

	"github.com/ib-77/tabutils/pkg/tab/logger"
)

type bounds struct {
	start   int
	stop    int
	hasStop bool
}

type ChunkOption func(*bounds)

// From skips the first start elements (bytes for readers).
func From(start int) ChunkOption {
	return func(b *bounds) { b.start = max(start, 0) }
}

// Until stops before element stop (zero indexed, exclusive).
func Until(stop int) ChunkOption {
	return func(b *bounds) {
		b.stop = max(stop, 0)
		b.hasStop = true
	}
}

func newBounds(opts []ChunkOption) bounds {
	var b bounds
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b bounds) bounded() bool {
	return b.start > 0 || b.hasStop
}

// Chunk groups seq into slices of size elements. The last group may be
// shorter; a size of zero or less yields everything as a single group. No
// empty group is ever yielded.
func Chunk[T any](seq iter.Seq[T], size int, opts ...ChunkOption) iter.Seq[[]T] {
	b := newBounds(opts)

	return func(yield func([]T) bool) {
		var group []T
		i := 0
		for v := range seq {
			if b.hasStop && i >= b.stop {
				break
			}
			i++
			if i <= b.start {
				continue
			}

			group = append(group, v)
			if size > 0 && len(group) == size {
				if !yield(group) {
					return
				}
				group = nil
			}
		}

		if len(group) > 0 {
			yield(group)
		}
	}
}

func ChunkSlice[T any](s []T, size int, opts ...ChunkOption) iter.Seq[[]T] {
	return Chunk(slices.Values(s), size, opts...)
}

// ChunkReader reads r in chunks of size bytes. A start bound seeks when r
// is an io.Seeker and discards bytes otherwise; a stop bound limits the
// read without touching the source. The context is checked before each
// chunk.
func ChunkReader(ctx context.Context, r io.Reader, size int, opts ...ChunkOption) iter.Seq2[[]byte, error] {
	b := newBounds(opts)

	return func(yield func([]byte, error) bool) {
		log := logger.FromContext(ctx)

		if b.start > 0 {
			if err := skip(r, int64(b.start)); err != nil {
				if !errors.Is(err, io.EOF) {
					yield(nil, err)
				}
				return
			}
		}

		src := r
		if b.hasStop {
			src = io.LimitReader(r, int64(max(b.stop-b.start, 0)))
		}
		log.Debug("chunking reader", "size", size, "start", b.start, "stop", b.stop, "bounded", b.hasStop)

		if size <= 0 {
			data, err := io.ReadAll(src)
			if err != nil {
				yield(nil, err)
				return
			}
			if len(data) > 0 {
				yield(data, nil)
			}
			return
		}

		for {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}

			buf := make([]byte, size)
			n, err := io.ReadFull(src, buf)
			if n > 0 && !yield(buf[:n], nil) {
				return
			}
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
		}
	}
}

func skip(r io.Reader, n int64) error {
	if s, ok := r.(io.Seeker); ok {
		_, err := s.Seek(n, io.SeekStart)
		return err
	}
	_, err := io.CopyN(io.Discard, r, n)
	return err
}

// Provider streams content in chunks of the requested size; a size of zero
// or less asks for the whole content at once.
type Provider func(size int) iter.Seq[[]byte]

// ChunkProvider returns the provider's chunks of size bytes, stopping at the
// first empty one. With bounds, the content is pulled byte by byte, sliced
// and regrouped.
func ChunkProvider(p Provider, size int, opts ...ChunkOption) iter.Seq[[]byte] {
	b := newBounds(opts)

	if !b.bounded() {
		return func(yield func([]byte) bool) {
			for c := range p(size) {
				if len(c) == 0 || !yield(c) {
					return
				}
			}
		}
	}

	single := func(yield func(byte) bool) {
		for c := range p(1) {
			for _, x := range c {
				if !yield(x) {
					return
				}
			}
		}
	}
	return Chunk(single, size, opts...)
}
