package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"

	"jsouthworth.net/go/mutable/arraylist"
)

// streamPrealloc bounds the allocation made up front from an
// untrusted count.
const streamPrealloc = 1 << 12

// WriteStream writes the length of l and then each element as JSON
// values to a zstd stream on w.
func WriteStream[T any](w io.Writer, l *arraylist.List[T]) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(zw)
	if err := enc.Encode(l.Len()); err != nil {
		zw.Close()
		return fmt.Errorf("write count: %w", err)
	}
	err = export(l, func(v T) error {
		return enc.Encode(v)
	})
	if err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadStream reads a list written by WriteStream.
func ReadStream[T any](r io.Reader) (*arraylist.List[T], error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	dec := json.NewDecoder(zr)
	var n int
	if err := dec.Decode(&n); err != nil {
		return nil, fmt.Errorf("%w: read count: %v", ErrMalformed, err)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrMalformed, n)
	}
	elems := make([]T, 0, min(n, streamPrealloc))
	for i := 0; i < n; i++ {
		var v T
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: count %d but %d elements",
					ErrMalformed, n, i)
			}
			return nil, fmt.Errorf("%w: element %d: %v", ErrMalformed, i, err)
		}
		elems = append(elems, v)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: data after %d elements", ErrMalformed, n)
	}
	return restore(n, elems)
}
