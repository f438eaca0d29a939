// Package codec persists an arraylist.List as a count followed by its
// elements in order, either as a single JSON or YAML document or as a
// zstd compressed stream of JSON values.
//
// Decoding rebuilds the list with its capacity equal to the recorded
// count. Encoding fails with an error wrapping
// arraylist.ErrConcurrentModification if the list is structurally
// changed while it is being written, for instance by an element's
// marshaller.
package codec // import "jsouthworth.net/go/mutable/codec"

import (
	"errors"
	"fmt"
	"io"

	"jsouthworth.net/go/mutable/arraylist"
)

var (
	// ErrMalformed is returned when persisted state has a negative
	// count or a count that does not match the number of elements.
	ErrMalformed = errors.New("malformed persisted sequence")

	// ErrUnknownFormat is returned by ParseFormat for an unrecognized
	// format name.
	ErrUnknownFormat = errors.New("unknown format")
)

// Format selects an encoding.
type Format int

// Supported formats.
const (
	JSON Format = iota
	YAML
	Stream
)

var formatNames = [...]string{
	JSON:   "json",
	YAML:   "yaml",
	Stream: "stream",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat returns the Format called name.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Write encodes l to w in format f.
func Write[T any](w io.Writer, f Format, l *arraylist.List[T]) error {
	switch f {
	case JSON:
		data, err := EncodeJSON(l)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case YAML:
		data, err := EncodeYAML(l)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case Stream:
		return WriteStream(w, l)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// Read decodes a list in format f from r.
func Read[T any](r io.Reader, f Format) (*arraylist.List[T], error) {
	switch f {
	case JSON, YAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if f == JSON {
			return DecodeJSON[T](data)
		}
		return DecodeYAML[T](data)
	case Stream:
		return ReadStream[T](r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// export calls fn on each element of l in order and stops at the
// first error. A structural change to l during the pass is returned
// as an error rather than a panic.
func export[T any](l *arraylist.List[T], fn func(v T) error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok || !errors.Is(e, arraylist.ErrConcurrentModification) {
			panic(r)
		}
		err = fmt.Errorf("export: %w", e)
	}()
	l.Range(func(_ int, v T) bool {
		err = fn(v)
		return err == nil
	})
	return err
}

// restore validates a decoded count against the decoded elements and
// rebuilds the list from them.
func restore[T any](size int, elems []T) (*arraylist.List[T], error) {
	switch {
	case size < 0:
		return nil, fmt.Errorf("%w: negative count %d", ErrMalformed, size)
	case size != len(elems):
		return nil, fmt.Errorf("%w: count %d but %d elements",
			ErrMalformed, size, len(elems))
	}
	l := arraylist.New[T]()
	l.Restore(elems)
	return l, nil
}
