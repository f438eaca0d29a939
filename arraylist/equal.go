package arraylist

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/hashstructure/v2"
)

// Equaler overrides element equality.
type Equaler interface {
	Equal(other interface{}) bool
}

// Hasher overrides element hashing. Types implementing Equaler
// should implement Hasher consistently.
type Hasher interface {
	Hash() uint64
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func equal(v1, v2 interface{}) bool {
	n1, n2 := isNil(v1), isNil(v2)
	if n1 || n2 {
		return n1 && n2
	}
	switch val := v1.(type) {
	case Equaler:
		return val.Equal(v2)
	default:
		if !reflect.TypeOf(v1).Comparable() {
			return reflect.DeepEqual(v1, v2)
		}
		return v1 == v2
	}
}

func rangeEqual[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func hashOf(v interface{}) uint64 {
	if isNil(v) {
		return 0
	}
	if h, ok := v.(Hasher); ok {
		return h.Hash()
	}
	sum, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		panic(fmt.Errorf("%w: %v", ErrInvalidArgument, err))
	}
	return sum
}
