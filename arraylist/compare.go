package arraylist

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Comparer may be implemented by element types that have no built-in
// ordering so that Natural can sort them.
type Comparer interface {
	Compare(other interface{}) int
}

// Natural returns a Comparator ordering values whose underlying kind is
// numeric, string or bool by value, and other types through Comparer.
// nil sorts before everything else. Values of different dynamic types
// are ordered by type name.
func Natural[T any]() Comparator[T] {
	return CompareFunc[T](func(a, b T) int {
		return defaultCompare(a, b)
	})
}

// Ordered returns the ascending Comparator for an ordered type.
func Ordered[T constraints.Ordered]() Comparator[T] {
	return CompareFunc[T](compareOrdered[T])
}

// Reverse inverts the order imposed by c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return CompareFunc[T](func(a, b T) int {
		return c.Compare(b, a)
	})
}

func compareOrdered[O constraints.Ordered](a, b O) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareAs[O constraints.Ordered](v1 O, k2 interface{}) (int, bool) {
	v2, ok := k2.(O)
	if !ok {
		return 0, false
	}
	return compareOrdered(v1, v2), true
}

func defaultCompare(k1, k2 interface{}) int {
	n1, n2 := isNil(k1), isNil(k2)
	switch {
	case n1 && n2:
		return 0
	case n1:
		return -1
	case n2:
		return 1
	}
	var (
		res int
		ok  bool
	)
	switch v1 := k1.(type) {
	case uint:
		res, ok = compareAs(v1, k2)
	case uint8:
		res, ok = compareAs(v1, k2)
	case uint16:
		res, ok = compareAs(v1, k2)
	case uint32:
		res, ok = compareAs(v1, k2)
	case uint64:
		res, ok = compareAs(v1, k2)
	case int:
		res, ok = compareAs(v1, k2)
	case int8:
		res, ok = compareAs(v1, k2)
	case int16:
		res, ok = compareAs(v1, k2)
	case int32:
		res, ok = compareAs(v1, k2)
	case int64:
		res, ok = compareAs(v1, k2)
	case float32:
		res, ok = compareAs(v1, k2)
	case float64:
		res, ok = compareAs(v1, k2)
	case string:
		res, ok = compareAs(v1, k2)
	case bool:
		if v2, isBool := k2.(bool); isBool {
			res, ok = compareBool(v1, v2), true
		}
	case Comparer:
		return v1.Compare(k2)
	}
	if ok {
		return res
	}
	if res, ok = compareKinds(k1, k2); ok {
		return res
	}
	t1, t2 := fmt.Sprintf("%T", k1), fmt.Sprintf("%T", k2)
	if t1 == t2 {
		panic(fmt.Errorf("%w: %s has no natural order", ErrInvalidArgument, t1))
	}
	return compareOrdered(t1, t2)
}

// compareKinds orders two values of the same named type by their
// underlying numeric, string or bool kind.
func compareKinds(k1, k2 interface{}) (int, bool) {
	v1, v2 := reflect.ValueOf(k1), reflect.ValueOf(k2)
	if v1.Type() != v2.Type() {
		return 0, false
	}
	switch v1.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return compareOrdered(v1.Int(), v2.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return compareOrdered(v1.Uint(), v2.Uint()), true
	case reflect.Float32, reflect.Float64:
		return compareOrdered(v1.Float(), v2.Float()), true
	case reflect.String:
		return compareOrdered(v1.String(), v2.String()), true
	case reflect.Bool:
		return compareBool(v1.Bool(), v2.Bool()), true
	default:
		return 0, false
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
