// Package arraylist implements a growable, random access list backed
// by a single contiguous slice.
//
// A List owns its storage. Views, cursors and split cursors derived
// from a List alias that storage and remember the list's modification
// stamp at the time they were created. Structural changes to the list
// made behind their back (anything that adds, removes or moves
// elements) are detected on a best-effort basis and reported by
// panicking with ErrConcurrentModification. Replacing a value in
// place with Set is not a structural change.
//
// Lists are not safe for concurrent mutation. The fail-fast checks are
// diagnostics; do not rely on them for correctness.
//
// A note about element equality and hashing. If you would like to
// override the default go equality operator for elements implement
// Equal(other interface{}) bool on the element type, and implement
// Hash() uint64 to override the default structural hash. Otherwise
// '==' (or reflect.DeepEqual for non-comparable types) is used, and
// nil values of any kind are equal to each other.
package arraylist // import "jsouthworth.net/go/mutable/arraylist"
