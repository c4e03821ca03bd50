package smallvec

import (
	"fmt"
	"iter"
	"reflect"
	"unsafe"
)

// Vec is a contiguous, growable sequence that stores its first elements in an
// inline buffer embedded in the Vec itself. Heap storage is allocated only
// once the element count outgrows the inline capacity.
//
// The second type parameter A selects the inline capacity and MUST be an
// array type over T:
//
//	var v smallvec.Vec[int, [8]int] // inline capacity 8
//
// Constructors validate A; the zero value skips that check and trusts the
// declaration. Using anything other than [N]T for A corrupts memory.
//
// Internal invariants:
//   - Slots [0, size) hold live elements; slots [size, cap) are zero. Every
//     operation that vacates a slot clears it so the GC can reclaim whatever
//     the element referenced.
//   - heap == nil means the inline array is the active storage and the
//     capacity is its length. heap != nil means heap is the active storage
//     and the capacity is len(heap). Shrinking never flips the mode back;
//     only Move and Swap can hand the inline array to an instance that
//     previously grew.
//
// A Vec must not be copied by assignment after first use: in inline mode the
// copy would be fine, but in heap mode both copies would share one block.
// Use Clone, Move, or Swap, which are explicit about ownership. Vec is not
// safe for concurrent use.
type Vec[T any, A any] struct {
	inline A   // must be [N]T; active storage while heap == nil
	heap   []T // active storage once the container has grown past the inline capacity
	size   int
}

// New creates an empty Vec. The zero value is equally usable; New exists for
// option support and for the buffer-type validation it performs.
func New[T any, A any](opts ...Option) *Vec[T, A] {
	validateBuffer[T, A]()

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	v := &Vec[T, A]{}
	if o.capacity > 0 {
		v.Reserve(o.capacity)
	}

	return v
}

// Of creates a Vec holding the given elements in order. When the element
// count exceeds the inline capacity, the heap block is sized exactly to the
// count rather than to the doubling schedule.
func Of[T any, A any](items ...T) *Vec[T, A] {
	validateBuffer[T, A]()

	v := &Vec[T, A]{}
	if len(items) > v.inlineCap() {
		v.heap = make([]T, len(items))
	}
	v.size = copy(v.storage(), items)

	return v
}

// Len returns the number of live elements.
func (v *Vec[T, A]) Len() int {
	return v.size
}

// Cap returns the number of slots available without reallocation.
func (v *Vec[T, A]) Cap() int {
	if v.heap != nil {
		return len(v.heap)
	}
	return v.inlineCap()
}

// Inline reports whether the active storage is the embedded inline buffer.
// Once a Vec grows onto the heap it stays heap-backed, even after Clear or a
// shrinking Resize; only Move or Swap with an inline-backed peer can hand the
// inline buffer back.
func (v *Vec[T, A]) Inline() bool {
	return v.heap == nil
}

// At returns the element at index i. It panics if i is out of range.
func (v *Vec[T, A]) At(i int) T {
	return v.storage()[:v.size][i]
}

// Set replaces the element at index i. It panics if i is out of range.
func (v *Vec[T, A]) Set(i int, item T) {
	v.storage()[:v.size][i] = item
}

// Slice returns the live elements as a contiguous slice sharing the Vec's
// storage. Writes through the slice are visible in the Vec. The slice is
// invalidated by any capacity-changing or clearing operation; its capacity
// is clipped so append never aliases the Vec's spare slots.
func (v *Vec[T, A]) Slice() []T {
	return v.storage()[:v.size:v.size]
}

// Values returns an iterator over the live elements in insertion order.
// The Vec must not be mutated during iteration.
func (v *Vec[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.Slice() {
			if !yield(item) {
				return
			}
		}
	}
}

// Push appends item, growing the capacity via doubling when full.
func (v *Vec[T, A]) Push(item T) {
	if v.size == v.Cap() {
		v.grow()
	}
	v.storage()[v.size] = item
	v.size++
}

// Extend appends a zero-valued element and returns a pointer to it, so the
// caller can initialize the element in place without an intermediate copy.
// The pointer is invalidated by any capacity-changing or clearing operation.
func (v *Vec[T, A]) Extend() *T {
	if v.size == v.Cap() {
		v.grow()
	}
	p := &v.storage()[v.size]
	v.size++
	return p
}

// Append pushes all items in order. A single reallocation covers the whole
// batch, following the same doubling schedule as Push.
func (v *Vec[T, A]) Append(items ...T) {
	if need := v.size + len(items); need > v.Cap() {
		c := max(1, v.Cap())
		for c < need {
			c *= 2
		}
		v.Reserve(c)
	}
	v.size += copy(v.storage()[v.size:], items)
}

// Reserve grows the capacity to at least n. It is a no-op when n does not
// exceed the current capacity; it never shrinks. The new block is fully
// populated before it is installed, so on any survivable failure the Vec is
// exactly as it was before the call. All slices and pointers previously
// obtained from the Vec are invalidated when Reserve reallocates.
func (v *Vec[T, A]) Reserve(n int) {
	if n <= v.Cap() {
		return
	}

	block := make([]T, n)
	old := v.storage()
	copy(block, old[:v.size])

	if v.heap == nil {
		// The inline array stays embedded in the Vec, so drop its element
		// references for the GC. A retired heap block is unreachable as a
		// whole and needs no clearing.
		clear(old[:v.size])
	}

	v.heap = block
}

// Resize sets the element count to n. Growth appends copies of fill after
// reserving capacity for all of them; shrinking zeroes the vacated slots and
// keeps the current capacity and storage mode. Resize panics if n is
// negative.
func (v *Vec[T, A]) Resize(n int, fill T) {
	switch {
	case n < 0:
		panic(fmt.Sprintf("smallvec: Resize to negative length %d", n))
	case n == v.size:
		return
	case n > v.size:
		v.Reserve(n)
		s := v.storage()
		for i := v.size; i < n; i++ {
			s[i] = fill
		}
		v.size = n
	default:
		clear(v.storage()[n:v.size])
		v.size = n
	}
}

// Clear removes all elements, zeroing their slots, and keeps the current
// capacity and storage mode.
func (v *Vec[T, A]) Clear() {
	clear(v.storage()[:v.size])
	v.size = 0
}

// grow applies the doubling policy for implicit growth: max(1, 2*cap).
func (v *Vec[T, A]) grow() {
	v.Reserve(max(1, 2*v.Cap()))
}

// storage returns the active backing slice, full capacity, mode resolved by
// the heap field alone.
func (v *Vec[T, A]) storage() []T {
	if v.heap != nil {
		return v.heap
	}
	return v.inlineSlice()
}

// inlineSlice views the embedded array as []T. Safe as long as A is [N]T,
// which the constructors validate.
func (v *Vec[T, A]) inlineSlice() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.inline)), v.inlineCap())
}

func (v *Vec[T, A]) inlineCap() int {
	elem := unsafe.Sizeof(*new(T))
	if elem == 0 {
		// Zero-sized element type: the array length cannot be derived from
		// byte sizes.
		return reflect.TypeFor[A]().Len()
	}
	return int(unsafe.Sizeof(v.inline) / elem)
}

func validateBuffer[T any, A any]() {
	at := reflect.TypeFor[A]()
	if at.Kind() != reflect.Array || at.Elem() != reflect.TypeFor[T]() {
		panic(fmt.Sprintf("smallvec: buffer type %v is not an array of %v", at, reflect.TypeFor[T]()))
	}
}
