package smallvec

// This file implements the ownership-transfer protocol: clone, move, swap,
// and assignment. Because the storage mode is carried by the heap field
// rather than by an aliased data pointer, every transfer reduces to plain
// field copies; there is no inline-vs-heap case analysis to get wrong.

// Clone returns an independent copy of the Vec. Elements are copied by
// assignment; use CloneFunc when elements need a deep copy. Mirroring Of,
// a clone that does not fit inline gets a heap block sized exactly to the
// element count, regardless of the source's capacity.
func (v *Vec[T, A]) Clone() *Vec[T, A] {
	dst := &Vec[T, A]{}
	if v.size > dst.inlineCap() {
		dst.heap = make([]T, v.size)
	}
	dst.size = copy(dst.storage(), v.Slice())
	return dst
}

// CloneFunc returns an independent copy with every element passed through
// clone, oldest first. If clone panics partway, the partially-built copy is
// abandoned and the source is untouched, so the panic observes the state
// from before the call.
func (v *Vec[T, A]) CloneFunc(clone func(T) T) *Vec[T, A] {
	dst := &Vec[T, A]{}
	if v.size > dst.inlineCap() {
		dst.Reserve(v.size)
	}
	for _, item := range v.Slice() {
		dst.Push(clone(item))
	}
	return dst
}

// Move transfers the Vec's storage into a new Vec and resets the receiver to
// an empty, inline-backed state. A heap block moves by pointer; an inline
// buffer cannot outlive its Vec, so its contents are copied into the new
// Vec's own inline buffer and the source slots are zeroed.
func (v *Vec[T, A]) Move() *Vec[T, A] {
	dst := &Vec[T, A]{heap: v.heap, size: v.size}
	if v.heap == nil {
		dst.inline = v.inline
		clear(v.inlineSlice()[:v.size])
	}
	v.heap = nil
	v.size = 0
	return dst
}

// Swap exchanges the complete state of two Vecs: elements, sizes,
// capacities, and storage modes, for any combination of inline and
// heap-backed operands.
func (v *Vec[T, A]) Swap(other *Vec[T, A]) {
	*v, *other = *other, *v
}

// Assign replaces the receiver's contents with an independent copy of other,
// releasing the receiver's previous storage. The copy is built in full
// before the receiver is touched, so a panic while cloning leaves the
// receiver unchanged.
func (v *Vec[T, A]) Assign(other *Vec[T, A]) {
	v.Swap(other.Clone())
}

// Swap exchanges the complete state of a and b. It is equivalent to
// a.Swap(b).
func Swap[T any, A any](a, b *Vec[T, A]) {
	a.Swap(b)
}
