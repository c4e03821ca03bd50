// Package smallvec provides a contiguous, growable sequence container that
// avoids heap allocation for short sequences.
//
// A Vec keeps its first N elements in an inline buffer embedded in the Vec
// value itself and switches to a heap-allocated block only when the element
// count exceeds N. For workloads dominated by short sequences this removes
// the allocation and the cache miss that a plain slice would pay on first
// append.
//
// # Quick Start
//
// The inline capacity is chosen with an array type parameter; the zero value
// is ready to use:
//
//	var v smallvec.Vec[int, [8]int]
//	v.Push(1)
//	v.Push(2)
//	for _, x := range v.Slice() {
//		fmt.Println(x)
//	}
//
// Or with constructors:
//
//	v := smallvec.Of[string, [4]string]("a", "b", "c")
//	w := smallvec.New[int, [8]int](smallvec.WithCapacity(64))
//
// # Storage Model
//
// A Vec is inline-backed from birth. The first growth past the inline
// capacity allocates a heap block and migrates the elements; from then on
// the Vec stays heap-backed for the lifetime of that storage generation.
// Clear and shrinking Resize keep the block, so refilling is allocation-free.
// Only Move or Swap with an inline-backed peer ends a heap generation.
//
// Growth doubles the capacity (reserving explicitly sidesteps the doubling),
// and every operation that vacates slots zeroes them so the garbage
// collector is never held up by stale element references.
//
// # Ownership
//
// Because a heap-backed Vec owns its block, Vec values must not be copied by
// plain assignment. Clone produces an independent copy, Move transfers
// the storage and resets the source, Swap exchanges two Vecs wholesale, and
// Assign is clone-then-swap. Vec provides no internal synchronization;
// concurrent access must be serialized by the caller.
package smallvec
