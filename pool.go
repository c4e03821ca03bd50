package smallvec

import "sync"

// Pool recycles Vec instances across uses, so hot paths that repeatedly fill
// and drain a vector keep their grown heap blocks instead of re-allocating
// them. Vecs come out of the pool empty but with whatever capacity and
// storage mode they had when they were put back.
//
// The Pool itself is safe for concurrent use; each Vec handed out is not.
type Pool[T any, A any] struct {
	pool sync.Pool
}

// NewPool creates a Pool of Vecs with inline buffer type A.
func NewPool[T any, A any]() *Pool[T, A] {
	validateBuffer[T, A]()

	p := &Pool[T, A]{}
	p.pool.New = func() any {
		return &Vec[T, A]{}
	}
	return p
}

// Get returns an empty Vec, reusing a previously returned one when
// available.
func (p *Pool[T, A]) Get() *Vec[T, A] {
	return p.pool.Get().(*Vec[T, A])
}

// Put clears v and returns it to the pool. The caller must not use v
// afterwards.
func (p *Pool[T, A]) Put(v *Vec[T, A]) {
	if v == nil {
		return
	}
	v.Clear()
	p.pool.Put(v)
}
