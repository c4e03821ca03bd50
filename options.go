package smallvec

type options struct {
	capacity int
}

// Option configures constructor behavior.
//
// Options exist to avoid exploding the constructor surface; the zero-value
// Vec and the plain New call cover the common case.
type Option func(*options)

// WithCapacity pre-reserves capacity for at least n elements, so a caller
// that knows its final size pays for at most one allocation up front instead
// of a doubling cascade. Values not exceeding the inline capacity are free:
// the inline buffer already covers them and no heap block is allocated.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}
