package engine

// ring is a growable double-ended queue on a circular buffer.
// Pushes and pops at either end are O(1) amortized.
type ring[T any] struct {
	buf  []T
	head int // index of the front element in buf
	n    int
}

func newRing[T any](capacity int) *ring[T] {
	if capacity < 4 {
		capacity = 4
	}
	return &ring[T]{buf: make([]T, capacity)}
}

// Len returns the number of elements.
func (r *ring[T]) Len() int {
	return r.n
}

// At returns the i-th element counted from the front.
func (r *ring[T]) At(i int) T {
	return r.buf[(r.head+i)%len(r.buf)]
}

// Front returns the first element. The ring must not be empty.
func (r *ring[T]) Front() T {
	return r.buf[r.head]
}

// Back returns the last element. The ring must not be empty.
func (r *ring[T]) Back() T {
	return r.At(r.n - 1)
}

// PushFront inserts v before the first element.
func (r *ring[T]) PushFront(v T) {
	if r.n == len(r.buf) {
		r.grow()
	}
	r.head = (r.head - 1 + len(r.buf)) % len(r.buf)
	r.buf[r.head] = v
	r.n++
}

// PushBack appends v after the last element.
func (r *ring[T]) PushBack(v T) {
	if r.n == len(r.buf) {
		r.grow()
	}
	r.buf[(r.head+r.n)%len(r.buf)] = v
	r.n++
}

// PopFront removes and returns the first element.
func (r *ring[T]) PopFront() (T, bool) {
	var zero T
	if r.n == 0 {
		return zero, false
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.n--
	return v, true
}

// PopBack removes and returns the last element.
func (r *ring[T]) PopBack() (T, bool) {
	var zero T
	if r.n == 0 {
		return zero, false
	}
	i := (r.head + r.n - 1) % len(r.buf)
	v := r.buf[i]
	r.buf[i] = zero
	r.n--
	return v, true
}

// Slice copies the elements front to back into a new slice.
func (r *ring[T]) Slice() []T {
	out := make([]T, r.n)
	for i := range out {
		out[i] = r.At(i)
	}
	return out
}

func (r *ring[T]) grow() {
	buf := make([]T, len(r.buf)*2)
	for i := 0; i < r.n; i++ {
		buf[i] = r.At(i)
	}
	r.buf = buf
	r.head = 0
}
