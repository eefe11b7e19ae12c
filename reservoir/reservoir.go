// Copyright 2019, LightStep Inc.

// Package reservoir keeps a fixed-size uniform sample of an unbounded
// stream.
package reservoir

// Intner picks uniformly from [0, n).  *rand.Rand satisfies it.
type Intner interface {
	Intn(n int) int
}

// Reservoir implements unweighted reservoir sampling using Algorithm R
// from "Random sampling with a reservoir" by Jeffrey Vitter (1985)
// https://en.wikipedia.org/wiki/Reservoir_sampling#Algorithm_R
//
// Every item offered to Add has the same capacity/Count() chance of
// being in the sample.
type Reservoir[T any] struct {
	capacity int
	observed int
	buffer   []T
	rnd      Intner
}

// New returns a reservoir holding at most capacity items.  rnd should
// not be shared with code whose random stream must stay reproducible.
func New[T any](capacity int, rnd Intner) *Reservoir[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Reservoir[T]{
		capacity: capacity,
		buffer:   make([]T, 0, capacity),
		rnd:      rnd,
	}
}

// Add offers an item to the sample.
func (r *Reservoir[T]) Add(item T) {
	r.observed++

	if len(r.buffer) < r.capacity {
		r.buffer = append(r.buffer, item)
		return
	}
	if r.capacity == 0 {
		return
	}

	// Replace an existing entry with probability capacity/observed.
	if index := r.rnd.Intn(r.observed); index < r.capacity {
		r.buffer[index] = item
	}
}

// Get returns the i'th sampled item.
func (r *Reservoir[T]) Get(i int) T {
	return r.buffer[i]
}

// Items returns a copy of the sample in slot order.
func (r *Reservoir[T]) Items() []T {
	return append([]T(nil), r.buffer...)
}

// Size returns the number of sampled items, which equals Capacity()
// once Count() reaches it.
func (r *Reservoir[T]) Size() int {
	return len(r.buffer)
}

// Capacity returns the maximum sample size.
func (r *Reservoir[T]) Capacity() int {
	return r.capacity
}

// Count returns the number of items offered since the last Reset.
func (r *Reservoir[T]) Count() int {
	return r.observed
}

// Weight is the number of offered items each sampled item stands for.
func (r *Reservoir[T]) Weight() float64 {
	if len(r.buffer) == 0 {
		return 0
	}
	return float64(r.observed) / float64(len(r.buffer))
}

// Reset empties the sample, keeping its storage.
func (r *Reservoir[T]) Reset() {
	var zero T
	for i := range r.buffer {
		r.buffer[i] = zero
	}
	r.buffer = r.buffer[:0]
	r.observed = 0
}
