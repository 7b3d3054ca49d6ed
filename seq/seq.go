package seq

import "iter"

// Seq is a lazy sequence of values of type T.
type Seq[T any] struct {
	value T
	seq   Generator[T]
}

// Generator is a function type to generate the successor of a sequence.
type Generator[T any] func() Seq[T]

// Generate creates a sequence from a pull function. next is called once for
// every value of the sequence and returns false to signal the end.
func Generate[T any](next func() (T, bool)) Seq[T] {
	var S Generator[T]
	S = func() Seq[T] {
		v, ok := next()
		if !ok {
			return Seq[T]{}
		}
		return Seq[T]{v, S}
	}
	return S()
}

// Empty returns a sequence without any values.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// Break signals a sequence to stop iterating.
func (s *Seq[T]) Break() {
	s.seq = nil
}

// Done returns true if a sequence stopped iterating.
func (s *Seq[T]) Done() bool {
	return s.seq == nil
}

// First returns the current value of a sequence, together with the sequence.
func (s Seq[T]) First() (T, Seq[T]) {
	return s.value, s
}

// Next returns the next value of a sequence. If the sequence is exhausted,
// Next returns the zero value of T and Done will report true.
func (s *Seq[T]) Next() T {
	if s.Done() {
		var zero T
		return zero
	}
	next := s.seq()
	s.value, s.seq = next.value, next.seq
	return s.value
}

// pull turns a sequence into a pull function, as expected by Generate.
// The first call yields the current value, subsequent calls advance.
func (s Seq[T]) pull() func() (T, bool) {
	inner := s
	started := false
	return func() (T, bool) {
		if started {
			inner.Next()
		}
		started = true
		if inner.Done() {
			var zero T
			return zero, false
		}
		return inner.value, true
	}
}

// --- Operations ------------------------------------------------------------

// Naturals is an infinite sequence over the whole numbers 0, 1, 2, …
func Naturals() Seq[uint64] {
	var n uint64
	started := false
	return Generate(func() (uint64, bool) {
		if started {
			n++
		}
		started = true
		return n, true
	})
}

// Map creates new values from the values of a sequence.
func Map[T, U any](s Seq[T], mapper func(T) U) Seq[U] {
	p := s.pull()
	return Generate(func() (U, bool) {
		v, ok := p()
		if !ok {
			var zero U
			return zero, false
		}
		return mapper(v), true
	})
}

// Where applies a filter to a sequence. Only values for which filt returns
// true are passed on.
func (s Seq[T]) Where(filt func(T) bool) Seq[T] {
	p := s.pull()
	return Generate(func() (T, bool) {
		for v, ok := p(); ok; v, ok = p() {
			if filt(v) {
				return v, true
			}
		}
		var zero T
		return zero, false
	})
}

// Take cuts a sequence after n values. The underlying sequence is not
// advanced beyond its n-th value.
func (s Seq[T]) Take(n int) Seq[T] {
	if n <= 0 {
		return Empty[T]()
	}
	p := s.pull()
	count := 0
	return Generate(func() (T, bool) {
		if count >= n {
			var zero T
			return zero, false
		}
		count++
		return p()
	})
}

// TakeWhile passes on values as long as pred holds for them. The first value
// for which pred is false ends the sequence and is not passed on.
func (s Seq[T]) TakeWhile(pred func(T) bool) Seq[T] {
	p := s.pull()
	return Generate(func() (T, bool) {
		v, ok := p()
		if !ok || !pred(v) {
			var zero T
			return zero, false
		}
		return v, true
	})
}

// TakeUntil passes on values up to and including the first value for which
// pred is true. pred is called exactly once per value, in sequence order, so
// it may carry state (e.g., a running sum).
func (s Seq[T]) TakeUntil(pred func(T) bool) Seq[T] {
	p := s.pull()
	stop := false
	return Generate(func() (T, bool) {
		if stop {
			var zero T
			return zero, false
		}
		v, ok := p()
		if !ok {
			return v, false
		}
		stop = pred(v)
		return v, true
	})
}

// List returns all the remaining values of a sequence as a slice. Never call
// List on an infinite sequence.
func (s Seq[T]) List() []T {
	l := make([]T, 0)
	for v, S := s.First(); !S.Done(); v = S.Next() {
		l = append(l, v)
	}
	return l
}

// All returns an iterator over the remaining values of a sequence, for use
// with range-over-func.
func (s Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, S := s.First(); !S.Done(); v = S.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
