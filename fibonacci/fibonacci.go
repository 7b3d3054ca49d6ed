package fibonacci

import (
	"math/big"

	"github.com/npillmayer/numseq"
	"github.com/npillmayer/numseq/seq"
)

// Option configures the seeds of a Fibonacci sequence.
type Option func(*seeds)

type seeds struct {
	first, second *big.Int
}

// First sets the first term of a sequence (default 1).
func First(n int64) Option {
	return func(s *seeds) {
		s.first = big.NewInt(n)
	}
}

// Second sets the second term of a sequence (default 1).
func Second(n int64) Option {
	return func(s *seeds) {
		s.second = big.NewInt(n)
	}
}

// Seeds sets both of the first terms of a sequence. The arguments are copied.
func Seeds(first, second *big.Int) Option {
	return func(s *seeds) {
		s.first = new(big.Int).Set(first)
		s.second = new(big.Int).Set(second)
	}
}

func configure(opts []Option) seeds {
	s := seeds{first: big.NewInt(1), second: big.NewInt(1)}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Seq returns an infinite Fibonacci sequence. Every term is a freshly
// allocated integer, which clients are free to modify.
//
// The recurrence starts with previous = second - first and current = first,
// then repeatedly emits current and sets (current, previous) to
// (current + previous, current).
func Seq(opts ...Option) seq.Seq[*big.Int] {
	s := configure(opts)
	tracer().Debugf("fibonacci sequence with seeds %s, %s", s.first, s.second)
	current := new(big.Int).Set(s.first)
	previous := new(big.Int).Sub(s.second, s.first)
	return seq.Generate(func() (*big.Int, bool) {
		term := new(big.Int).Set(current)
		next := new(big.Int).Add(current, previous)
		previous, current = current, next
		return term, true
	})
}

// Enumerate returns the first length terms of a Fibonacci sequence.
// A negative length results in an error of kind numseq.ErrInvalidArgument.
func Enumerate(length int, opts ...Option) ([]*big.Int, error) {
	if err := numseq.CheckLength(length); err != nil {
		return nil, err
	}
	if length == 0 {
		return []*big.Int{}, nil
	}
	return Seq(opts...).Take(length).List(), nil
}

// Last returns the last of the first n terms of a Fibonacci sequence.
// As there is no such term for n ≤ 0, this results in an error of kind
// numseq.ErrInvalidArgument.
func Last(n int, opts ...Option) (*big.Int, error) {
	if n <= 0 {
		return nil, numseq.InvalidArgument("no last term within the first %d Fibonacci terms", n)
	}
	terms, err := Enumerate(n, opts...)
	if err != nil {
		return nil, err
	}
	return terms[n-1], nil
}
