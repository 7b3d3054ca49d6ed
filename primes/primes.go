package primes

import (
	"github.com/npillmayer/numseq"
	"github.com/npillmayer/numseq/seq"
)

// --- Primality -------------------------------------------------------------

// IsPrime tests n for primality: n is prime iff exactly one r in [1, n/2]
// divides n. As 1 divides every n, this holds for n ≥ 2 without a divisor
// in [2, n/2]. For n ≤ 1 the range contains no divisor at all, hence
// IsPrime(1) is false.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for r := int64(2); r <= n/2; r++ {
		if n%r == 0 {
			return false
		}
	}
	return true
}

// Tester is the capability to decide primality.
type Tester interface {
	IsPrime(n int64) bool
}

// TestFunc is an adapter to use an ordinary function as a Tester.
type TestFunc func(n int64) bool

// IsPrime calls f(n).
func (f TestFunc) IsPrime(n int64) bool {
	return f(n)
}

// TrialDivision is the default Tester, backed by IsPrime.
var TrialDivision Tester = TestFunc(IsPrime)

// --- Enumeration -----------------------------------------------------------

// Option configures a prime enumerator.
type Option func(*config)

type config struct {
	tester Tester
}

// WithTester replaces the primality test of an enumerator. A nil tester
// selects TrialDivision.
func WithTester(t Tester) Option {
	return func(c *config) {
		if t == nil {
			t = TrialDivision
		}
		c.tester = t
	}
}

func configure(opts []Option) *config {
	c := &config{tester: TrialDivision}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Seq returns the infinite sequence of primes in ascending order.
// It yields 2 first, then every odd number from 3 on which passes the
// primality test.
func Seq(opts ...Option) seq.Seq[int64] {
	c := configure(opts)
	var candidate int64
	return seq.Generate(func() (int64, bool) {
		if candidate == 0 {
			candidate = 3
			return 2, true
		}
		for !c.tester.IsPrime(candidate) {
			candidate += 2
		}
		p := candidate
		candidate += 2
		tracer().Debugf("next prime is %d", p)
		return p, true
	})
}

// Enumerate returns the first length primes. A negative length results in
// an error of kind numseq.ErrInvalidArgument.
func Enumerate(length int, opts ...Option) ([]int64, error) {
	if err := numseq.CheckLength(length); err != nil {
		return nil, err
	}
	if length == 0 {
		return []int64{}, nil
	}
	return Seq(opts...).Take(length).List(), nil
}
