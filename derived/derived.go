package derived

import (
	"math"
	"math/big"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/numseq"
	"github.com/npillmayer/numseq/fibonacci"
	"github.com/npillmayer/numseq/primes"
	"github.com/npillmayer/numseq/rational"
	"github.com/npillmayer/numseq/rationals"
)

// --- Meaningless -----------------------------------------------------------

// Partition splits rationals into two groups, keeping their order: the
// first group holds the rationals for which pred is true, the second one
// holds the rest.
func Partition(rs []rational.Rat, pred func(rational.Rat) bool) (yes, no []rational.Rat) {
	a, b := arraylist.New(), arraylist.New()
	for _, r := range rs {
		if pred(r) {
			a.Add(r)
		} else {
			b.Add(r)
		}
	}
	return rats(a), rats(b)
}

func rats(l *arraylist.List) []rational.Rat {
	rs := make([]rational.Rat, l.Size())
	it := l.Iterator()
	for it.Next() {
		rs[it.Index()] = it.Value().(rational.Rat)
	}
	return rs
}

// HasPrimeTerm is a predicate: is the numerator or the denominator of r prime?
func HasPrimeTerm(r rational.Rat) bool {
	return isPrime(r.Num()) || isPrime(r.Denom())
}

func isPrime(n *big.Int) bool {
	return n.IsInt64() && primes.IsPrime(n.Int64())
}

// Groups returns the first n rationals, partitioned by HasPrimeTerm.
func Groups(n int) (withPrime, rest []rational.Rat, err error) {
	rs, err := rationals.Enumerate(n)
	if err != nil {
		return nil, nil, err
	}
	withPrime, rest = Partition(rs, HasPrimeTerm)
	return withPrime, rest, nil
}

// Meaningless partitions the first n rationals into those with a prime
// numerator or denominator and the rest. It returns the product of the
// first group divided by the product of the second. An empty group has
// product 1, thus Meaningless(0) = 1.
func Meaningless(n int) (rational.Rat, error) {
	a, b, err := Groups(n)
	if err != nil {
		return rational.Rat{}, err
	}
	tracer().Debugf("meaningless(%d): %d rationals with prime terms, %d without", n, len(a), len(b))
	return rational.Product(a).Quo(rational.Product(b))
}

// --- Aimless ---------------------------------------------------------------

// PrimePairs groups primes into consecutive pairs p/q. An unpaired last
// prime p becomes p/1.
func PrimePairs(ps []int64) ([]rational.Rat, error) {
	pairs := make([]rational.Rat, 0, (len(ps)+1)/2)
	for i := 0; i < len(ps); i += 2 {
		q := int64(1)
		if i+1 < len(ps) {
			q = ps[i+1]
		}
		r, err := rational.New(ps[i], q)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, r)
	}
	return pairs, nil
}

// Aimless groups the first n primes into pairs p/q and returns the sum of
// these fractions. If n is odd, the last prime is paired with 1.
// Aimless(0) = 0.
func Aimless(n int) (rational.Rat, error) {
	ps, err := primes.Enumerate(n)
	if err != nil {
		return rational.Rat{}, err
	}
	pairs, err := PrimePairs(ps)
	if err != nil {
		return rational.Rat{}, err
	}
	tracer().Debugf("aimless(%d): %v", n, pairs)
	return rational.Sum(pairs), nil
}

// --- Worthless -------------------------------------------------------------

// Limit returns ⌊1.5ⁿ⌋ = ⌊3ⁿ/2ⁿ⌋, computed exactly. If the result does not
// fit into an int, Limit returns math.MaxInt.
func Limit(n int) int {
	num := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(n)), nil)
	num.Rsh(num, uint(n))
	if !num.IsInt64() || num.Int64() > math.MaxInt {
		return math.MaxInt
	}
	return int(num.Int64())
}

// Worthless sums up rationals, in enumeration order, and returns the ones
// consumed until the running sum exceeds the n-th Fibonacci number. The
// rational which makes the sum exceed it is the last one returned. At most
// ⌊1.5ⁿ⌋ rationals are considered; if they are exhausted first, all of them
// are returned.
//
// Worthless(0) fails with an error of kind numseq.ErrInvalidArgument, as
// there is no 0-th Fibonacci number.
func Worthless(n int) ([]rational.Rat, error) {
	if n <= 0 {
		return nil, numseq.InvalidArgument("worthless(%d) requires n ≥ 1", n)
	}
	fib, err := fibonacci.Last(n)
	if err != nil {
		return nil, err
	}
	bound := rational.FromBigInt(fib)
	limit := Limit(n)
	tracer().Debugf("worthless(%d): bound = %s, limit = %d", n, bound, limit)
	sum := rational.Zero()
	exceeds := func(r rational.Rat) bool {
		sum = sum.Add(r)
		return sum.Cmp(bound) > 0
	}
	return rationals.Seq().Take(limit).TakeUntil(exceeds).List(), nil
}
