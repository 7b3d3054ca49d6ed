package rationals

import (
	"math/big"

	"github.com/npillmayer/numseq"
	"github.com/npillmayer/numseq/rational"
	"github.com/npillmayer/numseq/seq"
)

// Pair maps a pair number to a pair (a,b) of positive integers.
//
// Diagonal k (k ≥ 1) holds k pairs. For a pair number with remainder r
// within diagonal k, the pair is (k-r, r+1) for even k and (r+1, k-r) for
// odd k. Pair is a bijection between the naturals and the pairs of positive
// integers.
func Pair(pairNumber uint64) (a, b uint64) {
	n, k := pairNumber, uint64(1)
	for n >= k {
		n -= k
		k++
	}
	if k%2 == 0 {
		return k - n, n + 1
	}
	return n + 1, k - n
}

// Pairs returns the infinite sequence of pairs of positive integers, in
// order of their pair number.
func Pairs() seq.Seq[[2]uint64] {
	return seq.Map(seq.Naturals(), func(pn uint64) [2]uint64 {
		a, b := Pair(pn)
		return [2]uint64{a, b}
	})
}

// Coprime is a predicate: is gcd(a,b) = 1?
func Coprime(a, b uint64) bool {
	for b != 0 {
		a, b = b, a%b
	}
	return a == 1
}

// Seq returns the infinite sequence of distinct positive rationals in
// lowest terms, in order of the diagonal traversal.
func Seq() seq.Seq[rational.Rat] {
	coprime := func(p [2]uint64) bool {
		return Coprime(p[0], p[1])
	}
	return seq.Map(Pairs().Where(coprime), toRat)
}

func toRat(p [2]uint64) rational.Rat {
	tracer().Debugf("accepting pair (%d,%d)", p[0], p[1])
	r, err := rational.FromBig(new(big.Int).SetUint64(p[0]), new(big.Int).SetUint64(p[1]))
	if err != nil { // cannot happen, b ≥ 1
		panic(err)
	}
	return r
}

// Enumerate returns the first length rationals of Seq. For length 0 no pair
// is evaluated at all. A negative length results in an error of kind
// numseq.ErrInvalidArgument.
func Enumerate(length int) ([]rational.Rat, error) {
	if err := numseq.CheckLength(length); err != nil {
		return nil, err
	}
	if length == 0 {
		return []rational.Rat{}, nil
	}
	return Seq().Take(length).List(), nil
}
