package rational

import (
	"math/big"

	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/numseq"
)

// Rat is an exact rational number n/d in lowest terms, d > 0.
// The zero value of Rat is 0/1 and ready to use.
//
//    r, _ := New(4, 8)      // r is 1/2
//    s := r.Add(One())      // s is 3/2, r is unchanged
//
type Rat struct {
	r *big.Rat // never modified after construction; nil means 0
}

// New creates a rational number n/d. New fails with an error of kind
// numseq.ErrDivisionByZero if d is zero.
func New(n, d int64) (Rat, error) {
	if d == 0 {
		return Rat{}, numseq.DivisionByZero("cannot construct rational %d/0", n)
	}
	return Rat{big.NewRat(n, d)}, nil
}

// FromBig creates a rational number n/d from big integers. n and d are
// copied. FromBig fails with an error of kind numseq.ErrDivisionByZero if d is zero.
func FromBig(n, d *big.Int) (Rat, error) {
	if d.Sign() == 0 {
		return Rat{}, numseq.DivisionByZero("cannot construct rational %s/0", n)
	}
	return Rat{new(big.Rat).SetFrac(n, d)}, nil
}

// FromInt creates the rational number n/1.
func FromInt(n int64) Rat {
	return Rat{new(big.Rat).SetInt64(n)}
}

// FromBigInt creates the rational number n/1. n is copied.
func FromBigInt(n *big.Int) Rat {
	return Rat{new(big.Rat).SetInt(n)}
}

// Zero returns the rational 0, the additive identity.
func Zero() Rat {
	return Rat{}
}

// One returns the rational 1, the multiplicative identity.
func One() Rat {
	return FromInt(1)
}

func (x Rat) rat() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return x.r
}

// Num returns the numerator of x, which may be ≤ 0. The result is a copy.
func (x Rat) Num() *big.Int {
	return new(big.Int).Set(x.rat().Num())
}

// Denom returns the denominator of x, which is always > 0. The result is a copy.
func (x Rat) Denom() *big.Int {
	return new(big.Int).Set(x.rat().Denom())
}

// IsInt reports whether the denominator of x is 1.
func (x Rat) IsInt() bool {
	return x.rat().IsInt()
}

// Sign returns -1, 0 or +1, depending on the sign of x.
func (x Rat) Sign() int {
	return x.rat().Sign()
}

// IsZero is a predicate: is x = 0?
func (x Rat) IsZero() bool {
	return x.Sign() == 0
}

// Add returns the sum x+y.
func (x Rat) Add(y Rat) Rat {
	return Rat{new(big.Rat).Add(x.rat(), y.rat())}
}

// Mul returns the product x*y.
func (x Rat) Mul(y Rat) Rat {
	return Rat{new(big.Rat).Mul(x.rat(), y.rat())}
}

// Quo returns the quotient x/y. Quo fails with an error of kind
// numseq.ErrDivisionByZero if y is zero.
func (x Rat) Quo(y Rat) (Rat, error) {
	if y.IsZero() {
		return Rat{}, numseq.DivisionByZero("cannot divide %s by zero", x)
	}
	return Rat{new(big.Rat).Quo(x.rat(), y.rat())}, nil
}

// Cmp compares x and y and returns -1 if x < y, 0 if x = y and +1 if x > y.
func (x Rat) Cmp(y Rat) int {
	return x.rat().Cmp(y.rat())
}

// Equal is a predicate: is x = y?
func (x Rat) Equal(y Rat) bool {
	return x.Cmp(y) == 0
}

// Big returns x as a math/big rational. The result is a copy.
func (x Rat) Big() *big.Rat {
	return new(big.Rat).Set(x.rat())
}

// String returns x as "n/d", or as "n" if the denominator is 1.
func (x Rat) String() string {
	return x.rat().RatString()
}

// --- Folding ---------------------------------------------------------------

// Product multiplies all the rationals of a slice. The product of an empty
// slice is 1.
func Product(rs []Rat) Rat {
	p := new(big.Rat).SetInt64(1)
	for _, r := range rs {
		p.Mul(p, r.rat())
	}
	tracer().Debugf("product of %d rationals = %s", len(rs), p.RatString())
	return Rat{p}
}

// Sum adds all the rationals of a slice. The sum of an empty slice is 0.
func Sum(rs []Rat) Rat {
	s := new(big.Rat)
	for _, r := range rs {
		s.Add(s, r.rat())
	}
	tracer().Debugf("sum of %d rationals = %s", len(rs), s.RatString())
	return Rat{s}
}

// --- Containers ------------------------------------------------------------

// Comparator compares two values of type Rat by magnitude. It enables
// rationals to be stored in ordered containers of package gods, e.g.
//
//    set := treeset.NewWith(rational.Comparator)
//
var Comparator utils.Comparator = func(a, b interface{}) int {
	return a.(Rat).Cmp(b.(Rat))
}
