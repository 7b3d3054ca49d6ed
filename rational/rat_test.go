package rational

import (
	"errors"
	"testing"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/numseq"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustRat(t *testing.T, n, d int64) Rat {
	t.Helper()
	r, err := New(n, d)
	if err != nil {
		t.Fatalf("cannot create %d/%d: %v", n, d, err)
	}
	return r
}

func TestNewReduces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numseq.rational")
	defer teardown()
	//
	r := mustRat(t, 4, 8)
	if r.Num().Int64() != 1 || r.Denom().Int64() != 2 {
		t.Errorf("Expected 4/8 to reduce to 1/2, is %s", r)
	}
	r = mustRat(t, 3, -6)
	if r.Num().Int64() != -1 || r.Denom().Int64() != 2 {
		t.Errorf("Expected 3/-6 to normalize to -1/2, is %s", r)
	}
	if s := mustRat(t, 6, 3).String(); s != "2" {
		t.Errorf("Expected 6/3 to print as 2, is %s", s)
	}
}

func TestZeroDenominator(t *testing.T) {
	if _, err := New(1, 0); !errors.Is(err, numseq.ErrDivisionByZero) {
		t.Errorf("Expected division by zero error, got %v", err)
	}
	if _, err := One().Quo(Zero()); !errors.Is(err, numseq.ErrDivisionByZero) {
		t.Errorf("Expected division by zero error, got %v", err)
	}
}

func TestArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numseq.rational")
	defer teardown()
	//
	half, third := mustRat(t, 1, 2), mustRat(t, 1, 3)
	if s := half.Add(third); !s.Equal(mustRat(t, 5, 6)) {
		t.Errorf("Expected 1/2 + 1/3 = 5/6, is %s", s)
	}
	if p := half.Mul(third); !p.Equal(mustRat(t, 1, 6)) {
		t.Errorf("Expected 1/2 * 1/3 = 1/6, is %s", p)
	}
	q, err := half.Quo(third)
	if err != nil || !q.Equal(mustRat(t, 3, 2)) {
		t.Errorf("Expected 1/2 / 1/3 = 3/2, is %s (%v)", q, err)
	}
	if half.String() != "1/2" {
		t.Errorf("Expected receiver to be unchanged, is %s", half)
	}
	if half.Cmp(third) != 1 || third.Cmp(half) != -1 || half.Cmp(half) != 0 {
		t.Errorf("Expected 1/3 < 1/2")
	}
}

func TestZeroValue(t *testing.T) {
	var z Rat
	if !z.IsZero() || z.String() != "0" || z.Denom().Int64() != 1 {
		t.Errorf("Expected zero value to be 0/1, is %s", z)
	}
	if s := z.Add(One()); !s.Equal(One()) {
		t.Errorf("Expected 0 + 1 = 1, is %s", s)
	}
}

func TestFold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numseq.rational")
	defer teardown()
	//
	if p := Product(nil); !p.Equal(One()) {
		t.Errorf("Expected empty product to be 1, is %s", p)
	}
	if s := Sum(nil); !s.IsZero() {
		t.Errorf("Expected empty sum to be 0, is %s", s)
	}
	rs := []Rat{mustRat(t, 2, 3), mustRat(t, 3, 4), FromInt(2)}
	if p := Product(rs); !p.Equal(One()) {
		t.Errorf("Expected product 2/3 * 3/4 * 2 = 1, is %s", p)
	}
	if s := Sum(rs); s.String() != "41/12" {
		t.Errorf("Expected sum 2/3 + 3/4 + 2 = 41/12, is %s", s)
	}
}

func TestComparator(t *testing.T) {
	set := treeset.NewWith(Comparator)
	set.Add(mustRat(t, 2, 1), mustRat(t, 1, 2), mustRat(t, 4, 8), FromInt(1))
	if set.Size() != 3 {
		t.Errorf("Expected 3 distinct rationals in set, have %d", set.Size())
	}
	values := set.Values()
	if first := values[0].(Rat); first.String() != "1/2" {
		t.Errorf("Expected smallest rational to be 1/2, is %s", first)
	}
}
