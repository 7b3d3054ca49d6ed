package derived

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/numseq"
	"github.com/npillmayer/numseq/fibonacci"
	"github.com/npillmayer/numseq/rational"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func ratStrings(rs []rational.Rat) []string {
	l := make([]string, len(rs))
	for i, r := range rs {
		l[i] = r.String()
	}
	return l
}

var meaninglessResults = []string{"1", "1", "2", "1", "1/3", "1", "1/4", "3/8", "1/4", "1", "1/5"}

func TestMeaningless(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numseq.derived")
	defer teardown()
	//
	for n, want := range meaninglessResults {
		r, err := Meaningless(n)
		if err != nil {
			t.Fatal(err)
		}
		if r.String() != want {
			t.Errorf("Expected meaningless(%d) to be %s, is %s", n, want, r)
		}
	}
}

func TestGroups(t *testing.T) {
	a, b, err := Groups(7)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"2", "1/2", "1/3", "3", "3/2"}, ratStrings(a)); diff != "" {
		t.Errorf("group with prime terms mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "4"}, ratStrings(b)); diff != "" {
		t.Errorf("group without prime terms mismatch (-want +got):\n%s", diff)
	}
}

var aimlessResults = []string{"0", "2", "2/3", "17/3", "29/21", "260/21"}

func TestAimless(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numseq.derived")
	defer teardown()
	//
	for n, want := range aimlessResults {
		r, err := Aimless(n)
		if err != nil {
			t.Fatal(err)
		}
		if r.String() != want {
			t.Errorf("Expected aimless(%d) to be %s, is %s", n, want, r)
		}
	}
}

func TestPrimePairs(t *testing.T) {
	pairs, err := PrimePairs([]int64{2, 3, 5, 7, 11})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"2/3", "5/7", "11"}, ratStrings(pairs)); diff != "" {
		t.Errorf("PrimePairs mismatch (-want +got):\n%s", diff)
	}
}

var worthlessResults = [][]string{
	nil,
	{"1"},
	{"1", "2"},
	{"1", "2"},
	{"1", "2", "1/2"},
	{"1", "2", "1/2", "1/3", "3"},
	{"1", "2", "1/2", "1/3", "3", "4"},
}

func TestWorthless(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numseq.derived")
	defer teardown()
	//
	for n := 1; n < len(worthlessResults); n++ {
		rs, err := Worthless(n)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(worthlessResults[n], ratStrings(rs)); diff != "" {
			t.Errorf("worthless(%d) mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestWorthlessRunningSum(t *testing.T) {
	for n := 1; n <= 14; n++ {
		rs, err := Worthless(n)
		if err != nil {
			t.Fatal(err)
		}
		if len(rs) == 0 {
			t.Fatalf("Expected worthless(%d) to be non-empty", n)
		}
		fib, _ := fibonacci.Last(n)
		bound := rational.FromBigInt(fib)
		if prefix := rational.Sum(rs[:len(rs)-1]); prefix.Cmp(bound) > 0 {
			t.Errorf("Expected proper prefix of worthless(%d) to sum to ≤ %s, is %s", n, bound, prefix)
		}
		if total := rational.Sum(rs); total.Cmp(bound) <= 0 && len(rs) < Limit(n) {
			t.Errorf("Expected worthless(%d) to exceed %s, sums to %s", n, bound, total)
		}
	}
}

func TestInvalidArguments(t *testing.T) {
	if _, err := Worthless(0); !errors.Is(err, numseq.ErrInvalidArgument) {
		t.Errorf("Expected invalid argument error for worthless(0), got %v", err)
	}
	if _, err := Meaningless(-1); !errors.Is(err, numseq.ErrInvalidArgument) {
		t.Errorf("Expected invalid argument error for meaningless(-1), got %v", err)
	}
	if _, err := Aimless(-1); !errors.Is(err, numseq.ErrInvalidArgument) {
		t.Errorf("Expected invalid argument error for aimless(-1), got %v", err)
	}
}

func TestLimit(t *testing.T) {
	limits := []int{1, 1, 2, 3, 5, 7, 11, 17, 25}
	for n, want := range limits {
		if got := Limit(n); got != want {
			t.Errorf("Expected ⌊1.5^%d⌋ to be %d, is %d", n, want, got)
		}
	}
	if Limit(200) != math.MaxInt {
		t.Errorf("Expected Limit(200) to be capped")
	}
}
