package shell

import (
	"errors"
	"testing"

	"github.com/npillmayer/numseq"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var commandLines = []string{
	"rationals 5",
	"sorted 6",
	"pair 7",
	"primes 5",
	"prime? 1",
	"prime? 7",
	"fib 6",
	"fib 5 2 5",
	"meaningless 7",
	"aimless 5",
	"worthless 5",
	"partition 4",
}

var commandOutputs = []string{
	"[1 2 1/2 1/3 3]",
	"[1/3 1/2 1 2 3 4]",
	"(3,2)",
	"[2 3 5 7 11]",
	"false",
	"true",
	"[1 1 2 3 5 8]",
	"[2 5 7 12 19]",
	"3/8",
	"260/21",
	"[1 2 1/2 1/3 3]",
	"[2 1/2 1/3] / [1] = 1/3",
}

func TestCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numseq.shell")
	defer teardown()
	//
	intp, err := NewInterpreter()
	if err != nil {
		t.Fatal(err)
	}
	for i, line := range commandLines {
		result, err := intp.Eval(line)
		if err != nil {
			t.Errorf("%q: %v", line, err)
			continue
		}
		if result.String() != commandOutputs[i] {
			t.Errorf("Expected %q to evaluate to %s, is %s", line, commandOutputs[i], result)
		}
	}
}

func TestVariables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numseq.shell")
	defer teardown()
	//
	intp, _ := NewInterpreter()
	lines := []string{"let n = 4", "let m = meaningless 5", "primes $n", "rationals $m"}
	var result Result
	var err error
	for _, line := range lines {
		if result, err = intp.Eval(line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	if result.String() != "[1]" { // meaningless 5 = 1
		t.Errorf("Expected rationals $m to be [1], is %s", result)
	}
	if result, _ = intp.Eval("n"); result.String() != "4" {
		t.Errorf("Expected n to be 4, is %s", result)
	}
	if result, _ = intp.Eval("vars"); result.String() != "m = 1\nn = 4" {
		t.Errorf("Expected listing of m and n, is %q", result)
	}
	intp.Eval("let p = aimless 2")
	if _, err = intp.Eval("primes $p"); !errors.Is(err, numseq.ErrInvalidArgument) {
		t.Errorf("Expected non-integer variable to be rejected, got %v", err)
	}
	if _, err = intp.Eval("primes $undefined"); err == nil {
		t.Errorf("Expected undefined variable to be rejected")
	}
	if _, err = intp.Eval("let primes = 3"); err == nil {
		t.Errorf("Expected command name to be rejected as variable name")
	}
}

func TestErrors(t *testing.T) {
	intp, _ := NewInterpreter()
	for _, line := range []string{"bogus 1", "primes", "fib 1 2", "worthless 0", "primes -1", "42", "let = 5"} {
		if _, err := intp.Eval(line); err == nil {
			t.Errorf("Expected %q to fail", line)
		}
	}
	if _, err := intp.Eval("worthless 0"); !errors.Is(err, numseq.ErrInvalidArgument) {
		t.Errorf("Expected invalid argument error for worthless 0, got %v", err)
	}
}

func TestQuitAndBlank(t *testing.T) {
	intp, _ := NewInterpreter()
	if result, err := intp.Eval("   "); err != nil || result.Command != "" {
		t.Errorf("Expected blank line to evaluate to nothing, is %v (%v)", result, err)
	}
	if result, _ := intp.Eval("quit"); !result.Quit {
		t.Errorf("Expected quit to signal quitting")
	}
	if result, err := intp.Eval("trace Debug"); err != nil || result.Command != "trace" {
		t.Errorf("Expected trace command to succeed, is %v (%v)", result, err)
	}
}
