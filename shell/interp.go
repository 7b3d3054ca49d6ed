package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/numseq"
	"github.com/npillmayer/numseq/derived"
	"github.com/npillmayer/numseq/fibonacci"
	"github.com/npillmayer/numseq/primes"
	"github.com/npillmayer/numseq/rational"
	"github.com/npillmayer/numseq/rationals"
	"github.com/npillmayer/schuko/tracing"
)

// TraceKeys are the tracing keys of all the packages of this module.
var TraceKeys = []string{
	"numseq.rational",
	"numseq.primes",
	"numseq.rationals",
	"numseq.fibonacci",
	"numseq.derived",
	"numseq.shell",
}

// Result is the outcome of evaluating a command line.
type Result struct {
	Command string      // name of the command evaluated, empty for blank lines
	Value   interface{} // value produced by the command
	Quit    bool        // set if the user asked to quit
}

func (r Result) String() string {
	switch v := r.Value.(type) {
	case nil:
		return "nil"
	case [2]uint64:
		return fmt.Sprintf("(%d,%d)", v[0], v[1])
	case []string:
		return strings.Join(v, "\n")
	case Partition:
		return v.String()
	}
	return fmt.Sprintf("%v", r.Value)
}

// Partition is the value of command "partition": the first N rationals,
// split by whether they have a prime numerator or denominator.
type Partition struct {
	N         int
	WithPrime []rational.Rat
	Rest      []rational.Rat
	Quotient  rational.Rat // product(WithPrime) / product(Rest)
}

func (p Partition) String() string {
	return fmt.Sprintf("%v / %v = %s", p.WithPrime, p.Rest, p.Quotient)
}

// Interpreter evaluates command lines. It holds the variables defined
// with "let".
type Interpreter struct {
	lexer   *Lexer
	symbols *SymbolTable
}

// NewInterpreter creates an interpreter with an empty symbol table.
func NewInterpreter() (*Interpreter, error) {
	lexer, err := NewLexer()
	if err != nil {
		return nil, err
	}
	return &Interpreter{
		lexer:   lexer,
		symbols: NewSymbolTable(),
	}, nil
}

// Symbols returns the symbol table of an interpreter.
func (intp *Interpreter) Symbols() *SymbolTable {
	return intp.symbols
}

// Eval evaluates a command line. Blank lines and comments evaluate to an
// empty result.
func (intp *Interpreter) Eval(line string) (Result, error) {
	tokens, err := intp.lexer.Tokens(line)
	if err != nil {
		return Result{}, err
	}
	first := tokens[0]
	if first.Type == EOF {
		return Result{}, nil
	}
	if first.Type != Ident {
		return Result{}, fmt.Errorf("command expected, have %q", first.Lexeme)
	}
	switch first.Lexeme {
	case "let":
		return intp.let(tokens[1:])
	case "quit", "exit":
		return Result{Command: first.Lexeme, Quit: true}, nil
	case "help":
		return Result{Command: "help", Value: helpText}, nil
	case "vars":
		return Result{Command: "vars", Value: intp.vars()}, nil
	case "trace":
		return intp.trace(tokens[1:])
	}
	if _, isCmd := commands[first.Lexeme]; !isCmd {
		if b := intp.symbols.Resolve(first.Lexeme); b != nil && tokens[1].Type == EOF {
			return Result{Command: first.Lexeme, Value: b.Value}, nil
		}
	}
	return intp.command(tokens)
}

// let binds the result of a command, a number or another variable to a name:
//
//    let NAME = <command> | NUMBER | $VAR
//
func (intp *Interpreter) let(tokens []Token) (Result, error) {
	if len(tokens) < 3 || tokens[0].Type != Ident || tokens[1].Type != Assign {
		return Result{}, fmt.Errorf("usage: let NAME = <command>")
	}
	name := tokens[0].Lexeme
	if _, isCmd := commands[name]; isCmd {
		return Result{}, fmt.Errorf("cannot use command name %q as a variable", name)
	}
	var value interface{}
	rhs := tokens[2:]
	switch {
	case rhs[0].Type == EOF:
		return Result{}, fmt.Errorf("usage: let NAME = <command>")
	case (rhs[0].Type == Number || rhs[0].Type == Var) && rhs[1].Type == EOF:
		n, err := intp.intArg(rhs[0])
		if err != nil {
			return Result{}, err
		}
		value = n
	default:
		r, err := intp.command(rhs)
		if err != nil {
			return Result{}, err
		}
		value = r.Value
	}
	b, _ := intp.symbols.Define(name)
	b.Value = value
	tracer().Debugf("defined %s", b)
	return Result{Command: "let", Value: value}, nil
}

func (intp *Interpreter) vars() []string {
	names := treeset.NewWithStringComparator()
	intp.symbols.Each(func(name string, _ *Binding) {
		names.Add(name)
	})
	listing := make([]string, 0, names.Size())
	for _, name := range names.Values() {
		b := intp.symbols.Resolve(name.(string))
		listing = append(listing, fmt.Sprintf("%s = %s", b.Name(), Result{Value: b.Value}))
	}
	return listing
}

func (intp *Interpreter) trace(tokens []Token) (Result, error) {
	if tokens[0].Type != Ident || tokens[1].Type != EOF {
		return Result{}, fmt.Errorf("usage: trace Debug|Info|Error")
	}
	level := tracing.TraceLevelFromString(tokens[0].Lexeme)
	for _, key := range TraceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	return Result{Command: "trace", Value: tokens[0].Lexeme}, nil
}

// --- Commands --------------------------------------------------------------

type command struct {
	usage string
	arity []int // allowed argument counts
	run   func(args []int64) (interface{}, error)
}

var commands = map[string]command{
	"rationals": {"rationals N", []int{1}, func(args []int64) (interface{}, error) {
		return rationals.Enumerate(int(args[0]))
	}},
	"sorted": {"sorted N", []int{1}, sortedRationals},
	"pair": {"pair K", []int{1}, func(args []int64) (interface{}, error) {
		if args[0] < 0 {
			return nil, numseq.InvalidArgument("pair number must not be negative, is %d", args[0])
		}
		a, b := rationals.Pair(uint64(args[0]))
		return [2]uint64{a, b}, nil
	}},
	"primes": {"primes N", []int{1}, func(args []int64) (interface{}, error) {
		return primes.Enumerate(int(args[0]))
	}},
	"prime?": {"prime? N", []int{1}, func(args []int64) (interface{}, error) {
		return primes.IsPrime(args[0]), nil
	}},
	"fib": {"fib N [FIRST SECOND]", []int{1, 3}, func(args []int64) (interface{}, error) {
		if len(args) == 3 {
			return fibonacci.Enumerate(int(args[0]), fibonacci.First(args[1]), fibonacci.Second(args[2]))
		}
		return fibonacci.Enumerate(int(args[0]))
	}},
	"meaningless": {"meaningless N", []int{1}, func(args []int64) (interface{}, error) {
		return derived.Meaningless(int(args[0]))
	}},
	"aimless": {"aimless N", []int{1}, func(args []int64) (interface{}, error) {
		return derived.Aimless(int(args[0]))
	}},
	"worthless": {"worthless N", []int{1}, func(args []int64) (interface{}, error) {
		return derived.Worthless(int(args[0]))
	}},
	"partition": {"partition N", []int{1}, partition},
}

func sortedRationals(args []int64) (interface{}, error) {
	rs, err := rationals.Enumerate(int(args[0]))
	if err != nil {
		return nil, err
	}
	set := treeset.NewWith(rational.Comparator)
	for _, r := range rs {
		set.Add(r)
	}
	sorted := make([]rational.Rat, 0, set.Size())
	for _, v := range set.Values() {
		sorted = append(sorted, v.(rational.Rat))
	}
	return sorted, nil
}

func partition(args []int64) (interface{}, error) {
	n := int(args[0])
	a, b, err := derived.Groups(n)
	if err != nil {
		return nil, err
	}
	q, err := rational.Product(a).Quo(rational.Product(b))
	if err != nil {
		return nil, err
	}
	return Partition{N: n, WithPrime: a, Rest: b, Quotient: q}, nil
}

func (intp *Interpreter) command(tokens []Token) (Result, error) {
	name := tokens[0].Lexeme
	cmd, ok := commands[name]
	if tokens[0].Type != Ident || !ok {
		return Result{}, fmt.Errorf("unknown command %q", name)
	}
	var args []int64
	for _, tok := range tokens[1:] {
		if tok.Type == EOF {
			break
		}
		n, err := intp.intArg(tok)
		if err != nil {
			return Result{}, err
		}
		args = append(args, n)
	}
	if !allowed(len(args), cmd.arity) {
		return Result{}, fmt.Errorf("usage: %s", cmd.usage)
	}
	tracer().Infof("%s %v", name, args)
	value, err := cmd.run(args)
	if err != nil {
		return Result{}, err
	}
	return Result{Command: name, Value: value}, nil
}

func (intp *Interpreter) intArg(tok Token) (int64, error) {
	switch tok.Type {
	case Number:
		n, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return 0, numseq.InvalidArgument("number %s out of range", tok.Lexeme)
		}
		return n, nil
	case Var:
		name := tok.Lexeme[1:]
		b := intp.symbols.Resolve(name)
		if b == nil {
			return 0, fmt.Errorf("undefined variable %q", name)
		}
		n, ok := b.Int()
		if !ok {
			return 0, numseq.InvalidArgument("variable %q is not an integer: %s", name, Result{Value: b.Value})
		}
		return n, nil
	}
	return 0, fmt.Errorf("integer argument expected, have %q", tok.Lexeme)
}

func allowed(n int, arity []int) bool {
	for _, a := range arity {
		if n == a {
			return true
		}
	}
	return false
}

var helpText = []string{
	"rationals N             first N positive rationals in lowest terms",
	"sorted N                first N rationals, ascending by magnitude",
	"pair K                  pair (a,b) with pair number K",
	"primes N                first N primes",
	"prime? N                primality test",
	"fib N [FIRST SECOND]    first N Fibonacci numbers",
	"meaningless N           product of rationals with prime terms / product of the rest",
	"aimless N               sum of pairs of primes p/q",
	"worthless N             rationals until their sum exceeds the N-th Fibonacci number",
	"partition N             groups of meaningless N",
	"let NAME = ...          bind a result to a variable; use as $NAME",
	"vars                    list variables",
	"trace LEVEL             set trace level (Debug, Info, Error)",
	"quit                    leave",
}
