package shell

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token.
type TokType int

// Token categories of the command language.
const (
	EOF    TokType = iota // end of input
	Ident                 // command or variable name, e.g. "primes" or "prime?"
	Number                // integer literal, may be negative
	Var                   // variable reference, e.g. "$n"
	Assign                // "="
)

func (t TokType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Number:
		return "Number"
	case Var:
		return "Var"
	case Assign:
		return "Assign"
	}
	return fmt.Sprintf("TokType(%d)", int(t))
}

// Token represents an input token of a command line.
type Token struct {
	Type   TokType
	Lexeme string
	Span   Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Type, t.Lexeme, t.Span)
}

// --- Spans -----------------------------------------------------------------

// Span captures the position of a token within a command line. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
