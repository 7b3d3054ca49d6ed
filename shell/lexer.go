package shell

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Lexer is a scanner for command lines, backed by a lexmachine DFA.
type Lexer struct {
	lexer *lexmachine.Lexer
}

var compileOnce sync.Once
var sharedLexer *Lexer
var compileErr error

// NewLexer returns a lexer for the command language. The DFA is compiled
// once and shared between all callers.
func NewLexer() (*Lexer, error) {
	compileOnce.Do(func() {
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(`#[^\n]*`), skip) // comments
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*[\?]?`), makeToken(Ident))
		lexer.Add([]byte(`\$([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*`), makeToken(Var))
		lexer.Add([]byte(`\-?[0-9]+`), makeToken(Number))
		lexer.Add([]byte(`=`), makeToken(Assign))
		if err := lexer.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			compileErr = err
			return
		}
		sharedLexer = &Lexer{lexer: lexer}
	})
	return sharedLexer, compileErr
}

// Tokens splits a command line into tokens. The last token is always of
// type EOF. Characters which do not start any token result in an error.
func (lx *Lexer) Tokens(line string) ([]Token, error) {
	scanner, err := lx.lexer.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var tokens []Token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, fmt.Errorf("unexpected input at position %d: %q",
					ui.StartTC, unconsumed(ui))
			}
			return nil, err
		}
		token := tok.(*lexmachine.Token)
		tokens = append(tokens, Token{
			Type:   TokType(token.Type),
			Lexeme: string(token.Lexeme),
			Span:   Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
		})
	}
	end := uint64(len(line))
	tokens = append(tokens, Token{Type: EOF, Span: Span{end, end}})
	tracer().Debugf("tokens = %v", tokens)
	return tokens, nil
}

func unconsumed(ui *machines.UnconsumedInput) string {
	from, to := ui.StartTC, ui.FailTC+1
	if to > len(ui.Text) {
		to = len(ui.Text)
	}
	if from >= to {
		return ""
	}
	return string(ui.Text[from:to])
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(typ TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}
