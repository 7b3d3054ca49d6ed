/*
Package shell implements a small command language to explore the sequences
of this module interactively.

Input lines are commands like

    rationals 10
    prime? 97
    let n = 12
    worthless $n

Commands are scanned by a DFA-based lexer and evaluated by an Interpreter,
which keeps variable bindings in a symbol table. Evaluating a command never
terminates the program; errors are returned to the caller.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shell

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'numseq.shell'.
func tracer() tracing.Trace {
	return tracing.Select("numseq.shell")
}
