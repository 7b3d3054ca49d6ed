/*
Package seqrepl/main provides an interactive command line tool (Seq.REPL)
to explore the number sequences of this module: rationals, primes,
Fibonacci numbers, and the algorithms derived from them.

Usage:

    seqrepl [-trace Debug|Info|Error] [-init FILE] [COMMAND]

Enter "help" at the prompt for a list of commands.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'numseq.shell'
func tracer() tracing.Trace {
	return tracing.Select("numseq.shell")
}
