/*
Package fibonacci enumerates generalized Fibonacci sequences.

A sequence is defined by two seed values and the rule
next = current + previous. With the default seeds 1 and 1 this is the
classic sequence 1, 1, 2, 3, 5, 8, … Terms are of arbitrary precision.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fibonacci

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'numseq.fibonacci'.
func tracer() tracing.Trace {
	return tracing.Select("numseq.fibonacci")
}
