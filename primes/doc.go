/*
Package primes implements a primality test by trial division and an
enumerator for the sequence of primes.

The primality test is a plain function, IsPrime. Clients which want to
plug in a different test use the Tester interface.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package primes

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'numseq.primes'.
func tracer() tracing.Trace {
	return tracing.Select("numseq.primes")
}
