/*
Package derived combines the sequences of rationals, primes and Fibonacci
numbers into closed-form results.

■ Meaningless partitions rationals by the primality of their terms and
divides the products of the two groups.

■ Aimless pairs up primes into fractions and sums them.

■ Worthless sums up rationals until they outgrow a Fibonacci number.

All arithmetic is exact.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package derived

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'numseq.derived'.
func tracer() tracing.Trace {
	return tracing.Select("numseq.derived")
}
