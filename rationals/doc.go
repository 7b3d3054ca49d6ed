/*
Package rationals enumerates the positive rational numbers in lowest terms.

Pairs of positive integers are traversed diagonal by diagonal, alternating
the direction of traversal:

           b = 1   2   3   4  …
    a = 1      0   2   3   9
        2      1   4   8
        3      5   7
        4      6
        …

The table shows the pair number of pair (a,b).
Every pair (a,b) is visited exactly once. Pairs with gcd(a,b) = 1 are
passed on as the rational a/b; all others are skipped, thus no rational
value is ever repeated. The resulting sequence starts

    1, 2, 1/2, 1/3, 3, 4, 3/2, 2/3, 1/4, 1/5, 5, …

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rationals

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'numseq.rationals'.
func tracer() tracing.Trace {
	return tracing.Select("numseq.rationals")
}
