/*
Package rational implements an immutable rational number type.

Values of type Rat are always kept in lowest terms, with a positive
denominator. All operations return new values; no operation ever modifies
its receiver or its arguments. Numerator and denominator are of arbitrary
precision.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rational

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'numseq.rational'.
func tracer() tracing.Trace {
	return tracing.Select("numseq.rational")
}
