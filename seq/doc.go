/*
Package seq implements lazy sequences, driven by generator functions.

A sequence moves over values which are produced on demand. Sequences may be
infinite; clients cut them with Take, TakeWhile or TakeUntil, or stop
iterating with Break. Typical use is

    for v, S := seq.First(); !S.Done(); v = S.Next() {
        …
    }

Every constructor of a sequence starts from the beginning, thus sequences
are restartable by calling their constructor again. Copies of a sequence
value, however, share the state of their generator.

Note:
=====
The current implementation always pre-fetches the first value.
Constructors which must not evaluate anything for empty requests have
to check for that before creating a sequence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq
