/*
Package numseq is a small library of exact-arithmetic number sequences.

It enumerates, without repetition, the positive rationals in lowest terms,
the primes and a generalized Fibonacci recurrence. Every sequence is
unbounded, restartable and deterministic. A handful of derived algorithms
consume these sequences and combine them into closed-form results, using
exact rational arithmetic throughout. Package structure is as follows:

■ seq: Package seq implements lazy, restartable generator sequences.

■ rational: Package rational implements an immutable rational number type
in lowest terms.

■ primes, rationals, fibonacci: the three enumerators.

■ derived: Package derived combines the enumerators into the algorithms
Meaningless, Aimless and Worthless.

■ shell: Package shell implements a command interpreter for exploring the
sequences interactively; shell/seqrepl is the command line front end.

The base package contains the error kinds which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package numseq
