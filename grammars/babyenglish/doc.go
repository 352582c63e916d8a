/*
Package babyenglish is a small example grammar for chart parsing.

It knows three word classes: determiners (tag D), nouns (tag N) and prepositions
(tag P), and three rules:

    D N  ⇒  N     "a dog"
    P N  ⇒  P     "in [a house]"
    N P  ⇒  N     "[a dog] [in a house]"

The grammar is tolerant: instead of rejecting ungrammatical merges, it records
an error with the derived phrase. The rank of a phrase is the sum of the ranks
of its constituents plus the number of its own errors. Parsing with rank bound
0 yields the grammatical readings only, higher bounds admit readings with errors:

    a a car       →  *[[car a] a]            (rank 1: noun already has determiner)
    a dog in a house → [[dog a] [in [house a]]]

Sentences with chained prepositional phrases are ambiguous; every attachment is
reported.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package babyenglish

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartparse.babyenglish'.
func tracer() tracing.Trace {
	return tracing.Select("chartparse.babyenglish")
}
