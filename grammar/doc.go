/*
Package grammar implements rulesets for chart parsing.

A ruleset is a table of merge functions, indexed by an ordered pair of tags.
Given two adjacent phrases, the ruleset looks up the tag of the left phrase,
then the tag of the right phrase, and calls every merge function registered for
this exact pair. There are no wildcard tags and no inheritance between tags, and
a rule for (A,B) never applies to (B,A).

Building a Ruleset

Rulesets are specified using a builder object or from a list of rules.

Example:

    b := grammar.NewRulesetBuilder("G")
    b.Rule("D", "N", determine)     // D N  ->  N
    b.Rule("P", "N", mark)          // P N  ->  P
    b.Rule("N", "P", modify)        // N P  ->  N
    rules, err := b.Ruleset()

Merge functions receive the left and the right phrase and return zero or more
derived phrases. Returning more than one phrase expresses genuine ambiguity.

    rules.Merge(det, noun)          // returns the results of determine(det, noun)
    rules.Merge(noun, det)          // returns nothing

Rulesets may be extended after construction, but they never forget a rule.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartparse.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("chartparse.grammar")
}
