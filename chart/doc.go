/*
Package chart implements an agenda-driven bottom-up chart parser.

A chart holds a growing sequence of input positions. Clients add phrases one by
one, each occupying one new unit of input. The chart then discovers every way
adjacent phrases may be merged into larger phrases, consulting a Merger (usually a
grammar.Ruleset) for every pair of neighbours.

Agenda

New phrases, whether added by the client or derived by merging, are not put onto
the chart directly. Instead they enter an agenda, a priority queue ordered by
ascending rank. Parsing repeatedly takes the cheapest item from the agenda and
activates it: the item is entered into the chart and merged with every active
item immediately to its left and to its right. Derived phrases enter the agenda
in turn. Items of equal rank leave the agenda in the order they entered it.

Parse takes a rank bound. Parsing stops as soon as the cheapest item on the
agenda exceeds the bound; the remaining items stay on the agenda. This makes
parsing resumable:

    c := chart.New(rules)
    c.Add(a).Add(dog).Add(in).Add(a).Add(house)
    perfect := c.Parse(0)                     // error-free derivations only
    if len(perfect) == 0 {
        relaxed := c.Parse(chartparse.Infinity) // continue, without re-computation
        ...
    }

Parse returns every phrase spanning the complete input. Adding a phrase makes
the input longer, so earlier results are no longer complete and will not be
reported again.

Charts are not safe for concurrent use. A ruleset may be shared between charts.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chart

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartparse.chart'.
func tracer() tracing.Trace {
	return tracing.Select("chartparse.chart")
}
