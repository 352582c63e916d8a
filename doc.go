/*
Package chartparse is an agenda-driven bottom-up chart parser.

Clients feed a left-to-right stream of phrases into a chart. A table of pairwise
merge rules, keyed by the tags of two adjacent phrases, tells the chart how
neighbouring phrases combine into larger ones. The chart explores all legal merges
in order of increasing rank (cost) and reports every phrase spanning the complete
input seen so far. The grammar is pure data: the engine never looks at a phrase
beyond its tag and its optional rank.

Package structure is as follows:

■ grammar: Package grammar implements rulesets, i.e. tables of merge functions
indexed by pairs of tags.

■ chart: Package chart implements the agenda-driven chart parser.

■ scanner: Package scanner defines tokenizers for producing input streams, with an
adapter for lexmachine in sub-package lexmach.

■ lexicon: Package lexicon maps input tokens to unit phrases.

■ grammars/babyenglish: A small example grammar with ranked error recovery.

The base package contains the phrase contract, which is used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chartparse
