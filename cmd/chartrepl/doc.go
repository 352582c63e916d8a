/*
Command chartrepl provides an interactive command line tool for chart parsing
sentences of a small English grammar (see package grammars/babyenglish).
Every line entered is a sentence, which is parsed with a rank bound; all
readings within the bound are displayed as trees. Lines starting with a colon
are commands:

    :rank N|inf    set the rank bound (default 0)
    :more          parse the current chart again, with the current rank bound
    :add word…     extend the current sentence by some words and parse again
    :rules         list the tag pairs of the grammar
    :quit          leave the REPL

Flags are --trace (trace level), --max-rank (initial rank bound), --lexicon
(a YAML lexicon file replacing the built-in vocabulary), --tokenizer (words or
go) and --panic-on-merge-failure. Flags may be given as environment variables
CHARTREPL_TRACE etc. as well, or in a configuration file chartrepl.yaml in the
current directory. The configuration is visible to the library packages, and
trace levels may be set per package:

    tracelevel:
      chartparse:
        chart: Debug

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chartparse.repl'
func tracer() tracing.Trace {
	return tracing.Select("chartparse.repl")
}
