package chart

import (
	"fmt"

	"github.com/npillmayer/chartparse"
	"github.com/npillmayer/schuko/gconf"
)

// Merger is the type a chart consults for merging two adjacent phrases, lhs being
// the left neighbour of rhs. It is implemented by grammar.Ruleset.
type Merger interface {
	Merge(lhs, rhs chartparse.Phrase) []chartparse.Phrase
}

// Chart is an agenda-driven chart parser. Create one with New.
type Chart struct {
	rules     Merger
	positions []*position         // input positions 0…n
	agenda    *agenda             // items not yet activated
	whole     []chartparse.Phrase // active phrases spanning 0…n
	activated int                 // count of active items
	verbose   bool
	failed    error // first merge failure recovered by TryParse
	lhs, rhs  *item // pair of items currently being merged
}

// New creates an empty chart, using a Merger (usually a grammar.Ruleset)
// to merge adjacent phrases.
func New(rules Merger, opts ...Option) *Chart {
	c := &Chart{
		rules:     rules,
		positions: []*position{newPosition()},
		agenda:    newAgenda(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures a chart.
type Option func(c *Chart)

// Verbose sets or clears tracing of every activation and every derived item.
func Verbose(b bool) Option {
	return func(c *Chart) {
		c.verbose = b
	}
}

// Len returns the number of input units added to the chart.
func (c *Chart) Len() int {
	return len(c.positions) - 1
}

// Pending returns the number of items waiting on the agenda.
func (c *Chart) Pending() int {
	return c.agenda.size()
}

// Activated returns the number of items which have been activated.
func (c *Chart) Activated() int {
	return c.activated
}

// Add appends a phrase to the input. The phrase covers exactly one new unit of
// input. Phrases which have been complete before Add are not complete any more.
// The new phrase will be put onto the agenda and will become active during the
// next call to Parse, as with any other phrase.
//
// Returns the chart (for chaining).
func (c *Chart) Add(p chartparse.Phrase) *Chart {
	n := uint64(c.Len())
	c.positions = append(c.positions, newPosition())
	c.whole = nil
	it := c.agenda.push(p, chartparse.Span{n, n + 1})
	tracer().Debugf("added %v as unit #%d", it, n+1)
	return c
}

// Parse activates items from the agenda, cheapest first, until either the agenda
// is exhausted or the cheapest remaining item has a rank above maxRank. Items
// left on the agenda will be considered by future calls to Parse. Use
// chartparse.Infinity for an unbounded parse.
//
// Parse returns all active phrases spanning the complete input. Results of equal
// rank are ordered by the time they have been derived. The result slice must not
// be modified by clients.
//
// If a merge function panics, the panic propagates to the caller of Parse. See
// TryParse for an alternative.
func (c *Chart) Parse(maxRank float64) []chartparse.Phrase {
	for {
		it := c.agenda.next(maxRank)
		if it == nil {
			break
		}
		c.activate(it)
	}
	tracer().Debugf("parse(%g) found %d complete phrase(s), %d item(s) pending",
		maxRank, len(c.whole), c.agenda.size())
	return c.whole
}

// TryParse is like Parse, but returns an error if a merge function panics.
// Derivations from the item which was being activated at the time of the failure
// are lost, therefore the chart is marked as failed: every later call of TryParse
// returns the same error and no result. Err reports the failure as well.
//
// For debugging grammars, setting configuration flag 'panic-on-merge-failure'
// to true restores the behaviour of Parse.
func (c *Chart) TryParse(maxRank float64) (result []chartparse.Phrase, err error) {
	if c.failed != nil {
		return nil, c.failed
	}
	defer func() {
		if r := recover(); r != nil {
			err = c.failure(r)
			c.lhs, c.rhs = nil, nil
			c.failed = err
			tracer().Errorf("%v", err)
			if gconf.GetBool("panic-on-merge-failure") {
				panic(r)
			}
			result = nil
		}
	}()
	return c.Parse(maxRank), nil
}

// Err returns the merge failure recovered by TryParse, if any.
func (c *Chart) Err() error {
	return c.failed
}

func (c *Chart) failure(r interface{}) error {
	var err error
	if e, ok := r.(error); ok {
		err = e
	} else {
		err = fmt.Errorf("%v", r)
	}
	if c.lhs == nil || c.rhs == nil {
		return fmt.Errorf("chart parse failed: %w", err)
	}
	return fmt.Errorf("merging %v with %v failed: %w", c.lhs, c.rhs, err)
}

// activate enters an item into the chart and merges it with its active neighbours.
func (c *Chart) activate(it *item) {
	if c.verbose {
		tracer().Debugf("activate %v", it)
	}
	c.positions[it.span.From()].asStart.Add(it)
	c.positions[it.span.To()].asEnd.Add(it)
	c.activated++
	if it.span.From() == 0 && it.span.To() == uint64(c.Len()) {
		c.whole = append(c.whole, it.phrase)
	}
	each(c.positions[it.span.From()].asEnd, func(lhs *item) {
		c.merge(lhs, it)
	})
	each(c.positions[it.span.To()].asStart, func(rhs *item) {
		c.merge(it, rhs)
	})
}

// merge puts every phrase derivable from two adjacent items onto the agenda.
func (c *Chart) merge(lhs, rhs *item) {
	c.lhs, c.rhs = lhs, rhs
	derived := c.rules.Merge(lhs.phrase, rhs.phrase)
	c.lhs, c.rhs = nil, nil
	span := chartparse.Span{lhs.span.From(), rhs.span.To()}
	for _, p := range derived {
		it := c.agenda.push(p, span)
		if c.verbose {
			tracer().Debugf("   %v + %v ⇒ %v", lhs, rhs, it)
		}
	}
}

// Dump is a debugging helper, tracing the active items at every position.
func (c *Chart) Dump() {
	tracer().Debugf("--- chart of length %d -------------------", c.Len())
	for n, pos := range c.positions {
		each(pos.asStart, func(it *item) {
			tracer().Debugf("[%2d] %v", n, it)
		})
	}
	tracer().Debugf("--- %d active, %d pending, %d complete ------",
		c.activated, c.agenda.size(), len(c.whole))
}
