package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/chartparse"
)

// Merger is a function merging two adjacent phrases. lhs is the phrase to the left,
// rhs the phrase to the right. A merger returns every phrase derivable from the
// pair, possibly none.
//
// Mergers should be pure functions and must not modify their arguments. If a
// merger panics, the panic will propagate to the client of the chart.
type Merger func(lhs, rhs chartparse.Phrase) []chartparse.Phrase

// Rule licenses merging a phrase tagged LHS with a phrase tagged RHS to its right.
type Rule struct {
	LHS   string
	RHS   string
	Merge Merger
}

func (r Rule) String() string {
	return fmt.Sprintf("(%s %s)", r.LHS, r.RHS)
}

func (r Rule) check() error {
	if r.LHS == "" || r.RHS == "" {
		return fmt.Errorf("rule %v has an empty tag", r)
	}
	if r.Merge == nil {
		return fmt.Errorf("rule %v has no merge function", r)
	}
	return nil
}

// Ruleset is a table of mergers, indexed by the tags of two adjacent phrases.
// Create one with NewRuleset or with a RulesetBuilder.
//
// A Ruleset may be shared between charts. Lookups are read-only, but AddRules
// must not be called concurrently with lookups.
type Ruleset struct {
	name  string
	table map[string]map[string][]Merger // lhs → rhs → mergers
	size  int
}

// NewRuleset creates a ruleset from zero or more rules. Invalid rules, i.e. rules
// with an empty tag or without a merge function, are skipped.
func NewRuleset(rules ...Rule) *Ruleset {
	rs := &Ruleset{table: make(map[string]map[string][]Merger)}
	rs.AddRules(rules...)
	return rs
}

// Name returns the name of a ruleset, if it has been built by a RulesetBuilder.
func (rs *Ruleset) Name() string {
	return rs.name
}

// AddRules extends a ruleset. Rules are appended for their tag pair; existing
// rules are never removed or replaced. Mergers for the same tag pair are called
// in the order of registration.
func (rs *Ruleset) AddRules(rules ...Rule) {
	for _, r := range rules {
		if err := r.check(); err != nil {
			tracer().Errorf("ignoring rule: %v", err)
			continue
		}
		rs.add(r)
	}
}

func (rs *Ruleset) add(r Rule) {
	if rs.table == nil {
		rs.table = make(map[string]map[string][]Merger)
	}
	rhsmap, ok := rs.table[r.LHS]
	if !ok {
		rhsmap = make(map[string][]Merger)
		rs.table[r.LHS] = rhsmap
	}
	rhsmap[r.RHS] = append(rhsmap[r.RHS], r.Merge)
	rs.size++
	tracer().Debugf("rule %v now has %d merger(s)", r, len(rhsmap[r.RHS]))
}

// Merge returns every phrase derivable by merging lhs with rhs, lhs being the left
// neighbour. It calls every merger registered for (lhs.Tag(), rhs.Tag()) and
// concatenates the results. If no rule matches, Merge returns nil.
func (rs *Ruleset) Merge(lhs, rhs chartparse.Phrase) []chartparse.Phrase {
	mergers := rs.lookup(lhs.Tag(), rhs.Tag())
	if len(mergers) == 0 {
		return nil
	}
	var derived []chartparse.Phrase
	for _, merge := range mergers {
		derived = append(derived, merge(lhs, rhs)...)
	}
	return derived
}

// lookup does not create table entries for unknown tags.
func (rs *Ruleset) lookup(lhs, rhs string) []Merger {
	rhsmap, ok := rs.table[lhs]
	if !ok {
		return nil
	}
	return rhsmap[rhs]
}

// Size returns the number of mergers in a ruleset.
func (rs *Ruleset) Size() int {
	return rs.size
}

// Pairs returns all tag pairs for which a rule is registered, sorted by LHS tag
// first and RHS tag second.
func (rs *Ruleset) Pairs() [][2]string {
	set := treeset.NewWith(pairComparator)
	for lhs, rhsmap := range rs.table {
		for rhs := range rhsmap {
			set.Add([2]string{lhs, rhs})
		}
	}
	pairs := make([][2]string, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		pairs = append(pairs, it.Value().([2]string))
	}
	return pairs
}

func pairComparator(a, b interface{}) int {
	p1, p2 := a.([2]string), b.([2]string)
	if c := utils.StringComparator(p1[0], p2[0]); c != 0 {
		return c
	}
	return utils.StringComparator(p1[1], p2[1])
}

// Dump is a debugging helper, tracing all rules at debug level.
func (rs *Ruleset) Dump() {
	tracer().Debugf("--- ruleset %q ---------------------------", rs.name)
	for n, p := range rs.Pairs() {
		tracer().Debugf("%3d: %s %s  [%d]", n+1, p[0], p[1], len(rs.lookup(p[0], p[1])))
	}
	tracer().Debugf("------------------------------------------")
}
