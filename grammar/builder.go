package grammar

import (
	"fmt"
)

// RulesetBuilder is a builder type for rulesets. Rules are collected one after
// another and checked when the ruleset is requested:
//
//    b := NewRulesetBuilder("G")
//    b.Rule("hello", "world", greet).Rule("greeting", "!", exclaim)
//    rs, err := b.Ruleset()
//
type RulesetBuilder struct {
	name  string
	rules []Rule
	errs  []error
}

// NewRulesetBuilder creates a builder for a ruleset with a given name.
func NewRulesetBuilder(name string) *RulesetBuilder {
	return &RulesetBuilder{name: name}
}

// Rule adds a rule for merging a phrase tagged lhs with a phrase tagged rhs.
// Returns the builder (for chaining).
func (b *RulesetBuilder) Rule(lhs, rhs string, merge Merger) *RulesetBuilder {
	return b.Add(Rule{LHS: lhs, RHS: rhs, Merge: merge})
}

// Add adds a list of rules.
// Returns the builder (for chaining).
func (b *RulesetBuilder) Add(rules ...Rule) *RulesetBuilder {
	for _, r := range rules {
		if err := r.check(); err != nil {
			b.errs = append(b.errs, err)
			continue
		}
		b.rules = append(b.rules, r)
	}
	return b
}

// Ruleset returns the ruleset constructed from the rules added so far. If any of
// the rules has been invalid, an error is returned, together with a ruleset
// containing the valid rules.
func (b *RulesetBuilder) Ruleset() (*Ruleset, error) {
	rs := NewRuleset(b.rules...)
	rs.name = b.name
	tracer().Infof("ruleset %q has %d rules for %d tag pairs", b.name, rs.Size(), len(rs.Pairs()))
	if len(b.errs) == 1 {
		return rs, fmt.Errorf("ruleset %q: %w", b.name, b.errs[0])
	} else if len(b.errs) > 1 {
		return rs, fmt.Errorf("ruleset %q: %d invalid rules, first is: %w", b.name, len(b.errs), b.errs[0])
	}
	return rs, nil
}
