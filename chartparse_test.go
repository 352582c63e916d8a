package chartparse

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type bare string

func (b bare) Tag() string { return string(b) }

func TestRankOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse")
	defer teardown()
	//
	if r := RankOf(bare("x")); r != 0 {
		t.Errorf("expected phrase without rank to have rank 0, has %g", r)
	}
	if r := RankOf(Unit{Label: "x", Cost: 3}); r != 3 {
		t.Errorf("expected unit to have rank 3, has %g", r)
	}
	if !(Infinity > 1e300) {
		t.Errorf("expected Infinity to exceed every finite rank")
	}
}

func TestSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse")
	defer teardown()
	//
	s := Span{2, 5}
	if s.Len() != 3 || s.From() != 2 || s.To() != 5 {
		t.Errorf("unexpected span accessors for %v", s)
	}
	if !s.Adjacent(Span{5, 6}) || s.Adjacent(Span{4, 6}) {
		t.Errorf("adjacency of %v broken", s)
	}
	if e := s.Extend(Span{0, 3}); e != (Span{0, 5}) {
		t.Errorf("expected extended span to be (0…5), is %v", e)
	}
	if s.String() != "(2…5)" {
		t.Errorf("unexpected span string %q", s.String())
	}
	if !(Span{}).IsNull() {
		t.Errorf("expected zero span to be null")
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chartparse")
	defer teardown()
	//
	a1 := Fingerprint(Unit{Label: "a"})
	a2 := Fingerprint(Unit{Label: "a"})
	b := Fingerprint(Unit{Label: "b"})
	a3 := Fingerprint(Unit{Label: "a", Cost: 1})
	if a1 == "" {
		t.Fatalf("expected fingerprint for unit, got none")
	}
	if a1 != a2 {
		t.Errorf("expected equal units to have equal fingerprints: %s ≠ %s", a1, a2)
	}
	if a1 == b || a1 == a3 {
		t.Errorf("expected different units to have different fingerprints")
	}
	if Fingerprint(nil) != "" {
		t.Errorf("expected empty fingerprint for nil")
	}
}
