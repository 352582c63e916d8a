package chart

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/chartparse"
)

// item is a phrase together with the span of input it covers.
// Items are immutable.
type item struct {
	span   chartparse.Span
	rank   float64 // memo of chartparse.RankOf(phrase)
	serial uint64  // order of creation, for tie-breaking
	phrase chartparse.Phrase
}

func (it *item) String() string {
	return fmt.Sprintf("[%s %v @%g]", it.phrase.Tag(), it.span, it.rank)
}

// position holds the active items starting and ending at an input position.
type position struct {
	asStart *arraylist.List
	asEnd   *arraylist.List
}

func newPosition() *position {
	return &position{
		asStart: arraylist.New(),
		asEnd:   arraylist.New(),
	}
}

// each calls f for every item of l.
func each(l *arraylist.List, f func(*item)) {
	it := l.Iterator()
	for it.Next() {
		f(it.Value().(*item))
	}
}

// --- Agenda ----------------------------------------------------------------

// agenda is a priority queue of items, ordered by rank. Ties are broken by
// serial number, i.e. first in, first out.
type agenda struct {
	heap   *binaryheap.Heap
	serial uint64
}

func newAgenda() *agenda {
	return &agenda{heap: binaryheap.NewWith(itemComparator)}
}

func itemComparator(a, b interface{}) int {
	i1, i2 := a.(*item), b.(*item)
	if c := utils.Float64Comparator(i1.rank, i2.rank); c != 0 {
		return c
	}
	return utils.UInt64Comparator(i1.serial, i2.serial)
}

// push creates a new item for a phrase and puts it onto the agenda.
func (a *agenda) push(p chartparse.Phrase, span chartparse.Span) *item {
	it := &item{
		span:   span,
		rank:   chartparse.RankOf(p),
		serial: a.serial,
		phrase: p,
	}
	a.serial++
	a.heap.Push(it)
	return it
}

// next returns the cheapest item if its rank does not exceed maxRank, and
// removes it from the agenda. Otherwise it returns nil.
func (a *agenda) next(maxRank float64) *item {
	top, ok := a.heap.Peek()
	if !ok || top.(*item).rank > maxRank {
		return nil
	}
	a.heap.Pop()
	return top.(*item)
}

func (a *agenda) size() int {
	return a.heap.Size()
}
