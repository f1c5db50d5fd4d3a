/*
Package lcp enumerates the LCP-intervals of a csa.Index in shortest-first
(non-decreasing ℓ) order, implementing the algorithm of Beller, Berger &
Ohlebusch ("Space-Efficient Computation of Maximal and Supermaximal Repeats
in Genome Sequences", 2012).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 mr-cfg contributors

*/
package lcp

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/schuko/tracing"

	mrcfg "github.com/alancleary/mr-cfg"
	"github.com/alancleary/mr-cfg/csa"
)

func tracer() tracing.Trace {
	return tracing.Select("mrcfg.lcp")
}

// Record is one LCP-interval yielded by an Enumerator: the interval itself,
// its number of distinct left-extensions, and whether it is a local maximum
// of left-extension count among its children (true iff every child
// sub-range seen while it was being assembled was itself a singleton).
type Record struct {
	Interval      mrcfg.Interval
	LeftExtension int
	IsLocalMax    bool
}

type boundary struct {
	lb, rb int
}

// Enumerator is a lazy, finite, non-restartable pull-iterator over an
// index's LCP-intervals. The first record it yields always has LCP == 0
// (the whole-text interval); callers that only want maximal repeats should
// discard it, as grammar.Build does.
type Enumerator struct {
	idx      *csa.Index
	sigma    int
	queues   []*linkedlistqueue.Queue // one FIFO of boundary per compacted symbol
	sizes    []int                    // snapshotted queue sizes for the current lcp round
	pos      []int                    // current position within queue k's snapshot
	finished []bool
	lcp      int
	pending  int // total boundaries left across all queues

	// sibling-tracking state for the interval currently being assembled
	lastLB, lastIdx int
	extensions      *hashset.Set
	locMax          bool
	started         bool
}

// New creates an Enumerator over idx.
func New(idx *csa.Index) *Enumerator {
	e := &Enumerator{
		idx:        idx,
		sigma:      idx.Sigma(),
		queues:     make([]*linkedlistqueue.Queue, idx.Sigma()),
		sizes:      make([]int, idx.Sigma()),
		pos:        make([]int, idx.Sigma()),
		finished:   make([]bool, idx.N()+1),
		extensions: hashset.New(),
		locMax:     true,
	}
	n := idx.N()
	e.finished[0] = true
	e.finished[n] = true
	for k := 0; k < e.sigma; k++ {
		e.queues[k] = linkedlistqueue.New()
		lb, rb := idx.C(k), idx.C(k+1)
		e.queues[k].Enqueue(boundary{lb, rb})
		e.pending++
	}
	return e
}

// Next advances the enumerator and reports its next record, or false once
// every LCP-interval has been emitted.
func (e *Enumerator) Next() (Record, bool) {
	for e.pending > 0 {
		if !e.started {
			e.snapshotQueueSizes()
			e.started = true
		} else if e.allSnapshotsExhausted() {
			// the previous round is done, whether or not its last boundary
			// returned a record
			e.lcp++
			e.snapshotQueueSizes()
		}
		for k := 0; k < e.sigma; k++ {
			for e.pos[k] < e.sizes[k] {
				e.pos[k]++
				raw, _ := e.queues[k].Dequeue()
				b := raw.(boundary)
				e.pending--
				if rec, ok := e.processBoundary(b); ok {
					return rec, true
				}
			}
		}
	}
	return Record{}, false
}

func (e *Enumerator) allSnapshotsExhausted() bool {
	for k := 0; k < e.sigma; k++ {
		if e.pos[k] < e.sizes[k] {
			return false
		}
	}
	return true
}

func (e *Enumerator) snapshotQueueSizes() {
	for k := 0; k < e.sigma; k++ {
		e.sizes[k] = e.queues[k].Size()
		e.pos[k] = 0
	}
}

// processBoundary handles one dequeued (lb,rb) pair for the current lcp
// round, enqueuing children onto e.queues, and returns a completed Record
// if this pair closed out the interval it belongs to.
func (e *Enumerator) processBoundary(b boundary) (Record, bool) {
	lb, rb := b.lb, b.rb
	if !e.finished[rb] || e.lastIdx == lb {
		for _, sr := range e.idx.IntervalSymbols(lb, rb) {
			e.extensions.Add(sr.CompChar)
			if sr.CompChar == e.idx.Char2Comp(0) {
				continue
			}
			l := e.idx.C(sr.CompChar) + sr.RankLB
			r := e.idx.C(sr.CompChar) + sr.RankRB
			e.queues[sr.CompChar].Enqueue(boundary{l, r})
			e.pending++
		}
		if lb != rb-1 {
			e.locMax = false
		}
		if !e.finished[rb] {
			e.finished[rb] = true
			if e.lastIdx != lb {
				e.lastLB = lb
			}
			e.lastIdx = rb
		} else if e.lastIdx == lb {
			rec := Record{
				Interval:      mrcfg.Interval{LCP: e.lcp, LB: e.lastLB, RB: rb - 1},
				LeftExtension: e.extensions.Size(),
				IsLocalMax:    e.locMax,
			}
			e.extensions.Clear()
			e.lastLB, e.lastIdx = 0, 0
			e.locMax = true
			return rec, true
		}
	}
	return Record{}, false
}
