/*
Package identifier assigns stable non-terminal IDs to LCP-intervals as the
grammar builder discovers them, keyed by the text position one past the
occurrence of the interval's string rather than by the interval's (lb, rb)
bounds. An interval and its left-extensions — intervals for the same
occurrence with more characters of left context — end at the same text
position and therefore share one ID, until RemoveID forgets it; the next
interval ending there then mints a fresh ID.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 mr-cfg contributors

*/
package identifier

import (
	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/npillmayer/schuko/tracing"

	mrcfg "github.com/alancleary/mr-cfg"
	"github.com/alancleary/mr-cfg/csa"
)

func tracer() tracing.Trace {
	return tracing.Select("mrcfg.identifier")
}

// Assigner hands out non-terminal IDs for LCP-intervals over idx, reserving
// IDs 0..sigma-1 for the terminal alphabet.
type Assigner struct {
	idx       *csa.Index
	next      mrcfg.ID
	repeatIDs *hashmap.Map // text position (int) -> mrcfg.ID
}

// New returns an Assigner whose first issued ID is idx.Sigma().
func New(idx *csa.Index) *Assigner {
	return &Assigner{
		idx:       idx,
		next:      mrcfg.ID(idx.Sigma()),
		repeatIDs: hashmap.New(),
	}
}

// NextID reports the ID that will be assigned to the next interval seen for
// the first time. After the last maximal repeat has been processed, this is
// the ID reserved for the grammar's start symbol.
func (a *Assigner) NextID() mrcfg.ID {
	return a.next
}

// GetID returns the ID for the LCP-interval (lcpValue, lb), minting a
// fresh one the first time this exact occurrence position is seen.
func (a *Assigner) GetID(lcpValue, lb int) mrcfg.ID {
	firstPosition := a.idx.SA(lb) + lcpValue
	if v, found := a.repeatIDs.Get(firstPosition); found {
		return v.(mrcfg.ID)
	}
	id := a.next
	a.repeatIDs.Put(firstPosition, id)
	a.next++
	return id
}

// RemoveID forgets the ID assigned to (lcpValue, lb), so a left-extended
// sibling interval sharing the same occurrence position mints a new one
// instead of reusing it.
func (a *Assigner) RemoveID(lcpValue, lb int) {
	firstPosition := a.idx.SA(lb) + lcpValue
	a.repeatIDs.Remove(firstPosition)
}
