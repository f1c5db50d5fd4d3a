package stabber

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	mrcfg "github.com/alancleary/mr-cfg"
)

// onlineEntry is the value stored at each boundary position in an Online's
// lookup tree. placeholder marks a position that closes an interval with no
// enclosing updated ancestor, so Stab must not mistake it for a real ID.
type onlineEntry struct {
	id          mrcfg.ID
	placeholder bool
}

// Online answers stabbing queries with a sorted map and no preprocessing:
// every Stab is a predecessor lookup, every Update two tree insertions.
type Online struct {
	lookup *treemap.Map
}

// NewOnline returns an empty Online stabber.
func NewOnline() *Online {
	return &Online{lookup: treemap.NewWith(utils.IntComparator)}
}

// Stab returns the ID stored at the predecessor of i: the largest indexed
// position <= i, unless that position is a placeholder closing an
// unenclosed interval.
func (s *Online) Stab(i int) (mrcfg.ID, bool) {
	_, v := s.lookup.Floor(i)
	if v == nil {
		return 0, false
	}
	e := v.(onlineEntry)
	if e.placeholder {
		return 0, false
	}
	return e.id, true
}

// Update assumes [begin, end] is nested in whatever interval already
// encloses begin, if any, matching the write-once invariant the grammar
// factoring loop relies on: every repeat is updated exactly once, in the
// enumerator's shortest-first order, so an enclosing interval is updated
// before any interval nested inside it.
func (s *Online) Update(begin, end int, id mrcfg.ID) {
	parentID, hasParent := s.Stab(begin)
	closeAt := end + 1
	if _, exists := s.lookup.Get(closeAt); !exists {
		if hasParent {
			s.lookup.Put(closeAt, onlineEntry{id: parentID})
		} else {
			s.lookup.Put(closeAt, onlineEntry{placeholder: true})
		}
	}
	s.lookup.Put(begin, onlineEntry{id: id})
}
