package stabber

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	mrcfg "github.com/alancleary/mr-cfg"
)

// Fast answers stabbing queries with a dynamically growing compressed
// bitmap: no preprocessing, but every query pays a rank/select over
// whatever boundary positions have been added so far.
type Fast struct {
	positionBits *roaring64.Bitmap
	lookup       map[uint64]mrcfg.ID
}

// NewFast returns an empty Fast stabber.
func NewFast() *Fast {
	return &Fast{
		positionBits: roaring64.New(),
		lookup:       make(map[uint64]mrcfg.ID),
	}
}

// Stab finds the rank-th set boundary bit at or before i and looks up its
// stored ID, if any.
func (s *Fast) Stab(i int) (mrcfg.ID, bool) {
	rank := uint64(s.positionBits.Rank(uint64(i)))
	if rank == 0 {
		return 0, false
	}
	j, err := s.positionBits.Select(rank - 1)
	if err != nil {
		return 0, false
	}
	id, ok := s.lookup[j]
	return id, ok
}

// Update assumes [begin, end] is nested in whatever interval already
// encloses begin, if any.
func (s *Fast) Update(begin, end int, id mrcfg.ID) {
	parentID, hasParent := s.Stab(begin)
	closeAt := uint64(end + 1)
	if !s.positionBits.Contains(closeAt) {
		s.positionBits.Add(closeAt)
		// only record an ID for positions that close an enclosed interval;
		// leaving the rest absent from lookup is what Stab's ok-return relies on
		if hasParent {
			s.lookup[closeAt] = parentID
		}
	}
	beginPos := uint64(begin)
	s.positionBits.Add(beginPos)
	s.lookup[beginPos] = id
}
