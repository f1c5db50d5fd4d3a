package stabber

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/emirpasic/gods/stacks/linkedliststack"

	mrcfg "github.com/alancleary/mr-cfg"
	"github.com/alancleary/mr-cfg/csa"
	"github.com/alancleary/mr-cfg/lcp"
)

// Optimal answers stabbing queries in O(1), at the cost of preprocessing
// every LCP-interval of idx up front. Each maximal-repeat LCP-interval is
// assigned a bit in a growing family of roaring64 bitmaps, one bit per
// interval, such that an interval's bitmap is the union of its own bit and
// every ancestor's bit. A stabbing query then reduces to: find the deepest
// interval containing i (via rank/select over a boundary bit-vector), AND
// its ancestor-chain bitmap against the set of bits that have actually been
// updated, and take the lowest surviving bit as the answer.
//
// This mirrors the reference OptimalNestedIntervalStabber's use of sdsl rank
// and select support structures over a plain bit vector; a roaring64.Bitmap
// plays both roles here; its Rank and Select methods serve the same
// purpose with no separate rank/select structure to build.
type Optimal struct {
	positionBits *roaring64.Bitmap
	lookup       map[uint64]*roaring64.Bitmap // boundary position -> ancestor-chain bitmap
	updateID     *roaring64.Bitmap            // union of every repeat bit that's been assigned an external ID
	idMap        map[uint64]mrcfg.ID          // repeat bit -> external ID
}

// NewOptimal preprocesses every LCP-interval of idx. Building the csa.Index
// and running this once costs O(n); after that, Stab and Update are O(1)
// amortized (subject to roaring64's near-constant-time rank/select).
func NewOptimal(idx *csa.Index) *Optimal {
	s := &Optimal{
		positionBits: roaring64.New(),
		lookup:       make(map[uint64]*roaring64.Bitmap),
		updateID:     roaring64.New(),
		idMap:        make(map[uint64]mrcfg.ID),
	}
	s.initialize(idx)
	return s
}

func (s *Optimal) initialize(idx *csa.Index) {
	n := idx.N()

	e := lcp.New(idx)
	e.Next() // discard the whole-text, length-0 interval

	var totalRepeats uint64
	repeatEnds := make(map[int][]int) // begin -> list of ends, in discovery order
	for {
		rec, ok := e.Next()
		if !ok {
			break
		}
		if rec.LeftExtension <= 1 {
			continue // not a maximal repeat
		}
		begin, end := rec.Interval.LB, rec.Interval.RB
		s.positionBits.Add(uint64(begin))
		if end+1 < n {
			s.positionBits.Add(uint64(end + 1))
		}
		repeatEnds[begin] = append(repeatEnds[begin], end)
		totalRepeats++
	}
	if totalRepeats == 0 {
		tracer().Debugf("optimal stabber: no maximal repeats over n=%d", n)
		return
	}

	// Bits are handed out in descending order, highest first: an interval
	// discovered earlier in the position-order walk always gets a higher bit
	// than any interval nested inside it, discovered later. This is what
	// lets Stab and Update isolate an interval's own bit with .Minimum() over
	// its ancestor chain, since the deepest interval always holds the lowest
	// bit of the chain.
	var assigned uint64
	idStack := linkedliststack.New()
	endStack := linkedliststack.New()
	idStack.Push(s.updateID)

	for i := 0; i < n-1; i++ {
		for {
			top, ok := endStack.Peek()
			if !ok || top.(int) != i {
				break
			}
			endStack.Pop()
			idStack.Pop()
			if idStack.Size() > 1 {
				parent, _ := idStack.Peek()
				s.lookup[uint64(i+1)] = parent.(*roaring64.Bitmap)
			}
		}
		ends, hasRepeats := repeatEnds[i]
		if !hasRepeats {
			continue
		}
		for _, end := range ends {
			top, _ := idStack.Peek()
			bit := totalRepeats - 1 - assigned
			assigned++
			id := top.(*roaring64.Bitmap).Clone()
			id.Add(bit)
			idStack.Push(id)
			endStack.Push(end)
		}
		top, _ := idStack.Peek()
		s.lookup[uint64(i)] = top.(*roaring64.Bitmap)
	}

	tracer().Debugf("optimal stabber: preprocessed %d repeat bits over n=%d", totalRepeats, n)
}

// ancestorChain returns the ancestor-chain bitmap of the deepest
// maximal-repeat LCP-interval containing position i, or nil if i falls
// outside every preprocessed interval.
func (s *Optimal) ancestorChain(i int) *roaring64.Bitmap {
	rank := uint64(s.positionBits.Rank(uint64(i)))
	if rank == 0 {
		return nil
	}
	j, err := s.positionBits.Select(rank - 1)
	if err != nil {
		return nil
	}
	return s.lookup[j]
}

// Stab ANDs the ancestor chain at i against every bit that has been given
// an external ID via Update, and returns the ID of the lowest (i.e.
// deepest, since bits are assigned in preprocessing order nested-inward)
// surviving bit.
func (s *Optimal) Stab(i int) (mrcfg.ID, bool) {
	chain := s.ancestorChain(i)
	if chain == nil {
		return 0, false
	}
	updated := roaring64.And(s.updateID, chain)
	if updated.IsEmpty() {
		return 0, false
	}
	id, ok := s.idMap[updated.Minimum()]
	return id, ok
}

// Update intersects begin's and end's ancestor chains, which leaves the
// ancestor chain of the interval [begin, end] itself. The lowest bit of that
// chain is the interval's own bit, and it is mapped to id; the whole chain is
// then added to the set of updated bits that Stab consults.
func (s *Optimal) Update(begin, end int, id mrcfg.ID) {
	beginChain := s.ancestorChain(begin)
	endChain := s.ancestorChain(end)
	var interval *roaring64.Bitmap
	if beginChain != nil && endChain != nil {
		interval = roaring64.And(beginChain, endChain)
	} else {
		interval = roaring64.New()
	}
	bit := interval.Minimum()
	s.idMap[bit] = id
	s.updateID.Or(interval)
}
