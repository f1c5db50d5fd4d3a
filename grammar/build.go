package grammar

import (
	"fmt"

	mrcfg "github.com/alancleary/mr-cfg"
	"github.com/alancleary/mr-cfg/csa"
	"github.com/alancleary/mr-cfg/identifier"
	"github.com/alancleary/mr-cfg/lcp"
	"github.com/alancleary/mr-cfg/stabber"
)

// Algorithm names the nested-interval stabber implementation Build should
// back the grammar factoring with.
type Algorithm string

const (
	Online  Algorithm = "ONLINE"
	Optimal Algorithm = "OPTIMAL"
	Fast    Algorithm = "FAST"
)

func newStabber(idx *csa.Index, algorithm Algorithm) (stabber.Stabber, error) {
	switch algorithm {
	case Optimal:
		return stabber.NewOptimal(idx), nil
	case Online:
		return stabber.NewOnline(), nil
	case Fast:
		return stabber.NewFast(), nil
	default:
		return nil, fmt.Errorf("grammar: unknown algorithm %q", algorithm)
	}
}

// Build constructs an MR-CFG over idx, factoring each maximal repeat's
// occurrence against a stabber.Stabber chosen by algorithm. The three
// algorithms differ only in how that stabber answers queries; the resulting
// grammar is identical regardless of which one is used, since LCP-interval
// enumeration and ID assignment never consult the stabber themselves.
//
// Build returns the stabber it used alongside the grammar, fully populated
// with every repeat Update it made along the way, so a caller can keep
// issuing Stab queries against the same nesting structure after Build
// returns (cmd/mrcfg's explore subcommand does this).
func Build(idx *csa.Index, algorithm Algorithm) (*Grammar, stabber.Stabber, error) {
	st, err := newStabber(idx, algorithm)
	if err != nil {
		return nil, nil, err
	}

	sigma := idx.Sigma()
	g := newGrammar(sigma)
	ids := identifier.New(idx)

	e := lcp.New(idx)
	e.Next() // discard the whole-text, length-0 interval

	var numRepeats int
	for {
		rec, ok := e.Next()
		if !ok {
			break
		}

		repeatID := ids.GetID(rec.Interval.LCP, rec.Interval.LB)
		size, found := g.Size(repeatID)
		if !found {
			size = 0
		}
		size++
		g.sizes.Put(repeatID, size)

		if rec.LeftExtension <= 1 {
			continue
		}

		begin := idx.SA(rec.Interval.LB)
		end := begin + size
		prod, err := factorize(idx, st, g, begin, end)
		if err != nil {
			return nil, nil, err
		}

		if prod.Len() > 1 {
			g.rules.Put(repeatID, prod)
			st.Update(rec.Interval.LB, rec.Interval.RB, repeatID)
			numRepeats++
		} else {
			g.rules.Remove(repeatID)
			g.sizes.Remove(repeatID)
		}
		ids.RemoveID(rec.Interval.LCP, rec.Interval.LB)
	}

	g.Start = ids.NextID()
	startProd, err := factorize(idx, st, g, 0, idx.N())
	if err != nil {
		return nil, nil, err
	}
	g.rules.Put(g.Start, startProd)
	g.sizes.Put(g.Start, idx.N())

	tracer().Infof("built grammar: sigma=%d repeats=%d start=%v", sigma, numRepeats, g.Start)
	return g, st, nil
}

// factorize greedily factors the text span [i, n) into a sequence of
// terminals and already-discovered non-terminals, stabbing the stabber at
// each position to find the longest rule occurrence starting there.
//
// The original reference implementation describes, but leaves disabled, a
// loop that would descend into a stabbed rule's own production when that
// rule's expansion overruns n. Enabling that descent changes which
// factorization is produced, so instead this asserts the invariant the
// disabled loop was guarding: the LCP-interval enumeration order guarantees
// no stabbed rule ever overruns the span being factored.
func factorize(idx *csa.Index, st stabber.Stabber, g *Grammar, i, n int) (*Production, error) {
	prod := NewProduction()
	for i < n {
		j := idx.ISA(i)
		ruleID, ok := st.Stab(j)
		if !ok {
			c := idx.Text(i)
			prod.Append(mrcfg.ID(idx.Char2Comp(c)))
			i++
			continue
		}
		size, found := g.Size(ruleID)
		if !found {
			return nil, fmt.Errorf("grammar: rule %v stabbed at position %d has no recorded size", ruleID, i)
		}
		if size > n-i {
			panic(fmt.Sprintf("grammar: rule %v production size %d overruns span [%d,%d) at position %d", ruleID, size, i, n, i))
		}
		prod.Append(ruleID)
		i += size
	}
	return prod, nil
}
