package mrcfg

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mrcfg'.
func tracer() tracing.Trace {
	return tracing.Select("mrcfg")
}

// Tracer exposes the root tracer to sibling packages that want to log under
// the same key without re-selecting it themselves.
func Tracer() tracing.Trace {
	return tracer()
}

// ID identifies a grammar symbol. IDs 0..sigma-1 are reserved for terminals,
// one per compacted alphabet symbol. IDs >= sigma are non-terminals: maximal
// repeats and the unique start symbol.
type ID uint64

// IsTerminal reports whether id is one of the sigma reserved terminal IDs,
// given the alphabet size sigma.
func (id ID) IsTerminal(sigma int) bool {
	return uint64(id) < uint64(sigma)
}

func (id ID) String() string {
	return fmt.Sprintf("#%d", uint64(id))
}

// Interval is an LCP-interval (lcp, lb, rb): the suffix-array range
// [lb, rb] whose suffixes share a common prefix of length exactly lcp.
// Unlike gorgo's Span, both bounds are inclusive, matching the original
// mr-cfg reference implementation's convention.
type Interval struct {
	LCP int
	LB  int
	RB  int
}

// Len returns the number of suffix-array positions covered by the interval.
func (iv Interval) Len() int {
	return iv.RB - iv.LB + 1
}

func (iv Interval) String() string {
	return fmt.Sprintf("(lcp=%d [%d,%d])", iv.LCP, iv.LB, iv.RB)
}
