package grammar

import (
	"sort"

	"github.com/cnf/structhash"

	mrcfg "github.com/alancleary/mr-cfg"
)

// checksumRule is a stable, exported shape structhash can walk: a plain
// struct holding one rule's production in order, keyed by the rule's own ID
// so map iteration order never leaks into the hash.
type checksumRule struct {
	ID      uint64
	Symbols []uint64
}

// Checksum hashes a canonical, order-independent view of g: every rule
// sorted by ID, every production's symbols in production order. Two
// Grammars built from the same text are expected to produce identical
// checksums regardless of which Algorithm backed the factoring, since
// LCP-interval enumeration and ID assignment never consult the stabber —
// this is the operational form of the three implementations' equivalence.
func (g *Grammar) Checksum() (string, error) {
	ruleIDs := g.RuleIDs()
	sort.Slice(ruleIDs, func(i, j int) bool { return ruleIDs[i] < ruleIDs[j] })

	rules := make([]checksumRule, 0, len(ruleIDs)+1)
	for _, id := range ruleIDs {
		prod, _ := g.Rule(id)
		rules = append(rules, checksumRule{ID: uint64(id), Symbols: idsToUint64(prod.IDs())})
	}

	payload := struct {
		Start mrcfg.ID
		Sigma int
		Rules []checksumRule
	}{
		Start: g.Start,
		Sigma: g.Sigma,
		Rules: rules,
	}

	return structhash.Hash(payload, 1)
}

func idsToUint64(ids []mrcfg.ID) []uint64 {
	out := make([]uint64, len(ids))
	for i, id := range ids {
		out[i] = uint64(id)
	}
	return out
}
