/*
Package grammar builds a maximal-repeat context-free grammar (MR-CFG) from a
csa.Index: one production per maximal repeat, factored greedily left to
right against a stabber.Stabber, plus a unique start production covering the
whole text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 mr-cfg contributors

*/
package grammar

import (
	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/npillmayer/schuko/tracing"

	mrcfg "github.com/alancleary/mr-cfg"
)

func tracer() tracing.Trace {
	return tracing.Select("mrcfg.grammar")
}

// Grammar is a straight-line context-free grammar over the alphabet
// 0..Sigma-1, with one production per non-terminal ID and a distinguished
// Start symbol.
type Grammar struct {
	Start mrcfg.ID
	Sigma int

	rules *hashmap.Map // mrcfg.ID -> *Production, non-terminals only
	sizes *hashmap.Map // mrcfg.ID -> int, every symbol that has ever had a production size
}

func newGrammar(sigma int) *Grammar {
	g := &Grammar{
		Sigma: sigma,
		rules: hashmap.New(),
		sizes: hashmap.New(),
	}
	for i := 0; i < sigma; i++ {
		g.sizes.Put(mrcfg.ID(i), 1)
	}
	return g
}

// Rule returns the production for non-terminal id, if any.
func (g *Grammar) Rule(id mrcfg.ID) (*Production, bool) {
	v, found := g.rules.Get(id)
	if !found {
		return nil, false
	}
	return v.(*Production), true
}

// Size returns the length of the string that id expands to: 1 for a
// terminal, or the expanded length of its production for a non-terminal.
func (g *Grammar) Size(id mrcfg.ID) (int, bool) {
	v, found := g.sizes.Get(id)
	if !found {
		return 0, false
	}
	return v.(int), true
}

// NumRules reports the number of non-terminal productions in the grammar,
// not counting the Sigma terminal symbols.
func (g *Grammar) NumRules() int {
	return g.rules.Size()
}

// RuleIDs returns every non-terminal ID with a production, in no particular
// order.
func (g *Grammar) RuleIDs() []mrcfg.ID {
	keys := g.rules.Keys()
	ids := make([]mrcfg.ID, len(keys))
	for i, k := range keys {
		ids[i] = k.(mrcfg.ID)
	}
	return ids
}

// Expand writes the terminal string id ultimately expands to onto dst,
// recursively walking non-terminals depth first. Byte 0 (the text
// terminator) is never written, mirroring the original implementation's
// printCfg.
func (g *Grammar) Expand(id mrcfg.ID, comp2char func(int) byte, dst *[]byte) {
	if int(id) < g.Sigma {
		c := comp2char(int(id))
		if c != 0 {
			*dst = append(*dst, c)
		}
		return
	}
	prod, ok := g.Rule(id)
	if !ok {
		return
	}
	for _, sym := range prod.IDs() {
		g.Expand(sym, comp2char, dst)
	}
}
