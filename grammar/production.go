package grammar

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"

	mrcfg "github.com/alancleary/mr-cfg"
)

// Production is the ordered right-hand side of a single grammar rule: a
// sequence of symbol IDs, each either a terminal (< sigma) or a
// non-terminal naming another rule.
type Production struct {
	symbols *doublylinkedlist.List
}

// NewProduction returns an empty Production.
func NewProduction() *Production {
	return &Production{symbols: doublylinkedlist.New()}
}

// Append adds id to the end of the production.
func (p *Production) Append(id mrcfg.ID) {
	p.symbols.Add(id)
}

// Len reports the number of symbols in the production.
func (p *Production) Len() int {
	return p.symbols.Size()
}

// At returns the symbol at position i.
func (p *Production) At(i int) mrcfg.ID {
	v, _ := p.symbols.Get(i)
	return v.(mrcfg.ID)
}

// IDs returns the production's symbols as a plain slice, in order.
func (p *Production) IDs() []mrcfg.ID {
	ids := make([]mrcfg.ID, p.Len())
	for i, v := range p.symbols.Values() {
		ids[i] = v.(mrcfg.ID)
	}
	return ids
}
