package stabber

import mrcfg "github.com/alancleary/mr-cfg"

// Stabber answers nested-interval stabbing queries: given a point, which
// updated interval containing it is nested most deeply. grammar.Build is
// written against this interface so the same factoring code runs unchanged
// regardless of which of the three implementations backs it.
type Stabber interface {
	// Stab returns the ID of the deepest updated interval containing
	// position i, or false if no such interval exists.
	Stab(i int) (mrcfg.ID, bool)

	// Update registers the inclusive interval [begin, end] under id, so
	// later Stab calls landing inside it return id, or the ID of whatever
	// narrower interval is later nested inside it.
	Update(begin, end int, id mrcfg.ID)
}
