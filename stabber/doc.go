/*
Package stabber implements three interchangeable nested-interval stabbing
structures used to decide, while factoring a grammar production, which
maximal repeat (if any) a given text position falls inside.

ONLINE answers queries against a balanced tree with no preprocessing; OPTIMAL
preprocesses every LCP-interval of a csa.Index into a bit-vector plus
ancestor-chain bitmaps for O(1) queries; FAST trades OPTIMAL's preprocessing
for a dynamically growing compressed bitmap. All three satisfy Stabber and
are drop-in replacements for one another.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 mr-cfg contributors

*/
package stabber

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("mrcfg.stabber")
}
