/*
Package csa is a thin, owned stand-in for the external compressed suffix
array (a wavelet-tree over a Burrows-Wheeler transform) the original
reference implementation wraps. It exposes exactly the primitives the rest
of this module needs: n, sigma, C, char2comp/comp2char, SA, ISA, Text, and
IntervalSymbols.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 mr-cfg contributors

*/
package csa

import (
	"bytes"
	"errors"
	"sort"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("mrcfg.csa")
}

// ErrNulByte is returned by Build when the input already contains a NUL
// byte. Byte 0 is reserved as the text terminator (spec.md §6); the
// original reference implementation relies on sdsl's construction routines
// appending this terminator implicitly, which requires the same precondition.
var ErrNulByte = errors.New("csa: input text must not contain a NUL byte; it is reserved as the terminator")

// SymbolRange is one entry returned by IntervalSymbols: a compacted
// character c present in BWT[lb,rb), together with its rank (number of
// occurrences of c in BWT[0,lb) and BWT[0,rb) respectively).
type SymbolRange struct {
	CompChar int
	RankLB   int
	RankRB   int
}

// Index is an immutable text index: a suffix array and the handful of
// derived structures (BWT, C array, compacted alphabet, per-symbol rank
// dictionary) the LCP-interval enumerator and grammar builder read through.
type Index struct {
	text      []byte // T, with an appended 0 terminator
	sa        []int32
	isa       []int32
	bwt       []byte
	c         []int32 // len sigma+1
	char2comp [256]int32
	comp2char []byte
	occ       [][]int32 // occ[k] = sorted BWT positions holding compacted char k
}

// Build constructs a text index over raw. raw must not contain a NUL byte;
// Build appends one as the text terminator, mirroring sdsl's CSA
// construction routines (which the original reference implementation relies
// on implicitly).
func Build(raw []byte) (*Index, error) {
	if bytes.IndexByte(raw, 0) != -1 {
		return nil, ErrNulByte
	}
	text := make([]byte, len(raw)+1)
	copy(text, raw)
	// text[len(raw)] is already 0, the terminator.

	n := len(text)
	s := make([]int32, n)
	for i, b := range text {
		s[i] = int32(b)
	}
	sa := sais(s, 256)

	isa := make([]int32, n)
	for i, pos := range sa {
		isa[pos] = int32(i)
	}

	bwt := make([]byte, n)
	for i, pos := range sa {
		if pos == 0 {
			bwt[i] = text[n-1]
		} else {
			bwt[i] = text[pos-1]
		}
	}

	var present [256]bool
	for _, b := range text {
		present[b] = true
	}
	comp2char := make([]byte, 0, 256)
	var char2comp [256]int32
	for b := 0; b < 256; b++ {
		if present[b] {
			char2comp[b] = int32(len(comp2char))
			comp2char = append(comp2char, byte(b))
		}
	}
	sigma := len(comp2char)

	c := make([]int32, sigma+1)
	for _, b := range text {
		c[char2comp[b]+1]++
	}
	for k := 1; k <= sigma; k++ {
		c[k] += c[k-1]
	}

	occ := make([][]int32, sigma)
	counts := make([]int, sigma)
	for _, b := range bwt {
		counts[char2comp[b]]++
	}
	for k, cnt := range counts {
		occ[k] = make([]int32, 0, cnt)
	}
	for i, b := range bwt {
		k := char2comp[b]
		occ[k] = append(occ[k], int32(i))
	}

	idx := &Index{
		text:      text,
		sa:        sa,
		isa:       isa,
		bwt:       bwt,
		c:         c,
		char2comp: char2comp,
		comp2char: comp2char,
		occ:       occ,
	}
	tracer().Debugf("built text index: n=%d sigma=%d", n, sigma)
	return idx, nil
}

// N returns the text length, including the terminator.
func (x *Index) N() int {
	return len(x.text)
}

// Sigma returns the compacted alphabet size.
func (x *Index) Sigma() int {
	return len(x.comp2char)
}

// C returns C[k]: the number of suffixes whose compacted first character is
// less than k. k may range over [0, Sigma()].
func (x *Index) C(k int) int {
	return int(x.c[k])
}

// Char2Comp maps a raw byte to its compacted alphabet index.
func (x *Index) Char2Comp(b byte) int {
	return int(x.char2comp[b])
}

// Comp2Char maps a compacted alphabet index back to its raw byte value.
func (x *Index) Comp2Char(k int) byte {
	return x.comp2char[k]
}

// SA returns the suffix array entry at rank i.
func (x *Index) SA(i int) int {
	return int(x.sa[i])
}

// ISA returns the suffix-array rank of the suffix starting at text position i.
func (x *Index) ISA(i int) int {
	return int(x.isa[i])
}

// Text returns the raw byte at text position i.
func (x *Index) Text(i int) byte {
	return x.text[i]
}

// IntervalSymbols returns, for each compacted character c occurring in
// BWT[lb,rb), c's rank just before lb and just before rb. At most rb-lb
// entries are returned, in increasing order of c.
func (x *Index) IntervalSymbols(lb, rb int) []SymbolRange {
	if rb <= lb {
		return nil
	}
	seen := make(map[int32]struct{})
	for i := lb; i < rb; i++ {
		seen[x.char2comp[x.bwt[i]]] = struct{}{}
	}
	ranges := make([]SymbolRange, 0, len(seen))
	for c := range seen {
		ranges = append(ranges, SymbolRange{
			CompChar: int(c),
			RankLB:   x.rank(int(c), lb),
			RankRB:   x.rank(int(c), rb),
		})
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].CompChar < ranges[j].CompChar })
	return ranges
}

// rank returns the number of occurrences of compacted character c in
// BWT[0,pos).
func (x *Index) rank(c, pos int) int {
	positions := x.occ[c]
	return sort.Search(len(positions), func(i int) bool { return int(positions[i]) >= pos })
}
