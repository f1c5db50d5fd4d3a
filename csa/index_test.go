package csa

import (
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuildRejectsNulByte(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mrcfg.csa")
	defer teardown()

	if _, err := Build([]byte("ab\x00cd")); err != ErrNulByte {
		t.Errorf("Build with embedded NUL = %v, want ErrNulByte", err)
	}
}

func TestBuildSuffixArrayIsSortedPermutation(t *testing.T) {
	idx, err := Build([]byte("abracadabra"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	n := idx.N()
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		pos := idx.SA(i)
		if pos < 0 || pos >= n || seen[pos] {
			t.Fatalf("SA is not a permutation of [0,%d): SA(%d)=%d", n, i, pos)
		}
		seen[pos] = true
	}
	for i := 1; i < n; i++ {
		if !suffixLessOrEqual(idx, idx.SA(i-1), idx.SA(i)) {
			t.Fatalf("suffixes out of order at rank %d: SA=%d then SA=%d", i, idx.SA(i-1), idx.SA(i))
		}
	}
}

func suffixLessOrEqual(idx *Index, a, b int) bool {
	n := idx.N()
	for a < n && b < n {
		if idx.Text(a) != idx.Text(b) {
			return idx.Text(a) < idx.Text(b)
		}
		a++
		b++
	}
	return a >= n
}

func TestBuildISAIsInverseOfSA(t *testing.T) {
	idx, err := Build([]byte("mississippi"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 0; i < idx.N(); i++ {
		if idx.ISA(idx.SA(i)) != i {
			t.Errorf("ISA(SA(%d)) = %d, want %d", i, idx.ISA(idx.SA(i)), i)
		}
	}
}

func TestCharCompRoundTrips(t *testing.T) {
	idx, err := Build([]byte("banana"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for k := 0; k < idx.Sigma(); k++ {
		b := idx.Comp2Char(k)
		if idx.Char2Comp(b) != k {
			t.Errorf("Char2Comp(Comp2Char(%d)) = %d, want %d", k, idx.Char2Comp(b), k)
		}
	}
}

func TestIntervalSymbolsCoversWholeRange(t *testing.T) {
	idx, err := Build([]byte("banana"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	ranges := idx.IntervalSymbols(0, idx.N())
	var total int
	for _, r := range ranges {
		total += r.RankRB - r.RankLB
	}
	if total != idx.N() {
		t.Errorf("IntervalSymbols over the whole BWT covered %d positions, want %d", total, idx.N())
	}

	comps := make([]int, len(ranges))
	for i, r := range ranges {
		comps[i] = r.CompChar
	}
	if !sort.IntsAreSorted(comps) {
		t.Errorf("IntervalSymbols results not sorted by CompChar: %v", comps)
	}
}

func TestIntervalSymbolsEmptyRange(t *testing.T) {
	idx, err := Build([]byte("banana"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := idx.IntervalSymbols(3, 3); got != nil {
		t.Errorf("IntervalSymbols(3,3) = %v, want nil", got)
	}
}
