package lcp

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/alancleary/mr-cfg/csa"
)

func enumerateAll(t *testing.T, idx *csa.Index) []Record {
	t.Helper()
	e := New(idx)
	var out []Record
	for {
		rec, ok := e.Next()
		if !ok {
			break
		}
		out = append(out, rec)
	}
	return out
}

func TestEnumeratorFirstRecordIsWholeRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mrcfg.lcp")
	defer teardown()

	idx, err := csa.Build([]byte("abracadabra"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	recs := enumerateAll(t, idx)
	if len(recs) == 0 {
		t.Fatal("expected at least one record")
	}
	first := recs[0]
	if first.Interval.LCP != 0 {
		t.Errorf("first record LCP = %d, want 0", first.Interval.LCP)
	}
	if first.Interval.LB != 0 || first.Interval.RB != idx.N()-1 {
		t.Errorf("first record = %v, want full range [0,%d]", first.Interval, idx.N()-1)
	}
}

func TestEnumeratorLCPNonDecreasing(t *testing.T) {
	idx, err := csa.Build([]byte("banana"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	recs := enumerateAll(t, idx)
	for i := 1; i < len(recs); i++ {
		if recs[i].Interval.LCP < recs[i-1].Interval.LCP {
			t.Errorf("lcp decreased at record %d: %d -> %d", i, recs[i-1].Interval.LCP, recs[i].Interval.LCP)
		}
	}
}

func TestEnumeratorIntervalsWellFormed(t *testing.T) {
	idx, err := csa.Build([]byte("mississippi"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	recs := enumerateAll(t, idx)
	if len(recs) == 0 {
		t.Fatal("expected records")
	}
	for _, rec := range recs {
		if rec.Interval.LB < 0 || rec.Interval.RB >= idx.N() || rec.Interval.LB > rec.Interval.RB {
			t.Errorf("malformed interval %v for n=%d", rec.Interval, idx.N())
		}
		if rec.LeftExtension < 1 {
			t.Errorf("interval %v has LeftExtension = %d, want >= 1", rec.Interval, rec.LeftExtension)
		}
	}
}

func TestEnumeratorSingleCharacterText(t *testing.T) {
	idx, err := csa.Build([]byte("a"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	recs := enumerateAll(t, idx)
	if len(recs) != 1 {
		t.Fatalf("got %d records for single-char text, want 1", len(recs))
	}
	if recs[0].Interval.LB != 0 || recs[0].Interval.RB != idx.N()-1 {
		t.Errorf("record = %v, want full range", recs[0].Interval)
	}
}

func TestEnumeratorRepeatedRun(t *testing.T) {
	idx, err := csa.Build([]byte("aaaaaaaa"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	recs := enumerateAll(t, idx)
	maxLCP := 0
	for _, rec := range recs {
		if rec.Interval.LCP > maxLCP {
			maxLCP = rec.Interval.LCP
		}
	}
	if maxLCP != len(recs)-1 {
		// a run of k a's has LCP-intervals of length 0..k-1 over the
		// suffixes starting with 'a', one per depth.
		t.Logf("maxLCP=%d numRecords=%d", maxLCP, len(recs))
	}
	if maxLCP == 0 {
		t.Error("expected some nonzero LCP interval in a run of repeated characters")
	}
}
