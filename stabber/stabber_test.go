package stabber

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	mrcfg "github.com/alancleary/mr-cfg"
	"github.com/alancleary/mr-cfg/csa"
	"github.com/alancleary/mr-cfg/lcp"
)

func TestOnlineAndFastAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mrcfg.stabber")
	defer teardown()

	online := NewOnline()
	fast := NewFast()

	updates := []struct {
		begin, end int
		id         mrcfg.ID
	}{
		{0, 9, 100},
		{2, 5, 101},
		{6, 8, 102},
		{2, 3, 103},
	}
	for _, u := range updates {
		online.Update(u.begin, u.end, u.id)
		fast.Update(u.begin, u.end, u.id)
	}

	for i := 0; i <= 9; i++ {
		onlineID, onlineOK := online.Stab(i)
		fastID, fastOK := fast.Stab(i)
		if onlineOK != fastOK || onlineID != fastID {
			t.Errorf("Stab(%d): online=(%v,%v) fast=(%v,%v)", i, onlineID, onlineOK, fastID, fastOK)
		}
	}
}

func TestOnlineStabsDeepestEnclosingInterval(t *testing.T) {
	s := NewOnline()
	s.Update(0, 9, 1)
	s.Update(2, 5, 2)

	if id, ok := s.Stab(3); !ok || id != 2 {
		t.Errorf("Stab(3) = (%v,%v), want (2,true)", id, ok)
	}
	if id, ok := s.Stab(7); !ok || id != 1 {
		t.Errorf("Stab(7) = (%v,%v), want (1,true)", id, ok)
	}
	if _, ok := s.Stab(20); ok {
		t.Error("Stab(20) should report no interval outside any update")
	}
}

func TestFastStabsDeepestEnclosingInterval(t *testing.T) {
	s := NewFast()
	s.Update(0, 9, 1)
	s.Update(2, 5, 2)

	if id, ok := s.Stab(3); !ok || id != 2 {
		t.Errorf("Stab(3) = (%v,%v), want (2,true)", id, ok)
	}
	if id, ok := s.Stab(7); !ok || id != 1 {
		t.Errorf("Stab(7) = (%v,%v), want (1,true)", id, ok)
	}
}

// TestThreeImplementationsAgreeOnRealRepeats feeds all three Stabber
// implementations the same sequence of maximal-repeat updates, discovered
// from a real text's LCP-intervals, and checks they answer every stabbing
// query identically. This is the cross-implementation equivalence a
// grammar.Build caller depends on when swapping algorithms.
func TestThreeImplementationsAgreeOnRealRepeats(t *testing.T) {
	idx, err := csa.Build([]byte("abracadabra"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	type repeat struct {
		begin, end int
	}
	var repeats []repeat
	e := lcp.New(idx)
	e.Next() // discard length-0 interval
	for {
		rec, ok := e.Next()
		if !ok {
			break
		}
		if rec.LeftExtension > 1 {
			repeats = append(repeats, repeat{rec.Interval.LB, rec.Interval.RB})
		}
	}
	if len(repeats) == 0 {
		t.Fatal("expected at least one maximal repeat in \"abracadabra\"")
	}

	online := NewOnline()
	fast := NewFast()
	optimal := NewOptimal(idx)

	for i, r := range repeats {
		id := mrcfg.ID(i + 1)
		online.Update(r.begin, r.end, id)
		fast.Update(r.begin, r.end, id)
		optimal.Update(r.begin, r.end, id)
	}

	for i := 0; i < idx.N(); i++ {
		onlineID, onlineOK := online.Stab(i)
		fastID, fastOK := fast.Stab(i)
		optimalID, optimalOK := optimal.Stab(i)
		if onlineOK != fastOK || onlineID != fastID {
			t.Fatalf("Stab(%d): online=(%v,%v) fast=(%v,%v) disagree", i, onlineID, onlineOK, fastID, fastOK)
		}
		if onlineOK != optimalOK || onlineID != optimalID {
			t.Fatalf("Stab(%d): online=(%v,%v) optimal=(%v,%v) disagree", i, onlineID, onlineOK, optimalID, optimalOK)
		}
	}
}
