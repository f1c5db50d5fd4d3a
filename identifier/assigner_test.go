package identifier

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/alancleary/mr-cfg/csa"
)

func TestAssignerReservesTerminalRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mrcfg.identifier")
	defer teardown()

	idx, err := csa.Build([]byte("banana"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	a := New(idx)
	if int(a.NextID()) != idx.Sigma() {
		t.Errorf("NextID() = %d, want %d (sigma)", a.NextID(), idx.Sigma())
	}
}

func TestAssignerSamePositionReusesID(t *testing.T) {
	idx, err := csa.Build([]byte("abababab"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	a := New(idx)
	id1 := a.GetID(2, 0)
	id2 := a.GetID(2, 0)
	if id1 != id2 {
		t.Errorf("GetID called twice at the same (lcp,lb) returned different IDs: %v != %v", id1, id2)
	}
}

func TestAssignerRemoveIDFreesPositionForNewID(t *testing.T) {
	idx, err := csa.Build([]byte("abababab"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	a := New(idx)
	id1 := a.GetID(2, 0)
	a.RemoveID(2, 0)
	id2 := a.GetID(2, 0)
	if id1 == id2 {
		t.Error("expected a fresh ID after RemoveID, got the same one back")
	}
}
