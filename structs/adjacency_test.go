package structs

import (
	"testing"
)

func collect(accessor IAdjAccessor, node int32, forward bool) map[int32]int32 {
	entries := map[int32]int32{}
	accessor.SetBaseNode(node, forward)
	for accessor.Next() {
		entries[accessor.GetEdgeID()] = accessor.GetOtherID()
	}
	return entries
}

func TestAdjacencyAccessor(t *testing.T) {
	adj := NewAdjacencyList(4)
	adj.AddEdgeEntries(0, 1, 0)
	adj.AddEdgeEntries(0, 2, 1)
	adj.AddEdgeEntries(1, 2, 2)
	adj.AddEdgeEntries(3, 0, 3)
	topology := AdjacencyListToArray(&adj)
	accessor := topology.GetAccessor()

	fwd := collect(&accessor, 0, true)
	if len(fwd) != 2 || fwd[0] != 1 || fwd[1] != 2 {
		t.Errorf("forward entries at 0 = %v; want edges 0 and 1", fwd)
	}
	bwd := collect(&accessor, 0, false)
	if len(bwd) != 1 || bwd[3] != 3 {
		t.Errorf("backward entries at 0 = %v; want edge 3", bwd)
	}
	bwd = collect(&accessor, 2, false)
	if len(bwd) != 2 || bwd[1] != 0 || bwd[2] != 1 {
		t.Errorf("backward entries at 2 = %v; want edges 1 and 2", bwd)
	}
	if entries := collect(&accessor, 3, false); len(entries) != 0 {
		t.Errorf("backward entries at 3 = %v; want none", entries)
	}

	if topology.GetDegree(0, true) != 2 || topology.GetDegree(0, false) != 1 {
		t.Errorf("degree at 0 = %v/%v; want 2/1",
			topology.GetDegree(0, true), topology.GetDegree(0, false))
	}
}
