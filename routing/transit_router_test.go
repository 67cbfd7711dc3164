package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-transit/geo"
	"github.com/ttpr0/go-transit/graph"
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// in-memory test network
//*******************************************

type testEdge struct {
	From      int32
	To        int32
	Type      graph.EdgeType
	Weight    int32
	Departure int32
	Arrival   int32
	Transfers int32
	Geometry  geo.CoordArray
}

// Directed edge list implementing the explorer, cost-function and
// geometry contracts without a full graph build.
type testNetwork struct {
	edges   []testEdge
	reverse bool
}

var _ graph.IEdgeExplorer = &testNetwork{}
var _ graph.ICostFunction = &testNetwork{}
var _ graph.IGeometryAccessor = &testNetwork{}

func (self *testNetwork) ForOutgoingEdges(node int32, time int32, callback func(graph.EdgeRef)) {
	for i, edge := range self.edges {
		if self.reverse {
			if edge.To != node {
				continue
			}
			if edge.Type == graph.ALIGHT && edge.Arrival > time {
				continue
			}
			callback(graph.EdgeRef{EdgeID: int32(i), OtherID: edge.From, Type: edge.Type})
		} else {
			if edge.From != node {
				continue
			}
			if edge.Type == graph.BOARD && edge.Departure < time {
				continue
			}
			callback(graph.EdgeRef{EdgeID: int32(i), OtherID: edge.To, Type: edge.Type})
		}
	}
}

func (self *testNetwork) TravelTime(edge graph.EdgeRef, time int32) int32 {
	e := self.edges[edge.EdgeID]
	switch e.Type {
	case graph.ROAD:
		return e.Weight
	case graph.BOARD:
		if self.reverse {
			return 0
		}
		return e.Departure - time
	case graph.CONNECTION:
		if self.reverse {
			return time - e.Departure
		}
		return e.Arrival - time
	case graph.ALIGHT:
		if self.reverse {
			return time - e.Arrival
		}
		return 0
	}
	return 0
}

func (self *testNetwork) TransferDelta(edge graph.EdgeRef) int32 {
	return self.edges[edge.EdgeID].Transfers
}

func (self *testNetwork) EdgeType(edge graph.EdgeRef) graph.EdgeType {
	return self.edges[edge.EdgeID].Type
}

func (self *testNetwork) GetEdgeGeom(edge int32, node int32) geo.CoordArray {
	e := self.edges[edge]
	if node == e.From {
		reversed := make(geo.CoordArray, len(e.Geometry))
		for i, point := range e.Geometry {
			reversed[len(e.Geometry)-1-i] = point
		}
		return reversed
	}
	return e.Geometry
}

func road(from, to, weight int32) testEdge {
	return testEdge{From: from, To: to, Type: graph.ROAD, Weight: weight}
}

func labels_at(router *TransitRouter, ids List[int32], node int32) []Label {
	result := make([]Label, 0)
	for _, id := range ids {
		l := router.GetLabel(id)
		if l.Node == node {
			result = append(result, l)
		}
	}
	return result
}

//*******************************************
// router tests
//*******************************************

func TestSimpleChain(t *testing.T) {
	network := &testNetwork{edges: []testEdge{
		road(0, 1, 100),
		road(1, 2, 50),
	}}
	router := NewTransitRouter(network, network, false, 1000)
	ids := router.CalcLabels(0, 100, 100)

	at_target := labels_at(router, ids, 2)
	require.Len(t, at_target, 1)
	assert.Equal(t, int32(250), at_target[0].Time)
	assert.Equal(t, int32(0), at_target[0].Transfers)
	assert.Equal(t, MAX_TIME, at_target[0].Departure)
	assert.False(t, router.Truncated())
}

func TestForwardBackwardSymmetry(t *testing.T) {
	edges := []testEdge{
		road(0, 1, 100),
		road(1, 2, 50),
		road(0, 2, 200),
	}

	forward := &testNetwork{edges: edges}
	fwd_router := NewTransitRouter(forward, forward, false, 1000)
	fwd_ids := fwd_router.CalcLabels(0, 100, 100)
	fwd_labels := labels_at(fwd_router, fwd_ids, 2)
	require.Len(t, fwd_labels, 1)
	assert.Equal(t, int32(250), fwd_labels[0].Time)

	backward := &testNetwork{edges: edges, reverse: true}
	bwd_router := NewTransitRouter(backward, backward, true, 1000)
	bwd_ids := bwd_router.CalcLabels(2, 250, 250)
	bwd_labels := labels_at(bwd_router, bwd_ids, 0)
	require.Len(t, bwd_labels, 1)
	assert.Equal(t, int32(100), bwd_labels[0].Time)
	assert.Equal(t, fwd_labels[0].Transfers, bwd_labels[0].Transfers)
}

func TestTransitSymmetry(t *testing.T) {
	edges := []testEdge{
		{From: 0, To: 10, Type: graph.BOARD, Departure: 100, Arrival: 100, Transfers: 1},
		{From: 10, To: 11, Type: graph.CONNECTION, Departure: 100, Arrival: 200},
		{From: 11, To: 1, Type: graph.ALIGHT, Departure: 200, Arrival: 200},
	}

	forward := &testNetwork{edges: edges}
	fwd_router := NewTransitRouter(forward, forward, false, 1000)
	fwd_ids := fwd_router.CalcLabels(0, 0, 0)
	fwd_labels := labels_at(fwd_router, fwd_ids, 1)
	require.Len(t, fwd_labels, 1)
	assert.Equal(t, int32(200), fwd_labels[0].Time)
	assert.Equal(t, int32(1), fwd_labels[0].Transfers)
	// first boarding froze the departure
	assert.Equal(t, int32(100), fwd_labels[0].Departure)

	// arriving by the forward arrival time the latest departure equals
	// the forward boarding time
	backward := &testNetwork{edges: edges, reverse: true}
	bwd_router := NewTransitRouter(backward, backward, true, 1000)
	bwd_ids := bwd_router.CalcLabels(1, 200, 200)
	bwd_labels := labels_at(bwd_router, bwd_ids, 0)
	require.Len(t, bwd_labels, 1)
	assert.Equal(t, int32(100), bwd_labels[0].Time)
	assert.Equal(t, fwd_labels[0].Transfers, bwd_labels[0].Transfers)
	// backwards the last alighting freezes instead
	assert.Equal(t, int32(200), bwd_labels[0].Departure)
}

func TestMissedDeparturesFiltered(t *testing.T) {
	network := &testNetwork{edges: []testEdge{
		{From: 0, To: 10, Type: graph.BOARD, Departure: 100, Arrival: 100, Transfers: 1},
		{From: 10, To: 11, Type: graph.CONNECTION, Departure: 100, Arrival: 200},
		{From: 11, To: 1, Type: graph.ALIGHT, Departure: 200, Arrival: 200},
	}}
	router := NewTransitRouter(network, network, false, 1000)
	// starting after the only departure leaves the stop unreachable
	ids := router.CalcLabels(0, 150, 150)
	assert.Len(t, labels_at(router, ids, 1), 0)
}

// Two boardings towards the same destination, one departing early with
// fewer transfers, one departing late but arriving earlier with more
// transfers. Within the range neither dominates the other.
func TestRangeQueryRetention(t *testing.T) {
	network := &testNetwork{edges: []testEdge{
		{From: 0, To: 10, Type: graph.BOARD, Departure: 100, Arrival: 100, Transfers: 0},
		{From: 10, To: 11, Type: graph.CONNECTION, Departure: 100, Arrival: 500},
		{From: 11, To: 9, Type: graph.ALIGHT, Departure: 500, Arrival: 500},
		{From: 0, To: 12, Type: graph.BOARD, Departure: 300, Arrival: 300, Transfers: 2},
		{From: 12, To: 13, Type: graph.CONNECTION, Departure: 300, Arrival: 450},
		{From: 13, To: 9, Type: graph.ALIGHT, Departure: 450, Arrival: 450},
	}}
	router := NewTransitRouter(network, network, false, 1000)
	ids := router.CalcLabels(0, 0, 1000)

	at_target := labels_at(router, ids, 9)
	require.Len(t, at_target, 2)

	order := ForwardOrdering{}
	for _, a := range at_target {
		for _, b := range at_target {
			assert.False(t, order.Dominates(a, b) && order.Dominates(b, a))
		}
	}

	times := NewDict[int32, Label](2)
	for _, l := range at_target {
		times[l.Time] = l
	}
	early, ok := times[500]
	require.True(t, ok)
	assert.Equal(t, int32(0), early.Transfers)
	assert.Equal(t, int32(100), early.Departure)
	late, ok := times[450]
	require.True(t, ok)
	assert.Equal(t, int32(2), late.Transfers)
	assert.Equal(t, int32(300), late.Departure)
}

func TestFrontierOptimality(t *testing.T) {
	network := &testNetwork{edges: []testEdge{
		road(0, 1, 100),
		road(0, 2, 50),
		road(2, 1, 50),
		road(1, 3, 100),
		{From: 0, To: 10, Type: graph.BOARD, Departure: 50, Arrival: 50, Transfers: 1},
		{From: 10, To: 11, Type: graph.CONNECTION, Departure: 50, Arrival: 120},
		{From: 11, To: 3, Type: graph.ALIGHT, Departure: 120, Arrival: 120},
		{From: 0, To: 12, Type: graph.BOARD, Departure: 150, Arrival: 150, Transfers: 1},
		{From: 12, To: 13, Type: graph.CONNECTION, Departure: 150, Arrival: 180},
		{From: 13, To: 3, Type: graph.ALIGHT, Departure: 180, Arrival: 180},
	}}
	router := NewTransitRouter(network, network, false, 1000)
	ids := router.CalcLabels(0, 0, 1000)

	order := ForwardOrdering{}
	by_node := NewDict[int32, List[Label]](10)
	for _, id := range ids {
		l := router.GetLabel(id)
		entries := by_node[l.Node]
		entries.Add(l)
		by_node[l.Node] = entries
	}
	for node, entries := range by_node {
		for i, a := range entries {
			for j, b := range entries {
				if i == j {
					continue
				}
				assert.False(t, order.Dominates(a, b), "node %v: %v dominates %v", node, a, b)
			}
		}
	}
}

func TestVisitedNodeBudget(t *testing.T) {
	edges := make([]testEdge, 0)
	for i := int32(0); i < 20; i++ {
		edges = append(edges, road(i, i+1, 10))
	}
	network := &testNetwork{edges: edges}

	full_router := NewTransitRouter(network, network, false, 1000)
	full_ids := full_router.CalcLabels(0, 0, 0)
	require.False(t, full_router.Truncated())
	full_labels := NewDict[Label, bool](full_ids.Length())
	for _, id := range full_ids {
		full_labels[full_router.GetLabel(id)] = true
	}

	capped_router := NewTransitRouter(network, network, false, 5)
	capped_ids := capped_router.CalcLabels(0, 0, 0)
	assert.True(t, capped_router.Truncated())
	assert.Equal(t, int32(5), capped_router.VisitedNodes())
	assert.Less(t, capped_ids.Length(), full_ids.Length())
	for _, id := range capped_ids {
		l := capped_router.GetLabel(id)
		l.Parent = NO_LABEL
		found := false
		for other := range full_labels {
			other.Parent = NO_LABEL
			if l == other {
				found = true
				break
			}
		}
		assert.True(t, found, "capped label %v missing from full frontier", l)
	}
}

func TestMultiTargetPruning(t *testing.T) {
	network := &testNetwork{edges: []testEdge{
		road(0, 1, 100),
		road(1, 2, 100),
		road(0, 2, 300),
	}}
	router := NewTransitRouter(network, network, false, 1000)
	targets := NewList[int32](1)
	targets.Add(2)
	router.SetTargets(targets)
	router.CalcLabels(0, 0, 0)

	target_labels := router.TargetLabels()
	require.Equal(t, 1, target_labels.Length())
	l := router.GetLabel(target_labels[0])
	assert.Equal(t, int32(2), l.Node)
	assert.Equal(t, int32(200), l.Time)
}

// A target label dominated by a label at another target has to leave
// the queue as well, otherwise it keeps getting expanded.
func TestDominatedTargetNotExpanded(t *testing.T) {
	network := &testNetwork{edges: []testEdge{
		road(0, 2, 200),
		road(0, 3, 100),
		road(2, 4, 10),
	}}
	router := NewTransitRouter(network, network, false, 1000)
	targets := NewList[int32](2)
	targets.Add(2)
	targets.Add(3)
	router.SetTargets(targets)
	ids := router.CalcLabels(0, 0, 0)

	target_labels := router.TargetLabels()
	require.Equal(t, 1, target_labels.Length())
	l := router.GetLabel(target_labels[0])
	assert.Equal(t, int32(3), l.Node)
	assert.Equal(t, int32(100), l.Time)

	// the dominated label at node 2 must not have been expanded
	assert.Empty(t, labels_at(router, ids, 4))
}
