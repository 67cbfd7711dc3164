package main

import (
	"net/http"
	"testing"

	"github.com/ttpr0/go-transit/comps"
	"github.com/ttpr0/go-transit/geo"
	"github.com/ttpr0/go-transit/graph"
	"github.com/ttpr0/go-transit/structs"
	. "github.com/ttpr0/go-transit/util"
)

// Three road nodes in a row with a scheduled connection from the
// middle node to the last one.
func setup_test_manager() {
	nodes := NewArray[structs.Node](3)
	nodes[0] = structs.Node{Loc: geo.Coord{13.00, 52.0}}
	nodes[1] = structs.Node{Loc: geo.Coord{13.01, 52.0}}
	nodes[2] = structs.Node{Loc: geo.Coord{13.02, 52.0}}
	edges := NewArray[structs.Edge](4)
	edges[0] = structs.Edge{NodeA: 0, NodeB: 1}
	edges[1] = structs.Edge{NodeA: 1, NodeB: 2}
	edges[2] = structs.Edge{NodeA: 1, NodeB: 0}
	edges[3] = structs.Edge{NodeA: 2, NodeB: 1}
	base := comps.NewGraphBase(nodes, edges, NewArray[geo.CoordArray](4))

	weight := comps.NewDefaultWeighting(base)
	weight.SetEdgeWeight(0, 60)
	weight.SetEdgeWeight(1, 30)
	weight.SetEdgeWeight(2, 60)
	weight.SetEdgeWeight(3, 30)

	stops := NewArray[structs.Node](2)
	stops[0] = structs.Node{Loc: nodes[1].Loc}
	stops[1] = structs.Node{Loc: nodes[2].Loc}
	mapping := structs.NewIDMapping(base.NodeCount(), stops.Length())
	mapping.Set(1, 0)
	mapping.Set(2, 1)
	connections := NewArray[structs.Connection](1)
	connections[0] = structs.Connection{StopA: 0, StopB: 1, RouteID: 0}
	transit := comps.NewTransit(mapping, stops, connections)

	transit_weight := comps.NewTransitWeighting(transit)
	transit_weight.SetConnectionWeights(0, []structs.ConnectionWeight{
		{Departure: 100, Arrival: 200},
	})

	config := Config{}
	config.Services.MaxVisitedNodes = 1000
	MANAGER = &RoutingManager{
		config: config,
		tgraph: graph.BuildTransitGraph(base, weight, transit, transit_weight),
	}
	METRICS = NewMetricsCollector()
}

func TestHandleJourneyRequest(t *testing.T) {
	setup_test_manager()

	res := HandleJourneyRequest(JourneyRequest{
		Points:    [][]float32{{13.0001, 52.0}, {13.0201, 52.0}},
		Departure: 0,
	})
	if res.status != http.StatusOK {
		t.Fatalf("status = %v; want 200", res.status)
	}
	resp := res.result.(JourneyResponse)
	if resp.Type != "FeatureCollection" {
		t.Errorf("Type = %v; want FeatureCollection", resp.Type)
	}
	// walking beats the late connection, one segment per road edge
	if resp.Features.Length() != 2 {
		t.Errorf("features = %v; want 2", resp.Features.Length())
	}
	if resp.Truncated {
		t.Errorf("search should not be truncated")
	}
	if resp.VisitedNodes <= 0 {
		t.Errorf("VisitedNodes = %v; want > 0", resp.VisitedNodes)
	}
}

func TestHandleJourneyRequestArriveBy(t *testing.T) {
	setup_test_manager()

	res := HandleJourneyRequest(JourneyRequest{
		Points:    [][]float32{{13.0001, 52.0}, {13.0201, 52.0}},
		Departure: 90,
		ArriveBy:  true,
	})
	if res.status != http.StatusOK {
		t.Fatalf("status = %v; want 200", res.status)
	}
	resp := res.result.(JourneyResponse)
	if resp.Features.Length() != 2 {
		t.Errorf("features = %v; want 2", resp.Features.Length())
	}
}

func TestHandleJourneyRequestInvalid(t *testing.T) {
	setup_test_manager()

	res := HandleJourneyRequest(JourneyRequest{
		Points:    [][]float32{{13.0001, 52.0}},
		Departure: 0,
	})
	if res.status != http.StatusBadRequest {
		t.Errorf("status = %v; want 400", res.status)
	}

	res = HandleJourneyRequest(JourneyRequest{
		Points:    [][]float32{{13.0001, 52.0}, {13.02}},
		Departure: 0,
	})
	if res.status != http.StatusBadRequest {
		t.Errorf("status = %v; want 400", res.status)
	}
}

func TestHandleJourneyRequestUnsnappable(t *testing.T) {
	setup_test_manager()

	res := HandleJourneyRequest(JourneyRequest{
		Points:    [][]float32{{13.0001, 52.0}, {14.0, 53.0}},
		Departure: 0,
	})
	// no route is an empty result, not an error
	if res.status != http.StatusOK {
		t.Fatalf("status = %v; want 200", res.status)
	}
	resp := res.result.(JourneyResponse)
	if resp.Features.Length() != 0 {
		t.Errorf("features = %v; want 0", resp.Features.Length())
	}
}
