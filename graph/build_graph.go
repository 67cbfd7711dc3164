package graph

import (
	"fmt"

	"github.com/ttpr0/go-transit/comps"
	"github.com/ttpr0/go-transit/geo"
	"github.com/ttpr0/go-transit/structs"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// transit graph builder
//*******************************************

// Expands the scheduled connections into the time-expanded network:
// every timetable entry becomes a departure and an arrival event node,
// linked by board, connection and alight edges.
func BuildTransitGraph(base comps.IGraphBase, weight comps.IWeighting, transit *comps.Transit, transit_weight comps.ITransitWeighting) *TransitGraph {
	road_nodes := base.NodeCount()
	road_edges := base.EdgeCount()

	event_nodes := NewList[geo.Coord](transit.ConnectionCount() * 2)
	transit_edges := NewList[TransitEdge](transit.ConnectionCount() * 3)

	for c := 0; c < transit.ConnectionCount(); c++ {
		conn := transit.GetConnection(int32(c))
		node_a := transit.MapStopToNode(conn.StopA)
		node_b := transit.MapStopToNode(conn.StopB)
		if node_a == -1 || node_b == -1 {
			continue
		}
		loc_a := transit.GetStop(conn.StopA).Loc
		loc_b := transit.GetStop(conn.StopB).Loc
		for _, w := range transit_weight.GetWeights(int32(c)) {
			dep_node := int32(road_nodes + event_nodes.Length())
			event_nodes.Add(loc_a)
			arr_node := int32(road_nodes + event_nodes.Length())
			event_nodes.Add(loc_b)

			transit_edges.Add(TransitEdge{
				NodeA:     node_a,
				NodeB:     dep_node,
				Type:      BOARD,
				Departure: w.Departure,
				Arrival:   w.Departure,
			})
			transit_edges.Add(TransitEdge{
				NodeA:     dep_node,
				NodeB:     arr_node,
				Type:      CONNECTION,
				Departure: w.Departure,
				Arrival:   w.Arrival,
			})
			transit_edges.Add(TransitEdge{
				NodeA:     arr_node,
				NodeB:     node_b,
				Type:      ALIGHT,
				Departure: w.Arrival,
				Arrival:   w.Arrival,
			})
		}
	}

	topology := structs.NewAdjacencyList(road_nodes + event_nodes.Length())
	for e := 0; e < road_edges; e++ {
		edge := base.GetEdge(int32(e))
		topology.AddEdgeEntries(edge.NodeA, edge.NodeB, int32(e))
	}
	for e := 0; e < transit_edges.Length(); e++ {
		edge := transit_edges[e]
		topology.AddEdgeEntries(edge.NodeA, edge.NodeB, int32(road_edges+e))
	}

	slog.Info(fmt.Sprintf("built transit graph: %v nodes (%v events), %v edges (%v transit)",
		road_nodes+event_nodes.Length(), event_nodes.Length(), road_edges+transit_edges.Length(), transit_edges.Length()))

	return &TransitGraph{
		base:           base,
		weight:         weight,
		transit:        transit,
		transit_weight: transit_weight,
		index:          comps.NewGraphIndex(base),
		event_nodes:    Array[geo.Coord](event_nodes),
		transit_edges:  Array[TransitEdge](transit_edges),
		topology:       *structs.AdjacencyListToArray(&topology),
	}
}
