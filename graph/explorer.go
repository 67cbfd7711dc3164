package graph

import (
	"github.com/ttpr0/go-transit/geo"
	"github.com/ttpr0/go-transit/structs"
)

//*******************************************
// transit graph explorer
//*******************************************

var _ IEdgeExplorer = &TransitExplorer{}
var _ ICostFunction = &TransitExplorer{}
var _ IGeometryAccessor = &TransitExplorer{}

// Direction-bound view onto a TransitGraph.
// Not thread safe, use one explorer per query.
type TransitExplorer struct {
	graph    *TransitGraph
	accessor structs.AdjArrayAccessor
	dir      Direction
}

func (self *TransitExplorer) ForOutgoingEdges(node int32, time int32, callback func(EdgeRef)) {
	forward := self.dir == FORWARD
	self.accessor.SetBaseNode(node, forward)
	for self.accessor.Next() {
		edge_id := self.accessor.GetEdgeID()
		other_id := self.accessor.GetOtherID()
		typ := self.graph.GetEdgeType(edge_id)
		// missed departures (forward) and future arrivals (backward) are not traversable
		if forward && typ == BOARD && self.graph.GetTransitEdge(edge_id).Departure < time {
			continue
		}
		if !forward && typ == ALIGHT && self.graph.GetTransitEdge(edge_id).Arrival > time {
			continue
		}
		callback(EdgeRef{
			EdgeID:  edge_id,
			OtherID: other_id,
			Type:    typ,
		})
	}
}

func (self *TransitExplorer) TravelTime(edge EdgeRef, time int32) int32 {
	switch edge.Type {
	case ROAD:
		return self.graph.weight.GetEdgeWeight(edge.EdgeID)
	case BOARD:
		if self.dir == FORWARD {
			// waiting for the departure
			return self.graph.GetTransitEdge(edge.EdgeID).Departure - time
		}
		return 0
	case CONNECTION:
		if self.dir == FORWARD {
			return self.graph.GetTransitEdge(edge.EdgeID).Arrival - time
		}
		return time - self.graph.GetTransitEdge(edge.EdgeID).Departure
	case ALIGHT:
		if self.dir == FORWARD {
			return 0
		}
		// waiting after the arrival (walking backwards in time)
		return time - self.graph.GetTransitEdge(edge.EdgeID).Arrival
	}
	return 0
}

func (self *TransitExplorer) TransferDelta(edge EdgeRef) int32 {
	if edge.Type == BOARD {
		return 1
	}
	return 0
}

func (self *TransitExplorer) EdgeType(edge EdgeRef) EdgeType {
	return edge.Type
}

func (self *TransitExplorer) GetEdgeGeom(edge int32, node int32) geo.CoordArray {
	if edge < int32(self.graph.base.EdgeCount()) {
		e := self.graph.base.GetEdge(edge)
		geom := self.graph.base.GetEdgeGeom(edge)
		if node == e.NodeA {
			reversed := make(geo.CoordArray, len(geom))
			for i, point := range geom {
				reversed[len(geom)-1-i] = point
			}
			return reversed
		}
		return geom
	}
	te := self.graph.GetTransitEdge(edge)
	switch te.Type {
	case CONNECTION:
		a := self.graph.GetNodeGeom(te.NodeA)
		b := self.graph.GetNodeGeom(te.NodeB)
		if node == te.NodeA {
			return geo.CoordArray{b, a}
		}
		return geo.CoordArray{a, b}
	default:
		// board/alight edges are zero length
		return geo.CoordArray{self.graph.GetNodeGeom(node)}
	}
}
