package graph

import (
	"github.com/ttpr0/go-transit/comps"
	"github.com/ttpr0/go-transit/geo"
	"github.com/ttpr0/go-transit/structs"
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// edge reference
//*******************************************

type EdgeRef struct {
	EdgeID  int32
	OtherID int32
	Type    EdgeType
}

//*******************************************
// traversal interfaces
//*******************************************

// Enumerates directed edges leaving a node, already filtered
// by traversal direction and timetable feasibility.
type IEdgeExplorer interface {
	ForOutgoingEdges(node int32, time int32, callback func(EdgeRef))
}

type ICostFunction interface {
	// Travel time in seconds for traversing edge at the given time.
	TravelTime(edge EdgeRef, time int32) int32
	TransferDelta(edge EdgeRef) int32
	EdgeType(edge EdgeRef) EdgeType
}

type IGeometryAccessor interface {
	// Edge geometry oriented towards the given node (the node is the last point).
	GetEdgeGeom(edge int32, node int32) geo.CoordArray
}

//*******************************************
// transit graph
//*******************************************

// Road network combined with the time-expanded transit network.
// Node ids 0..base.NodeCount() are road nodes, higher ids are
// departure/arrival event nodes. Edge ids follow the same scheme.
type TransitGraph struct {
	base           comps.IGraphBase
	weight         comps.IWeighting
	transit        *comps.Transit
	transit_weight comps.ITransitWeighting
	index          comps.IGraphIndex

	event_nodes   Array[geo.Coord]
	transit_edges Array[TransitEdge]
	topology      structs.AdjacencyArray
}

type TransitEdge struct {
	NodeA     int32
	NodeB     int32
	Type      EdgeType
	Departure int32
	Arrival   int32
}

func (self *TransitGraph) NodeCount() int {
	return self.base.NodeCount() + self.event_nodes.Length()
}
func (self *TransitGraph) EdgeCount() int {
	return self.base.EdgeCount() + self.transit_edges.Length()
}
func (self *TransitGraph) IsRoadNode(node int32) bool {
	return node >= 0 && node < int32(self.base.NodeCount())
}
func (self *TransitGraph) GetNodeGeom(node int32) geo.Coord {
	if self.IsRoadNode(node) {
		return self.base.GetNodeGeom(node)
	}
	return self.event_nodes[node-int32(self.base.NodeCount())]
}
func (self *TransitGraph) GetEdgeType(edge int32) EdgeType {
	if edge < int32(self.base.EdgeCount()) {
		return ROAD
	}
	return self.transit_edges[edge-int32(self.base.EdgeCount())].Type
}
func (self *TransitGraph) GetTransitEdge(edge int32) TransitEdge {
	return self.transit_edges[edge-int32(self.base.EdgeCount())]
}
func (self *TransitGraph) StopCount() int {
	return self.transit.StopCount()
}
func (self *TransitGraph) MapStopToNode(stop int32) int32 {
	return self.transit.MapStopToNode(stop)
}
func (self *TransitGraph) MapNodeToStop(node int32) int32 {
	return self.transit.MapNodeToStop(node)
}

// Snaps to road nodes only, event nodes are never query endpoints.
func (self *TransitGraph) GetClosestNode(point geo.Coord) (int32, bool) {
	return self.index.GetClosestNode(point)
}

func (self *TransitGraph) GetExplorer(dir Direction) *TransitExplorer {
	return &TransitExplorer{
		graph:    self,
		accessor: self.topology.GetAccessor(),
		dir:      dir,
	}
}
