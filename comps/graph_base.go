package comps

import (
	"os"

	"github.com/ttpr0/go-transit/geo"
	"github.com/ttpr0/go-transit/structs"
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// graph base interface
//*******************************************

type IGraphBase interface {
	NodeCount() int
	EdgeCount() int
	IsNode(node int32) bool
	GetNode(node int32) structs.Node
	IsEdge(edge int32) bool
	GetEdge(edge int32) structs.Edge
	GetNodeGeom(node int32) geo.Coord
	GetEdgeGeom(edge int32) geo.CoordArray
	GetAccessor() structs.IAdjAccessor
}

//*******************************************
// graph base
//*******************************************

var _ IGraphBase = &GraphBase{}

type GraphBase struct {
	nodes      Array[structs.Node]
	edges      Array[structs.Edge]
	edge_geoms Array[geo.CoordArray]
	topology   structs.AdjacencyArray
}

func NewGraphBase(nodes Array[structs.Node], edges Array[structs.Edge], edge_geoms Array[geo.CoordArray]) *GraphBase {
	topology := structs.NewAdjacencyList(nodes.Length())
	for i := 0; i < edges.Length(); i++ {
		edge := edges[i]
		topology.AddEdgeEntries(edge.NodeA, edge.NodeB, int32(i))
	}
	return &GraphBase{
		nodes:      nodes,
		edges:      edges,
		edge_geoms: edge_geoms,
		topology:   *structs.AdjacencyListToArray(&topology),
	}
}

func (self *GraphBase) NodeCount() int {
	return self.nodes.Length()
}
func (self *GraphBase) EdgeCount() int {
	return self.edges.Length()
}
func (self *GraphBase) IsNode(node int32) bool {
	return node >= 0 && node < int32(self.nodes.Length())
}
func (self *GraphBase) GetNode(node int32) structs.Node {
	return self.nodes[node]
}
func (self *GraphBase) IsEdge(edge int32) bool {
	return edge >= 0 && edge < int32(self.edges.Length())
}
func (self *GraphBase) GetEdge(edge int32) structs.Edge {
	return self.edges[edge]
}
func (self *GraphBase) GetNodeGeom(node int32) geo.Coord {
	return self.nodes[node].Loc
}

// Returns the full edge geometry oriented NodeA -> NodeB including both endpoints.
func (self *GraphBase) GetEdgeGeom(edge int32) geo.CoordArray {
	e := self.edges[edge]
	geom := self.edge_geoms[edge]
	points := make(geo.CoordArray, 0, len(geom)+2)
	points = append(points, self.nodes[e.NodeA].Loc)
	points = append(points, geom...)
	points = append(points, self.nodes[e.NodeB].Loc)
	return points
}
func (self *GraphBase) GetAccessor() structs.IAdjAccessor {
	accessor := self.topology.GetAccessor()
	return &accessor
}

//*******************************************
// io methods
//*******************************************

func (self *GraphBase) _New() *GraphBase {
	return &GraphBase{}
}
func (self *GraphBase) _Load(path string) {
	nodes := ReadArrayFromFile[structs.Node](path + "-nodes")
	edges := ReadArrayFromFile[structs.Edge](path + "-edges")
	edge_geoms := _LoadCoordArrays(path + "-geoms")
	topology := structs.LoadAdjacency(path + "-graph")

	*self = GraphBase{
		nodes:      nodes,
		edges:      edges,
		edge_geoms: edge_geoms,
		topology:   *topology,
	}
}
func (self *GraphBase) _Store(path string) {
	WriteArrayToFile(self.nodes, path+"-nodes")
	WriteArrayToFile(self.edges, path+"-edges")
	_StoreCoordArrays(self.edge_geoms, path+"-geoms")
	structs.StoreAdjacency(&self.topology, path+"-graph")
}
func (self *GraphBase) _Remove(path string) {
	os.Remove(path + "-nodes")
	os.Remove(path + "-edges")
	os.Remove(path + "-geoms")
	os.Remove(path + "-graph")
}

// Variable length geometries are stored flattened with a length prefix per entry.
func _StoreCoordArrays(geoms Array[geo.CoordArray], file string) {
	writer := NewBufferWriter()
	Write(writer, int32(geoms.Length()))
	for _, geom := range geoms {
		Write(writer, int32(len(geom)))
		for _, point := range geom {
			Write(writer, point)
		}
	}
	f, _ := os.Create(file)
	defer f.Close()
	f.Write(writer.Bytes())
}

func _LoadCoordArrays(file string) Array[geo.CoordArray] {
	data, err := os.ReadFile(file)
	if err != nil {
		panic("file not found: " + file)
	}
	reader := NewBufferReader(data)
	count := Read[int32](reader)
	geoms := NewArray[geo.CoordArray](int(count))
	for i := 0; i < int(count); i++ {
		size := Read[int32](reader)
		geom := make(geo.CoordArray, size)
		for j := 0; j < int(size); j++ {
			geom[j] = Read[geo.Coord](reader)
		}
		geoms[i] = geom
	}
	return geoms
}
