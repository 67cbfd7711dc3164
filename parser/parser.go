package parser

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/ttpr0/go-transit/comps"
	"github.com/ttpr0/go-transit/geo"
	"github.com/ttpr0/go-transit/structs"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// osm parser
//*******************************************

type IOSMDecoder interface {
	IsValidHighway(tags Dict[string, string]) bool
	// travel speed in m/s for a way
	DecodeSpeed(tags Dict[string, string]) float32
	IsOneway(tags Dict[string, string]) bool
}

type TempNode struct {
	Point geo.Coord
	Count int32
}

type OSMEdge struct {
	NodeA  int
	NodeB  int
	Oneway bool
	Speed  float32
	Nodes  List[geo.Coord]
}

// Parses the road network from an osm pbf file.
// Only junction and endpoint nodes become graph nodes,
// intermediate way nodes end up in the edge geometry.
func ParseGraph(pbf_file string, decoder IOSMDecoder) (*comps.GraphBase, *comps.DefaultWeighting) {
	nodes := NewList[geo.Coord](10000)
	edges := NewList[OSMEdge](10000)
	index_mapping := NewDict[int64, int](10000)
	_ParseOsm(pbf_file, decoder, &nodes, &edges, &index_mapping)
	slog.Info(fmt.Sprintf("parsed osm: %v nodes, %v edges", nodes.Length(), edges.Length()))
	return _CreateGraphBase(&nodes, &edges)
}

func _ParseOsm(filename string, decoder IOSMDecoder, nodes *List[geo.Coord], edges *List[OSMEdge], index_mapping *Dict[int64, int]) {
	osm_nodes := NewDict[int64, TempNode](1000)

	file, err := os.Open(filename)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	_InitWayHandler(scanner, decoder, &osm_nodes)
	scanner.Close()
	file.Seek(0, 0)
	scanner = osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	_NodeHandler(scanner, &osm_nodes, nodes, index_mapping)
	scanner.Close()
	file.Seek(0, 0)
	scanner = osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	_WayHandler(scanner, decoder, edges, &osm_nodes, index_mapping)
	scanner.Close()
}

func _CreateGraphBase(osmnodes *List[geo.Coord], osmedges *List[OSMEdge]) (*comps.GraphBase, *comps.DefaultWeighting) {
	nodes := NewArray[structs.Node](osmnodes.Length())
	for i, point := range *osmnodes {
		nodes[i] = structs.Node{Loc: point}
	}

	edges := NewList[structs.Edge](osmedges.Length() * 2)
	edge_geoms := NewList[geo.CoordArray](osmedges.Length() * 2)
	weights := NewList[int32](osmedges.Length() * 2)
	for _, osmedge := range *osmedges {
		// inner geometry without the endpoints
		geom := make(geo.CoordArray, 0, osmedge.Nodes.Length())
		for i := 1; i < osmedge.Nodes.Length()-1; i++ {
			geom = append(geom, osmedge.Nodes[i])
		}
		length := geo.HaversineLength(geo.CoordArray(osmedge.Nodes))
		weight := int32(length / osmedge.Speed)
		if weight < 1 {
			weight = 1
		}

		edges.Add(structs.Edge{NodeA: int32(osmedge.NodeA), NodeB: int32(osmedge.NodeB)})
		edge_geoms.Add(geom)
		weights.Add(weight)
		if !osmedge.Oneway {
			reversed := make(geo.CoordArray, len(geom))
			for i, point := range geom {
				reversed[len(geom)-1-i] = point
			}
			edges.Add(structs.Edge{NodeA: int32(osmedge.NodeB), NodeB: int32(osmedge.NodeA)})
			edge_geoms.Add(reversed)
			weights.Add(weight)
		}
	}

	base := comps.NewGraphBase(nodes, Array[structs.Edge](edges), Array[geo.CoordArray](edge_geoms))
	weighting := comps.NewDefaultWeighting(base)
	for i, w := range weights {
		weighting.SetEdgeWeight(int32(i), w)
	}
	return base, weighting
}

//*******************************************
// osm handler methods
//*******************************************

func _InitWayHandler(scanner *osmpbf.Scanner, decoder IOSMDecoder, osm_nodes *Dict[int64, TempNode]) {
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !decoder.IsValidHighway(tags) {
				continue
			}
			nodes := object.Nodes.NodeIDs()
			l := len(nodes)
			for i := 0; i < l; i++ {
				ndref := nodes[i].FeatureID().Ref()
				node := (*osm_nodes)[ndref]
				node.Count += 1
				(*osm_nodes)[ndref] = node
			}
			// endpoints always become graph nodes
			for _, index := range []int{0, l - 1} {
				ndref := nodes[index].FeatureID().Ref()
				node := (*osm_nodes)[ndref]
				node.Count += 1
				(*osm_nodes)[ndref] = node
			}
		default:
			continue
		}
	}
}

func _NodeHandler(scanner *osmpbf.Scanner, osm_nodes *Dict[int64, TempNode], nodes *List[geo.Coord], index_mapping *Dict[int64, int]) {
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			id := object.FeatureID().Ref()
			if !osm_nodes.ContainsKey(id) {
				continue
			}
			on := osm_nodes.Get(id)
			on.Point = geo.Coord{float32(object.Lon), float32(object.Lat)}
			if on.Count > 1 {
				nodes.Add(on.Point)
				index_mapping.Set(id, nodes.Length()-1)
			}
			osm_nodes.Set(id, on)
		default:
			continue
		}
	}
}

func _WayHandler(scanner *osmpbf.Scanner, decoder IOSMDecoder, edges *List[OSMEdge], osm_nodes *Dict[int64, TempNode], index_mapping *Dict[int64, int]) {
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !decoder.IsValidHighway(tags) {
				continue
			}
			speed := decoder.DecodeSpeed(tags)
			oneway := decoder.IsOneway(tags)

			nodes := object.Nodes.NodeIDs()
			l := len(nodes)
			start := nodes[0].FeatureID().Ref()
			e := OSMEdge{Speed: speed, Oneway: oneway, Nodes: NewList[geo.Coord](4)}
			e.Nodes.Add(osm_nodes.Get(start).Point)
			for i := 1; i < l; i++ {
				curr := nodes[i].FeatureID().Ref()
				on := osm_nodes.Get(curr)
				e.Nodes.Add(on.Point)
				if on.Count > 1 {
					e.NodeA = index_mapping.Get(start)
					e.NodeB = index_mapping.Get(curr)
					edges.Add(e)
					start = curr
					e = OSMEdge{Speed: speed, Oneway: oneway, Nodes: NewList[geo.Coord](4)}
					e.Nodes.Add(on.Point)
				}
			}
		default:
			continue
		}
	}
}
