package main

import (
	"os"

	"github.com/ttpr0/go-transit/comps"
	"github.com/ttpr0/go-transit/graph"
	"github.com/ttpr0/go-transit/parser"
)

//**********************************************************
// routing manager
//**********************************************************

// Owns the transit graph. Components are built from the configured
// osm and gtfs sources on the first run and loaded from disk afterwards.
type RoutingManager struct {
	config Config
	tgraph *graph.TransitGraph
}

func NewRoutingManager(path string, config Config) *RoutingManager {
	build := config.BuildGraphs
	if IsDirectoryEmpty(path) {
		os.MkdirAll(path, 0755)
		build = true
	}
	graph_path := path + "/transit"

	var base *comps.GraphBase
	var weight *comps.DefaultWeighting
	var transit *comps.Transit
	var transit_weight *comps.TransitWeighting
	if build {
		base, weight = parser.ParseGraph(config.Build.Source.OSM, &parser.WalkingDecoder{})
		stops, connections, schedules := parser.ParseGtfs(config.Build.Source.GTFS)
		id_mapping := parser.MapStopsToNodes(base, stops)
		transit = comps.NewTransit(id_mapping, stops, connections)
		transit_weight = comps.NewTransitWeighting(transit)
		for c := 0; c < transit.ConnectionCount(); c++ {
			transit_weight.SetConnectionWeights(int32(c), schedules[c])
		}
		comps.Store(base, graph_path+"-base")
		comps.Store(weight, graph_path+"-default")
		comps.Store(transit, graph_path+"-transit")
		comps.Store(transit_weight, graph_path+"-transit")
	} else {
		base = comps.Load[*comps.GraphBase](graph_path + "-base")
		weight = comps.Load[*comps.DefaultWeighting](graph_path + "-default")
		transit = comps.Load[*comps.Transit](graph_path + "-transit")
		transit_weight = comps.Load[*comps.TransitWeighting](graph_path + "-transit")
	}

	tgraph := graph.BuildTransitGraph(base, weight, transit, transit_weight)
	return &RoutingManager{
		config: config,
		tgraph: tgraph,
	}
}

func (self *RoutingManager) GetTransitGraph() *graph.TransitGraph {
	return self.tgraph
}

func IsDirectoryEmpty(path string) bool {
	files, err := os.ReadDir(path)
	if err != nil {
		return true
	}
	return len(files) == 0
}
