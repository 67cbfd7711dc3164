package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ttpr0/go-transit/comps"
	"github.com/ttpr0/go-transit/geo"
	"github.com/ttpr0/go-transit/structs"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// gtfs parser
//*******************************************

type GTFSStop struct {
	StopID string  `csv:"stop_id"`
	Lat    float32 `csv:"stop_lat"`
	Lon    float32 `csv:"stop_lon"`
}

type GTFSTrip struct {
	TripID  string `csv:"trip_id"`
	RouteID string `csv:"route_id"`
}

type GTFSStopTime struct {
	TripID    string `csv:"trip_id"`
	StopID    string `csv:"stop_id"`
	Arrival   string `csv:"arrival_time"`
	Departure string `csv:"departure_time"`
	Sequence  int32  `csv:"stop_sequence"`
}

// Parses stops, connections and timetables from a gtfs directory.
// Every pair of consecutive stops of a trip contributes one
// departure/arrival entry to the connection between the stops.
func ParseGtfs(gtfs_path string) (Array[structs.Node], Array[structs.Connection], Array[[]structs.ConnectionWeight]) {
	stops := NewList[structs.Node](100)
	stop_indices := NewDict[string, int32](100)
	for stop := range ReadCSVFromFile[GTFSStop](gtfs_path+"/stops.txt", ',') {
		stop_indices[stop.StopID] = int32(stops.Length())
		stops.Add(structs.Node{Loc: geo.Coord{stop.Lon, stop.Lat}})
	}

	routes := NewDict[string, int32](100)
	trip_routes := NewDict[string, int32](100)
	for trip := range ReadCSVFromFile[GTFSTrip](gtfs_path+"/trips.txt", ',') {
		if !routes.ContainsKey(trip.RouteID) {
			routes[trip.RouteID] = int32(routes.Length())
		}
		trip_routes[trip.TripID] = routes[trip.RouteID]
	}

	trip_stops := NewDict[string, List[GTFSStopTime]](100)
	for stop_time := range ReadCSVFromFile[GTFSStopTime](gtfs_path+"/stop_times.txt", ',') {
		times := trip_stops[stop_time.TripID]
		times.Add(stop_time)
		trip_stops[stop_time.TripID] = times
	}

	connections := NewList[structs.Connection](100)
	conn_indices := NewDict[Triple[int32, int32, int32], int32](100)
	weights := NewList[[]structs.ConnectionWeight](100)
	for trip_id, times := range trip_stops {
		route_id := trip_routes[trip_id]
		sort.Slice(times, func(i, j int) bool {
			return times[i].Sequence < times[j].Sequence
		})
		for i := 0; i < times.Length()-1; i++ {
			stop_a, ok_a := stop_indices[times[i].StopID]
			stop_b, ok_b := stop_indices[times[i+1].StopID]
			if !ok_a || !ok_b {
				continue
			}
			departure := _ParseGtfsTime(times[i].Departure)
			arrival := _ParseGtfsTime(times[i+1].Arrival)
			if departure < 0 || arrival < 0 {
				continue
			}
			key := MakeTriple(stop_a, stop_b, route_id)
			if !conn_indices.ContainsKey(key) {
				conn_indices[key] = int32(connections.Length())
				connections.Add(structs.Connection{StopA: stop_a, StopB: stop_b, RouteID: route_id})
				weights.Add([]structs.ConnectionWeight{})
			}
			index := conn_indices[key]
			weights[index] = append(weights[index], structs.ConnectionWeight{Departure: departure, Arrival: arrival})
		}
	}

	slog.Info(fmt.Sprintf("parsed gtfs: %v stops, %v connections", stops.Length(), connections.Length()))
	return Array[structs.Node](stops), Array[structs.Connection](connections), Array[[]structs.ConnectionWeight](weights)
}

// "HH:MM:SS" to seconds since midnight, hours may exceed 24.
// Returns -1 for malformed values.
func _ParseGtfsTime(value string) int32 {
	tokens := strings.Split(strings.TrimSpace(value), ":")
	if len(tokens) != 3 {
		return -1
	}
	hours, err1 := strconv.Atoi(tokens[0])
	minutes, err2 := strconv.Atoi(tokens[1])
	seconds, err3 := strconv.Atoi(tokens[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return -1
	}
	return int32(hours*3600 + minutes*60 + seconds)
}

//*******************************************
// stop linking
//*******************************************

// Links every stop to its closest road node.
// Unlinkable stops stay unmapped and are skipped during graph building.
func MapStopsToNodes(base comps.IGraphBase, stops Array[structs.Node]) structs.IDMapping {
	index := comps.NewGraphIndex(base)
	mapping := structs.NewIDMapping(base.NodeCount(), stops.Length())
	linked := 0
	for i := 0; i < stops.Length(); i++ {
		node, ok := index.GetClosestNode(stops[i].Loc)
		if !ok {
			continue
		}
		mapping.Set(node, int32(i))
		linked += 1
	}
	slog.Info(fmt.Sprintf("linked %v/%v stops to road nodes", linked, stops.Length()))
	return mapping
}
