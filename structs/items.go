package structs

import (
	"github.com/ttpr0/go-transit/geo"
)

//*******************************************
// graph structs
//*******************************************

type Node struct {
	Loc geo.Coord
}

type Edge struct {
	NodeA int32
	NodeB int32
}

// Scheduled connection between two stops.
type Connection struct {
	StopA   int32
	StopB   int32
	RouteID int32
}

// One departure/arrival pair of a connection timetable.
type ConnectionWeight struct {
	Departure int32
	Arrival   int32
}
