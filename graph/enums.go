package graph

//*******************************************
// enums
//*******************************************

type Direction byte

const (
	BACKWARD Direction = 0
	FORWARD  Direction = 1
)

type EdgeType byte

const (
	// plain road/footpath edge
	ROAD EdgeType = 0
	// entry into the time-expanded network (stop node -> departure event)
	BOARD EdgeType = 1
	// scheduled ride (departure event -> arrival event)
	CONNECTION EdgeType = 2
	// exit out of the time-expanded network (arrival event -> stop node)
	ALIGHT EdgeType = 3
)
