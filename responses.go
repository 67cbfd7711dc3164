package main

import (
	"github.com/ttpr0/go-transit/geo"
	"github.com/ttpr0/go-transit/routing"
	. "github.com/ttpr0/go-transit/util"
)

//**********************************************************
// responses
//**********************************************************

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

type JourneyResponse struct {
	Type         string            `json:"type"`
	Features     List[geo.Feature] `json:"features"`
	VisitedNodes int32             `json:"visited_nodes"`
	Truncated    bool              `json:"truncated"`
}

func NewJourneyResponse(segments List[routing.Segment], visited_nodes int32, truncated bool) JourneyResponse {
	features := NewList[geo.Feature](segments.Length())
	for _, segment := range segments {
		geom := geo.NewLineString(segment.Geometry)
		props := NewDict[string, any](3)
		props["start_time"] = segment.StartTime
		props["end_time"] = segment.EndTime
		props["transfers"] = segment.Transfers
		features.Add(geo.NewFeature(&geom, props))
	}
	return JourneyResponse{
		Type:         "FeatureCollection",
		Features:     features,
		VisitedNodes: visited_nodes,
		Truncated:    truncated,
	}
}
