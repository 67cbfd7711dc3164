package main

import (
	"fmt"
	"time"

	"github.com/ttpr0/go-transit/geo"
	"github.com/ttpr0/go-transit/graph"
	"github.com/ttpr0/go-transit/routing"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slog"
)

//**********************************************************
// journey requests
//**********************************************************

type JourneyRequest struct {
	// exactly two [lon, lat] points
	Points [][]float32 `json:"points"`
	// departure time, required arrival time for arrive-by queries
	Departure int32 `json:"departure"`
	// all departures up to this time are acceptable (range query),
	// defaults to the departure time
	RangeEnd int32 `json:"range_end"`
	ArriveBy bool  `json:"arrive_by"`
}

//**********************************************************
// journey handler
//**********************************************************

func HandleJourneyRequest(req JourneyRequest) Result {
	start_timer := time.Now()
	if len(req.Points) != 2 {
		METRICS.Queries.WithLabelValues("invalid").Inc()
		return BadRequest(fmt.Sprintf("exactly 2 points have to be specified, but was: %v", len(req.Points)))
	}
	for _, point := range req.Points {
		if len(point) != 2 {
			METRICS.Queries.WithLabelValues("invalid").Inc()
			return BadRequest(fmt.Sprintf("points have to be [lon, lat] pairs, but was: %v", point))
		}
	}

	g := MANAGER.GetTransitGraph()
	source, source_ok := g.GetClosestNode(geo.Coord{req.Points[0][0], req.Points[0][1]})
	dest, dest_ok := g.GetClosestNode(geo.Coord{req.Points[1][0], req.Points[1][1]})
	if !source_ok || !dest_ok {
		// unsnappable points mean no route, not an error
		METRICS.SnapFailures.Inc()
		METRICS.Queries.WithLabelValues("empty").Inc()
		return OK(NewJourneyResponse(NewList[routing.Segment](0), 0, false))
	}

	var start_node, target_node int32
	var dir graph.Direction
	if req.ArriveBy {
		start_node, target_node = dest, source
		dir = graph.BACKWARD
	} else {
		start_node, target_node = source, dest
		dir = graph.FORWARD
	}
	range_end := req.RangeEnd
	if range_end == 0 {
		range_end = req.Departure
	}

	explorer := g.GetExplorer(dir)
	router := routing.NewTransitRouter(explorer, explorer, req.ArriveBy, MANAGER.config.Services.MaxVisitedNodes)
	targets := NewList[int32](1)
	targets.Add(target_node)
	router.SetTargets(targets)

	slog.Debug(fmt.Sprintf("searching journeys between %v and %v", start_node, target_node))
	router.CalcLabels(start_node, req.Departure, range_end)
	if router.Truncated() {
		METRICS.Truncated.Inc()
	}
	METRICS.VisitedNodes.Observe(float64(router.VisitedNodes()))

	builder := routing.NewPathBuilder(router.Store(), g.GetExplorer(dir), req.ArriveBy)
	for _, id := range router.TargetLabels() {
		builder.AddLabel(id)
	}
	segments := builder.Build()
	slog.Debug(fmt.Sprintf("found %v segments", segments.Length()))

	if segments.Length() == 0 {
		METRICS.Queries.WithLabelValues("empty").Inc()
	} else {
		METRICS.Queries.WithLabelValues("ok").Inc()
	}
	METRICS.QueryDuration.Observe(time.Since(start_timer).Seconds())
	return OK(NewJourneyResponse(segments, router.VisitedNodes(), router.Truncated()))
}
