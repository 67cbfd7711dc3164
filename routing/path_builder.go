package routing

import (
	"fmt"
	"strings"

	"github.com/ttpr0/go-transit/geo"
	"github.com/ttpr0/go-transit/graph"
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// journey segments
//*******************************************

type Segment struct {
	StartTime int32
	EndTime   int32
	Transfers int32
	Geometry  geo.CoordArray
}

//*******************************************
// path builder
//*******************************************

// Rebuilds journey segments from surviving search labels by walking
// their parent chains backwards. Labels ending at the same coordinate
// are deduplicated first, keeping the best arrival (departure when
// built from a backward search).
type PathBuilder struct {
	store     *LabelStore
	geom      graph.IGeometryAccessor
	reverse   bool
	endpoints Dict[geo.Coord, int32]
}

func NewPathBuilder(store *LabelStore, geom graph.IGeometryAccessor, reverse bool) *PathBuilder {
	return &PathBuilder{
		store:     store,
		geom:      geom,
		reverse:   reverse,
		endpoints: NewDict[geo.Coord, int32](100),
	}
}

// Registers a candidate label. Among labels whose last geometry point
// coincides only the one with the earliest time survives (latest for
// backward searches).
func (self *PathBuilder) AddLabel(id int32) {
	label := self.store.Get(id)
	if label.Edge == NO_EDGE {
		return
	}
	geometry := self.geom.GetEdgeGeom(label.Edge, label.Node)
	last := geometry[len(geometry)-1]

	old, ok := self.endpoints[last]
	if !ok {
		self.endpoints[last] = id
		return
	}
	old_label := self.store.Get(old)
	if self.reverse {
		if label.Time > old_label.Time {
			self.endpoints[last] = id
		}
	} else {
		if label.Time < old_label.Time {
			self.endpoints[last] = id
		}
	}
}

// Builds the segments of every retained label chain, deduplicated
// by segment geometry.
func (self *PathBuilder) Build() List[Segment] {
	segments := NewDict[string, Segment](100)
	for _, id := range self.endpoints {
		self.build_segments(id, segments)
	}
	result := NewList[Segment](segments.Length())
	for _, segment := range segments {
		result.Add(segment)
	}
	return result
}

func (self *PathBuilder) build_segments(id int32, segments Dict[string, Segment]) {
	if id == NO_LABEL {
		return
	}
	label := self.store.Get(id)
	if label.Edge == NO_EDGE {
		return
	}

	end_time := label.Time
	start_time := label.Time
	transfers := int32(0)
	points := NewList[geo.Coord](10)

	// Accumulate edge geometries backwards along the chain until at
	// least two distinct points were collected and the chain before
	// the walk is exhausted. Stacked zero-length edges (board/alight)
	// therefore never produce a degenerate single-point segment.
	curr := id
	for {
		l := self.store.Get(curr)
		start_time = l.Time
		transfers += l.Transfers
		geometry := self.geom.GetEdgeGeom(l.Edge, l.Node)
		for i := len(geometry) - 1; i >= 0; i-- {
			point := geometry[i]
			if points.Length() == 0 || points[points.Length()-1] != point {
				points.Add(point)
			}
		}
		curr = l.Parent
		if curr == NO_LABEL {
			break
		}
		parent := self.store.Get(curr)
		if parent.Edge == NO_EDGE {
			break
		}
		if points.Length() >= 2 {
			break
		}
	}

	// restore forward chronological order
	for i, j := 0, points.Length()-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	segment := Segment{
		StartTime: start_time,
		EndTime:   end_time,
		Transfers: transfers,
		Geometry:  geo.CoordArray(points),
	}
	segments[geometry_key(segment.Geometry)] = segment

	self.build_segments(curr, segments)
}

func geometry_key(points geo.CoordArray) string {
	var b strings.Builder
	for _, point := range points {
		fmt.Fprintf(&b, "%v;%v|", point[0], point[1])
	}
	return b.String()
}
