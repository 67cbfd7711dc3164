package comps

import (
	"github.com/ttpr0/go-transit/geo"
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// graph index interface
//*******************************************

type IGraphIndex interface {
	GetClosestNode(point geo.Coord) (int32, bool)
}

//*******************************************
// graph index
//*******************************************

// max snap distance in degrees
const SNAP_DISTANCE = 0.005

type BaseGraphIndex struct {
	index KDTree[int32]
}

func NewGraphIndex(base IGraphBase) IGraphIndex {
	index := NewKDTree[int32](base.NodeCount())
	for i := 0; i < base.NodeCount(); i++ {
		loc := base.GetNodeGeom(int32(i))
		index.Insert([2]float32(loc), int32(i))
	}
	index.Build()
	return &BaseGraphIndex{
		index: index,
	}
}

func (self *BaseGraphIndex) GetClosestNode(point geo.Coord) (int32, bool) {
	return self.index.GetClosest([2]float32(point), SNAP_DISTANCE)
}
