package comps

import (
	"os"
	"sort"

	"github.com/ttpr0/go-transit/structs"
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// weighting interfaces
//*******************************************

type IWeighting interface {
	GetEdgeWeight(edge int32) int32
}

type ITransitWeighting interface {
	// Earliest departure at or after the given time.
	GetNextWeight(connection int32, from int32) Optional[structs.ConnectionWeight]
	// Latest arrival at or before the given time.
	GetPrevWeight(connection int32, to int32) Optional[structs.ConnectionWeight]
	GetWeights(connection int32) []structs.ConnectionWeight
}

//*******************************************
// default weighting
//*******************************************

type DefaultWeighting struct {
	edge_weights Array[int32]
}

func NewDefaultWeighting(base IGraphBase) *DefaultWeighting {
	return &DefaultWeighting{
		edge_weights: NewArray[int32](base.EdgeCount()),
	}
}

func (self *DefaultWeighting) GetEdgeWeight(edge int32) int32 {
	return self.edge_weights[edge]
}
func (self *DefaultWeighting) SetEdgeWeight(edge int32, weight int32) {
	self.edge_weights[edge] = weight
}

func (self *DefaultWeighting) _New() *DefaultWeighting {
	return &DefaultWeighting{}
}
func (self *DefaultWeighting) _Load(path string) {
	*self = DefaultWeighting{
		edge_weights: ReadArrayFromFile[int32](path + "-weight"),
	}
}
func (self *DefaultWeighting) _Store(path string) {
	WriteArrayToFile(self.edge_weights, path+"-weight")
}
func (self *DefaultWeighting) _Remove(path string) {
	os.Remove(path + "-weight")
}

//*******************************************
// transit weighting
//*******************************************

var _ ITransitWeighting = &TransitWeighting{}

// Timetables per connection, sorted by departure time.
type TransitWeighting struct {
	weights Array[[]structs.ConnectionWeight]
}

func NewTransitWeighting(transit *Transit) *TransitWeighting {
	return &TransitWeighting{
		weights: NewArray[[]structs.ConnectionWeight](transit.ConnectionCount()),
	}
}

func (self *TransitWeighting) SetConnectionWeights(connection int32, weights []structs.ConnectionWeight) {
	sort.Slice(weights, func(i, j int) bool {
		return weights[i].Departure < weights[j].Departure
	})
	self.weights[connection] = weights
}

func (self *TransitWeighting) GetNextWeight(connection int32, from int32) Optional[structs.ConnectionWeight] {
	weights := self.weights[connection]
	index := sort.Search(len(weights), func(i int) bool {
		return weights[i].Departure >= from
	})
	if index == len(weights) {
		return None[structs.ConnectionWeight]()
	}
	return Some(weights[index])
}

func (self *TransitWeighting) GetPrevWeight(connection int32, to int32) Optional[structs.ConnectionWeight] {
	weights := self.weights[connection]
	best := None[structs.ConnectionWeight]()
	for _, w := range weights {
		if w.Arrival <= to && (!best.HasValue() || w.Arrival > best.Value.Arrival) {
			best = Some(w)
		}
	}
	return best
}

func (self *TransitWeighting) GetWeights(connection int32) []structs.ConnectionWeight {
	return self.weights[connection]
}

//*******************************************
// io methods
//*******************************************

func (self *TransitWeighting) _New() *TransitWeighting {
	return &TransitWeighting{}
}
func (self *TransitWeighting) _Load(path string) {
	data, err := os.ReadFile(path + "-transit_weight")
	if err != nil {
		panic("file not found: " + path + "-transit_weight")
	}
	reader := NewBufferReader(data)
	count := Read[int32](reader)
	weights := NewArray[[]structs.ConnectionWeight](int(count))
	for i := 0; i < int(count); i++ {
		size := Read[int32](reader)
		conns := make([]structs.ConnectionWeight, size)
		for j := 0; j < int(size); j++ {
			conns[j] = Read[structs.ConnectionWeight](reader)
		}
		weights[i] = conns
	}
	*self = TransitWeighting{
		weights: weights,
	}
}
func (self *TransitWeighting) _Store(path string) {
	writer := NewBufferWriter()
	Write(writer, int32(self.weights.Length()))
	for _, conns := range self.weights {
		Write(writer, int32(len(conns)))
		for _, w := range conns {
			Write(writer, w)
		}
	}
	f, _ := os.Create(path + "-transit_weight")
	defer f.Close()
	f.Write(writer.Bytes())
}
func (self *TransitWeighting) _Remove(path string) {
	os.Remove(path + "-transit_weight")
}
