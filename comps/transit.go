package comps

import (
	"os"

	"github.com/ttpr0/go-transit/structs"
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// transit data
//*******************************************

// Stops and scheduled connections of the transit network
// together with the mapping between stops and graph nodes.
type Transit struct {
	id_mapping  structs.IDMapping
	stops       Array[structs.Node]
	connections Array[structs.Connection]
}

func NewTransit(id_mapping structs.IDMapping, stops Array[structs.Node], connections Array[structs.Connection]) *Transit {
	return &Transit{
		id_mapping:  id_mapping,
		stops:       stops,
		connections: connections,
	}
}

func (self *Transit) StopCount() int {
	return self.stops.Length()
}
func (self *Transit) GetStop(stop int32) structs.Node {
	return self.stops[stop]
}
func (self *Transit) ConnectionCount() int {
	return self.connections.Length()
}
func (self *Transit) GetConnection(connection int32) structs.Connection {
	return self.connections[connection]
}
func (self *Transit) MapNodeToStop(node int32) int32 {
	return self.id_mapping.GetStop(node)
}
func (self *Transit) MapStopToNode(stop int32) int32 {
	return self.id_mapping.GetNode(stop)
}

//*******************************************
// io methods
//*******************************************

func (self *Transit) _New() *Transit {
	return &Transit{}
}
func (self *Transit) _Load(path string) {
	*self = Transit{
		id_mapping:  structs.LoadIDMapping(path + "-id_mapping"),
		stops:       ReadArrayFromFile[structs.Node](path + "-stops"),
		connections: ReadArrayFromFile[structs.Connection](path + "-connections"),
	}
}
func (self *Transit) _Store(path string) {
	structs.StoreIDMapping(self.id_mapping, path+"-id_mapping")
	WriteArrayToFile(self.stops, path+"-stops")
	WriteArrayToFile(self.connections, path+"-connections")
}
func (self *Transit) _Remove(path string) {
	os.Remove(path + "-id_mapping-node_to_stop")
	os.Remove(path + "-id_mapping-stop_to_node")
	os.Remove(path + "-stops")
	os.Remove(path + "-connections")
}
