package structs

import (
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// id mapping
//*******************************************

// Bidirectional mapping between graph nodes and transit stops.
// Unmapped ids resolve to -1.
type IDMapping struct {
	node_to_stop Array[int32]
	stop_to_node Array[int32]
}

func NewIDMapping(node_count, stop_count int) IDMapping {
	node_to_stop := NewArray[int32](node_count)
	stop_to_node := NewArray[int32](stop_count)
	for i := range node_to_stop {
		node_to_stop[i] = -1
	}
	for i := range stop_to_node {
		stop_to_node[i] = -1
	}
	return IDMapping{
		node_to_stop: node_to_stop,
		stop_to_node: stop_to_node,
	}
}

func (self *IDMapping) Set(node, stop int32) {
	self.node_to_stop[node] = stop
	self.stop_to_node[stop] = node
}
func (self *IDMapping) GetStop(node int32) int32 {
	if node < 0 || int(node) >= self.node_to_stop.Length() {
		return -1
	}
	return self.node_to_stop[node]
}
func (self *IDMapping) GetNode(stop int32) int32 {
	if stop < 0 || int(stop) >= self.stop_to_node.Length() {
		return -1
	}
	return self.stop_to_node[stop]
}

func StoreIDMapping(mapping IDMapping, path string) {
	WriteArrayToFile(mapping.node_to_stop, path+"-node_to_stop")
	WriteArrayToFile(mapping.stop_to_node, path+"-stop_to_node")
}

func LoadIDMapping(path string) IDMapping {
	return IDMapping{
		node_to_stop: ReadArrayFromFile[int32](path + "-node_to_stop"),
		stop_to_node: ReadArrayFromFile[int32](path + "-stop_to_node"),
	}
}
