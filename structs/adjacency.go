package structs

import (
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// adjacency accessor
//*******************************************

// Iterates the adjacency of one node.
// Not thread safe, use one accessor per traversal.
type IAdjAccessor interface {
	SetBaseNode(node int32, forward bool)
	Next() bool
	GetEdgeID() int32
	GetOtherID() int32
}

//*******************************************
// dynamic adjacency (build time)
//*******************************************

type adj_entry struct {
	EdgeID  int32
	OtherID int32
}

type AdjacencyList struct {
	fwd_entries Array[List[adj_entry]]
	bwd_entries Array[List[adj_entry]]
}

func NewAdjacencyList(node_count int) AdjacencyList {
	return AdjacencyList{
		fwd_entries: NewArray[List[adj_entry]](node_count),
		bwd_entries: NewArray[List[adj_entry]](node_count),
	}
}

func (self *AdjacencyList) AddEdgeEntries(node_a, node_b, edge_id int32) {
	self.fwd_entries[node_a] = append(self.fwd_entries[node_a], adj_entry{EdgeID: edge_id, OtherID: node_b})
	self.bwd_entries[node_b] = append(self.bwd_entries[node_b], adj_entry{EdgeID: edge_id, OtherID: node_a})
}

//*******************************************
// static adjacency (query time)
//*******************************************

type adj_ref struct {
	start int32
	count int32
}

// Compressed adjacency built once from an AdjacencyList.
type AdjacencyArray struct {
	fwd_refs    Array[adj_ref]
	bwd_refs    Array[adj_ref]
	fwd_entries Array[adj_entry]
	bwd_entries Array[adj_entry]
}

func AdjacencyListToArray(adj *AdjacencyList) *AdjacencyArray {
	fwd_refs := NewArray[adj_ref](adj.fwd_entries.Length())
	bwd_refs := NewArray[adj_ref](adj.bwd_entries.Length())
	fwd_entries := NewList[adj_entry](100)
	bwd_entries := NewList[adj_entry](100)
	for i := 0; i < adj.fwd_entries.Length(); i++ {
		entries := adj.fwd_entries[i]
		fwd_refs[i] = adj_ref{start: int32(fwd_entries.Length()), count: int32(entries.Length())}
		for _, entry := range entries {
			fwd_entries.Add(entry)
		}
	}
	for i := 0; i < adj.bwd_entries.Length(); i++ {
		entries := adj.bwd_entries[i]
		bwd_refs[i] = adj_ref{start: int32(bwd_entries.Length()), count: int32(entries.Length())}
		for _, entry := range entries {
			bwd_entries.Add(entry)
		}
	}
	return &AdjacencyArray{
		fwd_refs:    fwd_refs,
		bwd_refs:    bwd_refs,
		fwd_entries: Array[adj_entry](fwd_entries),
		bwd_entries: Array[adj_entry](bwd_entries),
	}
}

func (self *AdjacencyArray) GetDegree(node int32, forward bool) int16 {
	if forward {
		return int16(self.fwd_refs[node].count)
	}
	return int16(self.bwd_refs[node].count)
}

func (self *AdjacencyArray) GetAccessor() AdjArrayAccessor {
	return AdjArrayAccessor{topology: self}
}

type AdjArrayAccessor struct {
	topology *AdjacencyArray
	entries  Array[adj_entry]
	index    int32
	end      int32
}

func (self *AdjArrayAccessor) SetBaseNode(node int32, forward bool) {
	if forward {
		ref := self.topology.fwd_refs[node]
		self.entries = self.topology.fwd_entries
		self.index = ref.start - 1
		self.end = ref.start + ref.count
	} else {
		ref := self.topology.bwd_refs[node]
		self.entries = self.topology.bwd_entries
		self.index = ref.start - 1
		self.end = ref.start + ref.count
	}
}
func (self *AdjArrayAccessor) Next() bool {
	self.index += 1
	return self.index < self.end
}
func (self *AdjArrayAccessor) GetEdgeID() int32 {
	return self.entries[self.index].EdgeID
}
func (self *AdjArrayAccessor) GetOtherID() int32 {
	return self.entries[self.index].OtherID
}

//*******************************************
// adjacency io
//*******************************************

func StoreAdjacency(adj *AdjacencyArray, path string) {
	WriteArrayToFile(adj.fwd_refs, path+"-fwd_refs")
	WriteArrayToFile(adj.bwd_refs, path+"-bwd_refs")
	WriteArrayToFile(adj.fwd_entries, path+"-fwd_entries")
	WriteArrayToFile(adj.bwd_entries, path+"-bwd_entries")
}

func LoadAdjacency(path string) *AdjacencyArray {
	return &AdjacencyArray{
		fwd_refs:    ReadArrayFromFile[adj_ref](path + "-fwd_refs"),
		bwd_refs:    ReadArrayFromFile[adj_ref](path + "-bwd_refs"),
		fwd_entries: ReadArrayFromFile[adj_entry](path + "-fwd_entries"),
		bwd_entries: ReadArrayFromFile[adj_entry](path + "-bwd_entries"),
	}
}
