package util

import (
	"sort"
)

//*******************************************
// kd-tree
//*******************************************

type kd_node[T any] struct {
	coords [2]float32
	value  T
	left   int32
	right  int32
}

// Two-dimensional kd-tree for nearest neighbour lookups.
type KDTree[T any] struct {
	nodes List[kd_node[T]]
	root  int32
}

func NewKDTree[T any](capacity int) KDTree[T] {
	return KDTree[T]{
		nodes: NewList[kd_node[T]](capacity),
		root:  -1,
	}
}

func (self *KDTree[T]) Insert(coords [2]float32, value T) {
	self.nodes.Add(kd_node[T]{coords: coords, value: value, left: -1, right: -1})
}

// Builds the tree from all inserted entries.
// Has to be called once before GetClosest.
func (self *KDTree[T]) Build() {
	indices := make([]int32, self.nodes.Length())
	for i := range indices {
		indices[i] = int32(i)
	}
	self.root = self._build(indices, 0)
}

func (self *KDTree[T]) _build(indices []int32, axis int) int32 {
	if len(indices) == 0 {
		return -1
	}
	sort.Slice(indices, func(i, j int) bool {
		return self.nodes[indices[i]].coords[axis] < self.nodes[indices[j]].coords[axis]
	})
	median := len(indices) / 2
	index := indices[median]
	node := self.nodes[index]
	node.left = self._build(indices[:median], (axis+1)%2)
	node.right = self._build(indices[median+1:], (axis+1)%2)
	self.nodes[index] = node
	return index
}

// Returns the closest inserted value within max_dist (per axis-distance units).
func (self *KDTree[T]) GetClosest(coords [2]float32, max_dist float32) (T, bool) {
	best := int32(-1)
	best_dist := max_dist * max_dist
	self._search(self.root, coords, 0, &best, &best_dist)
	if best == -1 {
		var t T
		return t, false
	}
	return self.nodes[best].value, true
}

func (self *KDTree[T]) _search(index int32, coords [2]float32, axis int, best *int32, best_dist *float32) {
	if index == -1 {
		return
	}
	node := self.nodes[index]
	dx := node.coords[0] - coords[0]
	dy := node.coords[1] - coords[1]
	dist := dx*dx + dy*dy
	if dist <= *best_dist {
		*best = index
		*best_dist = dist
	}
	diff := coords[axis] - node.coords[axis]
	var near, far int32
	if diff < 0 {
		near, far = node.left, node.right
	} else {
		near, far = node.right, node.left
	}
	self._search(near, coords, (axis+1)%2, best, best_dist)
	if diff*diff <= *best_dist {
		self._search(far, coords, (axis+1)%2, best, best_dist)
	}
}
