package routing

import (
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// label queue
//*******************************************

// Binary heap of label ids ordered by an IOrdering.
// Removed ids stay in the heap and are skipped on pop, the
// alive count reflects removals immediately.
type labelQueue struct {
	store  *LabelStore
	order  IOrdering
	heap   List[int32]
	queued Dict[int32, bool]
	dead   Dict[int32, bool]
	alive  int
}

func newLabelQueue(store *LabelStore, order IOrdering, capacity int) *labelQueue {
	return &labelQueue{
		store:  store,
		order:  order,
		heap:   NewList[int32](capacity),
		queued: NewDict[int32, bool](capacity),
		dead:   NewDict[int32, bool](capacity),
	}
}

func (self *labelQueue) Length() int {
	return self.alive
}

func (self *labelQueue) Push(id int32) {
	self.heap.Add(id)
	self.queued[id] = true
	self.alive += 1
	index := self.heap.Length() - 1
	for index > 0 {
		parent := (index - 1) / 2
		if !self.less(index, parent) {
			break
		}
		self.heap[parent], self.heap[index] = self.heap[index], self.heap[parent]
		index = parent
	}
}

func (self *labelQueue) Pop() (int32, bool) {
	for self.heap.Length() > 0 {
		id := self.heap[0]
		last := self.heap.Length() - 1
		self.heap[0] = self.heap[last]
		self.heap = self.heap[:last]
		self.sift_down(0)
		if self.dead.ContainsKey(id) {
			self.dead.Delete(id)
			continue
		}
		self.queued.Delete(id)
		self.alive -= 1
		return id, true
	}
	return NO_LABEL, false
}

// Marks a label as removed, ids not currently queued are ignored.
func (self *labelQueue) Remove(id int32) {
	if !self.queued.ContainsKey(id) {
		return
	}
	self.queued.Delete(id)
	self.dead[id] = true
	self.alive -= 1
}

func (self *labelQueue) less(i, j int) bool {
	return self.order.Less(self.store.Get(self.heap[i]), self.store.Get(self.heap[j]))
}

func (self *labelQueue) sift_down(index int) {
	for {
		left := 2*index + 1
		right := 2*index + 2
		smallest := index
		if left < self.heap.Length() && self.less(left, smallest) {
			smallest = left
		}
		if right < self.heap.Length() && self.less(right, smallest) {
			smallest = right
		}
		if smallest == index {
			break
		}
		self.heap[smallest], self.heap[index] = self.heap[index], self.heap[smallest]
		index = smallest
	}
}
