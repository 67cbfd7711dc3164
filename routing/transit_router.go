package routing

import (
	"github.com/ttpr0/go-transit/graph"
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// multi-criteria label setting
//*******************************************

// Multi-criteria label-setting search over the combined road and
// time-expanded transit network. Criteria are earliest arrival
// (latest departure backwards), number of transfers and first
// departure time. Nodes carry pareto frontiers of mutually
// non-dominated labels instead of a single best distance, so a
// node may be expanded several times.
//
// All mutable state is owned by a single query, independent
// queries may run concurrently on their own router instances.
type TransitRouter struct {
	explorer graph.IEdgeExplorer
	cost     graph.ICostFunction
	order    IOrdering
	reverse  bool

	max_visited_nodes int32
	visited_nodes     int32
	truncated         bool
	range_end         int32

	store    *LabelStore
	frontier Dict[int32, List[int32]]
	queue    *labelQueue

	targets       Dict[int32, bool]
	target_labels List[int32]
}

func NewTransitRouter(explorer graph.IEdgeExplorer, cost graph.ICostFunction, reverse bool, max_visited_nodes int32) *TransitRouter {
	var order IOrdering
	if reverse {
		order = BackwardOrdering{}
	} else {
		order = ForwardOrdering{}
	}
	store := NewLabelStore()
	return &TransitRouter{
		explorer:          explorer,
		cost:              cost,
		order:             order,
		reverse:           reverse,
		max_visited_nodes: max_visited_nodes,
		store:             store,
		frontier:          NewDict[int32, List[int32]](1000),
		queue:             newLabelQueue(store, order, 1000),
		targets:           NewDict[int32, bool](0),
		target_labels:     NewList[int32](0),
	}
}

// Restricts target pruning to an explicit set of destination nodes.
// Labels reaching a target are additionally checked against the
// pareto frontier over all targets. Searching is not cut short,
// the full frontier is still computed.
func (self *TransitRouter) SetTargets(nodes List[int32]) {
	self.targets = NewDict[int32, bool](nodes.Length())
	for _, node := range nodes {
		self.targets[node] = true
	}
}

// Runs the search from start at start_time until the queue is
// exhausted or the visited-node budget is hit. Departures up to
// range_end are all considered valid, which keeps alternative
// boardings alive in the frontiers.
//
// Returns the ids of every label that survived pruning, over all
// nodes. Selecting labels at particular nodes is up to the caller.
func (self *TransitRouter) CalcLabels(start int32, start_time int32, range_end int32) List[int32] {
	self.range_end = range_end

	label := Label{
		Time:      start_time,
		Edge:      NO_EDGE,
		Node:      start,
		Transfers: 0,
		Departure: MAX_TIME,
		Parent:    NO_LABEL,
	}
	id := self.store.Add(label)
	entries := NewList[int32](4)
	entries.Add(id)
	self.frontier[start] = entries
	if self.targets.ContainsKey(start) {
		self.target_labels.Add(id)
	}

	for {
		if self.visited_nodes >= self.max_visited_nodes {
			// truncated search, the frontier so far is a valid partial result
			self.truncated = true
			break
		}
		self.visited_nodes += 1

		curr_id := id
		curr := label
		self.explorer.ForOutgoingEdges(curr.Node, curr.Time, func(ref graph.EdgeRef) {
			travel_time := self.cost.TravelTime(ref, curr.Time)
			var next_time int32
			if self.reverse {
				next_time = curr.Time - travel_time
			} else {
				next_time = curr.Time + travel_time
			}
			transfers := curr.Transfers + self.cost.TransferDelta(ref)
			departure := curr.Departure
			edge_type := self.cost.EdgeType(ref)
			if !self.reverse && edge_type == graph.BOARD && departure == MAX_TIME {
				departure = next_time
			}
			if self.reverse && edge_type == graph.ALIGHT && departure == MAX_TIME {
				departure = next_time
			}

			candidate := Label{
				Time:      next_time,
				Edge:      ref.EdgeID,
				Node:      ref.OtherID,
				Transfers: transfers,
				Departure: departure,
				Parent:    curr_id,
			}
			if !self.improves(candidate, self.frontier[ref.OtherID]) {
				return
			}
			if !self.improves(candidate, self.target_labels) {
				return
			}
			self.remove_dominated(candidate, ref.OtherID)
			cand_id := self.store.Add(candidate)
			node_entries := self.frontier[ref.OtherID]
			node_entries.Add(cand_id)
			self.frontier[ref.OtherID] = node_entries
			if self.targets.ContainsKey(ref.OtherID) {
				self.remove_dominated_targets(candidate)
				self.target_labels.Add(cand_id)
			}
			self.queue.Push(cand_id)
		})

		if self.queue.Length() == 0 {
			break
		}
		next, ok := self.queue.Pop()
		if !ok {
			panic("pop from non-empty label queue failed")
		}
		id = next
		label = self.store.Get(id)
	}

	result := NewList[int32](self.store.Length())
	for _, ids := range self.frontier {
		for _, l := range ids {
			result.Add(l)
		}
	}
	return result
}

// Number of expansion steps taken by the last CalcLabels run.
// Equals max_visited_nodes when the search was truncated.
func (self *TransitRouter) VisitedNodes() int32 {
	return self.visited_nodes
}

// True if the last run stopped on the visited-node budget.
func (self *TransitRouter) Truncated() bool {
	return self.truncated
}

func (self *TransitRouter) GetLabel(id int32) Label {
	return self.store.Get(id)
}

func (self *TransitRouter) Store() *LabelStore {
	return self.store
}

// Labels that reached one of the explicit targets, mutually non-dominated.
func (self *TransitRouter) TargetLabels() List[int32] {
	return self.target_labels
}

func (self *TransitRouter) improves(candidate Label, entries List[int32]) bool {
	for _, id := range entries {
		if !self.order.Improves(candidate, self.store.Get(id), self.range_end) {
			return false
		}
	}
	return true
}

func (self *TransitRouter) remove_dominated(candidate Label, node int32) {
	entries := self.frontier[node]
	kept := entries[:0]
	for _, id := range entries {
		if self.order.Dominates(candidate, self.store.Get(id)) {
			self.queue.Remove(id)
		} else {
			kept = append(kept, id)
		}
	}
	self.frontier[node] = kept
}

func (self *TransitRouter) remove_dominated_targets(candidate Label) {
	kept := self.target_labels[:0]
	for _, id := range self.target_labels {
		if self.order.Dominates(candidate, self.store.Get(id)) {
			self.queue.Remove(id)
		} else {
			kept = append(kept, id)
		}
	}
	self.target_labels = kept
}
