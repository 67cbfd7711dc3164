package routing

import (
	"math"

	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// search labels
//*******************************************

const (
	NO_EDGE  int32 = -1
	NO_LABEL int32 = -1
	// sentinel for a not yet frozen first departure
	MAX_TIME int32 = math.MaxInt32
)

// Immutable search state. Expanding a label always creates a new one,
// chained to its predecessor through the Parent index.
type Label struct {
	// arrival time so far (departure time so far in backward searches)
	Time int32
	// edge this label was reached over, NO_EDGE for the root
	Edge int32
	// node this label reaches
	Node int32
	// transfers so far, non-decreasing along a chain
	Transfers int32
	// time of the first boarding (forward) or last alighting (backward),
	// MAX_TIME until frozen once, then fixed for the rest of the chain
	Departure int32
	// arena index of the predecessor, NO_LABEL for the root
	Parent int32
}

func (self Label) IsRoot() bool {
	return self.Edge == NO_EDGE && self.Parent == NO_LABEL
}

//*******************************************
// label arena
//*******************************************

// Append-only arena of labels addressed by stable indices.
// Parent links are indices into the arena, which keeps shared
// chain suffixes cheap and avoids reference cycles.
type LabelStore struct {
	labels List[Label]
}

func NewLabelStore() *LabelStore {
	return &LabelStore{
		labels: NewList[Label](1000),
	}
}

func (self *LabelStore) Add(label Label) int32 {
	self.labels.Add(label)
	return int32(self.labels.Length() - 1)
}
func (self *LabelStore) Get(id int32) Label {
	return self.labels[id]
}
func (self *LabelStore) Length() int {
	return self.labels.Length()
}
