package routing

//*******************************************
// label ordering
//*******************************************

// Three-criteria order over (time, transfers, first departure).
// Forward and backward searches use separate implementations instead
// of branching on a flag, the flipped inequalities live in one place.
type IOrdering interface {
	// strict lexicographic order used by the label queue
	Less(a, b Label) bool
	// true if a is at least as good as b on every criterion
	// and strictly better on at least one
	Dominates(a, b Label) bool
	// true if existing does not rule out candidate; the first-departure
	// criterion is ignored once the candidate departs beyond range_end
	Improves(candidate, existing Label, range_end int32) bool
}

//*******************************************
// forward ordering
//*******************************************

// Earlier arrival is better, later first departure is better.
type ForwardOrdering struct{}

func (self ForwardOrdering) Less(a, b Label) bool {
	if a.Time != b.Time {
		return a.Time < b.Time
	}
	if a.Transfers != b.Transfers {
		return a.Transfers < b.Transfers
	}
	return a.Departure < b.Departure
}

func (self ForwardOrdering) Dominates(a, b Label) bool {
	if a.Time > b.Time {
		return false
	}
	if a.Transfers > b.Transfers {
		return false
	}
	if a.Departure < b.Departure {
		return false
	}
	return a.Time < b.Time || a.Transfers < b.Transfers || a.Departure > b.Departure
}

func (self ForwardOrdering) Improves(candidate, existing Label, range_end int32) bool {
	if existing.Time <= candidate.Time &&
		existing.Transfers <= candidate.Transfers &&
		(existing.Departure >= candidate.Departure || candidate.Departure > range_end) {
		return false
	}
	return true
}

//*******************************************
// backward ordering
//*******************************************

// Later departure is better, earlier last alighting is better.
type BackwardOrdering struct{}

func (self BackwardOrdering) Less(a, b Label) bool {
	if a.Time != b.Time {
		return a.Time > b.Time
	}
	if a.Transfers != b.Transfers {
		return a.Transfers < b.Transfers
	}
	return a.Departure > b.Departure
}

func (self BackwardOrdering) Dominates(a, b Label) bool {
	if a.Time < b.Time {
		return false
	}
	if a.Transfers > b.Transfers {
		return false
	}
	if a.Departure > b.Departure {
		return false
	}
	return a.Time > b.Time || a.Transfers < b.Transfers || a.Departure < b.Departure
}

func (self BackwardOrdering) Improves(candidate, existing Label, range_end int32) bool {
	if existing.Time >= candidate.Time &&
		existing.Transfers <= candidate.Transfers &&
		(existing.Departure <= candidate.Departure || candidate.Departure < range_end) {
		return false
	}
	return true
}
