package filterstate

import "slices"

// Patch is a partial update over a State. Nil fields are left unchanged.
// To clear the selection pass a pointer to an empty slice; to clear a
// viewport range pass a pointer to a zero OptRange (or use the Reset
// helpers on Store).
type Patch struct {
	YearStart *int
	YearEnd   *int
	States    *[]string
	ColorBy   *ColorMode
	ShowTrend *bool

	XRange     *OptRange
	YRange     *OptRange
	TimeXRange *OptRange
	TimeYRange *OptRange
}

// Store owns the current State for one session. There is exactly one writer
// per session and no concurrent mutation, so no locking here.
type Store struct {
	cur      State
	onChange func(State)
}

// NewStore seeds a store, typically from DefaultState or a decoded view
// string.
func NewStore(initial State) *Store {
	return &Store{cur: initial.clone()}
}

// OnChange registers a single observer invoked after every mutation with the
// new snapshot. Later calls replace the observer.
func (st *Store) OnChange(fn func(State)) {
	st.onChange = fn
}

// Current returns a snapshot of the state. The selection slice is copied so
// callers cannot mutate the store through it.
func (st *Store) Current() State {
	return st.cur.clone()
}

// Apply merges p over the current state and returns the new snapshot.
// No validation happens here: if a caller produces YearStart > YearEnd it
// is stored as-is, consumers clamp as they see fit.
func (st *Store) Apply(p Patch) State {
	if p.YearStart != nil {
		st.cur.YearStart = *p.YearStart
	}
	if p.YearEnd != nil {
		st.cur.YearEnd = *p.YearEnd
	}
	if p.States != nil {
		st.cur.States = slices.Clone(*p.States)
	}
	if p.ColorBy != nil {
		st.cur.ColorBy = *p.ColorBy
	}
	if p.ShowTrend != nil {
		st.cur.ShowTrend = *p.ShowTrend
	}
	if p.XRange != nil {
		st.cur.XRange = *p.XRange
	}
	if p.YRange != nil {
		st.cur.YRange = *p.YRange
	}
	if p.TimeXRange != nil {
		st.cur.TimeXRange = *p.TimeXRange
	}
	if p.TimeYRange != nil {
		st.cur.TimeYRange = *p.TimeYRange
	}
	return st.notify()
}

// ResetScatterViewport clears both scatter axes back to auto-fit, leaving
// every other field alone.
func (st *Store) ResetScatterViewport() State {
	st.cur.XRange = OptRange{}
	st.cur.YRange = OptRange{}
	return st.notify()
}

// ResetTimeViewport clears both time-chart axes back to auto-fit.
func (st *Store) ResetTimeViewport() State {
	st.cur.TimeXRange = OptRange{}
	st.cur.TimeYRange = OptRange{}
	return st.notify()
}

func (st *Store) notify() State {
	snap := st.cur.clone()
	if st.onChange != nil {
		st.onChange(snap)
	}
	return snap
}
