package mh

// Sink receives the outcome of every chain step. Init is called once
// before the first iteration, Record once per iteration with the
// proposed candidate, the decision and the resulting current state.
type Sink interface {
	Init(initial State, samples, burnInIdx int)
	Record(iter int, cand State, accepted bool, cur State)
}

// FullChain records the current state after every step into a
// preallocated buffer of exactly samples entries. Slot 0 holds the
// initial state; a rejected step repeats the previous slot's value.
// Burn-in is not applied in this mode.
type FullChain struct {
	chain []State
}

// NewFullChain creates an empty full-chain sink.
func NewFullChain() *FullChain {
	return &FullChain{}
}

// Init allocates the chain buffer.
func (f *FullChain) Init(initial State, samples, burnInIdx int) {
	f.chain = make([]State, samples)
	f.chain[0] = initial
}

// Record stores the post-decision current state at slot iter.
func (f *FullChain) Record(iter int, cand State, accepted bool, cur State) {
	f.chain[iter] = cur
}

// Chain returns the recorded chain.
func (f *FullChain) Chain() []State {
	return f.chain
}

// Split collects every proposed candidate at or past the burn-in
// index into an accepted or a rejected sequence. Steps before the
// burn-in index advance the chain but are not recorded.
type Split struct {
	burnInIdx int
	accepted  []State
	rejected  []State
}

// NewSplit creates an empty accepted/rejected sink.
func NewSplit() *Split {
	return &Split{}
}

// Init resets the sink and stores the burn-in cutoff.
func (s *Split) Init(initial State, samples, burnInIdx int) {
	s.burnInIdx = burnInIdx
	s.accepted = nil
	s.rejected = nil
}

// Record appends the candidate to the accepted or rejected sequence.
func (s *Split) Record(iter int, cand State, accepted bool, cur State) {
	if iter < s.burnInIdx {
		return
	}
	if accepted {
		s.accepted = append(s.accepted, cand)
	} else {
		s.rejected = append(s.rejected, cand)
	}
}

// Accepted returns the accepted candidates past burn-in.
func (s *Split) Accepted() []State {
	return s.accepted
}

// Rejected returns the rejected candidates past burn-in.
func (s *Split) Rejected() []State {
	return s.rejected
}
