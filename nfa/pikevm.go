package nfa

import (
	"github.com/coregx/minregex/internal/conv"
	"github.com/coregx/minregex/internal/sparse"
)

// PikeVM simulates the NFA breadth-first to decide anchored whole-string
// acceptance. It maintains the set of states alive at the current input
// position and advances all of them in lockstep, one input byte per
// generation, so a repeat loop is explored both ways at every position:
// exit now, or consume one more byte. A greedy walk cannot do this (for
// pattern "a*a" against "aaa" the loop must give the last 'a' back), which
// is why the simulation tracks every viable state instead of one.
//
// Each generation holds at most one entry per state, deduplicated with a
// sparse set, so a match costs O(states × input length) in the worst case
// with no backtracking blowup.
//
// The PikeVM itself is immutable after creation. The zero-argument Match
// method uses internal scratch state and is NOT safe for concurrent use;
// concurrent callers must use MatchWithState with per-goroutine state.
type PikeVM struct {
	nfa *NFA

	// internalState backs the non-thread-safe Match method.
	internalState PikeVMState
}

// PikeVMState holds mutable per-search scratch state for PikeVM.
// Each goroutine must use its own instance; pool them for concurrent usage.
type PikeVMState struct {
	// State queues for the current and next generation
	Queue     []StateID
	NextQueue []StateID

	// Visited deduplicates states within one generation
	Visited *sparse.Set
}

// NewPikeVM creates a new PikeVM for executing the given NFA
func NewPikeVM(nfa *NFA) *PikeVM {
	p := &PikeVM{nfa: nfa}
	p.InitState(&p.internalState)
	return p
}

// NewPikeVMState creates a new mutable state for use with PikeVM.
// It must be initialized with PikeVM.InitState before use.
func NewPikeVMState() *PikeVMState {
	return &PikeVMState{}
}

// InitState sizes a PikeVMState for this PikeVM's automaton.
// Must be called before using the state with MatchWithState.
func (p *PikeVM) InitState(state *PikeVMState) {
	capacity := p.nfa.States()
	if capacity < 16 {
		capacity = 16
	}

	state.Queue = make([]StateID, 0, capacity)
	state.NextQueue = make([]StateID, 0, capacity)
	state.Visited = sparse.NewSet(conv.IntToUint32(capacity))
}

// NumStates returns the number of NFA states (for state allocation)
func (p *PikeVM) NumStates() int {
	return p.nfa.States()
}

// Match reports whether the automaton accepts the entire input, anchored at
// both ends. It never mutates the NFA and never fails.
//
// This method uses internal scratch state and is NOT thread-safe.
// For concurrent usage, use MatchWithState.
func (p *PikeVM) Match(input []byte) bool {
	return p.MatchWithState(&p.internalState, input)
}

// MatchString is like Match for a string input
func (p *PikeVM) MatchString(input string) bool {
	return p.Match([]byte(input))
}

// MatchWithState is like Match but uses caller-provided scratch state,
// making concurrent matching against one shared NFA possible.
func (p *PikeVM) MatchWithState(state *PikeVMState, input []byte) bool {
	state.Queue = state.Queue[:0]
	state.NextQueue = state.NextQueue[:0]
	state.Visited.Clear()

	p.addThread(state, &state.Queue, p.nfa.Start())

	for pos := 0; pos <= len(input); pos++ {
		if len(state.Queue) == 0 {
			return false
		}

		if pos == len(input) {
			// Input fully consumed: accept iff some alive state is the
			// match state. Repeat exits are zero-width, so chained loops
			// (e.g. "a*b*" against "") are already resolved by closure.
			for _, id := range state.Queue {
				if p.nfa.IsMatch(id) {
					return true
				}
			}
			return false
		}

		b := input[pos]
		state.Visited.Clear()
		for _, id := range state.Queue {
			p.step(state, id, b)
		}

		// Swap queues for the next generation
		state.Queue, state.NextQueue = state.NextQueue, state.Queue[:0]
	}

	return false
}

// addThread adds a state to a generation queue, expanding zero-width edges.
// Start consumes nothing, so it dissolves into its successor. A ZeroOrMore
// repeat contributes both itself and, via its zero-width exit, everything
// reachable without consuming input. A OneOrMore repeat's exit stays closed
// here: it only opens in step, after the loop has consumed a byte.
func (p *PikeVM) addThread(state *PikeVMState, queue *[]StateID, id StateID) {
	if !state.Visited.Insert(uint32(id)) {
		return
	}

	s := p.nfa.State(id)
	if s == nil {
		return
	}

	switch s.Kind() {
	case StateStart:
		p.addThread(state, queue, s.Next())

	case StateRepeat:
		*queue = append(*queue, id)
		if s.Mode() == ZeroOrMore {
			p.addThread(state, queue, s.Next())
		}

	case StateByte, StateAnyByte, StateMatch:
		*queue = append(*queue, id)
	}
}

// step advances one alive state over the input byte b, feeding survivors into
// the next generation.
func (p *PikeVM) step(state *PikeVMState, id StateID, b byte) {
	s := p.nfa.State(id)
	if s == nil {
		return
	}

	switch s.Kind() {
	case StateByte, StateAnyByte:
		if s.Accepts(b) {
			p.addThread(state, &state.NextQueue, s.Next())
		}

	case StateRepeat:
		if s.Accepts(b) {
			// Loop again via the back-edge, and open the exit: one
			// iteration is now done, so even a OneOrMore loop may leave.
			p.addThread(state, &state.NextQueue, s.Loop())
			p.addThread(state, &state.NextQueue, s.Next())
		}

	case StateMatch:
		// Input remains but the pattern is exhausted on this path; drop it.
	}
}
