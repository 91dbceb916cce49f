package nfa

import (
	"fmt"
)

// Builder constructs NFAs incrementally using a low-level API.
// This provides full control over NFA construction and is used by the Compiler.
type Builder struct {
	states []State
	start  StateID
	match  StateID
}

// NewBuilder creates a new NFA builder with default capacity
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new NFA builder with specified initial capacity
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states: make([]State, 0, capacity),
		start:  InvalidState,
		match:  InvalidState,
	}
}

// AddStart adds the entry state and returns its ID.
// The automaton admits exactly one start state; Validate rejects duplicates.
func (b *Builder) AddStart() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{
		id:   id,
		kind: StateStart,
		next: InvalidState,
	})
	if b.start == InvalidState {
		b.start = id
	} else {
		b.start = duplicateState
	}
	return id
}

// AddByte adds a state that matches a single literal byte and transitions to next
func (b *Builder) AddByte(lit byte, next StateID) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{
		id:   id,
		kind: StateByte,
		lit:  lit,
		next: next,
	})
	return id
}

// AddAnyByte adds a state that matches any single byte and transitions to next
func (b *Builder) AddAnyByte(next StateID) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{
		id:   id,
		kind: StateAnyByte,
		next: next,
	})
	return id
}

// AddRepeat adds a loop state wrapping a matching unit (StateByte or StateAnyByte).
// lit is the unit's literal and is ignored for AnyByte units. next is the loop
// exit (successor index 0). The back-edge to the state itself is installed at
// successor index 1. Wrapping any other kind is rejected by Validate.
func (b *Builder) AddRepeat(unit StateKind, lit byte, mode RepeatMode, next StateID) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{
		id:   id,
		kind: StateRepeat,
		unit: unit,
		lit:  lit,
		mode: mode,
		next: next,
		loop: id,
	})
	return id
}

// AddMatch adds the accepting state and returns its ID.
// The automaton admits exactly one match state; Validate rejects duplicates.
func (b *Builder) AddMatch() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{
		id:   id,
		kind: StateMatch,
		next: InvalidState,
	})
	if b.match == InvalidState {
		b.match = id
	} else {
		b.match = duplicateState
	}
	return id
}

// duplicateState marks a start/match slot that was set more than once.
// Distinct from InvalidState so Validate can report the right failure.
const duplicateState StateID = 0xFFFFFFFE

// Patch updates a state's successor index 0. This is used during compilation
// to link each newly built state to the chain.
// Match states have no successors and cannot be patched.
func (b *Builder) Patch(stateID, target StateID) error {
	if int(stateID) >= len(b.states) {
		return &BuildError{
			Message: "state ID out of bounds",
			StateID: stateID,
		}
	}

	s := &b.states[stateID]
	if s.kind == StateMatch {
		return &BuildError{
			Message: fmt.Sprintf("cannot patch state of kind %s", s.kind),
			StateID: stateID,
		}
	}
	s.next = target
	return nil
}

// States returns the current number of states
func (b *Builder) States() int {
	return len(b.states)
}

// Validate checks that the NFA is well-formed:
//   - exactly one start and one match state
//   - every non-match state has a valid successor index 0
//   - repeat states wrap a byte or wildcard unit and loop back to themselves
func (b *Builder) Validate() error {
	switch b.start {
	case InvalidState:
		return &BuildError{Message: "start state not set", StateID: InvalidState}
	case duplicateState:
		return &BuildError{Message: "multiple start states", StateID: InvalidState}
	}
	switch b.match {
	case InvalidState:
		return &BuildError{Message: "match state not set", StateID: InvalidState}
	case duplicateState:
		return &BuildError{Message: "multiple match states", StateID: InvalidState}
	}

	for i := range b.states {
		s := &b.states[i]
		id := StateID(i)
		switch s.kind {
		case StateStart, StateByte, StateAnyByte:
			if int(s.next) >= len(b.states) {
				return &BuildError{
					Message: fmt.Sprintf("invalid next state %d", s.next),
					StateID: id,
				}
			}
		case StateRepeat:
			if int(s.next) >= len(b.states) {
				return &BuildError{
					Message: fmt.Sprintf("invalid loop exit state %d", s.next),
					StateID: id,
				}
			}
			if s.loop != id {
				return &BuildError{
					Message: fmt.Sprintf("loop edge targets state %d, not itself", s.loop),
					StateID: id,
				}
			}
			if s.unit != StateByte && s.unit != StateAnyByte {
				return &BuildError{
					Message: fmt.Sprintf("repeat wraps non-matching unit %s", s.unit),
					StateID: id,
				}
			}
		case StateMatch:
			// No successors to check.
		}
	}

	return nil
}

// Build finalizes and returns the constructed NFA
func (b *Builder) Build() (*NFA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	return &NFA{
		states: b.states,
		start:  b.start,
		match:  b.match,
	}, nil
}
