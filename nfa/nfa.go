package nfa

import (
	"fmt"
)

// StateID uniquely identifies an NFA state.
// This is a 32-bit unsigned integer for compact representation.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the type of NFA state and determines which transitions are valid.
type StateKind uint8

const (
	// StateStart is the unique entry state. It consumes no input and carries
	// no acceptance semantics of its own.
	StateStart StateKind = iota

	// StateByte matches exactly one input byte equal to its literal.
	StateByte

	// StateAnyByte matches exactly one arbitrary input byte ('.' in patterns).
	StateAnyByte

	// StateRepeat wraps a matching unit (byte or wildcard) in a loop.
	// It is the sole source of cycles in the automaton graph.
	StateRepeat

	// StateMatch is the unique accepting state. Reaching it with the input
	// fully consumed signifies a successful match.
	StateMatch
)

// String returns a human-readable representation of the StateKind
func (k StateKind) String() string {
	switch k {
	case StateStart:
		return "Start"
	case StateByte:
		return "Byte"
	case StateAnyByte:
		return "AnyByte"
	case StateRepeat:
		return "Repeat"
	case StateMatch:
		return "Match"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// RepeatMode distinguishes the two loop semantics of a Repeat state.
type RepeatMode uint8

const (
	// ZeroOrMore is the '*' quantifier: the loop may be skipped entirely.
	ZeroOrMore RepeatMode = iota

	// OneOrMore is the '+' quantifier: the loop must consume at least one byte
	// before its exit edge becomes viable.
	OneOrMore
)

// String returns a human-readable representation of the RepeatMode
func (m RepeatMode) String() string {
	switch m {
	case ZeroOrMore:
		return "ZeroOrMore"
	case OneOrMore:
		return "OneOrMore"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// State represents a single NFA state with its transitions.
// The state's kind determines which fields are valid.
type State struct {
	id   StateID
	kind StateKind

	// For Byte: the literal to match. For Repeat with a byte unit: the unit's literal.
	lit byte

	// For Repeat: the wrapped matching unit (StateByte or StateAnyByte) and loop mode.
	unit StateKind
	mode RepeatMode

	// Ordered successors. next is successor index 0: the state to move to once
	// this state's matching unit is satisfied (for Repeat, the loop exit).
	// loop is successor index 1, present only on Repeat states: the back-edge
	// to the Repeat state itself.
	next StateID
	loop StateID
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// Kind returns the state's type
func (s *State) Kind() StateKind {
	return s.kind
}

// IsMatch returns true if this is the accepting state
func (s *State) IsMatch() bool {
	return s.kind == StateMatch
}

// Byte returns the literal for Byte states.
// Returns (0, false) for non-Byte states.
func (s *State) Byte() (byte, bool) {
	if s.kind == StateByte {
		return s.lit, true
	}
	return 0, false
}

// Repeat returns the wrapped unit kind, its literal byte (valid only when the
// unit is StateByte), and the loop mode for Repeat states.
// Returns (StateStart, 0, ZeroOrMore) for non-Repeat states.
func (s *State) Repeat() (unit StateKind, lit byte, mode RepeatMode) {
	if s.kind == StateRepeat {
		return s.unit, s.lit, s.mode
	}
	return StateStart, 0, ZeroOrMore
}

// Mode returns the loop mode for Repeat states, ZeroOrMore otherwise.
func (s *State) Mode() RepeatMode {
	return s.mode
}

// Next returns successor index 0: the forward edge for Start/Byte/AnyByte
// states and the loop exit for Repeat states.
// Returns InvalidState for the Match state.
func (s *State) Next() StateID {
	if s.kind == StateMatch {
		return InvalidState
	}
	return s.next
}

// Loop returns successor index 1, the back-edge of a Repeat state.
// Returns InvalidState for non-Repeat states.
func (s *State) Loop() StateID {
	if s.kind == StateRepeat {
		return s.loop
	}
	return InvalidState
}

// Successors returns the ordered successor list: the forward/exit edge at
// index 0 and, for Repeat states, the back-edge at index 1. The Match state
// has no successors.
func (s *State) Successors() []StateID {
	switch s.kind {
	case StateMatch:
		return nil
	case StateRepeat:
		return []StateID{s.next, s.loop}
	default:
		return []StateID{s.next}
	}
}

// Accepts reports whether a single input byte satisfies this state's matching
// unit. Repeat states delegate to their wrapped unit. Start and Match states
// consume no input and never accept.
func (s *State) Accepts(b byte) bool {
	switch s.kind {
	case StateByte:
		return b == s.lit
	case StateAnyByte:
		return true
	case StateRepeat:
		return s.unit == StateAnyByte || b == s.lit
	default:
		return false
	}
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	switch s.kind {
	case StateStart:
		return fmt.Sprintf("State(%d, Start -> %d)", s.id, s.next)
	case StateByte:
		return fmt.Sprintf("State(%d, Byte %q -> %d)", s.id, s.lit, s.next)
	case StateAnyByte:
		return fmt.Sprintf("State(%d, AnyByte -> %d)", s.id, s.next)
	case StateRepeat:
		if s.unit == StateAnyByte {
			return fmt.Sprintf("State(%d, Repeat %s AnyByte -> [%d, %d])", s.id, s.mode, s.next, s.loop)
		}
		return fmt.Sprintf("State(%d, Repeat %s %q -> [%d, %d])", s.id, s.mode, s.lit, s.next, s.loop)
	case StateMatch:
		return fmt.Sprintf("State(%d, Match)", s.id)
	default:
		return fmt.Sprintf("State(%d, Unknown)", s.id)
	}
}

// NFA represents a compiled automaton for a restricted regex pattern.
// It owns all of its states in a single arena; states reference one another
// by StateID, never by pointer, so a compiled NFA has no aliasing hazards and
// is trivially shareable.
//
// An NFA is immutable after compilation and safe for concurrent use.
type NFA struct {
	// states contains all NFA states indexed by StateID
	states []State

	// start is the unique entry state
	start StateID

	// match is the unique accepting state
	match StateID
}

// Start returns the entry state ID of the NFA
func (n *NFA) Start() StateID {
	return n.start
}

// Match returns the accepting state ID of the NFA
func (n *NFA) Match() StateID {
	return n.match
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// IsMatch returns true if the given state is the accepting state
func (n *NFA) IsMatch(id StateID) bool {
	if s := n.State(id); s != nil {
		return s.IsMatch()
	}
	return false
}

// States returns the total number of states in the NFA
func (n *NFA) States() int {
	return len(n.states)
}

// String returns a human-readable representation of the NFA
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, match: %d}", len(n.states), n.start, n.match)
}
