package nfa

// FirstByteSet represents the set of bytes that can start an accepted input.
// Used for O(1) early rejection of non-matching inputs: anchored matching
// makes the set exact, so a first byte outside it can never match.
type FirstByteSet struct {
	// bytes is a 256-entry lookup table for O(1) membership test
	bytes [256]bool
	// count is the number of valid first bytes (0-256)
	count int
}

// Contains returns true if b can be the first byte of an accepted input.
func (f *FirstByteSet) Contains(b byte) bool {
	return f.bytes[b]
}

// Count returns the number of possible first bytes.
func (f *FirstByteSet) Count() int {
	return f.count
}

// IsUseful returns true if this prefilter can reject inputs.
// Returns false if all 256 bytes are valid (a leading wildcard) or none are
// (a pattern accepting only the empty input, which length checks handle).
func (f *FirstByteSet) IsUseful() bool {
	return f.count > 0 && f.count < 256
}

// add marks a byte as a valid first byte
func (f *FirstByteSet) add(b byte) {
	if !f.bytes[b] {
		f.bytes[b] = true
		f.count++
	}
}

// addAll marks every byte as valid
func (f *FirstByteSet) addAll() {
	for i := range f.bytes {
		f.bytes[i] = true
	}
	f.count = 256
}

// Analysis holds facts derived from a compiled automaton that let the matcher
// reject inputs without running the simulation. All bounds are exact because
// matching is anchored at both ends.
type Analysis struct {
	minLen   int
	variable bool // true if the automaton contains a repeat loop
	first    FirstByteSet
}

// MinLen returns the minimum length of an accepted input.
func (a *Analysis) MinLen() int {
	return a.minLen
}

// ExactLen returns the single length every accepted input must have.
// ok is false when the automaton contains a loop and accepted lengths vary.
func (a *Analysis) ExactLen() (n int, ok bool) {
	if a.variable {
		return 0, false
	}
	return a.minLen, true
}

// FirstBytes returns the set of bytes an accepted input can start with.
func (a *Analysis) FirstBytes() *FirstByteSet {
	return &a.first
}

// Analyze derives input-length bounds and the first-byte set from a compiled
// automaton by walking its linear spine from start to match. Repeat loops
// only ever cycle back to themselves, so the walk terminates.
func Analyze(n *NFA) Analysis {
	var a Analysis

	firstOpen := true
	for id := n.State(n.Start()).Next(); ; {
		s := n.State(id)
		if s == nil {
			break
		}

		switch s.Kind() {
		case StateByte:
			a.minLen++
			if firstOpen {
				b, _ := s.Byte()
				a.first.add(b)
				firstOpen = false
			}

		case StateAnyByte:
			a.minLen++
			if firstOpen {
				a.first.addAll()
				firstOpen = false
			}

		case StateRepeat:
			a.variable = true
			unit, lit, mode := s.Repeat()
			if mode == OneOrMore {
				a.minLen++
			}
			if firstOpen {
				if unit == StateAnyByte {
					a.first.addAll()
				} else {
					a.first.add(lit)
				}
				// A mandatory iteration consumes the first byte; a skippable
				// loop leaves the first position open for later units.
				if mode == OneOrMore {
					firstOpen = false
				}
			}
		}

		if s.Kind() == StateMatch {
			break
		}
		id = s.Next()
	}

	return a
}
