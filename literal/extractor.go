// Package literal extracts required literal runs from compiled automatons.
//
// A required run is a maximal sequence of mandatory literal bytes on the
// automaton spine. Every accepted input contains every required run, so the
// runs feed a substring prefilter that rejects inputs cheaply before the NFA
// simulation runs.
package literal

import (
	"fmt"

	"github.com/coregx/minregex/nfa"
)

// Literal is a single required byte run.
type Literal struct {
	Bytes []byte
}

// String returns a human-readable representation of the literal
func (l Literal) String() string {
	return fmt.Sprintf("Literal(%q)", l.Bytes)
}

// Seq is an ordered sequence of required literal runs, in spine order.
type Seq struct {
	lits []Literal
}

// Len returns the number of literals in the sequence
func (s *Seq) Len() int {
	return len(s.lits)
}

// IsEmpty returns true if the sequence holds no literals
func (s *Seq) IsEmpty() bool {
	return len(s.lits) == 0
}

// Get returns the i-th literal in spine order
func (s *Seq) Get(i int) Literal {
	return s.lits[i]
}

// Longest returns the longest literal in the sequence.
// Returns a zero Literal when the sequence is empty.
func (s *Seq) Longest() Literal {
	var best Literal
	for _, l := range s.lits {
		if len(l.Bytes) > len(best.Bytes) {
			best = l
		}
	}
	return best
}

// ExtractorConfig bounds extraction.
type ExtractorConfig struct {
	// MinLen drops runs shorter than this many bytes.
	MinLen int

	// MaxLiterals stops extraction after this many runs.
	// Zero means no limit.
	MaxLiterals int
}

// DefaultExtractorConfig returns an extractor configuration with sensible defaults
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		MinLen:      1,
		MaxLiterals: 16,
	}
}

// Extract collects required literal runs from a compiled automaton with the
// default configuration.
func Extract(n *nfa.NFA) *Seq {
	return ExtractWithConfig(n, DefaultExtractorConfig())
}

// ExtractWithConfig walks the automaton spine collecting runs of mandatory
// literal bytes. A wildcard contributes an unknown byte and breaks the run;
// a skippable loop contributes nothing and breaks the run; a mandatory loop
// contributes its unit's first iteration, after which the loop's unknown tail
// breaks the run.
func ExtractWithConfig(n *nfa.NFA, config ExtractorConfig) *Seq {
	seq := &Seq{}
	var run []byte

	flush := func() {
		if len(run) >= config.MinLen && run != nil {
			if config.MaxLiterals == 0 || len(seq.lits) < config.MaxLiterals {
				seq.lits = append(seq.lits, Literal{Bytes: run})
			}
		}
		run = nil
	}

	for id := n.State(n.Start()).Next(); ; {
		s := n.State(id)
		if s == nil {
			break
		}

		switch s.Kind() {
		case nfa.StateByte:
			b, _ := s.Byte()
			run = append(run, b)

		case nfa.StateAnyByte:
			flush()

		case nfa.StateRepeat:
			unit, lit, mode := s.Repeat()
			if mode == nfa.OneOrMore && unit == nfa.StateByte {
				run = append(run, lit)
			}
			flush()

		case nfa.StateMatch:
			flush()
			return seq
		}

		id = s.Next()
	}

	flush()
	return seq
}
