// Package minregex matches strings against a restricted regex dialect:
// literal bytes, the '.' wildcard, and postfix '*'/'+' quantifiers.
//
// Matching is anchored at both ends — a pattern accepts a string only if it
// consumes all of it — and always answers a plain boolean. Patterns compile
// into a small NFA that is simulated breadth-first, so matching runs in
// O(pattern × input) time with no backtracking blowup.
//
// Basic usage:
//
//	re, err := minregex.Compile("a*4.+hi")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("aaaaaa4uhi") // true
//	re.MatchString("4uhi")       // true
//	re.MatchString("meow")       // false
//
// There is no escaping syntax, so a literal '.', '*', or '+' cannot be
// expressed. Compilation fails with nfa.ErrInvalidPattern when a quantifier
// has no repeatable unit before it ("*a", "a**").
//
// A compiled Regex is immutable and safe for concurrent use.
package minregex

import (
	"sync"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/minregex/literal"
	"github.com/coregx/minregex/nfa"
)

// Regex represents a compiled pattern.
//
// Besides the NFA itself, a Regex carries prefilters derived at compile time:
// exact input-length bounds, the set of viable first bytes, and an
// Aho-Corasick automaton over the pattern's required literal runs. Inputs
// that fail a prefilter are rejected without running the simulation.
type Regex struct {
	pattern  string
	nfa      *nfa.NFA
	vm       *nfa.PikeVM
	analysis nfa.Analysis

	// prefilter holds the required-literal automaton, nil when the pattern
	// has no required runs. Every accepted input contains every required
	// run, so an input containing none of them cannot match.
	prefilter *ahocorasick.Automaton

	// states pools per-goroutine matcher scratch state
	states sync.Pool
}

// Compile compiles a pattern into a Regex.
//
// Returns an error satisfying errors.Is(err, nfa.ErrInvalidPattern) when a
// '*' or '+' appears with no repeatable unit before it.
func Compile(pattern string) (*Regex, error) {
	n, err := nfa.Compile(pattern)
	if err != nil {
		return nil, err
	}

	re := &Regex{
		pattern:  pattern,
		nfa:      n,
		vm:       nfa.NewPikeVM(n),
		analysis: nfa.Analyze(n),
	}
	re.prefilter = buildPrefilter(n)
	re.states.New = func() any {
		s := nfa.NewPikeVMState()
		re.vm.InitState(s)
		return s
	}

	return re, nil
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("minregex: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// Pattern returns the source pattern this Regex was compiled from
func (re *Regex) Pattern() string {
	return re.pattern
}

// NFA returns the compiled automaton
func (re *Regex) NFA() *nfa.NFA {
	return re.nfa
}

// Match reports whether the pattern matches the entire input.
// It is safe for concurrent use.
func (re *Regex) Match(input []byte) bool {
	if len(input) < re.analysis.MinLen() {
		return false
	}
	if n, ok := re.analysis.ExactLen(); ok && len(input) != n {
		return false
	}
	if len(input) > 0 {
		if fb := re.analysis.FirstBytes(); fb.IsUseful() && !fb.Contains(input[0]) {
			return false
		}
	}
	if re.prefilter != nil && !re.prefilter.IsMatch(input) {
		return false
	}

	state := re.states.Get().(*nfa.PikeVMState)
	matched := re.vm.MatchWithState(state, input)
	re.states.Put(state)
	return matched
}

// MatchString reports whether the pattern matches the entire input string
func (re *Regex) MatchString(input string) bool {
	return re.Match([]byte(input))
}

// String returns the source pattern, like stdlib regexp
func (re *Regex) String() string {
	return re.pattern
}

// buildPrefilter builds the required-literal automaton for a compiled NFA.
// Returns nil when the pattern has no required runs or the build fails;
// matching then falls through to plain simulation.
func buildPrefilter(n *nfa.NFA) *ahocorasick.Automaton {
	seq := literal.Extract(n)
	if seq.IsEmpty() {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return auto
}
