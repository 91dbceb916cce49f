package nfa

import (
	"errors"
	"testing"
)

// spineKinds walks the automaton from start to match and returns the state
// kinds in spine order.
func spineKinds(t *testing.T, n *NFA) []StateKind {
	t.Helper()
	var kinds []StateKind
	for id := n.Start(); ; {
		s := n.State(id)
		if s == nil {
			t.Fatalf("spine walk hit invalid state %d", id)
		}
		kinds = append(kinds, s.Kind())
		if s.Kind() == StateMatch {
			return kinds
		}
		id = s.Next()
	}
}

func TestCompile_Structure(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []StateKind
	}{
		{"empty pattern", "", []StateKind{StateStart, StateMatch}},
		{"single literal", "a", []StateKind{StateStart, StateByte, StateMatch}},
		{"literal chain", "abc", []StateKind{StateStart, StateByte, StateByte, StateByte, StateMatch}},
		{"wildcard", ".", []StateKind{StateStart, StateAnyByte, StateMatch}},
		{"star", "a*", []StateKind{StateStart, StateRepeat, StateMatch}},
		{"wildcard star", ".*", []StateKind{StateStart, StateRepeat, StateMatch}},
		// Default config lowers u+ into u followed by a zero-or-more loop.
		{"plus", "a+", []StateKind{StateStart, StateByte, StateRepeat, StateMatch}},
		{"mixed", "a*4.+hi", []StateKind{
			StateStart, StateRepeat, StateByte, StateAnyByte, StateRepeat,
			StateByte, StateByte, StateMatch,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := mustCompile(t, tt.pattern)
			got := spineKinds(t, n)
			if len(got) != len(tt.want) {
				t.Fatalf("spine = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("spine = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestCompile_InvalidPatterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"leading star", "*a"},
		{"leading plus", "+a"},
		{"lone star", "*"},
		{"lone plus", "+"},
		{"doubled star", "a**"},
		{"doubled plus", "a++"},
		{"plus after star", "a*+"},
		{"star after plus", "a+*"},
		{"quantifier after quantified wildcard", ".*+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Compile(tt.pattern)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded with %v, want error", tt.pattern, n)
			}
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("Compile(%q) error = %v, want ErrInvalidPattern", tt.pattern, err)
			}
			var ce *CompileError
			if !errors.As(err, &ce) {
				t.Fatalf("Compile(%q) error = %T, want *CompileError", tt.pattern, err)
			}
			if ce.Pattern != tt.pattern {
				t.Errorf("CompileError.Pattern = %q, want %q", ce.Pattern, tt.pattern)
			}
		})
	}
}

func TestCompile_MetacharsAreLiterals(t *testing.T) {
	// Everything except '.', '*', '+' is a literal, including bytes like
	// '(', '[', '|', '\\' that fuller dialects treat specially.
	n := mustCompile(t, `(a|b)\`)
	vm := NewPikeVM(n)

	if !vm.MatchString(`(a|b)\`) {
		t.Errorf("pattern did not match its own literal text")
	}
	if vm.MatchString("a") {
		t.Errorf("pattern matched %q, want literal-only interpretation", "a")
	}
}

func TestCompile_MaxStates(t *testing.T) {
	c := NewCompiler(CompilerConfig{LowerOneOrMore: true, MaxStates: 8})

	if _, err := c.Compile("abc"); err != nil {
		t.Errorf("Compile under the state limit failed: %v", err)
	}

	_, err := c.Compile("abcdefgh")
	if err == nil {
		t.Fatalf("Compile over the state limit succeeded")
	}
	if !errors.Is(err, ErrTooComplex) {
		t.Errorf("error = %v, want ErrTooComplex", err)
	}
}

func TestCompile_OneOrMoreConstructions(t *testing.T) {
	// Lowered and direct OneOrMore constructions must accept identical
	// string sets.
	lowered := NewCompiler(CompilerConfig{LowerOneOrMore: true})
	direct := NewCompiler(CompilerConfig{LowerOneOrMore: false})

	patterns := []string{"a+", "a+b", ".+", "a+b+", "x.+y", "a*b+"}
	inputs := []string{
		"", "a", "aa", "aaa", "b", "ab", "aab", "abb", "ba",
		"xy", "xzy", "xzzy", "aabb",
	}

	for _, pattern := range patterns {
		nLow, err := lowered.Compile(pattern)
		if err != nil {
			t.Fatalf("lowered Compile(%q) failed: %v", pattern, err)
		}
		nDir, err := direct.Compile(pattern)
		if err != nil {
			t.Fatalf("direct Compile(%q) failed: %v", pattern, err)
		}

		// The direct form spends one state fewer per '+'.
		if nDir.States() >= nLow.States() {
			t.Errorf("direct %q has %d states, lowered has %d, want fewer", pattern, nDir.States(), nLow.States())
		}

		vmLow, vmDir := NewPikeVM(nLow), NewPikeVM(nDir)
		for _, input := range inputs {
			if got, want := vmDir.MatchString(input), vmLow.MatchString(input); got != want {
				t.Errorf("pattern %q input %q: direct = %v, lowered = %v", pattern, input, got, want)
			}
		}
	}
}

func TestCompile_Deterministic(t *testing.T) {
	// Compiling the same pattern twice yields structurally identical
	// automatons.
	for _, pattern := range []string{"", "abc", "a*4.+hi", ".*.*"} {
		n1 := mustCompile(t, pattern)
		n2 := mustCompile(t, pattern)

		if n1.States() != n2.States() {
			t.Fatalf("pattern %q: %d states vs %d", pattern, n1.States(), n2.States())
		}
		for id := StateID(0); int(id) < n1.States(); id++ {
			if n1.State(id).String() != n2.State(id).String() {
				t.Errorf("pattern %q state %d: %s vs %s", pattern, id, n1.State(id), n2.State(id))
			}
		}
	}
}
