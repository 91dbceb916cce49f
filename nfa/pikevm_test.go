package nfa

import (
	"strings"
	"testing"
)

func TestPikeVM_Match_Basic(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		// Literals, anchored both ends
		{"literal exact", "meow", "meow", true},
		{"literal prefix only", "meow", "meows", false},
		{"literal suffix only", "meow", "ameow", false},
		{"literal shorter input", "meow", "meo", false},
		{"literal wrong byte", "meow", "meqw", false},

		// Empty pattern accepts only the empty input
		{"empty pattern empty input", "", "", true},
		{"empty pattern nonempty input", "", "a", false},

		// Wildcard
		{"wildcard one byte", ".", "x", true},
		{"wildcard empty input", ".", "", false},
		{"wildcard two bytes", ".", "xy", false},
		{"wildcard in chain", "a.c", "abc", true},
		{"wildcard in chain no filler", "a.c", "ac", false},

		// Zero or more
		{"star empty", "a*", "", true},
		{"star many", "a*", "aaaaaaaaaa", true},
		{"star trailing stranger", "a*", "aaab", false},
		{"star leading stranger", "a*", "baaa", false},

		// One or more
		{"plus empty", "a+", "", false},
		{"plus one", "a+", "a", true},
		{"plus many", "a+", "aaa", true},
		{"plus wrong byte", "a+", "b", false},

		// The loop must give bytes back for later units
		{"giveback one", "a*a", "a", true},
		{"giveback split", "a*aa", "a", false},
		{"giveback exact", "a*aa", "aa", true},
		{"giveback long", "a*aa", "aaaaa", true},
		{"giveback interior", "a*ab", "aaab", true},

		// Wildcard loops
		{"dot star empty", ".*", "", true},
		{"dot star anything", ".*", "azAZ09 .*+", true},
		{"dot plus empty", ".+", "", false},
		{"dot plus anything", ".+", "q", true},
		{"dot star bounded", ".*x", "aaax", true},
		{"dot star bounded miss", ".*x", "aaay", false},

		// Mixed pattern exercising both quantifiers and the wildcard
		{"mixed long prefix", "a*4.+hi", "aaaaaa4uhi", true},
		{"mixed no prefix", "a*4.+hi", "4uhi", true},
		{"mixed garbage", "a*4.+hi", "meow", false},
		{"mixed missing filler", "a*4.+hi", "4hi", false},
		{"mixed greedy filler", "a*4.+hi", "4uuuuhi", true},

		// Chained zero-width loop exits compose
		{"two stars empty", "a*b*", "", true},
		{"two stars first only", "a*b*", "aa", true},
		{"two stars second only", "a*b*", "bb", true},
		{"two stars both", "a*b*", "aabb", true},
		{"two stars interleaved", "a*b*", "aba", false},
		{"three stars empty", "a*b*c*", "", true},
		{"star plus empty", "a*b+", "", false},
		{"star plus one b", "a*b+", "b", true},

		// Same-unit loops in sequence
		{"adjacent same loops", "a*a*", "aaa", true},
		{"plus then star", "a+a*", "a", true},
		{"plus then star empty", "a+a*", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := mustCompile(t, tt.pattern)
			vm := NewPikeVM(n)

			if got := vm.MatchString(tt.input); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}

func TestPikeVM_Match_LongRepetition(t *testing.T) {
	// The simulation is bounded by states × input length; a long run of one
	// byte must not blow up the search.
	n := mustCompile(t, "a*aa")
	vm := NewPikeVM(n)

	long := strings.Repeat("a", 100000)
	if !vm.MatchString(long) {
		t.Errorf("Match(a*aa, a^100000) = false, want true")
	}
	if vm.MatchString(long + "b") {
		t.Errorf("Match(a*aa, a^100000+b) = true, want false")
	}
}

func TestPikeVM_Match_RepeatedCalls(t *testing.T) {
	// One compiled automaton serves many checks without recompiling; scratch
	// state resets fully between calls.
	n := mustCompile(t, "a*b")
	vm := NewPikeVM(n)

	inputs := []struct {
		input string
		want  bool
	}{
		{"b", true},
		{"ab", true},
		{"", false},
		{"aaab", true},
		{"aba", false},
		{"b", true},
	}
	for _, tt := range inputs {
		if got := vm.MatchString(tt.input); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPikeVM_MatchWithState(t *testing.T) {
	n := mustCompile(t, "a+")
	vm := NewPikeVM(n)

	s1 := NewPikeVMState()
	s2 := NewPikeVMState()
	vm.InitState(s1)
	vm.InitState(s2)

	if !vm.MatchWithState(s1, []byte("aaa")) {
		t.Errorf("MatchWithState(s1, aaa) = false")
	}
	if vm.MatchWithState(s2, []byte("")) {
		t.Errorf("MatchWithState(s2, empty) = true")
	}
	// s1 is reusable after a completed search.
	if vm.MatchWithState(s1, []byte("b")) {
		t.Errorf("MatchWithState(s1, b) = true")
	}
}

func TestPikeVM_NumStates(t *testing.T) {
	n := mustCompile(t, "ab*")
	vm := NewPikeVM(n)
	if vm.NumStates() != n.States() {
		t.Errorf("NumStates() = %d, want %d", vm.NumStates(), n.States())
	}
}
