package nfa

import (
	"fmt"
)

// CompilerConfig configures NFA compilation behavior
type CompilerConfig struct {
	// LowerOneOrMore rewrites "u+" as "u" followed by a ZeroOrMore loop of u
	// (two states) instead of emitting a single OneOrMore repeat state.
	// Both constructions accept the same strings.
	LowerOneOrMore bool

	// MaxStates limits the size of the compiled state arena.
	// Zero means no limit.
	MaxStates int
}

// DefaultCompilerConfig returns a compiler configuration with sensible defaults
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		LowerOneOrMore: true,
		MaxStates:      1 << 16,
	}
}

// Compiler compiles restricted regex patterns into NFAs.
//
// The dialect is: any byte is a literal, '.' matches any byte, and a '*' or '+'
// immediately after a literal or '.' makes that unit repeatable. There is no
// escaping, so a literal '.', '*', or '+' cannot be expressed.
type Compiler struct {
	config  CompilerConfig
	builder *Builder
}

// NewCompiler creates a new NFA compiler with the given configuration
func NewCompiler(config CompilerConfig) *Compiler {
	return &Compiler{config: config}
}

// NewDefaultCompiler creates a new NFA compiler with default configuration
func NewDefaultCompiler() *Compiler {
	return NewCompiler(DefaultCompilerConfig())
}

// Compile compiles a pattern string into an NFA.
//
// The pattern is scanned left to right with one token of lookahead: a unit
// followed by '*' or '+' becomes a repeat state and the quantifier token is
// consumed with it. A quantifier with no repeatable unit before it (leading,
// or directly after another quantifier) fails with ErrInvalidPattern.
func (c *Compiler) Compile(pattern string) (*NFA, error) {
	// Worst case is two states per token plus start and match.
	if c.config.MaxStates > 0 && 2*len(pattern)+2 > c.config.MaxStates {
		return nil, &CompileError{
			Pattern: pattern,
			Err:     ErrTooComplex,
		}
	}

	c.builder = NewBuilderWithCapacity(len(pattern) + 2)
	prev := c.builder.AddStart()

	for i := 0; i < len(pattern); i++ {
		tok := pattern[i]
		if tok == '*' || tok == '+' {
			return nil, &CompileError{
				Pattern: pattern,
				Err:     fmt.Errorf("%w: quantifier %q at offset %d has no repeatable unit", ErrInvalidPattern, tok, i),
			}
		}

		unit := StateByte
		if tok == '.' {
			unit = StateAnyByte
		}

		// Peek one token ahead for a quantifier.
		mode, quantified := ZeroOrMore, false
		if i+1 < len(pattern) {
			switch pattern[i+1] {
			case '*':
				quantified = true
			case '+':
				mode, quantified = OneOrMore, true
			}
		}

		var cur StateID
		switch {
		case !quantified:
			cur = c.addUnit(unit, tok)
		case mode == OneOrMore && c.config.LowerOneOrMore:
			// u+ == u followed by u*: the mandatory first iteration becomes a
			// plain unit and the loop degrades to ZeroOrMore.
			first := c.addUnit(unit, tok)
			loop := c.builder.AddRepeat(unit, tok, ZeroOrMore, InvalidState)
			if err := c.builder.Patch(first, loop); err != nil {
				return nil, &CompileError{Pattern: pattern, Err: err}
			}
			cur = first
			if err := c.link(prev, first); err != nil {
				return nil, &CompileError{Pattern: pattern, Err: err}
			}
			prev = loop
			i++
			continue
		default:
			cur = c.builder.AddRepeat(unit, tok, mode, InvalidState)
		}

		if err := c.link(prev, cur); err != nil {
			return nil, &CompileError{Pattern: pattern, Err: err}
		}
		prev = cur
		if quantified {
			i++
		}
	}

	// Terminate the spine. An empty pattern links start directly to match.
	match := c.builder.AddMatch()
	if err := c.link(prev, match); err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	n, err := c.builder.Build()
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return n, nil
}

// addUnit adds a bare matching unit state
func (c *Compiler) addUnit(unit StateKind, lit byte) StateID {
	if unit == StateAnyByte {
		return c.builder.AddAnyByte(InvalidState)
	}
	return c.builder.AddByte(lit, InvalidState)
}

// link wires prev's successor index 0 to cur
func (c *Compiler) link(prev, cur StateID) error {
	return c.builder.Patch(prev, cur)
}

// Compile compiles a pattern with the default configuration.
// It is shorthand for NewDefaultCompiler().Compile(pattern).
func Compile(pattern string) (*NFA, error) {
	return NewDefaultCompiler().Compile(pattern)
}
