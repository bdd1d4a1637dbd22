// Package charinput implements the range-narrowing character selection state
// machine: a full ordinal range is narrowed to a single character by
// repeatedly selecting one of a fixed number of contiguous sub-ranges, with
// one-step backtracking through the navigation stack.
package charinput

import "fmt"

// Sink accepts one completed character per collapse event
type Sink interface {
	AcceptCharacter(ch rune)
}

// SinkFunc adapts a plain function to the Sink interface
type SinkFunc func(ch rune)

// AcceptCharacter implements Sink
func (f SinkFunc) AcceptCharacter(ch rune) {
	f(ch)
}

// CharacterInput narrows an ordinal range down to single characters.
// The state is the navigation stack: root-first, current-last, never empty.
// The bottom element is always the construction-time full range.
type CharacterInput struct {
	full     Interval
	branches int
	stack    []Interval
	sink     Sink
}

// New creates a character input over the full ordinal range.
// branches is the fixed number of sub-ranges offered per narrowing step and
// must match the number of distinct navigation directions the caller can
// dispatch. The sink receives each completed character synchronously.
func New(full Interval, branches int, sink Sink) (*CharacterInput, error) {
	if full.Start > full.End {
		return nil, fmt.Errorf("charinput: inverted range %v", full)
	}
	if branches < 2 {
		return nil, fmt.Errorf("charinput: branch count %d, need at least 2", branches)
	}
	if sink == nil {
		return nil, fmt.Errorf("charinput: nil sink")
	}
	return &CharacterInput{
		full:     full,
		branches: branches,
		stack:    []Interval{full},
		sink:     sink,
	}, nil
}

// Current returns the interval under navigation
func (c *CharacterInput) Current() Interval {
	return c.stack[len(c.stack)-1]
}

// Root returns the construction-time full range
func (c *CharacterInput) Root() Interval {
	return c.full
}

// Depth returns the navigation stack depth, 1 at the root
func (c *CharacterInput) Depth() int {
	return len(c.stack)
}

// Branches returns the fixed branch count
func (c *CharacterInput) Branches() int {
	return c.branches
}

// Stack returns a copy of the navigation stack, root-first
func (c *CharacterInput) Stack() []Interval {
	out := make([]Interval, len(c.stack))
	copy(out, c.stack)
	return out
}

// Preview returns the sub-interval Select(branch) would narrow to.
// Uses the same partition computation as Select so rendered labels stay
// consistent with commitment.
func (c *CharacterInput) Preview(branch int) Interval {
	return Partition(c.Current(), branch, c.branches)
}

// Select narrows the current interval to the branch-th sub-range.
// A branch outside [0, Branches()) is a caller contract error.
// When the sub-range collapses to a single ordinal the selection is terminal:
// the collapsed leaf is never pushed, the sink receives the character, and
// the navigator stays at the leaf's parent interval, ready for the next
// character. Otherwise the sub-range is pushed and becomes current.
// The sink is invoked exactly once iff collapse occurred.
func (c *CharacterInput) Select(branch int) error {
	if branch < 0 || branch >= c.branches {
		return fmt.Errorf("charinput: branch %d out of range [0, %d)", branch, c.branches)
	}

	sub := Partition(c.Current(), branch, c.branches)
	if sub.Start > sub.End {
		panic(fmt.Sprintf("charinput: narrowed to inverted interval %v", sub))
	}

	if sub.Single() {
		c.sink.AcceptCharacter(rune(sub.End))
		return nil
	}

	c.stack = append(c.stack, sub)
	return nil
}

// Back pops one level off the navigation stack and reports whether it did.
// At the root it is an idempotent no-op; the caller may surface the
// "cannot go back further" condition as a diagnostic.
func (c *CharacterInput) Back() bool {
	if len(c.stack) <= 1 {
		return false
	}
	c.stack = c.stack[:len(c.stack)-1]
	return true
}

// Reset restores the current interval to the full original range
func (c *CharacterInput) Reset() {
	c.stack = c.stack[:1]
	c.stack[0] = c.full
}

func (c *CharacterInput) String() string {
	return fmt.Sprintf("CharacterInput(depth=%d, current=%v)", len(c.stack), c.Current())
}
