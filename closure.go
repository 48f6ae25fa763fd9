package automata

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// StateClosure returns the states reachable from the state labelled label
// through zero or more epsilon transitions, including that state.
func (a *Automata) StateClosure(label string) ([]*State, error) {
	positions, err := a.closure(label)
	if err != nil {
		return nil, err
	}
	return a.statesAt(positions), nil
}

// closure walks epsilon transitions from every seed label and returns the
// positions of the visited states in ascending order. Each state is expanded
// at most once, so the walk ends after at most len(a.states) steps.
func (a *Automata) closure(seeds ...string) ([]int, error) {
	visited := bitset.New(uint(len(a.states)))
	workList := make([]string, 0, len(seeds))
	workList = append(workList, seeds...)

	for len(workList) > 0 {
		label := workList[len(workList)-1]
		workList = workList[:len(workList)-1]

		pos, err := a.position(label)
		if err != nil {
			return nil, err
		}
		if visited.Test(uint(pos)) {
			continue
		}
		visited.Set(uint(pos))

		for next := range a.states[pos].transitions[Epsilon] {
			nextPos, err := a.position(next)
			if err != nil {
				return nil, err
			}
			if !visited.Test(uint(nextPos)) {
				workList = append(workList, next)
			}
		}
	}

	positions := make([]int, 0, visited.Count())
	for i, ok := visited.NextSet(0); ok; i, ok = visited.NextSet(i + 1) {
		positions = append(positions, int(i))
	}
	return positions, nil
}

// ComposeStateClosure merges the epsilon closure of label into one state.
func (a *Automata) ComposeStateClosure(label string) (*State, error) {
	states, err := a.StateClosure(label)
	if err != nil {
		return nil, err
	}
	return Compose(states...)
}

// Move applies symbol to s, which may be a composite state, and merges the
// epsilon closure of every destination into one state. It returns nil and no
// error when s has no transition on symbol.
func (a *Automata) Move(s *State, symbol Symbol) (*State, error) {
	positions, err := a.step(s, symbol)
	if err != nil || len(positions) == 0 {
		return nil, err
	}
	return Compose(a.statesAt(positions)...)
}

// step returns the positions of the closure of the destinations of s on symbol.
func (a *Automata) step(s *State, symbol Symbol) ([]int, error) {
	if symbol == Epsilon {
		return nil, fmt.Errorf("%w: can't move on %s", ErrInvalidSymbol, Epsilon)
	}
	dest := s.transitions[symbol]
	if dest.Len() == 0 {
		return nil, nil
	}
	return a.closure(dest.Sorted()...)
}

// ComposeTransition is Move from the state labelled from.
func (a *Automata) ComposeTransition(from string, symbol Symbol) (*State, error) {
	s, err := a.State(from)
	if err != nil {
		return nil, err
	}
	return a.Move(s, symbol)
}

// TestInput reports whether the automata accepts input. Symbols are consumed
// left to right starting from the closure of the initial state; the input is
// rejected as soon as a symbol has no transition.
func (a *Automata) TestInput(input []Symbol) (bool, error) {
	initial, err := a.Initial()
	if err != nil {
		return false, err
	}
	current, err := a.ComposeStateClosure(initial.Labels()[0])
	if err != nil {
		return false, err
	}
	for _, symbol := range input {
		current, err = a.Move(current, symbol)
		if err != nil {
			return false, err
		}
		if current == nil {
			return false, nil
		}
	}
	return current.final, nil
}
