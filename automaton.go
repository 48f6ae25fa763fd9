package automata

import (
	"fmt"
	"strings"
)

var (
	_ Determinable = &Automata{}
	_ fmt.Stringer = &Automata{}
)

// Automata is an ordered collection of states with disjoint ids. Transitions
// reference labels, which are resolved against the ids of the states when
// used, so a destination may be added before the state it names.
//
// An Automata is not safe for concurrent mutation. Compose operations,
// MakeDeterministic and MakeMinimum never modify the receiver.
type Automata struct {
	states []*State

	// label -> position in states
	index map[string]int
}

// NewAutomata returns an automata holding states, in order.
func NewAutomata(states ...*State) (*Automata, error) {
	a := &Automata{
		states: make([]*State, 0, len(states)),
		index:  make(map[string]int),
	}
	for _, s := range states {
		if err := a.AddState(s); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// AddState appends s. Its id must not overlap the id of any state already present.
func (a *Automata) AddState(s *State) error {
	if s == nil {
		return fmt.Errorf("%w: nil state", ErrInvalidState)
	}
	if s.id.Len() == 0 {
		return fmt.Errorf("%w: can't add state without id", ErrInvalidState)
	}
	if a.index == nil {
		a.index = make(map[string]int)
	}
	for label := range s.id {
		if _, ok := a.index[label]; ok {
			return fmt.Errorf("%w: label %q already in use", ErrDuplicateState, label)
		}
	}
	pos := len(a.states)
	a.states = append(a.states, s)
	for label := range s.id {
		a.index[label] = pos
	}
	return nil
}

// RemoveState removes the state whose id contains label.
func (a *Automata) RemoveState(label string) error {
	pos, err := a.position(label)
	if err != nil {
		return err
	}
	a.states = append(a.states[:pos], a.states[pos+1:]...)
	a.reindex()
	return nil
}

func (a *Automata) reindex() {
	a.index = make(map[string]int, len(a.index))
	for pos, s := range a.states {
		for label := range s.id {
			a.index[label] = pos
		}
	}
}

func (a *Automata) position(label string) (int, error) {
	pos, ok := a.index[label]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrMissingState, label)
	}
	return pos, nil
}

// States returns the member states in insertion order.
func (a *Automata) States() []*State {
	states := make([]*State, len(a.states))
	copy(states, a.states)
	return states
}

// GetNumStates How many states this automata has.
func (a *Automata) GetNumStates() int {
	return len(a.states)
}

// State returns the state whose id contains label.
func (a *Automata) State(label string) (*State, error) {
	pos, err := a.position(label)
	if err != nil {
		return nil, err
	}
	return a.states[pos], nil
}

// Initial returns the single initial state.
func (a *Automata) Initial() (*State, error) {
	var initial *State
	for _, s := range a.states {
		if !s.initial {
			continue
		}
		if initial != nil {
			return nil, ErrMultipleInitialStates
		}
		initial = s
	}
	if initial == nil {
		return nil, ErrNoInitialState
	}
	return initial, nil
}

// AddTransition adds to to the destinations of the state labelled from.
func (a *Automata) AddTransition(from string, symbol Symbol, to ...string) error {
	s, err := a.State(from)
	if err != nil {
		return err
	}
	s.AddTransition(symbol, to...)
	return nil
}

// RemoveTransition removes to from the destinations of the state labelled from.
func (a *Automata) RemoveTransition(from string, symbol Symbol, to ...string) error {
	s, err := a.State(from)
	if err != nil {
		return err
	}
	s.RemoveTransition(symbol, to...)
	return nil
}

// Transition returns the states reached from the state labelled from on
// symbol, without following epsilon transitions.
func (a *Automata) Transition(from string, symbol Symbol) ([]*State, error) {
	s, err := a.State(from)
	if err != nil {
		return nil, err
	}
	return a.resolve(s.transitions[symbol])
}

// resolve maps labels to their distinct states, in automata order.
func (a *Automata) resolve(labels Set[string]) ([]*State, error) {
	set := NewStateSet(len(a.states))
	for _, label := range labels.Sorted() {
		pos, err := a.position(label)
		if err != nil {
			return nil, err
		}
		set.Add(pos)
	}
	return a.statesAt(set.GetArray()), nil
}

func (a *Automata) statesAt(positions []int) []*State {
	states := make([]*State, 0, len(positions))
	for _, pos := range positions {
		states = append(states, a.states[pos])
	}
	return states
}

// Alphabet returns every non-epsilon symbol used by some state.
func (a *Automata) Alphabet() Set[Symbol] {
	alphabet := make(Set[Symbol])
	for _, s := range a.states {
		for symbol := range s.transitions {
			if symbol != Epsilon {
				alphabet.Add(symbol)
			}
		}
	}
	return alphabet
}

// IsDeterministic Returns true if every state is deterministic and there is
// exactly one initial state.
func (a *Automata) IsDeterministic() bool {
	if _, err := a.Initial(); err != nil {
		return false
	}
	for _, s := range a.states {
		if !s.IsDeterministic() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of a.
func (a *Automata) Clone() *Automata {
	c := &Automata{
		states: make([]*State, 0, len(a.states)),
		index:  make(map[string]int, len(a.index)),
	}
	for _, s := range a.states {
		c.states = append(c.states, s.Clone())
	}
	for label, pos := range a.index {
		c.index[label] = pos
	}
	return c
}

func (a *Automata) String() string {
	parts := make([]string, 0, len(a.states))
	for _, s := range a.states {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, "\n")
}
