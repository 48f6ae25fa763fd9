package automata

import (
	"fmt"
	"strings"
)

// Symbol is an input symbol of the alphabet.
type Symbol string

// Epsilon marks a spontaneous transition. It is never part of the alphabet.
const Epsilon Symbol = "λ"

// Determinable is implemented by anything that can tell whether it is deterministic.
type Determinable interface {
	IsDeterministic() bool
}

var (
	_ Determinable = &State{}
	_ fmt.Stringer = &State{}
)

// State is a vertex of an automata. An original vertex has an id of size 1, a
// composite vertex carries the union of the ids of the vertices it stands for.
// Transitions point to labels, which are resolved by the owning Automata.
type State struct {
	id          Set[string]
	initial     bool
	final       bool
	transitions map[Symbol]Set[string]
}

// NewState returns a state with the given id. It fails with ErrInvalidState
// if id is empty.
func NewState(id []string, initial, final bool) (*State, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("%w: can't create state without id", ErrInvalidState)
	}
	return newState(NewSet(id...), initial, final), nil
}

func newState(id Set[string], initial, final bool) *State {
	return &State{
		id:          id,
		initial:     initial,
		final:       final,
		transitions: make(map[Symbol]Set[string]),
	}
}

// ID returns a copy of the state's id set.
func (s *State) ID() Set[string] {
	return s.id.Clone()
}

// Labels returns the id labels in ascending order.
func (s *State) Labels() []string {
	return s.id.Sorted()
}

func (s *State) Has(label string) bool {
	return s.id.Contains(label)
}

func (s *State) IsInitial() bool {
	return s.initial
}

func (s *State) IsFinal() bool {
	return s.final
}

// Inputs returns the symbols with at least one registered destination.
func (s *State) Inputs() Set[Symbol] {
	inputs := make(Set[Symbol], len(s.transitions))
	for symbol := range s.transitions {
		inputs.Add(symbol)
	}
	return inputs
}

// AddTransition adds to to the destinations of symbol.
func (s *State) AddTransition(symbol Symbol, to ...string) {
	if len(to) == 0 {
		return
	}
	dest, ok := s.transitions[symbol]
	if !ok {
		dest = make(Set[string], len(to))
		s.transitions[symbol] = dest
	}
	dest.Add(to...)
}

// RemoveTransition removes to from the destinations of symbol. Labels that
// are not destinations are ignored.
func (s *State) RemoveTransition(symbol Symbol, to ...string) {
	dest, ok := s.transitions[symbol]
	if !ok {
		return
	}
	dest.Remove(to...)
	if dest.Len() == 0 {
		delete(s.transitions, symbol)
	}
}

// Transition returns a copy of the destinations of symbol, empty if none.
func (s *State) Transition(symbol Symbol) Set[string] {
	return s.transitions[symbol].Clone()
}

// ComposeState returns a new state standing for both s and other. Neither
// operand is modified. Epsilon destinations already inside the new id are
// dropped.
func (s *State) ComposeState(other *State) *State {
	result := newState(s.id.Union(other.id), s.initial || other.initial, s.final || other.final)
	for symbol := range s.Inputs().Union(other.Inputs()) {
		dest := s.transitions[symbol].Union(other.transitions[symbol])
		if symbol == Epsilon {
			dest = dest.Difference(result.id)
		}
		result.AddTransition(symbol, dest.Sorted()...)
	}
	return result
}

// ComposeStates folds ComposeState over states starting from s. With no
// arguments it returns a copy of s.
func (s *State) ComposeStates(states ...*State) *State {
	if len(states) == 0 {
		return s.Clone()
	}
	result := s
	for _, other := range states {
		result = result.ComposeState(other)
	}
	return result
}

// Compose merges states into a new state, none of states is returned as is.
// It fails with ErrEmptyComposition when states is empty.
func Compose(states ...*State) (*State, error) {
	if len(states) == 0 {
		return nil, ErrEmptyComposition
	}
	return states[0].ComposeStates(states[1:]...), nil
}

// IsDeterministic reports whether s is an original vertex with at most one
// destination per symbol and no epsilon transitions.
func (s *State) IsDeterministic() bool {
	if s.id.Len() != 1 {
		return false
	}
	for symbol, dest := range s.transitions {
		if symbol == Epsilon {
			if dest.Len() > 0 {
				return false
			}
		} else if dest.Len() > 1 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := newState(s.id.Clone(), s.initial, s.final)
	for symbol, dest := range s.transitions {
		c.transitions[symbol] = dest.Clone()
	}
	return c
}

func (s *State) String() string {
	b := new(strings.Builder)
	b.WriteString("[(")
	b.WriteString(strings.Join(s.Labels(), ","))
	b.WriteString(")")
	if s.initial {
		b.WriteString(" initial")
	}
	if s.final {
		b.WriteString(" final")
	}
	b.WriteString("]")
	for _, symbol := range s.Inputs().Sorted() {
		fmt.Fprintf(b, " %s->%s", symbol, s.transitions[symbol])
	}
	return b.String()
}
