package automata

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// RunAutomaton is a deterministic automata compiled to a dense transition
// table. States are numbered by their position in the source automata.
type RunAutomaton struct {
	alphabet []Symbol
	symbols  map[Symbol]int
	labels   []string
	initial  int

	// numStates * len(alphabet) destinations, -1 where there is no transition
	transitions []int

	accept *bitset.BitSet
}

// Compile builds the transition table of a. It fails with ErrNonDeterministic
// unless a is deterministic.
func Compile(a *Automata) (*RunAutomaton, error) {
	if !a.IsDeterministic() {
		return nil, ErrNonDeterministic
	}

	alphabet := a.Alphabet().Sorted()
	numStates := a.GetNumStates()
	r := &RunAutomaton{
		alphabet:    alphabet,
		symbols:     make(map[Symbol]int, len(alphabet)),
		labels:      make([]string, numStates),
		transitions: make([]int, numStates*len(alphabet)),
		accept:      bitset.New(uint(numStates)),
	}
	for i, symbol := range alphabet {
		r.symbols[symbol] = i
	}

	for pos, s := range a.states {
		r.labels[pos] = s.Labels()[0]
		r.accept.SetTo(uint(pos), s.final)
		if s.initial {
			r.initial = pos
		}
		for i, symbol := range alphabet {
			dest := s.transitions[symbol]
			if dest.Len() == 0 {
				r.transitions[pos*len(alphabet)+i] = -1
				continue
			}
			next, err := a.position(dest.Sorted()[0])
			if err != nil {
				return nil, fmt.Errorf("state %q on %s: %w", r.labels[pos], symbol, err)
			}
			r.transitions[pos*len(alphabet)+i] = next
		}
	}
	return r, nil
}

// GetNumStates How many states this automaton has.
func (r *RunAutomaton) GetNumStates() int {
	return len(r.labels)
}

// Alphabet returns the symbols of the table in ascending order.
func (r *RunAutomaton) Alphabet() []Symbol {
	return append([]Symbol(nil), r.alphabet...)
}

func (r *RunAutomaton) Initial() int {
	return r.initial
}

// Label returns the label of state in the source automata.
func (r *RunAutomaton) Label(state int) string {
	return r.labels[state]
}

// IsAccept Returns true if this state is an accept state.
func (r *RunAutomaton) IsAccept(state int) bool {
	return r.accept.Test(uint(state))
}

// Step Returns the state obtained by reading symbol from state, or -1 if
// there is no transition.
func (r *RunAutomaton) Step(state int, symbol Symbol) int {
	i, ok := r.symbols[symbol]
	if !ok {
		return -1
	}
	return r.step(state, i)
}

func (r *RunAutomaton) step(state, symbol int) int {
	return r.transitions[state*len(r.alphabet)+symbol]
}

// Run Returns true if the given input is accepted by this automaton.
func (r *RunAutomaton) Run(input []Symbol) bool {
	p := r.initial
	for _, symbol := range input {
		p = r.Step(p, symbol)
		if p == -1 {
			return false
		}
	}
	return r.IsAccept(p)
}

// RunString runs s reading one symbol per rune.
func (r *RunAutomaton) RunString(s string) bool {
	return r.Run(Symbols(s))
}
