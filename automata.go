package automata

import "fmt"

// MakeEmpty
// Returns a new (deterministic) automata with the empty language.
func MakeEmpty() *Automata {
	a, _ := NewAutomata(newState(NewSet(DefaultNamer(0)), true, false))
	return a
}

// MakeEmptyString
// Returns a new (deterministic) automata that accepts only the empty string.
func MakeEmptyString() *Automata {
	a, _ := NewAutomata(newState(NewSet(DefaultNamer(0)), true, true))
	return a
}

// MakeAnyString
// Returns a new (deterministic) automata that accepts all strings over alphabet.
func MakeAnyString(alphabet ...Symbol) (*Automata, error) {
	s := newState(NewSet(DefaultNamer(0)), true, true)
	for _, symbol := range alphabet {
		if symbol == Epsilon {
			return nil, fmt.Errorf("%w: %s in alphabet", ErrInvalidSymbol, Epsilon)
		}
		s.AddTransition(symbol, DefaultNamer(0))
	}
	return NewAutomata(s)
}

// MakeString
// Returns a new (deterministic) automata that accepts exactly the given symbols.
func MakeString(symbols ...Symbol) (*Automata, error) {
	states := make([]*State, 0, len(symbols)+1)
	for i := 0; i <= len(symbols); i++ {
		states = append(states, newState(NewSet(DefaultNamer(i)), i == 0, i == len(symbols)))
	}
	for i, symbol := range symbols {
		if symbol == Epsilon {
			return nil, fmt.Errorf("%w: %s in string", ErrInvalidSymbol, Epsilon)
		}
		states[i].AddTransition(symbol, DefaultNamer(i+1))
	}
	return NewAutomata(states...)
}
