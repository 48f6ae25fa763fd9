package automata

import "errors"

var (
	// ErrInvalidState is returned when a state is built with an empty id.
	ErrInvalidState = errors.New("invalid state")

	// ErrMissingState is returned when a label does not resolve to any state.
	ErrMissingState = errors.New("missing state")

	// ErrDuplicateState is returned when a state id overlaps one already present.
	ErrDuplicateState = errors.New("duplicate state")

	// ErrEmptyComposition is returned when composing zero states.
	ErrEmptyComposition = errors.New("can't compose an empty list of states")

	ErrNoInitialState        = errors.New("automata has no initial state")
	ErrMultipleInitialStates = errors.New("automata has more than one initial state")

	// ErrInvalidSymbol is returned when epsilon is used where an input symbol is required.
	ErrInvalidSymbol = errors.New("invalid input symbol")

	// ErrNonDeterministic is returned by operations that only accept a DFA.
	ErrNonDeterministic = errors.New("input automata must be deterministic")

	// ErrTooComplex is returned when subset construction exceeds its work limit.
	ErrTooComplex = errors.New("too complex to determinize")
)
