package automata

import "fmt"

// Change records that the states with labels From were replaced by the single
// state labelled To.
type Change struct {
	From []string
	To   string
}

// Result is a rebuilt automata together with the trace from the labels of
// the input automata to the fresh labels of the new one.
type Result struct {
	Automata *Automata
	Changes  []Change
}

// NameOf returns the fresh label assigned to exactly the set labels.
func (r *Result) NameOf(labels ...string) (string, bool) {
	want := NewSet(labels...)
	for _, c := range r.Changes {
		if want.Equal(NewSet(c.From...)) {
			return c.To, true
		}
	}
	return "", false
}

// MakeDeterministic builds an equivalent deterministic automata by subset
// construction. Each state of the result stands for the epsilon closed set of
// states of a that can be active at once; only sets reachable from the
// initial state are built. The result is partial: a missing transition
// rejects. Worst case complexity: exponential in number of states, so by
// default construction stops with ErrTooComplex after
// DefaultDeterminizeWorkLimit states; use WithWorkLimit to change or lift it.
func (a *Automata) MakeDeterministic(opts ...Option) (*Result, error) {
	return a.determinize(newOptions(opts...))
}

type subset struct {
	positions []int
	state     *State
}

func (a *Automata) determinize(o *options) (*Result, error) {
	initial, err := a.Initial()
	if err != nil {
		return nil, err
	}
	initialSet, err := a.closure(initial.Labels()[0])
	if err != nil {
		return nil, err
	}

	alphabet := a.Alphabet().Sorted()
	b, _ := NewAutomata()
	result := &Result{Automata: b}

	// sets with equal contents are the same DFA state
	newState := NewHashMap[int](WithCapacity(len(a.states)))
	worklist := make([]subset, 0)

	lookup := func(positions []int) (*State, error) {
		key := a.stateSet(positions)
		if n, ok := newState.Get(key); ok {
			return b.states[n], nil
		}
		if o.workLimit > 0 && b.GetNumStates() >= o.workLimit {
			return nil, fmt.Errorf("%w: more than %d states", ErrTooComplex, o.workLimit)
		}
		composite, err := Compose(a.statesAt(positions)...)
		if err != nil {
			return nil, err
		}
		n := b.GetNumStates()
		s, err := NewState([]string{o.namer(n)}, n == 0, composite.final)
		if err != nil {
			return nil, err
		}
		if err := b.AddState(s); err != nil {
			return nil, err
		}
		newState.Set(key.Freeze(), n)
		result.Changes = append(result.Changes, Change{From: composite.Labels(), To: s.Labels()[0]})
		worklist = append(worklist, subset{positions: positions, state: s})
		return s, nil
	}

	if _, err := lookup(initialSet); err != nil {
		return nil, err
	}

	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]

		composite, err := Compose(a.statesAt(current.positions)...)
		if err != nil {
			return nil, err
		}
		for _, symbol := range alphabet {
			positions, err := a.step(composite, symbol)
			if err != nil {
				return nil, err
			}
			if len(positions) == 0 {
				continue
			}
			target, err := lookup(positions)
			if err != nil {
				return nil, err
			}
			current.state.AddTransition(symbol, target.Labels()[0])
		}
	}

	return result, nil
}

func (a *Automata) stateSet(positions []int) *StateSet {
	set := NewStateSet(len(a.states))
	for _, pos := range positions {
		set.Add(pos)
	}
	return set
}
