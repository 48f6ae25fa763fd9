package automata

import (
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// IsEmpty Returns true if the given automata accepts no strings, i.e. no
// final state is reachable from the initial state.
func IsEmpty(a *Automata) (bool, error) {
	initial, err := a.Initial()
	if err != nil {
		return false, err
	}
	if initial.final {
		// accepts the empty string
		return false, nil
	}

	start, err := a.position(initial.Labels()[0])
	if err != nil {
		return false, err
	}
	workList := []int{start}
	seen := bitset.New(uint(a.GetNumStates()))
	seen.Set(uint(start))

	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		if a.states[state].final {
			return false, nil
		}
		for _, dest := range a.states[state].transitions {
			for label := range dest {
				next, err := a.position(label)
				if err != nil {
					return false, err
				}
				if !seen.Test(uint(next)) {
					seen.Set(uint(next))
					workList = append(workList, next)
				}
			}
		}
	}
	return true, nil
}

// getLiveStates returns the states that are both reachable from the initial
// state and able to reach an accept state.
func getLiveStates(r *RunAutomaton) *bitset.BitSet {
	live := getLiveStatesFromInitial(r)
	return live.Intersection(getLiveStatesToAccept(r))
}

func getLiveStatesFromInitial(r *RunAutomaton) *bitset.BitSet {
	live := bitset.New(uint(r.GetNumStates()))
	if r.GetNumStates() == 0 {
		return live
	}
	live.Set(uint(r.initial))
	workList := []int{r.initial}

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for i := range r.alphabet {
			next := r.step(s, i)
			if next != -1 && !live.Test(uint(next)) {
				live.Set(uint(next))
				workList = append(workList, next)
			}
		}
	}
	return live
}

func getLiveStatesToAccept(r *RunAutomaton) *bitset.BitSet {
	numStates := r.GetNumStates()

	// reverse edges
	reverse := make([][]int, numStates)
	for s := 0; s < numStates; s++ {
		for i := range r.alphabet {
			if next := r.step(s, i); next != -1 {
				reverse[next] = append(reverse[next], s)
			}
		}
	}

	live := r.accept.Clone()
	workList := make([]int, 0, live.Count())
	for s, ok := live.NextSet(0); ok; s, ok = live.NextSet(s + 1) {
		workList = append(workList, int(s))
	}
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, prev := range reverse[s] {
			if !live.Test(uint(prev)) {
				live.Set(uint(prev))
				workList = append(workList, prev)
			}
		}
	}
	return live
}

// Totalize returns a copy of the deterministic automata a in which every
// state has a transition on every symbol of a's alphabet and of alphabet.
// Missing transitions go to a new non-final sink state, which is only added
// when some transition is missing.
func Totalize(a *Automata, alphabet ...Symbol) (*Automata, error) {
	if !a.IsDeterministic() {
		return nil, ErrNonDeterministic
	}
	symbols := a.Alphabet()
	for _, symbol := range alphabet {
		if symbol == Epsilon {
			return nil, ErrInvalidSymbol
		}
		symbols.Add(symbol)
	}

	result := a.Clone()
	sink := result.freshLabel("sink")
	var missing bool
	for _, s := range result.states {
		for _, symbol := range symbols.Sorted() {
			if s.transitions[symbol].Len() == 0 {
				s.AddTransition(symbol, sink)
				missing = true
			}
		}
	}
	if !missing {
		return result, nil
	}

	dead := newState(NewSet(sink), false, false)
	for symbol := range symbols {
		dead.AddTransition(symbol, sink)
	}
	if err := result.AddState(dead); err != nil {
		return nil, err
	}
	return result, nil
}

func (a *Automata) freshLabel(base string) string {
	label := base
	for i := 1; ; i++ {
		if _, ok := a.index[label]; !ok {
			return label
		}
		label = base + strconv.Itoa(i)
	}
}

// Complement returns a deterministic automata accepting exactly the strings
// over a's alphabet that a rejects.
func Complement(a *Automata, opts ...Option) (*Automata, error) {
	r, err := a.MakeDeterministic(opts...)
	if err != nil {
		return nil, err
	}
	total, err := Totalize(r.Automata, a.Alphabet().Sorted()...)
	if err != nil {
		return nil, err
	}

	result, _ := NewAutomata()
	for _, s := range total.states {
		c := s.Clone()
		c.final = !s.final
		if err := result.AddState(c); err != nil {
			return nil, err
		}
	}
	return result, nil
}
