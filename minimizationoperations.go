package automata

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// MakeMinimum minimizes (and determinizes if not already deterministic) the
// automata. States that are unreachable or cannot reach a final state are
// dropped, the rest are merged by partition refinement: final and non-final
// states start in separate blocks and a block is split while two of its
// states move into different blocks on some symbol. The changes of the result
// refer to the labels of the receiver even when a determinization step was
// needed.
func (a *Automata) MakeMinimum(opts ...Option) (*Result, error) {
	o := newOptions(opts...)

	d := a
	var trace map[string][]string
	if !a.IsDeterministic() {
		r, err := a.determinize(o)
		if err != nil {
			return nil, err
		}
		d = r.Automata
		trace = make(map[string][]string, len(r.Changes))
		for _, c := range r.Changes {
			trace[c.To] = c.From
		}
	}
	return d.minimize(o, trace)
}

func (a *Automata) minimize(o *options, trace map[string][]string) (*Result, error) {
	r, err := Compile(a)
	if err != nil {
		return nil, err
	}

	order := bfsOrder(r)
	live := getLiveStates(r)
	if !live.Test(uint(r.initial)) {
		// empty language
		return a.emptyMinimum(o, r, trace)
	}

	block := refine(r, order, live)

	// members of each block, block 0 holds the initial state
	numBlocks := 0
	for _, s := range order {
		if live.Test(uint(s)) && block[s]+1 > numBlocks {
			numBlocks = block[s] + 1
		}
	}
	members := make([][]int, numBlocks)
	for _, s := range order {
		if live.Test(uint(s)) {
			members[block[s]] = append(members[block[s]], s)
		}
	}

	b, _ := NewAutomata()
	result := &Result{Automata: b}
	for i, m := range members {
		composite, err := Compose(a.statesAt(m)...)
		if err != nil {
			return nil, err
		}
		s, err := NewState([]string{o.namer(i)}, i == 0, composite.final)
		if err != nil {
			return nil, err
		}
		if err := b.AddState(s); err != nil {
			return nil, err
		}
		result.Changes = append(result.Changes, Change{
			From: traceLabels(composite, trace),
			To:   s.Labels()[0],
		})
	}

	for i, m := range members {
		rep := m[0]
		for j, symbol := range r.alphabet {
			next := r.step(rep, j)
			if next == -1 || !live.Test(uint(next)) {
				continue
			}
			b.states[i].AddTransition(symbol, b.states[block[next]].Labels()[0])
		}
	}
	return result, nil
}

func (a *Automata) emptyMinimum(o *options, r *RunAutomaton, trace map[string][]string) (*Result, error) {
	s, err := NewState([]string{o.namer(0)}, true, false)
	if err != nil {
		return nil, err
	}
	b, err := NewAutomata(s)
	if err != nil {
		return nil, err
	}
	return &Result{
		Automata: b,
		Changes: []Change{{
			From: traceLabels(a.states[r.initial], trace),
			To:   s.Labels()[0],
		}},
	}, nil
}

// refine returns the block of every live state once no block can be split
// any further. Blocks are numbered in order of first appearance in order, so
// the initial state is always in block 0. Each round either adds a block or
// stops, so there are at most as many rounds as live states.
func refine(r *RunAutomaton, order []int, live *bitset.BitSet) []int {
	block := make([]int, r.GetNumStates())
	for _, s := range order {
		if r.IsAccept(s) {
			block[s] = 1
		}
	}

	numBlocks := -1
	for {
		next := make([]int, len(block))
		signatures := make(map[string]int)
		for _, s := range order {
			if !live.Test(uint(s)) {
				continue
			}
			key := signature(r, block, live, s)
			n, ok := signatures[key]
			if !ok {
				n = len(signatures)
				signatures[key] = n
			}
			next[s] = n
		}
		block = next
		if len(signatures) == numBlocks {
			return block
		}
		numBlocks = len(signatures)
	}
}

// signature describes the block of s and the blocks it moves to; -1 stands
// for a missing or dead destination.
func signature(r *RunAutomaton, block []int, live *bitset.BitSet, s int) string {
	b := new(strings.Builder)
	b.WriteString(strconv.Itoa(block[s]))
	for i := range r.alphabet {
		b.WriteByte(':')
		next := r.step(s, i)
		if next == -1 || !live.Test(uint(next)) {
			b.WriteString("-1")
			continue
		}
		b.WriteString(strconv.Itoa(block[next]))
	}
	return b.String()
}

// bfsOrder lists the states reachable from the initial state, breadth first.
func bfsOrder(r *RunAutomaton) []int {
	seen := bitset.New(uint(r.GetNumStates()))
	seen.Set(uint(r.initial))
	order := []int{r.initial}
	for i := 0; i < len(order); i++ {
		for j := range r.alphabet {
			next := r.step(order[i], j)
			if next != -1 && !seen.Test(uint(next)) {
				seen.Set(uint(next))
				order = append(order, next)
			}
		}
	}
	return order
}

// traceLabels maps the labels of s back through trace, if any.
func traceLabels(s *State, trace map[string][]string) []string {
	if trace == nil {
		return s.Labels()
	}
	labels := make(Set[string])
	for _, label := range s.Labels() {
		if from, ok := trace[label]; ok {
			labels.Add(from...)
		} else {
			labels.Add(label)
		}
	}
	return labels.Sorted()
}
