package automata

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// words returns every word over alphabet of length at most maxLen.
func words(alphabet []Symbol, maxLen int) [][]Symbol {
	result := [][]Symbol{{}}
	frontier := [][]Symbol{{}}
	for n := 0; n < maxLen; n++ {
		next := make([][]Symbol, 0, len(frontier)*len(alphabet))
		for _, w := range frontier {
			for _, symbol := range alphabet {
				word := make([]Symbol, 0, len(w)+1)
				word = append(word, w...)
				next = append(next, append(word, symbol))
			}
		}
		result = append(result, next...)
		frontier = next
	}
	return result
}

func assertSameLanguage(t *testing.T, want, got *Automata, alphabet []Symbol, maxLen int) {
	t.Helper()
	for _, w := range words(alphabet, maxLen) {
		expected, err := want.TestInput(w)
		require.NoError(t, err)
		actual, err := got.TestInput(w)
		require.NoError(t, err)
		assert.Equal(t, expected, actual, "word %v", w)
	}
}

func TestAutomata_MakeDeterministic(t *testing.T) {
	t.Run("ZeroStarOneStar", func(t *testing.T) {
		a := zeroStarOneStar(t)
		r, err := a.MakeDeterministic()
		require.NoError(t, err)
		d := r.Automata
		assert.True(t, d.IsDeterministic())
		assert.Equal(t, 2, d.GetNumStates())

		for _, w := range []string{"", "0", "11", "0011"} {
			ok, err := Run(d, w)
			require.NoError(t, err)
			assert.True(t, ok, "%q should be accepted", w)
		}
		for _, w := range []string{"10", "101"} {
			ok, err := Run(d, w)
			require.NoError(t, err)
			assert.False(t, ok, "%q should be rejected", w)
		}

		name, ok := r.NameOf("A", "B")
		require.True(t, ok)
		assert.Equal(t, "q0", name)
		name, ok = r.NameOf("B")
		require.True(t, ok)
		assert.Equal(t, "q1", name)
		_, ok = r.NameOf("A")
		assert.False(t, ok)

		initial, err := d.Initial()
		require.NoError(t, err)
		assert.Equal(t, []string{"q0"}, initial.Labels())
		assert.True(t, initial.IsFinal())
	})

	t.Run("AlreadyDeterministic", func(t *testing.T) {
		a := endsWithZero(t)
		r, err := a.MakeDeterministic()
		require.NoError(t, err)
		d := r.Automata
		assert.True(t, d.IsDeterministic())
		assert.LessOrEqual(t, d.GetNumStates(), a.GetNumStates())
		assertSameLanguage(t, a, d, []Symbol{"0", "1"}, 6)

		// same transition structure under the renaming
		for _, from := range []string{"A", "B"} {
			src := mustLookup(t, a, from)
			name, ok := r.NameOf(from)
			require.True(t, ok)
			dst := mustLookup(t, d, name)
			assert.Equal(t, src.IsFinal(), dst.IsFinal())
			for _, symbol := range []Symbol{"0", "1"} {
				want, ok := r.NameOf(src.Transition(symbol).Sorted()...)
				require.True(t, ok)
				assert.Equal(t, []string{want}, dst.Transition(symbol).Sorted())
			}
		}
	})

	t.Run("Equivalence", func(t *testing.T) {
		tests := []struct {
			name  string
			build func(t *testing.T) *Automata
		}{
			{"0*1*", zeroStarOneStar},
			{"ends with 0", endsWithZero},
			{"second to last is a", secondToLastIsA},
			{"epsilon cycle", epsilonCycle},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				a := tt.build(t)
				r, err := a.MakeDeterministic()
				require.NoError(t, err)
				assert.True(t, r.Automata.IsDeterministic())
				assertSameLanguage(t, a, r.Automata, append(a.Alphabet().Sorted(), "z"), 6)
			})
		}
	})

	t.Run("SubsetCount", func(t *testing.T) {
		r, err := secondToLastIsA(t).MakeDeterministic()
		require.NoError(t, err)
		// {S0} {S0,S1} {S0,S1,S2} {S0,S2}
		assert.Equal(t, 4, r.Automata.GetNumStates())
		assert.Len(t, r.Changes, 4)
		for _, from := range [][]string{{"S0"}, {"S0", "S1"}, {"S0", "S1", "S2"}, {"S0", "S2"}} {
			_, ok := r.NameOf(from...)
			assert.True(t, ok, "%v", from)
		}
	})

	t.Run("InputUntouched", func(t *testing.T) {
		a := zeroStarOneStar(t)
		before := a.String()
		_, err := a.MakeDeterministic()
		require.NoError(t, err)
		assert.Equal(t, before, a.String())
	})

	t.Run("UnreachableDropped", func(t *testing.T) {
		a := endsWithZero(t)
		require.NoError(t, a.AddState(mustState(t, []string{"U"}, false, true)))
		require.NoError(t, a.AddTransition("U", "0", "A"))
		r, err := a.MakeDeterministic()
		require.NoError(t, err)
		assert.Equal(t, 2, r.Automata.GetNumStates())
		_, ok := r.NameOf("U")
		assert.False(t, ok)
	})

	t.Run("Namer", func(t *testing.T) {
		r, err := zeroStarOneStar(t).MakeDeterministic(WithNamer(func(i int) string {
			return fmt.Sprintf("S%d", i+1)
		}))
		require.NoError(t, err)
		name, ok := r.NameOf("A", "B")
		require.True(t, ok)
		assert.Equal(t, "S1", name)
	})

	t.Run("WorkLimit", func(t *testing.T) {
		_, err := secondToLastIsA(t).MakeDeterministic(WithWorkLimit(3))
		assert.ErrorIs(t, err, ErrTooComplex)

		_, err = secondToLastIsA(t).MakeDeterministic(WithWorkLimit(4))
		assert.NoError(t, err)

		_, err = secondToLastIsA(t).MakeDeterministic(WithWorkLimit(0))
		assert.NoError(t, err)
	})

	t.Run("Errors", func(t *testing.T) {
		a := mustAutomata(t, "A", nil, nil)
		require.NoError(t, a.AddTransition("A", "0", "Z"))
		_, err := a.MakeDeterministic()
		assert.ErrorIs(t, err, ErrMissingState)

		empty, err := NewAutomata()
		require.NoError(t, err)
		_, err = empty.MakeDeterministic()
		assert.ErrorIs(t, err, ErrNoInitialState)
	})
}

func TestWords(t *testing.T) {
	assert.Len(t, words([]Symbol{"a", "b"}, 3), 1+2+4+8)
	assert.Equal(t, [][]Symbol{{}}, words([]Symbol{"a"}, 0))
}
