package automata

// Symbols splits s into one symbol per rune.
func Symbols(s string) []Symbol {
	symbols := make([]Symbol, 0, len(s))
	for _, v := range s {
		symbols = append(symbols, Symbol(string(v)))
	}
	return symbols
}

// Run reports whether a accepts s, reading one symbol per rune.
func Run(a *Automata, s string) (bool, error) {
	return a.TestInput(Symbols(s))
}
