package automata

// IntSet is a set of state positions usable as a HashMap key.
type IntSet interface {
	Hashable

	GetArray() []int

	Size() int
}

// mix32 is the 32-bit finalization step of MurmurHash3.
func mix32(v int) int {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}

// hashInts is order independent so a set hashes the same however it was built.
func hashInts(values []int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h += uint64(mix32(v))
	}
	return h
}
