package automata

import "strconv"

// DefaultDeterminizeWorkLimit is the default maximum number of states subset
// construction may create before giving up with ErrTooComplex.
const DefaultDeterminizeWorkLimit = 10000

// Namer returns the fresh label given to the i'th state of a rebuilt automata.
type Namer func(i int) string

// DefaultNamer names states q0, q1, q2...
func DefaultNamer(i int) string {
	return "q" + strconv.Itoa(i)
}

type options struct {
	workLimit int
	namer     Namer
}

type Option func(*options)

// WithWorkLimit bounds the number of states MakeDeterministic may create.
// Non-positive values disable the limit.
func WithWorkLimit(limit int) Option {
	return func(o *options) {
		o.workLimit = limit
	}
}

// WithNamer sets the generator of fresh state labels.
func WithNamer(namer Namer) Option {
	return func(o *options) {
		if namer != nil {
			o.namer = namer
		}
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		workLimit: DefaultDeterminizeWorkLimit,
		namer:     DefaultNamer,
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}
