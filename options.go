package gocalc

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 1000

// Options controls parsing behavior.
type Options struct {
	// MaxDepth bounds how deeply parentheses and unary minus may nest.
	// Zero means DefaultMaxDepth, a negative value disables the limit.
	MaxDepth int
}

func (o *Options) normalize() Options {
	if o == nil {
		return Options{MaxDepth: DefaultMaxDepth}
	}

	out := *o
	if out.MaxDepth == 0 {
		out.MaxDepth = DefaultMaxDepth
	}
	return out
}
