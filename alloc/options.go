package alloc

// DefaultMaxSize is the request ceiling used when no WithMaxSize option
// is given: 1 GiB, a size a single container allocation should never
// realistically reach.
const DefaultMaxSize = 1 << 30

type config struct {
	maxSize int
}

// Option configures an allocator constructor.
type Option func(*config)

// WithMaxSize sets the largest single request the allocator will accept.
// Requests above the ceiling fail without touching the backing store.
func WithMaxSize(n int) Option {
	return func(c *config) {
		c.maxSize = n
	}
}

func applyOptions(opts []Option) config {
	c := config{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
