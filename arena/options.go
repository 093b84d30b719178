package arena

import "strconv"

// DefaultChunkSize is the number of records allocated at once when the arena grows.
const DefaultChunkSize = 64

// Option is an arena configuration option.
type Option interface {
	apply(*arenaOptions)
}

type arenaOptions struct {
	chunkSize int
}

func newDefaultOptions() arenaOptions {
	return arenaOptions{
		chunkSize: DefaultChunkSize,
	}
}

// WithChunkSize option configures how many records are allocated at once.
//
// The zero value configures DefaultChunkSize.
func WithChunkSize(n int) Option {
	return funcOption(func(opts *arenaOptions) {
		switch {
		case n == 0:
			opts.chunkSize = DefaultChunkSize

		case n > 0 && n <= 1<<20:
			opts.chunkSize = n

		default:
			panic("arena: invalid chunk size " + strconv.Itoa(n))
		}
	})
}

type funcOption func(*arenaOptions)

func (o funcOption) apply(opts *arenaOptions) {
	o(opts)
}
