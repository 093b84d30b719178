package ilist

// Option is a list configuration option.
type Option interface {
	apply(*listOptions)
}

type listOptions struct {
	name string
}

func newDefaultListOptions() listOptions {
	return listOptions{}
}

// WithName option labels the list in String and Dump output.
//
// The zero value labels the list with its numeric id.
func WithName(name string) Option {
	return funcOption(func(opts *listOptions) {
		opts.name = name
	})
}

type funcOption func(*listOptions)

func (o funcOption) apply(opts *listOptions) {
	o(opts)
}
