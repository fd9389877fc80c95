package redirect

// Option defines a common functional options type which can be used in a
// variadic parameter pattern.
type Option func(interface{})

// ApplyOpts takes a pointer to the options struct as a set of default options
// and applies the slice of opts as overrides.
func ApplyOpts(opts interface{}, opt ...Option) {
	for _, o := range opt {
		if o == nil { // ignore any nil Options
			continue
		}
		o(opts)
	}
}

type strategyOptions struct {
	withStatusCode int
}

func strategyDefaults() strategyOptions {
	return strategyOptions{
		withStatusCode: 0,
	}
}

// getStrategyOpts gets the defaults and applies the opt overrides passed in.
func getStrategyOpts(opt ...Option) strategyOptions {
	opts := strategyDefaults()
	ApplyOpts(&opts, opt...)
	return opts
}

// WithStatusCode provides an optional status code for a strategy's response,
// overriding the strategy's default (http.StatusFound for RedirectStrategy,
// http.StatusUnauthorized for RejectStrategy). The strategy constructor
// validates that the code fits the strategy.
func WithStatusCode(code int) Option {
	return func(o interface{}) {
		switch v := o.(type) {
		case *strategyOptions:
			v.withStatusCode = code
		}
	}
}
