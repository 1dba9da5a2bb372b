package decompose

// Option configures a single Run invocation.
type Option func(*runOptions)

type runOptions struct {
	bagSizeObserver func(maxBagSize int)
}

func defaultOptions() runOptions {
	return runOptions{bagSizeObserver: func(int) {}}
}

// WithBagSizeObserver registers a callback invoked with the current
// maximum bag size after every growth step. FillWhilstMST and
// FillWhilstMSTAndLogBagSize call it; every other strategy ignores it. The
// engine never performs I/O
// itself; logging, if any, happens inside the callback.
func WithBagSizeObserver(fn func(maxBagSize int)) Option {
	return func(o *runOptions) {
		if fn != nil {
			o.bagSizeObserver = fn
		}
	}
}
