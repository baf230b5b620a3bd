package mdto

import "go.uber.org/zap"

// Option configures Validate and the writing functions.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger routes advisories to log. The default discards them.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
