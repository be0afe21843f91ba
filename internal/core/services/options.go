package services

import (
	"time"

	"go.uber.org/zap"
)

type Option func(*options)

type options struct {
	now func() time.Time
	log *zap.Logger
}

// WithClock replaces the wall clock used for timestamps, deadlines and end dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func newOptions(opts []Option) options {
	o := options{
		now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
