// Package service implements the Q&A and user profile use cases on top of a
// store.Store. Services hold no state of their own beyond the injected store.
package service

import "time"

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now for created_at, lastLogin and comment stamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
