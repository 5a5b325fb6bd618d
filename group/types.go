// Package group options and sentinel errors, following the functional
// option idiom used across the module.
package group

import "errors"

// DefaultSinkCap bounds the number of distinct canonical elements when no
// explicit cap is configured. Presentations describing larger (or
// infinite) groups abort with ErrSinkCapExceeded.
const DefaultSinkCap = 50

var (
	// ErrSinkCapExceeded is returned when integrating a relation would
	// create more distinct sinks than the configured cap allows. The
	// store is left partially integrated; the Group must be considered
	// unusable afterward.
	ErrSinkCapExceeded = errors.New("group: sink cap exceeded")

	// ErrIncomplete is returned by CanonicalForm and Inverse when the
	// structure has not been completed yet. Run Complete first.
	ErrIncomplete = errors.New("group: structure not complete")

	// ErrUnknownGenerator is returned when a query word contains a
	// character that never appeared in any integrated relation.
	ErrUnknownGenerator = errors.New("group: unknown generator character")
)

// Option configures optional behavior of New.
type Option func(*Options)

// Options holds the configurable parameters of a Group.
type Options struct {
	// Name identifies the group in reports. Purely cosmetic.
	Name string

	// SinkCap is the maximum number of distinct sinks allowed before the
	// presentation is presumed divergent. Default DefaultSinkCap.
	SinkCap int

	// DeferCompletion, if true, skips the completion loops during New.
	// The caller runs Complete (or the individual closure steps) later.
	DeferCompletion bool
}

// DefaultOptions returns the Options used by New when no Option overrides
// them: an unnamed group, the default sink cap, immediate completion.
func DefaultOptions() Options {
	return Options{
		Name:            "unnamed",
		SinkCap:         DefaultSinkCap,
		DeferCompletion: false,
	}
}

// WithName returns an Option that names the group for reporting.
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

// WithSinkCap returns an Option that bounds the number of distinct
// canonical elements. Non-positive caps are ignored.
func WithSinkCap(cap int) Option {
	return func(o *Options) {
		if cap > 0 {
			o.SinkCap = cap
		}
	}
}

// WithDeferredCompletion returns an Option that leaves the structure
// unevaluated after construction; the caller decides when to Complete.
func WithDeferredCompletion() Option {
	return func(o *Options) {
		o.DeferCompletion = true
	}
}

// Rule is an oriented rewrite rule: Left rewrites to the strictly smaller
// Right under the canonical ordering. Reports render both sides in
// compressed human notation.
type Rule struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}
