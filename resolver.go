// Package envvar provides typed access to environment variables.
//
// A Resolver looks a name up through a LookupFn and returns a Variable, which
// keeps the raw string and converts it to an integer or a boolean on request.
// Undefined variables are distinct from variables set to an empty string.
package envvar

import (
	"github.com/rs/zerolog"
)

// Resolver resolves variables from a lookup source. It holds no state between
// calls, so each lookup observes the current content of the source.
type Resolver struct {
	lookup LookupFn
	logger zerolog.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithLookup sets the source variables are read from. Defaults to OSEnv.
func WithLookup(lookup LookupFn) Option {
	return func(r *Resolver) {
		r.lookup = lookup
	}
}

// WithLogger sets the logger used to trace missing variables and defaults.
// Only variable names are logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a Resolver reading from the process environment unless configured otherwise
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		lookup: OSEnv,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.lookup == nil {
		r.lookup = OSEnv
	}
	return r
}

// From returns the variable with the given name, or a *MissingError if it is not defined
func (r *Resolver) From(name string) (Variable, error) {
	value, ok := r.lookup(name)
	if !ok {
		r.logger.Debug().Str("variable", name).Msg("environment variable is missing")
		return Variable{}, missing(name)
	}
	return Variable{name: name, raw: value}, nil
}

// FromOrDefault returns the variable with the given name. If it is not defined,
// the first defaultValue is used instead, or the empty string if none is given.
func (r *Resolver) FromOrDefault(name string, defaultValue ...string) Variable {
	if value, ok := r.lookup(name); ok {
		return Variable{name: name, raw: value}
	}
	var fallback string
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}
	r.logger.Debug().Str("variable", name).Msg("environment variable is missing, using default value")
	return Variable{name: name, raw: fallback, defaulted: true}
}

var defaultResolver = NewResolver()

// From returns the named variable from the process environment
func From(name string) (Variable, error) {
	return defaultResolver.From(name)
}

// FromOrDefault returns the named variable from the process environment, or defaultValue if it is not defined
func FromOrDefault(name string, defaultValue ...string) Variable {
	return defaultResolver.FromOrDefault(name, defaultValue...)
}
