package auth

import (
	"fmt"
	"os"
)

// Source indicates where a password attempt came from
type Source string

const (
	SourceFlag   Source = "flag"
	SourceEnv    Source = "env"
	SourcePrompt Source = "prompt"
	SourceNone   Source = "none"
)

// Attempt is a resolved password attempt and its origin.
type Attempt struct {
	Password string
	Source   Source
}

// AttemptProvider tries to supply a password. It returns ok=false when it
// has nothing to offer and an error only for unexpected failures.
type AttemptProvider func() (password string, ok bool, err error)

// Resolver collects a password attempt from several sources in priority
// order. Scripts pass the password through a flag or the environment; an
// interactive session falls through to the prompt.
type Resolver struct {
	providers []struct {
		source Source
		fn     AttemptProvider
	}
}

// NewResolver creates a resolver with no sources.
func NewResolver() *Resolver {
	return &Resolver{}
}

// WithFlagValue adds an already parsed flag value as a source.
func (r *Resolver) WithFlagValue(value string) *Resolver {
	return r.with(SourceFlag, func() (string, bool, error) {
		return value, value != "", nil
	})
}

// WithEnv adds an environment variable as a source.
func (r *Resolver) WithEnv(envVar string) *Resolver {
	return r.with(SourceEnv, func() (string, bool, error) {
		v, ok := os.LookupEnv(envVar)
		return v, ok && v != "", nil
	})
}

// WithPrompt adds an interactive prompt, normally the last source.
func (r *Resolver) WithPrompt(fn func() (string, error)) *Resolver {
	return r.with(SourcePrompt, func() (string, bool, error) {
		v, err := fn()
		if err != nil {
			return "", false, err
		}

		return v, true, nil
	})
}

func (r *Resolver) with(source Source, fn AttemptProvider) *Resolver {
	r.providers = append(r.providers, struct {
		source Source
		fn     AttemptProvider
	}{source, fn})

	return r
}

// Resolve returns the first attempt offered. An empty prompt answer is still
// an attempt; it simply fails verification.
func (r *Resolver) Resolve() (Attempt, error) {
	for _, p := range r.providers {
		pw, ok, err := p.fn()
		if err != nil {
			return Attempt{Source: SourceNone}, fmt.Errorf("reading password from %s: %w", p.source, err)
		}

		if ok {
			return Attempt{Password: pw, Source: p.source}, nil
		}
	}

	return Attempt{Source: SourceNone}, ErrCancelled
}
