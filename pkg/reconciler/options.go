package reconciler

import (
	"fmt"

	"github.com/agentstation/draftboard/pkg/errors"
	"github.com/agentstation/draftboard/pkg/sources"
)

type options struct {
	enrichers []sources.Enricher
	collector *Collector
	observers []Observer
}

// Option configures a Reconciler.
type Option func(*options) error

func newOptions(primary sources.Primary, opts ...Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	seen := map[sources.ID]bool{primary.ID(): true}
	for _, e := range o.enrichers {
		if seen[e.ID()] {
			return nil, &errors.ValidationError{
				Field:   "enrichers",
				Value:   e.ID(),
				Message: fmt.Sprintf("source %s configured twice", e.ID()),
			}
		}
		seen[e.ID()] = true
	}
	return o, nil
}

// WithEnrichers sets the enrichers, run in the given order.
func WithEnrichers(enrichers ...sources.Enricher) Option {
	return func(o *options) error {
		for i, e := range enrichers {
			if e == nil {
				return &errors.ValidationError{
					Field:   "enrichers",
					Value:   i,
					Message: "cannot be nil",
				}
			}
		}
		o.enrichers = enrichers
		return nil
	}
}

// WithCollector shares an existing collector, so later stages can report
// into the same run report.
func WithCollector(c *Collector) Option {
	return func(o *options) error {
		if c == nil {
			return &errors.ValidationError{Field: "collector", Message: "cannot be nil"}
		}
		o.collector = c
		return nil
	}
}

// WithObservers registers observers on the collector the reconciler creates.
// They are ignored when WithCollector is used.
func WithObservers(observers ...Observer) Option {
	return func(o *options) error {
		o.observers = append(o.observers, observers...)
		return nil
	}
}
