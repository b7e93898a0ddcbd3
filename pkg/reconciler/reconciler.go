// Package reconciler merges player data from one primary source and any
// number of enrichment sources into a single dataset.
//
// The primary source determines which players exist; enrichers run strictly
// in the configured order and can only add fields to players the primary
// source produced. Recoverable conditions are collected into a Report and
// never abort the run.
package reconciler

import (
	"context"
	"time"

	"github.com/agentstation/draftboard/pkg/errors"
	"github.com/agentstation/draftboard/pkg/league"
	"github.com/agentstation/draftboard/pkg/logging"
	"github.com/agentstation/draftboard/pkg/sources"
)

// Reconciler builds a merged dataset for one set of league settings.
type Reconciler interface {
	Reconcile(ctx context.Context, settings league.Settings) (*Result, error)
}

type reconciler struct {
	primary   sources.Primary
	enrichers []sources.Enricher
	collector *Collector
	observers []Observer
}

// New creates a Reconciler around a primary source.
func New(primary sources.Primary, opts ...Option) (Reconciler, error) {
	if primary == nil {
		return nil, &errors.ValidationError{Field: "primary", Message: "cannot be nil"}
	}
	options, err := newOptions(primary, opts...)
	if err != nil {
		return nil, err
	}
	return &reconciler{
		primary:   primary,
		enrichers: options.enrichers,
		collector: options.collector,
		observers: options.observers,
	}, nil
}

// Reconcile runs the primary source and then each enricher. Only a primary
// failure, an enricher error or cancellation is returned.
func (r *reconciler) Reconcile(ctx context.Context, settings league.Settings) (*Result, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	ctx = logging.WithOperation(ctx, "reconcile")
	logger := logging.FromContext(ctx)
	collector := r.collector
	if collector == nil {
		collector = NewCollector(logger, r.observers...)
	}

	result := newResult(collector)
	logger.Info().
		Str("signature", settings.Signature()).
		Int("enrichers", len(r.enrichers)).
		Msg("Reconciling player data")

	ds, err := r.primary.Fetch(logging.WithSource(ctx, string(r.primary.ID())), settings, collector)
	if err != nil {
		return nil, err
	}
	if ds == nil {
		return nil, errors.NewResourceError("fetch", "dataset", string(r.primary.ID()), errors.New("primary source returned no dataset"))
	}
	result.Dataset = ds
	result.Metadata.Sources = append(result.Metadata.Sources, r.primary.ID())

	target := sources.DatasetTarget(ds)
	for _, enricher := range r.enrichers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		ectx := logging.WithSource(ctx, string(enricher.ID()))
		if err := enricher.Enrich(ectx, settings, target, collector); err != nil {
			return nil, errors.WrapResource("enrich", "dataset", string(enricher.ID()), err)
		}
		result.Metadata.Sources = append(result.Metadata.Sources, enricher.ID())
		logging.FromContext(ectx).Debug().
			Dur("elapsed", time.Since(start)).
			Msg("Enrichment complete")
	}

	result.finalize()
	logger.Info().
		Int("players", ds.Len()).
		Int("issues", result.Report().Len()).
		Dur("duration", result.Metadata.Duration).
		Msg("Reconciliation complete")
	return result, nil
}
