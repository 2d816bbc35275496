package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"BrentDash/internal/domain/models"
	drepo "BrentDash/internal/domain/repository"
	xhttp "BrentDash/pkg/http"
	applogger "BrentDash/pkg/logger"
	"BrentDash/pkg/metrics"
)

// FetchError is the single failure kind of a dataset load.
type FetchError struct {
	Dataset models.Name
	Status  int // upstream HTTP status, 0 for transport or decode failures
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %s", e.Dataset, e.Message())
}

// Message is the text shown in the dashboard's error panel.
func (e *FetchError) Message() string {
	if e.Status != 0 {
		return fmt.Sprintf("Status %d", e.Status)
	}
	if e.Err == nil {
		return "Fetch failed"
	}
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

// LoaderOption configures Loader.
type LoaderOption func(*Loader)

// WithParallel fetches all datasets concurrently instead of one after another.
func WithParallel(enabled bool) LoaderOption {
	return func(l *Loader) { l.parallel = enabled }
}

// WithRegistry replaces the dataset list.
func WithRegistry(names []models.Name) LoaderOption {
	return func(l *Loader) { l.registry = names }
}

// Loader fetches every registered dataset once and sorts the outcomes into a snapshot.
// A failing dataset never stops the others from loading.
type Loader struct {
	src      drepo.DatasetSource
	metrics  drepo.Metrics
	log      *applogger.Logger
	registry []models.Name
	parallel bool
}

func NewLoader(src drepo.DatasetSource, m drepo.Metrics, l *applogger.Logger, opts ...LoaderOption) *Loader {
	if m == nil {
		m = metrics.Nop{}
	}
	if l == nil {
		l = applogger.Nop()
	}
	ld := &Loader{
		src:      src,
		metrics:  m,
		log:      l,
		registry: models.Registry,
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// Load runs the fetches and returns the snapshot. Every registry name ends up in exactly one
// of Results or Errors.
func (ld *Loader) Load(ctx context.Context) *models.Snapshot {
	start := time.Now()
	snap := models.NewSnapshot()

	var mu sync.Mutex
	record := func(name models.Name, p models.Payload, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			var fe *FetchError
			if !errors.As(err, &fe) {
				fe = &FetchError{Dataset: name, Err: err}
			}
			snap.Errors[name] = fe.Message()
			ld.log.Error("dataset fetch failed", applogger.Dataset(string(name)), applogger.Error(err))
			return
		}
		snap.Results[name] = p
	}

	if ld.parallel {
		var wg sync.WaitGroup
		for _, name := range ld.registry {
			wg.Add(1)
			go func(name models.Name) {
				defer wg.Done()
				p, err := ld.fetch(ctx, name)
				record(name, p, err)
			}(name)
		}
		wg.Wait()
	} else {
		for _, name := range ld.registry {
			p, err := ld.fetch(ctx, name)
			record(name, p, err)
		}
	}

	for _, name := range ld.registry {
		ld.metrics.RecordDatasetStatus(string(name), snap.Loaded(name))
	}
	elapsed := time.Since(start)
	ld.metrics.RecordLoad(len(snap.Results), len(snap.Errors), elapsed.Seconds())
	ld.log.Info("datasets loaded",
		applogger.Int("loaded", len(snap.Results)),
		applogger.Int("failed", len(snap.Errors)),
		applogger.Bool("parallel", ld.parallel),
		applogger.Duration("elapsed", elapsed),
	)
	return snap
}

func (ld *Loader) fetch(ctx context.Context, name models.Name) (p models.Payload, err error) {
	start := time.Now()
	defer func() {
		ld.metrics.RecordFetch(string(name), err == nil, time.Since(start).Seconds())
	}()

	p, ok := models.NewPayload(name)
	if !ok {
		return nil, &FetchError{Dataset: name, Err: fmt.Errorf("unknown dataset %q", name)}
	}
	if err := ld.src.Fetch(ctx, name, p); err != nil {
		fe := &FetchError{Dataset: name, Err: err}
		var se *xhttp.StatusError
		if errors.As(err, &se) {
			fe.Status = se.Code
		}
		return nil, fe
	}
	ld.log.Debug("dataset fetched", applogger.Dataset(string(name)), applogger.Duration("elapsed", time.Since(start)))
	return p, nil
}
