package ingest

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/breedmatch/core"
	"github.com/poiesic/breedmatch/ontology"
	"github.com/poiesic/breedmatch/storage"
)

// Pipeline loads breed records into the catalog.
// It validates records against the ontology registry and inserts them
// concurrently through a worker pool.
type Pipeline struct {
	breeds   storage.BreedRepository
	registry *ontology.Registry
	pool     *ants.Pool
	logger   *slog.Logger
}

// Report summarizes one Load call.
type Report struct {
	Added         int
	Skipped       int
	UnknownTraits []string // Distinct unknown trait names encountered, sorted
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent insertion.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new catalog loading pipeline.
func NewPipeline(breeds storage.BreedRepository, registry *ontology.Registry, opts ...Option) (*Pipeline, error) {
	if breeds == nil {
		return nil, ErrRepositoryRequired
	}
	if registry == nil {
		return nil, ErrRegistryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		breeds:   breeds,
		registry: registry,
		pool:     pool,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(p); err != nil {
			pool.Release()
			return nil, err
		}
	}

	return p, nil
}

// Close releases the worker pool.
func (p *Pipeline) Close() error {
	p.pool.Release()
	return nil
}

// Load inserts the records into the catalog.
//
// Records with an empty name fail the whole load. Trait names unknown to
// the registry are logged and dropped from the record; duplicate breeds are
// logged and skipped. The report counts what actually happened.
func (p *Pipeline) Load(ctx context.Context, records []BreedRecord) (*Report, error) {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		report   Report
		unknown  = make(map[string]bool)
		firstErr error
	)

	for _, record := range records {
		record := record
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()

			breed := &core.Breed{Name: record.Name}
			var dropped []string
			for _, trait := range record.Traits {
				if _, ok := p.registry.Predicate(trait); ok {
					breed.Traits = append(breed.Traits, trait)
				} else {
					dropped = append(dropped, trait)
				}
			}
			if len(dropped) > 0 {
				p.logger.Warn("dropping traits unknown to the ontology",
					"breed", record.Name, "traits", dropped)
			}

			_, err := p.breeds.AddBreeds(ctx, breed)

			mu.Lock()
			defer mu.Unlock()
			for _, trait := range dropped {
				unknown[trait] = true
			}
			switch {
			case err == nil:
				report.Added++
			case errors.Is(err, storage.ErrDuplicateKey):
				p.logger.Warn("skipping duplicate breed", "breed", record.Name)
				report.Skipped++
			default:
				p.logger.Error("failed to add breed", "breed", record.Name, "err", err)
				if firstErr == nil {
					firstErr = err
				}
			}
		})
		if err != nil {
			wg.Done()
			return nil, err
		}
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	report.UnknownTraits = make([]string, 0, len(unknown))
	for trait := range unknown {
		report.UnknownTraits = append(report.UnknownTraits, trait)
	}
	sort.Strings(report.UnknownTraits)

	return &report, nil
}
