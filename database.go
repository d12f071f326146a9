// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package breedmatch matches ranked trait preferences against a catalog of
// dog breeds described by an ontology of boolean predicates.
package breedmatch

import (
	"context"
	"log/slog"

	"github.com/poiesic/breedmatch/catalog"
	"github.com/poiesic/breedmatch/core"
	"github.com/poiesic/breedmatch/ingest"
	"github.com/poiesic/breedmatch/match"
	"github.com/poiesic/breedmatch/ontology"
	"github.com/poiesic/breedmatch/storage"
	"github.com/poiesic/breedmatch/storage/badger"
)

// Database wires the breed catalog, the ontology registry, and the matcher
// behind one handle.
type Database struct {
	backend  *badger.Backend
	breeds   storage.BreedRepository
	registry *ontology.Registry
	matcher  *match.Matcher
	logger   *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	registry *ontology.Registry
	inMemory bool
	logger   *slog.Logger
}

// WithRegistry replaces the default dog-trait registry.
func WithRegistry(registry *ontology.Registry) DatabaseOption {
	return func(o *databaseOptions) {
		o.registry = registry
	}
}

// WithInMemory opens the catalog in memory instead of on disk.
// The file path is ignored.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewDatabase opens the catalog at filePath and wires the matcher over it.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		registry: ontology.DefaultRegistry(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	breeds, err := badger.NewBreedRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	evaluator, err := catalog.NewEvaluator(breeds, catalog.WithLogger(options.logger))
	if err != nil {
		breeds.Close()
		backend.Close()
		return nil, err
	}

	matcher, err := match.NewMatcher(options.registry, evaluator, match.WithLogger(options.logger))
	if err != nil {
		breeds.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:  backend,
		breeds:   breeds,
		registry: options.registry,
		matcher:  matcher,
		logger:   options.logger,
	}, nil
}

// Close closes the catalog.
func (d *Database) Close() error {
	if err := d.breeds.Close(); err != nil {
		d.backend.Close()
		return err
	}
	return d.backend.Close()
}

// AddBreeds adds breeds to the catalog.
func (d *Database) AddBreeds(ctx context.Context, breeds ...*core.Breed) ([]*core.Breed, error) {
	return d.breeds.AddBreeds(ctx, breeds...)
}

// Breeds returns every breed in catalog insertion order.
func (d *Database) Breeds(ctx context.Context) ([]*core.Breed, error) {
	return d.breeds.ListBreeds(ctx)
}

// CountBreeds returns the number of breeds in the catalog.
func (d *Database) CountBreeds(ctx context.Context) (int, error) {
	return d.breeds.CountBreeds(ctx)
}

// KnownTraits returns the sorted normalized trait keys the matcher accepts.
func (d *Database) KnownTraits() []string {
	return d.matcher.KnownTraits()
}

// Registry returns the ontology registry the matcher resolves against.
func (d *Database) Registry() *ontology.Registry {
	return d.registry
}

// LoadDataset bulk-loads breed records into the catalog.
func (d *Database) LoadDataset(ctx context.Context, records []ingest.BreedRecord, opts ...ingest.Option) (*ingest.Report, error) {
	opts = append([]ingest.Option{ingest.WithLogger(d.logger)}, opts...)
	pipeline, err := ingest.NewPipeline(d.breeds, d.registry, opts...)
	if err != nil {
		return nil, err
	}
	defer pipeline.Close()

	return pipeline.Load(ctx, records)
}

// FindMatches resolves the preferences against the ontology, relaxes
// constraints until at least minMatches breeds survive, and returns the
// ranked result.
func (d *Database) FindMatches(ctx context.Context, preferences []core.Preference, minMatches int) (*core.MatchResult, error) {
	return d.matcher.FindMatches(ctx, preferences, minMatches)
}

// FindMatchesWithMonitor is FindMatches with stage callbacks.
func (d *Database) FindMatchesWithMonitor(ctx context.Context, preferences []core.Preference, minMatches int, monitor match.MatchMonitor) (*core.MatchResult, error) {
	return d.matcher.FindMatchesWithMonitor(ctx, preferences, minMatches, monitor)
}
