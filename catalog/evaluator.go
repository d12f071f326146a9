package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/breedmatch/ontology"
	"github.com/poiesic/breedmatch/storage"
)

// ErrRepositoryRequired is returned when a breed repository is not provided.
var ErrRepositoryRequired = errors.New("breed repository required")

// Evaluator evaluates conjunction queries against a BreedRepository.
//
// The empty conjunction yields every breed in catalog insertion order. A
// single-predicate query reads the trait index (lexicographic name order);
// larger conjunctions scan the catalog in insertion order and test trait
// membership. Evaluation order is deterministic either way; callers that
// need a total order impose it themselves.
type Evaluator struct {
	breeds storage.BreedRepository
	logger *slog.Logger
}

var _ ontology.Evaluator = (*Evaluator)(nil)

// Option configures an Evaluator.
type Option func(*Evaluator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEvaluator creates an evaluator over the given breed repository.
func NewEvaluator(breeds storage.BreedRepository, opts ...Option) (*Evaluator, error) {
	if breeds == nil {
		return nil, ErrRepositoryRequired
	}

	e := &Evaluator{
		breeds: breeds,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Evaluate returns the names of breeds satisfying every predicate of q.
func (e *Evaluator) Evaluate(ctx context.Context, q ontology.Query) ([]string, error) {
	if q.MatchesAll() {
		breeds, err := e.breeds.ListBreeds(ctx)
		if err != nil {
			return nil, err
		}
		names := make([]string, len(breeds))
		for i, b := range breeds {
			names[i] = b.Name
		}
		return names, nil
	}

	if len(q.Apps) == 1 {
		return e.breeds.ListBreedsByTrait(ctx, q.Apps[0].Predicate)
	}

	breeds, err := e.breeds.ListBreeds(ctx)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, breed := range breeds {
		set := breed.TraitSet()
		satisfied := true
		for _, app := range q.Apps {
			if !set[app.Predicate] {
				satisfied = false
				break
			}
		}
		if satisfied {
			names = append(names, breed.Name)
		}
	}

	e.logger.Debug("evaluated conjunction",
		"predicates", len(q.Apps), "matches", len(names))
	return names, nil
}
