package storage

import (
	"context"

	"github.com/poiesic/breedmatch/core"
)

// BreedRepository provides operations for managing the breed catalog.
type BreedRepository interface {
	// AddBreeds adds one or more breeds to the catalog.
	// Computes content-based IDs for breeds with ID=0 and sets the
	// InsertedAt/UpdatedAt timestamps.
	// Returns ErrDuplicateKey if a breed with the same name already exists.
	AddBreeds(ctx context.Context, breeds ...*core.Breed) ([]*core.Breed, error)

	// GetBreed retrieves a single breed by ID.
	// Returns ErrNotFound if the breed doesn't exist.
	GetBreed(ctx context.Context, id core.ID) (*core.Breed, error)

	// GetBreedByName retrieves a single breed by its name.
	// Returns ErrNotFound if the breed doesn't exist.
	GetBreedByName(ctx context.Context, name string) (*core.Breed, error)

	// ListBreeds retrieves every breed in catalog insertion order.
	ListBreeds(ctx context.Context) ([]*core.Breed, error)

	// ListBreedsByTrait retrieves the names of breeds carrying a trait
	// predicate, in lexicographic name order.
	ListBreedsByTrait(ctx context.Context, trait string) ([]string, error)

	// CountBreeds returns the number of breeds in the catalog.
	CountBreeds(ctx context.Context) (int, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
