package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/breedmatch/core"
	"github.com/poiesic/breedmatch/storage"
)

// BreedRepository implements storage.BreedRepository for BadgerDB.
type BreedRepository struct {
	backend *Backend
	seq     *badger.Sequence
}

var _ storage.BreedRepository = (*BreedRepository)(nil)

// NewBreedRepository creates a new BreedRepository.
func NewBreedRepository(backend *Backend) (*BreedRepository, error) {
	seq, err := backend.GetSequence(breedOrderSeq)
	if err != nil {
		return nil, err
	}
	return &BreedRepository{
		backend: backend,
		seq:     seq,
	}, nil
}

// Close releases the catalog-order sequence.
func (r *BreedRepository) Close() error {
	return r.seq.Release()
}

// WithTransaction delegates to the backend.
func (r *BreedRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddBreeds adds one or more breeds to the catalog.
func (r *BreedRepository) AddBreeds(ctx context.Context, breeds ...*core.Breed) ([]*core.Breed, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, breed := range breeds {
			if err := core.ValidateBreed(breed); err != nil {
				return err
			}

			// The name index is the uniqueness guard
			if _, err := tx.Get(makeBreedNameKey(breed.Name)); err == nil {
				return storage.ErrDuplicateKey
			} else if err != badger.ErrKeyNotFound {
				return err
			}

			// Use content-based ID if not set
			if breed.Id == 0 {
				breed.Id = core.IDFromContent(breed.Name)
			}

			// Set timestamps
			breed.InsertedAt = time.Now().UTC()
			breed.UpdatedAt = breed.InsertedAt

			// Store primary record
			key := makeBreedKey(breed.Id)
			value := storage.MarshalBreed(breed)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Store name index
			if err := tx.Set(makeBreedNameKey(breed.Name), storage.MarshalID(breed.Id)); err != nil {
				return err
			}

			// Store catalog-order index
			ordinal, err := r.seq.Next()
			if err != nil {
				return err
			}
			if err := tx.Set(makeBreedOrderKey(ordinal), storage.MarshalID(breed.Id)); err != nil {
				return err
			}

			// Store trait index
			for _, trait := range breed.Traits {
				if err := tx.Set(makeBreedTraitKey(trait, breed.Name), storage.MarshalID(breed.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return breeds, nil
}

// GetBreed retrieves a single breed by ID.
func (r *BreedRepository) GetBreed(ctx context.Context, id core.ID) (*core.Breed, error) {
	var result *core.Breed
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readBreed(tx, makeBreedKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetBreedByName retrieves a single breed by its name.
func (r *BreedRepository) GetBreedByName(ctx context.Context, name string) (*core.Breed, error) {
	var result *core.Breed
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeBreedNameKey(name))
		if err == badger.ErrKeyNotFound {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}

		var id core.ID
		err = item.Value(func(val []byte) error {
			id, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		result, err = readBreed(tx, makeBreedKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListBreeds retrieves every breed in catalog insertion order.
func (r *BreedRepository) ListBreeds(ctx context.Context) ([]*core.Breed, error) {
	var result []*core.Breed
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = breedOrderIterPrefix()
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var id core.ID
			err := it.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			breed, err := readBreed(tx, makeBreedKey(id))
			if err != nil {
				return err
			}
			if breed == nil {
				// Order entry without a record; skip rather than fail the scan
				continue
			}
			result = append(result, breed)
		}
		return nil
	}, false)
	return result, err
}

// ListBreedsByTrait retrieves the names of breeds carrying a trait predicate.
func (r *BreedRepository) ListBreedsByTrait(ctx context.Context, trait string) ([]string, error) {
	var result []string
	prefix := breedTraitIterPrefix(trait)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := it.Item().Key()
			result = append(result, string(key[len(prefix):]))
		}
		return nil
	}, false)
	return result, err
}

// CountBreeds returns the number of breeds in the catalog.
func (r *BreedRepository) CountBreeds(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(breedRecordPrefix + ":")
		opts.PrefetchValues = false
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readBreed reads and deserializes a breed record.
// Returns nil without error if the key does not exist.
func readBreed(tx *badger.Txn, key []byte) (*core.Breed, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var breed *core.Breed
	err = item.Value(func(val []byte) error {
		var err error
		breed, err = storage.UnmarshalBreed(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return breed, nil
}
