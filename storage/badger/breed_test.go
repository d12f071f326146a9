package badger

import (
	"context"
	"testing"

	"github.com/poiesic/breedmatch/core"
	"github.com/poiesic/breedmatch/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) storage.BreedRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestAddAndGetBreed(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.AddBreeds(ctx, &core.Breed{
		Name:   "Whippet",
		Traits: []string{"low_shedding", "quiet", "short_coat"},
	})
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.NotZero(t, added[0].Id)
	assert.False(t, added[0].InsertedAt.IsZero())

	t.Run("by id", func(t *testing.T) {
		breed, err := repo.GetBreed(ctx, added[0].Id)
		require.NoError(t, err)
		assert.Equal(t, "Whippet", breed.Name)
		assert.Equal(t, []string{"low_shedding", "quiet", "short_coat"}, breed.Traits)
	})

	t.Run("by name", func(t *testing.T) {
		breed, err := repo.GetBreedByName(ctx, "Whippet")
		require.NoError(t, err)
		assert.Equal(t, added[0].Id, breed.Id)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.GetBreed(ctx, core.ID(12345))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := repo.GetBreedByName(ctx, "Chupacabra")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestAddBreeds_Duplicate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddBreeds(ctx, &core.Breed{Name: "Beagle"})
	require.NoError(t, err)

	_, err = repo.AddBreeds(ctx, &core.Breed{Name: "Beagle"})
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestAddBreeds_Invalid(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.AddBreeds(context.Background(), &core.Breed{})
	assert.ErrorIs(t, err, core.ErrInvalidBreed)
}

func TestListBreeds_CatalogOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Deliberately out of lexicographic order
	names := []string{"Vizsla", "Akita", "Maltese", "Borzoi"}
	for _, name := range names {
		_, err := repo.AddBreeds(ctx, &core.Breed{Name: name})
		require.NoError(t, err)
	}

	breeds, err := repo.ListBreeds(ctx)
	require.NoError(t, err)
	require.Len(t, breeds, 4)

	got := make([]string, len(breeds))
	for i, b := range breeds {
		got[i] = b.Name
	}
	assert.Equal(t, names, got, "ListBreeds must preserve insertion order")
}

func TestListBreedsByTrait(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddBreeds(ctx,
		&core.Breed{Name: "Poodle", Traits: []string{"low_shedding", "curly_coat"}},
		&core.Breed{Name: "Beagle", Traits: []string{"short_coat", "friendly"}},
		&core.Breed{Name: "Basenji", Traits: []string{"low_shedding", "quiet"}},
	)
	require.NoError(t, err)

	t.Run("matching trait", func(t *testing.T) {
		names, err := repo.ListBreedsByTrait(ctx, "low_shedding")
		require.NoError(t, err)
		assert.Equal(t, []string{"Basenji", "Poodle"}, names)
	})

	t.Run("no matches", func(t *testing.T) {
		names, err := repo.ListBreedsByTrait(ctx, "hairless")
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("trait prefix does not leak", func(t *testing.T) {
		// "quiet" must not match an imaginary "quiet_indoors" index entry
		_, err := repo.AddBreeds(ctx, &core.Breed{Name: "Shiba Inu", Traits: []string{"quiet_indoors"}})
		require.NoError(t, err)

		names, err := repo.ListBreedsByTrait(ctx, "quiet")
		require.NoError(t, err)
		assert.Equal(t, []string{"Basenji"}, names)
	})
}

func TestCountBreeds(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	count, err := repo.CountBreeds(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repo.AddBreeds(ctx,
		&core.Breed{Name: "Pug"},
		&core.Breed{Name: "Boxer"},
	)
	require.NoError(t, err)

	count, err = repo.CountBreeds(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
