package ingest

import (
	"context"
	"testing"

	"github.com/poiesic/breedmatch/core"
	"github.com/poiesic/breedmatch/ontology"
	"github.com/poiesic/breedmatch/storage"
	"github.com/poiesic/breedmatch/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(t *testing.T) (*Pipeline, storage.BreedRepository) {
	t.Helper()
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	pipeline, err := NewPipeline(repo, ontology.DefaultRegistry(), WithPoolSize(2))
	require.NoError(t, err)
	t.Cleanup(func() { pipeline.Close() })

	return pipeline, repo
}

func TestNewPipeline(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewPipeline(nil, ontology.DefaultRegistry())
		assert.Equal(t, ErrRepositoryRequired, err)
	})

	t.Run("nil registry", func(t *testing.T) {
		_, err := NewPipeline(repo, nil)
		assert.Equal(t, ErrRegistryRequired, err)
	})

	t.Run("pool size below one is clamped", func(t *testing.T) {
		p, err := NewPipeline(repo, ontology.DefaultRegistry(), WithPoolSize(0))
		require.NoError(t, err)
		p.Close()
	})
}

func TestLoad(t *testing.T) {
	pipeline, repo := newTestPipeline(t)
	ctx := context.Background()

	records := []BreedRecord{
		{Name: "Poodle", Traits: []string{"low_shedding", "curly_coat", "hypoallergenic"}},
		{Name: "Beagle", Traits: []string{"friendly", "moderate_shedding"}},
		{Name: "Basenji", Traits: []string{"quiet", "low_shedding"}},
	}

	report, err := pipeline.Load(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Added)
	assert.Zero(t, report.Skipped)
	assert.Empty(t, report.UnknownTraits)

	count, err := repo.CountBreeds(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	breed, err := repo.GetBreedByName(ctx, "Basenji")
	require.NoError(t, err)
	assert.Equal(t, []string{"quiet", "low_shedding"}, breed.Traits)
}

func TestLoad_UnknownTraitsAreDropped(t *testing.T) {
	pipeline, repo := newTestPipeline(t)
	ctx := context.Background()

	records := []BreedRecord{
		{Name: "Labrador Retriever", Traits: []string{"friendly", "fetches_newspapers", "flies"}},
	}

	report, err := pipeline.Load(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Added)
	assert.Equal(t, []string{"fetches_newspapers", "flies"}, report.UnknownTraits)

	breed, err := repo.GetBreedByName(ctx, "Labrador Retriever")
	require.NoError(t, err)
	assert.Equal(t, []string{"friendly"}, breed.Traits)
}

func TestLoad_DuplicatesAreSkipped(t *testing.T) {
	pipeline, _ := newTestPipeline(t)
	ctx := context.Background()

	_, err := pipeline.Load(ctx, []BreedRecord{{Name: "Pug"}})
	require.NoError(t, err)

	report, err := pipeline.Load(ctx, []BreedRecord{{Name: "Pug"}, {Name: "Boxer"}})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Added)
	assert.Equal(t, 1, report.Skipped)
}

func TestLoad_InvalidRecordFailsLoad(t *testing.T) {
	pipeline, _ := newTestPipeline(t)

	_, err := pipeline.Load(context.Background(), []BreedRecord{{Name: ""}})
	assert.ErrorIs(t, err, core.ErrInvalidBreed)
}

func TestLoad_Empty(t *testing.T) {
	pipeline, _ := newTestPipeline(t)

	report, err := pipeline.Load(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, report.Added)
}
