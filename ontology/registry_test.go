package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryAnd(t *testing.T) {
	q := Apply("low_shedding", Entity).And(Apply("high_energy", Entity))

	require.Len(t, q.Apps, 2)
	assert.Equal(t, "low_shedding", q.Apps[0].Predicate)
	assert.Equal(t, "high_energy", q.Apps[1].Predicate)
	assert.Equal(t, Entity, q.Apps[0].Entity)
	assert.False(t, q.MatchesAll())
}

func TestQueryAnd_DoesNotMutateReceiver(t *testing.T) {
	base := Apply("quiet", Entity)
	_ = base.And(Apply("friendly", Entity))

	assert.Len(t, base.Apps, 1)
}

func TestAllMatchesEverything(t *testing.T) {
	assert.True(t, All(Entity).MatchesAll())
	assert.True(t, Query{}.MatchesAll())
}

func TestRegistry_RegisterCategory(t *testing.T) {
	r := NewRegistry()
	r.RegisterCategory("barking_level", "quiet", "frequent_barking")

	fn, ok := r.Predicate("quiet")
	require.True(t, ok)
	require.NotNil(t, fn)

	q := fn(Entity)
	require.Len(t, q.Apps, 1)
	assert.Equal(t, "quiet", q.Apps[0].Predicate)

	assert.Equal(t, []string{"barking_level"}, r.Categories())
	assert.Equal(t, []string{"quiet", "frequent_barking"}, r.Terms("barking_level"))
}

func TestRegistry_NilPredicate(t *testing.T) {
	r := NewRegistry()
	r.Register("broken", nil)

	fn, ok := r.Predicate("broken")
	assert.True(t, ok)
	assert.Nil(t, fn)
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	t.Run("every category term is a predicate", func(t *testing.T) {
		for _, category := range r.Categories() {
			for _, term := range r.Terms(category) {
				fn, ok := r.Predicate(term)
				require.True(t, ok, "term %q of category %q not registered", term, category)
				require.NotNil(t, fn, "term %q has nil predicate", term)

				q := fn(Entity)
				require.Len(t, q.Apps, 1)
				assert.Equal(t, term, q.Apps[0].Predicate)
			}
		}
	})

	t.Run("standalone predicates", func(t *testing.T) {
		for _, name := range []string{"hypoallergenic", "apartment_friendly"} {
			fn, ok := r.Predicate(name)
			require.True(t, ok)
			require.NotNil(t, fn)
		}
	})

	t.Run("names are sorted", func(t *testing.T) {
		names := r.PredicateNames()
		require.NotEmpty(t, names)
		assert.IsIncreasing(t, names)
	})
}
