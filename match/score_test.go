package match

import (
	"context"
	"testing"

	"github.com/poiesic/breedmatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_TieBreakLexicographic(t *testing.T) {
	eval := &fakeEvaluator{
		catalog: []string{"Zebra Hound", "Alpine Hound", "Midland Hound"},
		members: map[string][]string{
			"friendly": {"Zebra Hound", "Alpine Hound", "Midland Hound"},
		},
	}
	m := newTestMatcher(t, eval)

	resolved, err := m.resolver.Resolve(core.Preference{Trait: "friendly", Importance: 3})
	require.NoError(t, err)

	scored, err := m.score(context.Background(),
		[]string{"Zebra Hound", "Alpine Hound", "Midland Hound"},
		[]ResolvedPreference{resolved})
	require.NoError(t, err)

	require.Len(t, scored, 3)
	assert.Equal(t, "Alpine Hound", scored[0].Breed)
	assert.Equal(t, "Midland Hound", scored[1].Breed)
	assert.Equal(t, "Zebra Hound", scored[2].Breed)
	for _, c := range scored {
		assert.Equal(t, 3, c.Score)
		assert.Equal(t, 1, c.MatchedCount)
	}
}

func TestScore_SecondaryKeyMatchedCount(t *testing.T) {
	// Same total score, different matched counts: more matched traits
	// ranks first.
	eval := &fakeEvaluator{
		catalog: []string{"Dog1", "Dog2"},
		members: map[string][]string{
			"low_shedding": {"Dog2"},
			"quiet":        {"Dog1"},
			"friendly":     {"Dog1"},
		},
	}
	m := newTestMatcher(t, eval)

	prefs := []core.Preference{
		{Trait: "low shedding", Importance: 2},
		{Trait: "quiet", Importance: 1},
		{Trait: "friendly", Importance: 1},
	}
	resolved := make([]ResolvedPreference, len(prefs))
	for i, p := range prefs {
		rp, err := m.resolver.Resolve(p)
		require.NoError(t, err)
		resolved[i] = rp
	}

	// Dog1: quiet(1) + friendly(1) = 2, count 2
	// Dog2: low_shedding(2) = 2, count 1
	scored, err := m.score(context.Background(), []string{"Dog2", "Dog1"}, resolved)
	require.NoError(t, err)
	require.Len(t, scored, 2)
	assert.Equal(t, "Dog1", scored[0].Breed)
	assert.Equal(t, "Dog2", scored[1].Breed)
}

func TestScore_MembershipEvaluatedOncePerPredicate(t *testing.T) {
	eval := &fakeEvaluator{
		catalog: []string{"Dog1"},
		members: map[string][]string{"quiet": {"Dog1"}},
	}
	m := newTestMatcher(t, eval)

	resolved, err := m.resolver.Resolve(core.Preference{Trait: "quiet", Importance: 2})
	require.NoError(t, err)
	louder := resolved
	louder.Trait = "Quiet!"
	louder.Importance = 3

	// Two preferences sharing one predicate: one evaluation, both scored.
	scored, err := m.score(context.Background(), []string{"Dog1"},
		[]ResolvedPreference{resolved, louder})
	require.NoError(t, err)
	assert.Equal(t, 1, eval.calls)

	require.Len(t, scored, 1)
	assert.Equal(t, 5, scored[0].Score)
	assert.Equal(t, []string{"quiet", "Quiet!"}, scored[0].MatchedTraits)
	assert.Equal(t, 2, scored[0].MatchedCount)
}

func TestScore_NoCandidates(t *testing.T) {
	eval := &fakeEvaluator{catalog: []string{"Dog1"}}
	m := newTestMatcher(t, eval)

	scored, err := m.score(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, scored)
}
