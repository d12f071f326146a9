package match

import (
	"context"
	"sort"

	"github.com/poiesic/breedmatch/core"
	"github.com/poiesic/breedmatch/ontology"
)

// score computes the weighted trait overlap of each candidate against the
// FULL resolved preference list, including preferences dropped during
// relaxation: a candidate that happens to satisfy a dropped trait still
// earns its importance.
//
// Each distinct predicate is evaluated once in isolation; memberships are
// cached in a map local to this call.
func (m *Matcher) score(
	ctx context.Context,
	candidates []string,
	resolved []ResolvedPreference,
) ([]core.ScoredCandidate, error) {
	memberships := make(map[string]map[string]bool, len(resolved))
	for _, pref := range resolved {
		if _, cached := memberships[pref.PredicateName]; cached {
			continue
		}
		names, err := m.evaluator.Evaluate(ctx, pref.Predicate(ontology.Entity))
		if err != nil {
			return nil, err
		}
		set := make(map[string]bool, len(names))
		for _, name := range names {
			set[name] = true
		}
		memberships[pref.PredicateName] = set
	}

	scored := make([]core.ScoredCandidate, 0, len(candidates))
	for _, breed := range candidates {
		score := 0
		matched := make([]string, 0, len(resolved))
		for _, pref := range resolved {
			if memberships[pref.PredicateName][breed] {
				score += pref.Importance
				matched = append(matched, pref.Trait)
			}
		}
		scored = append(scored, core.ScoredCandidate{
			Breed:         breed,
			Score:         score,
			MatchedTraits: matched,
			MatchedCount:  len(matched),
		})
	}

	// Descending score, then descending matched count, then breed name.
	// The tertiary key makes the order total, so equal-score ties are
	// deterministic.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].MatchedCount != scored[j].MatchedCount {
			return scored[i].MatchedCount > scored[j].MatchedCount
		}
		return scored[i].Breed < scored[j].Breed
	})

	return scored, nil
}
