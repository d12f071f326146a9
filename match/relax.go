package match

import (
	"context"

	"github.com/poiesic/breedmatch/ontology"
)

// evaluateConjunction evaluates the conjunction of the active preferences'
// predicates over the shared entity variable. An empty active set degrades
// to the match-everything query. The evaluator's output is deduplicated
// preserving first occurrence.
func (m *Matcher) evaluateConjunction(ctx context.Context, active []ResolvedPreference) ([]string, error) {
	query := ontology.All(ontology.Entity)
	for i, pref := range active {
		if i == 0 {
			query = pref.Predicate(ontology.Entity)
			continue
		}
		query = query.And(pref.Predicate(ontology.Entity))
	}

	names, err := m.evaluator.Evaluate(ctx, query)
	if err != nil {
		return nil, err
	}
	return dedupe(names), nil
}

// relax evaluates the conjunctive query over the resolved preferences and
// drops the least-important active preference (ties broken by original
// order) until at least minMatches candidates survive or no preferences
// remain. Each drop only widens the conjunction, so the candidate count
// never decreases and the loop terminates within len(resolved) iterations.
// minMatches is a target, not a guarantee: the final candidate set may
// still be smaller if even the full catalog is.
func (m *Matcher) relax(
	ctx context.Context,
	resolved []ResolvedPreference,
	minMatches int,
	monitor MatchMonitor,
) (candidates []string, active, dropped []ResolvedPreference, err error) {
	if minMatches < 1 {
		return nil, nil, nil, ErrMinMatches
	}

	active = make([]ResolvedPreference, len(resolved))
	copy(active, resolved)
	dropped = make([]ResolvedPreference, 0)

	candidates, err = m.evaluateConjunction(ctx, active)
	if err != nil {
		return nil, nil, nil, err
	}
	monitor.AfterEvaluation(candidates)

	for len(candidates) < minMatches && len(active) > 0 {
		drop := 0
		for i, pref := range active {
			if pref.Importance < active[drop].Importance {
				drop = i
			}
		}

		victim := active[drop]
		active = append(active[:drop], active[drop+1:]...)
		dropped = append(dropped, victim)

		m.logger.Debug("relaxing constraints",
			"dropped_trait", victim.Trait,
			"importance", victim.Importance,
			"remaining", len(active))
		monitor.PreferenceDropped(victim.Trait, victim.Importance, len(active))

		candidates, err = m.evaluateConjunction(ctx, active)
		if err != nil {
			return nil, nil, nil, err
		}
		monitor.AfterEvaluation(candidates)
	}

	return candidates, active, dropped, nil
}

// dedupe removes duplicates preserving first-occurrence order.
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
