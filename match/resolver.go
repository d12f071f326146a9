package match

import (
	"fmt"
	"sort"

	"github.com/poiesic/breedmatch/core"
	"github.com/poiesic/breedmatch/ontology"
)

// ResolvedPreference is a Preference bound to its ontology predicate.
type ResolvedPreference struct {
	Trait         string
	Importance    int
	PredicateName string
	Predicate     ontology.PredicateFunc
}

// Resolver maps free-text trait names to ontology predicates through a
// normalized-name lookup built once at construction.
//
// The lookup enumerates category term lists (categories in sorted name
// order, terms in declaration order) and then every remaining predicate
// name in sorted order. The first name claiming a normalized key wins; a
// well-formed ontology never produces such a collision, and when one occurs
// the earlier entry is silently kept.
type Resolver struct {
	registry *ontology.Registry
	lookup   map[string]string
	known    []string
}

// NewResolver builds a resolver over the given registry.
func NewResolver(registry *ontology.Registry) (*Resolver, error) {
	if registry == nil {
		return nil, ErrRegistryRequired
	}

	lookup := make(map[string]string)
	claim := func(name string) {
		key := NormalizeTrait(name)
		if key == "" {
			return
		}
		if _, taken := lookup[key]; !taken {
			lookup[key] = name
		}
	}

	for _, category := range registry.Categories() {
		for _, term := range registry.Terms(category) {
			claim(term)
		}
	}
	for _, name := range registry.PredicateNames() {
		claim(name)
	}

	known := make([]string, 0, len(lookup))
	for key := range lookup {
		known = append(known, key)
	}
	sort.Strings(known)

	return &Resolver{
		registry: registry,
		lookup:   lookup,
		known:    known,
	}, nil
}

// Resolve binds a preference to its ontology predicate.
// Returns an UnknownTraitError if the normalized trait matches no known
// predicate, or ErrNotCallable if the registry entry carries no callable.
func (r *Resolver) Resolve(pref core.Preference) (ResolvedPreference, error) {
	normalized := NormalizeTrait(pref.Trait)
	predicateName, ok := r.lookup[normalized]
	if !ok {
		return ResolvedPreference{}, &UnknownTraitError{
			Trait:      pref.Trait,
			Normalized: normalized,
			Known:      r.known,
		}
	}

	predicate, ok := r.registry.Predicate(predicateName)
	if !ok || predicate == nil {
		return ResolvedPreference{}, fmt.Errorf("trait %q resolved to %q: %w", pref.Trait, predicateName, ErrNotCallable)
	}

	return ResolvedPreference{
		Trait:         pref.Trait,
		Importance:    pref.Importance,
		PredicateName: predicateName,
		Predicate:     predicate,
	}, nil
}

// KnownTraits returns the sorted normalized trait keys the resolver accepts.
func (r *Resolver) KnownTraits() []string {
	return r.known
}
