package ontology

import (
	"sort"
)

// Registry is the statically declared predicate vocabulary: a mapping from
// predicate name to callable and a mapping from category to its term list.
// Every category term is itself a predicate name.
type Registry struct {
	predicates map[string]PredicateFunc
	categories map[string][]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		predicates: make(map[string]PredicateFunc),
		categories: make(map[string][]string),
	}
}

// Register declares a standalone predicate. A nil fn is stored as declared
// but not callable; the resolver reports it as an ontology contract
// violation if a trait resolves to it.
func (r *Registry) Register(name string, fn PredicateFunc) {
	r.predicates[name] = fn
}

// RegisterCategory declares a category and its term list, registering each
// term as a predicate testing membership of that term.
func (r *Registry) RegisterCategory(category string, terms ...string) {
	r.categories[category] = append(r.categories[category], terms...)
	for _, term := range terms {
		name := term
		r.predicates[name] = func(v Var) Query {
			return Apply(name, v)
		}
	}
}

// Predicate returns the callable for a predicate name.
// The second result is false if the name is not declared at all.
func (r *Registry) Predicate(name string) (PredicateFunc, bool) {
	fn, ok := r.predicates[name]
	return fn, ok
}

// PredicateNames returns every declared predicate name, sorted.
func (r *Registry) PredicateNames() []string {
	names := make([]string, 0, len(r.predicates))
	for name := range r.predicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Categories returns the declared category names, sorted.
func (r *Registry) Categories() []string {
	categories := make([]string, 0, len(r.categories))
	for category := range r.categories {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Terms returns the term list of a category, in declaration order.
func (r *Registry) Terms(category string) []string {
	return r.categories[category]
}
