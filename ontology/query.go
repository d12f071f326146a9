package ontology

import "context"

// Var is a named entity-variable placeholder in a query.
type Var string

// Entity is the conventional variable bound to the breed being matched.
const Entity Var = "B"

// Application is a single predicate applied to an entity variable.
type Application struct {
	Predicate string
	Entity    Var
}

// Query is a conjunction of predicate applications.
// The zero Query is the empty conjunction and matches every breed.
type Query struct {
	Apps []Application
}

// Apply builds a query from a single predicate application.
func Apply(predicate string, v Var) Query {
	return Query{Apps: []Application{{Predicate: predicate, Entity: v}}}
}

// All returns the query matching every breed.
func All(Var) Query {
	return Query{}
}

// And returns the conjunction of q and other.
func (q Query) And(other Query) Query {
	apps := make([]Application, 0, len(q.Apps)+len(other.Apps))
	apps = append(apps, q.Apps...)
	apps = append(apps, other.Apps...)
	return Query{Apps: apps}
}

// MatchesAll reports whether the query is the empty conjunction.
func (q Query) MatchesAll() bool {
	return len(q.Apps) == 0
}

// PredicateFunc produces the query fragment testing one predicate against
// an entity variable.
type PredicateFunc func(Var) Query

// Evaluator evaluates a query to the sequence of matching breed names.
// Implementations must be stateless and side-effect free: repeated
// evaluation of the same query yields identical results. The relaxation
// loop depends on that.
type Evaluator interface {
	Evaluate(ctx context.Context, q Query) ([]string, error)
}
