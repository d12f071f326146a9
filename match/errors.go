// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package match

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRegistryRequired is returned when an ontology registry is not provided.
	ErrRegistryRequired = errors.New("ontology registry required")

	// ErrEvaluatorRequired is returned when a query evaluator is not provided.
	ErrEvaluatorRequired = errors.New("query evaluator required")

	// ErrUnknownTrait indicates a trait that resolves to no known predicate.
	ErrUnknownTrait = errors.New("unknown trait")

	// ErrNotCallable indicates a registry entry without a callable predicate,
	// which is an ontology contract violation.
	ErrNotCallable = errors.New("trait does not resolve to a callable predicate")

	// ErrMinMatches indicates a minimum match count below 1.
	ErrMinMatches = errors.New("min matches must be >= 1")
)

// UnknownTraitError reports a trait whose normalized form matches no known
// predicate. Known carries the full sorted list of known normalized keys so
// callers can tell the user what would have worked.
type UnknownTraitError struct {
	Trait      string
	Normalized string
	Known      []string
}

func (e *UnknownTraitError) Error() string {
	return fmt.Sprintf("unknown trait %q: normalized value %q is not available; known traits: %s",
		e.Trait, e.Normalized, strings.Join(e.Known, ", "))
}

func (e *UnknownTraitError) Unwrap() error {
	return ErrUnknownTrait
}
