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


// Package ontology defines the predicate vocabulary over breeds and the
// query representation the matching engine builds against it.
//
// A Query is a conjunction of named predicate applications over an entity
// variable; the empty conjunction matches every breed. Predicates are
// declared in a static Registry (predicate name to callable, category to
// term list) rather than discovered at runtime. Evaluation is delegated to
// an Evaluator, typically backed by the stored breed catalog.
package ontology
