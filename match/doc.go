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


// Package match implements preference resolution, constraint relaxation,
// and scoring over the breed ontology.
//
// The Matcher runs three stages:
//   - resolution: free-text trait names are normalized and mapped to
//     ontology predicates through a lookup index built once per resolver
//   - relaxation: the conjunction of active preferences is evaluated and
//     the least-important preference is dropped, repeatedly, until a
//     minimum candidate count is reached or no preferences remain
//   - scoring: surviving candidates are scored by weighted overlap with
//     the full original preference list and ranked deterministically
//
// All stages are pure and synchronous; the only cache is the per-call
// predicate membership map inside scoring.
package match
