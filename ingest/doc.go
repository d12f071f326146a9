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


// Package ingest loads breed datasets into the catalog.
//
// A dataset is a JSON or YAML document of breed records, each naming the
// ontology trait predicates the breed satisfies. Records are validated
// against the registry and inserted concurrently through a worker pool;
// trait names the registry does not know are logged and skipped without
// failing the load.
package ingest
