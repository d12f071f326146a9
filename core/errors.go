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


package core

import "errors"

// Domain validation errors
var (
	// ErrMalformedDocument indicates a preferences document that is not a
	// list or an object wrapping a list.
	ErrMalformedDocument = errors.New("malformed preferences document")

	// ErrInvalidPreference indicates a preference entry failed validation.
	ErrInvalidPreference = errors.New("invalid preference")

	// ErrInvalidBreed indicates a Breed failed validation.
	ErrInvalidBreed = errors.New("invalid breed")

	// ErrEmptyTrait indicates a preference with no trait name.
	ErrEmptyTrait = errors.New("trait cannot be empty")

	// ErrImportanceOutOfRange indicates an importance outside [1, 5].
	ErrImportanceOutOfRange = errors.New("importance must be in [1, 5]")

	// ErrEmptyBreedName indicates a breed with no name.
	ErrEmptyBreedName = errors.New("breed name cannot be empty")
)
