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

import "fmt"

// ValidatePreference validates a Preference according to domain rules.
//
// Validation rules:
//   - Trait must not be empty
//   - Importance must be in [MinImportance, MaxImportance]
func ValidatePreference(pref *Preference) error {
	if pref == nil {
		return fmt.Errorf("%w: preference is nil", ErrInvalidPreference)
	}

	if pref.Trait == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPreference, ErrEmptyTrait)
	}

	if pref.Importance < MinImportance || pref.Importance > MaxImportance {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidPreference, ErrImportanceOutOfRange, pref.Importance)
	}

	return nil
}

// ValidateBreed validates a Breed according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//
// NOT validated:
//   - Traits against the ontology registry (the ingest pipeline does that,
//     since core does not know the registry)
//   - ID (0 is valid before content hashing)
func ValidateBreed(breed *Breed) error {
	if breed == nil {
		return fmt.Errorf("%w: breed is nil", ErrInvalidBreed)
	}

	if breed.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidBreed, ErrEmptyBreedName)
	}

	return nil
}
