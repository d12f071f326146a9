package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// DefaultImportance is assigned to preferences that do not state one.
const DefaultImportance = 3

// Importance bounds for a preference.
const (
	MinImportance = 1
	MaxImportance = 5
)

// Breed represents a catalog entry: a dog breed and the ontology trait
// predicates it satisfies.
type Breed struct {
	Id         ID
	Name       string
	Traits     []string // Predicate names from the ontology registry
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// TraitSet returns the breed's traits as a membership set.
func (b *Breed) TraitSet() map[string]bool {
	set := make(map[string]bool, len(b.Traits))
	for _, t := range b.Traits {
		set[t] = true
	}
	return set
}

// Preference is a user-requested trait with an importance weight in [1, 5].
type Preference struct {
	Trait      string
	Importance int
}

// ScoredCandidate is a breed that survived constraint relaxation, with its
// weighted trait-overlap score. MatchedTraits holds the original trait
// strings of every preference the breed satisfies, in preference order.
type ScoredCandidate struct {
	Breed         string
	Score         int
	MatchedTraits []string
	MatchedCount  int
}

// MatchResult is the full outcome of a matching run.
// UsedTraits and DroppedTraits partition the requested trait set:
// DroppedTraits lists preferences removed during relaxation, in drop order.
type MatchResult struct {
	Ranked        []ScoredCandidate
	UsedTraits    []string
	DroppedTraits []string
}

// Breeds returns the ranked breed names.
func (r *MatchResult) Breeds() []string {
	names := make([]string, len(r.Ranked))
	for i, c := range r.Ranked {
		names[i] = c.Breed
	}
	return names
}
