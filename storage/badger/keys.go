package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/breedmatch/core"
)

// Key prefixes for different data types
const (
	breedRecordPrefix = "brdrec"
	breedNamePrefix   = "brdname"
	breedOrderPrefix  = "brdord"
	breedTraitPrefix  = "brdtrait"
	breedOrderSeq     = "brdordseq"
)

// makeBreedKey generates a key for a breed record by ID.
func makeBreedKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", breedRecordPrefix, id))
}

// makeBreedNameKey generates a key for the name index.
func makeBreedNameKey(name string) []byte {
	return []byte(breedNamePrefix + ":" + name)
}

// makeBreedOrderKey generates a composite key for the catalog-order index.
// Format: prefix:ordinal. Ordinals are written in BigEndian order so
// lexicographic iteration follows insertion order.
func makeBreedOrderKey(ordinal uint64) []byte {
	prefix := breedOrderPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], ordinal)
	return buf
}

// breedOrderIterPrefix is the iteration prefix for the catalog-order index.
func breedOrderIterPrefix() []byte {
	return []byte(breedOrderPrefix + ":")
}

// makeBreedTraitKey generates a composite key for the trait index.
// Format: prefix:trait:name. Trait names never contain ':' (they are
// normalized predicate names), so the separator is unambiguous.
func makeBreedTraitKey(trait, name string) []byte {
	return []byte(breedTraitPrefix + ":" + trait + ":" + name)
}

// breedTraitIterPrefix generates the iteration prefix for one trait.
func breedTraitIterPrefix(trait string) []byte {
	return []byte(breedTraitPrefix + ":" + trait + ":")
}
