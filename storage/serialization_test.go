package storage

import (
	"testing"
	"time"

	"github.com/poiesic/breedmatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreedRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	breed := &core.Breed{
		Id:         core.IDFromContent("Samoyed"),
		Name:       "Samoyed",
		Traits:     []string{"high_shedding", "double_coat", "friendly"},
		InsertedAt: now,
		UpdatedAt:  now,
	}

	decoded, err := UnmarshalBreed(MarshalBreed(breed))
	require.NoError(t, err)
	assert.Equal(t, breed.Id, decoded.Id)
	assert.Equal(t, breed.Name, decoded.Name)
	assert.Equal(t, breed.Traits, decoded.Traits)
	assert.True(t, breed.InsertedAt.Equal(decoded.InsertedAt))
	assert.True(t, breed.UpdatedAt.Equal(decoded.UpdatedAt))
}

func TestBreedRoundTrip_EmptyTraits(t *testing.T) {
	breed := &core.Breed{
		Id:         1,
		Name:       "Mutt",
		InsertedAt: time.UnixMicro(0).UTC(),
		UpdatedAt:  time.UnixMicro(0).UTC(),
	}

	decoded, err := UnmarshalBreed(MarshalBreed(breed))
	require.NoError(t, err)
	assert.Equal(t, breed.Name, decoded.Name)
	assert.Empty(t, decoded.Traits)
}

func TestIDRoundTrip(t *testing.T) {
	id := core.IDFromContent("Border Collie")

	decoded, err := UnmarshalID(MarshalID(id))
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}

func TestUnmarshalBreed_Truncated(t *testing.T) {
	breed := &core.Breed{Id: 7, Name: "Akita", Traits: []string{"aloof"}}
	data := MarshalBreed(breed)

	_, err := UnmarshalBreed(data[:len(data)/2])
	assert.ErrorIs(t, err, ErrSerializationFailed)
}
