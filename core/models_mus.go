package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the stored types. The serialized surface
// is small enough (ID and Breed) that generated code would be overkill.

var traitsMUS = ord.NewSliceSer[string](ord.String)

// IDMUS serializes ID values in MUS format.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) (size int) {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

// BreedMUS serializes Breed values in MUS format.
// Timestamps are stored as Unix microseconds.
var BreedMUS = breedMUS{}

type breedMUS struct{}

func (breedMUS) Marshal(b Breed, bs []byte) (n int) {
	n = IDMUS.Marshal(b.Id, bs)
	n += ord.String.Marshal(b.Name, bs[n:])
	n += traitsMUS.Marshal(b.Traits, bs[n:])
	n += varint.Int64.Marshal(b.InsertedAt.UnixMicro(), bs[n:])
	n += varint.Int64.Marshal(b.UpdatedAt.UnixMicro(), bs[n:])
	return n
}

func (breedMUS) Unmarshal(bs []byte) (b Breed, n int, err error) {
	b.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	b.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	b.Traits, n1, err = traitsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var usec int64
	usec, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	b.InsertedAt = time.UnixMicro(usec).UTC()
	usec, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	b.UpdatedAt = time.UnixMicro(usec).UTC()
	return
}

func (breedMUS) Size(b Breed) (size int) {
	size = IDMUS.Size(b.Id)
	size += ord.String.Size(b.Name)
	size += traitsMUS.Size(b.Traits)
	size += varint.Int64.Size(b.InsertedAt.UnixMicro())
	size += varint.Int64.Size(b.UpdatedAt.UnixMicro())
	return size
}

func (breedMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = traitsMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	return
}
