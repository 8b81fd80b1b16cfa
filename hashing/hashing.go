package hashing

import (
	"encoding/hex"
	"hash"

	"github.com/OneOfOne/xxhash"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Xxhash64 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

var _ HashFunc = Xxhash64

// Xxhash64 returns the 64-bit XXH64 hash of the given Hashable, hex-encoded.
// If the Hashable fails to update the hash, an error is returned.
func Xxhash64(hashable Hashable) (string, error) {
	h := xxhash.New64()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
