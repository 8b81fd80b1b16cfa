package hashing

import (
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// Fingerprint summarizes a multiset of values independently of their order.
// Two sequences that are permutations of each other always have the same
// fingerprint; sequences that differ have different fingerprints with
// overwhelming probability.
//
// Each element is rendered with %v and hashed twice: the XXH3 hashes are
// summed and the XXH64 hashes are xor-ed. Both operations are commutative,
// which is what makes the result order-independent. The sum lane also keeps
// duplicate pairs (which cancel out under xor) from going unnoticed.
type Fingerprint struct {
	Count int
	Sum   uint64
	Xor   uint64
}

// FingerprintOf computes the Fingerprint of the given values.
func FingerprintOf[T any](values []T) Fingerprint {
	fp := Fingerprint{Count: len(values)}

	var buf []byte

	for _, v := range values {
		buf = fmt.Appendf(buf[:0], "%v", v)

		fp.Sum += xxh3.Hash(buf)
		fp.Xor ^= xxhash.Checksum64(buf)
	}

	return fp
}

var _ Hashable = Fingerprint{}

// UpdateHash writes the three lanes of the fingerprint, big-endian, so a
// HashFunc can condense them into a single digest.
func (f Fingerprint) UpdateHash(h hash.Hash) error {
	var buf [24]byte

	binary.BigEndian.PutUint64(buf[0:], uint64(f.Count)) //nolint:gosec
	binary.BigEndian.PutUint64(buf[8:], f.Sum)
	binary.BigEndian.PutUint64(buf[16:], f.Xor)

	_, err := h.Write(buf[:])

	return err
}

// String renders the fingerprint compactly, for logs.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%d:%016x:%016x", f.Count, f.Sum, f.Xor)
}
