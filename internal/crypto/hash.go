package crypto

import (
	"encoding/binary"
	"fmt"
	"hash"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required by the address format
	"golang.org/x/crypto/sha3"
)

// Algorithm names a digest of the hash family.
type Algorithm int

// Digests supported by Sum. The zero Algorithm is invalid.
const (
	// SHA3_256 is FIPS 202 SHA3-256, used for identifiers and addresses.
	SHA3_256 Algorithm = iota + 1
	// SHA3_512 is FIPS 202 SHA3-512.
	SHA3_512
	// Keccak256 is the pre-standard Keccak with 256-bit output.
	Keccak256
	// Keccak512 is the pre-standard Keccak with 512-bit output.
	Keccak512
	// RIPEMD160 is the second hash in address derivation.
	RIPEMD160
)

var algorithmNames = map[Algorithm]string{
	SHA3_256:  "sha3-256",
	SHA3_512:  "sha3-512",
	Keccak256: "keccak-256",
	Keccak512: "keccak-512",
	RIPEMD160: "ripemd-160",
}

func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

func (a Algorithm) new() (hash.Hash, error) {
	switch a {
	case SHA3_256:
		return sha3.New256(), nil
	case SHA3_512:
		return sha3.New512(), nil
	case Keccak256:
		return sha3.NewLegacyKeccak256(), nil
	case Keccak512:
		return sha3.NewLegacyKeccak512(), nil
	case RIPEMD160:
		return ripemd160.New(), nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm %v", a)
	}
}

// Sum hashes the concatenation of parts with alg.
func Sum(alg Algorithm, parts ...[]byte) ([]byte, error) {
	h, err := alg.new()
	if err != nil {
		return nil, err
	}
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil), nil
}

// namespaceFlag marks a 64-bit id as a namespace id.
const namespaceFlag = uint64(1) << 63

// IDHash derives the child id of parent for name: the first 8 bytes of
// sha3-256(le32(low(parent)) || le32(high(parent)) || name), read as a
// little-endian uint64 with the namespace flag set. Root names use parent 0.
func IDHash(parent uint64, name string) uint64 {
	var prefix [8]byte
	binary.LittleEndian.PutUint32(prefix[0:4], uint32(parent))
	binary.LittleEndian.PutUint32(prefix[4:8], uint32(parent>>32))

	h := sha3.New256()
	h.Write(prefix[:])
	h.Write([]byte(name))
	digest := h.Sum(nil)

	return binary.LittleEndian.Uint64(digest[:8]) | namespaceFlag
}
