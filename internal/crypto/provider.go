package crypto

import "nem2/internal/domain"

// Provider is the crypto capability set the toolkit depends on.
type Provider interface {
	// IDHash derives a 64-bit child identifier from a parent identifier and
	// a name segment.
	IDHash(parent uint64, name string) uint64

	// Hash digests the concatenation of parts.
	Hash(alg Algorithm, parts ...[]byte) ([]byte, error)

	// Sign signs msg with priv.
	Sign(priv domain.Ed25519Private, msg []byte) []byte

	// Verify checks sig over msg with pub.
	Verify(pub domain.Ed25519Public, msg, sig []byte) bool
}

// Default is the Provider backed by this package's functions.
var Default Provider = standard{}

type standard struct{}

func (standard) IDHash(parent uint64, name string) uint64 { return IDHash(parent, name) }

func (standard) Hash(alg Algorithm, parts ...[]byte) ([]byte, error) { return Sum(alg, parts...) }

func (standard) Sign(priv domain.Ed25519Private, msg []byte) []byte { return SignEd25519(priv, msg) }

func (standard) Verify(pub domain.Ed25519Public, msg, sig []byte) bool {
	return VerifyEd25519(pub, msg, sig)
}
