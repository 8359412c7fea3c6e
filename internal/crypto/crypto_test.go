package crypto_test

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"nem2/internal/crypto"
	"nem2/internal/domain"
)

func TestEd25519FromSeedMatchesSigning(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, 32)
	priv, pub, err := crypto.Ed25519FromSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, seed, priv[:32])
	assert.Equal(t, pub[:], priv[32:])

	msg := []byte("hash to cosign")
	sig := crypto.SignEd25519(priv, msg)
	assert.Len(t, sig, 64)
	assert.True(t, crypto.VerifyEd25519(pub, msg, sig))
	assert.False(t, crypto.VerifyEd25519(pub, []byte("other"), sig))
}

func TestEd25519FromSeedRejectsBadLength(t *testing.T) {
	_, _, err := crypto.Ed25519FromSeed(make([]byte, 31))
	assert.Error(t, err)
}

func TestGenerateEd25519(t *testing.T) {
	priv, pub, err := crypto.GenerateEd25519()
	require.NoError(t, err)
	assert.NotEqual(t, domain.Ed25519Public{}, pub)

	sig := crypto.Default.Sign(priv, []byte("m"))
	assert.True(t, crypto.Default.Verify(pub, []byte("m"), sig))
}

func TestSumKnownDigests(t *testing.T) {
	// Empty-input digests are fixed by the algorithm definitions.
	got, err := crypto.Sum(crypto.SHA3_256)
	require.NoError(t, err)
	assert.Equal(t, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a", hex.EncodeToString(got))

	got, err = crypto.Sum(crypto.Keccak256)
	require.NoError(t, err)
	assert.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", hex.EncodeToString(got))

	got, err = crypto.Sum(crypto.RIPEMD160)
	require.NoError(t, err)
	assert.Equal(t, "9c1185a5c5e9fc54612808977ee8f548b2258d31", hex.EncodeToString(got))

	got, err = crypto.Default.Hash(crypto.SHA3_512, []byte("a"), []byte("b"))
	require.NoError(t, err)
	want := sha3.Sum512([]byte("ab"))
	assert.Equal(t, want[:], got)

	_, err = crypto.Sum(crypto.Algorithm(99))
	assert.Error(t, err)
}

func TestIDHash(t *testing.T) {
	id := crypto.IDHash(0, "foo")
	assert.Equal(t, id, crypto.IDHash(0, "foo"))
	assert.NotZero(t, id&(1<<63), "namespace flag must be set")

	// Matches the documented construction.
	digest := sha3.Sum256(append(make([]byte, 8), "foo"...))
	assert.Equal(t, binary.LittleEndian.Uint64(digest[:8])|1<<63, id)

	assert.NotEqual(t, crypto.IDHash(id, "bar"), crypto.IDHash(0, "bar"))
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	crypto.Wipe(b)
	assert.Equal(t, []byte{0, 0, 0}, b)

	k := domain.Ed25519Private{1, 2, 3}
	crypto.WipePrivateKey(&k)
	assert.Equal(t, domain.Ed25519Private{}, k)
	crypto.Wipe(nil)
}

func TestFingerprint(t *testing.T) {
	fp := crypto.Fingerprint([]byte{1, 2, 3})
	assert.Len(t, fp, 20)
}
