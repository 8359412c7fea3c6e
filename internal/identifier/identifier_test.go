package identifier_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nem2/internal/crypto"
	"nem2/internal/errors"
	"nem2/internal/identifier"
)

func TestDeriveDeterministic(t *testing.T) {
	a, err := identifier.Derive("a.b.c")
	require.NoError(t, err)
	b, err := identifier.Derive("a.b.c")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 3)
}

func TestLeafDependsOnAncestry(t *testing.T) {
	abc, err := identifier.Derive("a.b.c")
	require.NoError(t, err)
	xbc, err := identifier.Derive("x.b.c")
	require.NoError(t, err)

	assert.NotEqual(t, abc[2], xbc[2])
	assert.NotEqual(t, abc[1], xbc[1])
}

func TestDeriveTwoLevels(t *testing.T) {
	p, err := identifier.Derive("foo.bar")
	require.NoError(t, err)
	require.Len(t, p, 2)

	assert.Equal(t, crypto.IDHash(0, "foo"), p[0])
	assert.Equal(t, crypto.IDHash(p[0], "bar"), p[1])

	parent, ok := p.Parent()
	assert.True(t, ok)
	assert.Equal(t, p[0], parent)
	assert.Equal(t, p[1], p.Leaf())

	root, err := identifier.Derive("foo")
	require.NoError(t, err)
	assert.Equal(t, p[0], root.Leaf(), "root id depends only on its own name")
	_, ok = root.Parent()
	assert.False(t, ok)
}

func TestDeriveValidation(t *testing.T) {
	for _, name := range []string{
		"",
		"UPPER",
		strings.Repeat("a", 65),
		"a..b",
		".a",
		"a.",
		"a b",
		"ünï",
	} {
		_, err := identifier.Derive(name)
		assert.ErrorIs(t, err, errors.Validation, "%q", name)
	}

	_, err := identifier.Derive(strings.Repeat("a", 64) + ".b_c-9")
	assert.NoError(t, err)
}

func TestDeriveAnyDepth(t *testing.T) {
	p, err := identifier.Derive("a.b.c.d")
	require.NoError(t, err)
	require.Len(t, p, 4)

	parent, ok := p.Parent()
	require.True(t, ok)
	assert.Equal(t, p[2], parent)
	assert.Equal(t, crypto.IDHash(p[2], "d"), p.Leaf())

	abc, err := identifier.Derive("a.b.c")
	require.NoError(t, err)
	assert.Equal(t, abc, p[:3])
}

func TestNamespaceDepthLimit(t *testing.T) {
	_, err := identifier.NamespaceID("a.b.c")
	assert.NoError(t, err)

	_, err = identifier.NamespaceID("a.b.c.d")
	assert.ErrorIs(t, err, errors.Validation)

	_, err = identifier.MosaicID("a.b.c.d:token")
	assert.ErrorIs(t, err, errors.Validation)
	_, err = identifier.MosaicID("a.b.c:token")
	assert.NoError(t, err)

	p, err := identifier.Derive("a.b.c.d")
	require.NoError(t, err)
	assert.ErrorIs(t, identifier.ValidateNamespaceDepth("a.b.c.d", p), errors.Validation)
	assert.NoError(t, identifier.ValidateNamespaceDepth("a.b.c", p[:3]))
}

func TestNamespaceID(t *testing.T) {
	id, err := identifier.NamespaceID("nem.owner")
	require.NoError(t, err)
	p, err := identifier.Derive("nem.owner")
	require.NoError(t, err)
	assert.Equal(t, p.Leaf(), id)
}

func TestMosaicID(t *testing.T) {
	ns, err := identifier.NamespaceID("nem")
	require.NoError(t, err)

	viaColon, err := identifier.MosaicID("nem:xem")
	require.NoError(t, err)
	viaDot, err := identifier.MosaicID("nem.xem")
	require.NoError(t, err)

	assert.Equal(t, viaColon, viaDot)
	assert.Equal(t, crypto.IDHash(ns, "xem"), viaColon)

	for _, name := range []string{"xem", "nem:", "nem:XEM", "NEM:xem"} {
		_, err := identifier.MosaicID(name)
		assert.ErrorIs(t, err, errors.Validation, "%q", name)
	}
}

type countingProvider struct {
	crypto.Provider
	calls int
}

func (c *countingProvider) IDHash(parent uint64, name string) uint64 {
	c.calls++
	return parent*31 + uint64(len(name))
}

func TestDeriverUsesProvider(t *testing.T) {
	p := &countingProvider{Provider: crypto.Default}
	d := identifier.New(p)

	path, err := d.Derive("ab.c")
	require.NoError(t, err)
	assert.Equal(t, identifier.Path{2, 2*31 + 1}, path)
	assert.Equal(t, 2, p.calls)
}

func TestEmptyPath(t *testing.T) {
	var p identifier.Path
	assert.Zero(t, p.Leaf())
	_, ok := p.Parent()
	assert.False(t, ok)
}
