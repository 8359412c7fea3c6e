package wire_test

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nem2/internal/errors"
	"nem2/internal/wire"
)

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

func TestToUint32(t *testing.T) {
	for _, in := range []wire.Value{7, int64(7), uint8(7), float64(7), json.Number("7")} {
		v, err := wire.ToUint32(in)
		require.NoError(t, err, "%T", in)
		assert.Equal(t, uint32(7), v)
	}

	for _, in := range []wire.Value{-1, 1.5, uint64(1 << 32), json.Number("x"), "7", nil} {
		_, err := wire.ToUint32(in)
		assert.ErrorIs(t, err, errors.Format, "%#v", in)
	}
}

func TestToInt(t *testing.T) {
	v, err := wire.ToInt(json.Number("-42"))
	require.NoError(t, err)
	assert.Equal(t, int64(-42), v)

	_, err = wire.ToInt(uint64(1 << 63))
	assert.ErrorIs(t, err, errors.Format)
}

func TestToMapAcceptsInterfaceKeys(t *testing.T) {
	m, err := wire.ToMap(map[any]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, wire.Map{"a": 1}, m)

	_, err = wire.ToMap(map[any]any{1: 1})
	assert.ErrorIs(t, err, errors.Format)

	_, err = wire.ToMap(wire.List{})
	assert.ErrorIs(t, err, errors.Format)
}

func TestScalarAssertions(t *testing.T) {
	_, err := wire.ToString(1)
	assert.ErrorIs(t, err, errors.Format)
	_, err = wire.ToBool("true")
	assert.ErrorIs(t, err, errors.Format)
	_, err = wire.ToList(wire.Map{})
	assert.ErrorIs(t, err, errors.Format)
}
