package dto_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nem2/internal/dto"
	"nem2/internal/errors"
	"nem2/internal/wire"
)

type color uint8

const (
	red color = iota + 1
	green
)

func (c color) Valid() bool { return c == red || c == green }

func (c color) Description() string {
	switch c {
	case red:
		return "red"
	case green:
		return "green"
	}
	return "undefined"
}

type coin struct {
	ID     uint64
	Amount uint64
}

type meta struct {
	Height uint64
	Hash   string
}

type holder struct {
	Address string
	Coins   []coin
	Meta    *meta
	Label   string
	Color   color
	Index   uint32
}

type empty struct{}

var coinSchema = dto.NewSchema("Coin",
	dto.Required("id", "id", dto.Uint64(), func(c *coin) *uint64 { return &c.ID }),
	dto.Required("amount", "amount", dto.Uint64(), func(c *coin) *uint64 { return &c.Amount }),
)

var metaSchema = dto.NewSchema("Meta",
	dto.Required("height", "height", dto.Uint64(), func(m *meta) *uint64 { return &m.Height }),
	dto.Required("hash", "hash", dto.Hex(), func(m *meta) *string { return &m.Hash }),
)

var holderSchema = dto.NewSchema("Holder",
	dto.Required("address", "address", dto.String(), func(h *holder) *string { return &h.Address }),
	dto.Required("coins", "mosaics", dto.List[coin](coinSchema), func(h *holder) *[]coin { return &h.Coins }),
	dto.Optional("meta", "meta", metaSchema, func(h *holder) **meta { return &h.Meta }),
	dto.Default("label", "label", dto.String(), func(h *holder) *string { return &h.Label }, "none"),
	dto.Required("color", "color", dto.Enum[color]("Color"), func(h *holder) *color { return &h.Color }),
	dto.Required("index", "index", dto.Uint[uint32]("uint32"), func(h *holder) *uint32 { return &h.Index }),
)

var emptySchema = dto.NewSchema[empty]("Empty").Closed()

func sampleHolder() holder {
	return holder{
		Address: "SAONSOGFZZHNEIBRYXHDTDTBR2YSAXKTITRFHG2Y",
		Coins: []coin{
			{ID: 0x0DC67FBE1CAD29E3, Amount: math.MaxUint64},
			{ID: 1, Amount: 0},
		},
		Meta:  &meta{Height: 1 << 32, Hash: "ab01"},
		Label: "savings",
		Color: green,
		Index: 7,
	}
}

func TestRoundTrip(t *testing.T) {
	h := sampleHolder()

	payload, err := holderSchema.ToWire(h)
	require.NoError(t, err)

	got, err := holderSchema.FromWire(payload)
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestToWireShape(t *testing.T) {
	h := sampleHolder()
	h.Meta = nil

	payload, err := holderSchema.ToWire(h)
	require.NoError(t, err)

	assert.NotContains(t, payload, "meta", "absent optional must be omitted, not null")
	assert.ElementsMatch(t, []string{"address", "mosaics", "label", "color", "index"}, keys(payload))

	coins := payload["mosaics"].(wire.List)
	require.Len(t, coins, 2)
	first := coins[0].(wire.Map)
	assert.Equal(t, wire.List{uint32(math.MaxUint32), uint32(math.MaxUint32)}, first["amount"])
	assert.Equal(t, uint32(green), payload["color"])
}

func TestFromWireMissingRequired(t *testing.T) {
	payload, err := holderSchema.ToWire(sampleHolder())
	require.NoError(t, err)
	delete(payload, "address")

	got, err := holderSchema.FromWire(payload)
	assert.ErrorIs(t, err, errors.MissingField)
	assert.Equal(t, holder{}, got, "no partial model on failure")

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, []string{"address"}, e.Path)
}

func TestFromWireNestedPath(t *testing.T) {
	payload, err := holderSchema.ToWire(sampleHolder())
	require.NoError(t, err)
	delete(payload["mosaics"].(wire.List)[1].(wire.Map), "amount")

	_, err = holderSchema.FromWire(payload)
	assert.ErrorIs(t, err, errors.MissingField)

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, []string{"mosaics", "1", "amount"}, e.Path)
}

func TestFromWireNullIsAbsent(t *testing.T) {
	payload, err := holderSchema.ToWire(sampleHolder())
	require.NoError(t, err)
	payload["meta"] = nil
	payload["label"] = nil

	got, err := holderSchema.FromWire(payload)
	require.NoError(t, err)
	assert.Nil(t, got.Meta)
	assert.Equal(t, "none", got.Label)

	payload["address"] = nil
	_, err = holderSchema.FromWire(payload)
	assert.ErrorIs(t, err, errors.MissingField)
}

func TestDefaultSubstituted(t *testing.T) {
	payload, err := holderSchema.ToWire(sampleHolder())
	require.NoError(t, err)
	delete(payload, "label")

	got, err := holderSchema.FromWire(payload)
	require.NoError(t, err)
	assert.Equal(t, "none", got.Label)
}

func TestOpenSchemaDropsExtraKeys(t *testing.T) {
	payload, err := holderSchema.ToWire(sampleHolder())
	require.NoError(t, err)
	payload["extra"] = 1

	got, err := holderSchema.FromWire(payload)
	require.NoError(t, err)

	again, err := holderSchema.ToWire(got)
	require.NoError(t, err)
	delete(payload, "extra")
	assert.Equal(t, payload, again)
}

func TestClosedSchema(t *testing.T) {
	assert.True(t, emptySchema.IsClosed())

	got, err := emptySchema.FromWire(wire.Map{})
	require.NoError(t, err)
	assert.Equal(t, empty{}, got)

	_, err = emptySchema.FromWire(wire.Map{"extra": 1})
	assert.ErrorIs(t, err, errors.UnexpectedField)

	payload, err := emptySchema.ToWire(empty{})
	require.NoError(t, err)
	assert.Empty(t, payload)
}

func TestFromWireRejectsNonObject(t *testing.T) {
	_, err := holderSchema.FromWire(wire.List{})
	assert.ErrorIs(t, err, errors.Validation)
}

func TestFieldDecodeErrors(t *testing.T) {
	for name, mutate := range map[string]func(wire.Map){
		"bad pair":     func(m wire.Map) { m["mosaics"].(wire.List)[0].(wire.Map)["id"] = wire.List{1} },
		"bad enum":     func(m wire.Map) { m["color"] = 9 },
		"enum too big": func(m wire.Map) { m["color"] = 257 },
		"bad hex":      func(m wire.Map) { m["meta"].(wire.Map)["hash"] = "zz" },
		"bad string":   func(m wire.Map) { m["address"] = 12 },
		"bad list":     func(m wire.Map) { m["mosaics"] = "x" },
		"negative":     func(m wire.Map) { m["index"] = -1 },
	} {
		t.Run(name, func(t *testing.T) {
			payload, err := holderSchema.ToWire(sampleHolder())
			require.NoError(t, err)
			mutate(payload)

			_, err = holderSchema.FromWire(payload)
			assert.ErrorIs(t, err, errors.Format)
		})
	}
}

func TestToWireRejectsInvalidValues(t *testing.T) {
	h := sampleHolder()
	h.Color = 0
	_, err := holderSchema.ToWire(h)
	assert.ErrorIs(t, err, errors.Validation)

	h = sampleHolder()
	h.Meta.Hash = "xyz"
	_, err = holderSchema.ToWire(h)
	assert.ErrorIs(t, err, errors.Validation)
}

func TestEmptyListDecodesToNil(t *testing.T) {
	h := sampleHolder()
	h.Coins = nil

	payload, err := holderSchema.ToWire(h)
	require.NoError(t, err)
	assert.Equal(t, wire.List{}, payload["mosaics"])

	got, err := holderSchema.FromWire(payload)
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestEmptyNonNilListNormalisesToNil(t *testing.T) {
	h := sampleHolder()
	h.Coins = []coin{}

	payload, err := holderSchema.ToWire(h)
	require.NoError(t, err)
	assert.Equal(t, wire.List{}, payload["mosaics"])

	got, err := holderSchema.FromWire(payload)
	require.NoError(t, err)
	assert.Nil(t, got.Coins)

	again, err := holderSchema.ToWire(got)
	require.NoError(t, err)
	assert.Equal(t, payload, again)
}

func TestDescribe(t *testing.T) {
	info := holderSchema.Describe()
	require.Len(t, info, 6)

	assert.Equal(t, dto.FieldInfo{Name: "coins", Key: "mosaics", Type: "[]Coin", Required: true}, info[1])
	assert.Equal(t, dto.FieldInfo{Name: "meta", Key: "meta", Type: "*Meta"}, info[2])
	assert.Equal(t, dto.FieldInfo{Name: "label", Key: "label", Type: "string", HasDefault: true}, info[3])
	assert.Equal(t, "Holder", holderSchema.Name())
}

func TestNewSchemaRejectsDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		dto.NewSchema("Dup",
			dto.Required("a", "k", dto.String(), func(h *holder) *string { return &h.Address }),
			dto.Required("b", "k", dto.String(), func(h *holder) *string { return &h.Label }),
		)
	})
	assert.Panics(t, func() {
		dto.NewSchema("Dup",
			dto.Required("a", "k1", dto.String(), func(h *holder) *string { return &h.Address }),
			dto.Required("a", "k2", dto.String(), func(h *holder) *string { return &h.Label }),
		)
	})
}

func keys(m wire.Map) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
