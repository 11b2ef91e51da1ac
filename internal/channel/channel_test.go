// internal/channel/channel_test.go
package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTripsEveryChannel(t *testing.T) {
	for _, c := range All() {
		got, ok := Parse(c.String())
		require.True(t, ok, "channel %d", c)
		assert.Equal(t, c, got)
	}

	_, ok := Parse("clin")
	assert.False(t, ok, "names are case-sensitive")
}

func TestShapes(t *testing.T) {
	assert.Equal(t, ShapeLinear, CLin.Shape())
	assert.Equal(t, ShapeLogarithmic, SRadAer.Shape())
	assert.Equal(t, ShapeReciprocal, CParAPer.Shape())
	assert.Equal(t, ShapeNone, CLinScale.Shape())
	assert.Equal(t, ShapeNone, Channel(99).Shape())
}

func TestDefaultAddressesUnique(t *testing.T) {
	seen := map[uint16]Channel{}
	for _, c := range All() {
		addr := DefaultAddresses().Of(c)
		prev, dup := seen[addr]
		require.False(t, dup, "%s and %s share %%IW%d", prev, c, addr)
		seen[addr] = c
	}
}

func TestAddressesWith(t *testing.T) {
	base := DefaultAddresses()

	a, err := base.With(map[string]uint16{"CLin": 8, "CPer": 13})
	require.NoError(t, err)
	assert.Equal(t, uint16(8), a.Of(CLin))
	assert.Equal(t, uint16(13), a.Of(CPer))
	assert.Equal(t, uint16(25), base.Of(CLin), "base must not change")

	_, err = base.With(map[string]uint16{"Nope": 1})
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	assert.Equal(t, -1.0, DecodeAnalog(0xFFFF))
	assert.Equal(t, 1580.0, DecodeAnalog(1580))

	assert.Equal(t, -2, DecodeScale(0))
	assert.Equal(t, 0, DecodeScale(0b010))
	assert.Equal(t, 5, DecodeScale(0b1111_0111))
}
