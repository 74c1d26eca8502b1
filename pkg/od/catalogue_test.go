package od

import (
	"testing"

	etg1510gw "github.com/samsamfire/etg1510gw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueLookup(t *testing.T) {
	cat := DefaultCatalogue()
	cases := []struct {
		index uint16
		kind  string
	}{
		{0x1000, "DeviceType"},
		{0x1018, "IdentityObject"},
		{0x8ABC, "ConfigurationData"},
		{0x9FFF, "InformationData"},
		{0xA000, "DiagnosisData"},
		{0xF020, "ConfiguredAddressList"},
	}
	for _, tc := range cases {
		member := cat.Find(tc.index)
		require.NotNil(t, member, "index %#x", tc.index)
		assert.Equal(t, tc.kind, member.Metadata.NewResponse().Kind, "index %#x", tc.index)
	}
	assert.Nil(t, cat.Find(0xF500))
}

func TestCatalogueRangeStart(t *testing.T) {
	cat := DefaultCatalogue()
	start, ok := cat.RangeStart(0x8ABC)
	require.True(t, ok)
	assert.Equal(t, uint16(0x8000), start)

	start, ok = cat.RangeStart(0x1018)
	require.True(t, ok)
	assert.Equal(t, uint16(0x1018), start)

	_, ok = cat.RangeStart(0x2000)
	assert.False(t, ok)
}

func TestCatalogueCompleteAccessFlags(t *testing.T) {
	cat := DefaultCatalogue()
	assert.False(t, cat.Find(0x1000).Metadata.CompleteAccessSupported)
	assert.False(t, cat.Find(0x1008).Metadata.CompleteAccessSupported)
	assert.True(t, cat.Find(0x1018).Metadata.CompleteAccessSupported)
	assert.True(t, cat.Find(0xA123).Metadata.CompleteAccessSupported)
	assert.True(t, cat.Find(0xF200).Metadata.CompleteAccessSupported)
}

func TestCatalogueRejectsOverlappingRanges(t *testing.T) {
	_, err := NewCatalogue(
		&MappingMember{Lo: 0x8000, Hi: 0x8FFF},
		&MappingMember{Lo: 0x8800, Hi: 0x9000},
	)
	assert.ErrorIs(t, err, etg1510gw.ErrRangeOverlap)
}
