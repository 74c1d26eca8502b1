package iteration

import (
	"context"
	"testing"

	etg1510gw "github.com/samsamfire/etg1510gw"
	"github.com/samsamfire/etg1510gw/pkg/od"
	"github.com/samsamfire/etg1510gw/pkg/sdo"
	"github.com/samsamfire/etg1510gw/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadGateway answers SDO Upload requests with canned bodies per index.
type uploadGateway struct {
	t      *testing.T
	bodies map[uint16][]byte
}

func (g *uploadGateway) Send(_ context.Context, request []byte) ([]byte, error) {
	var req wire.SDORequestHeader
	require.NoError(g.t, req.Decode(request[10:18]))
	body, ok := g.bodies[req.Index]
	require.True(g.t, ok, "unexpected upload for index %#x", req.Index)

	header := wire.SDOResponseHeader{
		SizeIndicator:    true,
		CommandSpecifier: wire.CommandSpecifierUpload,
		Index:            req.Index,
	}
	sdoBytes, err := header.Encode()
	require.NoError(g.t, err)
	sized := make([]byte, 4+len(body))
	sized[0] = byte(len(body))
	copy(sized[4:], body)

	coeBytes, err := wire.CoEHeader{Service: wire.ServiceSDOResponse}.Encode()
	require.NoError(g.t, err)
	mailbox := wire.MailboxHeader{
		Length: uint16(len(coeBytes) + len(sdoBytes) + len(sized)),
		Type:   wire.MailboxTypeCoE,
		Cnt:    1,
	}
	mailboxBytes, err := mailbox.Encode()
	require.NoError(g.t, err)
	ethercatBytes, err := wire.EtherCATHeader{
		Length:   uint16(len(mailboxBytes)) + mailbox.Length,
		DataType: wire.EtherCATDataTypeMailbox,
	}.Encode()
	require.NoError(g.t, err)

	out := append([]byte{}, ethercatBytes...)
	out = append(out, mailboxBytes...)
	out = append(out, coeBytes...)
	out = append(out, sdoBytes...)
	return append(out, sized...), nil
}

func discoveredRegistry() *od.Registry {
	registry := od.NewRegistry()
	deviceType := od.NewDeviceType()
	deviceType.Entries[0].Enable = true
	registry.Put(0x1000, deviceType)
	deviceName := od.NewDeviceName()
	deviceName.Entries[0].Enable = true
	registry.Put(0x1008, deviceName)
	return registry
}

func newCursor(t *testing.T, watchList []uint16) *Cursor {
	gateway := &uploadGateway{t: t, bodies: map[uint16][]byte{
		0x1000: {0xF9, 0x00, 0x00, 0x00},
		0x1008: []byte("EK1100\x00\x00"),
	}}
	controller := sdo.NewController(gateway, false)
	return New(controller, od.DefaultCatalogue(), discoveredRegistry(), watchList)
}

func TestCursorWalksWatchList(t *testing.T) {
	cursor := newCursor(t, []uint16{0x1000, 0x1008})
	ctx := context.Background()

	item, err := cursor.Next(ctx)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, uint16(0x1000), item.Index)
	assert.Equal(t, uint32(0xF9), item.Container.Entries[0].Value)

	item, err = cursor.Next(ctx)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, uint16(0x1008), item.Index)
	assert.Equal(t, "EK1100", item.Container.Entries[0].Value)

	item, err = cursor.Next(ctx)
	require.NoError(t, err)
	assert.Nil(t, item)

	// second pass restarts from the first element
	item, err = cursor.Next(ctx)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, uint16(0x1000), item.Index)
}

func TestCursorDefaultsToWholeRegistry(t *testing.T) {
	cursor := newCursor(t, nil)
	ctx := context.Background()

	var indices []uint16
	for {
		item, err := cursor.Next(ctx)
		require.NoError(t, err)
		if item == nil {
			break
		}
		indices = append(indices, item.Index)
	}
	assert.Equal(t, []uint16{0x1000, 0x1008}, indices)
}

func TestCursorUnknownIndex(t *testing.T) {
	cursor := newCursor(t, []uint16{0x2000})
	_, err := cursor.Next(context.Background())
	assert.ErrorIs(t, err, etg1510gw.ErrUnknownIndex)

	_, err = cursor.Get(context.Background(), 0x2000)
	assert.ErrorIs(t, err, etg1510gw.ErrUnknownIndex)
}

func TestCursorGet(t *testing.T) {
	cursor := newCursor(t, nil)
	container, err := cursor.Get(context.Background(), 0x1000)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xF9), container.Entries[0].Value)
}
