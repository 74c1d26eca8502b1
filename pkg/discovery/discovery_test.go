package discovery

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/samsamfire/etg1510gw/pkg/od"
	"github.com/samsamfire/etg1510gw/pkg/sdo"
	"github.com/samsamfire/etg1510gw/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entryReply struct {
	abort     bool
	abortCode uint32
	bitLength uint16
	name      string
}

// scriptedGateway answers Information Service requests from a canned OD.
type scriptedGateway struct {
	t       *testing.T
	indices []uint16
	maxSub  map[uint16]uint8
	entries map[uint16]map[uint8]entryReply
}

func (g *scriptedGateway) Send(_ context.Context, request []byte) ([]byte, error) {
	var info wire.SDOInfoHeader
	require.NoError(g.t, info.Decode(request[10:14]))

	switch info.Opcode {
	case wire.OpGetODListReq:
		body := []byte{0x01, 0x00}
		for _, index := range g.indices {
			body = binary.LittleEndian.AppendUint16(body, index)
		}
		return g.frame(wire.OpGetODListRes, body), nil

	case wire.OpGetDescriptionReq:
		var req wire.InfoDescriptionReq
		require.NoError(g.t, req.Decode(request[14:]))
		body := binary.LittleEndian.AppendUint16(nil, req.Index)
		body = binary.LittleEndian.AppendUint16(body, 0x0007)
		body = append(body, g.maxSub[req.Index], 0x07)
		return g.frame(wire.OpGetDescriptionRes, body), nil

	case wire.OpGetEntryReq:
		var req wire.InfoEntryReq
		require.NoError(g.t, req.Decode(request[14:]))
		reply, ok := g.entries[req.Index][req.Subindex]
		if !ok || reply.abort {
			code := reply.abortCode
			if code == 0 {
				code = 0x06090011
			}
			return g.frame(wire.OpSDOInfoErrReq, binary.LittleEndian.AppendUint32(nil, code)), nil
		}
		body := binary.LittleEndian.AppendUint16(nil, req.Index)
		body = append(body, req.Subindex, wire.InfoValueInfoFull)
		body = binary.LittleEndian.AppendUint16(body, 0x0007)
		body = binary.LittleEndian.AppendUint16(body, reply.bitLength)
		body = binary.LittleEndian.AppendUint16(body, 0x0007)
		body = append(body, []byte(reply.name)...)
		return g.frame(wire.OpGetEntryRes, body), nil

	default:
		g.t.Fatalf("unexpected info opcode %d", info.Opcode)
		return nil, nil
	}
}

func (g *scriptedGateway) frame(opcode uint8, body []byte) []byte {
	sdoBytes, err := wire.SDOInfoHeader{Opcode: opcode}.Encode()
	require.NoError(g.t, err)
	coeBytes, err := wire.CoEHeader{Service: wire.ServiceSDOInfo}.Encode()
	require.NoError(g.t, err)
	mailbox := wire.MailboxHeader{
		Length: uint16(len(coeBytes) + len(sdoBytes) + len(body)),
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
	return append(out, body...)
}

func newDriver(gateway *scriptedGateway) *Driver {
	return New(sdo.NewController(gateway, true), od.DefaultCatalogue(), od.NewRegistry())
}

func TestDiscoverSingleIndex(t *testing.T) {
	gateway := &scriptedGateway{
		t:       t,
		indices: []uint16{0x1000},
		maxSub:  map[uint16]uint8{0x1000: 0},
		entries: map[uint16]map[uint8]entryReply{
			0x1000: {0: {bitLength: 32, name: "Device type"}},
		},
	}
	driver := newDriver(gateway)
	require.NoError(t, driver.Discover(context.Background()))

	registry := driver.Registry()
	require.Equal(t, 1, registry.Len())
	container, ok := registry.Get(0x1000)
	require.True(t, ok)
	require.Len(t, container.Entries, 1)
	entry := container.Entries[0]
	assert.Equal(t, "Device type", entry.Name)
	assert.Equal(t, uint32(4), entry.Size)
	assert.True(t, entry.Enable)
	assert.Nil(t, entry.Value)
}

func TestDiscoverSkipsUnknownIndex(t *testing.T) {
	gateway := &scriptedGateway{
		t:       t,
		indices: []uint16{0xF500, 0x1000},
		maxSub:  map[uint16]uint8{0x1000: 0},
		entries: map[uint16]map[uint8]entryReply{
			0x1000: {0: {bitLength: 32, name: "Device type"}},
		},
	}
	driver := newDriver(gateway)
	require.NoError(t, driver.Discover(context.Background()))

	registry := driver.Registry()
	assert.Equal(t, 1, registry.Len())
	_, ok := registry.Get(0xF500)
	assert.False(t, ok)
}

func TestDiscoverAbortedEntryStaysDisabled(t *testing.T) {
	gateway := &scriptedGateway{
		t:       t,
		indices: []uint16{0x1018},
		maxSub:  map[uint16]uint8{0x1018: 4},
		entries: map[uint16]map[uint8]entryReply{
			0x1018: {
				0: {bitLength: 16, name: "Number of entries"},
				1: {bitLength: 32, name: "Vendor ID"},
				2: {abort: true, abortCode: 0x06090011},
				3: {bitLength: 32, name: "Revision number"},
				4: {bitLength: 32, name: "Serial number"},
			},
		},
	}
	driver := newDriver(gateway)
	require.NoError(t, driver.Discover(context.Background()))

	container, ok := driver.Registry().Get(0x1018)
	require.True(t, ok)

	vendor, _ := container.GetBySubindex(1)
	assert.True(t, vendor.Enable)
	assert.Equal(t, "Vendor ID", vendor.Name)

	product, _ := container.GetBySubindex(2)
	assert.False(t, product.Enable)
	assert.Equal(t, "ProductCode", product.Name)
}

func TestDiscoverRecordsMaxSubindex(t *testing.T) {
	catalogue := od.DefaultCatalogue()
	gateway := &scriptedGateway{
		t:       t,
		indices: []uint16{0x1018},
		maxSub:  map[uint16]uint8{0x1018: 4},
		entries: map[uint16]map[uint8]entryReply{
			0x1018: {
				0: {bitLength: 16, name: "Number of entries"},
				1: {bitLength: 32, name: "Vendor ID"},
				2: {bitLength: 32, name: "Product code"},
				3: {bitLength: 32, name: "Revision number"},
				4: {bitLength: 32, name: "Serial number"},
			},
		},
	}
	driver := New(sdo.NewController(gateway, true), catalogue, od.NewRegistry())
	require.NoError(t, driver.Discover(context.Background()))

	member := catalogue.Find(0x1018)
	require.NotNil(t, member)
	assert.Equal(t, uint8(4), member.Metadata.MaxSubIndex)
}
