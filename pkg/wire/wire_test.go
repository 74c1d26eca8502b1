package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEtherCATHeaderRoundTrip(t *testing.T) {
	h := EtherCATHeader{Length: 0x3FF, Reserved: 1, DataType: EtherCATDataTypeMailbox}
	buf, err := h.Encode()
	require.NoError(t, err)
	assert.Len(t, buf, EtherCATHeaderSize)

	var got EtherCATHeader
	require.NoError(t, got.Decode(buf))
	assert.Equal(t, h, got)
}

func TestMailboxHeaderRoundTrip(t *testing.T) {
	h := MailboxHeader{Length: 10, Address: 0, Channel: 0, Prio: 0, Type: MailboxTypeCoE, Cnt: 5, Reserved: 0}
	buf, err := h.Encode()
	require.NoError(t, err)
	assert.Len(t, buf, MailboxHeaderSize)

	var got MailboxHeader
	require.NoError(t, got.Decode(buf))
	assert.Equal(t, h, got)
}

func TestCoEHeaderRoundTrip(t *testing.T) {
	h := CoEHeader{Number: 0x1FF, Reserved: 0, Service: ServiceSDOInfo}
	buf, err := h.Encode()
	require.NoError(t, err)

	var got CoEHeader
	require.NoError(t, got.Decode(buf))
	assert.Equal(t, h, got)
}

func TestSDORequestHeaderRoundTrip(t *testing.T) {
	h := SDORequestHeader{CompleteAccess: true, CommandSpecifier: CommandSpecifierUpload, Index: 0x1018, SubIndex: 1}
	buf, err := h.Encode()
	require.NoError(t, err)
	assert.Len(t, buf, SDORequestHeaderSize)

	var got SDORequestHeader
	require.NoError(t, got.Decode(buf))
	assert.Equal(t, h, got)
}

func TestSDOResponseHeaderExpedited(t *testing.T) {
	h := SDOResponseHeader{SizeIndicator: true, TransferType: true, DataSetSize: 0, CommandSpecifier: CommandSpecifierUpload, Index: 0x1000, SubIndex: 0}
	buf, err := h.Encode()
	require.NoError(t, err)

	var got SDOResponseHeader
	require.NoError(t, got.Decode(buf))
	assert.Equal(t, h, got)
}

func TestSDOInfoHeaderRoundTrip(t *testing.T) {
	h := SDOInfoHeader{Opcode: OpGetEntryRes, Incomplete: false, FragmentsLeft: 0}
	buf, err := h.Encode()
	require.NoError(t, err)
	assert.Len(t, buf, SDOInfoHeaderSize)

	var got SDOInfoHeader
	require.NoError(t, got.Decode(buf))
	assert.Equal(t, h, got)
}

func TestEncodeErrorOnOversizedField(t *testing.T) {
	h := EtherCATHeader{Length: 0x0800} // 12 bits, width is 11
	_, err := h.Encode()
	assert.ErrorIs(t, err, ErrEncode)
}

func TestInfoSubBodiesRoundTrip(t *testing.T) {
	odList := InfoODListReq{ListType: InfoListTypeOD}
	var gotOD InfoODListReq
	require.NoError(t, gotOD.Decode(odList.Encode()))
	assert.Equal(t, odList, gotOD)

	desc := InfoDescriptionReq{Index: 0x8000}
	var gotDesc InfoDescriptionReq
	require.NoError(t, gotDesc.Decode(desc.Encode()))
	assert.Equal(t, desc, gotDesc)

	entry := InfoEntryReq{Index: 0x8000, Subindex: 3, ValueInfo: InfoValueInfoFull}
	var gotEntry InfoEntryReq
	require.NoError(t, gotEntry.Decode(entry.Encode()))
	assert.Equal(t, entry, gotEntry)
}
