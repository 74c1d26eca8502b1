// Package wire packs and unpacks the bit-packed little-endian headers carried
// by the EtherCAT Mailbox Gateway: the EtherCAT, Mailbox, CoE, SDO request/
// response and SDO Information headers, plus the three Info sub-bodies.
//
// Every field is little-endian; layouts are bit-packed, not byte-aligned
// per field, so each header hand-rolls its own bit arithmetic rather than
// going through a generic reflective codec.
package wire

import "encoding/binary"

// CoE service identifiers carried in CoEHeader.Service.
const (
	ServiceSDORequest  = 2
	ServiceSDOResponse = 3
	ServiceSDOInfo     = 8
)

// SDO Information opcodes carried in SDOInfoHeader.Opcode.
const (
	OpGetODListReq      = 1
	OpGetODListRes      = 2
	OpGetDescriptionReq = 3
	OpGetDescriptionRes = 4
	OpGetEntryReq       = 5
	OpGetEntryRes       = 6
	OpSDOInfoErrReq     = 7
)

// CommandSpecifierUpload is the only SDO command specifier this client emits.
const CommandSpecifierUpload = 2

// MailboxTypeCoE is the Mailbox header Type value for CANopen over EtherCAT.
const MailboxTypeCoE = 3

// EtherCATDataTypeMailbox is the EtherCAT header DataType value for mailbox frames.
const EtherCATDataTypeMailbox = 5

// InfoListTypeOD is the fixed ListType value of an OD-List request.
const InfoListTypeOD = 0x0001

// InfoValueInfoFull is the fixed ValueInfo value of an Entry-Description request.
const InfoValueInfoFull = 0x7F

// EtherCATHeaderSize is the encoded size, in bytes, of EtherCATHeader.
const EtherCATHeaderSize = 2

// EtherCATHeader is the 2-byte EtherCAT datagram header prefixing a mailbox frame.
type EtherCATHeader struct {
	Length   uint16 // 11 bits
	Reserved uint8  // 1 bit
	DataType uint8  // 4 bits
}

func (h EtherCATHeader) Encode() ([]byte, error) {
	if err := checkWidth("Length", uint64(h.Length), 11); err != nil {
		return nil, err
	}
	if err := checkWidth("Reserved", uint64(h.Reserved), 1); err != nil {
		return nil, err
	}
	if err := checkWidth("DataType", uint64(h.DataType), 4); err != nil {
		return nil, err
	}
	word := uint16(h.Length&0x7FF) | uint16(h.Reserved&0x1)<<11 | uint16(h.DataType&0xF)<<12
	buf := make([]byte, EtherCATHeaderSize)
	binary.LittleEndian.PutUint16(buf, word)
	return buf, nil
}

func (h *EtherCATHeader) Decode(b []byte) error {
	if len(b) < EtherCATHeaderSize {
		return ErrDecode
	}
	word := binary.LittleEndian.Uint16(b)
	h.Length = word & 0x7FF
	h.Reserved = uint8((word >> 11) & 0x1)
	h.DataType = uint8((word >> 12) & 0xF)
	return nil
}

// MailboxHeaderSize is the encoded size, in bytes, of MailboxHeader.
const MailboxHeaderSize = 6

// MailboxHeader is the 6-byte EtherCAT mailbox header.
type MailboxHeader struct {
	Length   uint16 // 16 bits
	Address  uint16 // 16 bits
	Channel  uint8  // 6 bits
	Prio     uint8  // 2 bits
	Type     uint8  // 4 bits
	Cnt      uint8  // 3 bits, 1..7, never 0
	Reserved uint8  // 1 bit
}

func (h MailboxHeader) Encode() ([]byte, error) {
	if err := checkWidth("Channel", uint64(h.Channel), 6); err != nil {
		return nil, err
	}
	if err := checkWidth("Prio", uint64(h.Prio), 2); err != nil {
		return nil, err
	}
	if err := checkWidth("Type", uint64(h.Type), 4); err != nil {
		return nil, err
	}
	if err := checkWidth("Cnt", uint64(h.Cnt), 3); err != nil {
		return nil, err
	}
	if err := checkWidth("Reserved", uint64(h.Reserved), 1); err != nil {
		return nil, err
	}
	buf := make([]byte, MailboxHeaderSize)
	binary.LittleEndian.PutUint16(buf[0:2], h.Length)
	binary.LittleEndian.PutUint16(buf[2:4], h.Address)
	word := uint16(h.Channel&0x3F) | uint16(h.Prio&0x3)<<6 | uint16(h.Type&0xF)<<8 |
		uint16(h.Cnt&0x7)<<12 | uint16(h.Reserved&0x1)<<15
	binary.LittleEndian.PutUint16(buf[4:6], word)
	return buf, nil
}

func (h *MailboxHeader) Decode(b []byte) error {
	if len(b) < MailboxHeaderSize {
		return ErrDecode
	}
	h.Length = binary.LittleEndian.Uint16(b[0:2])
	h.Address = binary.LittleEndian.Uint16(b[2:4])
	word := binary.LittleEndian.Uint16(b[4:6])
	h.Channel = uint8(word & 0x3F)
	h.Prio = uint8((word >> 6) & 0x3)
	h.Type = uint8((word >> 8) & 0xF)
	h.Cnt = uint8((word >> 12) & 0x7)
	h.Reserved = uint8((word >> 15) & 0x1)
	return nil
}

// CoEHeaderSize is the encoded size, in bytes, of CoEHeader.
const CoEHeaderSize = 2

// CoEHeader is the 2-byte CANopen-over-EtherCAT header.
type CoEHeader struct {
	Number   uint16 // 9 bits
	Reserved uint8  // 3 bits
	Service  uint8  // 4 bits
}

func (h CoEHeader) Encode() ([]byte, error) {
	if err := checkWidth("Number", uint64(h.Number), 9); err != nil {
		return nil, err
	}
	if err := checkWidth("Reserved", uint64(h.Reserved), 3); err != nil {
		return nil, err
	}
	if err := checkWidth("Service", uint64(h.Service), 4); err != nil {
		return nil, err
	}
	word := uint16(h.Number&0x1FF) | uint16(h.Reserved&0x7)<<9 | uint16(h.Service&0xF)<<12
	buf := make([]byte, CoEHeaderSize)
	binary.LittleEndian.PutUint16(buf, word)
	return buf, nil
}

func (h *CoEHeader) Decode(b []byte) error {
	if len(b) < CoEHeaderSize {
		return ErrDecode
	}
	word := binary.LittleEndian.Uint16(b)
	h.Number = word & 0x1FF
	h.Reserved = uint8((word >> 9) & 0x7)
	h.Service = uint8((word >> 12) & 0xF)
	return nil
}

// SDORequestHeaderSize is the encoded size, in bytes, of the SDO request opening.
const SDORequestHeaderSize = 8

// SDORequestHeader is the 8-byte SDO request opening. This client only ever
// emits CommandSpecifier=CommandSpecifierUpload (reads); Download is a Non-goal.
type SDORequestHeader struct {
	Reserved          uint8  // 4 bits
	CompleteAccess    bool   // 1 bit
	CommandSpecifier  uint8  // 3 bits
	Index             uint16 // 16 bits
	SubIndex          uint8  // 8 bits
	Reserved2         uint32 // 32 bits
}

func (h SDORequestHeader) Encode() ([]byte, error) {
	if err := checkWidth("Reserved", uint64(h.Reserved), 4); err != nil {
		return nil, err
	}
	if err := checkWidth("CommandSpecifier", uint64(h.CommandSpecifier), 3); err != nil {
		return nil, err
	}
	buf := make([]byte, SDORequestHeaderSize)
	ca := uint8(0)
	if h.CompleteAccess {
		ca = 1
	}
	buf[0] = (h.Reserved & 0xF) | (ca&0x1)<<4 | (h.CommandSpecifier&0x7)<<5
	binary.LittleEndian.PutUint16(buf[1:3], h.Index)
	buf[3] = h.SubIndex
	binary.LittleEndian.PutUint32(buf[4:8], h.Reserved2)
	return buf, nil
}

func (h *SDORequestHeader) Decode(b []byte) error {
	if len(b) < SDORequestHeaderSize {
		return ErrDecode
	}
	h.Reserved = b[0] & 0xF
	h.CompleteAccess = (b[0]>>4)&0x1 == 1
	h.CommandSpecifier = (b[0] >> 5) & 0x7
	h.Index = binary.LittleEndian.Uint16(b[1:3])
	h.SubIndex = b[3]
	h.Reserved2 = binary.LittleEndian.Uint32(b[4:8])
	return nil
}

// SDOResponseHeaderSize is the encoded size, in bytes, of the SDO response opening.
const SDOResponseHeaderSize = 4

// SDOResponseHeader is the 4-byte SDO response opening.
type SDOResponseHeader struct {
	SizeIndicator    bool  // 1 bit
	TransferType     bool  // 1 bit
	DataSetSize      uint8 // 2 bits
	CompleteAccess   bool  // 1 bit
	CommandSpecifier uint8 // 3 bits
	Index            uint16
	SubIndex         uint8
}

func (h SDOResponseHeader) Encode() ([]byte, error) {
	if err := checkWidth("DataSetSize", uint64(h.DataSetSize), 2); err != nil {
		return nil, err
	}
	if err := checkWidth("CommandSpecifier", uint64(h.CommandSpecifier), 3); err != nil {
		return nil, err
	}
	buf := make([]byte, SDOResponseHeaderSize)
	si, tt, ca := uint8(0), uint8(0), uint8(0)
	if h.SizeIndicator {
		si = 1
	}
	if h.TransferType {
		tt = 1
	}
	if h.CompleteAccess {
		ca = 1
	}
	buf[0] = si | tt<<1 | (h.DataSetSize&0x3)<<2 | ca<<4 | (h.CommandSpecifier&0x7)<<5
	binary.LittleEndian.PutUint16(buf[1:3], h.Index)
	buf[3] = h.SubIndex
	return buf, nil
}

func (h *SDOResponseHeader) Decode(b []byte) error {
	if len(b) < SDOResponseHeaderSize {
		return ErrDecode
	}
	h.SizeIndicator = b[0]&0x1 == 1
	h.TransferType = (b[0]>>1)&0x1 == 1
	h.DataSetSize = (b[0] >> 2) & 0x3
	h.CompleteAccess = (b[0]>>4)&0x1 == 1
	h.CommandSpecifier = (b[0] >> 5) & 0x7
	h.Index = binary.LittleEndian.Uint16(b[1:3])
	h.SubIndex = b[3]
	return nil
}

// SDOInfoHeaderSize is the encoded size, in bytes, of SDOInfoHeader.
const SDOInfoHeaderSize = 4

// SDOInfoHeader is the 4-byte SDO Information Service header.
type SDOInfoHeader struct {
	Opcode        uint8  // 7 bits
	Incomplete    bool   // 1 bit
	Reserved      uint8  // 8 bits
	FragmentsLeft uint16 // 16 bits
}

func (h SDOInfoHeader) Encode() ([]byte, error) {
	if err := checkWidth("Opcode", uint64(h.Opcode), 7); err != nil {
		return nil, err
	}
	buf := make([]byte, SDOInfoHeaderSize)
	inc := uint8(0)
	if h.Incomplete {
		inc = 1
	}
	buf[0] = (h.Opcode & 0x7F) | inc<<7
	buf[1] = h.Reserved
	binary.LittleEndian.PutUint16(buf[2:4], h.FragmentsLeft)
	return buf, nil
}

func (h *SDOInfoHeader) Decode(b []byte) error {
	if len(b) < SDOInfoHeaderSize {
		return ErrDecode
	}
	h.Opcode = b[0] & 0x7F
	h.Incomplete = (b[0]>>7)&0x1 == 1
	h.Reserved = b[1]
	h.FragmentsLeft = binary.LittleEndian.Uint16(b[2:4])
	return nil
}

// InfoODListReqSize is the encoded size, in bytes, of InfoODListReq.
const InfoODListReqSize = 2

// InfoODListReq is the OD-List request sub-body: ListType:16, fixed InfoListTypeOD.
type InfoODListReq struct {
	ListType uint16
}

func (r InfoODListReq) Encode() []byte {
	buf := make([]byte, InfoODListReqSize)
	binary.LittleEndian.PutUint16(buf, r.ListType)
	return buf
}

func (r *InfoODListReq) Decode(b []byte) error {
	if len(b) < InfoODListReqSize {
		return ErrDecode
	}
	r.ListType = binary.LittleEndian.Uint16(b)
	return nil
}

// InfoDescriptionReqSize is the encoded size, in bytes, of InfoDescriptionReq.
const InfoDescriptionReqSize = 2

// InfoDescriptionReq is the Object-Description request sub-body: Index:16.
type InfoDescriptionReq struct {
	Index uint16
}

func (r InfoDescriptionReq) Encode() []byte {
	buf := make([]byte, InfoDescriptionReqSize)
	binary.LittleEndian.PutUint16(buf, r.Index)
	return buf
}

func (r *InfoDescriptionReq) Decode(b []byte) error {
	if len(b) < InfoDescriptionReqSize {
		return ErrDecode
	}
	r.Index = binary.LittleEndian.Uint16(b)
	return nil
}

// InfoEntryReqSize is the encoded size, in bytes, of InfoEntryReq.
const InfoEntryReqSize = 4

// InfoEntryReq is the Entry-Description request sub-body: Index:16,
// Subindex:8, ValueInfo:8 (fixed InfoValueInfoFull).
type InfoEntryReq struct {
	Index     uint16
	Subindex  uint8
	ValueInfo uint8
}

func (r InfoEntryReq) Encode() []byte {
	buf := make([]byte, InfoEntryReqSize)
	binary.LittleEndian.PutUint16(buf[0:2], r.Index)
	buf[2] = r.Subindex
	buf[3] = r.ValueInfo
	return buf
}

func (r *InfoEntryReq) Decode(b []byte) error {
	if len(b) < InfoEntryReqSize {
		return ErrDecode
	}
	r.Index = binary.LittleEndian.Uint16(b[0:2])
	r.Subindex = b[2]
	r.ValueInfo = b[3]
	return nil
}
