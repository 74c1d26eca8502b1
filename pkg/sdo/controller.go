// Package sdo drives one SDO transaction against the Mailbox Gateway: build
// the nested request frame, send it over the session, parse the response
// headers positionally and bind the data body onto the target container.
package sdo

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	etg1510gw "github.com/samsamfire/etg1510gw"
	"github.com/samsamfire/etg1510gw/pkg/od"
	"github.com/samsamfire/etg1510gw/pkg/wire"
	log "github.com/sirupsen/logrus"
)

// ErrEndOfStream is returned when the response carries fewer body bytes than
// its size indication declares. The iteration cursor treats it as the end of
// a pass, not as a protocol failure; discovery logs and skips the index like
// any other per-index failure.
var ErrEndOfStream = errors.New("sdo: response body shorter than declared size")

// Frame offsets of the nested headers within one response datagram.
const (
	offsetEtherCAT = 0
	offsetMailbox  = 2
	offsetCoE      = 8
	offsetSDO      = 10
	offsetBody     = 14
)

// Session is the transport a controller sends its request frames through.
type Session interface {
	Send(ctx context.Context, request []byte) ([]byte, error)
}

// Response holds the parsed headers of the last exchange. Upload is valid in
// upload mode, Info in info mode.
type Response struct {
	EtherCAT wire.EtherCATHeader
	Mailbox  wire.MailboxHeader
	CoE      wire.CoEHeader
	Upload   wire.SDOResponseHeader
	Info     wire.SDOInfoHeader
	Body     []byte
}

// Controller owns one request/response state machine. A controller is built
// either for SDO Upload or for the SDO Information Service; the mode decides
// the CoE service value and the shape of the SDO opening.
type Controller struct {
	session      Session
	infoMode     bool
	counter      uint8
	dataBodySize uint32
	requestCount uint64
	lastResponse *Response
}

// NewController returns a controller bound to session. infoMode selects the
// SDO Information Service request flavor instead of Upload.
func NewController(session Session, infoMode bool) *Controller {
	return &Controller{session: session, infoMode: infoMode, counter: 1}
}

// nextCount emits the mailbox session counter and advances it, wrapping
// 7 back to 1 so the value is never 0.
func (c *Controller) nextCount() uint8 {
	cnt := c.counter
	c.counter++
	if c.counter > 7 {
		c.counter = 1
	}
	return cnt
}

// BuildRequest serializes one request frame for meta. opcode selects the
// Information Service request kind and is ignored in upload mode.
func (c *Controller) BuildRequest(meta *od.Metadata, opcode uint8) ([]byte, error) {
	var sdoPart []byte
	var service uint8
	if c.infoMode {
		service = wire.ServiceSDOInfo
		header := wire.SDOInfoHeader{Opcode: opcode}
		headerBytes, err := header.Encode()
		if err != nil {
			return nil, err
		}
		var sub []byte
		switch opcode {
		case wire.OpGetODListReq:
			sub = wire.InfoODListReq{ListType: wire.InfoListTypeOD}.Encode()
		case wire.OpGetDescriptionReq:
			sub = wire.InfoDescriptionReq{Index: meta.Index}.Encode()
		case wire.OpGetEntryReq:
			sub = wire.InfoEntryReq{Index: meta.Index, Subindex: meta.SubIndex, ValueInfo: wire.InfoValueInfoFull}.Encode()
		default:
			return nil, fmt.Errorf("%w: info opcode %d has no request body", etg1510gw.ErrIllegalArgument, opcode)
		}
		sdoPart = append(headerBytes, sub...)
	} else {
		service = wire.ServiceSDORequest
		header := wire.SDORequestHeader{
			CompleteAccess:   meta.CompleteAccessSupported,
			CommandSpecifier: wire.CommandSpecifierUpload,
			Index:            meta.Index,
			SubIndex:         meta.SubIndex,
		}
		var err error
		sdoPart, err = header.Encode()
		if err != nil {
			return nil, err
		}
	}

	coeBytes, err := wire.CoEHeader{Service: service}.Encode()
	if err != nil {
		return nil, err
	}
	mailbox := wire.MailboxHeader{
		Length: uint16(len(coeBytes) + len(sdoPart)),
		Type:   wire.MailboxTypeCoE,
		Cnt:    c.nextCount(),
	}
	mailboxBytes, err := mailbox.Encode()
	if err != nil {
		return nil, err
	}
	ethercatBytes, err := wire.EtherCATHeader{
		Length:   uint16(len(mailboxBytes)) + mailbox.Length,
		DataType: wire.EtherCATDataTypeMailbox,
	}.Encode()
	if err != nil {
		return nil, err
	}

	frame := make([]byte, 0, len(ethercatBytes)+len(mailboxBytes)+len(coeBytes)+len(sdoPart))
	frame = append(frame, ethercatBytes...)
	frame = append(frame, mailboxBytes...)
	frame = append(frame, coeBytes...)
	frame = append(frame, sdoPart...)
	return frame, nil
}

// parse decodes the nested headers at their fixed offsets and applies the
// size indication to locate the data body.
func (c *Controller) parse(frame []byte) (*Response, error) {
	if len(frame) < offsetBody {
		return nil, etg1510gw.ErrFrameTooShort
	}
	response := &Response{}
	if err := response.EtherCAT.Decode(frame[offsetEtherCAT:]); err != nil {
		return nil, err
	}
	if err := response.Mailbox.Decode(frame[offsetMailbox:]); err != nil {
		return nil, err
	}
	if err := response.CoE.Decode(frame[offsetCoE:]); err != nil {
		return nil, err
	}

	body := frame[offsetBody:]
	bodyOffset := 0
	var size uint32
	if c.infoMode {
		if err := response.Info.Decode(frame[offsetSDO:]); err != nil {
			return nil, err
		}
		size = 4
	} else {
		if err := response.Upload.Decode(frame[offsetSDO:]); err != nil {
			return nil, err
		}
		switch {
		case response.Upload.SizeIndicator && response.Upload.TransferType:
			size = 4 - uint32(response.Upload.DataSetSize)
		case response.Upload.SizeIndicator:
			if len(body) < 4 {
				return nil, etg1510gw.ErrFrameTooShort
			}
			size = binary.LittleEndian.Uint32(body[:4])
			bodyOffset = 4
		default:
			size = 4
		}
	}
	if len(body)-bodyOffset < int(size) {
		log.Warnf("[SDO] body %d bytes, %d declared, ending walk", len(body)-bodyOffset, size)
		return nil, ErrEndOfStream
	}
	c.dataBodySize = size
	response.Body = body[bodyOffset:]
	return response, nil
}

// Fetch performs one full transaction and binds the response body onto
// target. The returned container is target, or a fresh SDOInfoError
// container when the peer answered an Information Service request with an
// abort; callers inspect its AbortCode entry.
func (c *Controller) Fetch(ctx context.Context, meta *od.Metadata, opcode uint8, target *od.Container) (*od.Container, error) {
	request, err := c.BuildRequest(meta, opcode)
	if err != nil {
		return nil, err
	}
	log.Debugf("[SDO][TX] index x%x:x%x complete access %v", meta.Index, meta.SubIndex, meta.CompleteAccessSupported)
	raw, err := c.session.Send(ctx, request)
	if err != nil {
		return nil, err
	}
	response, err := c.parse(raw)
	if err != nil {
		return nil, err
	}
	if c.infoMode && response.Info.Opcode == wire.OpSDOInfoErrReq {
		target = od.NewSDOInfoError()
	}
	if err := od.Bind(response.Body, target); err != nil {
		return nil, err
	}
	c.requestCount++
	c.lastResponse = response
	return target, nil
}

// LastResponse returns the parsed headers of the most recent exchange.
func (c *Controller) LastResponse() *Response {
	return c.lastResponse
}

// DataBodySize returns the body size the last response declared.
func (c *Controller) DataBodySize() uint32 {
	return c.dataBodySize
}
