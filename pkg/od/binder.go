package od

import (
	"encoding/binary"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

// Bind projects the raw SDO Upload payload body onto c, filling each enabled
// entry's Value in declaration order. It mirrors the container's own
// alignment bookkeeping so the cursor it walks the payload with always
// lands where UnpackDescriptor says it should.
func Bind(body []byte, c *Container) error {
	if len(c.Entries) > 0 {
		if total := c.TotalSize(); int(total) < len(body) {
			if last := c.lastEnabledEntry(); last != nil {
				last.Size += uint32(len(body)) - total
			}
		}
	}

	descriptor := c.UnpackDescriptor()
	declared := descriptorSize(descriptor)
	if declared == 0 {
		return ErrNothingEnabled
	}

	b := body
	if len(b) < declared {
		log.Warnf("od: payload %d bytes shorter than descriptor %d bytes, zero-padding", len(b), declared)
		padded := make([]byte, declared)
		copy(padded, b)
		b = padded
	}

	enabled := c.EnabledEntries()
	cursor := 0
	running := 0
	for _, e := range enabled {
		f := primitiveSize(e.FormatCode)
		mult := e.multiplicity()
		pieceBytes := f * mult

		sizeR := running
		sizeRP := running + pieceBytes
		if !(sizeR%2 == 0 || sizeRP%2 == 0) {
			cursor++
			running++
		}
		if cursor+pieceBytes > len(b) {
			return ErrDecodeMismatch
		}
		raw := b[cursor : cursor+pieceBytes]
		cursor += pieceBytes
		running += pieceBytes

		value, err := decodeEntryValue(e.FormatCode, raw, mult, e.Sequence)
		if err != nil {
			return err
		}
		e.Value = value
	}
	return nil
}

func decodeEntryValue(code FormatCode, raw []byte, mult int, sequence bool) (any, error) {
	scalar := !sequence && mult == 1
	switch code {
	case FormatString:
		end := len(raw)
		for end > 0 && raw[end-1] == 0 {
			end--
		}
		s := raw[:end]
		if !utf8.Valid(s) {
			return nil, ErrTypeMismatch
		}
		return string(s), nil
	case FormatBool:
		if scalar {
			return raw[0] != 0, nil
		}
		vals := make([]bool, mult)
		for i := range vals {
			vals[i] = raw[i] != 0
		}
		return vals, nil
	case FormatU8:
		if scalar {
			return raw[0], nil
		}
		return append([]byte(nil), raw...), nil
	case FormatI8:
		if scalar {
			return int8(raw[0]), nil
		}
		vals := make([]int8, mult)
		for i := range vals {
			vals[i] = int8(raw[i])
		}
		return vals, nil
	case FormatU16:
		if scalar {
			return binary.LittleEndian.Uint16(raw), nil
		}
		vals := make([]uint16, mult)
		for i := range vals {
			vals[i] = binary.LittleEndian.Uint16(raw[i*2 : i*2+2])
		}
		return vals, nil
	case FormatI16:
		if scalar {
			return int16(binary.LittleEndian.Uint16(raw)), nil
		}
		vals := make([]int16, mult)
		for i := range vals {
			vals[i] = int16(binary.LittleEndian.Uint16(raw[i*2 : i*2+2]))
		}
		return vals, nil
	case FormatU32:
		if scalar {
			return binary.LittleEndian.Uint32(raw), nil
		}
		vals := make([]uint32, mult)
		for i := range vals {
			vals[i] = binary.LittleEndian.Uint32(raw[i*4 : i*4+4])
		}
		return vals, nil
	case FormatI32:
		if scalar {
			return int32(binary.LittleEndian.Uint32(raw)), nil
		}
		vals := make([]int32, mult)
		for i := range vals {
			vals[i] = int32(binary.LittleEndian.Uint32(raw[i*4 : i*4+4]))
		}
		return vals, nil
	case FormatU64:
		if scalar {
			return binary.LittleEndian.Uint64(raw), nil
		}
		vals := make([]uint64, mult)
		for i := range vals {
			vals[i] = binary.LittleEndian.Uint64(raw[i*8 : i*8+8])
		}
		return vals, nil
	case FormatI64:
		if scalar {
			return int64(binary.LittleEndian.Uint64(raw)), nil
		}
		vals := make([]int64, mult)
		for i := range vals {
			vals[i] = int64(binary.LittleEndian.Uint64(raw[i*8 : i*8+8]))
		}
		return vals, nil
	default:
		return nil, ErrTypeMismatch
	}
}
