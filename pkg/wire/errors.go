package wire

import (
	"errors"
	"fmt"
)

// ErrEncode is returned when a field value does not fit its declared bit width.
var ErrEncode = errors.New("wire: field value exceeds declared width")

// ErrDecode is returned when a byte slice is too short for the header it should carry.
var ErrDecode = errors.New("wire: buffer too short for header")

func checkWidth(name string, value uint64, width uint) error {
	if width >= 64 {
		return nil
	}
	if value >= (uint64(1) << width) {
		return fmt.Errorf("%w: %s=%d does not fit %d bits", ErrEncode, name, value, width)
	}
	return nil
}
