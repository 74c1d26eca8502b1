// This package is a pure golang implementation of the ETG.1510 mailbox gateway client
package etg1510gw

import "errors"

var (
	ErrIllegalArgument = errors.New("error in function arguments")
	ErrInvalidAddress  = errors.New("mailbox gateway address is missing or invalid")
	ErrTimeout         = errors.New("mailbox gateway request timed out")
	ErrSendFailed      = errors.New("failed to send mailbox gateway request")
	ErrReceiveFailed   = errors.New("failed to receive mailbox gateway response")
	ErrSessionBusy     = errors.New("session already has an outstanding request")
	ErrFrameTooShort   = errors.New("frame shorter than its declared header")
	ErrRangeOverlap    = errors.New("OD catalogue ranges overlap")
	ErrUnknownIndex    = errors.New("index not present in OD registry")
)
