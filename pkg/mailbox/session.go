// Package mailbox implements the UDP transport to an ETG.1510 Mailbox
// Gateway: one request datagram, one response datagram, a fixed overall
// timeout, and no socket surviving the exchange.
package mailbox

import (
	"context"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	etg1510gw "github.com/samsamfire/etg1510gw"
	"github.com/samsamfire/etg1510gw/pkg/metrics"
	log "github.com/sirupsen/logrus"
)

// DefaultPort is the Mailbox Gateway UDP port.
const DefaultPort = 34980

// DefaultTimeout bounds one full send/receive exchange.
const DefaultTimeout = 3 * time.Second

const maxDatagramSize = 1500

// Session addresses one Mailbox Gateway endpoint. At most one request may be
// outstanding; concurrent Send calls fail with ErrSessionBusy.
type Session struct {
	raddr   *net.UDPAddr
	timeout time.Duration
	busy    atomic.Bool
}

// NewSession resolves host:port. A zero port selects DefaultPort, a zero
// timeout selects DefaultTimeout.
func NewSession(host string, port int, timeout time.Duration) (*Session, error) {
	if host == "" {
		return nil, etg1510gw.ErrInvalidAddress
	}
	if port == 0 {
		port = DefaultPort
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	raddr, err := net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", etg1510gw.ErrInvalidAddress, err)
	}
	return &Session{raddr: raddr, timeout: timeout}, nil
}

// Send transmits one request datagram and returns the first response
// datagram. The socket is bound, used and closed within the call.
func (s *Session) Send(ctx context.Context, request []byte) ([]byte, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, etg1510gw.ErrSessionBusy
	}
	defer s.busy.Store(false)

	conn, err := net.DialUDP("udp", nil, s.raddr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", etg1510gw.ErrSendFailed, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("%w: %v", etg1510gw.ErrSendFailed, err)
	}

	log.Debugf("[MAILBOX][TX][%s] %d bytes", s.raddr, len(request))
	metrics.RequestsSent.Inc()
	if _, err := conn.Write(request); err != nil {
		return nil, fmt.Errorf("%w: %v", etg1510gw.ErrSendFailed, err)
	}

	buffer := make([]byte, maxDatagramSize)
	n, err := conn.Read(buffer)
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			metrics.Timeouts.Inc()
			return nil, fmt.Errorf("%w: no response within %v", etg1510gw.ErrTimeout, s.timeout)
		}
		return nil, fmt.Errorf("%w: %v", etg1510gw.ErrReceiveFailed, err)
	}
	log.Debugf("[MAILBOX][RX][%s] %d bytes", s.raddr, n)
	return buffer[:n], nil
}
