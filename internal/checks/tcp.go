package checks

import (
	"net"
	"time"

	tcpshaker "github.com/tevino/tcp-shaker"
)

type TCPChecker struct {
	addr    string
	timeout time.Duration
}

func NewTCPChecker(typ, addr string, timeout time.Duration) Checker {
	switch typ {
	case TCP_HALF:
		return NewTCPHalfChecker(addr, timeout)
	default:
		return NewTCPFullChecker(addr, timeout)
	}
}

// TCPFullChecker completes the handshake and closes; visible to the peer.
type TCPFullChecker struct {
	TCPChecker
}

func NewTCPFullChecker(addr string, timeout time.Duration) Checker {
	return &TCPFullChecker{
		TCPChecker: TCPChecker{
			addr:    addr,
			timeout: timeout,
		},
	}
}

func (tf *TCPFullChecker) Check() error {
	conn, err := net.DialTimeout("tcp", tf.addr, tf.timeout)
	if err != nil {
		return err
	}
	conn.Close()
	return nil
}

// TCPHalfChecker sends SYN and waits for SYN-ACK without completing the
// handshake, leaving no connection in the peer's accept queue.
type TCPHalfChecker struct {
	TCPChecker
}

func NewTCPHalfChecker(addr string, timeout time.Duration) Checker {
	return &TCPHalfChecker{
		TCPChecker{
			addr:    addr,
			timeout: timeout,
		},
	}
}

func (th *TCPHalfChecker) Check() error {
	checker := tcpshaker.DefaultChecker()
	return checker.CheckAddr(th.addr, th.timeout)
}
