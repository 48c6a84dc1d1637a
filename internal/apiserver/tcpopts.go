package apiserver

import (
	"log/slog"
	"net"

	"golang.org/x/sys/unix"
)

// setTCPNoDelay disables Nagle's algorithm on newly accepted device-API
// sockets, matching the original init()'s documented "disables Nagle"
// contract: batching is handled explicitly by internal/connection's
// deferred-batch queue, so the kernel coalescing small writes would only
// add latency on top of it.
func setTCPNoDelay(nc net.Conn, logger *slog.Logger) {
	tc, ok := nc.(*net.TCPConn)
	if !ok {
		return
	}
	raw, err := tc.SyscallConn()
	if err != nil {
		logger.Debug("tcp_nodelay: getting raw conn failed", "err", err)
		return
	}
	var sockErr error
	if err := raw.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_NODELAY, 1)
	}); err != nil {
		logger.Debug("tcp_nodelay: control failed", "err", err)
		return
	}
	if sockErr != nil {
		logger.Debug("tcp_nodelay: setsockopt failed", "err", sockErr)
	}
}
