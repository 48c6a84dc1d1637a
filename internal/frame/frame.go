// Package frame implements the two wire encodings the device API speaks on
// a TCP connection: plaintext framing and Noise-encrypted framing, sharing
// one non-blocking Helper contract so the connection layer never needs to
// know which one it is talking to.
package frame

import (
	"net"
	"time"

	"github.com/zqrup/esphome-sub000/internal/apierr"
)

// MaxPacketSize bounds a single protobuf packet's payload, matching the
// original's MAX_PACKET_SIZE used once the first packet has been queued in
// a batch (see internal/connection's deferred batching).
const MaxPacketSize = 1390

// State is the frame helper's handshake/lifecycle state, mirroring
// api_frame_helper.h's State enum exactly.
type State int

const (
	StateInitialize State = iota
	StateClientHello
	StateServerHello
	StateHandshake
	StateData
	StateClosed
	StateFailed
	StateExplicitReject
)

// PacketInfo describes one already-encoded packet inside a batched write,
// used by WriteProtobufPackets to fill in each frame's header in place.
type PacketInfo struct {
	MessageType uint16
	Offset      int
	PayloadSize int
}

// Helper is implemented by PlaintextHelper and NoiseHelper. All methods are
// non-blocking: reads and writes set an already-expired deadline and
// return apierr.WouldBlockErr (via apierr.IsWouldBlock) instead of
// blocking the caller, matching the cooperative single-threaded loop the
// connection layer drives.
type Helper interface {
	// Init moves the helper into its first state: Data for plaintext, the
	// client-hello wait for Noise, whose handshake then advances in Loop.
	Init() error
	// Loop advances in-progress handshake/TX-drain work by one step.
	Loop() error
	// ReadPacket returns the next complete packet, or apierr.WouldBlockErr
	// if none is available yet.
	ReadPacket() (msgType uint16, payload []byte, err error)
	// WriteProtobufPacket queues a single packet.
	WriteProtobufPacket(msgType uint16, payload []byte) error
	// WriteProtobufPackets queues multiple already-encoded packets sharing
	// one buffer, one header per PacketInfo.
	WriteProtobufPackets(infos []PacketInfo, buf []byte) error
	// CanWriteWithoutBlocking reports whether the TX queue is empty.
	CanWriteWithoutBlocking() bool
	// HeaderPadding is the number of bytes WriteProtobufPacket(s) need
	// reserved before the payload for this encoding's header.
	HeaderPadding() int
	// FooterSize is the number of bytes needed after the payload (the
	// Noise encoding's MAC; zero for plaintext).
	FooterSize() int
	State() State
	Close() error
	Shutdown() error
}

// sendBuffer is one queued, possibly partially-written, outbound chunk.
type sendBuffer struct {
	data   []byte
	offset int
}

func (s *sendBuffer) remaining() int      { return len(s.data) - s.offset }
func (s *sendBuffer) currentData() []byte { return s.data[s.offset:] }

// txQueue is the shared non-blocking outbound queue both helpers embed,
// modeled on api_frame_helper.h's std::deque<SendBuffer> tx_buf_.
type txQueue struct {
	items []sendBuffer
}

func (q *txQueue) push(data []byte) {
	q.items = append(q.items, sendBuffer{data: data})
}

func (q *txQueue) empty() bool { return len(q.items) == 0 }

// drain attempts to flush as much of the queue as the socket accepts right
// now without blocking. It returns apierr.WouldBlockErr if the queue is not
// fully drained, nil if it is.
func drain(conn net.Conn, q *txQueue) error {
	for len(q.items) > 0 {
		item := &q.items[0]
		if err := conn.SetWriteDeadline(time.Now()); err != nil {
			return apierr.New(apierr.SocketWriteFailed, remoteAddr(conn), err)
		}
		n, err := conn.Write(item.currentData())
		if n > 0 {
			item.offset += n
		}
		if err != nil {
			if isTimeout(err) {
				return apierr.WouldBlockErr
			}
			return apierr.New(apierr.SocketWriteFailed, remoteAddr(conn), err)
		}
		if item.remaining() == 0 {
			q.items = q.items[1:]
			continue
		}
		return apierr.WouldBlockErr
	}
	return nil
}

func isTimeout(err error) bool {
	ne, ok := err.(net.Error)
	return ok && ne.Timeout()
}

func remoteAddr(conn net.Conn) string {
	if conn == nil || conn.RemoteAddr() == nil {
		return ""
	}
	return conn.RemoteAddr().String()
}

// nonBlockingRead reads whatever is immediately available into buf without
// blocking, returning (0, apierr.WouldBlockErr) if nothing is ready yet.
func nonBlockingRead(conn net.Conn, buf []byte) (int, error) {
	if err := conn.SetReadDeadline(time.Now()); err != nil {
		return 0, apierr.New(apierr.SocketReadFailed, remoteAddr(conn), err)
	}
	n, err := conn.Read(buf)
	if err != nil {
		if isTimeout(err) {
			return n, apierr.WouldBlockErr
		}
		return n, apierr.New(apierr.SocketReadFailed, remoteAddr(conn), err)
	}
	return n, nil
}
