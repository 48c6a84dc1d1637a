package frame

import (
	"net"

	"github.com/zqrup/esphome-sub000/internal/apierr"
	"github.com/zqrup/esphome-sub000/internal/wire"
)

// PlaintextHelper implements Helper for unencrypted connections: each
// packet is indicator 0x00, a varint payload length, a varint message
// type, then the payload — esphome's plaintext framing.
type PlaintextHelper struct {
	conn  net.Conn
	peer  string
	state State
	tx    txQueue
	rxBuf []byte
}

// NewPlaintextHelper wraps conn. No handshake is required; Init moves
// straight to StateData.
func NewPlaintextHelper(conn net.Conn) *PlaintextHelper {
	return &PlaintextHelper{conn: conn, peer: remoteAddr(conn), state: StateInitialize}
}

func (h *PlaintextHelper) Init() error {
	h.state = StateData
	return nil
}

func (h *PlaintextHelper) Loop() error {
	if h.tx.empty() {
		return nil
	}
	return drain(h.conn, &h.tx)
}

func (h *PlaintextHelper) State() State { return h.state }

func (h *PlaintextHelper) HeaderPadding() int { return 6 }
func (h *PlaintextHelper) FooterSize() int    { return 0 }

func (h *PlaintextHelper) CanWriteWithoutBlocking() bool { return h.tx.empty() }

func (h *PlaintextHelper) WriteProtobufPacket(msgType uint16, payload []byte) error {
	return h.WriteProtobufPackets([]PacketInfo{{MessageType: msgType, PayloadSize: len(payload)}}, payload)
}

func (h *PlaintextHelper) WriteProtobufPackets(infos []PacketInfo, buf []byte) error {
	if h.state != StateData {
		return apierr.New(apierr.BadState, h.peer, nil)
	}
	out := make([]byte, 0, len(buf)+len(infos)*6)
	for _, info := range infos {
		out = append(out, 0x00)
		out = wire.AppendVarint(out, uint64(info.PayloadSize))
		out = wire.AppendVarint(out, uint64(info.MessageType))
		out = append(out, buf[info.Offset:info.Offset+info.PayloadSize]...)
	}
	h.tx.push(out)
	return drainOrWouldBlock(h.conn, &h.tx)
}

func drainOrWouldBlock(conn net.Conn, q *txQueue) error {
	err := drain(conn, q)
	if err != nil && apierr.IsWouldBlock(err) {
		return nil
	}
	return err
}

// ReadPacket reads one plaintext packet. It is stateful across calls: a
// partial header or payload accumulates in rxBuf until complete.
func (h *PlaintextHelper) ReadPacket() (uint16, []byte, error) {
	if h.state != StateData {
		return 0, nil, apierr.New(apierr.BadState, h.peer, nil)
	}

	// Pull in whatever is available right now.
	chunk := make([]byte, 4096)
	n, err := nonBlockingRead(h.conn, chunk)
	if n > 0 {
		h.rxBuf = append(h.rxBuf, chunk[:n]...)
	}
	if err != nil && !apierr.IsWouldBlock(err) {
		return 0, nil, err
	}

	if len(h.rxBuf) == 0 {
		return 0, nil, apierr.WouldBlockErr
	}
	if h.rxBuf[0] != 0x00 {
		return 0, nil, apierr.New(apierr.BadIndicator, h.peer, nil)
	}

	rest := h.rxBuf[1:]
	length, n1 := wire.ConsumeVarint(rest)
	if n1 == 0 {
		return 0, nil, apierr.WouldBlockErr
	}
	rest = rest[n1:]
	msgType, n2 := wire.ConsumeVarint(rest)
	if n2 == 0 {
		return 0, nil, apierr.WouldBlockErr
	}
	rest = rest[n2:]

	if uint64(len(rest)) < length {
		return 0, nil, apierr.WouldBlockErr
	}

	payload := make([]byte, length)
	copy(payload, rest[:length])

	consumed := 1 + n1 + n2 + int(length)
	h.rxBuf = h.rxBuf[consumed:]

	return uint16(msgType), payload, nil
}

func (h *PlaintextHelper) Close() error {
	h.state = StateClosed
	return h.conn.Close()
}

func (h *PlaintextHelper) Shutdown() error {
	if tcp, ok := h.conn.(*net.TCPConn); ok {
		_ = tcp.CloseWrite()
	}
	return h.Close()
}
