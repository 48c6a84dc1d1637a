package frame

import (
	"encoding/binary"
	"fmt"
	"net"

	"github.com/flynn/noise"

	"github.com/zqrup/esphome-sub000/internal/apierr"
)

// noiseIndicator is the first byte of every Noise-framed packet on the
// wire, distinguishing it from the plaintext encoding's 0x00.
const noiseIndicator = 0x01

// noiseProtocolByte is the first byte of the server hello payload,
// announcing "Noise" as the encryption scheme ahead of the name and MAC.
const noiseProtocolByte = 0x01

// noisePrologueInit seeds the handshake prologue alongside the raw client
// hello frame, binding the encrypted handshake to the bytes exchanged
// before encryption started.
const noisePrologueInit = "NoiseAPIInit"

// handshakeOK and handshakeReject are the leading status byte every
// handshake-phase payload (after the plaintext client/server hello) is
// wrapped in: 0x00 means the enclosed Noise message is valid, 0x01 marks
// an explicit rejection whose remaining bytes are a human-readable reason.
const (
	handshakeOK     = 0x00
	handshakeReject = 0x01
)

// NoiseHelper implements Helper for PSK-encrypted connections using the
// NNpsk0 Noise pattern (mutual pre-shared key, no static keys), matching
// esphome's APINoiseFrameHelper.
type NoiseHelper struct {
	conn       net.Conn
	peer       string
	state      State
	tx         txQueue
	rxBuf      []byte
	psk        []byte
	serverName string
	serverMAC  string
	prologue   []byte

	hs         *noise.HandshakeState
	sendCipher *noise.CipherState
	recvCipher *noise.CipherState
}

// NewNoiseHelper wraps conn with a 32-byte pre-shared key. serverName and
// serverMAC are sent in the server's plaintext hello (for display before
// encryption begins, same as the original's un-encrypted "server hello"
// step). They do not enter the handshake prologue, which is "NoiseAPIInit"
// followed by the client's hello frame.
func NewNoiseHelper(conn net.Conn, psk []byte, serverName, serverMAC string) *NoiseHelper {
	return &NoiseHelper{
		conn:       conn,
		peer:       remoteAddr(conn),
		state:      StateInitialize,
		psk:        psk,
		serverName: serverName,
		serverMAC:  serverMAC,
		prologue:   []byte(noisePrologueInit),
	}
}

func (h *NoiseHelper) State() State          { return h.state }
func (h *NoiseHelper) HeaderPadding() int    { return 7 }
func (h *NoiseHelper) FooterSize() int       { return 16 } // Poly1305 MAC tag

func (h *NoiseHelper) CanWriteWithoutBlocking() bool { return h.tx.empty() }

func (h *NoiseHelper) Loop() error {
	hsErr := h.driveHandshake()
	if !h.tx.empty() {
		// Flush unconditionally so an explicit handshake reject queued by
		// driveHandshake reaches the client even though the same call
		// also returns a fatal error.
		if err := drain(h.conn, &h.tx); err != nil {
			return err
		}
	}
	if hsErr != nil && !apierr.IsWouldBlock(hsErr) {
		return hsErr
	}
	return nil
}

// Init queues nothing; the handshake is driven lazily from Loop/ReadPacket
// so the caller never blocks waiting for a slow client to connect.
func (h *NoiseHelper) Init() error {
	h.state = StateClientHello
	return nil
}

// driveHandshake advances the handshake state machine by at most one
// network round trip per call, never blocking.
func (h *NoiseHelper) driveHandshake() error {
	switch h.state {
	case StateClientHello:
		payload, err := h.readHandshakeFrame()
		if err != nil {
			return err
		}
		if payload == nil {
			return apierr.WouldBlockErr
		}
		// Contents are currently unused (reserved for future flags), but
		// the raw frame still binds the handshake: fold its 16-bit
		// length plus bytes into the prologue before the PSK handshake
		// starts, exactly as the plaintext hello was exchanged.
		h.prologue = append(h.prologue, byte(len(payload)>>8), byte(len(payload)))
		h.prologue = append(h.prologue, payload...)

		h.state = StateServerHello
		return h.driveHandshake()

	case StateServerHello:
		hello := make([]byte, 0, 1+len(h.serverName)+1+len(h.serverMAC)+1)
		hello = append(hello, noiseProtocolByte)
		hello = append(hello, h.serverName...)
		hello = append(hello, 0x00)
		hello = append(hello, h.serverMAC...)
		hello = append(hello, 0x00)
		h.tx.push(h.wrapFrame(hello))

		cs := noise.NewCipherSuite(noise.DH25519, noise.CipherChaChaPoly, noise.HashSHA256)
		hs, err := noise.NewHandshakeState(noise.Config{
			CipherSuite:           cs,
			Pattern:               noise.HandshakeNN,
			Initiator:             false,
			PresharedKey:          h.psk,
			PresharedKeyPlacement: 0, // NNpsk0: psk token prepended to message 1
			Prologue:              h.prologue,
		})
		if err != nil {
			return apierr.New(apierr.HandshakeStateSetupFailed, h.peer, err)
		}
		h.hs = hs
		h.prologue = nil
		h.state = StateHandshake
		return h.driveHandshake()

	case StateHandshake:
		payload, err := h.readHandshakeFrame()
		if err != nil {
			return err
		}
		if payload == nil {
			return apierr.WouldBlockErr
		}
		if len(payload) < 1 {
			h.sendExplicitHandshakeReject("Empty handshake message")
			return apierr.New(apierr.BadHandshakeErrorByte, h.peer, fmt.Errorf("empty handshake message"))
		}
		if payload[0] != handshakeOK {
			h.sendExplicitHandshakeReject("Bad handshake error byte")
			return apierr.New(apierr.BadHandshakeErrorByte, h.peer, fmt.Errorf("status byte 0x%02x", payload[0]))
		}

		if _, _, _, err := h.hs.ReadMessage(nil, payload[1:]); err != nil {
			h.state = StateFailed
			h.sendExplicitHandshakeReject("Handshake error")
			return apierr.New(apierr.HandshakeStateReadFailed, h.peer, err)
		}

		out, csA, csB, err := h.hs.WriteMessage(nil, nil)
		if err != nil {
			h.state = StateFailed
			return apierr.New(apierr.HandshakeStateWriteFailed, h.peer, err)
		}
		framed := make([]byte, 1+len(out))
		framed[0] = handshakeOK
		copy(framed[1:], out)
		h.tx.push(h.wrapFrame(framed))

		if csA == nil || csB == nil {
			return apierr.New(apierr.HandshakeStateSplitFailed, h.peer, fmt.Errorf("handshake did not complete"))
		}
		// We are the responder: our sends use the cipher the initiator
		// will decrypt with (csB), our reads use the one it encrypted
		// with (csA) — the two CipherStates are swapped between peers.
		h.recvCipher = csA
		h.sendCipher = csB
		h.state = StateData
		return nil

	default:
		return nil
	}
}

// sendExplicitHandshakeReject queues a handshake-framed rejection: status
// byte 0x01 followed by a human-readable reason, sent in place of the
// normal handshake response so the client can log why the connection was
// refused before the socket closes.
func (h *NoiseHelper) sendExplicitHandshakeReject(reason string) {
	data := make([]byte, 1+len(reason))
	data[0] = handshakeReject
	copy(data[1:], reason)
	h.tx.push(h.wrapFrame(data))
}

// maxHandshakePacketLen bounds any frame read before the state reaches
// StateData: handshake messages are small, and accepting an oversized one
// would let a client stall the responder buffering an unbounded frame.
const maxHandshakePacketLen = 128

// wrapFrame prefixes payload with the Noise indicator and a 16-bit BE
// length.
func (h *NoiseHelper) wrapFrame(payload []byte) []byte {
	out := make([]byte, 3+len(payload))
	out[0] = noiseIndicator
	binary.BigEndian.PutUint16(out[1:3], uint16(len(payload)))
	copy(out[3:], payload)
	return out
}

// readFrame pulls bytes off the socket and, once one full indicator+length
// +payload frame has accumulated, returns its payload (nil if incomplete).
func (h *NoiseHelper) readFrame() ([]byte, error) {
	chunk := make([]byte, 4096)
	n, err := nonBlockingRead(h.conn, chunk)
	if n > 0 {
		h.rxBuf = append(h.rxBuf, chunk[:n]...)
	}
	if err != nil && !apierr.IsWouldBlock(err) {
		return nil, err
	}
	if len(h.rxBuf) < 3 {
		return nil, nil
	}
	if h.rxBuf[0] != noiseIndicator {
		return nil, apierr.New(apierr.BadIndicator, h.peer, nil)
	}
	length := int(binary.BigEndian.Uint16(h.rxBuf[1:3]))
	if h.state != StateData && length > maxHandshakePacketLen {
		return nil, apierr.New(apierr.BadHandshakePacketLen, h.peer, fmt.Errorf("%d bytes", length))
	}
	if len(h.rxBuf) < 3+length {
		return nil, nil
	}
	payload := make([]byte, length)
	copy(payload, h.rxBuf[3:3+length])
	h.rxBuf = h.rxBuf[3+length:]
	return payload, nil
}

// readHandshakeFrame wraps readFrame for the pre-StateData phases, turning
// a bad indicator byte or an oversized handshake packet into an explicit
// rejection sent back to the client before the error is returned.
func (h *NoiseHelper) readHandshakeFrame() ([]byte, error) {
	payload, err := h.readFrame()
	if err != nil {
		switch apierr.CodeOf(err) {
		case apierr.BadIndicator:
			h.sendExplicitHandshakeReject("Bad indicator byte")
		case apierr.BadHandshakePacketLen:
			h.sendExplicitHandshakeReject("Bad handshake packet len")
		}
		return nil, err
	}
	return payload, nil
}

func (h *NoiseHelper) ReadPacket() (uint16, []byte, error) {
	if h.state != StateData {
		if err := h.driveHandshake(); err != nil {
			return 0, nil, err
		}
		return 0, nil, apierr.WouldBlockErr
	}

	payload, err := h.readFrame()
	if err != nil {
		return 0, nil, err
	}
	if payload == nil {
		return 0, nil, apierr.WouldBlockErr
	}

	plain, err := h.recvCipher.Decrypt(nil, nil, payload)
	if err != nil {
		return 0, nil, apierr.New(apierr.CipherStateDecryptFailed, h.peer, err)
	}
	if len(plain) < 4 {
		return 0, nil, apierr.New(apierr.BadDataPacket, h.peer, fmt.Errorf("decrypted frame too short"))
	}
	msgType := binary.BigEndian.Uint16(plain[0:2])
	payloadLen := binary.BigEndian.Uint16(plain[2:4])
	if int(payloadLen) > len(plain)-4 {
		return 0, nil, apierr.New(apierr.BadDataPacket, h.peer, fmt.Errorf("declared length exceeds frame"))
	}
	return msgType, plain[4 : 4+payloadLen], nil
}

func (h *NoiseHelper) WriteProtobufPacket(msgType uint16, payload []byte) error {
	return h.WriteProtobufPackets([]PacketInfo{{MessageType: msgType, PayloadSize: len(payload)}}, payload)
}

func (h *NoiseHelper) WriteProtobufPackets(infos []PacketInfo, buf []byte) error {
	if h.state != StateData {
		return apierr.New(apierr.BadState, h.peer, nil)
	}
	for _, info := range infos {
		plain := make([]byte, 4+info.PayloadSize)
		binary.BigEndian.PutUint16(plain[0:2], info.MessageType)
		binary.BigEndian.PutUint16(plain[2:4], uint16(info.PayloadSize))
		copy(plain[4:], buf[info.Offset:info.Offset+info.PayloadSize])

		cipherText := h.sendCipher.Encrypt(nil, nil, plain)
		h.tx.push(h.wrapFrame(cipherText))
	}
	return drainOrWouldBlock(h.conn, &h.tx)
}

func (h *NoiseHelper) Close() error {
	h.state = StateClosed
	return h.conn.Close()
}

func (h *NoiseHelper) Shutdown() error {
	if tcp, ok := h.conn.(*net.TCPConn); ok {
		_ = tcp.CloseWrite()
	}
	return h.Close()
}
