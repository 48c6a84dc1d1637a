package connection

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/zqrup/esphome-sub000/internal/apierr"
	"github.com/zqrup/esphome-sub000/internal/entity"
	"github.com/zqrup/esphome-sub000/internal/frame"
	"github.com/zqrup/esphome-sub000/internal/wire"
)

type sentPacket struct {
	msgType uint16
	payload []byte
}

type fakeHelper struct {
	sent   []sentPacket
	closed bool
}

func (f *fakeHelper) Init() error { return nil }
func (f *fakeHelper) Loop() error { return nil }
func (f *fakeHelper) ReadPacket() (uint16, []byte, error) {
	return 0, nil, apierr.WouldBlockErr
}
func (f *fakeHelper) WriteProtobufPacket(msgType uint16, payload []byte) error {
	f.sent = append(f.sent, sentPacket{msgType, append([]byte(nil), payload...)})
	return nil
}
func (f *fakeHelper) WriteProtobufPackets(infos []frame.PacketInfo, buf []byte) error {
	for _, info := range infos {
		f.sent = append(f.sent, sentPacket{info.MessageType, append([]byte(nil), buf[info.Offset:info.Offset+info.PayloadSize]...)})
	}
	return nil
}
func (f *fakeHelper) CanWriteWithoutBlocking() bool { return true }
func (f *fakeHelper) HeaderPadding() int            { return 6 }
func (f *fakeHelper) FooterSize() int               { return 0 }
func (f *fakeHelper) State() frame.State            { return frame.StateData }
func (f *fakeHelper) Close() error                  { f.closed = true; return nil }
func (f *fakeHelper) Shutdown() error               { return nil }

type fakeHost struct {
	password   string
	registry   *entity.Registry
	executed   []uint32
	subscribed []string
	batchDelay time.Duration
}

func (h *fakeHost) Password() string { return h.password }
func (h *fakeHost) DeviceInfo() wire.DeviceInfoResponse {
	return wire.DeviceInfoResponse{Name: "test-device"}
}
func (h *fakeHost) Registry() *entity.Registry { return h.registry }
func (h *fakeHost) Services() []wire.ListEntitiesServicesResponse { return nil }
func (h *fakeHost) ExecuteService(key uint32, args []wire.ExecuteServiceArgument) error {
	h.executed = append(h.executed, key)
	return nil
}
func (h *fakeHost) SubscribeHAState(c *Connection, entityID, attribute string) {
	h.subscribed = append(h.subscribed, entityID)
}
func (h *fakeHost) Unsubscribe(c *Connection)  {}
func (h *fakeHost) EpochSeconds() uint32       { return 1700000000 }
func (h *fakeHost) SetNoiseKey([]byte) error   { return nil }
func (h *fakeHost) BatchDelay() time.Duration  { return 100 * time.Millisecond }

func newTestConnection(host *fakeHost) (*Connection, *fakeHelper) {
	fh := &fakeHelper{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := New(fh, host, "test-peer:1234", log)
	return c, fh
}

func TestHelloThenConnectTransitionsToAuthenticated(t *testing.T) {
	host := &fakeHost{password: "", registry: entity.NewRegistry()}
	c, fh := newTestConnection(host)

	req := &wire.HelloRequest{ClientInfo: "test-client", ApiVersionMajor: 1, ApiVersionMinor: 9}
	var size int
	req.CalcSize(&size)
	b := wire.NewBuffer(size)
	req.Encode(b)
	c.dispatch(wire.TypeHelloRequest, b.Bytes())

	if c.state != StateHelloReceived {
		t.Fatalf("expected StateHelloReceived after hello, got %v", c.state)
	}
	if len(fh.sent) != 1 || fh.sent[0].msgType != wire.TypeHelloResponse {
		t.Fatalf("expected a HelloResponse to be sent, got %+v", fh.sent)
	}

	connReq := &wire.ConnectRequest{Password: ""}
	size = 0
	connReq.CalcSize(&size)
	b = wire.NewBuffer(size)
	connReq.Encode(b)
	c.dispatch(wire.TypeConnectRequest, b.Bytes())

	if c.state != StateAuthenticated {
		t.Fatalf("expected StateAuthenticated after connect, got %v", c.state)
	}
	if len(fh.sent) != 2 || fh.sent[1].msgType != wire.TypeConnectResponse {
		t.Fatalf("expected a ConnectResponse to be sent, got %+v", fh.sent)
	}
}

func TestConnectWithWrongPasswordStaysUnauthenticated(t *testing.T) {
	host := &fakeHost{password: "secret", registry: entity.NewRegistry()}
	c, fh := newTestConnection(host)
	c.state = StateHelloReceived

	connReq := &wire.ConnectRequest{Password: "wrong"}
	var size int
	connReq.CalcSize(&size)
	b := wire.NewBuffer(size)
	connReq.Encode(b)
	c.dispatch(wire.TypeConnectRequest, b.Bytes())

	if c.state != StateHelloReceived {
		t.Fatalf("expected state to stay HelloReceived on bad password, got %v", c.state)
	}
	resp := fh.sent[len(fh.sent)-1]
	if resp.msgType != wire.TypeConnectResponse {
		t.Fatalf("expected ConnectResponse, got type %d", resp.msgType)
	}
}

func TestCommandsAreDroppedBeforeAuthentication(t *testing.T) {
	host := &fakeHost{registry: entity.NewRegistry()}
	c, fh := newTestConnection(host)
	// state defaults to StateAwaitingHello

	cmd := &wire.SwitchCommandRequest{Key: 42, State: true}
	var size int
	cmd.CalcSize(&size)
	b := wire.NewBuffer(size)
	cmd.Encode(b)
	c.dispatch(wire.TypeSwitchCommandRequest, b.Bytes())

	if len(fh.sent) != 0 {
		t.Fatalf("expected no response for unauthenticated command, got %+v", fh.sent)
	}
}

type recordingDriver struct {
	base     entity.Base
	commands []any
}

func (d *recordingDriver) Base() entity.Base    { return d.base }
func (d *recordingDriver) State() any           { return true }
func (d *recordingDriver) HandleCommand(cmd any) error {
	d.commands = append(d.commands, cmd)
	return nil
}

func TestAuthenticatedSwitchCommandReachesDriver(t *testing.T) {
	reg := entity.NewRegistry()
	base := entity.NewBase(entity.KindSwitch, "kitchen_switch", "Kitchen Switch")
	driver := &recordingDriver{base: base}
	reg.Add(driver)

	host := &fakeHost{registry: reg}
	c, _ := newTestConnection(host)
	c.state = StateAuthenticated

	cmd := &wire.SwitchCommandRequest{Key: base.Key(), State: true}
	var size int
	cmd.CalcSize(&size)
	b := wire.NewBuffer(size)
	cmd.Encode(b)
	c.dispatch(wire.TypeSwitchCommandRequest, b.Bytes())

	if len(driver.commands) != 1 {
		t.Fatalf("expected driver to receive exactly one command, got %d", len(driver.commands))
	}
	got, ok := driver.commands[0].(*wire.SwitchCommandRequest)
	if !ok {
		t.Fatalf("expected *wire.SwitchCommandRequest, got %T", driver.commands[0])
	}
	if got.Key != base.Key() || !got.State {
		t.Fatalf("driver received wrong command: %+v", got)
	}
}

func TestKeepalivePingFiresAfterTimeoutThenDisconnectsAfterThreshold(t *testing.T) {
	host := &fakeHost{registry: entity.NewRegistry()}
	c, fh := newTestConnection(host)
	c.state = StateAuthenticated
	c.lastTraffic = time.Now().Add(-(KeepaliveTimeout + time.Second))
	c.nextPingRetry = time.Now().Add(-time.Second)

	c.checkKeepalive()
	if !c.sentPing {
		t.Fatalf("expected a ping to be sent after keepalive timeout")
	}
	if len(fh.sent) != 1 || fh.sent[0].msgType != wire.TypePingRequest {
		t.Fatalf("expected a PingRequest to be sent, got %+v", fh.sent)
	}

	// Simulate the ping going unanswered past the 2.5x disconnect
	// threshold: no PingResponse ever arrives to clear sentPing/reset
	// lastTraffic.
	c.lastTraffic = time.Now().Add(-(disconnectAfter + time.Second))
	c.checkKeepalive()
	if !c.remove {
		t.Fatalf("expected connection to be marked for removal past the disconnect threshold")
	}
}
