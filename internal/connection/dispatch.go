package connection

import (
	"encoding/base64"

	"github.com/zqrup/esphome-sub000/internal/entity"
	"github.com/zqrup/esphome-sub000/internal/wire"
)

// dispatch routes one inbound packet to its handler. Anything arriving
// before the state it requires is reached is dropped, matching the
// original's state checks at the top of each on_*_request method.
func (c *Connection) dispatch(msgType uint16, payload []byte) {
	if wire.IsPassthrough(msgType) {
		c.requireAuth(func() { c.dispatchPassthrough(msgType, payload) })
		return
	}

	switch msgType {
	case wire.TypeHelloRequest:
		c.handleHello(payload)
	case wire.TypeConnectRequest:
		c.handleConnect(payload)
	case wire.TypeDisconnectRequest:
		c.sendMessage(&wire.DisconnectResponse{})
		c.onFatalError(errDisconnectRequested)
	case wire.TypePingRequest:
		c.handlePing()
	case wire.TypePingResponse:
		c.sentPing = false
		c.pingRetries = 0
	case wire.TypeDeviceInfoRequest:
		c.requireAuth(func() { c.sendMessage(ptr(c.host.DeviceInfo())) })
	case wire.TypeListEntitiesRequest:
		c.requireAuth(func() { c.listEntitiesStarted = true })
	case wire.TypeSubscribeStatesRequest:
		c.requireAuth(func() { c.subscribedStates = true })
	case wire.TypeSubscribeLogsRequest:
		c.requireAuth(func() { c.handleSubscribeLogs(payload) })
	case wire.TypeSubscribeHomeassistantServicesRequest:
		c.requireAuth(func() {})
	case wire.TypeSubscribeHomeAssistantStatesRequest:
		c.requireAuth(func() {})
	case wire.TypeHomeAssistantStateSubscribeRequest:
		c.requireAuth(func() { c.handleHAStateSubscribe(payload) })
	case wire.TypeGetTimeRequest:
		c.requireAuth(func() {
			c.sendMessage(&wire.GetTimeResponse{EpochSeconds: c.host.EpochSeconds()})
		})
	case wire.TypeExecuteServiceRequest:
		c.requireAuth(func() { c.handleExecuteService(payload) })
	case wire.TypeCameraImageRequest:
		c.requireAuth(func() { c.handleCameraImageRequest(payload) })
	case wire.TypeNoiseEncryptionSetKeyRequest:
		c.requireAuth(func() { c.handleNoiseSetKey(payload) })

	case wire.TypeSwitchCommandRequest:
		c.requireAuth(func() { c.handleCommand(payload, &wire.SwitchCommandRequest{}) })
	case wire.TypeNumberCommandRequest:
		c.requireAuth(func() { c.handleCommand(payload, &wire.NumberCommandRequest{}) })
	case wire.TypeSelectCommandRequest:
		c.requireAuth(func() { c.handleCommand(payload, &wire.SelectCommandRequest{}) })
	case wire.TypeButtonCommandRequest:
		c.requireAuth(func() { c.handleCommand(payload, &wire.ButtonCommandRequest{}) })
	case wire.TypeLightCommandRequest:
		c.requireAuth(func() { c.handleCommand(payload, &wire.LightCommandRequest{}) })
	case wire.TypeCoverCommandRequest:
		c.requireAuth(func() { c.handleCommand(payload, &wire.CoverCommandRequest{}) })
	case wire.TypeFanCommandRequest:
		c.requireAuth(func() { c.handleCommand(payload, &wire.FanCommandRequest{}) })
	case wire.TypeClimateCommandRequest:
		c.requireAuth(func() { c.handleCommand(payload, &wire.ClimateCommandRequest{}) })
	case wire.TypeTextCommandRequest:
		c.requireAuth(func() { c.handleCommand(payload, &wire.TextCommandRequest{}) })
	case wire.TypeLockCommandRequest:
		c.requireAuth(func() { c.handleCommand(payload, &wire.LockCommandRequest{}) })
	case wire.TypeValveCommandRequest:
		c.requireAuth(func() { c.handleCommand(payload, &wire.ValveCommandRequest{}) })
	case wire.TypeMediaPlayerCommandRequest:
		c.requireAuth(func() { c.handleCommand(payload, &wire.MediaPlayerCommandRequest{}) })
	case wire.TypeAlarmControlPanelCommandRequest:
		c.requireAuth(func() { c.handleCommand(payload, &wire.AlarmControlPanelCommandRequest{}) })
	case wire.TypeDateCommandRequest:
		c.requireAuth(func() { c.handleCommand(payload, &wire.DateCommandRequest{}) })
	case wire.TypeTimeCommandRequest:
		c.requireAuth(func() { c.handleCommand(payload, &wire.TimeCommandRequest{}) })
	case wire.TypeDateTimeCommandRequest:
		c.requireAuth(func() { c.handleCommand(payload, &wire.DateTimeCommandRequest{}) })
	case wire.TypeUpdateCommandRequest:
		c.requireAuth(func() { c.handleCommand(payload, &wire.UpdateCommandRequest{}) })

	default:
		c.log.Debug("unhandled message type", "peer", c.peer, "type", msgType)
	}
}

func ptr[T any](v T) *T { return &v }

func (c *Connection) requireAuth(fn func()) {
	if c.state != StateAuthenticated {
		c.log.Debug("dropping message before authentication", "peer", c.peer)
		return
	}
	fn()
}

func (c *Connection) handleHello(payload []byte) {
	if c.state != StateAwaitingHello {
		return
	}
	req := &wire.HelloRequest{}
	if err := wire.Decode(req, payload); err != nil {
		c.onFatalError(err)
		return
	}
	c.apiVersionMajor = req.ApiVersionMajor
	c.apiVersionMinor = req.ApiVersionMinor
	c.clientInfo = req.ClientInfo
	c.state = StateHelloReceived
	c.sendMessage(&wire.HelloResponse{
		ApiVersionMajor: 1,
		ApiVersionMinor: 10,
		ServerInfo:      "esphome-sub000",
		Name:            c.host.DeviceInfo().Name,
	})
}

func (c *Connection) handleConnect(payload []byte) {
	if c.state != StateHelloReceived {
		return
	}
	req := &wire.ConnectRequest{}
	if err := wire.Decode(req, payload); err != nil {
		c.onFatalError(err)
		return
	}
	invalid := c.host.Password() != "" && req.Password != c.host.Password()
	if !invalid {
		c.state = StateAuthenticated
	}
	c.sendMessage(&wire.ConnectResponse{InvalidPassword: invalid})
}

func (c *Connection) handlePing() {
	c.sendMessage(&wire.PingResponse{})
}

func (c *Connection) handleSubscribeLogs(payload []byte) {
	req := &wire.SubscribeLogsRequest{}
	if err := wire.Decode(req, payload); err != nil {
		c.onFatalError(err)
		return
	}
	c.subscribedLogs = true
	c.logLevel = req.Level
}

func (c *Connection) handleHAStateSubscribe(payload []byte) {
	req := &wire.HomeAssistantStateSubscribeRequest{}
	if err := wire.Decode(req, payload); err != nil {
		c.onFatalError(err)
		return
	}
	c.host.SubscribeHAState(c, req.EntityID, req.Attribute)
}

func (c *Connection) handleExecuteService(payload []byte) {
	req := &wire.ExecuteServiceRequest{}
	if err := wire.Decode(req, payload); err != nil {
		c.onFatalError(err)
		return
	}
	if err := c.host.ExecuteService(req.Key, req.Args); err != nil {
		c.log.Warn("execute service failed", "peer", c.peer, "key", req.Key, "err", err)
	}
}

func (c *Connection) handleCameraImageRequest(payload []byte) {
	req := &wire.CameraImageRequest{}
	if err := wire.Decode(req, payload); err != nil {
		c.onFatalError(err)
		return
	}
	if req.Stream {
		c.cameraStreaming = true
	}
	c.cameraWatchdogDeadline = now().Add(entity.CameraStreamWatchdog)
	// Actual frame production is driven by whatever camera driver is
	// registered; this only arms/refreshes the watchdog and stream flag.
}

// noisePSKLength is the PSK size NNpsk0 expects, matching Noise's psk_t.
const noisePSKLength = 32

func (c *Connection) handleNoiseSetKey(payload []byte) {
	req := &wire.NoiseEncryptionSetKeyRequest{}
	if err := wire.Decode(req, payload); err != nil {
		c.onFatalError(err)
		return
	}
	psk, err := base64.StdEncoding.DecodeString(string(req.Key))
	if err != nil || len(psk) != noisePSKLength {
		c.log.Warn("invalid encryption key length", "peer", c.peer)
		c.sendMessage(&wire.NoiseEncryptionSetKeyResponse{Success: false})
		return
	}
	success := c.host.SetNoiseKey(psk) == nil
	c.sendMessage(&wire.NoiseEncryptionSetKeyResponse{Success: success})
}

// handleCommand decodes req from payload and, if its entity key resolves in
// the registry, hands the typed command to that entity's driver.
func (c *Connection) handleCommand(payload []byte, req wire.Decoder) {
	if err := wire.Decode(req, payload); err != nil {
		c.onFatalError(err)
		return
	}
	key := commandKey(req)
	d := c.host.Registry().Lookup(key)
	if d == nil {
		c.log.Debug("command for unknown entity", "peer", c.peer, "key", key)
		return
	}
	if err := d.HandleCommand(req); err != nil {
		c.log.Warn("command handler failed", "peer", c.peer, "key", key, "err", err)
	}
}

func commandKey(req wire.Decoder) uint32 {
	switch m := req.(type) {
	case *wire.SwitchCommandRequest:
		return m.Key
	case *wire.NumberCommandRequest:
		return m.Key
	case *wire.SelectCommandRequest:
		return m.Key
	case *wire.ButtonCommandRequest:
		return m.Key
	case *wire.LightCommandRequest:
		return m.Key
	case *wire.CoverCommandRequest:
		return m.Key
	case *wire.FanCommandRequest:
		return m.Key
	case *wire.ClimateCommandRequest:
		return m.Key
	case *wire.TextCommandRequest:
		return m.Key
	case *wire.LockCommandRequest:
		return m.Key
	case *wire.ValveCommandRequest:
		return m.Key
	case *wire.MediaPlayerCommandRequest:
		return m.Key
	case *wire.AlarmControlPanelCommandRequest:
		return m.Key
	case *wire.DateCommandRequest:
		return m.Key
	case *wire.TimeCommandRequest:
		return m.Key
	case *wire.DateTimeCommandRequest:
		return m.Key
	case *wire.UpdateCommandRequest:
		return m.Key
	default:
		return 0
	}
}

// dispatchPassthrough logs Bluetooth/Voice-Assistant traffic at debug level
// and drops it without decoding the payload. No collaborator receives
// these messages: the Host interface has no passthrough method.
func (c *Connection) dispatchPassthrough(msgType uint16, payload []byte) {
	c.log.Debug("passthrough message", "peer", c.peer, "type", msgType, "len", len(payload))
}
