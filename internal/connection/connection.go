// Package connection implements the per-client state machine: handshake,
// auth, entity enumeration, state delivery, keepalive, deferred batching,
// and the Bluetooth/Voice-Assistant/camera side channels. One Connection
// exists per accepted socket; internal/apiserver drives its Loop from the
// server's single cooperative tick.
package connection

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/zqrup/esphome-sub000/internal/apierr"
	"github.com/zqrup/esphome-sub000/internal/entity"
	"github.com/zqrup/esphome-sub000/internal/frame"
	"github.com/zqrup/esphome-sub000/internal/wire"
)

// State is the connection's auth/handshake progress, gating which message
// types dispatch() accepts.
type State int

const (
	StateAwaitingHello State = iota
	StateHelloReceived
	StateAuthenticated
)

const (
	// KeepaliveTimeout mirrors KEEPALIVE_TIMEOUT_MS: how long without any
	// traffic before we start pinging.
	KeepaliveTimeout = 60 * time.Second
	// MaxPingRetries mirrors max_ping_retries.
	MaxPingRetries = 60
	// PingRetryInterval mirrors ping_retry_interval.
	PingRetryInterval = 1 * time.Second
	// disconnectAfter mirrors the 2.5x-timeout unanswered-ping threshold.
	disconnectAfter = KeepaliveTimeout * 5 / 2
)

// Host is the collaborator boundary Connection calls into for anything
// that is shared across every client (the entity registry, password/PSK,
// Home Assistant state bridging, user services). internal/apiserver.Server
// implements it.
type Host interface {
	Password() string
	DeviceInfo() wire.DeviceInfoResponse
	Registry() *entity.Registry
	Services() []wire.ListEntitiesServicesResponse
	ExecuteService(key uint32, args []wire.ExecuteServiceArgument) error
	SubscribeHAState(c *Connection, entityID, attribute string)
	Unsubscribe(c *Connection)
	EpochSeconds() uint32
	SetNoiseKey(key []byte) error
	BatchDelay() time.Duration
}

// Connection is one client's state machine.
type Connection struct {
	helper frame.Helper
	host   Host
	peer   string
	log    *slog.Logger

	state           State
	apiVersionMajor uint32
	apiVersionMinor uint32
	clientInfo      string

	lastTraffic   time.Time
	nextPingRetry time.Time
	pingRetries   int
	sentPing      bool

	listEntitiesStarted bool
	listEntitiesOrder   []entity.Driver
	listEntitiesAt      int
	listEntitiesDone    bool
	initialStateAt      int

	batch      deferredBatch
	batchStart time.Time

	subscribedStates bool
	subscribedLogs   bool
	logLevel         uint32

	haStateSubCursor int

	cameraStreaming       bool
	cameraWatchdogDeadline time.Time

	remove bool
}

// New wraps helper (already constructed for plaintext or Noise) into a
// fresh, unauthenticated Connection.
func New(h frame.Helper, host Host, peer string, log *slog.Logger) *Connection {
	return &Connection{
		helper: h,
		host:   host,
		peer:   peer,
		log:    log,
		state:  StateAwaitingHello,
	}
}

// Start arms the keepalive timer so the first ping doesn't fire
// immediately, matching the original's start() delaying next_ping_retry_.
func (c *Connection) Start() error {
	if err := c.helper.Init(); err != nil {
		return err
	}
	c.lastTraffic = now()
	c.nextPingRetry = c.lastTraffic.Add(KeepaliveTimeout)
	return nil
}

// Removed reports whether the connection should be torn down by its host.
func (c *Connection) Removed() bool { return c.remove }

func now() time.Time { return time.Now() }

var errDisconnectRequested = fmt.Errorf("client requested disconnect")

// Loop advances the connection by one tick: drive the frame helper,
// process at most one inbound packet, progress any in-flight batch or
// entity enumeration, and check keepalive. It never blocks.
func (c *Connection) Loop() error {
	if c.remove {
		return nil
	}

	if err := c.helper.Loop(); err != nil && !apierr.IsWouldBlock(err) {
		c.onFatalError(err)
		return nil
	}

	if err := c.readOne(); err != nil && !apierr.IsWouldBlock(err) {
		c.onFatalError(err)
		return nil
	}

	c.maybeProcessBatch()
	c.advanceListEntities()
	c.advanceInitialState()
	c.advanceHAStateSub()
	c.checkKeepalive()
	c.checkCameraWatchdog()

	return nil
}

func (c *Connection) readOne() error {
	msgType, payload, err := c.helper.ReadPacket()
	if err != nil {
		return err
	}
	c.lastTraffic = now()
	c.dispatch(msgType, payload)
	return nil
}

func (c *Connection) onFatalError(err error) {
	c.log.Warn("connection fatal error", "peer", c.peer, "err", err)
	_ = c.helper.Close()
	c.remove = true
}

// canSendNow mirrors try_to_clear_buffer: every send first tries to flush
// whatever is still queued, and refuses to queue more if that fails.
func (c *Connection) canSendNow() bool {
	if err := c.helper.Loop(); err != nil && !apierr.IsWouldBlock(err) {
		c.onFatalError(err)
		return false
	}
	return c.helper.CanWriteWithoutBlocking()
}

func (c *Connection) sendMessage(m wire.Message) {
	c.trySendMessage(m)
}

// trySendMessage writes m and reports whether it actually went out. A
// false return means the write would have blocked (or failed fatally,
// which onFatalError has already been told about) — callers that need to
// retry, like the keepalive ping, use this instead of sendMessage.
func (c *Connection) trySendMessage(m wire.Message) bool {
	if !c.canSendNow() {
		return false
	}
	var size int
	m.CalcSize(&size)
	b := wire.NewBuffer(size)
	m.Encode(b)
	if err := c.helper.WriteProtobufPacket(m.MessageType(), b.Bytes()); err != nil {
		if !apierr.IsWouldBlock(err) {
			c.onFatalError(err)
		}
		return false
	}
	return true
}

func (c *Connection) sendRaw(msgType uint16, payload []byte) {
	if !c.canSendNow() {
		return
	}
	if err := c.helper.WriteProtobufPacket(msgType, payload); err != nil && !apierr.IsWouldBlock(err) {
		c.onFatalError(err)
	}
}

// scheduleSingle queues a one-off message into the deferred batch, used
// for state pushes and list-entities responses so bursts of updates
// coalesce instead of firing a TCP write per entity.
func (c *Connection) scheduleSingle(entityKey uint32, msgType uint16, m wire.Message) {
	c.batch.add(entityKey, msgType, func(remainingSize int, isSingle bool) ([]byte, uint16, bool) {
		var size int
		m.CalcSize(&size)
		if size > remainingSize {
			return nil, 0, false
		}
		b := wire.NewBuffer(size)
		m.Encode(b)
		return b.Bytes(), msgType, true
	})
	if !c.batch.scheduled {
		c.batch.scheduled = true
		c.batchStart = now()
	}
}

func (c *Connection) maybeProcessBatch() {
	if !c.batch.scheduled || c.batch.empty() {
		return
	}
	if now().Sub(c.batchStart) < c.host.BatchDelay() {
		return
	}
	c.processBatch()
}

func (c *Connection) processBatch() {
	if !c.canSendNow() {
		return
	}
	infos, buf, remaining := c.batch.drain()
	if infos == nil {
		// Either nothing fit (fast path rejected) or every item was too
		// large to ever send; drop silently as the original does, logging
		// at debug.
		c.log.Debug("dropping oversized deferred batch item", "peer", c.peer)
		c.batch.items = nil
		c.rescheduleIfNeeded()
		return
	}
	if err := c.helper.WriteProtobufPackets(infos, buf); err != nil && !apierr.IsWouldBlock(err) {
		c.onFatalError(err)
		return
	}
	c.batch.items = remaining
	c.rescheduleIfNeeded()
}

func (c *Connection) rescheduleIfNeeded() {
	if c.batch.empty() {
		c.batch.scheduled = false
		return
	}
	c.batchStart = now()
}

func (c *Connection) checkKeepalive() {
	if c.state != StateAuthenticated {
		return
	}
	n := now()
	if c.sentPing {
		if n.Sub(c.lastTraffic) > disconnectAfter {
			c.log.Error("no ping response, disconnecting", "peer", c.peer, "retries", c.pingRetries)
			c.onFatalError(fmt.Errorf("keepalive timeout"))
		}
		return
	}
	if n.Sub(c.lastTraffic) > KeepaliveTimeout && n.After(c.nextPingRetry) {
		c.sentPing = c.trySendMessage(&wire.PingRequest{})
		if c.sentPing {
			return
		}
		c.nextPingRetry = n.Add(PingRetryInterval)
		c.pingRetries++
		switch {
		case c.pingRetries >= MaxPingRetries:
			c.log.Error("sending keepalive failed, disconnecting", "peer", c.peer, "retries", c.pingRetries)
			c.onFatalError(fmt.Errorf("ping retries exhausted"))
		case c.pingRetries >= 10:
			c.log.Warn("sending keepalive failed, retrying", "peer", c.peer, "retries", c.pingRetries)
		default:
			c.log.Debug("sending keepalive failed, retrying", "peer", c.peer, "retries", c.pingRetries)
		}
	}
}

func (c *Connection) checkCameraWatchdog() {
	if !c.cameraStreaming {
		return
	}
	if now().After(c.cameraWatchdogDeadline) {
		c.cameraStreaming = false
		c.log.Debug("camera stream watchdog expired", "peer", c.peer)
	}
}

// advanceListEntities queues one ListEntities*Response into the deferred
// batch per loop iteration until every registered entity has been
// described, then queues ListEntitiesDoneResponse behind them, matching the
// original's list_entities_iterator_ walking one entity per loop().
func (c *Connection) advanceListEntities() {
	if c.state != StateAuthenticated || !c.listEntitiesStarted || c.listEntitiesDone {
		return
	}
	if c.listEntitiesOrder == nil {
		c.listEntitiesOrder = c.host.Registry().All()
	}
	if c.listEntitiesAt >= len(c.listEntitiesOrder) {
		c.listEntitiesDone = true
		c.scheduleSingle(0, wire.TypeListEntitiesDone, &wire.ListEntitiesDoneResponse{})
		return
	}
	d := c.listEntitiesOrder[c.listEntitiesAt]
	c.listEntitiesAt++
	if msg := listEntitiesMessageFor(d); msg != nil {
		c.scheduleSingle(d.Base().Key(), msg.MessageType(), msg)
	}
}

// advanceInitialState pushes one entity's current state per loop, and only
// after list-entities enumeration has finished, mirroring the original's
// ordering (list iterator fully drained before initial_state_iterator_
// starts).
func (c *Connection) advanceInitialState() {
	if c.state != StateAuthenticated || !c.listEntitiesDone || !c.subscribedStates {
		return
	}
	if c.initialStateAt >= len(c.listEntitiesOrder) {
		return
	}
	d := c.listEntitiesOrder[c.initialStateAt]
	c.initialStateAt++
	c.pushState(d)
}

// advanceHAStateSub increments haStateSubCursor once per loop. It does not
// read the host's Home-Assistant-state subscription list and sends no
// subscription message to the client.
func (c *Connection) advanceHAStateSub() {
	c.haStateSubCursor++
}

func (c *Connection) pushState(d entity.Driver) {
	base := d.Base()
	switch base.Kind {
	case entity.KindSwitch:
		c.scheduleSingle(base.Key(), wire.TypeSwitchStateResponse, &wire.SwitchStateResponse{
			Key: base.Key(), State: d.State().(bool),
		})
	case entity.KindBinarySensor:
		c.scheduleSingle(base.Key(), wire.TypeBinarySensorStateResponse, &wire.BinarySensorStateResponse{
			Key: base.Key(), State: d.State().(bool),
		})
	case entity.KindSensor:
		c.scheduleSingle(base.Key(), wire.TypeSensorStateResponse, &wire.SensorStateResponse{
			Key: base.Key(), State: d.State().(float32),
		})
	case entity.KindTextSensor:
		c.scheduleSingle(base.Key(), wire.TypeTextSensorStateResponse, &wire.TextSensorStateResponse{
			Key: base.Key(), State: d.State().(string),
		})
	case entity.KindNumber:
		c.scheduleSingle(base.Key(), wire.TypeNumberStateResponse, &wire.NumberStateResponse{
			Key: base.Key(), State: d.State().(float32),
		})
	case entity.KindText:
		c.scheduleSingle(base.Key(), wire.TypeTextStateResponse, &wire.TextStateResponse{
			Key: base.Key(), State: d.State().(string),
		})
	case entity.KindSelect:
		c.scheduleSingle(base.Key(), wire.TypeSelectStateResponse, &wire.SelectStateResponse{
			Key: base.Key(), State: d.State().(string),
		})
	case entity.KindLock:
		c.scheduleSingle(base.Key(), wire.TypeLockStateResponse, &wire.LockStateResponse{
			Key: base.Key(), State: d.State().(uint32),
		})
	case entity.KindValve:
		if s, ok := d.State().(entity.ValveState); ok {
			c.scheduleSingle(base.Key(), wire.TypeValveStateResponse, &wire.ValveStateResponse{
				Key: base.Key(), Position: s.Position, CurrentOperation: s.CurrentOperation,
			})
		}
	case entity.KindLight:
		if s, ok := d.State().(entity.LightState); ok {
			c.scheduleSingle(base.Key(), wire.TypeLightStateResponse, &wire.LightStateResponse{
				Key: base.Key(), State: s.On, Brightness: s.Brightness,
				ColorMode: s.ColorMode, ColorTemperature: s.ColorTemperature,
				Red: s.Red, Green: s.Green, Blue: s.Blue, White: s.White, Effect: s.Effect,
			})
		}
	case entity.KindCover:
		if s, ok := d.State().(entity.CoverState); ok {
			c.scheduleSingle(base.Key(), wire.TypeCoverStateResponse, &wire.CoverStateResponse{
				Key: base.Key(), Position: s.Position, Tilt: s.Tilt, CurrentOperation: s.CurrentOperation,
			})
		}
	case entity.KindFan:
		if s, ok := d.State().(entity.FanState); ok {
			c.scheduleSingle(base.Key(), wire.TypeFanStateResponse, &wire.FanStateResponse{
				Key: base.Key(), State: s.On, Oscillating: s.Oscillating,
				Direction: s.Direction, SpeedLevel: s.SpeedLevel,
			})
		}
	case entity.KindClimate:
		if s, ok := d.State().(entity.ClimateState); ok {
			c.scheduleSingle(base.Key(), wire.TypeClimateStateResponse, &wire.ClimateStateResponse{
				Key: base.Key(), Mode: s.Mode,
				CurrentTemperature: s.CurrentTemperature, TargetTemperature: s.TargetTemperature,
				TargetTemperatureLow: s.TargetTemperatureLow, TargetTemperatureHigh: s.TargetTemperatureHigh,
				Action: s.Action, FanMode: s.FanMode, SwingMode: s.SwingMode, Preset: s.Preset,
			})
		}
	case entity.KindMediaPlayer:
		if s, ok := d.State().(entity.MediaPlayerState); ok {
			c.scheduleSingle(base.Key(), wire.TypeMediaPlayerStateResponse, &wire.MediaPlayerStateResponse{
				Key: base.Key(), State: s.State, Volume: s.Volume, Muted: s.Muted,
			})
		}
	case entity.KindAlarmControlPanel:
		if s, ok := d.State().(uint32); ok {
			c.scheduleSingle(base.Key(), wire.TypeAlarmControlPanelStateResponse, &wire.AlarmControlPanelStateResponse{
				Key: base.Key(), State: s,
			})
		}
	case entity.KindDate:
		if s, ok := d.State().(entity.DateState); ok {
			c.scheduleSingle(base.Key(), wire.TypeDateStateResponse, &wire.DateStateResponse{
				Key: base.Key(), MissingState: s.MissingState, Year: s.Year, Month: s.Month, Day: s.Day,
			})
		}
	case entity.KindTime:
		if s, ok := d.State().(entity.TimeState); ok {
			c.scheduleSingle(base.Key(), wire.TypeTimeStateResponse, &wire.TimeStateResponse{
				Key: base.Key(), MissingState: s.MissingState, Hour: s.Hour, Minute: s.Minute, Second: s.Second,
			})
		}
	case entity.KindDateTime:
		if s, ok := d.State().(entity.DateTimeState); ok {
			c.scheduleSingle(base.Key(), wire.TypeDateTimeStateResponse, &wire.DateTimeStateResponse{
				Key: base.Key(), MissingState: s.MissingState, EpochSeconds: s.EpochSeconds,
			})
		}
	case entity.KindUpdate:
		if s, ok := d.State().(entity.UpdateState); ok {
			c.scheduleSingle(base.Key(), wire.TypeUpdateStateResponse, &wire.UpdateStateResponse{
				Key: base.Key(), InProgress: s.InProgress, HasProgress: s.HasProgress, Progress: s.Progress,
				CurrentVersion: s.CurrentVersion, LatestVersion: s.LatestVersion, Title: s.Title,
				ReleaseSummary: s.ReleaseSummary, ReleaseURL: s.ReleaseURL,
			})
		}
	}
	// Camera carries no scalar push state at all: frames are produced only
	// in response to CameraImageRequest while cameraStreaming is set.
}

// PushState schedules d's current state for delivery to this client if it
// has already completed authentication and subscribed to state updates;
// used by the server's broadcast fan-out to deliver live updates after the
// initial-state walk has finished (advanceInitialState covers the walk
// itself). Safe to call for any entity kind; kinds with no state payload
// (buttons, cameras) are silently no-ops.
func (c *Connection) PushState(d entity.Driver) {
	if c.state != StateAuthenticated || !c.subscribedStates {
		return
	}
	c.pushState(d)
}

func listEntitiesMessageFor(d entity.Driver) wire.Message {
	base := d.Base()
	eb := wire.EntityInfoBase{
		ObjectID: base.ObjectID, Key: base.Key(), Name: base.Name,
		UniqueID: base.UniqueID, Icon: base.Icon,
		DisabledByDefault: base.DisabledByDefault, EntityCategory: base.EntityCategory,
	}
	switch base.Kind {
	case entity.KindSwitch:
		return &wire.ListEntitiesSwitchResponse{Base: eb}
	case entity.KindBinarySensor:
		return &wire.ListEntitiesBinarySensorResponse{Base: eb}
	case entity.KindSensor:
		return &wire.ListEntitiesSensorResponse{Base: eb}
	case entity.KindTextSensor:
		return &wire.ListEntitiesTextSensorResponse{Base: eb}
	case entity.KindLight:
		return &wire.ListEntitiesLightResponse{Base: eb}
	case entity.KindCover:
		return &wire.ListEntitiesCoverResponse{Base: eb}
	case entity.KindFan:
		return &wire.ListEntitiesFanResponse{Base: eb}
	case entity.KindClimate:
		return &wire.ListEntitiesClimateResponse{Base: eb}
	case entity.KindNumber:
		return &wire.ListEntitiesNumberResponse{Base: eb}
	case entity.KindSelect:
		return &wire.ListEntitiesSelectResponse{Base: eb}
	case entity.KindText:
		return &wire.ListEntitiesTextResponse{Base: eb}
	case entity.KindButton:
		return &wire.ListEntitiesButtonResponse{Base: eb}
	case entity.KindLock:
		return &wire.ListEntitiesLockResponse{Base: eb}
	case entity.KindValve:
		return &wire.ListEntitiesValveResponse{Base: eb}
	case entity.KindCamera:
		return &wire.ListEntitiesCameraResponse{Base: eb}
	case entity.KindMediaPlayer:
		return &wire.ListEntitiesMediaPlayerResponse{Base: eb}
	case entity.KindAlarmControlPanel:
		return &wire.ListEntitiesAlarmControlPanelResponse{Base: eb}
	case entity.KindDate:
		return &wire.ListEntitiesDateResponse{Base: eb}
	case entity.KindTime:
		return &wire.ListEntitiesTimeResponse{Base: eb}
	case entity.KindDateTime:
		return &wire.ListEntitiesDateTimeResponse{Base: eb}
	case entity.KindUpdate:
		return &wire.ListEntitiesUpdateResponse{Base: eb}
	default:
		return nil
	}
}
