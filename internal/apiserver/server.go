// Package apiserver implements the device-control API server: it owns the
// listening socket, the PSK, the entity registry, user services, and the
// Home-Assistant-state subscription set, and drives every accepted
// Connection's loop from one cooperative tick using a Start/Stop lifecycle,
// a mutex-guarded slice of live connections, and a ticker-driven watchdog
// goroutine.
package apiserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zqrup/esphome-sub000/internal/config"
	"github.com/zqrup/esphome-sub000/internal/connection"
	"github.com/zqrup/esphome-sub000/internal/entity"
	"github.com/zqrup/esphome-sub000/internal/frame"
	"github.com/zqrup/esphome-sub000/internal/store"
	"github.com/zqrup/esphome-sub000/internal/wire"
)

// haSubscription is one Connection's interest in a Home-Assistant entity's
// state/attribute, mirroring the original's state_subs_ list.
type haSubscription struct {
	conn      *connection.Connection
	entityID  string
	attribute string
}

// serviceHandler is what RegisterService wires a user service's key to.
type serviceHandler func([]wire.ExecuteServiceArgument) error

// Server accepts device-API sockets and owns everything shared across
// every connected client.
type Server struct {
	cfg      *config.Config
	registry *entity.Registry
	store    *store.Store
	logger   *slog.Logger

	listener net.Listener

	mu       sync.RWMutex
	conns    []*connection.Connection
	haSubs   []haSubscription
	noiseKey []byte

	services        []wire.ListEntitiesServicesResponse
	serviceHandlers map[uint32]serviceHandler

	ctx    context.Context
	cancel context.CancelFunc

	startedAt         time.Time
	totalConnections  atomic.Int64
	activeConnections atomic.Int32

	eventSink func(eventType string, data interface{})
}

// SetEventSink registers fn to be called whenever an entity state changes
// or a client connects/disconnects, so the admin dashboard's event feed
// can mirror device-API activity without Server importing it directly.
func (s *Server) SetEventSink(fn func(eventType string, data interface{})) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eventSink = fn
}

func (s *Server) emit(eventType string, data interface{}) {
	s.mu.RLock()
	fn := s.eventSink
	s.mu.RUnlock()
	if fn != nil {
		fn(eventType, data)
	}
}

// New builds a Server from cfg and registry. st may be nil (no PSK/snapshot
// persistence, used by tests); when non-nil its saved PSK takes precedence
// over cfg.API.NoisePSK so a runtime key rotation survives a restart.
func New(cfg *config.Config, registry *entity.Registry, st *store.Store, logger *slog.Logger) (*Server, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:             cfg,
		registry:        registry,
		store:           st,
		logger:          logger,
		serviceHandlers: make(map[uint32]serviceHandler),
		noiseKey:        cfg.NoiseKey(),
		ctx:             ctx,
		cancel:          cancel,
	}

	if st != nil {
		persisted, err := st.LoadPSK()
		if err != nil {
			cancel()
			return nil, fmt.Errorf("loading persisted psk: %w", err)
		}
		if persisted != nil {
			s.noiseKey = persisted
		}
	}

	return s, nil
}

// RegisterService adds a user service callable via ExecuteServiceRequest,
// keyed the same way entities are (FNV-1 over its name), and returns that
// key so the caller can describe it in its own ListEntitiesServicesResponse
// bookkeeping if needed.
func (s *Server) RegisterService(name string, args []wire.ListEntitiesServicesArgument, handler serviceHandler) uint32 {
	key := entity.ObjectIDHash(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = append(s.services, wire.ListEntitiesServicesResponse{Name: name, Key: key, Args: args})
	s.serviceHandlers[key] = handler
	return key
}

// Start opens the listening socket. Run must be called afterwards to drive
// the accept/tick loop.
func (s *Server) Start() error {
	l, err := net.Listen("tcp", s.cfg.API.Address)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.API.Address, err)
	}
	s.listener = l
	s.startedAt = now()
	s.logger.Info("api server listening", "address", s.cfg.API.Address, "noise", s.noiseKey != nil)
	return nil
}

// Run drives the cooperative accept/tick loop until ctx is cancelled or Stop
// is called. It never blocks the caller's goroutine for more than interval.
func (s *Server) Run(ctx context.Context, interval time.Duration) {
	go s.watchdog()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick accepts any pending sockets, advances every live connection by one
// loop iteration, and reaps connections whose remove flag is now set —
// matching the original APIServer::loop()'s three-part contract.
func (s *Server) Tick() {
	s.acceptNew()

	s.mu.RLock()
	conns := make([]*connection.Connection, len(s.conns))
	copy(conns, s.conns)
	s.mu.RUnlock()

	for _, c := range conns {
		if err := c.Loop(); err != nil {
			s.logger.Warn("connection loop error", "err", err)
		}
	}

	s.reapRemoved()
}

func (s *Server) acceptNew() {
	if s.listener == nil {
		return
	}
	if tl, ok := s.listener.(*net.TCPListener); ok {
		// Non-blocking accept: an already-expired deadline, exactly like
		// frame's nonBlockingRead, so Tick never stalls waiting for a
		// client that never shows up.
		_ = tl.SetDeadline(now())
	}
	nc, err := s.listener.Accept()
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return
		}
		if !errors.Is(err, net.ErrClosed) {
			s.logger.Warn("accept failed", "err", err)
		}
		return
	}
	s.addConn(nc)
}

func (s *Server) addConn(nc net.Conn) {
	setTCPNoDelay(nc, s.logger)

	var h frame.Helper
	if key := s.NoiseKey(); key != nil {
		h = frame.NewNoiseHelper(nc, key, s.cfg.Device.Name, s.cfg.Device.MacAddress)
	} else {
		h = frame.NewPlaintextHelper(nc)
	}

	peer := ""
	if nc.RemoteAddr() != nil {
		peer = nc.RemoteAddr().String()
	}
	c := connection.New(h, s, peer, s.logger)
	if err := c.Start(); err != nil {
		s.logger.Warn("connection start failed", "peer", peer, "err", err)
		_ = nc.Close()
		return
	}

	s.mu.Lock()
	s.conns = append(s.conns, c)
	s.mu.Unlock()

	s.totalConnections.Add(1)
	s.activeConnections.Add(1)
	s.logger.Debug("client connected", "peer", peer, "active", s.activeConnections.Load())
	s.emit("connection_opened", map[string]interface{}{"peer": peer})
}

func (s *Server) reapRemoved() {
	s.mu.Lock()
	removedCount := 0
	kept := s.conns[:0]
	for _, c := range s.conns {
		if c.Removed() {
			s.unsubscribeLocked(c)
			s.activeConnections.Add(-1)
			removedCount++
			continue
		}
		kept = append(kept, c)
	}
	s.conns = kept
	s.mu.Unlock()

	for i := 0; i < removedCount; i++ {
		s.emit("connection_closed", nil)
	}
}

// Stop closes the listening socket and signals Run's loop and watchdog to
// exit. Live client sockets are closed by the OS on process exit;
// Connection exposes no direct teardown hook beyond its Removed() flag,
// which only a failed read/write or an explicit disconnect request sets.
func (s *Server) Stop() error {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.logger.Info("api server stopped")
	return nil
}

// Broadcast schedules d's current state for delivery to every
// subscribed, authenticated client — the fan-out path an entity driver
// calls after it changes state on its own (e.g. a sensor reading a new
// value), as opposed to in response to a client's command.
func (s *Server) Broadcast(d entity.Driver) {
	s.mu.RLock()
	conns := make([]*connection.Connection, len(s.conns))
	copy(conns, s.conns)
	s.mu.RUnlock()

	for _, c := range conns {
		c.PushState(d)
	}

	base := d.Base()
	s.emit("entity_state", map[string]interface{}{
		"key":  base.Key(),
		"name": base.Name,
		"kind": base.Kind,
	})
}

// Stats returns a point-in-time snapshot of server activity, used by the
// admin HTTP surface's metrics/health endpoints.
type Stats struct {
	ActiveConnections int64
	TotalConnections  int64
	Uptime            time.Duration
}

func (s *Server) Stats() Stats {
	return Stats{
		ActiveConnections: int64(s.activeConnections.Load()),
		TotalConnections:  s.totalConnections.Load(),
		Uptime:            now().Sub(s.startedAt),
	}
}

func (s *Server) watchdog() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			st := s.Stats()
			s.logger.Debug("api server watchdog", "active", st.ActiveConnections, "total", st.TotalConnections)
		case <-s.ctx.Done():
			return
		}
	}
}

func now() time.Time { return time.Now() }

// --- connection.Host implementation ---

func (s *Server) Password() string { return s.cfg.API.Password }

func (s *Server) DeviceInfo() wire.DeviceInfoResponse {
	d := s.cfg.Device
	return wire.DeviceInfoResponse{
		UsesPassword:               s.cfg.API.Password != "",
		Name:                       d.Name,
		MacAddress:                 d.MacAddress,
		EsphomeVersion:             d.EsphomeVersion,
		CompilationTime:            d.CompilationTime,
		Model:                      d.Model,
		HasDeepSleep:               d.HasDeepSleep,
		ProjectName:                d.ProjectName,
		ProjectVersion:             d.ProjectVersion,
		BluetoothProxyFeatureFlags: d.BluetoothProxyFeatureFlags,
		ManufacturerName:           d.Manufacturer,
		FriendlyName:               d.FriendlyName,
		VoiceAssistantFeatureFlags: d.VoiceAssistantFeatureFlags,
		SuggestedArea:              d.SuggestedArea,
	}
}

func (s *Server) Registry() *entity.Registry { return s.registry }

func (s *Server) Services() []wire.ListEntitiesServicesResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]wire.ListEntitiesServicesResponse, len(s.services))
	copy(out, s.services)
	return out
}

func (s *Server) ExecuteService(key uint32, args []wire.ExecuteServiceArgument) error {
	s.mu.RLock()
	handler, ok := s.serviceHandlers[key]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no service registered for key %d", key)
	}
	return handler(args)
}

func (s *Server) SubscribeHAState(c *connection.Connection, entityID, attribute string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.haSubs = append(s.haSubs, haSubscription{conn: c, entityID: entityID, attribute: attribute})
}

func (s *Server) Unsubscribe(c *connection.Connection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unsubscribeLocked(c)
}

func (s *Server) unsubscribeLocked(c *connection.Connection) {
	kept := s.haSubs[:0]
	for _, sub := range s.haSubs {
		if sub.conn != c {
			kept = append(kept, sub)
		}
	}
	s.haSubs = kept
}

func (s *Server) EpochSeconds() uint32 { return uint32(now().Unix()) }

// SetNoiseKey validates and persists a new PSK, then rotates it in for any
// future connection. Existing live connections keep whatever framing they
// already negotiated: a write failure here never touches s.noiseKey, so
// the live session keeps the old key.
func (s *Server) SetNoiseKey(key []byte) error {
	if len(key) != 32 {
		return fmt.Errorf("noise psk must be 32 bytes, got %d", len(key))
	}
	if s.store != nil {
		if err := s.store.SavePSK(key); err != nil {
			return fmt.Errorf("persisting psk: %w", err)
		}
	}
	s.mu.Lock()
	s.noiseKey = append([]byte(nil), key...)
	s.mu.Unlock()
	return nil
}

// NoiseKey returns the active PSK, or nil if Noise framing is disabled.
func (s *Server) NoiseKey() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.noiseKey == nil {
		return nil
	}
	return append([]byte(nil), s.noiseKey...)
}

func (s *Server) BatchDelay() time.Duration { return s.cfg.API.BatchDelay.Duration() }
