// Package entity holds the in-memory registry of the device's entities:
// their kind, object id, FNV-1 key, and the external Driver each one is
// backed by. This is pure bookkeeping with no ecosystem library fit — the
// key derivation and iteration order exist only because the connection
// layer needs a stable, deterministic walk for list/state enumeration.
package entity

import (
	"sort"
	"time"
)

// Kind identifies what sort of entity a Base describes. Values intentionally
// do not reuse the wire message type ids — they index this package's own
// small enum, independent of the codec.
type Kind int

const (
	KindBinarySensor Kind = iota
	KindSensor
	KindTextSensor
	KindSwitch
	KindLight
	KindCover
	KindFan
	KindClimate
	KindNumber
	KindSelect
	KindText
	KindButton
	KindLock
	KindValve
	KindCamera
	KindMediaPlayer
	KindAlarmControlPanel
	KindDate
	KindTime
	KindDateTime
	KindUpdate
)

// ValveState is the State() value a KindValve driver returns: valves carry
// a fractional position plus a current-operation enum.
type ValveState struct {
	Position         float32
	CurrentOperation uint32
}

// LightState is the State() value a KindLight driver returns.
type LightState struct {
	On               bool
	Brightness       float32
	ColorMode        uint32
	ColorTemperature float32
	Red, Green, Blue float32
	White            float32
	Effect           string
}

// CoverState is the State() value a KindCover driver returns.
type CoverState struct {
	Position         float32
	Tilt             float32
	CurrentOperation uint32
}

// FanState is the State() value a KindFan driver returns.
type FanState struct {
	On          bool
	Oscillating bool
	Direction   uint32
	SpeedLevel  int32
}

// ClimateState is the State() value a KindClimate driver returns.
type ClimateState struct {
	Mode                   uint32
	CurrentTemperature     float32
	TargetTemperature      float32
	TargetTemperatureLow   float32
	TargetTemperatureHigh  float32
	Action                 uint32
	FanMode                uint32
	SwingMode              uint32
	Preset                 uint32
}

// MediaPlayerState is the State() value a KindMediaPlayer driver returns.
type MediaPlayerState struct {
	State  uint32
	Volume float32
	Muted  bool
}

// DateState is the State() value a KindDate driver returns.
type DateState struct {
	MissingState bool
	Year         uint32
	Month        uint32
	Day          uint32
}

// TimeState is the State() value a KindTime driver returns.
type TimeState struct {
	MissingState bool
	Hour         uint32
	Minute       uint32
	Second       uint32
}

// DateTimeState is the State() value a KindDateTime driver returns.
type DateTimeState struct {
	MissingState bool
	EpochSeconds uint32
}

// UpdateState is the State() value a KindUpdate driver returns.
type UpdateState struct {
	InProgress     bool
	HasProgress    bool
	Progress       float32
	CurrentVersion string
	LatestVersion  string
	Title          string
	ReleaseSummary string
	ReleaseURL     string
}

// CameraStreamWatchdog is the original's ESP32_CAMERA_STOP_STREAM constant:
// a camera stream that receives no new CameraImageRequest within this
// window is torn down.
const CameraStreamWatchdog = 5 * time.Second

const (
	fnvOffsetBasis32 uint32 = 2166136261
	fnvPrime32       uint32 = 16777619
)

// ObjectIDHash computes the FNV-1 (not FNV-1a) 32-bit hash esphome uses as
// an entity's wire key: multiply-then-xor, in that order, per byte.
func ObjectIDHash(objectID string) uint32 {
	hash := fnvOffsetBasis32
	for i := 0; i < len(objectID); i++ {
		hash *= fnvPrime32
		hash ^= uint32(objectID[i])
	}
	return hash
}

// Base carries the fields every entity kind shares, mirroring
// esphome/core/entity_base.h's EntityBase.
type Base struct {
	Kind              Kind
	ObjectID          string
	Name              string
	UniqueID          string
	Icon              string
	DisabledByDefault bool
	EntityCategory    uint32
	key               uint32
}

// NewBase derives the entity's FNV-1 key from its object id at construction
// time, matching calc_object_id_'s eager-computation approach.
func NewBase(kind Kind, objectID, name string) Base {
	return Base{
		Kind:     kind,
		ObjectID: objectID,
		Name:     name,
		key:      ObjectIDHash(objectID),
	}
}

// Key returns the entity's stable wire key.
func (b Base) Key() uint32 { return b.key }

// Driver is the external collaborator boundary: something that knows how
// to read an entity's current state and apply commands to it. The device
// API core never implements a driver itself; Registry only holds
// references to whatever a host wires in.
type Driver interface {
	Base() Base
	// State returns the entity's current value; its type depends on Kind:
	// bool (KindSwitch), float32 (KindSensor), string (KindTextSensor),
	// uint32 (KindAlarmControlPanel), or one of this package's *State
	// struct values (KindLight -> LightState, KindValve -> ValveState, ...).
	State() any
	// HandleCommand applies a decoded *CommandRequest value from
	// internal/wire; the concrete type matches Kind the same way State's
	// return value does.
	HandleCommand(cmd any) error
}

// Registry holds every entity the device exposes, in insertion order, so
// ListEntities and the initial-state dump enumerate entities the same way
// every time a client connects.
type Registry struct {
	order []Driver
	byKey map[uint32]Driver
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[uint32]Driver)}
}

// Add registers d, preserving the order Add was called in.
func (r *Registry) Add(d Driver) {
	key := d.Base().Key()
	if _, exists := r.byKey[key]; exists {
		return
	}
	r.byKey[key] = d
	r.order = append(r.order, d)
}

// Lookup returns the driver for key, or nil if none is registered.
func (r *Registry) Lookup(key uint32) Driver {
	return r.byKey[key]
}

// All returns every registered driver in registration order.
func (r *Registry) All() []Driver {
	out := make([]Driver, len(r.order))
	copy(out, r.order)
	return out
}

// ByKindSorted returns drivers of the given kind sorted by object id, used
// by admin surfaces that want a stable, human-friendly ordering rather than
// registration order.
func (r *Registry) ByKindSorted(kind Kind) []Driver {
	var out []Driver
	for _, d := range r.order {
		if d.Base().Kind == kind {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Base().ObjectID < out[j].Base().ObjectID
	})
	return out
}

// Len returns the number of registered entities.
func (r *Registry) Len() int { return len(r.order) }
