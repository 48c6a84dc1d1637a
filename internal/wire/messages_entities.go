package wire

// Per-kind entity messages: list (entity metadata, sent once during
// enumeration), state (pushed on change or on initial dump), and command
// (client → device). Sensor-like read-only kinds have no command message;
// Button has no state. Field layout follows EntityInfoBase plus whatever
// scalar fields that entity kind's state/command needs.

// --- Binary sensor --------------------------------------------------------

type ListEntitiesBinarySensorResponse struct {
	Base      EntityInfoBase
	DeviceClass string
	IsStatusBinarySensor bool
}

func (m *ListEntitiesBinarySensorResponse) MessageType() uint16 {
	return TypeListEntitiesBinarySensorResponse
}
func (m *ListEntitiesBinarySensorResponse) CalcSize(total *int) {
	sizeEntityBase(total, m.Base)
	AddString(total, 8, m.DeviceClass, false)
	AddBool(total, 9, m.IsStatusBinarySensor, false)
}
func (m *ListEntitiesBinarySensorResponse) Encode(b *Buffer) {
	encodeEntityBase(b, m.Base)
	b.EncodeString(8, m.DeviceClass, false)
	b.EncodeBool(9, m.IsStatusBinarySensor, false)
}

type BinarySensorStateResponse struct {
	Key          uint32
	State        bool
	MissingState bool
}

func (m *BinarySensorStateResponse) MessageType() uint16 { return TypeBinarySensorStateResponse }
func (m *BinarySensorStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddBool(total, 2, m.State, false)
	AddBool(total, 3, m.MissingState, false)
}
func (m *BinarySensorStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeBool(2, m.State, false)
	b.EncodeBool(3, m.MissingState, false)
}

// --- Sensor ---------------------------------------------------------------

type ListEntitiesSensorResponse struct {
	Base           EntityInfoBase
	DeviceClass    string
	UnitOfMeasurement string
	AccuracyDecimals  int32
	ForceUpdate    bool
	StateClass     uint32
}

func (m *ListEntitiesSensorResponse) MessageType() uint16 { return TypeListEntitiesSensorResponse }
func (m *ListEntitiesSensorResponse) CalcSize(total *int) {
	sizeEntityBase(total, m.Base)
	AddString(total, 8, m.UnitOfMeasurement, false)
	AddInt32(total, 9, m.AccuracyDecimals, false)
	AddBool(total, 10, m.ForceUpdate, false)
	AddString(total, 11, m.DeviceClass, false)
	AddEnum(total, 12, m.StateClass, false)
}
func (m *ListEntitiesSensorResponse) Encode(b *Buffer) {
	encodeEntityBase(b, m.Base)
	b.EncodeString(8, m.UnitOfMeasurement, false)
	b.EncodeInt32(9, m.AccuracyDecimals, false)
	b.EncodeBool(10, m.ForceUpdate, false)
	b.EncodeString(11, m.DeviceClass, false)
	b.EncodeEnum(12, m.StateClass, false)
}

type SensorStateResponse struct {
	Key          uint32
	State        float32
	MissingState bool
}

func (m *SensorStateResponse) MessageType() uint16 { return TypeSensorStateResponse }
func (m *SensorStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddFloat(total, 2, m.State, false)
	AddBool(total, 3, m.MissingState, false)
}
func (m *SensorStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeFloat(2, m.State, false)
	b.EncodeBool(3, m.MissingState, false)
}

// --- Text sensor ------------------------------------------------------------

type ListEntitiesTextSensorResponse struct {
	Base        EntityInfoBase
	DeviceClass string
}

func (m *ListEntitiesTextSensorResponse) MessageType() uint16 {
	return TypeListEntitiesTextSensorResponse
}
func (m *ListEntitiesTextSensorResponse) CalcSize(total *int) {
	sizeEntityBase(total, m.Base)
	AddString(total, 8, m.DeviceClass, false)
}
func (m *ListEntitiesTextSensorResponse) Encode(b *Buffer) {
	encodeEntityBase(b, m.Base)
	b.EncodeString(8, m.DeviceClass, false)
}

type TextSensorStateResponse struct {
	Key          uint32
	State        string
	MissingState bool
}

func (m *TextSensorStateResponse) MessageType() uint16 { return TypeTextSensorStateResponse }
func (m *TextSensorStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddString(total, 2, m.State, false)
	AddBool(total, 3, m.MissingState, false)
}
func (m *TextSensorStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeString(2, m.State, false)
	b.EncodeBool(3, m.MissingState, false)
}

// --- Switch -----------------------------------------------------------------

type ListEntitiesSwitchResponse struct {
	Base        EntityInfoBase
	DeviceClass string
	AssumedState bool
}

func (m *ListEntitiesSwitchResponse) MessageType() uint16 { return TypeListEntitiesSwitchResponse }
func (m *ListEntitiesSwitchResponse) CalcSize(total *int) {
	sizeEntityBase(total, m.Base)
	AddBool(total, 8, m.AssumedState, false)
	AddString(total, 9, m.DeviceClass, false)
}
func (m *ListEntitiesSwitchResponse) Encode(b *Buffer) {
	encodeEntityBase(b, m.Base)
	b.EncodeBool(8, m.AssumedState, false)
	b.EncodeString(9, m.DeviceClass, false)
}

type SwitchStateResponse struct {
	Key   uint32
	State bool
}

func (m *SwitchStateResponse) MessageType() uint16 { return TypeSwitchStateResponse }
func (m *SwitchStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddBool(total, 2, m.State, false)
}
func (m *SwitchStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeBool(2, m.State, false)
}

type SwitchCommandRequest struct {
	Key   uint32
	State bool
}

func (m *SwitchCommandRequest) MessageType() uint16 { return TypeSwitchCommandRequest }
func (m *SwitchCommandRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddBool(total, 2, m.State, true)
}
func (m *SwitchCommandRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeBool(2, m.State, true)
}
func (m *SwitchCommandRequest) DecodeVarint(fieldID uint32, v uint64) error {
	switch fieldID {
	case 1:
		m.Key = uint32(v)
	case 2:
		m.State = AsBool(v)
	}
	return nil
}
func (m *SwitchCommandRequest) DecodeLengthDelimited(uint32, []byte) error { return nil }
func (m *SwitchCommandRequest) Decode32Bit(uint32, uint32) error           { return nil }
func (m *SwitchCommandRequest) Decode64Bit(uint32, uint64) error           { return nil }

// --- Light ------------------------------------------------------------------

type ListEntitiesLightResponse struct {
	Base             EntityInfoBase
	SupportedColorModes []uint32
	MinMireds        float32
	MaxMireds        float32
	Effects          []string
}

func (m *ListEntitiesLightResponse) MessageType() uint16 { return TypeListEntitiesLightResponse }
func (m *ListEntitiesLightResponse) CalcSize(total *int) {
	sizeEntityBase(total, m.Base)
	for _, cm := range m.SupportedColorModes {
		AddEnum(total, 12, cm, true)
	}
	AddFloat(total, 9, m.MinMireds, false)
	AddFloat(total, 10, m.MaxMireds, false)
	for _, e := range m.Effects {
		AddString(total, 11, e, true)
	}
}
func (m *ListEntitiesLightResponse) Encode(b *Buffer) {
	encodeEntityBase(b, m.Base)
	for _, cm := range m.SupportedColorModes {
		b.EncodeEnum(12, cm, true)
	}
	b.EncodeFloat(9, m.MinMireds, false)
	b.EncodeFloat(10, m.MaxMireds, false)
	for _, e := range m.Effects {
		b.EncodeString(11, e, true)
	}
}

type LightStateResponse struct {
	Key          uint32
	State        bool
	Brightness   float32
	ColorMode    uint32
	ColorTemperature float32
	Red, Green, Blue float32
	White        float32
	Effect       string
}

func (m *LightStateResponse) MessageType() uint16 { return TypeLightStateResponse }
func (m *LightStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddBool(total, 2, m.State, false)
	AddFloat(total, 3, m.Brightness, false)
	AddEnum(total, 11, m.ColorMode, false)
	AddFloat(total, 10, m.ColorTemperature, false)
	AddFloat(total, 6, m.Red, false)
	AddFloat(total, 7, m.Green, false)
	AddFloat(total, 8, m.Blue, false)
	AddFloat(total, 9, m.White, false)
	AddString(total, 5, m.Effect, false)
}
func (m *LightStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeBool(2, m.State, false)
	b.EncodeFloat(3, m.Brightness, false)
	b.EncodeEnum(11, m.ColorMode, false)
	b.EncodeFloat(10, m.ColorTemperature, false)
	b.EncodeFloat(6, m.Red, false)
	b.EncodeFloat(7, m.Green, false)
	b.EncodeFloat(8, m.Blue, false)
	b.EncodeFloat(9, m.White, false)
	b.EncodeString(5, m.Effect, false)
}

type LightCommandRequest struct {
	Key              uint32
	HasState         bool
	State            bool
	HasBrightness    bool
	Brightness       float32
	HasColorMode     bool
	ColorMode        uint32
	HasColorTemperature bool
	ColorTemperature float32
	HasRGB           bool
	Red, Green, Blue float32
	HasEffect        bool
	Effect           string
	HasTransitionLength bool
	TransitionLength uint32
}

func (m *LightCommandRequest) MessageType() uint16 { return TypeLightCommandRequest }
func (m *LightCommandRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddBool(total, 2, m.HasState, false)
	AddBool(total, 3, m.State, false)
	AddBool(total, 4, m.HasBrightness, false)
	AddFloat(total, 5, m.Brightness, false)
	AddBool(total, 22, m.HasColorMode, false)
	AddEnum(total, 23, m.ColorMode, false)
	AddBool(total, 10, m.HasColorTemperature, false)
	AddFloat(total, 11, m.ColorTemperature, false)
	AddBool(total, 12, m.HasRGB, false)
	AddFloat(total, 13, m.Red, false)
	AddFloat(total, 14, m.Green, false)
	AddFloat(total, 15, m.Blue, false)
	AddBool(total, 18, m.HasEffect, false)
	AddString(total, 19, m.Effect, false)
	AddBool(total, 8, m.HasTransitionLength, false)
	AddUint32(total, 9, m.TransitionLength, false)
}
func (m *LightCommandRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeBool(2, m.HasState, false)
	b.EncodeBool(3, m.State, false)
	b.EncodeBool(4, m.HasBrightness, false)
	b.EncodeFloat(5, m.Brightness, false)
	b.EncodeBool(22, m.HasColorMode, false)
	b.EncodeEnum(23, m.ColorMode, false)
	b.EncodeBool(10, m.HasColorTemperature, false)
	b.EncodeFloat(11, m.ColorTemperature, false)
	b.EncodeBool(12, m.HasRGB, false)
	b.EncodeFloat(13, m.Red, false)
	b.EncodeFloat(14, m.Green, false)
	b.EncodeFloat(15, m.Blue, false)
	b.EncodeBool(18, m.HasEffect, false)
	b.EncodeString(19, m.Effect, false)
	b.EncodeBool(8, m.HasTransitionLength, false)
	b.EncodeUint32(9, m.TransitionLength, false)
}
func (m *LightCommandRequest) DecodeVarint(fieldID uint32, v uint64) error {
	switch fieldID {
	case 1:
		m.Key = uint32(v)
	case 2:
		m.HasState = AsBool(v)
	case 3:
		m.State = AsBool(v)
	case 4:
		m.HasBrightness = AsBool(v)
	case 22:
		m.HasColorMode = AsBool(v)
	case 23:
		m.ColorMode = uint32(v)
	case 10:
		m.HasColorTemperature = AsBool(v)
	case 12:
		m.HasRGB = AsBool(v)
	case 18:
		m.HasEffect = AsBool(v)
	case 8:
		m.HasTransitionLength = AsBool(v)
	case 9:
		m.TransitionLength = uint32(v)
	}
	return nil
}
func (m *LightCommandRequest) DecodeLengthDelimited(fieldID uint32, v []byte) error {
	if fieldID == 19 {
		m.Effect = string(v)
	}
	return nil
}
func (m *LightCommandRequest) Decode32Bit(fieldID uint32, v uint32) error {
	switch fieldID {
	case 5:
		m.Brightness = AsFloat(v)
	case 11:
		m.ColorTemperature = AsFloat(v)
	case 13:
		m.Red = AsFloat(v)
	case 14:
		m.Green = AsFloat(v)
	case 15:
		m.Blue = AsFloat(v)
	}
	return nil
}
func (m *LightCommandRequest) Decode64Bit(uint32, uint64) error { return nil }

// --- Cover --------------------------------------------------------------

type ListEntitiesCoverResponse struct {
	Base           EntityInfoBase
	AssumedState   bool
	SupportsPosition bool
	SupportsTilt   bool
	DeviceClass    string
}

func (m *ListEntitiesCoverResponse) MessageType() uint16 { return TypeListEntitiesCoverResponse }
func (m *ListEntitiesCoverResponse) CalcSize(total *int) {
	sizeEntityBase(total, m.Base)
	AddBool(total, 8, m.AssumedState, false)
	AddBool(total, 9, m.SupportsPosition, false)
	AddBool(total, 10, m.SupportsTilt, false)
	AddString(total, 11, m.DeviceClass, false)
}
func (m *ListEntitiesCoverResponse) Encode(b *Buffer) {
	encodeEntityBase(b, m.Base)
	b.EncodeBool(8, m.AssumedState, false)
	b.EncodeBool(9, m.SupportsPosition, false)
	b.EncodeBool(10, m.SupportsTilt, false)
	b.EncodeString(11, m.DeviceClass, false)
}

type CoverStateResponse struct {
	Key         uint32
	LegacyState uint32
	Position    float32
	Tilt        float32
	CurrentOperation uint32
}

func (m *CoverStateResponse) MessageType() uint16 { return TypeCoverStateResponse }
func (m *CoverStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddFloat(total, 3, m.Position, false)
	AddFloat(total, 4, m.Tilt, false)
	AddEnum(total, 5, m.CurrentOperation, false)
}
func (m *CoverStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeFloat(3, m.Position, false)
	b.EncodeFloat(4, m.Tilt, false)
	b.EncodeEnum(5, m.CurrentOperation, false)
}

type CoverCommandRequest struct {
	Key             uint32
	HasPosition     bool
	Position        float32
	HasTilt         bool
	Tilt            float32
	Stop            bool
}

func (m *CoverCommandRequest) MessageType() uint16 { return TypeCoverCommandRequest }
func (m *CoverCommandRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddBool(total, 5, m.HasPosition, false)
	AddFloat(total, 6, m.Position, false)
	AddBool(total, 7, m.HasTilt, false)
	AddFloat(total, 8, m.Tilt, false)
	AddBool(total, 9, m.Stop, false)
}
func (m *CoverCommandRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeBool(5, m.HasPosition, false)
	b.EncodeFloat(6, m.Position, false)
	b.EncodeBool(7, m.HasTilt, false)
	b.EncodeFloat(8, m.Tilt, false)
	b.EncodeBool(9, m.Stop, false)
}
func (m *CoverCommandRequest) DecodeVarint(fieldID uint32, v uint64) error {
	switch fieldID {
	case 1:
		m.Key = uint32(v)
	case 5:
		m.HasPosition = AsBool(v)
	case 7:
		m.HasTilt = AsBool(v)
	case 9:
		m.Stop = AsBool(v)
	}
	return nil
}
func (m *CoverCommandRequest) DecodeLengthDelimited(uint32, []byte) error { return nil }
func (m *CoverCommandRequest) Decode32Bit(fieldID uint32, v uint32) error {
	switch fieldID {
	case 6:
		m.Position = AsFloat(v)
	case 8:
		m.Tilt = AsFloat(v)
	}
	return nil
}
func (m *CoverCommandRequest) Decode64Bit(uint32, uint64) error { return nil }

// --- Fan ------------------------------------------------------------------

type ListEntitiesFanResponse struct {
	Base              EntityInfoBase
	SupportsOscillation bool
	SupportsSpeed     bool
	SupportsDirection bool
	SupportedSpeedCount int32
}

func (m *ListEntitiesFanResponse) MessageType() uint16 { return TypeListEntitiesFanResponse }
func (m *ListEntitiesFanResponse) CalcSize(total *int) {
	sizeEntityBase(total, m.Base)
	AddBool(total, 8, m.SupportsOscillation, false)
	AddBool(total, 9, m.SupportsSpeed, false)
	AddBool(total, 10, m.SupportsDirection, false)
	AddInt32(total, 11, m.SupportedSpeedCount, false)
}
func (m *ListEntitiesFanResponse) Encode(b *Buffer) {
	encodeEntityBase(b, m.Base)
	b.EncodeBool(8, m.SupportsOscillation, false)
	b.EncodeBool(9, m.SupportsSpeed, false)
	b.EncodeBool(10, m.SupportsDirection, false)
	b.EncodeInt32(11, m.SupportedSpeedCount, false)
}

type FanStateResponse struct {
	Key          uint32
	State        bool
	Oscillating  bool
	Speed        uint32
	SpeedLevel   int32
	Direction    uint32
}

func (m *FanStateResponse) MessageType() uint16 { return TypeFanStateResponse }
func (m *FanStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddBool(total, 2, m.State, false)
	AddBool(total, 3, m.Oscillating, false)
	AddEnum(total, 5, m.Direction, false)
	AddInt32(total, 6, m.SpeedLevel, false)
}
func (m *FanStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeBool(2, m.State, false)
	b.EncodeBool(3, m.Oscillating, false)
	b.EncodeEnum(5, m.Direction, false)
	b.EncodeInt32(6, m.SpeedLevel, false)
}

type FanCommandRequest struct {
	Key             uint32
	HasState        bool
	State           bool
	HasSpeedLevel   bool
	SpeedLevel      int32
	HasOscillating  bool
	Oscillating     bool
	HasDirection    bool
	Direction       uint32
}

func (m *FanCommandRequest) MessageType() uint16 { return TypeFanCommandRequest }
func (m *FanCommandRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddBool(total, 2, m.HasState, false)
	AddBool(total, 3, m.State, false)
	AddBool(total, 8, m.HasSpeedLevel, false)
	AddInt32(total, 9, m.SpeedLevel, false)
	AddBool(total, 6, m.HasOscillating, false)
	AddBool(total, 7, m.Oscillating, false)
	AddBool(total, 10, m.HasDirection, false)
	AddEnum(total, 11, m.Direction, false)
}
func (m *FanCommandRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeBool(2, m.HasState, false)
	b.EncodeBool(3, m.State, false)
	b.EncodeBool(8, m.HasSpeedLevel, false)
	b.EncodeInt32(9, m.SpeedLevel, false)
	b.EncodeBool(6, m.HasOscillating, false)
	b.EncodeBool(7, m.Oscillating, false)
	b.EncodeBool(10, m.HasDirection, false)
	b.EncodeEnum(11, m.Direction, false)
}
func (m *FanCommandRequest) DecodeVarint(fieldID uint32, v uint64) error {
	switch fieldID {
	case 1:
		m.Key = uint32(v)
	case 2:
		m.HasState = AsBool(v)
	case 3:
		m.State = AsBool(v)
	case 8:
		m.HasSpeedLevel = AsBool(v)
	case 9:
		m.SpeedLevel = int32(v)
	case 6:
		m.HasOscillating = AsBool(v)
	case 7:
		m.Oscillating = AsBool(v)
	case 10:
		m.HasDirection = AsBool(v)
	case 11:
		m.Direction = uint32(v)
	}
	return nil
}
func (m *FanCommandRequest) DecodeLengthDelimited(uint32, []byte) error { return nil }
func (m *FanCommandRequest) Decode32Bit(uint32, uint32) error           { return nil }
func (m *FanCommandRequest) Decode64Bit(uint32, uint64) error           { return nil }

// --- Climate ----------------------------------------------------------------

type ListEntitiesClimateResponse struct {
	Base                  EntityInfoBase
	SupportsCurrentTemperature bool
	SupportsTwoPointTargetTemperature bool
	SupportedModes       []uint32
	VisualMinTemperature float32
	VisualMaxTemperature float32
	VisualTargetTemperatureStep float32
	SupportedFanModes    []uint32
	SupportedSwingModes  []uint32
	SupportedPresets     []uint32
}

func (m *ListEntitiesClimateResponse) MessageType() uint16 { return TypeListEntitiesClimateResponse }
func (m *ListEntitiesClimateResponse) CalcSize(total *int) {
	sizeEntityBase(total, m.Base)
	AddBool(total, 8, m.SupportsCurrentTemperature, false)
	AddBool(total, 9, m.SupportsTwoPointTargetTemperature, false)
	for _, mo := range m.SupportedModes {
		AddEnum(total, 10, mo, true)
	}
	AddFloat(total, 11, m.VisualMinTemperature, false)
	AddFloat(total, 12, m.VisualMaxTemperature, false)
	AddFloat(total, 13, m.VisualTargetTemperatureStep, false)
	for _, fm := range m.SupportedFanModes {
		AddEnum(total, 15, fm, true)
	}
	for _, sm := range m.SupportedSwingModes {
		AddEnum(total, 16, sm, true)
	}
	for _, p := range m.SupportedPresets {
		AddEnum(total, 17, p, true)
	}
}
func (m *ListEntitiesClimateResponse) Encode(b *Buffer) {
	encodeEntityBase(b, m.Base)
	b.EncodeBool(8, m.SupportsCurrentTemperature, false)
	b.EncodeBool(9, m.SupportsTwoPointTargetTemperature, false)
	for _, mo := range m.SupportedModes {
		b.EncodeEnum(10, mo, true)
	}
	b.EncodeFloat(11, m.VisualMinTemperature, false)
	b.EncodeFloat(12, m.VisualMaxTemperature, false)
	b.EncodeFloat(13, m.VisualTargetTemperatureStep, false)
	for _, fm := range m.SupportedFanModes {
		b.EncodeEnum(15, fm, true)
	}
	for _, sm := range m.SupportedSwingModes {
		b.EncodeEnum(16, sm, true)
	}
	for _, p := range m.SupportedPresets {
		b.EncodeEnum(17, p, true)
	}
}

type ClimateStateResponse struct {
	Key                uint32
	Mode               uint32
	CurrentTemperature float32
	TargetTemperature  float32
	TargetTemperatureLow float32
	TargetTemperatureHigh float32
	Action             uint32
	FanMode            uint32
	SwingMode          uint32
	Preset             uint32
}

func (m *ClimateStateResponse) MessageType() uint16 { return TypeClimateStateResponse }
func (m *ClimateStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddEnum(total, 2, m.Mode, false)
	AddFloat(total, 3, m.CurrentTemperature, false)
	AddFloat(total, 4, m.TargetTemperature, false)
	AddFloat(total, 5, m.TargetTemperatureLow, false)
	AddFloat(total, 6, m.TargetTemperatureHigh, false)
	AddEnum(total, 7, m.Action, false)
	AddEnum(total, 8, m.FanMode, false)
	AddEnum(total, 9, m.SwingMode, false)
	AddEnum(total, 10, m.Preset, false)
}
func (m *ClimateStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeEnum(2, m.Mode, false)
	b.EncodeFloat(3, m.CurrentTemperature, false)
	b.EncodeFloat(4, m.TargetTemperature, false)
	b.EncodeFloat(5, m.TargetTemperatureLow, false)
	b.EncodeFloat(6, m.TargetTemperatureHigh, false)
	b.EncodeEnum(7, m.Action, false)
	b.EncodeEnum(8, m.FanMode, false)
	b.EncodeEnum(9, m.SwingMode, false)
	b.EncodeEnum(10, m.Preset, false)
}

type ClimateCommandRequest struct {
	Key                  uint32
	HasMode              bool
	Mode                 uint32
	HasTargetTemperature bool
	TargetTemperature    float32
	HasTargetTemperatureLow bool
	TargetTemperatureLow float32
	HasTargetTemperatureHigh bool
	TargetTemperatureHigh float32
	HasFanMode           bool
	FanMode              uint32
	HasSwingMode         bool
	SwingMode            uint32
	HasPreset            bool
	Preset               uint32
}

func (m *ClimateCommandRequest) MessageType() uint16 { return TypeClimateCommandRequest }
func (m *ClimateCommandRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddBool(total, 2, m.HasMode, false)
	AddEnum(total, 3, m.Mode, false)
	AddBool(total, 4, m.HasTargetTemperature, false)
	AddFloat(total, 5, m.TargetTemperature, false)
	AddBool(total, 6, m.HasTargetTemperatureLow, false)
	AddFloat(total, 7, m.TargetTemperatureLow, false)
	AddBool(total, 8, m.HasTargetTemperatureHigh, false)
	AddFloat(total, 9, m.TargetTemperatureHigh, false)
	AddBool(total, 10, m.HasFanMode, false)
	AddEnum(total, 11, m.FanMode, false)
	AddBool(total, 12, m.HasSwingMode, false)
	AddEnum(total, 13, m.SwingMode, false)
	AddBool(total, 14, m.HasPreset, false)
	AddEnum(total, 15, m.Preset, false)
}
func (m *ClimateCommandRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeBool(2, m.HasMode, false)
	b.EncodeEnum(3, m.Mode, false)
	b.EncodeBool(4, m.HasTargetTemperature, false)
	b.EncodeFloat(5, m.TargetTemperature, false)
	b.EncodeBool(6, m.HasTargetTemperatureLow, false)
	b.EncodeFloat(7, m.TargetTemperatureLow, false)
	b.EncodeBool(8, m.HasTargetTemperatureHigh, false)
	b.EncodeFloat(9, m.TargetTemperatureHigh, false)
	b.EncodeBool(10, m.HasFanMode, false)
	b.EncodeEnum(11, m.FanMode, false)
	b.EncodeBool(12, m.HasSwingMode, false)
	b.EncodeEnum(13, m.SwingMode, false)
	b.EncodeBool(14, m.HasPreset, false)
	b.EncodeEnum(15, m.Preset, false)
}
func (m *ClimateCommandRequest) DecodeVarint(fieldID uint32, v uint64) error {
	switch fieldID {
	case 1:
		m.Key = uint32(v)
	case 2:
		m.HasMode = AsBool(v)
	case 3:
		m.Mode = uint32(v)
	case 4:
		m.HasTargetTemperature = AsBool(v)
	case 6:
		m.HasTargetTemperatureLow = AsBool(v)
	case 8:
		m.HasTargetTemperatureHigh = AsBool(v)
	case 10:
		m.HasFanMode = AsBool(v)
	case 11:
		m.FanMode = uint32(v)
	case 12:
		m.HasSwingMode = AsBool(v)
	case 13:
		m.SwingMode = uint32(v)
	case 14:
		m.HasPreset = AsBool(v)
	case 15:
		m.Preset = uint32(v)
	}
	return nil
}
func (m *ClimateCommandRequest) DecodeLengthDelimited(uint32, []byte) error { return nil }
func (m *ClimateCommandRequest) Decode32Bit(fieldID uint32, v uint32) error {
	switch fieldID {
	case 5:
		m.TargetTemperature = AsFloat(v)
	case 7:
		m.TargetTemperatureLow = AsFloat(v)
	case 9:
		m.TargetTemperatureHigh = AsFloat(v)
	}
	return nil
}
func (m *ClimateCommandRequest) Decode64Bit(uint32, uint64) error { return nil }

// --- Number -----------------------------------------------------------------

type ListEntitiesNumberResponse struct {
	Base    EntityInfoBase
	MinValue float32
	MaxValue float32
	Step     float32
	UnitOfMeasurement string
	Mode     uint32
	DeviceClass string
}

func (m *ListEntitiesNumberResponse) MessageType() uint16 { return TypeListEntitiesNumberResponse }
func (m *ListEntitiesNumberResponse) CalcSize(total *int) {
	sizeEntityBase(total, m.Base)
	AddFloat(total, 8, m.MinValue, false)
	AddFloat(total, 9, m.MaxValue, false)
	AddFloat(total, 10, m.Step, false)
	AddString(total, 11, m.UnitOfMeasurement, false)
	AddEnum(total, 12, m.Mode, false)
	AddString(total, 13, m.DeviceClass, false)
}
func (m *ListEntitiesNumberResponse) Encode(b *Buffer) {
	encodeEntityBase(b, m.Base)
	b.EncodeFloat(8, m.MinValue, false)
	b.EncodeFloat(9, m.MaxValue, false)
	b.EncodeFloat(10, m.Step, false)
	b.EncodeString(11, m.UnitOfMeasurement, false)
	b.EncodeEnum(12, m.Mode, false)
	b.EncodeString(13, m.DeviceClass, false)
}

type NumberStateResponse struct {
	Key          uint32
	State        float32
	MissingState bool
}

func (m *NumberStateResponse) MessageType() uint16 { return TypeNumberStateResponse }
func (m *NumberStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddFloat(total, 2, m.State, false)
	AddBool(total, 3, m.MissingState, false)
}
func (m *NumberStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeFloat(2, m.State, false)
	b.EncodeBool(3, m.MissingState, false)
}

type NumberCommandRequest struct {
	Key   uint32
	State float32
}

func (m *NumberCommandRequest) MessageType() uint16 { return TypeNumberCommandRequest }
func (m *NumberCommandRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddFloat(total, 2, m.State, true)
}
func (m *NumberCommandRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeFloat(2, m.State, true)
}
func (m *NumberCommandRequest) DecodeVarint(fieldID uint32, v uint64) error {
	if fieldID == 1 {
		m.Key = uint32(v)
	}
	return nil
}
func (m *NumberCommandRequest) DecodeLengthDelimited(uint32, []byte) error { return nil }
func (m *NumberCommandRequest) Decode32Bit(fieldID uint32, v uint32) error {
	if fieldID == 2 {
		m.State = AsFloat(v)
	}
	return nil
}
func (m *NumberCommandRequest) Decode64Bit(uint32, uint64) error { return nil }

// --- Select -----------------------------------------------------------------

type ListEntitiesSelectResponse struct {
	Base    EntityInfoBase
	Options []string
}

func (m *ListEntitiesSelectResponse) MessageType() uint16 { return TypeListEntitiesSelectResponse }
func (m *ListEntitiesSelectResponse) CalcSize(total *int) {
	sizeEntityBase(total, m.Base)
	for _, o := range m.Options {
		AddString(total, 8, o, true)
	}
}
func (m *ListEntitiesSelectResponse) Encode(b *Buffer) {
	encodeEntityBase(b, m.Base)
	for _, o := range m.Options {
		b.EncodeString(8, o, true)
	}
}

type SelectStateResponse struct {
	Key          uint32
	State        string
	MissingState bool
}

func (m *SelectStateResponse) MessageType() uint16 { return TypeSelectStateResponse }
func (m *SelectStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddString(total, 2, m.State, false)
	AddBool(total, 3, m.MissingState, false)
}
func (m *SelectStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeString(2, m.State, false)
	b.EncodeBool(3, m.MissingState, false)
}

type SelectCommandRequest struct {
	Key   uint32
	State string
}

func (m *SelectCommandRequest) MessageType() uint16 { return TypeSelectCommandRequest }
func (m *SelectCommandRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddString(total, 2, m.State, true)
}
func (m *SelectCommandRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeString(2, m.State, true)
}
func (m *SelectCommandRequest) DecodeVarint(fieldID uint32, v uint64) error {
	if fieldID == 1 {
		m.Key = uint32(v)
	}
	return nil
}
func (m *SelectCommandRequest) DecodeLengthDelimited(fieldID uint32, v []byte) error {
	if fieldID == 2 {
		m.State = string(v)
	}
	return nil
}
func (m *SelectCommandRequest) Decode32Bit(uint32, uint32) error { return nil }
func (m *SelectCommandRequest) Decode64Bit(uint32, uint64) error { return nil }

// --- Text -------------------------------------------------------------------

type ListEntitiesTextResponse struct {
	Base     EntityInfoBase
	MinLength uint32
	MaxLength uint32
	Pattern   string
	Mode      uint32
}

func (m *ListEntitiesTextResponse) MessageType() uint16 { return TypeListEntitiesTextResponse }
func (m *ListEntitiesTextResponse) CalcSize(total *int) {
	sizeEntityBase(total, m.Base)
	AddUint32(total, 8, m.MinLength, false)
	AddUint32(total, 9, m.MaxLength, false)
	AddString(total, 10, m.Pattern, false)
	AddEnum(total, 11, m.Mode, false)
}
func (m *ListEntitiesTextResponse) Encode(b *Buffer) {
	encodeEntityBase(b, m.Base)
	b.EncodeUint32(8, m.MinLength, false)
	b.EncodeUint32(9, m.MaxLength, false)
	b.EncodeString(10, m.Pattern, false)
	b.EncodeEnum(11, m.Mode, false)
}

type TextStateResponse struct {
	Key          uint32
	State        string
	MissingState bool
}

func (m *TextStateResponse) MessageType() uint16 { return TypeTextStateResponse }
func (m *TextStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddString(total, 2, m.State, false)
	AddBool(total, 3, m.MissingState, false)
}
func (m *TextStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeString(2, m.State, false)
	b.EncodeBool(3, m.MissingState, false)
}

type TextCommandRequest struct {
	Key   uint32
	State string
}

func (m *TextCommandRequest) MessageType() uint16 { return TypeTextCommandRequest }
func (m *TextCommandRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddString(total, 2, m.State, true)
}
func (m *TextCommandRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeString(2, m.State, true)
}
func (m *TextCommandRequest) DecodeVarint(fieldID uint32, v uint64) error {
	if fieldID == 1 {
		m.Key = uint32(v)
	}
	return nil
}
func (m *TextCommandRequest) DecodeLengthDelimited(fieldID uint32, v []byte) error {
	if fieldID == 2 {
		m.State = string(v)
	}
	return nil
}
func (m *TextCommandRequest) Decode32Bit(uint32, uint32) error { return nil }
func (m *TextCommandRequest) Decode64Bit(uint32, uint64) error { return nil }

// --- Button -----------------------------------------------------------------

type ListEntitiesButtonResponse struct {
	Base        EntityInfoBase
	DeviceClass string
}

func (m *ListEntitiesButtonResponse) MessageType() uint16 { return TypeListEntitiesButtonResponse }
func (m *ListEntitiesButtonResponse) CalcSize(total *int) {
	sizeEntityBase(total, m.Base)
	AddString(total, 8, m.DeviceClass, false)
}
func (m *ListEntitiesButtonResponse) Encode(b *Buffer) {
	encodeEntityBase(b, m.Base)
	b.EncodeString(8, m.DeviceClass, false)
}

type ButtonCommandRequest struct {
	Key uint32
}

func (m *ButtonCommandRequest) MessageType() uint16 { return TypeButtonCommandRequest }
func (m *ButtonCommandRequest) CalcSize(total *int) { AddUint32(total, 1, m.Key, true) }
func (m *ButtonCommandRequest) Encode(b *Buffer)     { b.EncodeUint32(1, m.Key, true) }
func (m *ButtonCommandRequest) DecodeVarint(fieldID uint32, v uint64) error {
	if fieldID == 1 {
		m.Key = uint32(v)
	}
	return nil
}
func (m *ButtonCommandRequest) DecodeLengthDelimited(uint32, []byte) error { return nil }
func (m *ButtonCommandRequest) Decode32Bit(uint32, uint32) error           { return nil }
func (m *ButtonCommandRequest) Decode64Bit(uint32, uint64) error           { return nil }

// --- Lock -------------------------------------------------------------------

type ListEntitiesLockResponse struct {
	Base          EntityInfoBase
	AssumedState  bool
	SupportsOpen  bool
	RequiresCode  bool
	CodeFormat    string
}

func (m *ListEntitiesLockResponse) MessageType() uint16 { return TypeListEntitiesLockResponse }
func (m *ListEntitiesLockResponse) CalcSize(total *int) {
	sizeEntityBase(total, m.Base)
	AddBool(total, 8, m.AssumedState, false)
	AddBool(total, 9, m.SupportsOpen, false)
	AddBool(total, 10, m.RequiresCode, false)
	AddString(total, 11, m.CodeFormat, false)
}
func (m *ListEntitiesLockResponse) Encode(b *Buffer) {
	encodeEntityBase(b, m.Base)
	b.EncodeBool(8, m.AssumedState, false)
	b.EncodeBool(9, m.SupportsOpen, false)
	b.EncodeBool(10, m.RequiresCode, false)
	b.EncodeString(11, m.CodeFormat, false)
}

type LockStateResponse struct {
	Key   uint32
	State uint32
}

func (m *LockStateResponse) MessageType() uint16 { return TypeLockStateResponse }
func (m *LockStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddEnum(total, 2, m.State, false)
}
func (m *LockStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeEnum(2, m.State, false)
}

type LockCommandRequest struct {
	Key        uint32
	Command    uint32
	HasCode    bool
	Code       string
}

func (m *LockCommandRequest) MessageType() uint16 { return TypeLockCommandRequest }
func (m *LockCommandRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddEnum(total, 2, m.Command, true)
	AddBool(total, 3, m.HasCode, false)
	AddString(total, 4, m.Code, false)
}
func (m *LockCommandRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeEnum(2, m.Command, true)
	b.EncodeBool(3, m.HasCode, false)
	b.EncodeString(4, m.Code, false)
}
func (m *LockCommandRequest) DecodeVarint(fieldID uint32, v uint64) error {
	switch fieldID {
	case 1:
		m.Key = uint32(v)
	case 2:
		m.Command = uint32(v)
	case 3:
		m.HasCode = AsBool(v)
	}
	return nil
}
func (m *LockCommandRequest) DecodeLengthDelimited(fieldID uint32, v []byte) error {
	if fieldID == 4 {
		m.Code = string(v)
	}
	return nil
}
func (m *LockCommandRequest) Decode32Bit(uint32, uint32) error { return nil }
func (m *LockCommandRequest) Decode64Bit(uint32, uint64) error { return nil }

// --- Valve -------------------------------------------------------------------

type ListEntitiesValveResponse struct {
	Base             EntityInfoBase
	DeviceClass      string
	AssumedState     bool
	SupportsPosition bool
	SupportsStop     bool
}

func (m *ListEntitiesValveResponse) MessageType() uint16 { return TypeListEntitiesValveResponse }
func (m *ListEntitiesValveResponse) CalcSize(total *int) {
	sizeEntityBase(total, m.Base)
	AddString(total, 8, m.DeviceClass, false)
	AddBool(total, 9, m.AssumedState, false)
	AddBool(total, 10, m.SupportsPosition, false)
	AddBool(total, 11, m.SupportsStop, false)
}
func (m *ListEntitiesValveResponse) Encode(b *Buffer) {
	encodeEntityBase(b, m.Base)
	b.EncodeString(8, m.DeviceClass, false)
	b.EncodeBool(9, m.AssumedState, false)
	b.EncodeBool(10, m.SupportsPosition, false)
	b.EncodeBool(11, m.SupportsStop, false)
}

type ValveStateResponse struct {
	Key              uint32
	Position         float32
	CurrentOperation uint32
}

func (m *ValveStateResponse) MessageType() uint16 { return TypeValveStateResponse }
func (m *ValveStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddFloat(total, 2, m.Position, false)
	AddEnum(total, 3, m.CurrentOperation, false)
}
func (m *ValveStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeFloat(2, m.Position, false)
	b.EncodeEnum(3, m.CurrentOperation, false)
}

type ValveCommandRequest struct {
	Key         uint32
	HasPosition bool
	Position    float32
	Stop        bool
}

func (m *ValveCommandRequest) MessageType() uint16 { return TypeValveCommandRequest }
func (m *ValveCommandRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddBool(total, 2, m.HasPosition, false)
	AddFloat(total, 3, m.Position, false)
	AddBool(total, 4, m.Stop, false)
}
func (m *ValveCommandRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeBool(2, m.HasPosition, false)
	b.EncodeFloat(3, m.Position, false)
	b.EncodeBool(4, m.Stop, false)
}
func (m *ValveCommandRequest) DecodeVarint(fieldID uint32, v uint64) error {
	switch fieldID {
	case 1:
		m.Key = uint32(v)
	case 2:
		m.HasPosition = AsBool(v)
	case 4:
		m.Stop = AsBool(v)
	}
	return nil
}
func (m *ValveCommandRequest) DecodeLengthDelimited(uint32, []byte) error { return nil }
func (m *ValveCommandRequest) Decode32Bit(fieldID uint32, v uint32) error {
	if fieldID == 3 {
		m.Position = AsFloat(v)
	}
	return nil
}
func (m *ValveCommandRequest) Decode64Bit(uint32, uint64) error { return nil }

// --- Media player -------------------------------------------------------------

type ListEntitiesMediaPlayerResponse struct {
	Base          EntityInfoBase
	SupportsPause bool
}

func (m *ListEntitiesMediaPlayerResponse) MessageType() uint16 {
	return TypeListEntitiesMediaPlayerResponse
}
func (m *ListEntitiesMediaPlayerResponse) CalcSize(total *int) {
	sizeEntityBase(total, m.Base)
	AddBool(total, 8, m.SupportsPause, false)
}
func (m *ListEntitiesMediaPlayerResponse) Encode(b *Buffer) {
	encodeEntityBase(b, m.Base)
	b.EncodeBool(8, m.SupportsPause, false)
}

type MediaPlayerStateResponse struct {
	Key    uint32
	State  uint32
	Volume float32
	Muted  bool
}

func (m *MediaPlayerStateResponse) MessageType() uint16 { return TypeMediaPlayerStateResponse }
func (m *MediaPlayerStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddEnum(total, 2, m.State, false)
	AddFloat(total, 3, m.Volume, false)
	AddBool(total, 4, m.Muted, false)
}
func (m *MediaPlayerStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeEnum(2, m.State, false)
	b.EncodeFloat(3, m.Volume, false)
	b.EncodeBool(4, m.Muted, false)
}

type MediaPlayerCommandRequest struct {
	Key            uint32
	HasCommand     bool
	Command        uint32
	HasVolume      bool
	Volume         float32
	HasMediaURL    bool
	MediaURL       string
	HasAnnounce    bool
	Announce       bool
}

func (m *MediaPlayerCommandRequest) MessageType() uint16 { return TypeMediaPlayerCommandRequest }
func (m *MediaPlayerCommandRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddBool(total, 2, m.HasCommand, false)
	AddEnum(total, 3, m.Command, false)
	AddBool(total, 4, m.HasVolume, false)
	AddFloat(total, 5, m.Volume, false)
	AddBool(total, 6, m.HasMediaURL, false)
	AddString(total, 7, m.MediaURL, false)
	AddBool(total, 8, m.HasAnnounce, false)
	AddBool(total, 9, m.Announce, false)
}
func (m *MediaPlayerCommandRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeBool(2, m.HasCommand, false)
	b.EncodeEnum(3, m.Command, false)
	b.EncodeBool(4, m.HasVolume, false)
	b.EncodeFloat(5, m.Volume, false)
	b.EncodeBool(6, m.HasMediaURL, false)
	b.EncodeString(7, m.MediaURL, false)
	b.EncodeBool(8, m.HasAnnounce, false)
	b.EncodeBool(9, m.Announce, false)
}
func (m *MediaPlayerCommandRequest) DecodeVarint(fieldID uint32, v uint64) error {
	switch fieldID {
	case 1:
		m.Key = uint32(v)
	case 2:
		m.HasCommand = AsBool(v)
	case 3:
		m.Command = uint32(v)
	case 4:
		m.HasVolume = AsBool(v)
	case 6:
		m.HasMediaURL = AsBool(v)
	case 8:
		m.HasAnnounce = AsBool(v)
	case 9:
		m.Announce = AsBool(v)
	}
	return nil
}
func (m *MediaPlayerCommandRequest) DecodeLengthDelimited(fieldID uint32, v []byte) error {
	if fieldID == 7 {
		m.MediaURL = string(v)
	}
	return nil
}
func (m *MediaPlayerCommandRequest) Decode32Bit(fieldID uint32, v uint32) error {
	if fieldID == 5 {
		m.Volume = AsFloat(v)
	}
	return nil
}
func (m *MediaPlayerCommandRequest) Decode64Bit(uint32, uint64) error { return nil }

// --- Alarm control panel -------------------------------------------------------

type ListEntitiesAlarmControlPanelResponse struct {
	Base              EntityInfoBase
	SupportedFeatures uint32
	RequiresCode      bool
	RequiresCodeToArm bool
}

func (m *ListEntitiesAlarmControlPanelResponse) MessageType() uint16 {
	return TypeListEntitiesAlarmControlPanelResponse
}
func (m *ListEntitiesAlarmControlPanelResponse) CalcSize(total *int) {
	sizeEntityBase(total, m.Base)
	AddUint32(total, 8, m.SupportedFeatures, false)
	AddBool(total, 9, m.RequiresCode, false)
	AddBool(total, 10, m.RequiresCodeToArm, false)
}
func (m *ListEntitiesAlarmControlPanelResponse) Encode(b *Buffer) {
	encodeEntityBase(b, m.Base)
	b.EncodeUint32(8, m.SupportedFeatures, false)
	b.EncodeBool(9, m.RequiresCode, false)
	b.EncodeBool(10, m.RequiresCodeToArm, false)
}

type AlarmControlPanelStateResponse struct {
	Key   uint32
	State uint32
}

func (m *AlarmControlPanelStateResponse) MessageType() uint16 {
	return TypeAlarmControlPanelStateResponse
}
func (m *AlarmControlPanelStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddEnum(total, 2, m.State, false)
}
func (m *AlarmControlPanelStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeEnum(2, m.State, false)
}

type AlarmControlPanelCommandRequest struct {
	Key     uint32
	Command uint32
	Code    string
}

func (m *AlarmControlPanelCommandRequest) MessageType() uint16 {
	return TypeAlarmControlPanelCommandRequest
}
func (m *AlarmControlPanelCommandRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddEnum(total, 2, m.Command, true)
	AddString(total, 3, m.Code, false)
}
func (m *AlarmControlPanelCommandRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeEnum(2, m.Command, true)
	b.EncodeString(3, m.Code, false)
}
func (m *AlarmControlPanelCommandRequest) DecodeVarint(fieldID uint32, v uint64) error {
	switch fieldID {
	case 1:
		m.Key = uint32(v)
	case 2:
		m.Command = uint32(v)
	}
	return nil
}
func (m *AlarmControlPanelCommandRequest) DecodeLengthDelimited(fieldID uint32, v []byte) error {
	if fieldID == 3 {
		m.Code = string(v)
	}
	return nil
}
func (m *AlarmControlPanelCommandRequest) Decode32Bit(uint32, uint32) error { return nil }
func (m *AlarmControlPanelCommandRequest) Decode64Bit(uint32, uint64) error { return nil }

// --- Date -----------------------------------------------------------------------

type ListEntitiesDateResponse struct {
	Base EntityInfoBase
}

func (m *ListEntitiesDateResponse) MessageType() uint16 { return TypeListEntitiesDateResponse }
func (m *ListEntitiesDateResponse) CalcSize(total *int) { sizeEntityBase(total, m.Base) }
func (m *ListEntitiesDateResponse) Encode(b *Buffer)    { encodeEntityBase(b, m.Base) }

type DateStateResponse struct {
	Key          uint32
	MissingState bool
	Year         uint32
	Month        uint32
	Day          uint32
}

func (m *DateStateResponse) MessageType() uint16 { return TypeDateStateResponse }
func (m *DateStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddBool(total, 2, m.MissingState, false)
	AddUint32(total, 3, m.Year, false)
	AddUint32(total, 4, m.Month, false)
	AddUint32(total, 5, m.Day, false)
}
func (m *DateStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeBool(2, m.MissingState, false)
	b.EncodeUint32(3, m.Year, false)
	b.EncodeUint32(4, m.Month, false)
	b.EncodeUint32(5, m.Day, false)
}

type DateCommandRequest struct {
	Key   uint32
	Year  uint32
	Month uint32
	Day   uint32
}

func (m *DateCommandRequest) MessageType() uint16 { return TypeDateCommandRequest }
func (m *DateCommandRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddUint32(total, 2, m.Year, false)
	AddUint32(total, 3, m.Month, false)
	AddUint32(total, 4, m.Day, false)
}
func (m *DateCommandRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeUint32(2, m.Year, false)
	b.EncodeUint32(3, m.Month, false)
	b.EncodeUint32(4, m.Day, false)
}
func (m *DateCommandRequest) DecodeVarint(fieldID uint32, v uint64) error {
	switch fieldID {
	case 1:
		m.Key = uint32(v)
	case 2:
		m.Year = uint32(v)
	case 3:
		m.Month = uint32(v)
	case 4:
		m.Day = uint32(v)
	}
	return nil
}
func (m *DateCommandRequest) DecodeLengthDelimited(uint32, []byte) error { return nil }
func (m *DateCommandRequest) Decode32Bit(uint32, uint32) error          { return nil }
func (m *DateCommandRequest) Decode64Bit(uint32, uint64) error          { return nil }

// --- Time -----------------------------------------------------------------------

type ListEntitiesTimeResponse struct {
	Base EntityInfoBase
}

func (m *ListEntitiesTimeResponse) MessageType() uint16 { return TypeListEntitiesTimeResponse }
func (m *ListEntitiesTimeResponse) CalcSize(total *int) { sizeEntityBase(total, m.Base) }
func (m *ListEntitiesTimeResponse) Encode(b *Buffer)    { encodeEntityBase(b, m.Base) }

type TimeStateResponse struct {
	Key          uint32
	MissingState bool
	Hour         uint32
	Minute       uint32
	Second       uint32
}

func (m *TimeStateResponse) MessageType() uint16 { return TypeTimeStateResponse }
func (m *TimeStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddBool(total, 2, m.MissingState, false)
	AddUint32(total, 3, m.Hour, false)
	AddUint32(total, 4, m.Minute, false)
	AddUint32(total, 5, m.Second, false)
}
func (m *TimeStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeBool(2, m.MissingState, false)
	b.EncodeUint32(3, m.Hour, false)
	b.EncodeUint32(4, m.Minute, false)
	b.EncodeUint32(5, m.Second, false)
}

type TimeCommandRequest struct {
	Key    uint32
	Hour   uint32
	Minute uint32
	Second uint32
}

func (m *TimeCommandRequest) MessageType() uint16 { return TypeTimeCommandRequest }
func (m *TimeCommandRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddUint32(total, 2, m.Hour, false)
	AddUint32(total, 3, m.Minute, false)
	AddUint32(total, 4, m.Second, false)
}
func (m *TimeCommandRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeUint32(2, m.Hour, false)
	b.EncodeUint32(3, m.Minute, false)
	b.EncodeUint32(4, m.Second, false)
}
func (m *TimeCommandRequest) DecodeVarint(fieldID uint32, v uint64) error {
	switch fieldID {
	case 1:
		m.Key = uint32(v)
	case 2:
		m.Hour = uint32(v)
	case 3:
		m.Minute = uint32(v)
	case 4:
		m.Second = uint32(v)
	}
	return nil
}
func (m *TimeCommandRequest) DecodeLengthDelimited(uint32, []byte) error { return nil }
func (m *TimeCommandRequest) Decode32Bit(uint32, uint32) error          { return nil }
func (m *TimeCommandRequest) Decode64Bit(uint32, uint64) error          { return nil }

// --- DateTime -------------------------------------------------------------------

type ListEntitiesDateTimeResponse struct {
	Base EntityInfoBase
}

func (m *ListEntitiesDateTimeResponse) MessageType() uint16 { return TypeListEntitiesDateTimeResponse }
func (m *ListEntitiesDateTimeResponse) CalcSize(total *int) { sizeEntityBase(total, m.Base) }
func (m *ListEntitiesDateTimeResponse) Encode(b *Buffer)    { encodeEntityBase(b, m.Base) }

type DateTimeStateResponse struct {
	Key          uint32
	MissingState bool
	EpochSeconds uint32
}

func (m *DateTimeStateResponse) MessageType() uint16 { return TypeDateTimeStateResponse }
func (m *DateTimeStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddBool(total, 2, m.MissingState, false)
	AddFixed32(total, 3, m.EpochSeconds, false)
}
func (m *DateTimeStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeBool(2, m.MissingState, false)
	b.EncodeFixed32(3, m.EpochSeconds, false)
}

type DateTimeCommandRequest struct {
	Key          uint32
	EpochSeconds uint32
}

func (m *DateTimeCommandRequest) MessageType() uint16 { return TypeDateTimeCommandRequest }
func (m *DateTimeCommandRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddFixed32(total, 2, m.EpochSeconds, false)
}
func (m *DateTimeCommandRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeFixed32(2, m.EpochSeconds, false)
}
func (m *DateTimeCommandRequest) DecodeVarint(fieldID uint32, v uint64) error {
	if fieldID == 1 {
		m.Key = uint32(v)
	}
	return nil
}
func (m *DateTimeCommandRequest) DecodeLengthDelimited(uint32, []byte) error { return nil }
func (m *DateTimeCommandRequest) Decode32Bit(fieldID uint32, v uint32) error {
	if fieldID == 2 {
		m.EpochSeconds = v
	}
	return nil
}
func (m *DateTimeCommandRequest) Decode64Bit(uint32, uint64) error { return nil }

// --- Update ---------------------------------------------------------------------

type ListEntitiesUpdateResponse struct {
	Base        EntityInfoBase
	DeviceClass string
}

func (m *ListEntitiesUpdateResponse) MessageType() uint16 { return TypeListEntitiesUpdateResponse }
func (m *ListEntitiesUpdateResponse) CalcSize(total *int) {
	sizeEntityBase(total, m.Base)
	AddString(total, 8, m.DeviceClass, false)
}
func (m *ListEntitiesUpdateResponse) Encode(b *Buffer) {
	encodeEntityBase(b, m.Base)
	b.EncodeString(8, m.DeviceClass, false)
}

type UpdateStateResponse struct {
	Key            uint32
	MissingState   bool
	InProgress     bool
	HasProgress    bool
	Progress       float32
	CurrentVersion string
	LatestVersion  string
	Title          string
	ReleaseSummary string
	ReleaseURL     string
}

func (m *UpdateStateResponse) MessageType() uint16 { return TypeUpdateStateResponse }
func (m *UpdateStateResponse) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddBool(total, 2, m.MissingState, false)
	AddBool(total, 3, m.InProgress, false)
	AddBool(total, 4, m.HasProgress, false)
	AddFloat(total, 5, m.Progress, false)
	AddString(total, 6, m.CurrentVersion, false)
	AddString(total, 7, m.LatestVersion, false)
	AddString(total, 8, m.Title, false)
	AddString(total, 9, m.ReleaseSummary, false)
	AddString(total, 10, m.ReleaseURL, false)
}
func (m *UpdateStateResponse) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeBool(2, m.MissingState, false)
	b.EncodeBool(3, m.InProgress, false)
	b.EncodeBool(4, m.HasProgress, false)
	b.EncodeFloat(5, m.Progress, false)
	b.EncodeString(6, m.CurrentVersion, false)
	b.EncodeString(7, m.LatestVersion, false)
	b.EncodeString(8, m.Title, false)
	b.EncodeString(9, m.ReleaseSummary, false)
	b.EncodeString(10, m.ReleaseURL, false)
}

type UpdateCommandRequest struct {
	Key     uint32
	Command uint32
}

func (m *UpdateCommandRequest) MessageType() uint16 { return TypeUpdateCommandRequest }
func (m *UpdateCommandRequest) CalcSize(total *int) {
	AddUint32(total, 1, m.Key, true)
	AddEnum(total, 2, m.Command, true)
}
func (m *UpdateCommandRequest) Encode(b *Buffer) {
	b.EncodeUint32(1, m.Key, true)
	b.EncodeEnum(2, m.Command, true)
}
func (m *UpdateCommandRequest) DecodeVarint(fieldID uint32, v uint64) error {
	switch fieldID {
	case 1:
		m.Key = uint32(v)
	case 2:
		m.Command = uint32(v)
	}
	return nil
}
func (m *UpdateCommandRequest) DecodeLengthDelimited(uint32, []byte) error { return nil }
func (m *UpdateCommandRequest) Decode32Bit(uint32, uint32) error          { return nil }
func (m *UpdateCommandRequest) Decode64Bit(uint32, uint64) error          { return nil }
